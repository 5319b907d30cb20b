package docdb

import (
	"context"
	"io"
	"time"

	"userapi/internal/domain/entity"
	"userapi/internal/domain/repository"
	"userapi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/docstore"
)

// sessionRepository implements repository.SessionRepository on a docstore collection.
type sessionRepository struct {
	coll    *docstore.Collection
	timeout time.Duration
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(colls *Collections) repository.SessionRepository {
	return newSessionRepository(colls.Sessions, colls.CallTimeout)
}

func newSessionRepository(coll *docstore.Collection, timeout time.Duration) *sessionRepository {
	return &sessionRepository{coll: coll, timeout: timeout}
}

func (repo *sessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	doc := &model.SessionModel{ID: id}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, storageFault(err, "failed to get session")
	}

	// An unparsable principal reads as anonymous.
	accountID, _ := uuid.Parse(doc.AccountID)

	return &entity.Session{
		ID:        doc.ID,
		AccountID: accountID,
		ExpiresAt: doc.ExpiresAt,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// Put creates or overwrites the session record.
func (repo *sessionRepository) Put(ctx context.Context, session *entity.Session) error {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	doc := &model.SessionModel{
		ID:        session.ID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
	if session.AccountID != uuid.Nil {
		doc.AccountID = session.AccountID.String()
	}

	if err := repo.coll.Put(ctx, doc); err != nil {
		return storageFault(err, "failed to put session")
	}

	return nil
}

func (repo *sessionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	if err := repo.coll.Delete(ctx, &model.SessionModel{ID: id}); err != nil && !isNotFound(err) {
		return storageFault(err, "failed to delete session")
	}

	return nil
}

// DeleteByAccount queries the sessions bound to the account and deletes them in one batch.
func (repo *sessionRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	if accountID == uuid.Nil {
		return 0, nil
	}

	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	iter := repo.coll.Query().Where("accountId", "=", accountID.String()).Get(ctx, "id")
	defer iter.Stop()

	actions := repo.coll.Actions()
	count := 0
	for {
		var doc model.SessionModel
		err := iter.Next(ctx, &doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, storageFault(err, "failed to query account sessions")
		}
		actions.Delete(&model.SessionModel{ID: doc.ID})
		count++
	}

	if count == 0 {
		return 0, nil
	}
	if err := actions.Do(ctx); err != nil {
		return 0, storageFault(err, "failed to delete account sessions")
	}

	return count, nil
}
