package impl

import (
	"context"
	"log/slog"
	"time"

	"userapi/config"
	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/usecase"
	"userapi/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionManager implements usecase.SessionManager on a SessionRepository.
// Expiry is evaluated lazily whenever a session is read.
type sessionManager struct {
	repo   repository.SessionRepository
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// SessionManagerParams holds dependencies for the SessionManager, injected by Fx.
type SessionManagerParams struct {
	fx.In

	Repo   repository.SessionRepository
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionManager is the constructor for sessionManager.
func NewSessionManager(params SessionManagerParams) usecase.SessionManager {
	ttl := params.Config.Session.TTL()
	params.Logger.Info("Session manager ready", slog.String("ttl", util.FormatDuration(ttl)))

	return newSessionManager(params.Repo, ttl, time.Now, params.Logger)
}

func newSessionManager(repo repository.SessionRepository, ttl time.Duration, now func() time.Time, logger *slog.Logger) *sessionManager {
	return &sessionManager{repo: repo, ttl: ttl, now: now, logger: logger}
}

func (m *sessionManager) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

func (m *sessionManager) TTL() time.Duration {
	return m.ttl
}

func (m *sessionManager) Create(ctx context.Context) (*entity.Session, error) {
	now := m.now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		ExpiresAt: now.Add(m.ttl),
		CreatedAt: now,
	}

	if err := m.repo.Put(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return session, nil
}

func (m *sessionManager) Load(ctx context.Context, id string) (*entity.Session, error) {
	session, err := m.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	if session.State(m.now()) == entity.SessionDestroyed {
		if err := m.repo.Delete(ctx, id); err != nil {
			m.log(ctx).Warn("Failed to delete expired session", slog.Any("error", err))
		}

		return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	return session, nil
}

// Bind moves the principal onto a freshly minted session and deletes the old one, so an ID
// handed out before login never becomes authenticated. The expiry window restarts from now.
func (m *sessionManager) Bind(ctx context.Context, id string, accountID uuid.UUID) (*entity.Session, error) {
	previous, err := m.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := m.now()
	bound := &entity.Session{
		ID:        uuid.NewString(),
		AccountID: accountID,
		ExpiresAt: now.Add(m.ttl),
		CreatedAt: now,
	}

	if err := m.repo.Put(ctx, bound); err != nil {
		return nil, errors.Wrap(err, "failed to bind session")
	}

	// The old ID stays anonymous even if this delete fails.
	if err := m.repo.Delete(ctx, previous.ID); err != nil {
		m.log(ctx).Warn("Failed to delete pre-login session", slog.Any("error", err))
	}

	return bound, nil
}

func (m *sessionManager) PrincipalOf(ctx context.Context, id string) (uuid.UUID, bool, error) {
	session, err := m.Load(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return uuid.Nil, false, nil
		}

		return uuid.Nil, false, err
	}

	accountID, ok := session.Principal(m.now())

	return accountID, ok, nil
}

func (m *sessionManager) Destroy(ctx context.Context, id string) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to destroy session")
	}

	return nil
}

func (m *sessionManager) RevokeAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	revoked, err := m.repo.DeleteByAccount(ctx, accountID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to revoke account sessions")
	}

	if revoked > 0 {
		m.log(ctx).Info("Revoked account sessions",
			slog.String("account_id", accountID.String()),
			slog.Int("count", revoked),
		)
	}

	return revoked, nil
}
