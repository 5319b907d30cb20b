// Package docdb contains the concrete implementation of the persistence layer on gocloud docstore.
// Collections are opened by URL, so the same code runs on MongoDB (mongo://) in production and
// on the in-memory driver (mem://) in development and tests.
package docdb

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"userapi/config"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"gocloud.dev/docstore"
	_ "gocloud.dev/docstore/memdocstore"
	_ "gocloud.dev/docstore/mongodocstore"
	"gocloud.dev/gcerrors"
)

// Collections groups the document collections the service uses.
type Collections struct {
	Accounts    *docstore.Collection
	Credentials *docstore.Collection
	Sessions    *docstore.Collection
	CallTimeout time.Duration
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens every configured collection and closes them on shutdown.
func New(params Params) (*Collections, error) {
	cfg := params.Config.Storage

	accounts, err := docstore.OpenCollection(params.Ctx, cfg.AccountsURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open accounts collection %s", cfg.AccountsURL)
	}

	credentials, err := docstore.OpenCollection(params.Ctx, cfg.CredentialsURL)
	if err != nil {
		_ = accounts.Close()

		return nil, errors.Wrapf(err, "failed to open credentials collection %s", cfg.CredentialsURL)
	}

	sessions, err := docstore.OpenCollection(params.Ctx, cfg.SessionsURL)
	if err != nil {
		_ = accounts.Close()
		_ = credentials.Close()

		return nil, errors.Wrapf(err, "failed to open sessions collection %s", cfg.SessionsURL)
	}

	if err := ensureSessionTTL(params.Ctx, sessions, params.Logger); err != nil {
		_ = accounts.Close()
		_ = credentials.Close()
		_ = sessions.Close()

		return nil, err
	}

	params.Logger.Info("Document collections opened",
		slog.String("accounts", cfg.AccountsURL),
		slog.String("credentials", cfg.CredentialsURL),
		slog.String("sessions", cfg.SessionsURL),
	)

	colls := &Collections{
		Accounts:    accounts,
		Credentials: credentials,
		Sessions:    sessions,
		CallTimeout: cfg.CallTimeout,
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing document collections")

			return colls.Close()
		},
	})

	return colls, nil
}

// sessionTTLIndexName names the index that lets MongoDB delete a session once expiresAt passes.
const sessionTTLIndexName = "sessions_expiresAt_ttl"

func sessionTTLIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: model.SessionExpiresAtField, Value: 1}},
		Options: options.Index().SetName(sessionTTLIndexName).SetExpireAfterSeconds(0),
	}
}

// ensureSessionTTL creates the TTL index when the sessions collection is backed by MongoDB.
// Other drivers have no server-side expiry; expired records are then removed when read.
func ensureSessionTTL(ctx context.Context, sessions *docstore.Collection, logger *slog.Logger) error {
	var mc *mongo.Collection
	if !sessions.As(&mc) {
		logger.Warn("Sessions collection has no TTL support, expired sessions are only removed on access")

		return nil
	}

	name, err := mc.Indexes().CreateOne(ctx, sessionTTLIndex())
	if err != nil {
		return errors.Wrap(err, "failed to create sessions TTL index")
	}

	logger.Info("Sessions TTL index ready", slog.String("index", name))

	return nil
}

// Close releases every collection.
func (c *Collections) Close() error {
	return errors.WithStack(stderrors.Join(
		c.Accounts.Close(),
		c.Credentials.Close(),
		c.Sessions.Close(),
	))
}

// withTimeout bounds a single store call. A zero timeout leaves the context untouched.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}

func isNotFound(err error) bool {
	return gcerrors.Code(err) == gcerrors.NotFound
}

func isAlreadyExists(err error) bool {
	return gcerrors.Code(err) == gcerrors.AlreadyExists
}

// storageFault hides driver detail behind the generic database error.
func storageFault(err error, details string) error {
	return domainerrors.NewDatabaseExecuteError(err, details)
}
