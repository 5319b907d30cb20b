package main

import (
	"context"
	"log/slog"
	"os"

	"userapi/config"
	"userapi/internal/delivery"
	"userapi/internal/delivery/worker"
	"userapi/internal/delivery/worker/handler"
	logs "userapi/internal/infra/log"
	"userapi/internal/infra/persistence/docdb"
	"userapi/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// The event worker shares the session collection with the API, so storage.sessionsUrl
// must point at a shared store (mongo://) for revocation to reach the API's sessions.
func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			docdb.New,
			docdb.NewSessionRepository,
			impl.NewSessionManager,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
