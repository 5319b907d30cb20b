package impl

import (
	"io"
	"log/slog"

	"userapi/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{Secret: "test-secret", ExpirationMs: 60_000},
		Avatar:  &config.AvatarConfig{Size: 300},
	}
}
