package worker

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"userapi/config"
	"userapi/internal/delivery/worker/handler"
	"userapi/internal/domain/service"
	mockUsecase "userapi/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorkerRoutes(t *testing.T) {
	cfg := &config.Config{}
	logger := slog.New(slog.DiscardHandler)
	sessions := mockUsecase.NewMockSessionManager(t)
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, Sessions: sessions})
	e := newEcho(cfg, logger, pushHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	accountID := uuid.New()
	sessions.EXPECT().RevokeAccount(mock.Anything, accountID).Return(1, nil).Once()

	data, err := json.Marshal(&service.AccountEvent{Type: service.EventAccountDeleted, AccountID: accountID.String()})
	require.NoError(t, err)
	var msg handler.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
