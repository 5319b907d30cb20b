package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"userapi/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAccountEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	event := &service.AccountEvent{
		RequestID:  "req-1",
		Type:       service.EventAccountRegistered,
		AccountID:  "acc-1",
		Email:      "a@x.com",
		OccurredAt: time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishAccountEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, service.EventAccountRegistered, received.Message.Attributes["type"])
	assert.Equal(t, "acc-1", received.Message.Attributes["account_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AccountEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "a@x.com", decoded.Email)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishAccountEvent(context.Background(), &service.AccountEvent{Type: service.EventAccountDeleted})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(discardLogger())

	assert.NoError(t, publisher.PublishAccountEvent(context.Background(), &service.AccountEvent{Type: service.EventAccountDeleted}))
	assert.NoError(t, publisher.Close())
}
