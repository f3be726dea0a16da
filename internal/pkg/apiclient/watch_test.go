package apiclient

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takeuforward/portal/internal/pkg/websocket"
)

func TestWatchChangesInvalidatesCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := websocket.NewHub(zerolog.Nop())
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/api/changes", websocket.NewHandler(hub, zerolog.Nop()).HandleConnection)
	srv := httptest.NewServer(r)
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	_, _ = client.cache.Get(context.Background(), "events?upcoming=true", func() ([]byte, error) { return []byte(`[]`), nil })
	_, _ = client.cache.Get(context.Background(), "clubs", func() ([]byte, error) { return []byte(`[]`), nil })

	watchErr := make(chan error, 1)
	go func() { watchErr <- client.WatchChanges(ctx) }()
	require.Eventually(t, func() bool { return hub.ClientsCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish("events", "created")

	require.Eventually(t, func() bool {
		client.cache.mu.RLock()
		defer client.cache.mu.RUnlock()
		return client.cache.entries["events?upcoming=true"].stale
	}, 2*time.Second, 10*time.Millisecond)

	client.cache.mu.RLock()
	assert.False(t, client.cache.entries["clubs"].stale)
	client.cache.mu.RUnlock()

	cancel()
	select {
	case err := <-watchErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("WatchChanges did not return after cancel")
	}
}

func TestChangesURL(t *testing.T) {
	assert.Equal(t, "ws://localhost:8080/api/changes", New(Config{BaseURL: "http://localhost:8080/"}).changesURL())
	assert.Equal(t, "wss://portal.example/api/changes", New(Config{BaseURL: "https://portal.example"}).changesURL())
}
