package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/takeuforward/portal/internal/config"
)

func TestNewHTTPServerUsesConfiguredTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Port = "9090"
	cfg.Server.ReadTimeout = "5s"
	cfg.Server.WriteTimeout = "bogus"
	cfg.Server.IdleTimeout = "1m"

	srv := newHTTPServer(cfg, http.NewServeMux())

	assert.Equal(t, ":9090", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, 30*time.Second, srv.WriteTimeout)
	assert.Equal(t, time.Minute, srv.IdleTimeout)
}

func TestShutdownWithoutListener(t *testing.T) {
	s := &Server{logger: zerolog.Nop()}
	assert.NoError(t, s.Shutdown(context.Background()))
}
