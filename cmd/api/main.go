package main

import (
	"context"
	"os"

	"github.com/takeuforward/portal/internal/pkg/logger"
	"github.com/takeuforward/portal/internal/server"
)

// @title Take U Forward Portal API
// @version 1.0
// @description Notes, events, mentors and campus catalogs for the Take U Forward student portal

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token; the tuf_session cookie is accepted as well

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// blocks until a shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
