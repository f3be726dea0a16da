package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports liveness and database reachability
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Health answers 200 when the database responds and 500 otherwise
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 500 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "ok", Time: time.Now().UTC()}
	status := http.StatusOK
	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Health check database ping failed")
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusInternalServerError
	}
	ctx.JSON(status, resp)
}
