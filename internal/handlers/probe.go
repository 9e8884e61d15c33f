package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hospital-booking-server/internal/repository"
)

const (
	probeConnected    = "My database is Connected"
	probeNotConnected = "My db is not Connected"
)

// ProbeHandler answers the plain-text database connectivity check.
type ProbeHandler struct {
	Probe   repository.Prober
	Log     zerolog.Logger
	Timeout time.Duration
}

// NewProbeHandler creates a new ProbeHandler.
func NewProbeHandler(repos *repository.Repositories, logger zerolog.Logger) *ProbeHandler {
	return &ProbeHandler{Probe: repos.Probe, Log: logger, Timeout: 5 * time.Second}
}

// TestConnection queries the test table.
func (h *ProbeHandler) TestConnection(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	if err := h.Probe.Ping(ctx); err != nil {
		h.Log.Error().Err(err).Msg("Database connection failed")
		c.String(http.StatusServiceUnavailable, probeNotConnected)
		return
	}
	c.String(http.StatusOK, probeConnected)
}
