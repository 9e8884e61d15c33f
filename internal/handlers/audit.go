package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hospital-booking-server/internal/repository"
	"hospital-booking-server/internal/utils"
)

// AuditHandler lists the trigr audit table.
type AuditHandler struct {
	Audit repository.AuditRepository
	Log   zerolog.Logger
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(repos *repository.Repositories, logger zerolog.Logger) *AuditHandler {
	return &AuditHandler{Audit: repos.Audit, Log: logger}
}

// ListEntries returns every audit row, unfiltered and unpaginated.
func (h *AuditHandler) ListEntries(c *gin.Context) {
	logs, err := h.Audit.List(c.Request.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("failed to list audit entries")
		utils.InternalServerError(c, "Failed to fetch audit entries")
		return
	}
	utils.Success(c, "Audit entries fetched successfully", gin.H{"logs": logs})
}
