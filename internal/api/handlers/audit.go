// HTTP handler for the audit read surface (ops-facing).
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/dmonterocr/legalia/internal/domain/audit"
)

// AuditReader is the consumer-side interface of the audit service.
type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]audit.ChatEvent, error)
}

// AuditHandler handles GET /api/v1/audit/recent.
type AuditHandler struct {
	reader AuditReader
	logger *zap.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(reader AuditReader, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{reader: reader, logger: logger}
}

const (
	defaultAuditLimit = 25
	maxAuditLimit     = 100
)

// Recent returns the newest audit events.
func (h *AuditHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if lim, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && lim > 0 {
		if lim > maxAuditLimit {
			lim = maxAuditLimit
		}
		limit = lim
	}

	events, err := h.reader.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("audit read failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error al procesar la solicitud")
		return
	}
	if events == nil {
		events = []audit.ChatEvent{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}
