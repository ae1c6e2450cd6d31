// HTTP handler for the chat endpoint. Decodes the inbound request, hands it to
// the orchestrator, and maps every pipeline failure to the structured error
// taxonomy: 400 bad input, 401 missing credential, 404 empty workspace
// (retry:false), 503 context unavailable (retry:true), 500 everything else.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/dmonterocr/legalia/internal/api/ctxkeys"
	"github.com/dmonterocr/legalia/internal/domain/chat"
	"github.com/dmonterocr/legalia/internal/domain/citation"
	"github.com/dmonterocr/legalia/internal/infra/llm"
)

// ChatService is the consumer-side interface of the orchestrator.
type ChatService interface {
	Chat(ctx context.Context, in chat.Input) (*chat.Output, error)
}

// ChatHandler handles POST /api/v1/chat.
type ChatHandler struct {
	service ChatService
	logger  *zap.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(service ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: logger}
}

// chatRequest is the inbound JSON body. Field names are the wire contract with
// the existing web client — do not anglicize.
type chatRequest struct {
	Mensaje   string      `json:"mensaje"`
	Historial []chat.Turn `json:"historial"`
}

// chatResponse is the success body.
type chatResponse struct {
	Respuesta       string               `json:"respuesta"`
	Documentos      []citation.Reference `json:"documentos"`
	TodosDocumentos []citation.Reference `json:"todosDocumentos,omitempty"`
	Usage           *llm.Usage           `json:"usage,omitempty"`
}

// Chat serves one chat request.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Mensaje inválido")
		return
	}
	if strings.TrimSpace(req.Mensaje) == "" {
		writeError(w, http.StatusBadRequest, "Mensaje inválido")
		return
	}

	out, err := h.service.Chat(r.Context(), chat.Input{
		Token:     ctxkeys.Value(r.Context(), ctxkeys.BearerToken),
		UserID:    ctxkeys.Value(r.Context(), ctxkeys.UserID),
		Mensaje:   req.Mensaje,
		Historial: req.Historial,
	})
	if err != nil {
		h.writeChatError(w, err)
		return
	}

	documentos := out.Documentos
	if documentos == nil {
		// The client iterates this unconditionally; always emit an array.
		documentos = []citation.Reference{}
	}
	writeJSON(w, http.StatusOK, chatResponse{
		Respuesta:       out.Respuesta,
		Documentos:      documentos,
		TodosDocumentos: out.TodosDocumentos,
		Usage:           out.Usage,
	})
}

// writeChatError maps pipeline sentinels to the response taxonomy.
func (h *ChatHandler) writeChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chat.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Mensaje inválido")
	case errors.Is(err, chat.ErrMissingCredential):
		writeError(w, http.StatusUnauthorized, "credencial requerida")
	case errors.Is(err, chat.ErrNoDocuments):
		writeErrorDetails(w, http.StatusNotFound,
			"No tienes documentos indexados todavía",
			"Sube documentos a tu workspace para poder consultarlos",
			false)
	case errors.Is(err, chat.ErrContextUnavailable):
		writeErrorDetails(w, http.StatusServiceUnavailable,
			"Servicio de documentos no disponible",
			detail(err, chat.ErrContextUnavailable),
			true)
	default:
		// Completion failures and anything unexpected: log with detail,
		// answer with a short diagnostic, never a raw fault.
		h.logger.Error("chat request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Error al procesar la solicitud",
			Details: err.Error(),
		})
	}
}

// detail returns err's message with the sentinel prefix stripped, leaving just
// the diagnostic part for the Details field.
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error())
	return strings.TrimPrefix(msg, ": ")
}
