// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/estuda-ai/backend/internal/domain/quiz"
	"github.com/estuda-ai/backend/internal/gate"
	"github.com/estuda-ai/backend/internal/generator"
	"github.com/estuda-ai/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	quiz   *service.QuizService
	chat   *service.ChatService
	gate   *gate.Gate
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(quizSvc *service.QuizService, chatSvc *service.ChatService, g *gate.Gate, logger *slog.Logger) *Handler {
	return &Handler{
		quiz:   quizSvc,
		chat:   chatSvc,
		gate:   g,
		logger: logger,
	}
}

// validator is implemented by request types that check their own fields.
type validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. Returns false (and writes a
// 400 response) if the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// decodeAndValidate decodes the request body and runs the type's own
// validation. Returns false if the caller should bail out.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleServiceError maps service and generation errors onto HTTP
// responses. Returns true if an error was handled (caller should return).
// User-facing messages are in Portuguese, matching the rest of the UI.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var genErr *generator.GenerationError
	var malformed *generator.MalformedResponseError

	switch {
	case errors.Is(err, service.ErrEmptyTopic):
		respondError(w, http.StatusBadRequest, "Por favor, insira um tópico.")
	case errors.Is(err, service.ErrInvalidCount):
		respondError(w, http.StatusBadRequest, "Número de questões inválido.")
	case errors.Is(err, service.ErrNoReviewTopics):
		respondError(w, http.StatusBadRequest, "Não há temas para revisar.")
	case errors.Is(err, service.ErrEmptyDoubt):
		respondError(w, http.StatusBadRequest, "Por favor, digite sua dúvida.")
	case errors.Is(err, service.ErrGenerationBusy), errors.Is(err, service.ErrChatBusy):
		respondError(w, http.StatusConflict, "Aguarde a solicitação atual terminar.")
	case errors.Is(err, service.ErrNoActiveQuiz):
		respondError(w, http.StatusNotFound, "Nenhum quiz ativo.")
	case errors.Is(err, quiz.ErrIndexOutOfRange):
		respondError(w, http.StatusBadRequest, "Índice de questão inválido.")
	case errors.As(err, &genErr):
		respondError(w, http.StatusBadGateway, "Falha ao se comunicar com a API: "+providerMessage(genErr.Wrapped, genErr.Reason))
	case errors.As(err, &malformed):
		respondError(w, http.StatusBadGateway, "Falha ao se comunicar com a API: "+providerMessage(malformed.Wrapped, malformed.Reason))
	default:
		h.logger.Error("unhandled service error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// providerMessage picks the text shown after the Portuguese prefix: the
// provider's own message when one was captured, otherwise the short reason.
// The English error-wrapper chain stays in the logs, not in the UI.
func providerMessage(wrapped error, reason string) string {
	if wrapped != nil {
		return wrapped.Error()
	}
	return reason
}
