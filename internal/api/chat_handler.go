// internal/api/chat_handler.go
package api

import (
	"errors"
	"net/http"

	"github.com/estuda-ai/backend/internal/service"
)

type SendDoubtRequest struct {
	Question string `json:"question" example:"O que é fotossíntese?"`
}

func (r SendDoubtRequest) Validate() error {
	if r.Question == "" {
		return errors.New("question is required")
	}
	return nil
}

// sendDoubt asks the tutor one question and returns the reply.
// @Summary      Ask the tutor
// @Description  Sends one student doubt to the AI tutor. Each doubt is answered independently of earlier turns.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        body  body      SendDoubtRequest  true  "The doubt"
// @Success      200   {object}  service.ChatMessage
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "a chat request is already in flight"
// @Failure      502   {object}  map[string]string
// @Router       /chat [post]
func (h *Handler) sendDoubt(w http.ResponseWriter, r *http.Request) {
	var req SendDoubtRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reply, err := h.chat.AnswerDoubt(r.Context(), req.Question)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, reply)
}

// getTranscript returns the chat so far.
// @Summary      Get the chat transcript
// @Tags         Chat
// @Produce      json
// @Success      200  {array}  service.ChatMessage
// @Router       /chat [get]
func (h *Handler) getTranscript(w http.ResponseWriter, r *http.Request) {
	transcript := h.chat.Transcript()
	if transcript == nil {
		transcript = []service.ChatMessage{}
	}
	respondJSON(w, http.StatusOK, transcript)
}
