// internal/api/performance_handler.go
package api

import (
	"net/http"

	"github.com/estuda-ai/backend/internal/domain/quiz"
)

// listHistory returns every finished quiz, oldest first.
// @Summary      List quiz history
// @Tags         History
// @Produce      json
// @Success      200  {array}  quiz.Result
// @Router       /history [get]
func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	history := h.quiz.History()
	if history == nil {
		history = []quiz.Result{}
	}
	respondJSON(w, http.StatusOK, history)
}

// clearHistory drops the quiz history.
// @Summary      Clear quiz history
// @Tags         History
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /history [delete]
func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.quiz.ClearHistory(r.Context()); err != nil {
		h.logger.Error("failed to clear history", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getPerformance aggregates the history into per-subject buckets.
// @Summary      Performance by subject
// @Description  Buckets quiz results into school subjects by topic keywords and reports hit percentages, best first.
// @Tags         History
// @Produce      json
// @Success      200  {array}  performance.SubjectBucket
// @Router       /performance [get]
func (h *Handler) getPerformance(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.quiz.Performance())
}
