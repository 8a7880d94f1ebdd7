// internal/api/themes_handler.go
package api

import "net/http"

type ThemeResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// listThemes returns the failed themes, most-missed first.
// @Summary      List failed themes
// @Tags         Themes
// @Produce      json
// @Success      200  {array}  ThemeResponse
// @Router       /themes [get]
func (h *Handler) listThemes(w http.ResponseWriter, r *http.Request) {
	listed := h.quiz.FailedThemes()

	response := make([]ThemeResponse, len(listed))
	for i, tc := range listed {
		response[i] = ThemeResponse{Label: tc.Label, Count: tc.Count}
	}
	respondJSON(w, http.StatusOK, response)
}

// clearThemes drops all failed-theme counters.
// @Summary      Clear failed themes
// @Tags         Themes
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /themes [delete]
func (h *Handler) clearThemes(w http.ResponseWriter, r *http.Request) {
	if err := h.quiz.ClearFailedThemes(r.Context()); err != nil {
		h.logger.Error("failed to clear themes", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
