// internal/api/export_handler.go
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/estuda-ai/backend/internal/domain/quiz"
	"github.com/estuda-ai/backend/internal/service"
)

// ExportBundle is the downloadable snapshot of all study progress.
type ExportBundle struct {
	QuizHistory  []quiz.Result         `json:"quizHistory"`
	FailedThemes map[string]int        `json:"failedThemes"`
	ChatHistory  []service.ChatMessage `json:"chatHistory"`
}

// exportProgress downloads the study progress as a JSON file.
// @Summary      Export study progress
// @Description  Bundles quiz history, failed themes and the chat transcript into a downloadable JSON file.
// @Tags         Export
// @Produce      json
// @Success      200  {object}  ExportBundle
// @Router       /export [get]
func (h *Handler) exportProgress(w http.ResponseWriter, r *http.Request) {
	bundle := ExportBundle{
		QuizHistory:  h.quiz.History(),
		FailedThemes: make(map[string]int),
		ChatHistory:  h.chat.Transcript(),
	}
	if bundle.QuizHistory == nil {
		bundle.QuizHistory = []quiz.Result{}
	}
	if bundle.ChatHistory == nil {
		bundle.ChatHistory = []service.ChatMessage{}
	}
	for _, tc := range h.quiz.FailedThemes() {
		bundle.FailedThemes[tc.Label] = tc.Count
	}

	filename := fmt.Sprintf("progresso-estudos-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	respondJSON(w, http.StatusOK, bundle)
}
