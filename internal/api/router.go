// internal/api/router.go
package api

import "net/http"

// RegisterRoutes mounts every endpoint on the mux. Login is public;
// everything else sits behind the access-gate token.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Access gate
	mux.HandleFunc("POST /auth/login", h.login)

	protected := http.NewServeMux()

	// Quiz
	protected.HandleFunc("POST /quiz", h.startQuiz)
	protected.HandleFunc("POST /quiz/review", h.startReview)
	protected.HandleFunc("GET /quiz", h.getQuiz)
	protected.HandleFunc("POST /quiz/answers", h.submitAnswer)

	// Failed themes
	protected.HandleFunc("GET /themes", h.listThemes)
	protected.HandleFunc("DELETE /themes", h.clearThemes)

	// History and performance
	protected.HandleFunc("GET /history", h.listHistory)
	protected.HandleFunc("DELETE /history", h.clearHistory)
	protected.HandleFunc("GET /performance", h.getPerformance)

	// Doubts chat
	protected.HandleFunc("POST /chat", h.sendDoubt)
	protected.HandleFunc("GET /chat", h.getTranscript)

	// Export
	protected.HandleFunc("GET /export", h.exportProgress)

	mux.Handle("/", h.requireToken(protected))
}
