// internal/api/auth_handler.go
package api

import (
	"errors"
	"net/http"

	"github.com/estuda-ai/backend/internal/gate"
)

// ── Request / Response types ────────────────────────────────────────────────

type LoginRequest struct {
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type LoginResponse struct {
	Token string `json:"token"`
}

type LoginFailedResponse struct {
	Error             string `json:"error"`
	RemainingAttempts int    `json:"remaining_attempts"`
}

type LoginLockedResponse struct {
	Error          string `json:"error"`
	RetryInSeconds int    `json:"retry_in_seconds"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// login checks the access password.
// @Summary      Unlock the application
// @Description  Submit the access password. On success returns a bearer token for all other endpoints.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Access password"
// @Success      200   {object}  LoginResponse
// @Failure      401   {object}  LoginFailedResponse
// @Failure      423   {object}  LoginLockedResponse  "temporarily locked out"
// @Router       /auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result := h.gate.Submit(req.Password)
	switch result.State {
	case gate.StateUnlocked:
		respondJSON(w, http.StatusOK, LoginResponse{Token: result.Token})
	case gate.StateTimedOut:
		respondJSON(w, http.StatusLocked, LoginLockedResponse{
			Error:          "Muitas tentativas. Tente novamente mais tarde.",
			RetryInSeconds: int(result.RetryIn.Seconds()),
		})
	default:
		respondJSON(w, http.StatusUnauthorized, LoginFailedResponse{
			Error:             "Senha incorreta.",
			RemainingAttempts: result.RemainingAttempts,
		})
	}
}
