package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/authsystem/authd/internal/auth/service"
	"github.com/authsystem/authd/pkg/httpx"
	"github.com/authsystem/authd/pkg/slogx"
)

// LoginHandler serves POST /api/auth/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if req.Email == "" || req.Password == "" {
		// Same body as a failed credential check; missing fields must not
		// read differently from wrong ones.
		writeInvalidCredentials(w)
		return
	}

	result, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeInvalidCredentials(w)
		case errors.Is(err, service.ErrStoreUnavailable):
			httpx.WriteJSON(w, http.StatusServiceUnavailable, apiResponse{
				Success: false,
				Message: "Service temporarily unavailable, please try again",
			})
		default:
			log.Error("login failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, apiResponse{
				Success: false,
				Message: "Login failed",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Token:    result.Token,
		Type:     "Bearer",
		Message:  "Login successful!",
		Username: result.Username,
		Email:    result.Email,
	})
}

// writeInvalidCredentials emits the single, byte-identical 401 used for every
// credential failure. Unknown email and wrong password must be
// indistinguishable.
func writeInvalidCredentials(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, apiResponse{
		Success: false,
		Message: "Invalid email or password!",
	})
}
