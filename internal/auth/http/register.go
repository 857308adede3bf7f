package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"github.com/authsystem/authd/internal/auth/service"
	"github.com/authsystem/authd/pkg/httpx"
	"github.com/authsystem/authd/pkg/slogx"
)

// RegisterHandler serves POST /api/auth/register.
type RegisterHandler struct {
	AuthService *service.AuthService
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if req.Username == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Username is required",
		})
		return
	}
	if req.Password == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Password is required",
		})
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "A valid email is required",
		})
		return
	}

	_, err := h.AuthService.Register(ctx, req.Username, req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateEmail):
			httpx.WriteJSON(w, http.StatusBadRequest, apiResponse{
				Success: false,
				Message: "Email is already registered!",
			})
		case errors.Is(err, service.ErrStoreUnavailable):
			httpx.WriteJSON(w, http.StatusServiceUnavailable, apiResponse{
				Success: false,
				Message: "Service temporarily unavailable, please try again",
			})
		default:
			log.Error("registration failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, apiResponse{
				Success: false,
				Message: "Registration failed",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, apiResponse{
		Success: true,
		Message: "User registered successfully!",
	})
}
