package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, r, "Validation failed", validationFields(err))
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) || errors.Is(err, repository.ErrUserNotFound) {
			WriteError(w, r, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, LoginResponse{Token: token}, "", http.StatusOK)
}
