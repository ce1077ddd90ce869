package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FedeLo13/ceramic-affair-web/internal/service"
)

type ContactRequest struct {
	Name    string `json:"nombre" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"mensaje" validate:"required,max=5000"`
}

func (h *Handlers) SendContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, r, "Validation failed", validationFields(err))
		return
	}

	form := service.ContactForm{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := h.ContactService.Send(r.Context(), form); err != nil {
		if errors.Is(err, service.ErrContactNotConfigured) {
			WriteError(w, r, "Contact form is not available", http.StatusServiceUnavailable)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, nil, "Message sent", http.StatusOK)
}
