package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
)

type NewsletterRequest struct {
	Subject string `json:"asunto" validate:"required,max=200"`
	Message string `json:"mensaje" validate:"required"`
}

func (h *Handlers) GetNewsletterTemplate(w http.ResponseWriter, r *http.Request) {
	template, err := h.NewsletterService.GetTemplate(r.Context())
	if err != nil {
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, template, "", http.StatusOK)
}

func (h *Handlers) UpdateNewsletterTemplate(w http.ResponseWriter, r *http.Request) {
	var req NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, r, "Validation failed", validationFields(err))
		return
	}

	template := &models.Newsletter{Subject: req.Subject, Message: req.Message}
	if err := h.NewsletterService.UpdateTemplate(r.Context(), template); err != nil {
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteNoContent(w)
}

// SendNewsletter enqueues one delivery job per verified subscriber.
func (h *Handlers) SendNewsletter(w http.ResponseWriter, r *http.Request) {
	var req NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, r, "Validation failed", validationFields(err))
		return
	}

	newsletter := &models.Newsletter{Subject: req.Subject, Message: req.Message}
	count, err := h.NewsletterService.Send(r.Context(), newsletter, h.Cfg.PublicBaseURL)
	if err != nil {
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, count, fmt.Sprintf("Newsletter queued for %d subscribers", count), http.StatusOK)
}
