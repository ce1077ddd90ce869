package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
	"github.com/FedeLo13/ceramic-affair-web/internal/service"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, r, "Validation failed", validationFields(err))
		return
	}

	if err := h.SubscriberService.Subscribe(r.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			WriteError(w, r, "Email already subscribed", http.StatusConflict)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, nil, "Verification email sent", http.StatusOK)
}

// VerifySubscriber confirms a pending subscription from the emailed link.
func (h *Handlers) VerifySubscriber(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		WriteError(w, r, "Missing token", http.StatusBadRequest)
		return
	}

	if err := h.SubscriberService.Verify(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, repository.ErrSubscriberNotFound):
			WriteError(w, r, "Unknown token", http.StatusNotFound)
		case errors.Is(err, repository.ErrTokenExpired):
			WriteError(w, r, "Verification link expired", http.StatusGone)
		default:
			WriteError(w, r, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, nil, "Subscription confirmed", http.StatusOK)
}

func (h *Handlers) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		WriteError(w, r, "Missing token", http.StatusBadRequest)
		return
	}

	if err := h.SubscriberService.Unsubscribe(r.Context(), token); err != nil {
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			WriteError(w, r, "Unknown token", http.StatusNotFound)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, nil, "Unsubscribed", http.StatusOK)
}
