package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
)

type FindMePostRequest struct {
	Title       string               `json:"titulo" validate:"required,max=200"`
	Description string               `json:"descripcion"`
	StartDate   models.LocalDateTime `json:"fechaInicio" validate:"required"`
	EndDate     models.LocalDateTime `json:"fechaFin" validate:"required"`
	Latitude    float64              `json:"latitud" validate:"gte=-90,lte=90"`
	Longitude   float64              `json:"longitud" validate:"gte=-180,lte=180"`
}

func (req FindMePostRequest) toModel(id int64) *models.FindMePost {
	return &models.FindMePost{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
}

func (h *Handlers) GetAllFindMePosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.FindMePostService.GetAll(r.Context())
	if err != nil {
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, posts, "", http.StatusOK)
}

func (h *Handlers) GetFindMePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, "Invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.FindMePostService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrFindMePostNotFound) {
			WriteError(w, r, "Post not found", http.StatusNotFound)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, post, "", http.StatusOK)
}

func (h *Handlers) CreateFindMePost(w http.ResponseWriter, r *http.Request) {
	var req FindMePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, r, "Validation failed", validationFields(err))
		return
	}

	id, err := h.FindMePostService.Create(r.Context(), req.toModel(0))
	if err != nil {
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, id, "Post created", http.StatusCreated)
}

func (h *Handlers) UpdateFindMePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, "Invalid post id", http.StatusBadRequest)
		return
	}

	var req FindMePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, r, "Validation failed", validationFields(err))
		return
	}

	if err := h.FindMePostService.Update(r.Context(), req.toModel(id)); err != nil {
		if errors.Is(err, repository.ErrFindMePostNotFound) {
			WriteError(w, r, "Post not found", http.StatusNotFound)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteNoContent(w)
}

func (h *Handlers) DeleteFindMePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, "Invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.FindMePostService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrFindMePostNotFound) {
			WriteError(w, r, "Post not found", http.StatusNotFound)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteNoContent(w)
}
