package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
)

type CategoryRequest struct {
	Name string `json:"nombre" validate:"required,max=100"`
}

func (h *Handlers) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryService.GetAll(r.Context())
	if err != nil {
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, categories, "", http.StatusOK)
}

func (h *Handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, "Invalid category id", http.StatusBadRequest)
		return
	}

	category, err := h.CategoryService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			WriteError(w, r, "Category not found", http.StatusNotFound)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, category, "", http.StatusOK)
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, r, "Validation failed", validationFields(err))
		return
	}

	id, err := h.CategoryService.Create(r.Context(), req.Name)
	if err != nil {
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, id, "Category created", http.StatusCreated)
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, "Invalid category id", http.StatusBadRequest)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, r, "Validation failed", validationFields(err))
		return
	}

	if err := h.CategoryService.Update(r.Context(), id, req.Name); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			WriteError(w, r, "Category not found", http.StatusNotFound)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteNoContent(w)
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, "Invalid category id", http.StatusBadRequest)
		return
	}

	if err := h.CategoryService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			WriteError(w, r, "Category not found", http.StatusNotFound)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteNoContent(w)
}
