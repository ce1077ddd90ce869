package handlers

import (
	"errors"
	"net/http"

	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
)

// UploadImage accepts a multipart form with the file under the "archivo"
// field, stores the object and records its metadata.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, r, "File too large or malformed form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("archivo")
	if err != nil {
		WriteError(w, r, "Missing file field 'archivo'", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := h.ImageService.Upload(r.Context(), header.Filename, file)
	if err != nil {
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, image, "Image uploaded", http.StatusCreated)
}

func (h *Handlers) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, "Invalid image id", http.StatusBadRequest)
		return
	}

	image, err := h.ImageService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			WriteError(w, r, "Image not found", http.StatusNotFound)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, image, "", http.StatusOK)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, "Invalid image id", http.StatusBadRequest)
		return
	}

	if err := h.ImageService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			WriteError(w, r, "Image not found", http.StatusNotFound)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteNoContent(w)
}
