package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
	"github.com/FedeLo13/ceramic-affair-web/internal/service"
)

type ProductRequest struct {
	Name        string  `json:"nombre" validate:"required"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio" validate:"required,gt=0"`
	SoldOut     bool    `json:"soldOut"`
	CategoryID  *int64  `json:"idCategoria"`
	Height      float64 `json:"altura" validate:"gte=0"`
	Width       float64 `json:"anchura" validate:"gte=0"`
	Diameter    float64 `json:"diametro" validate:"gte=0"`
	ImageIDs    []int64 `json:"idsImagenes"`
}

type ProductStockRequest struct {
	SoldOut *bool `json:"soldOut" validate:"required"`
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func (req ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SoldOut:     req.SoldOut,
		CategoryID:  req.CategoryID,
		Height:      req.Height,
		Width:       req.Width,
		Diameter:    req.Diameter,
		ImageIDs:    req.ImageIDs,
	}
}

//------------------ PUBLIC ------------------//

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, "Invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.ProductService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			WriteError(w, r, "Product not found", http.StatusNotFound)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, product, "", http.StatusOK)
}

// FilterProducts serves the catalog listing: free-text name, category,
// stock and creation-date order filters, paged.
func (h *Handlers) FilterProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.ProductFilter{
		Name:  query.Get("nombre"),
		Order: query.Get("orden"),
	}

	if raw := query.Get("categoria"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteError(w, r, "Invalid category id", http.StatusBadRequest)
			return
		}
		filter.CategoryID = &categoryID
	}

	if raw := query.Get("soloEnStock"); raw != "" {
		onlyInStock, err := strconv.ParseBool(raw)
		if err != nil {
			WriteError(w, r, "Invalid soloEnStock value", http.StatusBadRequest)
			return
		}
		filter.OnlyInStock = &onlyInStock
	}

	filter.Page, _ = strconv.Atoi(query.Get("page"))
	if filter.Page < 0 {
		filter.Page = 0
	}
	filter.Size, _ = strconv.Atoi(query.Get("size"))
	if filter.Size < 1 || filter.Size > 100 {
		filter.Size = 10
	}

	page, err := h.ProductService.Filter(r.Context(), filter)
	if err != nil {
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, page, "", http.StatusOK)
}

func (h *Handlers) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductService.GetAll(r.Context())
	if err != nil {
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, products, "", http.StatusOK)
}

//------------------ ADMIN ------------------//

func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, r, "Validation failed", validationFields(err))
		return
	}

	id, err := h.ProductService.Create(r.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			WriteValidationError(w, r, "Validation failed",
				map[string]string{"idCategoria": "category does not exist"})
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, id, "Product created", http.StatusCreated)
}

func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, "Invalid product id", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, r, "Validation failed", validationFields(err))
		return
	}

	if err := h.ProductService.Update(r.Context(), id, req.toInput()); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			WriteError(w, r, "Product not found", http.StatusNotFound)
		case errors.Is(err, service.ErrUnknownCategory):
			WriteValidationError(w, r, "Validation failed",
				map[string]string{"idCategoria": "category does not exist"})
		default:
			WriteError(w, r, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteNoContent(w)
}

func (h *Handlers) UpdateProductStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, "Invalid product id", http.StatusBadRequest)
		return
	}

	var req ProductStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, r, "Validation failed", validationFields(err))
		return
	}

	if err := h.ProductService.SetSoldOut(r.Context(), id, *req.SoldOut); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			WriteError(w, r, "Product not found", http.StatusNotFound)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteNoContent(w)
}

func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, "Invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.ProductService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			WriteError(w, r, "Product not found", http.StatusNotFound)
			return
		}
		WriteError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteNoContent(w)
}
