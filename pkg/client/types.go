// Package client is the Go SDK for the ceramic-affair API. It mirrors
// the wire contract of the server: success envelopes, the error envelope
// with optional per-field validation messages, bearer-token admin calls
// and the public catalog surface.
package client

type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"nombre"`
	Description  string  `json:"descripcion"`
	Price        float64 `json:"precio"`
	SoldOut      bool    `json:"soldOut"`
	CategoryID   *int64  `json:"idCategoria"`
	CategoryName *string `json:"nombreCategoria"`
	Height       float64 `json:"altura"`
	Width        float64 `json:"anchura"`
	Diameter     float64 `json:"diametro"`
	CreatedAt    string  `json:"fechaCreacion"`
	ImageIDs     []int64 `json:"idsImagenes"`
}

type ProductRequest struct {
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
	SoldOut     bool    `json:"soldOut"`
	CategoryID  *int64  `json:"idCategoria,omitempty"`
	Height      float64 `json:"altura"`
	Width       float64 `json:"anchura"`
	Diameter    float64 `json:"diametro"`
	ImageIDs    []int64 `json:"idsImagenes"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

type Image struct {
	ID     int64  `json:"id"`
	Path   string `json:"ruta"`
	Format string `json:"formato"`
	Size   int64  `json:"tamano"`
	Width  int    `json:"ancho"`
	Height int    `json:"alto"`
}

type FindMePost struct {
	ID          int64   `json:"id"`
	Title       string  `json:"titulo"`
	Description string  `json:"descripcion"`
	StartDate   string  `json:"fechaInicio"`
	EndDate     string  `json:"fechaFin"`
	Latitude    float64 `json:"latitud"`
	Longitude   float64 `json:"longitud"`
}

type Newsletter struct {
	Subject string `json:"asunto"`
	Message string `json:"mensaje"`
}

type ContactForm struct {
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Message string `json:"mensaje"`
}

// Page mirrors the server's page envelope. TotalPages stays 0 until the
// first response arrives, which callers treat as "unknown yet".
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}
