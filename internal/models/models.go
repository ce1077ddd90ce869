package models

import (
	"time"
)

// Product is a catalog piece. CategoryName is denormalized from the joined
// category row; ImageIDs is loaded from the producto_imagenes link table and
// keeps the upload order.
type Product struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"nombre" db:"nombre"`
	Description  string    `json:"descripcion" db:"descripcion"`
	Price        float64   `json:"precio" db:"precio"`
	SoldOut      bool      `json:"soldOut" db:"sold_out"`
	CategoryID   *int64    `json:"idCategoria" db:"categoria_id"`
	CategoryName *string   `json:"nombreCategoria" db:"categoria_nombre"`
	Height       float64   `json:"altura" db:"altura"`
	Width        float64   `json:"anchura" db:"anchura"`
	Diameter     float64   `json:"diametro" db:"diametro"`
	CreatedAt    time.Time `json:"fechaCreacion" db:"fecha_creacion"`
	ImageIDs     []int64   `json:"idsImagenes" db:"-"`
}

type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"nombre" db:"nombre"`
}

type Image struct {
	ID     int64  `json:"id" db:"id"`
	Path   string `json:"ruta" db:"ruta"`
	Format string `json:"formato" db:"formato"`
	Size   int64  `json:"tamano" db:"tamano"`
	Width  int    `json:"ancho" db:"ancho"`
	Height int    `json:"alto" db:"alto"`
}

type FindMePost struct {
	ID          int64         `json:"id" db:"id"`
	Title       string        `json:"titulo" db:"titulo"`
	Description string        `json:"descripcion" db:"descripcion"`
	StartDate   LocalDateTime `json:"fechaInicio" db:"fecha_inicio"`
	EndDate     LocalDateTime `json:"fechaFin" db:"fecha_fin"`
	Latitude    float64       `json:"latitud" db:"latitud"`
	Longitude   float64       `json:"longitud" db:"longitud"`
}

type Subscriber struct {
	ID                int64     `json:"id" db:"id"`
	Email             string    `json:"email" db:"email"`
	Verified          bool      `json:"verificado" db:"verificado"`
	VerificationToken string    `json:"-" db:"token_verificacion"`
	TokenExpiry       time.Time `json:"-" db:"fecha_expiracion_token"`
}

// Newsletter is both the stored template and an outgoing send.
type Newsletter struct {
	Subject string `json:"asunto" db:"asunto"`
	Message string `json:"mensaje" db:"mensaje"`
}

type User struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}
