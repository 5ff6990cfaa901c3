package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/centraljoias/storefront-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. id y created_at se
// generan en el servidor; si el cliente los envía se ignoran.
type CreateProductRequest struct {
	Name           string             `json:"name"`
	Category       string             `json:"category"`
	Price          decimal.Decimal    `json:"price"`
	PromoActive    bool               `json:"promo_active"`
	PromoPrice     *decimal.Decimal   `json:"promo_price"`
	Images         []string           `json:"images"`
	Specifications entity.KeyValueMap `json:"specifications"`
	Carousel       entity.Carousel    `json:"carousel"`
}

// UpdateProductRequest entrada parcial: solo los campos presentes se aplican,
// el resto conserva su valor. id y created_at no son escribibles (no existen
// aquí, cualquier valor enviado se descarta al parsear).
type UpdateProductRequest struct {
	Name           *string             `json:"name"`
	Category       *string             `json:"category"`
	Price          *decimal.Decimal    `json:"price"`
	PromoActive    *bool               `json:"promo_active"`
	PromoPrice     *decimal.Decimal    `json:"promo_price"`
	Images         *[]string           `json:"images"`
	Specifications *entity.KeyValueMap `json:"specifications"`
	Carousel       *entity.Carousel    `json:"carousel"`
	Active         *bool               `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Category       string             `json:"category"`
	Price          decimal.Decimal    `json:"price"`
	PromoActive    bool               `json:"promo_active"`
	PromoPrice     *decimal.Decimal   `json:"promo_price"`
	Images         []string           `json:"images"`
	Specifications entity.KeyValueMap `json:"specifications"`
	Carousel       entity.Carousel    `json:"carousel"`
	Active         bool               `json:"active"`
	CreatedAt      time.Time          `json:"created_at"`
}
