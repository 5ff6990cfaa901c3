package repository

import "github.com/centraljoias/storefront-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID devuelve el producto (activo o no), o nil si no existe.
	GetByID(id string) (*entity.Product, error)
	// ListActive devuelve solo registros con active = true, en orden de
	// inserción, acotado por limit.
	ListActive(limit int) ([]*entity.Product, error)
	// Update reescribe la fila completa salvo id y created_at. Si el id no
	// existe es un no-op sin error.
	Update(product *entity.Product) error
}
