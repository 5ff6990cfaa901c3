package repository

import "github.com/centraljoias/storefront-api/internal/domain/entity"

// ContentRepository define el puerto de persistencia del documento de portada.
type ContentRepository interface {
	// GetBySlug devuelve el documento bajo la clave dada, o nil si no existe.
	GetBySlug(slug string) (*entity.HomeContent, error)
	// DeleteBySlug elimina el documento bajo la clave dada; no-op si no existe.
	DeleteBySlug(slug string) error
	// Upsert reemplaza completo el documento bajo doc.Slug, creándolo si falta.
	Upsert(doc *entity.HomeContent) error
}
