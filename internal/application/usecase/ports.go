package usecase

import (
	"context"
	"io"

	"github.com/centraljoias/storefront-api/internal/domain/entity"
	"github.com/centraljoias/storefront-api/internal/domain/repository"
)

// ContentTxRunner ejecuta fn con un ContentRepository atado a una transacción.
// La escritura de portada borra la clave legada y reemplaza la canónica en un
// solo commit para que ningún lector observe el estado intermedio.
type ContentTxRunner interface {
	Run(ctx context.Context, fn func(repo repository.ContentRepository) error) error
}

// ContentCache cache de lectura del documento de portada. Es best-effort:
// los fallos del backend de cache no deben propagarse.
type ContentCache interface {
	Get() (*entity.HomeContent, bool)
	Set(doc *entity.HomeContent)
	Invalidate()
}

// Uploader puerto de salida hacia el host externo de medios. Devuelve la URL
// pública segura del recurso subido.
type Uploader interface {
	Upload(filename string, file io.Reader) (string, error)
}
