package usecase

import (
	"context"

	"github.com/centraljoias/storefront-api/internal/domain/entity"
	"github.com/centraljoias/storefront-api/internal/domain/repository"
)

// ContentUseCase lectura y reemplazo del documento singleton de portada.
// La lectura prioriza la clave canónica "home" y cae a la clave legada
// "Casa" (esquema anterior); la escritura colapsa todo sobre "home".
type ContentUseCase struct {
	repo  repository.ContentRepository
	tx    ContentTxRunner
	cache ContentCache // nil = cache deshabilitado
}

// NewContentUseCase construye el caso de uso de contenido.
func NewContentUseCase(repo repository.ContentRepository, tx ContentTxRunner, cache ContentCache) *ContentUseCase {
	return &ContentUseCase{repo: repo, tx: tx, cache: cache}
}

// Read devuelve el documento de portada. La ausencia no es excepcional:
// sin documento canónico ni legado se devuelve el default estructuralmente
// completo, nunca un error.
func (uc *ContentUseCase) Read() (*entity.HomeContent, error) {
	if uc.cache != nil {
		if doc, ok := uc.cache.Get(); ok {
			return doc, nil
		}
	}
	doc, err := uc.repo.GetBySlug(entity.HomeSlug)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc, err = uc.repo.GetBySlug(entity.LegacySlug)
		if err != nil {
			return nil, err
		}
	}
	if doc == nil {
		return entity.DefaultHomeContent(), nil
	}
	if uc.cache != nil {
		uc.cache.Set(doc)
	}
	return doc, nil
}

// Write reemplaza completo el documento canónico. Fuerza slug = "home" sin
// importar lo que envíe el cliente, borra el documento legado "Casa" y hace
// upsert del nuevo; ambos pasos van en una sola transacción. Los campos
// multilínea ya llegan normalizados a listas por el decode de StringList.
func (uc *ContentUseCase) Write(doc *entity.HomeContent) error {
	doc.Slug = entity.HomeSlug
	err := uc.tx.Run(context.Background(), func(repo repository.ContentRepository) error {
		if err := repo.DeleteBySlug(entity.LegacySlug); err != nil {
			return err
		}
		return repo.Upsert(doc)
	})
	if err != nil {
		return err
	}
	if uc.cache != nil {
		uc.cache.Invalidate()
	}
	return nil
}
