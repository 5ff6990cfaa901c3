package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/centraljoias/storefront-api/internal/domain/entity"
	"github.com/centraljoias/storefront-api/internal/domain/repository"
)

var _ repository.ContentRepository = (*ContentRepo)(nil)

// ContentRepo persistencia del documento de portada sobre una tabla jsonb de
// dos filas como máximo: la canónica "home" y, transitoriamente, la legada
// "Casa". Usable con pool o tx (Querier).
type ContentRepo struct {
	q Querier
}

// NewContentRepository construye el adaptador de persistencia de contenido.
func NewContentRepository(q Querier) *ContentRepo {
	return &ContentRepo{q: q}
}

// GetBySlug devuelve el documento bajo la clave dada, o nil si no existe.
func (r *ContentRepo) GetBySlug(slug string) (*entity.HomeContent, error) {
	var data json.RawMessage
	err := r.q.QueryRow(context.Background(),
		`SELECT data FROM home_content WHERE slug = $1`, slug,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get home content: %w", err)
	}
	var doc entity.HomeContent
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode home content: %w", err)
	}
	return &doc, nil
}

// DeleteBySlug elimina el documento bajo la clave dada; no-op si no existe.
func (r *ContentRepo) DeleteBySlug(slug string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM home_content WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete home content: %w", err)
	}
	return nil
}

// Upsert reemplaza completo el documento bajo doc.Slug, creándolo si falta.
// Es full-replace, no merge: el jsonb almacenado es exactamente doc.
func (r *ContentRepo) Upsert(doc *entity.HomeContent) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode home content: %w", err)
	}
	_, err = r.q.Exec(context.Background(),
		`INSERT INTO home_content (slug, data) VALUES ($1, $2)
		 ON CONFLICT (slug) DO UPDATE SET data = EXCLUDED.data`,
		doc.Slug, json.RawMessage(data),
	)
	if err != nil {
		return fmt.Errorf("upsert home content: %w", err)
	}
	return nil
}
