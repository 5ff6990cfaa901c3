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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Images, Specifications y Carousel viajan como jsonb. Usable con pool o tx.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	images, specs, carousel, err := encodeJSONFields(product)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (id, name, category, price, promo_active, promo_price, images, specifications, carousel, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Price,
		product.PromoActive, product.PromoPrice, images, specs, carousel,
		product.Active, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, activo o no. Nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, category, price, promo_active, promo_price, images, specifications, carousel, active, created_at
		FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ListActive lista solo registros activos en orden de inserción.
func (r *ProductRepo) ListActive(limit int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, category, price, promo_active, promo_price, images, specifications, carousel, active, created_at
		FROM products WHERE active = TRUE ORDER BY created_at LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update reescribe la fila completa salvo id y created_at. Cero filas
// afectadas no es un error: el contrato del catálogo no distingue "actualizó"
// de "no encontró nada".
func (r *ProductRepo) Update(product *entity.Product) error {
	images, specs, carousel, err := encodeJSONFields(product)
	if err != nil {
		return err
	}
	query := `
		UPDATE products
		SET name = $2, category = $3, price = $4, promo_active = $5, promo_price = $6,
		    images = $7, specifications = $8, carousel = $9, active = $10
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Price,
		product.PromoActive, product.PromoPrice, images, specs, carousel,
		product.Active,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func encodeJSONFields(p *entity.Product) (images, specs, carousel json.RawMessage, err error) {
	if images, err = json.Marshal(p.Images); err != nil {
		return nil, nil, nil, fmt.Errorf("encode images: %w", err)
	}
	if specs, err = json.Marshal(p.Specifications); err != nil {
		return nil, nil, nil, fmt.Errorf("encode specifications: %w", err)
	}
	if carousel, err = json.Marshal(p.Carousel); err != nil {
		return nil, nil, nil, fmt.Errorf("encode carousel: %w", err)
	}
	return images, specs, carousel, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var images, specs, carousel json.RawMessage
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.PromoActive, &p.PromoPrice,
		&images, &specs, &carousel, &p.Active, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("decode images: %w", err)
	}
	if err := json.Unmarshal(specs, &p.Specifications); err != nil {
		return nil, fmt.Errorf("decode specifications: %w", err)
	}
	if err := json.Unmarshal(carousel, &p.Carousel); err != nil {
		return nil, fmt.Errorf("decode carousel: %w", err)
	}
	return &p, nil
}
