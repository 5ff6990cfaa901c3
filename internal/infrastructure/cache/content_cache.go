// Package cache guarda en Redis una copia serializada del documento de
// portada para abaratar la lectura pública, que es por mucho la ruta más
// caliente del sitio.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/centraljoias/storefront-api/internal/application/usecase"
	"github.com/centraljoias/storefront-api/internal/domain/entity"
)

var _ usecase.ContentCache = (*ContentCache)(nil)

const contentKey = "home-content"

// Connect crea el cliente Redis y verifica la conexión con un ping.
func Connect(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// ContentCache cache best-effort del documento de portada. Los errores de
// Redis se tragan: la fuente de verdad siempre es la base.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewContentCache construye el cache con el TTL dado.
func NewContentCache(client *redis.Client, ttl time.Duration) *ContentCache {
	return &ContentCache{client: client, ttl: ttl}
}

// Get devuelve el documento cacheado, o false si no hay (o Redis falló).
func (c *ContentCache) Get() (*entity.HomeContent, bool) {
	data, err := c.client.Get(context.Background(), contentKey).Bytes()
	if err != nil {
		return nil, false
	}
	var doc entity.HomeContent
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	return &doc, true
}

// Set guarda el documento con TTL.
func (c *ContentCache) Set(doc *entity.HomeContent) {
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	_ = c.client.Set(context.Background(), contentKey, data, c.ttl).Err()
}

// Invalidate descarta la copia cacheada; se llama tras cada escritura.
func (c *ContentCache) Invalidate() {
	_ = c.client.Del(context.Background(), contentKey).Err()
}
