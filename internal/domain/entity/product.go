package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Carousel flags de ubicación del producto en los carruseles de la portada
// más el orden de despliegue.
type Carousel struct {
	Home     bool `json:"home"`
	Promo    bool `json:"promo"`
	Featured bool `json:"destaque"`
	Order    int  `json:"order"`
}

// Product registro del catálogo. El borrado es siempre lógico: Active pasa a
// false y el registro se conserva para siempre; el catálogo público es
// exactamente el subconjunto con Active = true.
type Product struct {
	ID             string // generado en la creación, inmutable
	Name           string
	Category       string
	Price          decimal.Decimal
	PromoActive    bool
	PromoPrice     *decimal.Decimal // solo significativo con PromoActive
	Images         []string
	Specifications KeyValueMap
	Carousel       Carousel
	Active         bool
	CreatedAt      time.Time // se fija una vez, nunca se muta
}
