package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/centraljoias/storefront-api/internal/application/dto"
	"github.com/centraljoias/storefront-api/internal/domain"
	"github.com/centraljoias/storefront-api/internal/domain/entity"
	"github.com/centraljoias/storefront-api/internal/domain/repository"
)

// maxCatalogSize cota fija del listado para acotar el tamaño de respuesta.
const maxCatalogSize = 1000

// ProductUseCase casos de uso del catálogo. El update es un merge a nivel de
// campo (a diferencia del contenido de portada, que es full-replace) y el
// borrado es siempre lógico vía Active = false.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. ID y CreatedAt se generan aquí; Active inicia en
// true. Devuelve el registro almacenado incluyendo los campos generados.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.PromoPrice != nil && in.PromoPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Category:       in.Category,
		Price:          in.Price,
		PromoActive:    in.PromoActive,
		PromoPrice:     in.PromoPrice,
		Images:         in.Images,
		Specifications: in.Specifications,
		Carousel:       in.Carousel,
		Active:         true,
		CreatedAt:      time.Now().UTC(),
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if product.Specifications == nil {
		product.Specifications = entity.KeyValueMap{}
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo visible: solo registros activos, en orden de
// inserción, hasta maxCatalogSize.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListActive(maxCatalogSize)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica un merge parcial: solo los campos presentes cambian. La
// identidad es inmutable (el DTO no expone id ni created_at). Un id
// inexistente es un no-op que igual reporta éxito; el cliente admin
// desplegado depende de ese contrato.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.PromoActive != nil {
		product.PromoActive = *in.PromoActive
	}
	if in.PromoPrice != nil {
		product.PromoPrice = in.PromoPrice
	}
	if in.Images != nil {
		product.Images = *in.Images
	}
	if in.Specifications != nil {
		product.Specifications = *in.Specifications
	}
	if in.Carousel != nil {
		product.Carousel = *in.Carousel
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	return uc.repo.Update(product)
}

// Delete borrado lógico: Active pasa a false por el mismo camino de merge
// que Update. El registro nunca se elimina físicamente. Id inexistente:
// no-op con éxito, igual que Update.
func (uc *ProductUseCase) Delete(id string) error {
	inactive := false
	return uc.Update(id, dto.UpdateProductRequest{Active: &inactive})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	specs := p.Specifications
	if specs == nil {
		specs = entity.KeyValueMap{}
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Price:          p.Price,
		PromoActive:    p.PromoActive,
		PromoPrice:     p.PromoPrice,
		Images:         images,
		Specifications: specs,
		Carousel:       p.Carousel,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
	}
}
