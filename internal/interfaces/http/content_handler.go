package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/centraljoias/storefront-api/internal/application/dto"
	"github.com/centraljoias/storefront-api/internal/application/usecase"
	"github.com/centraljoias/storefront-api/internal/domain/entity"
)

// ContentHandler maneja la lectura pública y la escritura autorizada del
// documento de portada.
type ContentHandler struct {
	uc *usecase.ContentUseCase
}

// NewContentHandler construye el handler de contenido.
func NewContentHandler(uc *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// Get godoc
// @Summary      Contenido de la portada
// @Tags         content
// @Produce      json
// @Success      200  {object}  entity.HomeContent
// @Router       /api/home-content [get]
func (h *ContentHandler) Get(c *fiber.Ctx) error {
	doc, err := h.uc.Read()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(doc)
}

// Put godoc
// @Summary      Reemplazar el contenido de la portada
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.HomeContent  true  "Documento completo; los campos omitidos se pierden"
// @Success      200   {object}  dto.AckResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/home-content [put]
func (h *ContentHandler) Put(c *fiber.Ctx) error {
	var doc entity.HomeContent
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cuerpo inválido"})
	}
	if err := h.uc.Write(&doc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.AckResponse{OK: true})
}
