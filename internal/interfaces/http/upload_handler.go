package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/centraljoias/storefront-api/internal/application/dto"
	"github.com/centraljoias/storefront-api/internal/application/usecase"
)

// UploadHandler reenvía el archivo multipart al host de medios.
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

// NewUploadHandler construye el handler de subida.
func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imagen al host de medios
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Imagen a subir"
// @Success      200   {object}  dto.UploadResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo multipart 'file' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	defer f.Close()

	out, err := h.uc.Upload(fh.Filename, f)
	if err != nil {
		// El mensaje del host viaja al caller tal cual.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPLOAD_ERROR", Message: err.Error()})
	}
	return c.JSON(out)
}
