package usecase

import (
	"io"

	"github.com/centraljoias/storefront-api/internal/application/dto"
)

// UploadUseCase reenvía el binario al host de medios y devuelve la URL
// pública. Sin persistencia local, sin reintentos y sin validación de
// contenido: cualquier fallo del host se propaga al caller tal cual.
type UploadUseCase struct {
	uploader Uploader
}

// NewUploadUseCase construye el caso de uso de subida.
func NewUploadUseCase(uploader Uploader) *UploadUseCase {
	return &UploadUseCase{uploader: uploader}
}

// Upload sube el archivo y devuelve {url}.
func (uc *UploadUseCase) Upload(filename string, file io.Reader) (*dto.UploadResponse, error) {
	url, err := uc.uploader.Upload(filename, file)
	if err != nil {
		return nil, err
	}
	return &dto.UploadResponse{URL: url}, nil
}
