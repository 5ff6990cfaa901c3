package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AckResponse confirmación de escritura: {"ok": true}.
type AckResponse struct {
	OK bool `json:"ok"`
}

// UploadResponse URL pública devuelta por el host de medios.
type UploadResponse struct {
	URL string `json:"url"`
}
