package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUploadFailed       = errors.New("fallo del host de medios")
)
