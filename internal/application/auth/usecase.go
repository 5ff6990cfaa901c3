package auth

import (
	"github.com/centraljoias/storefront-api/internal/application/dto"
	"github.com/centraljoias/storefront-api/internal/domain"
	"github.com/centraljoias/storefront-api/pkg/jwt"
)

// AdminConfig identidad única de administración.
type AdminConfig struct {
	Username string
	Password string
}

// JWTConfig parámetros de firma del token.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase emite tokens para la identidad de admin configurada. No hay
// tabla de usuarios: las credenciales viven en la configuración y se comparan
// con igualdad estricta.
type AuthUseCase struct {
	admin  AdminConfig
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(admin AdminConfig, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{admin: admin, jwtCfg: jwtCfg}
}

// Login compara username y password (case-sensitive) contra la identidad
// configurada y emite un JWT con subject = username. En caso de mismatch no
// se produce ningún token.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username != uc.admin.Username || in.Password != uc.admin.Password {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
