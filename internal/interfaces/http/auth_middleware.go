package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/centraljoias/storefront-api/internal/application/dto"
	"github.com/centraljoias/storefront-api/pkg/jwt"
)

// LocalSubject key del subject del token en c.Locals.
const LocalSubject = "subject"

// AuthMiddleware valida el Bearer Token y deja el subject en c.Locals. Toda
// falla (header ausente, formato, firma, expiración) responde 401 con el
// mismo código: el caller no distingue la causa.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		subject, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		c.Locals(LocalSubject, subject)
		return c.Next()
	}
}

// GetSubject devuelve el subject del contexto (después del middleware de auth).
func GetSubject(c *fiber.Ctx) string {
	v := c.Locals(LocalSubject)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
