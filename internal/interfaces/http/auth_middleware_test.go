package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centraljoias/storefront-api/internal/application/dto"
	pkgjwt "github.com/centraljoias/storefront-api/pkg/jwt"
)

const middlewareSecret = "middleware-test-secret"

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegida", AuthMiddleware(middlewareSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"subject": GetSubject(c)})
	})
	return app
}

func TestAuthMiddleware_TokenValido_DejaPasar(t *testing.T) {
	app := newProtectedApp()
	tok, err := pkgjwt.Generate(middlewareSecret, "admin", "test", 24)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin", body["subject"], "el subject del token queda en el contexto")
}

// Cualquier falla de autenticación responde 401 con el mismo código; el
// caller no debe poder distinguir la causa.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := newProtectedApp()

	expirado, err := pkgjwt.Generate(middlewareSecret, "admin", "test", -1)
	require.NoError(t, err)
	otroSecret, err := pkgjwt.Generate("otro-secret", "admin", "test", 24)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"sin header", ""},
		{"esquema incorrecto", "Token abc123"},
		{"bearer vacío", "Bearer "},
		{"token malformado", "Bearer no.es.jwt"},
		{"token expirado", "Bearer " + expirado},
		{"firmado con otro secret", "Bearer " + otroSecret},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protegida", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, "INVALID_TOKEN", body.Code)
		})
	}
}

func TestAuthMiddleware_BearerCaseInsensitive(t *testing.T) {
	app := newProtectedApp()
	tok, err := pkgjwt.Generate(middlewareSecret, "admin", "test", 24)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "el esquema se compara sin distinguir mayúsculas")
}
