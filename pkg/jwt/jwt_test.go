package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/centraljoias/storefront-api/pkg/jwt"
)

const (
	testSecret  = "test-secret-key-for-unit-tests"
	testSubject = "admin"
	testIssuer  = "storefront-api-test"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, testIssuer, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSubject, subject, "el subject debe sobrevivir el roundtrip")
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 hora (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testSubject, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, testIssuer, 24)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_TokenMalformado_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testSubject, testIssuer, 24)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}
