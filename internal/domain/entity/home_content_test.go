package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centraljoias/storefront-api/internal/domain/entity"
)

// El textarea del admin envía los campos multilínea como un solo string; el
// decode debe normalizarlos a líneas recortadas y sin vacías.
func TestStringList_UnmarshalString_Normaliza(t *testing.T) {
	var hero entity.HomeHero
	raw := `{"texto": "line1\nline2\n\nline3"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &hero))

	assert.Equal(t, entity.StringList{"line1", "line2", "line3"}, hero.Text,
		"la línea en blanco debe descartarse")
}

func TestStringList_UnmarshalString_RecortaEspacios(t *testing.T) {
	var list entity.StringList
	require.NoError(t, json.Unmarshal([]byte(`"  hola  \n\t mundo \n   "`), &list))
	assert.Equal(t, entity.StringList{"hola", "mundo"}, list)
}

func TestStringList_UnmarshalArray_PasaTalCual(t *testing.T) {
	var list entity.StringList
	require.NoError(t, json.Unmarshal([]byte(`["a", "b", "c"]`), &list))
	assert.Equal(t, entity.StringList{"a", "b", "c"}, list)
}

func TestStringList_MarshalNil_EmiteArregloVacio(t *testing.T) {
	var list entity.StringList
	data, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data), "nunca debe emitirse null")
}

func TestStringList_UnmarshalInvalido_RetornaError(t *testing.T) {
	var list entity.StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &list))
}

func TestDefaultHomeContent_EstructuralmenteCompleto(t *testing.T) {
	doc := entity.DefaultHomeContent()

	assert.Equal(t, entity.HomeSlug, doc.Slug)
	assert.NotNil(t, doc.Hero.Text)
	assert.NotNil(t, doc.About.Messages)
	assert.NotNil(t, doc.About.Texts)
	assert.NotNil(t, doc.About.Photos)
	assert.NotNil(t, doc.Contact.Stores)
	assert.NotNil(t, doc.Footer.Stores)
	assert.NotNil(t, doc.Footer.Certificates)

	// El default debe serializar con todos los campos presentes y vacíos.
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"slug":"home"`)
	assert.Contains(t, string(data), `"nome_loja":""`)
	assert.NotContains(t, string(data), "null")
}

func TestHomeContent_RoundTrip(t *testing.T) {
	raw := `{
		"slug": "home",
		"branding": {"nome_loja": "Central Joias", "slogan": "brilla", "logo_url": "https://cdn/logo.png"},
		"hero": {"imagem": "https://cdn/h.jpg", "titulo": "Hola", "texto": "a\nb", "frase_impacto": "!", "cta_texto": "Ver", "cta_link": "/p"},
		"sobre": {"titulo": "Sobre", "mensagens": ["m1"], "textos": "t1\nt2", "fotos": ["f1"]},
		"contato": {"titulo": "C", "subtitulo": "S", "instagram_url": "https://ig", "lojas": [{"nome": "Matriz", "telefone": "11 9999"}]},
		"footer": {"institucional": "I", "cnpj": "00.000.000/0001-00", "selo_texto": "sello", "lojas": [], "certificados": ["c1"]}
	}`
	var doc entity.HomeContent
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, entity.StringList{"a", "b"}, doc.Hero.Text)
	assert.Equal(t, entity.StringList{"t1", "t2"}, doc.About.Texts)
	assert.Equal(t, entity.StringList{"m1"}, doc.About.Messages)
	assert.Equal(t, "Matriz", doc.Contact.Stores[0]["nome"])

	// Re-serializado, el campo multilínea queda como arreglo.
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"texto":["a","b"]`)
}
