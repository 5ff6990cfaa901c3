package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Claves del documento de contenido. Existe exactamente un documento lógico
// bajo HomeSlug; LegacySlug puede quedar de un esquema anterior y se usa solo
// como fuente de lectura de respaldo hasta la siguiente escritura.
const (
	HomeSlug   = "home"
	LegacySlug = "Casa"
)

// StringList es una secuencia de líneas de texto. En el wire acepta tanto un
// arreglo JSON como un string único separado por saltos de línea (el textarea
// del admin envía esto último); el string se normaliza a líneas recortadas y
// no vacías antes de persistir.
type StringList []string

// UnmarshalJSON acepta string o []string. El arreglo pasa tal cual.
func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*s = SplitLines(raw)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = list
	return nil
}

// MarshalJSON emite siempre un arreglo, nunca null.
func (s StringList) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// SplitLines divide en saltos de línea, recorta cada línea y descarta vacías.
func SplitLines(raw string) []string {
	out := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// KeyValueMap modela los registros sueltos de tienda/especificación. Las
// claves habituales son "nome", "endereco" y "telefone" para tiendas, pero no
// se valida ningún esquema: el admin decide qué claves envía.
type KeyValueMap map[string]string

// HomeBranding identidad visual de la tienda.
type HomeBranding struct {
	StoreName string `json:"nome_loja"`
	Slogan    string `json:"slogan"`
	LogoURL   string `json:"logo_url"`
}

// HomeHero sección principal de la portada.
type HomeHero struct {
	Image     string     `json:"imagem"`
	Title     string     `json:"titulo"`
	Text      StringList `json:"texto"`
	Catchline string     `json:"frase_impacto"`
	CTAText   string     `json:"cta_texto"`
	CTALink   string     `json:"cta_link"`
}

// HomeAbout sección "sobre la tienda".
type HomeAbout struct {
	Title    string     `json:"titulo"`
	Messages StringList `json:"mensagens"`
	Texts    StringList `json:"textos"`
	Photos   []string   `json:"fotos"`
}

// HomeContact sección de contacto.
type HomeContact struct {
	Title        string        `json:"titulo"`
	Subtitle     string        `json:"subtitulo"`
	InstagramURL string        `json:"instagram_url"`
	Stores       []KeyValueMap `json:"lojas"`
}

// HomeFooter pie de página institucional.
type HomeFooter struct {
	Institutional string        `json:"institucional"`
	CNPJ          string        `json:"cnpj"`
	SealText      string        `json:"selo_texto"`
	Stores        []KeyValueMap `json:"lojas"`
	Certificates  []string      `json:"certificados"`
}

// HomeContent documento singleton de la portada. Se reemplaza completo en
// cada escritura autorizada: los campos omitidos se pierden (el admin siempre
// envía la estructura completa).
type HomeContent struct {
	Slug     string       `json:"slug"`
	Branding HomeBranding `json:"branding"`
	Hero     HomeHero     `json:"hero"`
	About    HomeAbout    `json:"sobre"`
	Contact  HomeContact  `json:"contato"`
	Footer   HomeFooter   `json:"footer"`
}

// DefaultHomeContent devuelve un documento estructuralmente completo con
// todos los campos en su valor vacío. La ausencia de contenido no es un
// error: la lectura siempre tiene algo que devolver.
func DefaultHomeContent() *HomeContent {
	return &HomeContent{
		Slug: HomeSlug,
		Hero: HomeHero{
			Text: StringList{},
		},
		About: HomeAbout{
			Messages: StringList{},
			Texts:    StringList{},
			Photos:   []string{},
		},
		Contact: HomeContact{
			Stores: []KeyValueMap{},
		},
		Footer: HomeFooter{
			Stores:       []KeyValueMap{},
			Certificates: []string{},
		},
	}
}
