package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/geladeira/backend/internal/models"
)

func validTemplate(title string, keywords ...string) models.RecipeTemplate {
	return models.RecipeTemplate{
		Title:           title,
		TriggerKeywords: keywords,
		Instructions:    []string{"Misture tudo"},
		PrepTime:        "5 minutos",
		Servings:        1,
	}
}

func TestDefaultCatalogOrder(t *testing.T) {
	c := Default()
	require.Equal(t, 6, c.Len())

	titles := make([]string, 0, c.Len())
	for _, tmpl := range c.Templates() {
		titles = append(titles, tmpl.Title)
	}
	assert.Equal(t, []string{
		"Omelete Especial",
		"Salada Fresca",
		"Sanduíche Natural",
		"Vitamina Nutritiva",
		"Macarrão Simples",
		"Sopa Caseira",
	}, titles)
	assert.Equal(t, []string{"ovo", "ovos"}, c.At(0).TriggerKeywords)
	assert.Equal(t, "sopa", c.At(5).Category)
}

func TestTemplatesReturnsCopy(t *testing.T) {
	c := Default()
	got := c.Templates()
	got[0].Title = "changed"
	got[0].TriggerKeywords[0] = "changed"

	assert.Equal(t, "Omelete Especial", c.At(0).Title)
	assert.Equal(t, "ovo", c.At(0).TriggerKeywords[0])
}

func TestNewCopiesInput(t *testing.T) {
	tmpl := validTemplate("Arroz", "arroz")
	c, err := New(tmpl)
	require.NoError(t, err)

	tmpl.TriggerKeywords[0] = "feijão"
	assert.Equal(t, "arroz", c.At(0).TriggerKeywords[0])
}

func TestNewRejectsInvalidTemplates(t *testing.T) {
	noInstructions := validTemplate("Arroz", "arroz")
	noInstructions.Instructions = nil
	noServings := validTemplate("Arroz", "arroz")
	noServings.Servings = 0

	tests := map[string]models.RecipeTemplate{
		"missing title":     validTemplate(" ", "arroz"),
		"no keywords":       validTemplate("Arroz"),
		"empty keyword":     validTemplate("Arroz", "arroz", "  "),
		"duplicate keyword": validTemplate("Arroz", "arroz", "ARROZ"),
		"no instructions":   noInstructions,
		"zero servings":     noServings,
	}
	for name, tmpl := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(validTemplate("Ok", "ok"), tmpl)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTemplate))
			assert.Contains(t, err.Error(), "template 1")
		})
	}
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Templates())
}

const yamlCatalog = `
templates:
  - title: Arroz Doce
    category: sobremesa
    trigger_keywords: [arroz, leite]
    instructions:
      - Cozinhe o arroz no leite
      - Adoce e sirva
    prep_time: 40 minutos
    servings: 6
  - title: Pipoca
    trigger_keywords: [milho]
    instructions: [Estoure o milho]
    prep_time: 5 minutos
    servings: 2
`

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(yamlCatalog))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	first := c.At(0)
	assert.Equal(t, "Arroz Doce", first.Title)
	assert.Equal(t, []string{"arroz", "leite"}, first.TriggerKeywords)
	assert.Equal(t, "40 minutos", first.PrepTime)
	assert.Equal(t, 6, first.Servings)
	assert.Equal(t, "sobremesa", first.Category)
	assert.Equal(t, "Pipoca", c.At(1).Title)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("templates: []\n"))
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	_, err = Decode(strings.NewReader("templates:\n  - title: X\n    unknown: 1\n"))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("templates:\n  - title: X\n    trigger_keywords: [x]\n    instructions: [y]\n    servings: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlCatalog), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
