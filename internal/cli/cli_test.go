package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/geladeira/backend/internal/models"
	"github.com/pageza/geladeira/backend/internal/service"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseItem(t *testing.T) {
	ing, err := parseItem("Ovos:12:unidade(s)")
	require.NoError(t, err)
	assert.Equal(t, models.Ingredient{Name: "Ovos", Quantity: 12, Unit: "unidade(s)"}, ing)

	ing, err = parseItem(" Leite : 1.5 ")
	require.NoError(t, err)
	assert.Equal(t, models.Ingredient{Name: "Leite", Quantity: 1.5, Unit: service.DefaultUnit}, ing)

	for _, bad := range []string{"Ovos", ":1", "Ovos:zero", "Ovos:0", "Ovos:-1:g", "Ovos:NaN", "Ovos:Inf", "Ovos:+Inf:g"} {
		_, err := parseItem(bad)
		assert.Error(t, err, bad)
	}
}

func TestSuggestJSON(t *testing.T) {
	out, err := run(t, "suggest", "-i", "Tomate:3", "-i", "Leite:1:l", "-o", "json")
	require.NoError(t, err)

	var r models.Recipe
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "Salada Fresca", r.Title)
	assert.Equal(t, []string{"3 unidade(s) de tomate", "1 l de leite"}, r.Ingredients)
}

func TestSuggestTable(t *testing.T) {
	out, err := run(t, "suggest", "--item", "Abobrinha:2")
	require.NoError(t, err)
	assert.Contains(t, out, service.FallbackTitle)
	assert.Contains(t, out, "2 unidade(s) de abobrinha")
	assert.Contains(t, out, "25 minutos · 2 porções")
}

func TestSuggestErrors(t *testing.T) {
	_, err := run(t, "suggest")
	assert.ErrorIs(t, err, errNoItems)

	_, err = run(t, "suggest", "-i", "Ovos")
	assert.Error(t, err)

	_, err = run(t, "suggest", "-i", "Ovos:1", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "Omelete Especial")
	assert.Contains(t, out, "batata, cenoura, aipo, cebola")
}

func TestCatalogFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`templates:
  - title: Pipoca
    trigger_keywords: [milho]
    instructions: [Estoure o milho]
    prep_time: 5 minutos
    servings: 2
`), 0o600))

	out, err := run(t, "--catalog", path, "suggest", "-i", "Milho:1:xícara(s)", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Pipoca"`)

	_, err = run(t, "--catalog", filepath.Join(t.TempDir(), "nope.yaml"), "catalog")
	assert.Error(t, err)
}
