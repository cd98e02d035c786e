package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pageza/geladeira/backend/internal/models"
)

const (
	FallbackTitle    = "Prato Especial da Casa"
	fallbackPrepTime = "25 minutos"
)

var fallbackInstructions = []string{
	"Prepare todos os ingredientes, lavando e cortando conforme necessário",
	"Aqueça uma frigideira ou panela em fogo médio",
	"Comece pelos ingredientes que demoram mais para cozinhar",
	"Adicione temperos como sal, pimenta e ervas a gosto",
	"Cozinhe até todos os ingredientes estarem no ponto desejado",
	"Prove e ajuste o tempero se necessário",
	"Sirva quente e aproveite sua criação culinária!",
}

// Compose renders the final recipe from the match outcome. Without a match the
// generic house dish is returned, serving 4 when at least 4 ingredients are given.
func Compose(ingredients []models.Ingredient, m MatchResult) *models.Recipe {
	lines := make([]string, len(ingredients))
	for i, ing := range ingredients {
		lines[i] = FormatIngredient(ing)
	}

	if !m.Matched() {
		servings := 2
		if len(ingredients) >= 4 {
			servings = 4
		}
		return &models.Recipe{
			Title:        FallbackTitle,
			Ingredients:  lines,
			Instructions: append([]string(nil), fallbackInstructions...),
			PrepTime:     fallbackPrepTime,
			Servings:     servings,
		}
	}

	return &models.Recipe{
		Title:        m.Template.Title,
		Ingredients:  lines,
		Instructions: append([]string(nil), m.Template.Instructions...),
		PrepTime:     m.Template.PrepTime,
		Servings:     m.Template.Servings,
	}
}

// FormatIngredient renders "<quantity> <unit> de <name>" with the name lower-cased
func FormatIngredient(ing models.Ingredient) string {
	return fmt.Sprintf("%s %s de %s", formatQuantity(ing.Quantity), ing.Unit, strings.ToLower(ing.Name))
}

// formatQuantity prints the shortest exact decimal, switching to exponent form
// ("1e+21", "1.5e-7") below 1e-6 and from 1e21 up
func formatQuantity(q float64) string {
	abs := math.Abs(q)
	switch {
	case q == 0:
		return "0"
	case math.IsNaN(q):
		return "NaN"
	case math.IsInf(q, 1):
		return "Infinity"
	case math.IsInf(q, -1):
		return "-Infinity"
	case abs >= 1e21 || abs < 1e-6:
		mant, exp, _ := strings.Cut(strconv.FormatFloat(q, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}
