package service

import (
	"strings"

	"github.com/pageza/geladeira/backend/internal/catalog"
	"github.com/pageza/geladeira/backend/internal/models"
)

// MatchResult is the best scoring template for an ingredient list.
// Template is nil when no template matched any ingredient.
type MatchResult struct {
	Template *models.RecipeTemplate
	Score    int
}

// Matched reports whether a template was selected
func (m MatchResult) Matched() bool {
	return m.Template != nil && m.Score > 0
}

// Match scores every template in catalog order and keeps the first one with the
// highest score. A keyword matches an ingredient when either lower-cased string
// contains the other, so the keyword "ovo" matches "Ovos". Each keyword counts at
// most once per template.
func Match(ingredients []models.Ingredient, c *catalog.Catalog) MatchResult {
	if len(ingredients) == 0 || c.Len() == 0 {
		return MatchResult{}
	}

	available := make([]string, len(ingredients))
	for i, ing := range ingredients {
		available[i] = normalizeName(ing.Name)
	}

	var best MatchResult
	for i := 0; i < c.Len(); i++ {
		tmpl := c.At(i)
		// strictly greater: ties keep the earlier template
		if score := scoreTemplate(tmpl, available); score > best.Score {
			best = MatchResult{Template: tmpl, Score: score}
		}
	}
	return best
}

func scoreTemplate(tmpl *models.RecipeTemplate, available []string) int {
	score := 0
	for _, kw := range tmpl.TriggerKeywords {
		keyword := strings.ToLower(kw)
		for _, name := range available {
			if strings.Contains(name, keyword) || strings.Contains(keyword, name) {
				score++
				break
			}
		}
	}
	return score
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
