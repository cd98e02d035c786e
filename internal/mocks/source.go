package mocks

import (
	"github.com/pageza/geladeira/backend/internal/models"
)

// StaticSource serves a fixed ingredient list
type StaticSource []models.Ingredient

func (s StaticSource) Ingredients() []models.Ingredient {
	out := make([]models.Ingredient, len(s))
	copy(out, s)
	return out
}
