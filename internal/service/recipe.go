package service

import (
	"go.uber.org/zap"

	"github.com/pageza/geladeira/backend/internal/catalog"
	"github.com/pageza/geladeira/backend/internal/models"
)

// IngredientSource supplies a snapshot of the ingredients currently on hand
type IngredientSource interface {
	Ingredients() []models.Ingredient
}

// RecipeService picks a recipe for a set of ingredients. It holds no mutable
// state and is safe for concurrent use.
type RecipeService struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(c *catalog.Catalog, logger *zap.Logger) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeService{
		catalog: c,
		logger:  logger,
	}
}

// GenerateRecipe returns false only when no ingredients are given
func (s *RecipeService) GenerateRecipe(ingredients []models.Ingredient) (*models.Recipe, bool) {
	if len(ingredients) == 0 {
		return nil, false
	}

	m := Match(ingredients, s.catalog)
	recipe := Compose(ingredients, m)

	s.logger.Debug("recipe generated",
		zap.String("title", recipe.Title),
		zap.Int("score", m.Score),
		zap.Bool("fallback", !m.Matched()),
		zap.Int("ingredients", len(ingredients)),
	)
	return recipe, true
}

// SuggestRecipe generates a recipe from whatever the source currently holds
func (s *RecipeService) SuggestRecipe(src IngredientSource) (*models.Recipe, bool) {
	return s.GenerateRecipe(src.Ingredients())
}

// Catalog returns the templates in catalog order
func (s *RecipeService) Catalog() []models.RecipeTemplate {
	return s.catalog.Templates()
}
