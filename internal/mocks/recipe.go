package mocks

import (
	"github.com/pageza/geladeira/backend/internal/models"
	"github.com/pageza/geladeira/backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

var _ service.IRecipeService = (*MockRecipeService)(nil)

// GenerateRecipe mocks the GenerateRecipe method
func (m *MockRecipeService) GenerateRecipe(ingredients []models.Ingredient) (*models.Recipe, bool) {
	args := m.Called(ingredients)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.Recipe), args.Bool(1)
}

// SuggestRecipe mocks the SuggestRecipe method
func (m *MockRecipeService) SuggestRecipe(src service.IngredientSource) (*models.Recipe, bool) {
	args := m.Called(src)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.Recipe), args.Bool(1)
}

// Catalog mocks the Catalog method
func (m *MockRecipeService) Catalog() []models.RecipeTemplate {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.RecipeTemplate)
}
