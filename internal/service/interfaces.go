package service

import (
	"github.com/google/uuid"

	"github.com/pageza/geladeira/backend/internal/models"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	GenerateRecipe(ingredients []models.Ingredient) (*models.Recipe, bool)
	SuggestRecipe(src IngredientSource) (*models.Recipe, bool)
	Catalog() []models.RecipeTemplate
}

// IInventoryService defines the interface for fridge inventory operations
type IInventoryService interface {
	IngredientSource
	List() []models.Food
	Get(id uuid.UUID) (models.Food, error)
	Add(in FoodInput) (models.Food, error)
	Update(id uuid.UUID, in FoodInput) (models.Food, error)
	Delete(id uuid.UUID) error
	Units() []string
}

var (
	_ IRecipeService    = (*RecipeService)(nil)
	_ IInventoryService = (*InventoryService)(nil)
)
