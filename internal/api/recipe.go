package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/geladeira/backend/internal/models"
	"github.com/pageza/geladeira/backend/internal/service"
)

// GenerateRecipeRequest carries the ingredients to cook with
type GenerateRecipeRequest struct {
	Ingredients []models.Ingredient `json:"ingredients" binding:"dive"`
}

type RecipeHandler struct {
	recipes   service.IRecipeService
	inventory service.IngredientSource
	limit     gin.HandlerFunc
	logger    *zap.Logger
}

// NewRecipeHandler creates a recipe handler. limit guards the generation
// endpoints and may be nil.
func NewRecipeHandler(recipes service.IRecipeService, inventory service.IngredientSource, limit gin.HandlerFunc, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes:   recipes,
		inventory: inventory,
		limit:     limit,
		logger:    logger,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/generate", h.limited(h.GenerateRecipe)...)
		recipes.GET("/suggestion", h.limited(h.SuggestRecipe)...)
		recipes.GET("/catalog", h.ListCatalog)
	}
}

func (h *RecipeHandler) limited(handler gin.HandlerFunc) []gin.HandlerFunc {
	if h.limit == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{h.limit, handler}
}

func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, ing := range req.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ingredient name is required"})
			return
		}
	}

	recipe, ok := h.recipes.GenerateRecipe(req.Ingredients)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no ingredients"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) SuggestRecipe(c *gin.Context) {
	recipe, ok := h.recipes.SuggestRecipe(h.inventory)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "the fridge is empty"})
		return
	}

	h.logger.Info("recipe suggested", zap.String("title", recipe.Title))
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) ListCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"templates": h.recipes.Catalog(),
	})
}
