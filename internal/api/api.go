package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/geladeira/backend/internal/service"
)

// Services groups what the HTTP layer depends on
type Services struct {
	Recipes   service.IRecipeService
	Inventory service.IInventoryService
	// RecipeLimit guards the generation endpoints; nil disables it
	RecipeLimit gin.HandlerFunc
}

// SetupAPI registers every route under /api/v1 plus the health check
func SetupAPI(router *gin.Engine, svc Services, logger *zap.Logger) {
	router.GET("/health", Health)

	v1 := router.Group("/api/v1")
	{
		recipeHandler := NewRecipeHandler(svc.Recipes, svc.Inventory, svc.RecipeLimit, logger)
		foodHandler := NewFoodHandler(svc.Inventory)

		recipeHandler.RegisterRoutes(v1)
		foodHandler.RegisterRoutes(v1)
	}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
