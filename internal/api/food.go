package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/geladeira/backend/internal/service"
)

type FoodHandler struct {
	inventory service.IInventoryService
}

func NewFoodHandler(inventory service.IInventoryService) *FoodHandler {
	return &FoodHandler{inventory: inventory}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	foods := router.Group("/foods")
	{
		foods.GET("", h.ListFoods)
		foods.GET("/units", h.ListUnits)
		foods.GET("/:id", h.GetFood)
		foods.POST("", h.CreateFood)
		foods.PUT("/:id", h.UpdateFood)
		foods.DELETE("/:id", h.DeleteFood)
	}
}

func (h *FoodHandler) ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"foods": h.inventory.List(),
	})
}

func (h *FoodHandler) ListUnits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"units": h.inventory.Units(),
	})
}

func (h *FoodHandler) GetFood(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	food, err := h.inventory.Get(id)
	if err != nil {
		writeInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) CreateFood(c *gin.Context) {
	var in service.FoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.inventory.Add(in)
	if err != nil {
		writeInventoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, food)
}

func (h *FoodHandler) UpdateFood(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in service.FoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.inventory.Update(id, in)
	if err != nil {
		writeInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) DeleteFood(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.inventory.Delete(id); err != nil {
		writeInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Food deleted successfully",
		"id":      id,
	})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return uuid.Nil, false
	}
	return id, true
}

func writeInventoryError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid food", "fields": verr.Fields})
	case errors.Is(err, service.ErrFoodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
	default:
		_ = c.Error(err)
	}
}
