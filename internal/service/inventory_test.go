package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/geladeira/backend/internal/models"
)

func TestInventoryService_Add(t *testing.T) {
	svc := NewInventoryService(zaptest.NewLogger(t))

	t.Run("should trim the name and default the unit", func(t *testing.T) {
		food, err := svc.Add(FoodInput{Name: "  Tomate ", Quantity: 3})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, food.ID)
		assert.Equal(t, "Tomate", food.Name)
		assert.Equal(t, DefaultUnit, food.Unit)
	})

	t.Run("should reject missing name and non-positive quantity", func(t *testing.T) {
		_, err := svc.Add(FoodInput{Name: "   ", Quantity: 0, Unit: "g"})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "Nome do alimento é obrigatório", verr.Fields["name"])
		assert.Equal(t, "Quantidade deve ser maior que zero", verr.Fields["quantity"])
		assert.Equal(t, "invalid food: name: Nome do alimento é obrigatório; quantity: Quantidade deve ser maior que zero", err.Error())
	})

	t.Run("should keep insertion order", func(t *testing.T) {
		_, err := svc.Add(FoodInput{Name: "Leite", Quantity: 1, Unit: "l"})
		require.NoError(t, err)

		foods := svc.List()
		require.Len(t, foods, 2)
		assert.Equal(t, "Tomate", foods[0].Name)
		assert.Equal(t, "Leite", foods[1].Name)
	})
}

func TestInventoryService_UpdateDelete(t *testing.T) {
	svc := NewInventoryService(nil)
	first, err := svc.Add(FoodInput{Name: "Ovos", Quantity: 12, Unit: "unidade(s)"})
	require.NoError(t, err)
	second, err := svc.Add(FoodInput{Name: "Leite", Quantity: 1, Unit: "l"})
	require.NoError(t, err)

	updated, err := svc.Update(first.ID, FoodInput{Name: "Ovos caipira", Quantity: 6, Unit: "unidade(s)"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "Ovos caipira", updated.Name)

	got, err := svc.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, first.ID, svc.List()[0].ID)

	_, err = svc.Update(first.ID, FoodInput{Name: "Ovos", Quantity: -1})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	_, err = svc.Update(uuid.New(), FoodInput{Name: "X", Quantity: 1})
	assert.ErrorIs(t, err, ErrFoodNotFound)

	require.NoError(t, svc.Delete(first.ID))
	assert.ErrorIs(t, svc.Delete(first.ID), ErrFoodNotFound)

	_, err = svc.Get(first.ID)
	assert.ErrorIs(t, err, ErrFoodNotFound)

	foods := svc.List()
	require.Len(t, foods, 1)
	assert.Equal(t, second.ID, foods[0].ID)
}

func TestInventoryService_Ingredients(t *testing.T) {
	svc := NewInventoryService(nil)
	require.NoError(t, svc.Seed())

	assert.Equal(t, []models.Ingredient{
		{Name: "Ovos", Quantity: 12, Unit: "unidade(s)"},
		{Name: "Leite", Quantity: 1, Unit: "l"},
		{Name: "Tomate", Quantity: 3, Unit: "unidade(s)"},
		{Name: "Queijo", Quantity: 200, Unit: "g"},
	}, svc.Ingredients())

	snapshot := svc.Ingredients()
	snapshot[0].Name = "changed"
	assert.Equal(t, "Ovos", svc.Ingredients()[0].Name)

	r, ok := newRecipeService(t).SuggestRecipe(svc)
	require.True(t, ok)
	assert.Equal(t, "Omelete Especial", r.Title)
}

func TestInventoryService_Units(t *testing.T) {
	svc := NewInventoryService(nil)
	u := svc.Units()
	assert.Contains(t, u, DefaultUnit)
	assert.Len(t, u, 9)

	u[0] = "changed"
	assert.Equal(t, "kg", svc.Units()[0])
}
