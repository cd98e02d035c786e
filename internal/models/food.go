package models

import (
	"github.com/google/uuid"
)

// Food is an inventory record tracked in the fridge
type Food struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
}

// Ingredient returns the recipe input view of the record
func (f Food) Ingredient() Ingredient {
	return Ingredient{Name: f.Name, Quantity: f.Quantity, Unit: f.Unit}
}
