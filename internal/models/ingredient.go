package models

// Ingredient is a named, quantified item available to cook with
type Ingredient struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"gt=0"`
	Unit     string  `json:"unit"`
}
