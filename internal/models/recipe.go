package models

// RecipeTemplate is a catalog entry describing a dish and the keywords that trigger it
type RecipeTemplate struct {
	Title           string   `json:"title" yaml:"title"`
	TriggerKeywords []string `json:"trigger_keywords" yaml:"trigger_keywords"`
	Instructions    []string `json:"instructions" yaml:"instructions"`
	PrepTime        string   `json:"prep_time" yaml:"prep_time"`
	Servings        int      `json:"servings" yaml:"servings"`
	Category        string   `json:"category,omitempty" yaml:"category"`
}

// Recipe is the result handed back to the caller
type Recipe struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     string   `json:"prep_time"`
	Servings     int      `json:"servings"`
}
