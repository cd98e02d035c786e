package catalog

import "github.com/pageza/geladeira/backend/internal/models"

var defaultTemplates = []models.RecipeTemplate{
	{
		Title:           "Omelete Especial",
		TriggerKeywords: []string{"ovo", "ovos"},
		Instructions: []string{
			"Bata os ovos em uma tigela com sal e pimenta a gosto",
			"Adicione os demais ingredientes picados",
			"Aqueça uma frigideira antiaderente em fogo médio",
			"Despeje a mistura na frigideira",
			"Cozinhe por 3-4 minutos até dourar embaixo",
			"Dobre ao meio e sirva quente",
		},
		PrepTime: "15 minutos",
		Servings: 2,
		Category: "café da manhã",
	},
	{
		Title:           "Salada Fresca",
		TriggerKeywords: []string{"alface", "tomate", "pepino", "cenoura"},
		Instructions: []string{
			"Lave bem todos os vegetais",
			"Corte os vegetais em pedaços pequenos",
			"Misture todos os ingredientes em uma saladeira",
			"Tempere com azeite, vinagre, sal e pimenta",
			"Misture bem e sirva imediatamente",
		},
		PrepTime: "10 minutos",
		Servings: 4,
		Category: "salada",
	},
	{
		Title:           "Sanduíche Natural",
		TriggerKeywords: []string{"pão", "pães"},
		Instructions: []string{
			"Corte o pão ao meio ou use fatias",
			"Espalhe um pouco de manteiga ou maionese se disponível",
			"Adicione os recheios disponíveis",
			"Tempere com sal e pimenta a gosto",
			"Feche o sanduíche e corte ao meio se desejar",
		},
		PrepTime: "5 minutos",
		Servings: 2,
		Category: "lanche",
	},
	{
		Title:           "Vitamina Nutritiva",
		TriggerKeywords: []string{"banana", "maçã", "leite", "iogurte"},
		Instructions: []string{
			"Descasque e corte as frutas em pedaços",
			"Coloque todos os ingredientes no liquidificador",
			"Bata por 1-2 minutos até ficar cremoso",
			"Prove e adicione mel se quiser adoçar",
			"Sirva gelado em copos altos",
		},
		PrepTime: "5 minutos",
		Servings: 2,
		Category: "bebida",
	},
	{
		Title:           "Macarrão Simples",
		TriggerKeywords: []string{"macarrão", "massa"},
		Instructions: []string{
			"Ferva água abundante com sal em uma panela grande",
			"Adicione o macarrão e cozinhe conforme instruções da embalagem",
			"Enquanto isso, prepare os demais ingredientes",
			"Escorra o macarrão e refogue com os outros ingredientes",
			"Tempere com sal, pimenta e ervas se disponível",
			"Sirva quente",
		},
		PrepTime: "20 minutos",
		Servings: 3,
		Category: "prato principal",
	},
	{
		Title:           "Sopa Caseira",
		TriggerKeywords: []string{"batata", "cenoura", "aipo", "cebola"},
		Instructions: []string{
			"Descasque e corte todos os vegetais em cubos pequenos",
			"Refogue a cebola em uma panela com um pouco de óleo",
			"Adicione os demais vegetais e refogue por mais 2 minutos",
			"Cubra com água e deixe ferver",
			"Cozinhe até os vegetais ficarem macios (cerca de 15-20 minutos)",
			"Tempere com sal, pimenta e ervas a gosto",
			"Sirva quente",
		},
		PrepTime: "30 minutos",
		Servings: 4,
		Category: "sopa",
	},
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(defaultTemplates...)
	if err != nil {
		panic(err)
	}
	return c
}
