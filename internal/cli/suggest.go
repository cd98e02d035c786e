package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pageza/geladeira/backend/internal/models"
	"github.com/pageza/geladeira/backend/internal/service"
)

var errNoItems = errors.New("at least one --item is required")

func newSuggestCommand(opts *options) *cobra.Command {
	var (
		items  []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Generate a recipe from the given ingredients",
		Example: `  geladeira suggest --item "Ovos:12:unidade(s)" --item "Leite:1:l"
  geladeira suggest -i Tomate:3 -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(items) == 0 {
				return errNoItems
			}
			ingredients := make([]models.Ingredient, 0, len(items))
			for _, raw := range items {
				ing, err := parseItem(raw)
				if err != nil {
					return err
				}
				ingredients = append(ingredients, ing)
			}

			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			log := opts.logger()
			defer log.Sync() //nolint:errcheck

			recipe, ok := service.NewRecipeService(c, log).GenerateRecipe(ingredients)
			if !ok {
				return errNoItems
			}
			return renderRecipe(cmd.OutOrStdout(), recipe, output)
		},
	}

	cmd.Flags().StringArrayVarP(&items, "item", "i", nil, `Ingredient as "name:quantity[:unit]" (repeatable)`)
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table|json)")
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// parseItem reads "name:quantity[:unit]"; the unit defaults to unidade(s)
func parseItem(raw string) (models.Ingredient, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) < 2 {
		return models.Ingredient{}, fmt.Errorf("invalid item %q: expected name:quantity[:unit]", raw)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return models.Ingredient{}, fmt.Errorf("invalid item %q: name is required", raw)
	}
	qty, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || qty <= 0 || math.IsNaN(qty) || math.IsInf(qty, 0) {
		return models.Ingredient{}, fmt.Errorf("invalid item %q: quantity must be a positive number", raw)
	}
	unit := service.DefaultUnit
	if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
		unit = strings.TrimSpace(parts[2])
	}

	return models.Ingredient{Name: name, Quantity: qty, Unit: unit}, nil
}

func renderRecipe(w io.Writer, r *models.Recipe, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "table", "":
	default:
		return fmt.Errorf("unknown output format %q", output)
	}

	fmt.Fprintf(w, "%s\n%s · %d porções\n\n", r.Title, r.PrepTime, r.Servings)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Ingredientes"})
	for _, line := range r.Ingredients {
		t.AppendRow(table.Row{line})
	}
	t.Render()

	fmt.Fprintln(w)
	t = table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Modo de preparo"})
	for i, step := range r.Instructions {
		t.AppendRow(table.Row{i + 1, step})
	}
	t.Render()
	return nil
}
