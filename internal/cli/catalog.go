package cli

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newCatalogCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the recipe templates in matching order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"#", "Receita", "Categoria", "Palavras-chave", "Tempo", "Porções"})
			for i, tmpl := range c.Templates() {
				t.AppendRow(table.Row{
					i + 1,
					tmpl.Title,
					tmpl.Category,
					strings.Join(tmpl.TriggerKeywords, ", "),
					tmpl.PrepTime,
					tmpl.Servings,
				})
			}
			t.Render()
			return nil
		},
	}
}
