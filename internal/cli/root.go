// Package cli provides the geladeira command-line interface.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/geladeira/backend/config"
	"github.com/pageza/geladeira/backend/internal/catalog"
	"github.com/pageza/geladeira/backend/internal/logger"
)

type options struct {
	catalogFile string
	verbose     bool
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "geladeira",
		Short: "Suggest a recipe from what is in the fridge",
		Long: `geladeira picks the recipe template that best matches a list of
ingredients, or a generic house dish when nothing matches.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.catalogFile, "catalog", "", "YAML catalog file (default: built-in catalog)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newSuggestCommand(opts))
	rootCmd.AddCommand(newCatalogCommand(opts))

	return rootCmd
}

func (o *options) loadCatalog() (*catalog.Catalog, error) {
	if o.catalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(o.catalogFile)
}

func (o *options) logger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}
	l, err := logger.New(config.Development)
	if err != nil {
		return zap.NewNop()
	}
	return l
}
