// Package commands implements the catalog CLI, which inspects product, cost
// center and line item sheets without starting the server.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/importer"
	"github.com/MrJamesThe3rd/obrafin/internal/product"
	"github.com/MrJamesThe3rd/obrafin/internal/tree"
)

type options struct {
	format    string
	collation string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect catalog and line item spreadsheets",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.format, "format", formatAuto, "output format: auto, table, plain or json")
	rootCmd.PersistentFlags().StringVar(&opts.collation, "collation", "pt-BR", "locale used to order paths")

	rootCmd.AddCommand(
		newTreeCommand(opts),
		newSelectableCommand(opts),
		newItemsCommand(opts),
	)

	return rootCmd
}

// catalog is a throwaway set of services that files are imported into.
type catalog struct {
	products    *product.Service
	costCenters *costcenter.Service
	importer    *importer.Service
}

func newCatalog(opts *options) (*catalog, error) {
	tag, err := language.Parse(opts.collation)
	if err != nil {
		return nil, fmt.Errorf("invalid collation %q: %w", opts.collation, err)
	}

	c := &catalog{
		products:    product.NewService(tree.WithCollation[product.Payload](tag)),
		costCenters: costcenter.NewService(tree.WithCollation[costcenter.Payload](tag)),
	}
	c.importer = importer.NewService(c.products, c.costCenters)

	return c, nil
}

func (c *catalog) load(path string) (*importer.Result, error) {
	res, err := c.importer.ImportFile(path)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}

	return res, nil
}
