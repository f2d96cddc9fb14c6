package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/importer/sheet"
	"github.com/MrJamesThe3rd/obrafin/internal/product"
)

type treeEntry struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Depth      int    `json:"depth"`
	Unit       string `json:"unit,omitempty"`
	Launchable *bool  `json:"launchable,omitempty"`
}

func newTreeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the hierarchy of a products or cost centers sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCatalog(opts)
			if err != nil {
				return err
			}

			res, err := c.load(args[0])
			if err != nil {
				return err
			}

			var entries []treeEntry

			switch res.Kind {
			case sheet.KindProducts:
				c.products.Walk(func(v product.Visit) {
					entries = append(entries, treeEntry{Name: v.Name, Path: v.Path, Depth: v.Depth, Unit: v.Payload.Unit})
				})
			case sheet.KindCostCenters:
				c.costCenters.Walk(func(v costcenter.Visit) {
					entries = append(entries, treeEntry{Name: v.Name, Path: v.Path, Depth: v.Depth, Launchable: new(v.Payload.Launchable)})
				})
			default:
				return fmt.Errorf("%s is a %s sheet, not a catalog", args[0], res.Kind)
			}

			return render(cmd.OutOrStdout(), opts.format, treeListing(entries))
		},
	}
}

func treeListing(entries []treeEntry) listing {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		detail := e.Unit
		if e.Launchable != nil && *e.Launchable {
			detail = "lançável"
		}

		rows[i] = []string{strings.Repeat("  ", e.Depth) + e.Name, detail}
	}

	return listing{headers: []string{"Nome", "Detalhe"}, rows: rows, value: entries}
}
