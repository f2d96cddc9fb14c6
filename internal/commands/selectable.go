package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/obrafin/internal/importer/sheet"
)

type selectableEntry struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	Unit string `json:"unit,omitempty"`
}

func newSelectableCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "selectable FILE",
		Short: "List the products or cost centers a line item can use",
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

			var entries []selectableEntry

			switch res.Kind {
			case sheet.KindProducts:
				for _, o := range c.products.Selectable() {
					entries = append(entries, selectableEntry{ID: o.ID, Path: o.Path, Unit: o.Unit})
				}
			case sheet.KindCostCenters:
				for _, s := range c.costCenters.Launchable() {
					entries = append(entries, selectableEntry{ID: s.ID, Path: s.Path})
				}
			default:
				return fmt.Errorf("%s is a %s sheet, not a catalog", args[0], res.Kind)
			}

			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{e.Path, e.Unit}
			}

			return render(cmd.OutOrStdout(), opts.format, listing{
				headers: []string{"Caminho", "Unidade"},
				rows:    rows,
				value:   entries,
			})
		},
	}
}
