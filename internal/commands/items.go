package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/obrafin/internal/importer/sheet"
)

type itemEntry struct {
	Description string `json:"description"`
	Product     string `json:"product"`
	CostCenter  string `json:"cost_center"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Amount      string `json:"amount"`
}

func newItemsCommand(opts *options) *cobra.Command {
	var productsFile, costCentersFile string

	cmd := &cobra.Command{
		Use:   "items FILE",
		Short: "Resolve a line item sheet against the product and cost center catalogs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCatalog(opts)
			if err != nil {
				return err
			}

			for _, path := range []string{productsFile, costCentersFile} {
				if _, err := c.load(path); err != nil {
					return err
				}
			}

			res, err := c.load(args[0])
			if err != nil {
				return err
			}

			if res.Kind != sheet.KindLineItems {
				return fmt.Errorf("%s is a %s sheet, not a line item sheet", args[0], res.Kind)
			}

			entries := make([]itemEntry, len(res.Items))
			rows := make([][]string, len(res.Items))

			for i, it := range res.Items {
				e := itemEntry{
					Description: it.Description,
					CostCenter:  c.costCenters.Path(it.CostCenterID),
					Amount:      it.Amount.StringFixed(2),
				}

				if it.ProductID != nil {
					e.Product = c.products.Path(*it.ProductID)
				}

				if it.Quantity != nil {
					e.Quantity = it.Quantity.String()
				}

				if it.UnitPrice != nil {
					e.UnitPrice = it.UnitPrice.StringFixed(2)
				}

				entries[i] = e
				rows[i] = []string{e.Product, e.Quantity, e.UnitPrice, e.Amount, e.CostCenter}
			}

			return render(cmd.OutOrStdout(), opts.format, listing{
				headers: []string{"Produto", "Quantidade", "Preço Unitário", "Total", "Centro de Custo"},
				rows:    rows,
				value:   entries,
			})
		},
	}

	cmd.Flags().StringVar(&productsFile, "products", "", "products sheet (required)")
	cmd.Flags().StringVar(&costCentersFile, "cost-centers", "", "cost centers sheet (required)")
	_ = cmd.MarkFlagRequired("products")
	_ = cmd.MarkFlagRequired("cost-centers")

	return cmd
}
