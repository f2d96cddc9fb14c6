// Package app assembles the services shared by the API server and the TUI.
package app

import (
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/obrafin/internal/config"
	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/export"
	"github.com/MrJamesThe3rd/obrafin/internal/importer"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/masterdata"
	"github.com/MrJamesThe3rd/obrafin/internal/product"
	"github.com/MrJamesThe3rd/obrafin/internal/report"
	"github.com/MrJamesThe3rd/obrafin/internal/tree"
)

type Services struct {
	CostCenters *costcenter.Service
	Products    *product.Service
	Ledger      *ledger.Service
	Directory   *masterdata.Directory
	Reports     *report.Projector
	Export      *export.Service
	Importer    *importer.Service
}

// New builds the services and imports the catalog files named in cfg.
// Ledger options such as a metrics recorder are passed through.
func New(cfg *config.Config, ledgerOpts ...ledger.Option) (*Services, error) {
	collation, err := cfg.CollationTag()
	if err != nil {
		return nil, err
	}

	s := &Services{
		CostCenters: costcenter.NewService(tree.WithCollation[costcenter.Payload](collation)),
		Products:    product.NewService(tree.WithCollation[product.Payload](collation)),
		Ledger:      ledger.NewService(ledgerOpts...),
		Directory:   masterdata.NewDirectory(),
	}

	s.Reports = report.NewProjector(s.Ledger, s.Products, s.CostCenters, s.Directory)
	s.Export = export.NewService(s.Reports)
	s.Importer = importer.NewService(s.Products, s.CostCenters)

	for _, path := range []string{cfg.Catalog.ProductsFile, cfg.Catalog.CostCentersFile} {
		if path == "" {
			continue
		}

		res, err := s.Importer.ImportFile(path)
		if err != nil {
			return nil, fmt.Errorf("importing catalog %s: %w", path, err)
		}

		slog.Info("catalog imported",
			"file", path,
			"kind", res.Kind,
			"charset", res.Charset,
			"created", res.Created,
			"existing", res.Existing,
		)
	}

	return s, nil
}
