// Package importer loads catalog and line item spreadsheets into the product
// and cost center trees.
package importer

import (
	"errors"
	"io"

	"github.com/MrJamesThe3rd/obrafin/internal/encoding"
	"github.com/MrJamesThe3rd/obrafin/internal/importer/sheet"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
)

var (
	ErrUnresolved = errors.New("path does not match the catalog")
	ErrCategory   = errors.New("categories cannot be bought")
)

// Parser decodes a spreadsheet into rows.
type Parser interface {
	Parse(r io.Reader) (*sheet.Sheet, error)
}

// Result summarises an import. Created and Existing count catalog nodes;
// Items holds resolved line items for a line item sheet.
type Result struct {
	Kind     sheet.Kind
	Charset  encoding.Charset
	Created  int
	Existing int
	Items    []ledger.LineItemParams
}

func (r *Result) count(created bool) {
	if created {
		r.Created++
	} else {
		r.Existing++
	}
}
