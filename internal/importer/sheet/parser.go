// Package sheet reads the semicolon separated spreadsheets used to bulk load
// the catalogs and expense line items.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/obrafin/internal/encoding"
)

var (
	ErrUnknownFormat = errors.New("unknown spreadsheet format")
	ErrMalformedRow  = errors.New("malformed row")
)

// PathRow is a catalog line: a product or cost center given by full path.
type PathRow struct {
	Line       int
	Path       []string
	Unit       string
	Launchable bool
}

// ItemRow is an expense line item referring to catalog entries by path.
type ItemRow struct {
	Line        int
	Product     []string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	CostCenter  []string
	Description string
}

type Sheet struct {
	Kind    Kind
	Charset enc.Charset
	Paths   []PathRow
	Items   []ItemRow
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse detects the charset and layout of r and decodes its rows. Rows with
// every cell blank are skipped; any other malformed row fails the parse with
// its 1-based line number.
func (p *Parser) Parse(r io.Reader) (*Sheet, error) {
	utf8r, charset, err := enc.Detect(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := readRecords(reader)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("%w: expected a header with %q or %q", ErrUnknownFormat,
			strings.Join(Header(KindProducts), ";"), strings.Join(Header(KindLineItems), ";"))
	}

	s := &Sheet{Kind: profile.Kind, Charset: charset}

	for _, rec := range rows[headerIdx+1:] {
		line, row := rec.line, rec.cells

		if blank(row) {
			continue
		}

		switch profile.Kind {
		case KindProducts, KindCostCenters:
			pr, err := parsePathRow(profile.Kind, cols, row)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w (%w)", line, err, ErrMalformedRow)
			}

			pr.Line = line
			s.Paths = append(s.Paths, pr)
		case KindLineItems:
			ir, err := parseItemRow(cols, row)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w (%w)", line, err, ErrMalformedRow)
			}

			ir.Line = line
			s.Items = append(s.Items, ir)
		}
	}

	return s, nil
}

// record is a csv row with the 1-based line it starts on. encoding/csv
// drops empty lines, so the slice index alone does not give the line.
type record struct {
	line  int
	cells []string
}

func readRecords(r *csv.Reader) ([]record, error) {
	var out []record

	for {
		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}

		if err != nil {
			return nil, err
		}

		line, _ := r.FieldPos(0)
		out = append(out, record{line: line, cells: cells})
	}
}

type colIndex map[string]int

func detectProfile(rows []record) (*Profile, colIndex, int) {
	for rowIdx, rec := range rows {
		cols := make(colIndex)

		for i, cell := range rec.cells {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.Required {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parsePathRow(kind Kind, cols colIndex, row []string) (PathRow, error) {
	path := splitPath(cellValue(row, cols, colPath))
	if len(path) == 0 {
		return PathRow{}, errors.New("missing path")
	}

	pr := PathRow{Path: path}

	if kind == KindProducts {
		pr.Unit = cellValue(row, cols, colUnit)
		return pr, nil
	}

	launchable, err := parseFlag(cellValue(row, cols, colLaunchable))
	if err != nil {
		return PathRow{}, err
	}

	pr.Launchable = launchable

	return pr, nil
}

func parseItemRow(cols colIndex, row []string) (ItemRow, error) {
	ir := ItemRow{
		Product:     splitPath(cellValue(row, cols, colProduct)),
		CostCenter:  splitPath(cellValue(row, cols, colCostCenter)),
		Description: cellValue(row, cols, colDescription),
	}

	if len(ir.Product) == 0 {
		return ItemRow{}, errors.New("missing product")
	}

	if len(ir.CostCenter) == 0 {
		return ItemRow{}, errors.New("missing cost center")
	}

	var err error

	if ir.Quantity, err = ParseDecimal(cellValue(row, cols, colQuantity)); err != nil {
		return ItemRow{}, fmt.Errorf("quantity: %w", err)
	}

	if ir.UnitPrice, err = ParseDecimal(cellValue(row, cols, colUnitPrice)); err != nil {
		return ItemRow{}, fmt.Errorf("unit price: %w", err)
	}

	return ir, nil
}

// cellValue returns the trimmed cell under the named column, or "" when the
// column is absent or the row is short.
func cellValue(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
