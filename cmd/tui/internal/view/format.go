package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/obrafin/internal/importer/sheet"
)

const dateLayout = "02/01/2006"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatMoney renders an amount as Brazilian reais, e.g. "R$ 1.234,56".
func FormatMoney(d decimal.Decimal) string {
	return printer.Sprintf("R$ %.2f", d.Round(2).InexactFloat64())
}

// FormatDate formats a time.Time as DD/MM/YYYY. Zero dates render empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(dateLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (DD/MM/AAAA)", s)
	}

	return t, nil
}

// ParseAmount accepts "1.234,56" as well as plain "1234.56".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ",") {
		if d, err := decimal.NewFromString(s); err == nil {
			return d, nil
		}
	}

	return sheet.ParseDecimal(s)
}

func validateDate(s string) error {
	_, err := ParseDate(s)
	return err
}

func validatePositive(s string) error {
	d, err := ParseAmount(s)
	if err != nil {
		return err
	}

	if !d.IsPositive() {
		return fmt.Errorf("must be greater than zero")
	}

	return nil
}

func validateOptionalAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	_, err := ParseAmount(s)

	return err
}

func validateNotBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}

		return nil
	}
}

func activeStyle(s string) string {
	return activeText.Render(s)
}
