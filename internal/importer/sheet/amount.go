package sheet

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal reads pt-BR formatted numbers: "1.234,56", "R$ 10,00",
// "-3,5". Dots are thousand separators and the comma marks decimals.
func ParseDecimal(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number %q", s)
	}

	return d, nil
}

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sim", "s", "x", "1", "true":
		return true, nil
	case "não", "nao", "n", "", "0", "false":
		return false, nil
	}

	return false, fmt.Errorf("invalid flag %q", s)
}

// splitPath breaks "Agregados / Brita 1" into its trimmed, non-empty parts.
func splitPath(s string) []string {
	var parts []string

	for p := range strings.SplitSeq(s, "/") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return parts
}
