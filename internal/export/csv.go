package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Column maps a header to the value written for each row.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// WriteCSV writes the header row followed by one record per row.
func WriteCSV[T any](w io.Writer, rows []T, columns []Column[T]) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Header
	}

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, len(columns))

	for _, row := range rows {
		for i, c := range columns {
			record[i] = c.Value(row)
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename joins prefix and name with whitespace runs collapsed to "_" and
// appends the .csv extension.
func Filename(prefix, name string) string {
	name = whitespace.ReplaceAllString(strings.TrimSpace(name), "_")
	name = strings.ReplaceAll(name, "/", "_")

	if name == "" {
		return prefix + ".csv"
	}

	return prefix + "_" + name + ".csv"
}
