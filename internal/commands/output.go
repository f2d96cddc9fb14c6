package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
)

const (
	formatAuto  = "auto"
	formatTable = "table"
	formatPlain = "plain"
	formatJSON  = "json"
)

// resolveFormat turns "auto" into a table on a terminal and plain text
// everywhere else.
func resolveFormat(format string, w io.Writer) (string, error) {
	switch format {
	case formatTable, formatPlain, formatJSON:
		return format, nil
	case formatAuto, "":
		if isTerminal(w) {
			return formatTable, nil
		}

		return formatPlain, nil
	}

	return "", fmt.Errorf("unknown format %q", format)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// listing is command output that can be shown as rows or encoded as JSON.
type listing struct {
	headers []string
	rows    [][]string
	value   any
}

func render(w io.Writer, format string, l listing) error {
	format, err := resolveFormat(format, w)
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(l.value)
	case formatTable:
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
			Headers(l.headers...).
			Rows(l.rows...)

		_, err := fmt.Fprintln(w, t.String())

		return err
	}

	for _, r := range l.rows {
		if _, err := fmt.Fprintln(w, strings.Join(r, "\t")); err != nil {
			return err
		}
	}

	return nil
}
