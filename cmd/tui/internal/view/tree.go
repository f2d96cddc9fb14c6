package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
)

type treeState int

const (
	treeStateBrowse treeState = iota
	treeStateForm
	treeStateDelete
)

type treeFormMode int

const (
	treeFormAddRoot treeFormMode = iota
	treeFormAddChild
	treeFormEdit
)

// treeRow is one visible line of a tree browser, in depth-first order.
type treeRow struct {
	ID     string
	Name   string
	Path   string
	Depth  int
	Detail string
}

// treeForm holds form bindings. It lives behind a pointer so the huh fields
// and every copy of the model see the same values.
type treeForm struct {
	name    string
	unit    string
	flag    bool
	confirm bool
}

type treeSavedMsg struct {
	status string
	err    error
}

func indentName(name string, depth int) string {
	if depth == 0 {
		return name
	}

	return strings.Repeat("  ", depth-1) + "└ " + name
}

// descendants counts the rows below i that belong to its subtree.
func descendants(rows []treeRow, i int) int {
	n := 0

	for _, r := range rows[i+1:] {
		if r.Depth <= rows[i].Depth {
			break
		}

		n++
	}

	return n
}

func treeTableRows(rows []treeRow) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row{indentName(r.Name, r.Depth), r.Detail}
	}

	return out
}

// setRows replaces the table rows. SetRows leaves the cursor at -1 once the
// table has been empty, so it is clamped back onto the first row.
func setRows(t *table.Model, rows []table.Row) {
	t.SetRows(rows)
	if len(rows) > 0 {
		t.SetCursor(t.Cursor())
	}
}

func deleteForm(rows []treeRow, i int, vals *treeForm) *huh.Form {
	title := fmt.Sprintf("Delete %q?", rows[i].Path)
	if n := descendants(rows, i); n > 0 {
		title = fmt.Sprintf("Delete %q and its %d descendants?", rows[i].Path, n)
	}

	vals.confirm = false

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&vals.confirm),
		),
	).WithWidth(45).WithShowHelp(false)
}

func treeHelp(state treeState) string {
	if state != treeStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add root | c: add child | e: edit | d: delete"
}
