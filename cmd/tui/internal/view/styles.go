package view

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	activeText = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorText  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okText     = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	faintText  = lipgloss.NewStyle().Faint(true)

	tableBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	formPanel = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(52)
)

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// layout renders the table with an optional side panel and status line.
func layout(header string, t table.Model, panel, status string) string {
	content := tableBox.Render(t.View())

	if header != "" {
		content = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			content,
		)
	}

	if panel != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, formPanel.Render(panel))
	}

	if status != "" {
		content = faintText.Render(status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
