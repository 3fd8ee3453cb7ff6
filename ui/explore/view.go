package explore

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cheerioskun/grepninja/internal/models"
)

// Styling constants
var (
	// Colors
	primaryColor   = lipgloss.Color("205")
	secondaryColor = lipgloss.Color("240")
	successColor   = lipgloss.Color("46")
	errorColor     = lipgloss.Color("196")
	warningColor   = lipgloss.Color("214")

	// Base styles
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	helpStyle      = lipgloss.NewStyle().Foreground(secondaryColor).Italic(true).Padding(0, 1)
	editInputStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primaryColor).Padding(0, 1)
	onStyle        = lipgloss.NewStyle().Background(primaryColor).Foreground(lipgloss.Color("0")).Padding(0, 1)
	offStyle       = lipgloss.NewStyle().Foreground(secondaryColor).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render("grepninja"),
		m.renderToggles(),
	)
	input := editInputStyle.Width(max(m.width-2, 10)).Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		input,
		m.results.View(),
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m *Model) renderToggles() string {
	toggles := []struct {
		label string
		on    bool
	}{
		{"ignore case", m.cfg.Flags.IgnoreCase},
		{"invert", m.cfg.Flags.Invert},
		{"whole line", m.cfg.Flags.WholeLine},
	}

	parts := []string{onStyle.Render(m.cfg.Syntax.String())}
	for _, t := range toggles {
		if t.on {
			parts = append(parts, onStyle.Render(t.label))
		} else {
			parts = append(parts, offStyle.Render(t.label))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderStatus() string {
	last := m.last
	switch {
	case last.Err != nil:
		return statusStyle.Foreground(errorColor).Render(last.Err.Error())
	case last.Idle():
		return statusStyle.Foreground(secondaryColor).Render("Type a pattern to search")
	case !last.Result.Found():
		return statusStyle.Foreground(warningColor).Render("No lines selected")
	}

	files := countSearched(last.Result)
	text := fmt.Sprintf("%d line(s) selected in %d of %d file(s)", last.Result.Total, last.Result.Matched, files)
	if last.Result.Errors > 0 {
		text += fmt.Sprintf(", %d unreadable", last.Result.Errors)
	}
	return statusStyle.Foreground(successColor).Render(text)
}

func (m *Model) renderHelp() string {
	helpItems := []string{
		"Tab: Syntax",
		"Ctrl+T: Case",
		"Ctrl+R: Invert",
		"Ctrl+X: Whole line",
		"↑/↓/PgUp/PgDn: Scroll",
		"Esc: Quit",
	}
	return helpStyle.Render(strings.Join(helpItems, " • "))
}

// countSearched counts targets that were scanned rather than skipped
func countSearched(run models.RunResult) int {
	n := 0
	for _, fr := range run.Files {
		if !fr.Skipped {
			n++
		}
	}
	return n
}
