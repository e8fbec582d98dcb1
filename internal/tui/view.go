package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/pokedex/internal/core/styles"
	"github.com/colonyops/pokedex/internal/dex"
	"github.com/colonyops/pokedex/internal/jsontree"
	"github.com/colonyops/pokedex/internal/tui/jsoncolor"
)

const listPaneWidth = 28

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.st.Phase {
	case dex.PhaseBootstrapping:
		return m.renderBootstrapping()
	case dex.PhaseFatal:
		return m.renderFatal()
	}

	contentHeight := m.height - 2 // status bar + help bar

	list := m.renderList(listPaneWidth, contentHeight)
	detail := m.renderDetail(m.width-listPaneWidth-1, contentHeight)

	main := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", detail)
	bar := m.renderStatusBar()
	helpBar := m.help.View(keys)

	return lipgloss.JoinVertical(lipgloss.Left, main, bar, helpBar)
}

func (m Model) renderBootstrapping() string {
	msg := fmt.Sprintf("%s loading the Pokédex...", m.spin.View())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

func (m Model) renderFatal() string {
	msg := styles.TextErrorStyle.Render(m.st.Fatal) + "\n\n" +
		styles.TextMutedStyle.Render("press q to quit")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

func (m Model) renderList(width, height int) string {
	var b strings.Builder

	if m.filtering || m.filterInput.Value() != "" {
		b.WriteString(m.filterInput.View())
	} else {
		b.WriteString(styles.TitleStyle.Render("Pokédex"))
	}
	b.WriteByte('\n')

	visible := m.st.Session.Visible()
	if len(visible) == 0 {
		b.WriteString(styles.TextMutedStyle.Render("no matches"))
	}

	maxRows := height - 3 // title + borders
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}

	for i := start; i < len(visible) && i-start < maxRows; i++ {
		item := visible[i]
		line := fmt.Sprintf("#%-4d %s", item.ID, item.Name)
		if i == m.cursor && m.focus == paneList {
			line = styles.SelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteByte('\n')
		b.WriteString(line)
	}

	return paneBorder(m.focus == paneList).Width(width).Height(height - 2).Render(b.String())
}

func (m Model) renderDetail(width, height int) string {
	style := paneBorder(m.focus == paneInspector)
	render := func(s string) string {
		return style.Width(width).Height(height - 2).Render(s)
	}

	sel := m.st.Session.Selection
	switch sel.Kind() {
	case dex.StatusNotRequested:
		return render(styles.TextMutedStyle.Render("select a Pokémon to view details"))

	case dex.StatusInFlight:
		return render(fmt.Sprintf("%s loading...", m.spin.View()))

	case dex.StatusFailed:
		return render(styles.TextErrorStyle.Render(sel.Failure()))
	}

	rec, _ := sel.Value()

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d %s", rec.ID, rec.Name)))
	b.WriteByte('\n')
	b.WriteString(styles.TextMutedStyle.Render(
		fmt.Sprintf("base experience %d · %s", rec.BaseExperience, strings.Join(rec.Types, ", "))))
	b.WriteString("\n\n")

	bodyHeight := height - 6 // header + borders
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	if m.showRaw {
		b.WriteString(m.renderRaw(rec.Raw, bodyHeight))
	} else if m.treeBroken {
		b.WriteString(styles.TextWarningStyle.Render("response is not valid JSON; press r for the raw payload"))
	} else {
		b.WriteString(m.renderTree(bodyHeight))
	}

	return render(b.String())
}

func (m Model) renderRaw(raw []byte, height int) string {
	lines := strings.Split(jsoncolor.Colorize(raw), "\n")

	start := m.inspScroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[start:end], "\n")
}

func (m Model) renderTree(height int) string {
	rows := m.inspectorRows()
	if len(rows) == 0 {
		return styles.TextMutedStyle.Render("nothing to inspect")
	}

	cursor := m.inspCursor
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}

	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}

	var b strings.Builder
	for i := start; i < len(rows) && i-start < height; i++ {
		if i > start {
			b.WriteByte('\n')
		}
		b.WriteString(m.renderTreeRow(rows[i], i == cursor && m.focus == paneInspector))
	}
	return b.String()
}

func (m Model) renderTreeRow(row jsontree.Row, selected bool) string {
	n := row.Node

	marker := "  "
	if n.IsContainer() {
		if row.Collapsed {
			marker = "▸ "
		} else {
			marker = "▾ "
		}
	}

	label := ""
	if n.Key != "" {
		label = styles.TextPrimaryStyle.Render(n.Key) + styles.TextMutedStyle.Render(": ")
	}

	var value string
	switch {
	case n.Kind == jsontree.KindObject:
		value = styles.TextForegroundStyle.Render(containerSummary("{...}", row.Collapsed))
	case n.Kind == jsontree.KindArray:
		value = styles.TextForegroundStyle.Render(containerSummary(fmt.Sprintf("[%d]", len(n.Children)), row.Collapsed))
	default:
		value = jsoncolor.Scalar(n.Kind, n.Value)
	}

	line := strings.Repeat("  ", n.Depth) + marker + label + value
	if selected {
		return styles.SelectedStyle.Render(line)
	}
	return line
}

func containerSummary(collapsedText string, collapsed bool) string {
	if collapsed {
		return collapsedText
	}
	return ""
}

func (m Model) renderStatusBar() string {
	visible := m.st.Session.Visible()

	left := fmt.Sprintf(" %d/%d Pokémon", len(visible), len(m.st.Session.Catalog))
	if m.st.Session.Filter != "" {
		left += fmt.Sprintf("  filter: %q", m.st.Session.Filter)
	}

	right := "tree "
	if m.showRaw {
		right = "raw "
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return statusBar().Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
