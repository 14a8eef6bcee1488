package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	menuW := 0
	if m.showMenu {
		menuW = menuWidth
	}
	contentHeight := m.contentHeight()
	contentWidth := max(10, m.width)

	header := titleStyle.Render(" geoshape ─ geometry analyzer & classifier ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	var menu string
	if m.showMenu {
		menu = lipgloss.NewStyle().Width(menuW).Render(m.l.View())
	}

	mainWidth := max(10, contentWidth-menuW-1)
	mainHeight := contentHeight
	var mainView string
	switch {
	case m.editing:
		m.ta.SetWidth(mainWidth)
		m.ta.SetHeight(min(mainHeight-1, 8))
		mainView = lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Enter "+m.pending.String()+" points"), m.ta.View())
	case m.showMeasure && m.rep != nil:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mainWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mainHeight-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mainView = lipgloss.Place(mainWidth, mainHeight, lipgloss.Center, lipgloss.Center, box)
	default:
		lines := m.reportHeader()
		lines = append(lines, m.renderGrid(mainWidth, mainHeight-len(lines))...)
		mainView = strings.Join(fitLines(lines, mainHeight), "\n")
	}
	mainView = lipgloss.NewStyle().Width(mainWidth).Height(mainHeight).Render(mainView)

	popup := ""
	if m.inspectPopup != "" && !m.showMeasure {
		maxPopupW := max(20, min(48, contentWidth/2))
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, lipgloss.Height(box), lipgloss.Left, lipgloss.Center, box)
	}

	body := mainView
	if m.showMenu {
		body = lipgloss.JoinHorizontal(lipgloss.Top, menu, " ", mainView)
	}

	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(padRight(fmt.Sprintf("  x=%d y=%d", m.hoverX, m.hoverY), 2))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	parts := []string{header}
	if popup != "" {
		parts = append(parts, popup)
	}
	parts = append(parts, body, footer)
	ui := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"Tab menu",
		"Enter select",
		"Esc cancel",
		"↑↓←→ pan",
		"a measurements",
		"i inspect",
		"r reset",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
