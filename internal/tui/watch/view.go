package watch

import (
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "starting depot watch..."
	}

	helpModel.Width = m.width
	help := helpStyle.Render(helpModel.View(keys))

	buttonRow := m.renderButtonRow()
	m.buttonY = m.height - 2

	gridHeight := m.height - 2
	grid := m.renderGrid(gridHeight)

	return lipgloss.JoinVertical(lipgloss.Left, grid, buttonRow, help)
}

// renderButtonRow lays out one button per package, width = max label
// length + 4, and records each button's x-range for click mapping.
func (m *Model) renderButtonRow() string {
	maxLen := 0
	for _, pkg := range m.packages {
		if len(pkg) > maxLen {
			maxLen = len(pkg)
		}
	}
	width := maxLen + 4

	m.buttons = m.buttons[:0]
	var rendered []string
	x := 0
	for _, pkg := range m.packages {
		style := inactiveButtonStyle
		if pkg == m.active {
			style = activeButtonStyle
		}
		label := lipgloss.PlaceHorizontal(width, lipgloss.Center, pkg)
		rendered = append(rendered, style.Width(width).Render(label))
		m.buttons = append(m.buttons, buttonBounds{pkg: pkg, start: x, end: x + width})
		x += width
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderGrid renders the active package's 2x2 pane grid: top row (build,
// check) at 2/3 height, bottom row (lint, script) at 1/3 height.
func (m *Model) renderGrid(height int) string {
	topHeight := height * 2 / 3
	bottomHeight := height - topHeight

	m.mu.Lock()
	byPane := m.panes[m.active]
	var top, bottom string
	if byPane != nil {
		top = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderPane(byPane["build"], "build", m.width/2, topHeight),
			m.renderPane(byPane["check"], "check", m.width-m.width/2, topHeight),
		)
		bottom = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderPane(byPane["lint"], "lint", m.width/2, bottomHeight),
			m.renderPane(byPane["script"], "script", m.width-m.width/2, bottomHeight),
		)
	}
	m.mu.Unlock()

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (m *Model) renderPane(p *pane, name string, width, height int) string {
	label := paneLabelStyle.Render(name)
	body := ""
	if p != nil {
		p.resize(width-4, height-3)
		body = p.vp.View()
	}
	content := lipgloss.JoinVertical(lipgloss.Left, label, body)
	return paneBorderStyle.Width(width - 2).Height(height - 2).Render(content)
}
