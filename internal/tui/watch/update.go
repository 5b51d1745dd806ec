package watch

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// buttonBounds records, for the last render, which x-range of the button
// row belongs to which package so mouse clicks can be mapped back.
type buttonBounds struct {
	pkg        string
	start, end int
}

var _ tea.Model = (*Model)(nil)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case logMsg:
		m.mu.Lock()
		if byPane, ok := m.panes[msg.pkg]; ok {
			if p, ok := byPane[msg.pane]; ok {
				p.appendFragment(msg.data)
			}
		}
		m.mu.Unlock()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.ScrollUp):
			m.scrollActive("pgup")
		case key.Matches(msg, keys.ScrollDn):
			m.scrollActive("pgdown")
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if pkg, ok := m.packageAt(msg.X, msg.Y); ok {
				m.active = pkg
			}
		}
		return m, nil
	}

	return m, nil
}

// scrollActive pages the active package's build pane — the one users watch
// most closely for compile errors — and unpins it from auto-follow so a
// new line of output doesn't yank the view back down mid-read.
func (m *Model) scrollActive(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byPane, ok := m.panes[m.active]
	if !ok {
		return
	}
	p := byPane["build"]
	p.pinned = false
	if key == "pgup" {
		p.vp.HalfViewUp()
	} else {
		p.vp.HalfViewDown()
		if p.vp.AtBottom() {
			p.pinned = true
		}
	}
}

// packageAt maps a click at (x, y) to a package name, when it falls on the
// button row rendered at the bottom of the view.
func (m *Model) packageAt(x, y int) (string, bool) {
	row := m.buttonRowY()
	if y != row {
		return "", false
	}
	for _, b := range m.lastButtonBounds() {
		if x >= b.start && x < b.end {
			return b.pkg, true
		}
	}
	return "", false
}
