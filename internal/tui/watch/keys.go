package watch

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap is the bound-key set watch mode recognizes, shared by Update's
// dispatch and the help bar's rendering so the two can never drift apart.
type keyMap struct {
	Quit     key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ScrollUp, k.ScrollDn, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	ScrollUp: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll build pane up")),
	ScrollDn: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll build pane down")),
}

var helpModel = help.New()
