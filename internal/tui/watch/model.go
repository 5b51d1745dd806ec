// Package watch implements the watch-mode multi-pane live output view: a
// pane grid per package x per-process, clickable package buttons, and
// tolerant ingest of the small set of ANSI codes build tooling relies on
// to redraw progress in place.
package watch

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// paneNames is the fixed set of panes every package gets, in the reading
// order the 2x2 grid lays them out: top row then bottom row.
var paneNames = []string{"build", "check", "lint", "script"}

const maxPaneLines = 2000

// pane holds the ingested lines for one (package, process) sink and the
// viewport that scrolls them. New output keeps the viewport pinned to the
// bottom until the user scrolls it away with pgup/pgdown.
type pane struct {
	lines   []string
	vp      viewport.Model
	pinned  bool
	vpSized bool
}

// appendFragment ingests a raw byte chunk, handling the two ANSI codes
// depot interprets without a full terminal emulator: ESC[1G (cursor to
// column 1) is stripped, and ESC[2K (erase entire line) erases the pane's
// last line before the remainder of the fragment is appended. This is
// the minimum redraw behavior progress meters and spinners rely on.
func (p *pane) appendFragment(data []byte) {
	s := string(data)
	s = strings.ReplaceAll(s, "\x1b[1G", "")

	for {
		idx := strings.Index(s, "\x1b[2K")
		if idx == -1 {
			break
		}
		if len(p.lines) > 0 {
			p.lines = p.lines[:len(p.lines)-1]
		}
		s = s[:idx] + s[idx+len("\x1b[2K"):]
	}

	if s == "" {
		return
	}

	parts := strings.Split(s, "\n")
	if len(p.lines) == 0 {
		p.lines = append(p.lines, "")
	}
	p.lines[len(p.lines)-1] += parts[0]
	for _, part := range parts[1:] {
		p.lines = append(p.lines, part)
	}

	if len(p.lines) > maxPaneLines {
		p.lines = p.lines[len(p.lines)-maxPaneLines:]
	}

	p.vp.SetContent(p.String())
	if p.pinned {
		p.vp.GotoBottom()
	}
}

func (p *pane) String() string {
	return strings.Join(p.lines, "\n")
}

// resize adjusts the pane's viewport to its rendered box size, re-pinning
// to the bottom the first time a size is known so startup output is never
// missed before the terminal reports its dimensions.
func (p *pane) resize(width, height int) {
	first := !p.vpSized
	p.vpSized = true
	p.vp.Width = width
	p.vp.Height = height
	if first {
		p.vp.SetContent(p.String())
		p.vp.GotoBottom()
	}
}

// Model is the bubbletea model backing WatchLogger.
type Model struct {
	width, height int

	packages []string // in Workspace order
	active   string

	mu    sync.Mutex
	panes map[string]map[string]*pane // pkg -> pane name -> pane

	quitting bool

	// buttons and buttonY are recomputed on every render so mouse clicks
	// can be mapped back to the package button they landed on.
	buttons []buttonBounds
	buttonY int
}

func (m *Model) lastButtonBounds() []buttonBounds { return m.buttons }
func (m *Model) buttonRowY() int                  { return m.buttonY }

// logMsg is sent into the bubbletea program from producer goroutines via
// Program.Send; it is the only way Log() reaches the render loop.
type logMsg struct {
	pkg  string
	pane string
	data []byte
}

// LogEvent builds the tea.Msg a Logger sends to deliver one output
// fragment for (pkg, pane) into the running watch-mode program.
func LogEvent(pkg, pane string, data []byte) tea.Msg {
	return logMsg{pkg: pkg, pane: pane, data: data}
}

// NewModel creates a watch-mode model. If roots has exactly one package
// name, that package starts visible; otherwise the first package (in
// workspace order) does, per the single-package-run invariant.
func NewModel(packages []string, roots []string) *Model {
	m := &Model{
		packages: packages,
		panes:    make(map[string]map[string]*pane),
	}
	for _, pkg := range packages {
		byPane := make(map[string]*pane, len(paneNames))
		for _, name := range paneNames {
			byPane[name] = &pane{pinned: true}
		}
		m.panes[pkg] = byPane
	}

	if len(roots) == 1 {
		m.active = roots[0]
	} else if len(packages) > 0 {
		m.active = packages[0]
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}
