package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// paneKey identifies a pane by (package, process) pair.
type paneKey struct {
	pkg  string
	pane string
}

// OnceLogger buffers (pane, fragment) pairs and dumps each pane's
// accumulated log to its writer at End(), preceded by the bold pane name
// and followed by a rule of dots. Safe for concurrent Log calls.
type OnceLogger struct {
	out   io.Writer
	mu    sync.Mutex
	order []paneKey
	bufs  map[paneKey]*strings.Builder
}

// NewOnceLogger returns an OnceLogger writing its final dump to out.
func NewOnceLogger(out io.Writer) *OnceLogger {
	return &OnceLogger{
		out:  out,
		bufs: make(map[paneKey]*strings.Builder),
	}
}

func (l *OnceLogger) Register(pkg, pane string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := paneKey{pkg, pane}
	if _, ok := l.bufs[key]; ok {
		return
	}
	l.bufs[key] = &strings.Builder{}
	l.order = append(l.order, key)
}

func (l *OnceLogger) Log(pkg, pane string, data []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := paneKey{pkg, pane}
	buf, ok := l.bufs[key]
	if !ok {
		panic(fmt.Sprintf("logging: unregistered pane (%s, %s)", pkg, pane))
	}
	buf.Write(data)
}

func (l *OnceLogger) Start() error { return nil }

func (l *OnceLogger) End() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rule := strings.Repeat(".", ruleWidth())
	for _, key := range l.order {
		content := l.bufs[key].String()
		if strings.TrimSpace(content) == "" {
			continue
		}
		fmt.Fprintf(l.out, "\033[1m%s / %s\033[0m\n", key.pkg, key.pane)
		fmt.Fprint(l.out, content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Fprintln(l.out)
		}
		fmt.Fprintln(l.out, rule)
	}
	return nil
}

// defaultRuleWidth is used when stdout isn't a terminal (piped to a file, CI
// log capture) and there is no width to query.
const defaultRuleWidth = 40

// ruleWidth sizes the dotted rule between panes to the terminal's width
// when stdout is a TTY, falling back to a fixed width otherwise.
func ruleWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return defaultRuleWidth
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultRuleWidth
	}
	return w
}
