package watch

import "testing"

func TestAppendFragmentSplitsLines(t *testing.T) {
	p := &pane{pinned: true}
	p.appendFragment([]byte("hello\nworld"))
	if len(p.lines) != 2 || p.lines[0] != "hello" || p.lines[1] != "world" {
		t.Fatalf("unexpected lines: %v", p.lines)
	}
}

func TestAppendFragmentErasesLastLineOnEraseCode(t *testing.T) {
	p := &pane{pinned: true}
	p.appendFragment([]byte("building... 10%"))
	p.appendFragment([]byte("\x1b[2K\rbuilding... 50%"))

	if len(p.lines) != 1 {
		t.Fatalf("expected a single redrawn line, got %v", p.lines)
	}
	if p.lines[0] != "\rbuilding... 50%" {
		t.Fatalf("unexpected content: %q", p.lines[0])
	}
}

func TestAppendFragmentStripsCursorHome(t *testing.T) {
	p := &pane{pinned: true}
	p.appendFragment([]byte("\x1b[1Gprogress"))
	if p.lines[0] != "progress" {
		t.Fatalf("expected ESC[1G stripped, got %q", p.lines[0])
	}
}

func TestAppendFragmentTrimsToMaxLines(t *testing.T) {
	p := &pane{pinned: true}
	for i := 0; i < maxPaneLines+50; i++ {
		p.appendFragment([]byte("line\n"))
	}
	if len(p.lines) > maxPaneLines {
		t.Fatalf("expected at most %d lines, got %d", maxPaneLines, len(p.lines))
	}
}

func TestNewModelSingleRootIsActive(t *testing.T) {
	m := NewModel([]string{"a", "b", "c"}, []string{"b"})
	if m.active != "b" {
		t.Fatalf("expected root b to be active, got %s", m.active)
	}
}

func TestNewModelMultipleRootsDefaultsToFirstPackage(t *testing.T) {
	m := NewModel([]string{"a", "b", "c"}, []string{"b", "c"})
	if m.active != "a" {
		t.Fatalf("expected first package a to be active, got %s", m.active)
	}
}

func TestPackageAtMapsClickToButton(t *testing.T) {
	m := NewModel([]string{"a", "b"}, nil)
	m.buttons = []buttonBounds{
		{pkg: "a", start: 0, end: 10},
		{pkg: "b", start: 10, end: 20},
	}
	m.buttonY = 5

	if pkg, ok := m.packageAt(3, 5); !ok || pkg != "a" {
		t.Fatalf("expected click at (3,5) to map to a, got %q %v", pkg, ok)
	}
	if pkg, ok := m.packageAt(15, 5); !ok || pkg != "b" {
		t.Fatalf("expected click at (15,5) to map to b, got %q %v", pkg, ok)
	}
	if _, ok := m.packageAt(3, 6); ok {
		t.Fatal("expected click off the button row to miss")
	}
}
