package build

import (
	"testing"

	"github.com/evanw/esbuild/pkg/api"
)

func TestSourcemapSetting(t *testing.T) {
	if got := sourcemapSetting(true); got != api.SourceMapNone {
		t.Errorf("release build: expected SourceMapNone, got %v", got)
	}
	if got := sourcemapSetting(false); got != api.SourceMapLinked {
		t.Errorf("dev build: expected SourceMapLinked, got %v", got)
	}
}

func TestFormatEsbuildMessageWithLocation(t *testing.T) {
	msg := api.Message{
		Text:     "unexpected token",
		Location: &api.Location{File: "src/main.ts", Line: 12, Column: 4},
	}
	got := formatEsbuildMessage(msg)
	want := "✖ src/main.ts:12:4: unexpected token\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatEsbuildMessageWithoutLocation(t *testing.T) {
	msg := api.Message{Text: "internal error"}
	got := formatEsbuildMessage(msg)
	want := "✖ internal error\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
