package build

import (
	"testing"

	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

func TestShouldServeOnlyBrowserBinUnderWatch(t *testing.T) {
	cases := []struct {
		name  string
		pkg   *workspace.Package
		watch bool
		want  bool
	}{
		{"browser bin, watch", &workspace.Package{Platform: workspace.PlatformBrowser, Target: workspace.TargetBin}, true, true},
		{"browser bin, no watch", &workspace.Package{Platform: workspace.PlatformBrowser, Target: workspace.TargetBin}, false, false},
		{"browser lib, watch", &workspace.Package{Platform: workspace.PlatformBrowser, Target: workspace.TargetLib}, true, false},
		{"node bin, watch", &workspace.Package{Platform: workspace.PlatformNode, Target: workspace.TargetBin}, true, false},
	}

	for _, c := range cases {
		o := &Orchestrator{Watch: c.watch}
		if got := o.shouldServe(c.pkg); got != c.want {
			t.Errorf("%s: shouldServe = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestParallelFollowsWatchFlag(t *testing.T) {
	if (&Orchestrator{Watch: true}).Parallel() != true {
		t.Error("expected Parallel() to be true under watch")
	}
	if (&Orchestrator{Watch: false}).Parallel() != false {
		t.Error("expected Parallel() to be false outside watch")
	}
}
