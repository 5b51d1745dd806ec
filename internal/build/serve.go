package build

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

// serverRegistry tracks the live static file servers started by runServe,
// keyed by package name, so Shutdown can tear every one of them down.
type serverRegistry struct {
	mu      sync.Mutex
	servers map[string]*http.Server
}

func (r *serverRegistry) add(name string, srv *http.Server) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.servers == nil {
		r.servers = make(map[string]*http.Server)
	}
	r.servers[name] = srv
}

func (r *serverRegistry) shutdownAll(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, srv := range r.servers {
		_ = srv.Shutdown(ctx)
	}
}

// runServe binds a static file server at pkg/dist to the configured port.
// It does not block: the server runs in a background goroutine and is torn
// down by Shutdown on cancellation.
func (o *Orchestrator) runServe(ctx context.Context, pkg *workspace.Package) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", o.Config.ServePort),
		Handler: http.FileServer(http.Dir(pkg.Path("dist"))),
	}
	o.servers.add(pkg.Name, srv)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			o.Logger.Log(pkg.Name, PaneBuild, []byte(fmt.Sprintf("serve: %s\n", err)))
		}
	}()

	return nil
}
