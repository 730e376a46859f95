package site

import (
	"context"
	"errors"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// StaticHandler serves a built site from dir. The root path serves index.html,
// and paths without an extension get .html appended.
func StaticHandler(dir string, log *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)
		if name == "/" {
			name = "/index.html"
		}
		if path.Ext(name) == "" {
			name += ".html"
		}

		if !serveFile(w, r, filepath.Join(dir, filepath.FromSlash(name))) {
			http.Error(w, "Not found", http.StatusNotFound)
		}
	})
	return r
}

// Serve runs the static server on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, dir string, log *zap.SugaredLogger) error {
	srv := &http.Server{Addr: addr, Handler: StaticHandler(dir, log)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
