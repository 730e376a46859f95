package site

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hesusruiz/snap/sliceedit"
	"github.com/rjeczalik/notify"
	"go.uber.org/zap"
)

// EventsPath is the Server-Sent-Events endpoint that tells open pages to reload.
const EventsPath = "/__snap_sse"

// reloadDelay groups the bursts of file events produced by a single save.
const reloadDelay = 100 * time.Millisecond

const reloadScript = `<script>
(function(){const e=new EventSource('` + EventsPath + `');e.onmessage=()=>location.reload();e.onerror=()=>setTimeout(()=>location.reload(),1000)})();
</script>`

type errorData struct {
	Path    string
	Message string
}

var errorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Error</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { color: red; background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; font-family: monospace; }
    </style>
</head>
<body>
    <h1>Internal Server Error</h1>
    <p>{{.Path}}</p>
    <pre>{{.Message}}</pre>
</body>
</html>`))

// DevServer compiles pages on every request and pushes a reload event to the
// open pages when a page changes.
type DevServer struct {
	cfg *Config
	log *zap.SugaredLogger

	mu      sync.Mutex
	clients map[chan struct{}]struct{}
}

func NewDevServer(cfg *Config, log *zap.SugaredLogger) *DevServer {
	return &DevServer{
		cfg:     cfg,
		log:     log,
		clients: make(map[chan struct{}]struct{}),
	}
}

// Handler returns the router of the dev server.
func (s *DevServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))

	r.Get(EventsPath, s.events)
	r.Get("/*", s.page)
	return r
}

// ListenAndServe serves until ctx is cancelled, watching the project for changes.
func (s *DevServer) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr(), Handler: s.Handler()}

	go func() {
		if err := s.Watch(ctx); err != nil {
			s.log.Errorw("watching for changes", "error", err)
		}
	}()

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

// page compiles the page for the route, or serves a static file from the project.
func (s *DevServer) page(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), "/")

	file, err := FindPage(s.cfg.PagesDir, name)
	if err != nil {
		s.static(w, r)
		return
	}

	html, err := CompilePage(s.cfg, file, s.log)
	if err != nil {
		s.log.Errorw("compiling page", "page", file, "error", err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		errorTemplate.Execute(w, errorData{Path: r.URL.Path, Message: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(injectReload([]byte(html)))
}

// injectReload adds the reload client right before the closing body tag.
func injectReload(html []byte) []byte {
	buf := sliceedit.NewBuffer(html)
	if !buf.InsertBeforeLast("</body>", reloadScript) {
		return append(html, reloadScript...)
	}
	return buf.Bytes()
}

func (s *DevServer) static(w http.ResponseWriter, r *http.Request) {
	file := filepath.Join(s.cfg.ProjectDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if !serveFile(w, r, file) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("<h1>404 Not Found</h1>"))
	}
}

// serveFile serves a regular file and reports whether it existed.
func serveFile(w http.ResponseWriter, r *http.Request, file string) bool {
	f, err := os.Open(file)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

func (s *DevServer) subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.clients[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

func (s *DevServer) unsubscribe(ch chan struct{}) {
	s.mu.Lock()
	delete(s.clients, ch)
	s.mu.Unlock()
}

// Reload tells every connected page to reload. Pages with a pending reload are skipped.
func (s *DevServer) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *DevServer) events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	// Subscribe before the client sees the response, so no reload is missed
	ch := s.subscribe()
	defer s.unsubscribe(ch)

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ch:
			fmt.Fprint(w, "data: reload\n\n")
			flusher.Flush()
		}
	}
}

// Watch reloads the connected pages when a page in the project changes, until ctx is cancelled.
func (s *DevServer) Watch(ctx context.Context) error {
	events := make(chan notify.EventInfo, 16)

	dirs := []string{s.cfg.ProjectDir}
	if rel, err := filepath.Rel(s.cfg.ProjectDir, s.cfg.PagesDir); err != nil || strings.HasPrefix(rel, "..") {
		dirs = append(dirs, s.cfg.PagesDir)
	}
	for _, dir := range dirs {
		if err := notify.Watch(filepath.Join(dir, "..."), events, notify.All); err != nil {
			notify.Stop(events)
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		s.log.Infow("watching for changes", "dir", dir)
	}
	defer notify.Stop(events)

	paths := make(chan string)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ei := <-events:
				select {
				case paths <- ei.Path():
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	debounce(ctx, paths, reloadDelay, func() {
		s.log.Infow("page changed, reloading")
		s.Reload()
	})
	return nil
}

// debounce calls fire once changes to pages stop arriving for delay.
// Changes to other files are ignored.
func debounce(ctx context.Context, paths <-chan string, delay time.Duration, fire func()) {
	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case p := <-paths:
			if strings.HasSuffix(p, PageExt) {
				timer = time.After(delay)
			}
		case <-timer:
			timer = nil
			fire()
		}
	}
}

// requestLogger logs every request with its status and duration.
func requestLogger(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debugw("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "elapsed", time.Since(start))
		})
	}
}
