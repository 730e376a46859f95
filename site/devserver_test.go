package site

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func get(t *testing.T, h http.Handler, target string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec.Code, rec.Body.String()
}

func TestDevServerRoutes(t *testing.T) {
	cfg := newProject(t)
	h := NewDevServer(cfg, zaptest.NewLogger(t).Sugar()).Handler()

	tests := []struct {
		target   string
		code     int
		contains string
	}{
		{"/", http.StatusOK, "<title>Home</title>"},
		{"/about", http.StatusOK, "About us"},
		{"/about/", http.StatusOK, "About us"},
		{"/blog", http.StatusOK, "First post"},
		{"/logo.txt", http.StatusOK, "LOGO"},
		{"/missing", http.StatusNotFound, "<h1>404 Not Found</h1>"},
		{"/../secret", http.StatusNotFound, "<h1>404 Not Found</h1>"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			code, body := get(t, h, tt.target)
			if code != tt.code {
				t.Errorf("status = %d, want %d", code, tt.code)
			}
			if !strings.Contains(body, tt.contains) {
				t.Errorf("body does not contain %q", tt.contains)
			}
		})
	}
}

func TestDevServerInjectsReload(t *testing.T) {
	cfg := newProject(t)
	h := NewDevServer(cfg, zaptest.NewLogger(t).Sugar()).Handler()

	_, body := get(t, h, "/")

	script := strings.Index(body, "new EventSource('/__snap_sse')")
	end := strings.LastIndex(body, "</body>")
	if script < 0 || end < 0 || script > end {
		t.Errorf("reload script not placed before </body>: script=%d end=%d", script, end)
	}
}

func TestInjectReload(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"Last closing tag", "<p></body></p></body></html>", "<p></body></p>" + reloadScript + "</body></html>"},
		{"No closing tag", "<p>x</p>", "<p>x</p>" + reloadScript},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(injectReload([]byte(tt.html))); got != tt.want {
				t.Errorf("injectReload() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorTemplate(t *testing.T) {
	var buf bytes.Buffer
	if err := errorTemplate.Execute(&buf, errorData{Path: "/x", Message: "reading page: <boom>"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<pre>reading page: &lt;boom&gt;</pre>") {
		t.Errorf("message not escaped:\n%s", buf.String())
	}
}

func TestDevServerEvents(t *testing.T) {
	cfg := newProject(t)
	s := NewDevServer(cfg, zaptest.NewLogger(t).Sugar())
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+EventsPath, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %s", ct)
	}

	s.Reload()

	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}
	if line != "data: reload\n" {
		t.Errorf("event = %q", line)
	}
}

func TestDebounce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths := make(chan string)
	fired := make(chan struct{}, 10)
	go debounce(ctx, paths, 20*time.Millisecond, func() { fired <- struct{}{} })

	// Other files never fire
	paths <- "/p/style.css"
	select {
	case <-fired:
		t.Fatal("fired for a file that is not a page")
	case <-time.After(100 * time.Millisecond):
	}

	// A burst of changes fires once
	for _, p := range []string{"/p/index.snap", "/p/style.css", "/p/about.snap", "/p/index.snap"} {
		paths <- p
	}
	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("did not fire")
	}
	select {
	case <-fired:
		t.Error("fired twice for one burst")
	case <-time.After(100 * time.Millisecond):
	}
}
