package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hesusruiz/snap/snap"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// PageExt is the extension of source pages.
const PageExt = ".snap"

// ErrNoPage is returned when a route does not correspond to any page.
var ErrNoPage = errors.New("page not found")

// FindPage returns the source file for a route name, trying name.snap and then name/index.snap.
// The name is cleaned first, so it can not point outside pagesDir.
func FindPage(pagesDir string, name string) (string, error) {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" {
		name = "index"
	}

	candidates := []string{
		filepath.Join(pagesDir, filepath.FromSlash(name)+PageExt),
		filepath.Join(pagesDir, filepath.FromSlash(name), "index"+PageExt),
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrNoPage)
}

// findAllPages returns every page under dir, in lexical order.
func findAllPages(dir string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), PageExt) {
			pages = append(pages, p)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return pages, err
}

// CompilePage reads a page and compiles it to a complete HTML document.
// Imports are resolved relative to the directory of the page.
// Content problems never fail; they are logged as diagnostics.
func CompilePage(cfg *Config, file string, log *zap.SugaredLogger) (string, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading page: %w", err)
	}

	doc := snap.ParseWith(string(src), snap.Options{
		Filename:  file,
		Resolver:  snap.DirResolver(filepath.Dir(file)),
		CodeStyle: cfg.CodeStyle,
		Logger:    log,
	})
	for _, d := range doc.Diagnostics {
		log.Warnw("page diagnostic", "page", file, "error", d)
	}

	return snap.Render(doc), nil
}

// Build compiles every page under the pages directory into the output directory,
// mirroring the relative paths with an .html extension. Pages are compiled concurrently.
// It returns the relative paths of the pages built, and all the failures combined.
func Build(cfg *Config, log *zap.SugaredLogger) ([]string, error) {
	pages, err := findAllPages(cfg.PagesDir)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	rels := make([]string, len(pages))
	errs := make([]error, len(pages))

	var wg sync.WaitGroup
	for i, page := range pages {
		wg.Add(1)
		go func(i int, page string) {
			defer wg.Done()
			rels[i], errs[i] = buildPage(cfg, page, log)
		}(i, page)
	}
	wg.Wait()

	var built []string
	for i, rel := range rels {
		if errs[i] == nil {
			built = append(built, rel)
		}
	}

	return built, multierr.Combine(errs...)
}

func buildPage(cfg *Config, page string, log *zap.SugaredLogger) (string, error) {
	rel, err := filepath.Rel(cfg.PagesDir, page)
	if err != nil {
		return "", err
	}
	rel = strings.TrimSuffix(rel, PageExt) + ".html"

	html, err := CompilePage(cfg, page, log)
	if err != nil {
		return "", fmt.Errorf("%s: %w", page, err)
	}

	outFile := filepath.Join(cfg.OutDir, rel)
	if err := os.MkdirAll(filepath.Dir(outFile), 0755); err != nil {
		return "", fmt.Errorf("%s: %w", page, err)
	}
	if err := os.WriteFile(outFile, []byte(html), 0664); err != nil {
		return "", fmt.Errorf("%s: %w", page, err)
	}

	log.Debugw("page built", "page", page, "out", outFile)
	return filepath.ToSlash(rel), nil
}

// lastModified returns the newest modification time of the pages under dir,
// and the number of pages, so removals are noticed too.
func lastModified(dir string) (time.Time, int, error) {
	pages, err := findAllPages(dir)
	if err != nil {
		return time.Time{}, 0, err
	}

	var latest time.Time
	for _, p := range pages {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest, len(pages), nil
}

// Watch checks periodically if any page has been modified, and if so rebuilds the site.
// The first check always builds. onBuild is called after every build.
func Watch(ctx context.Context, cfg *Config, interval time.Duration, log *zap.SugaredLogger, onBuild func([]string, error)) error {

	var oldTimestamp time.Time
	oldCount := -1

	for {

		currentTimestamp, count, err := lastModified(cfg.PagesDir)
		if err != nil {
			return err
		}

		// Rebuild when a page is newer than the previous build or a page was added or removed
		if oldTimestamp.Before(currentTimestamp) || count != oldCount {
			oldTimestamp = currentTimestamp
			oldCount = count
			log.Infow("building", "pages", count)
			built, err := Build(cfg, log)
			if onBuild != nil {
				onBuild(built, err)
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}

	}
}
