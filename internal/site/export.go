package site

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"bundesland.at/internal/logging"
	"bundesland.at/internal/models"
)

// NotFoundFile is the name of the exported 404 document.
const NotFoundFile = "404.html"

// ExportFileName maps a page to the file it is exported to.
func ExportFileName(page models.Page) string {
	if page.Path == "/" {
		return "index.html"
	}
	return page.Slug + ".html"
}

// Export renders every page and the 404 document into dir. Pages without data
// are exported as the 404 document, the same way they are served. Files are
// replaced atomically.
func (s *Site) Export(ctx context.Context, dir string) ([]string, error) {
	start := time.Now()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	var written []string
	for _, page := range models.Pages() {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		doc, err := s.renderPage(page)
		if err != nil {
			return written, fmt.Errorf("rendering %s: %w", page.Path, err)
		}

		path := filepath.Join(dir, ExportFileName(page))
		if err := atomic.WriteFile(path, strings.NewReader(doc)); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}

	doc, err := s.renderer.NotFound()
	if err != nil {
		return written, fmt.Errorf("rendering not found page: %w", err)
	}
	path := filepath.Join(dir, NotFoundFile)
	if err := atomic.WriteFile(path, strings.NewReader(doc)); err != nil {
		return written, fmt.Errorf("writing %s: %w", path, err)
	}
	written = append(written, path)

	logging.LogOperation(s.Logger, "site_exported",
		slog.String("dir", dir),
		slog.Int("files", len(written)),
		slog.Duration("duration", time.Since(start)),
		slog.String("component", "export"))

	return written, nil
}

func (s *Site) renderPage(page models.Page) (string, error) {
	record, err := s.States.Lookup(page.Slug)
	if err != nil {
		logging.LogError(s.Logger, "state data unavailable", err,
			slog.String("slug", page.Slug),
			slog.String("component", "export"))
		return s.renderer.NotFound()
	}
	return s.renderer.State(record)
}
