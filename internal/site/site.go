// Package site serves the rendered pages over HTTP and exports them as static files.
package site

import (
	"fmt"
	"net/http"
	"time"

	"bundesland.at/internal/app"
	"bundesland.at/internal/webui"
)

// Site wires the application dependencies to the page renderer.
type Site struct {
	*app.Application
	renderer    *webui.Renderer
	rateLimiter *RateLimitMiddleware
	compress    func(http.Handler) http.Handler
}

// New creates a Site. Call Close to stop background work.
func New(application *app.Application) (*Site, error) {
	renderer, err := webui.New()
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	compress, err := newPageCompressor(defaultCompressionLevel)
	if err != nil {
		return nil, err
	}

	return &Site{
		Application: application,
		renderer:    renderer,
		rateLimiter: NewRateLimitMiddleware(application.Config.RateLimit, time.Second),
		compress:    compress,
	}, nil
}

// Close stops the rate limiter cleanup goroutine.
func (s *Site) Close() error {
	s.rateLimiter.Stop()
	return nil
}
