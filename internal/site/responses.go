package site

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"bundesland.at/internal/logging"
)

const htmlContentType = "text/html; charset=utf-8"

func (s *Site) sendHTML(w http.ResponseWriter, r *http.Request, status int, doc string) {
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(status)
	if _, err := io.WriteString(w, doc); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to write response", err,
			slog.String("path", r.URL.Path),
			slog.String("component", "site"))
	}
}

func (s *Site) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	doc, err := s.renderer.NotFound()
	if err != nil {
		s.serverErrorResponse(w, r, err)
		return
	}
	s.sendHTML(w, r, http.StatusNotFound, doc)
}

func (s *Site) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "failed to serve page", err,
		slog.String("path", r.URL.Path),
		slog.String("component", "site"))

	doc, renderErr := s.renderer.Error()
	if renderErr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.sendHTML(w, r, http.StatusInternalServerError, doc)
}

func (s *Site) panicHandler(w http.ResponseWriter, r *http.Request, recovered interface{}) {
	s.serverErrorResponse(w, r, fmt.Errorf("panic: %v", recovered))
}
