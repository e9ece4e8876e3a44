package site

import (
	"log/slog"
	"net/http"

	"bundesland.at/internal/logging"
	"bundesland.at/internal/models"
)

func (s *Site) pageHandler(page models.Page) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record, err := s.States.Lookup(page.Slug)
		notePage(r, page.Slug, err != nil)
		if err != nil {
			logging.LogError(logging.FromContext(r.Context()), "state data unavailable", err,
				slog.String("slug", page.Slug),
				slog.String("component", "site"))
			s.notFoundResponse(w, r)
			return
		}

		doc, err := s.renderer.State(record)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}
		s.sendHTML(w, r, http.StatusOK, doc)
	})
}

func (s *Site) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	s.notFoundResponse(w, r)
}

func (s *Site) debugTableHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := s.renderer.Debug("State table", s.States.Records())
	if err != nil {
		s.serverErrorResponse(w, r, err)
		return
	}
	s.sendHTML(w, r, http.StatusOK, doc)
}
