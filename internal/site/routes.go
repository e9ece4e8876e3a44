package site

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"bundesland.at/internal/appconf"
	"bundesland.at/internal/models"
)

// Pages answer every method the same way.
var pageMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// Router returns the route table: one exact, case-sensitive entry per page and
// the 404 document for everything else.
func (s *Site) Router() *httprouter.Router {
	router := httprouter.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = false
	router.HandleOPTIONS = false
	router.NotFound = http.HandlerFunc(s.notFoundHandler)
	router.PanicHandler = s.panicHandler

	for _, page := range models.Pages() {
		handler := s.pageHandler(page)
		for _, method := range pageMethods {
			router.Handler(method, page.Path, handler)
		}
	}

	if s.Config.Debug {
		router.HandlerFunc(http.MethodGet, "/debug/table", s.debugTableHandler)
	}

	return router
}

// Routes returns the router wrapped in the middleware chain.
func (s *Site) Routes() http.Handler {
	var handler http.Handler = s.Router()
	handler = s.compress(handler)
	handler = s.rateLimiter.Handler(handler)
	handler = NewSecurityHeadersMiddleware(s.Config.Env == appconf.Production)(handler)
	handler = NewAccessLogMiddleware(s.Logger)(handler)
	return handler
}
