package site

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bundesland.at/internal/logging"
)

// pageInfo is filled in by the page handlers and read back by the access log.
type pageInfo struct {
	slug        string
	missingData bool
}

type pageInfoKey struct{}

// notePage records which page served the request. missingData marks a known
// page whose state record could not be found.
func notePage(r *http.Request, slug string, missingData bool) {
	if info, ok := r.Context().Value(pageInfoKey{}).(*pageInfo); ok {
		info.slug = slug
		info.missingData = missingData
	}
}

// statusRecorder remembers the status and the number of body bytes written.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.status == 0 {
		sr.status = code
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// NewAccessLogMiddleware writes one log line per request with the page that
// answered it. Requests no page claimed are flagged with not_found.
func NewAccessLogMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			info := &pageInfo{}
			ctx := context.WithValue(r.Context(), pageInfoKey{}, info)
			ctx = logging.WithLogger(ctx, logger)

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}

			attrs := []slog.Attr{
				slog.Bool("not_found", status == http.StatusNotFound && info.slug == ""),
				slog.Int("bytes", rec.bytes),
				slog.String("user_agent", r.UserAgent()),
				slog.String("component", "site"),
			}
			if info.slug != "" {
				attrs = append(attrs,
					slog.String("page", info.slug),
					slog.Bool("missing_data", info.missingData))
			}

			logging.LogHTTPRequest(logger, r.Method, r.URL.Path, status,
				float64(time.Since(start).Microseconds())/1000, attrs...)
		})
	}
}
