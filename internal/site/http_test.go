package site

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"bundesland.at/internal/app"
	"bundesland.at/internal/appconf"
	"bundesland.at/internal/logging"
	"bundesland.at/internal/statedata"
	"bundesland.at/internal/webui/webuitest"
)

// mustLoadTable loads the built-in state table, failing on any problem.
func mustLoadTable(t *testing.T) *statedata.Table {
	t.Helper()
	table, _, err := statedata.Load(statedata.LoadOptions{Strict: true})
	require.NoError(t, err)
	return table
}

// createTestSite creates a Site backed by the built-in state table.
func createTestSite(t *testing.T) *Site {
	t.Helper()
	return createTestSiteWithTable(t, mustLoadTable(t), appconf.Config{Env: appconf.Test})
}

func createTestSiteWithTable(t *testing.T, table *statedata.Table, cfg appconf.Config) *Site {
	t.Helper()
	s, err := New(&app.Application{
		Config: cfg,
		Logger: logging.NewStructuredLogger(io.Discard, slog.LevelInfo),
		States: table,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// createLoggedTestSite is createTestSite with the log output captured in buf.
func createLoggedTestSite(t *testing.T, table *statedata.Table, buf *bytes.Buffer) *Site {
	t.Helper()
	s := createTestSiteWithTable(t, table, appconf.Config{Env: appconf.Test})
	s.Logger = logging.NewStructuredLogger(buf, slog.LevelInfo)
	return s
}

// serveRequest sends one request through handler and returns the recorder
// together with the parsed document.
func serveRequest(t *testing.T, handler http.Handler, method, target string) (*httptest.ResponseRecorder, *webuitest.Document) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	doc, err := webuitest.Parse(rec.Body.String())
	require.NoError(t, err)
	return rec, doc
}

// serveAndRetrieveEndpoint runs the full middleware chain behind a real listener.
func serveAndRetrieveEndpoint(t *testing.T, s *Site, endpoint string) (*http.Response, string) {
	t.Helper()
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}
