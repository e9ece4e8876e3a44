package site

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/klauspost/compress/gzip"
)

const (
	// Bodies below this size are sent as-is.
	pageCompressionMinSize = 1024

	defaultCompressionLevel = gzip.BestSpeed
)

// compressedContentTypes lists what the site renders. Everything else passes
// through unchanged.
var compressedContentTypes = []string{"text/html"}

// newPageCompressor gzips HTML documents for clients that accept it.
func newPageCompressor(level int) (func(http.Handler) http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(
		gzhttp.MinSize(pageCompressionMinSize),
		gzhttp.CompressionLevel(level),
		gzhttp.ContentTypes(compressedContentTypes),
	)
	if err != nil {
		return nil, fmt.Errorf("configuring page compression: %w", err)
	}
	return func(next http.Handler) http.Handler {
		return wrap(next)
	}, nil
}
