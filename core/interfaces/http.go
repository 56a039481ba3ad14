package interfaces

import (
	"context"
	"io"
)

// HTTPClient performs the single outbound request behind a rewrite.
// Implementations must follow redirects and must not retry.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Transport failures are returned as errors; any status code is returned as a Response.
	Get(ctx context.Context, url string) (Response, error)
}

// Response is the subset of an HTTP response the core needs.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller closes it.
	Body() io.ReadCloser

	// Header returns the value of the specified header, or "" when absent.
	Header(key string) string
}
