// ABOUTME: Response DTOs for the fetch endpoint
// ABOUTME: Defines the success payload and the flat error body

package responses

import (
	"strings"

	"fale-proxy-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// FetchResponse is returned when a page was fetched and rewritten
type FetchResponse struct {
	Success     bool   `json:"success" doc:"Always true on success"`
	Content     string `json:"content" doc:"Rewritten HTML document"`
	Title       string `json:"title" doc:"Rewritten page title"`
	OriginalURL string `json:"originalUrl" doc:"URL as supplied in the request"`
}

// FromRewrittenPage maps the domain result onto the response body
func FromRewrittenPage(page *domain.RewrittenPage) FetchResponse {
	return FetchResponse{
		Success:     true,
		Content:     page.Content,
		Title:       page.Title,
		OriginalURL: page.OriginalURL,
	}
}

// ErrorResponse is the body of every error returned by the fetch endpoint.
// It satisfies huma.StatusError so handlers can return it directly.
type ErrorResponse struct {
	status  int
	Message string `json:"error"`
}

// NewErrorResponse creates an error body with the given HTTP status
func NewErrorResponse(status int, message string) *ErrorResponse {
	return &ErrorResponse{status: status, Message: message}
}

// Error implements the error interface
func (e *ErrorResponse) Error() string {
	return e.Message
}

// GetStatus returns the HTTP status code
func (e *ErrorResponse) GetStatus() int {
	return e.status
}

// NewHumaError has the signature of huma.NewError. It keeps request validation
// failures in the same {"error": ...} shape as handler errors.
func NewHumaError(status int, msg string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		msg += ": " + strings.Join(details, "; ")
	}
	return NewErrorResponse(status, msg)
}
