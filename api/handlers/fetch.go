// ABOUTME: Fetch handler for the Huma API
// ABOUTME: Exposes POST /fetch which fetches a page and rewrites Yale to Fale

package handlers

import (
	"context"
	"net/http"

	"fale-proxy-api/api/dto/requests"
	"fale-proxy-api/api/dto/responses"
	"fale-proxy-api/api/middleware"
	apperrors "fale-proxy-api/core/errors"
	"fale-proxy-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// FetchHandler handles page fetch and rewrite requests
type FetchHandler struct {
	rewriteService interfaces.RewriteService
	logger         interfaces.Logger
}

// NewFetchHandler creates a new fetch handler
func NewFetchHandler(rewriteService interfaces.RewriteService, logger interfaces.Logger) *FetchHandler {
	return &FetchHandler{
		rewriteService: rewriteService,
		logger:         logger,
	}
}

// RegisterRoutes registers all fetch-related routes
func (h *FetchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "fetchPage",
		Method:      http.MethodPost,
		Path:        "/fetch",
		Summary:     "Fetch and rewrite a page",
		Description: "Fetches the page at url and replaces Yale, yale and YALE with Fale, fale and FALE in its text and title. Attribute values such as links are left unchanged.",
		Tags:        []string{"Fetch"},
	}, h.FetchPage)
}

// FetchPageInput defines the input for the FetchPage operation.
// Body is a pointer so an empty POST reaches the handler and fails as a missing url.
type FetchPageInput struct {
	Body *requests.FetchRequest
}

// FetchPageOutput defines the output for the FetchPage operation
type FetchPageOutput struct {
	Body responses.FetchResponse
}

// FetchPage handles POST /fetch
func (h *FetchHandler) FetchPage(ctx context.Context, input *FetchPageInput) (*FetchPageOutput, error) {
	var targetURL string
	if input.Body != nil {
		targetURL = input.Body.URL
	}

	page, err := h.rewriteService.FetchAndRewrite(ctx, targetURL)
	if err != nil {
		if !apperrors.IsValidation(err) && h.logger != nil {
			h.logger.Error("Failed to fetch content", map[string]interface{}{
				"request_id": middleware.GetRequestID(ctx),
				"url":        targetURL,
				"error":      err.Error(),
			})
		}
		return nil, toAPIError(err)
	}

	return &FetchPageOutput{
		Body: responses.FromRewrittenPage(page),
	}, nil
}
