// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to the flat {"error": ...} HTTP responses

package handlers

import (
	"errors"
	"net/http"

	"fale-proxy-api/api/dto/responses"
	apperrors "fale-proxy-api/core/errors"
)

// fetchFailedPrefix is prepended to every fetch failure message
const fetchFailedPrefix = "Failed to fetch content: "

// toAPIError converts domain errors to HTTP error responses
func toAPIError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return responses.NewErrorResponse(http.StatusBadRequest, validationErr.Message)
	}

	// FetchFailed and anything unexpected share the same template
	return responses.NewErrorResponse(http.StatusInternalServerError, fetchFailedPrefix+err.Error())
}
