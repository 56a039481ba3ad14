package responses

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewHumaError(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		msg             string
		errs            []error
		expectedMessage string
	}{
		{
			name:            "message only",
			status:          http.StatusBadRequest,
			msg:             "request body is required",
			expectedMessage: "request body is required",
		},
		{
			name:   "details appended",
			status: http.StatusUnprocessableEntity,
			msg:    "validation failed",
			errs: []error{
				&huma.ErrorDetail{Message: "expected string", Location: "body.url", Value: 5},
				nil,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewHumaError(tt.status, tt.msg, tt.errs...)

			assert.Equal(t, tt.status, err.GetStatus())
			var resp *ErrorResponse
			if assert.True(t, errors.As(err, &resp)) {
				assert.Equal(t, tt.status, resp.GetStatus())
			}
			assert.Contains(t, err.Error(), tt.msg)
			if len(tt.errs) > 0 {
				assert.Contains(t, err.Error(), "expected string")
				assert.Contains(t, err.Error(), "body.url")
			} else {
				assert.Equal(t, tt.expectedMessage, err.Error())
			}
		})
	}
}
