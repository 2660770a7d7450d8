package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestCategorizeAPIError_GoogleAPICodes(t *testing.T) {
	tests := []struct {
		code     int
		category string
	}{
		{400, "bad_request"},
		{401, "unauthorized"},
		{429, "rate_limit"},
		{503, "server_error"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("code_%d", tt.code), func(t *testing.T) {
			err := categorizeAPIError(&googleapi.Error{Code: tt.code})

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.category, apiErr.Category)
			assert.Equal(t, tt.code, apiErr.StatusCode)
		})
	}
}

func TestCategorizeAPIError_ContextErrors(t *testing.T) {
	var apiErr *APIError

	require.ErrorAs(t, categorizeAPIError(context.DeadlineExceeded), &apiErr)
	assert.Equal(t, "timeout", apiErr.Category)

	require.ErrorAs(t, categorizeAPIError(context.Canceled), &apiErr)
	assert.Equal(t, "canceled", apiErr.Category)
}

func TestCategorizeAPIError_StringMatching(t *testing.T) {
	var apiErr *APIError
	require.ErrorAs(t, categorizeAPIError(errors.New("rpc error: resource exhausted")), &apiErr)
	assert.Equal(t, "quota_exceeded", apiErr.Category)
}

func TestCategorizeAPIError_PreservesOriginal(t *testing.T) {
	original := &googleapi.Error{Code: 429}
	err := categorizeAPIError(original)
	assert.ErrorIs(t, err, original)
}

func TestCategorizeAPIError_Nil(t *testing.T) {
	assert.NoError(t, categorizeAPIError(nil))
}

func TestUserMessage(t *testing.T) {
	rateLimited := categorizeAPIError(&googleapi.Error{Code: 429})
	assert.Equal(t, "Too many requests right now. Please wait a moment and try again.", UserMessage(rateLimited))

	assert.Equal(t, "Something went wrong while processing your request. Please try again.",
		UserMessage(errors.New("plain error")))
}
