// errors.go - Categorization of inference API errors

package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// APIError is a categorized inference service error. Categories are stable
// strings the HTTP layer can map to status codes and user guidance.
type APIError struct {
	OriginalError error
	Category      string
	StatusCode    int
	Message       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s (status: %d)", e.Category, e.Message, e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.OriginalError }

// categorizeAPIError analyzes an error from the inference service
func categorizeAPIError(err error) error {
	if err == nil {
		return nil
	}

	apiErr := &APIError{
		OriginalError: err,
		Category:      "unknown",
		Message:       err.Error(),
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		apiErr.StatusCode = gerr.Code
		switch gerr.Code {
		case 400:
			apiErr.Category = "bad_request"
			apiErr.Message = "Invalid request format or parameters"
		case 401:
			apiErr.Category = "unauthorized"
			apiErr.Message = "Invalid API key or authentication failed"
		case 403:
			apiErr.Category = "forbidden"
			apiErr.Message = "API key lacks required permissions"
		case 404:
			apiErr.Category = "not_found"
			apiErr.Message = "Model not found or invalid endpoint"
		case 413:
			apiErr.Category = "payload_too_large"
			apiErr.Message = "Request size exceeds limit"
		case 429:
			apiErr.Category = "rate_limit"
			apiErr.Message = "Rate limit exceeded - too many requests"
		case 500, 502, 503, 504:
			apiErr.Category = "server_error"
			apiErr.Message = fmt.Sprintf("Inference server error (%d)", gerr.Code)
		default:
			apiErr.Category = "unknown_api_error"
			apiErr.Message = fmt.Sprintf("API error: %s", gerr.Message)
		}
		return apiErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		apiErr.Category = "timeout"
		apiErr.Message = "Request timeout - processing took too long"
		return apiErr
	}
	if errors.Is(err, context.Canceled) {
		apiErr.Category = "canceled"
		apiErr.Message = "Request was canceled"
		return apiErr
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "resource exhausted"):
		apiErr.Category = "quota_exceeded"
		apiErr.Message = "API quota exceeded"
	case strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline"):
		apiErr.Category = "timeout"
		apiErr.Message = "Request timeout"
	case strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network"):
		apiErr.Category = "network_error"
		apiErr.Message = "Network connection error"
	}

	return apiErr
}

// UserMessage converts an inference error into a sentence safe to show the
// end user.
func UserMessage(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return "Something went wrong while processing your request. Please try again."
	}

	switch apiErr.Category {
	case "rate_limit":
		return "Too many requests right now. Please wait a moment and try again."
	case "quota_exceeded":
		return "The daily processing quota has been reached. Please try again later."
	case "unauthorized", "forbidden":
		return "The scanning service is misconfigured. Please contact support."
	case "payload_too_large":
		return "That file is too large to process. Please try a smaller one."
	case "timeout":
		return "Processing took too long. Please try again with a clearer file."
	case "server_error", "network_error":
		return "The scanning service is temporarily unavailable. Please try again in a few minutes."
	default:
		return "Something went wrong while processing your request. Please try again."
	}
}
