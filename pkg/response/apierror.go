package response

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is an error carrying an HTTP status and a machine-readable code,
// so handler code can fail with a typed error and let the response layer
// translate it uniformly.
type APIError struct {
	Message    string
	StatusCode int
	ErrorCode  string
	Details    map[string]any
}

func (e *APIError) Error() string { return e.Message }

// NewAPIError builds an APIError. An empty code defaults to "ERR_<status>".
func NewAPIError(message string, statusCode int, errorCode string) *APIError {
	if errorCode == "" {
		errorCode = fmt.Sprintf("ERR_%d", statusCode)
	}
	return &APIError{
		Message:    message,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

// NewNotFoundError reports a missing resource, optionally by ID.
func NewNotFoundError(resource string, id any) *APIError {
	message := resource + " not found"
	if id != nil {
		message = fmt.Sprintf("%s with ID '%v' not found", resource, id)
	}
	return NewAPIError(message, http.StatusNotFound, "NOT_FOUND")
}

// NewUnauthorizedError reports a missing or failed authentication.
func NewUnauthorizedError(message string) *APIError {
	if message == "" {
		message = "Authentication required"
	}
	return NewAPIError(message, http.StatusUnauthorized, "UNAUTHORIZED")
}

// NewForbiddenError reports insufficient permissions.
func NewForbiddenError(message string) *APIError {
	if message == "" {
		message = "Permission denied"
	}
	return NewAPIError(message, http.StatusForbidden, "FORBIDDEN")
}

// NewConflictError reports a state conflict such as a duplicate resource.
func NewConflictError(message string) *APIError {
	if message == "" {
		message = "Resource conflict"
	}
	return NewAPIError(message, http.StatusConflict, "CONFLICT")
}

// NewBadRequestError reports a malformed request.
func NewBadRequestError(message string) *APIError {
	if message == "" {
		message = "Bad request"
	}
	return NewAPIError(message, http.StatusBadRequest, "BAD_REQUEST")
}

// FromError translates any error into a failure envelope. APIErrors keep
// their status, code and details; everything else renders as an opaque 500
// so internals never leak to clients.
func FromError(err error) Response {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		resp := Error(apiErr.Message, apiErr.StatusCode, apiErr.ErrorCode)
		if len(apiErr.Details) > 0 {
			resp.Meta = apiErr.Details
		}
		return resp
	}
	return Error("An error occurred", http.StatusInternalServerError, "INTERNAL_ERROR")
}
