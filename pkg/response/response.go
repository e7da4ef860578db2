package response

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"
)

// FieldError describes a single field-level failure, typically produced by
// payload validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Response is the standard JSON envelope every API reply uses, success and
// failure alike.
type Response struct {
	Success    bool           `json:"success"`
	StatusCode int            `json:"status_code"`
	Message    string         `json:"message"`
	Timestamp  string         `json:"timestamp"`
	Data       any            `json:"data,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
	ErrorCode  string         `json:"error_code,omitempty"`
	Errors     []FieldError   `json:"errors,omitempty"`
}

// Render writes the envelope to w with its status code and a JSON body.
// A 204 renders no body at all.
func (resp Response) Render(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.StatusCode)
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewEncoder(w).Encode(resp)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Success builds a 200 envelope wrapping data.
func Success(data any) Response {
	return Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    "Success",
		Timestamp:  timestamp(),
		Data:       data,
	}
}

// SuccessWithMeta builds a 200 envelope wrapping data plus metadata such as
// pagination figures.
func SuccessWithMeta(data any, meta map[string]any) Response {
	resp := Success(data)
	resp.Meta = meta
	return resp
}

// Created builds a 201 envelope for newly created resources.
func Created(data any) Response {
	return Response{
		Success:    true,
		StatusCode: http.StatusCreated,
		Message:    "Resource created",
		Timestamp:  timestamp(),
		Data:       data,
	}
}

// NoContent builds an empty 204 envelope.
func NoContent() Response {
	return Response{
		Success:    true,
		StatusCode: http.StatusNoContent,
		Timestamp:  timestamp(),
	}
}

// Error builds a failure envelope with the given message, status and
// machine-readable code. An empty code defaults to "ERR_<status>".
func Error(message string, statusCode int, errorCode string) Response {
	if errorCode == "" {
		errorCode = fmt.Sprintf("ERR_%d", statusCode)
	}
	return Response{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Timestamp:  timestamp(),
		ErrorCode:  errorCode,
	}
}

// NotFound builds a 404 envelope for the named resource.
func NotFound(resource string) Response {
	if resource == "" {
		resource = "Resource"
	}
	return Error(resource+" not found", http.StatusNotFound, "NOT_FOUND")
}

// ValidationFailed builds a 422 envelope carrying field-level errors.
func ValidationFailed(errs []FieldError) Response {
	resp := Error("Validation failed", http.StatusUnprocessableEntity, "VALIDATION_ERROR")
	resp.Errors = errs
	return resp
}

// Unauthorized builds a 401 envelope.
func Unauthorized(message string) Response {
	if message == "" {
		message = "Authentication required"
	}
	return Error(message, http.StatusUnauthorized, "UNAUTHORIZED")
}

// Forbidden builds a 403 envelope.
func Forbidden(message string) Response {
	if message == "" {
		message = "Permission denied"
	}
	return Error(message, http.StatusForbidden, "FORBIDDEN")
}

// RateLimited builds a 429 envelope carrying the retry-after figure in its
// metadata, rounded up to whole seconds.
func RateLimited(retryAfter time.Duration) Response {
	resp := Error("Too many requests", http.StatusTooManyRequests, "RATE_LIMITED")
	resp.Meta = map[string]any{
		"retry_after_seconds": int(math.Ceil(retryAfter.Seconds())),
	}
	return resp
}
