// Package response provides the standard JSON envelope used by every API
// reply, plus typed API errors that the rendering layer translates uniformly.
//
// Handlers build envelopes with the constructors and render them directly:
//
//	response.Success(user).Render(w)
//	response.NotFound("User").Render(w)
//
// Failure paths can instead return a typed *APIError and translate it at the
// boundary:
//
//	if err != nil {
//		return response.FromError(err).Render(w)
//	}
//
// The envelope shape is identical for success and failure, so clients parse
// one structure: success flag, status code, message, RFC 3339 timestamp and
// optional data, meta, error_code and field errors.
package response
