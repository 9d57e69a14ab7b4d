package lastfm

import (
	"fmt"
)

// Error represents a Last.fm API error.
//
// The Error type provides structured error information including
// the Last.fm error code and message. It implements error, and
// provides additional methods for callers that want to classify
// failures.
type Error struct {
	Code    int    // Last.fm error code
	Message string // Error message from Last.fm
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("lastfm: error %d: %s", e.Code, e.Message)
}

// Is checks if the target error is a Last.fm error.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Temporary returns true if the error is temporary and the caller
// may reasonably try the request again.
//
// The following Last.fm error codes are considered temporary:
//   - 11: Service Offline - temporarily unavailable
//   - 16: Service Temporarily Unavailable
//
// The client itself never retries; classification is left to callers.
func (e *Error) Temporary() bool {
	switch e.Code {
	case 11: // Service Offline
		return true
	case 16: // Service Temporarily Unavailable
		return true
	default:
		return false
	}
}

// Common Last.fm error codes.
const (
	ErrCodeInvalidService       = 2
	ErrCodeInvalidMethod        = 3
	ErrCodeAuthenticationFailed = 4
	ErrCodeInvalidFormat        = 5
	ErrCodeInvalidParameters    = 6
	ErrCodeInvalidResourceSpec  = 7
	ErrCodeOperationFailed      = 8
	ErrCodeInvalidSessionKey    = 9
	ErrCodeInvalidAPIKey        = 10
	ErrCodeServiceOffline       = 11
	ErrCodeSubscribersOnly      = 12
	ErrCodeInvalidSignature     = 13
	ErrCodeUnauthorizedToken    = 14
	ErrCodeExpiredToken         = 15
	ErrCodeTempUnavailable      = 16
	ErrCodeRateLimitExceeded    = 29
)

// TransportError indicates the HTTP exchange failed: the request
// could not be performed, the body could not be read, or the server
// answered with a non-success status carrying no recognizable Last.fm
// error document. The operation is not retried.
type TransportError struct {
	StatusCode int   // HTTP status code, 0 if no response was received
	Err        error // Underlying error, nil for bare status failures
}

// Error returns the error message.
func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lastfm: transport error: %v", e.Err)
	}
	return fmt.Sprintf("lastfm: unexpected status code: %d", e.StatusCode)
}

// Unwrap returns the underlying error, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError indicates the response body was not valid JSON, or could
// not be unmarshaled into the expected response structure.
type ParseError struct {
	Err error // Underlying decode error
}

// Error returns the error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("lastfm: invalid JSON response: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MalformedResponseError indicates the response was valid JSON but
// lacked the fields required for the requested projection.
type MalformedResponseError struct {
	Path string // JSON path that was expected but absent
}

// Error returns the error message.
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("lastfm: response missing %s", e.Path)
}

// InvalidParameterError indicates a required request parameter was
// missing or malformed. It is returned before any network call is
// attempted.
type InvalidParameterError struct {
	Param  string // Parameter name
	Reason string // Why the value was rejected
}

// Error returns the error message.
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("lastfm: invalid parameter %q: %s", e.Param, e.Reason)
}
