package api

import (
	"errors"
	"fmt"
)

// Code is the application error code carried in the remote error body.
// Values mirror gRPC status codes, which the services use internally.
type Code int

const (
	CodeUnknown            Code = 0
	CodeNotFound           Code = 5
	CodeAlreadyExists      Code = 6
	CodeFailedPrecondition Code = 9
	CodeInternal           Code = 13
)

// String returns the code's name, or "code(N)" for codes we give no meaning.
func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeNotFound:
		return "not_found"
	case CodeAlreadyExists:
		return "already_exists"
	case CodeFailedPrecondition:
		return "failed_precondition"
	case CodeInternal:
		return "internal"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Kind classifies where an error came from.
type Kind int

const (
	// KindConfig means a required service host is not configured.
	KindConfig Kind = iota + 1
	// KindTransport means the request failed or the response could not be parsed.
	KindTransport
	// KindApplication means the service answered non-2xx with a structured body.
	KindApplication
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransport:
		return "transport"
	case KindApplication:
		return "application"
	default:
		return "unknown"
	}
}

// defaultMessage is used when the service returns no message.
const defaultMessage = "An API error occurred"

// Error is the structured error returned by every client call.
type Error struct {
	Kind    Kind
	Message string
	Code    Code
	Details []any
	Status  int // HTTP status; 0 for config and transport errors

	err error // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api %s error (status %d, code %s): %s", e.Kind, e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api %s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.err }

// Is matches the code sentinels below, so callers can write
// errors.Is(err, api.ErrAlreadyExists).
func (e *Error) Is(target error) bool {
	t, ok := target.(*codeSentinel)
	return ok && t.code == e.Code && e.Kind == KindApplication
}

type codeSentinel struct{ code Code }

func (s *codeSentinel) Error() string { return "api: " + s.code.String() }

// Sentinels for errors.Is against application error codes.
var (
	ErrNotFound           error = &codeSentinel{CodeNotFound}
	ErrAlreadyExists      error = &codeSentinel{CodeAlreadyExists}
	ErrFailedPrecondition error = &codeSentinel{CodeFailedPrecondition}
	ErrInternal           error = &codeSentinel{CodeInternal}
)

// AsError converts any error into *Error. Errors that did not come from the
// client become the generic transport variant with code 0.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return transportError(err)
}

func configError(msg string) *Error {
	return &Error{Kind: KindConfig, Message: msg, Code: CodeUnknown}
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error(), Code: CodeUnknown, Details: []any{}, err: err}
}

// errorBody is the JSON shape of a remote error response.
type errorBody struct {
	Message string `json:"message"`
	Code    *int   `json:"code"`
	Details []any  `json:"details"`
}
