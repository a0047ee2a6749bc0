package model

import "fmt"

// ErrorKind classifies a failed dispatch. There are exactly two kinds:
// the caller's fault (bad arguments, unknown tool) and everything else
// (local file I/O, network, timeout). A non-2xx JSON body from the
// backend is not an error kind of its own; it is forwarded verbatim as a
// successful dispatch result.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindInternal   ErrorKind = "internal"
)

// GatewayError is the single error type surfaced by the dispatch engine
// and the backend client.
type GatewayError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *GatewayError) Error() string {
	if e == nil {
		return ""
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *GatewayError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Validationf builds a caller-fault error. Validation errors are reported
// before any network call is made and are never retried.
func Validationf(format string, args ...any) *GatewayError {
	return &GatewayError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Internalf builds an internal error carrying the underlying cause's message.
func Internalf(cause error, format string, args ...any) *GatewayError {
	return &GatewayError{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Cause: cause}
}
