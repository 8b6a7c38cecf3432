package wechat

import (
	"errors"
	"fmt"
)

// Kind categorizes the failure mode of an OAuth operation.
type Kind string

const (
	// KindConfig indicates the merged client configuration is incomplete,
	// such as a missing appid or secret. Detected lazily when an exchange
	// is attempted, never at construction time.
	KindConfig Kind = "invalid_config"

	// KindMissingCode indicates no authorization code was available from
	// either the call parameters or the pre-attached client parameters.
	// Raised before any network call is made.
	KindMissingCode Kind = "missing_code"

	// KindTransport indicates a network-level failure (connection refused,
	// timeout, non-2xx status) during the token or userinfo request.
	KindTransport Kind = "transport"

	// KindDecode indicates the provider response body was not valid JSON
	// or lacked the expected structure.
	KindDecode Kind = "decode"

	// KindProvider indicates WeChat returned an in-band error, an errcode
	// field with a non-zero value in an HTTP 200 response.
	KindProvider Kind = "provider"
)

// Error is the error type returned by all operations in this package.
// None of these failures are recovered internally: each one halts the
// single authentication flow that produced it, and no partial AccessToken
// or ClientConfig is ever exposed alongside a non-nil Error.
type Error struct {
	// Kind is the failure category.
	Kind Kind

	// Code is the provider error code (WeChat errcode) when Kind is
	// KindProvider, empty otherwise.
	Code string

	// Message is a human-readable description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("wechat: %s (errcode %s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("wechat: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates an *Error with the given kind, provider code, message,
// and wrapped error.
func newError(kind Kind, code, message string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

// KindOf returns the Kind of err if it is or wraps an *Error, or the empty
// Kind otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is or wraps an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
