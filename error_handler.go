package jwtverify

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hyalite/jwtverify/verifier"
)

var (
	// ErrTokenMissing is reported when no token was supplied on a request
	// that requires one.
	ErrTokenMissing = errors.New("token missing")

	// ErrTokenInvalid is reported when a supplied token failed verification.
	// The wrapped error carries the specific decoding failure.
	ErrTokenInvalid = errors.New("token invalid")
)

// ErrorHandler writes the HTTP response when the middleware cannot let a
// request through. The err is ErrTokenMissing when no token was supplied,
// matches ErrTokenInvalid when verification failed, and is anything else for
// infrastructure faults such as a failing key provider. Custom handlers must
// distinguish these cases; collapsing them hides misconfiguration behind
// 401s.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultErrorHandler responds 400 for a missing token, 401 for an invalid
// one and 500 for everything else, with a small JSON body. It is used when
// no WithErrorHandler option is given.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case errors.Is(err, ErrTokenMissing):
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Token is missing."}`))
	case errors.Is(err, ErrTokenInvalid):
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Token is invalid."}`))
	default:
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Something went wrong while checking the token."}`))
	}
}

// invalidError wraps a verification failure so it matches ErrTokenInvalid
// while keeping the underlying decoding error reachable through Unwrap.
// Not exported; Is and Unwrap give callers everything they need.
type invalidError struct {
	details error
}

func (e invalidError) Is(target error) bool {
	return target == ErrTokenInvalid
}

func (e invalidError) Error() string {
	return fmt.Sprintf("%s: %s", ErrTokenInvalid, e.details)
}

func (e invalidError) Unwrap() error {
	return e.details
}

// isDecodingError reports whether err belongs to the verifier's closed
// taxonomy. Anything outside it is an infrastructure fault, not a verdict
// on the token.
func isDecodingError(err error) bool {
	return errors.Is(err, verifier.ErrInvalidTokenFormat) ||
		errors.Is(err, verifier.ErrInvalidHeader) ||
		errors.Is(err, verifier.ErrInvalidPayload) ||
		errors.Is(err, verifier.ErrNoKeyConfigured) ||
		errors.Is(err, verifier.ErrIncorrectSignature)
}
