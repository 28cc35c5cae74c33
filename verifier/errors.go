package verifier

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTokenFormat is returned when the token does not consist of
	// exactly three dot-separated segments.
	ErrInvalidTokenFormat = errors.New("token format is invalid")

	// ErrInvalidHeader is the category matched by errors.Is for every
	// InvalidHeaderError.
	ErrInvalidHeader = errors.New("token header is invalid")

	// ErrInvalidPayload is the category matched by errors.Is for every
	// InvalidPayloadError.
	ErrInvalidPayload = errors.New("token payload is invalid")

	// ErrNoKeyConfigured is the category matched by errors.Is for every
	// NoKeyConfiguredError.
	ErrNoKeyConfigured = errors.New("no key configured for algorithm")

	// ErrIncorrectSignature is returned when key material was available but
	// the signature did not verify.
	ErrIncorrectSignature = errors.New("token signature is incorrect")
)

// InvalidHeaderError reports that the header segment could not be decoded,
// parsed, or understood. Messages holds one diagnostic per underlying
// failure; the wording is free-form and not part of the contract.
type InvalidHeaderError struct {
	Messages []string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidHeader, strings.Join(e.Messages, "; "))
}

func (e *InvalidHeaderError) Is(target error) bool {
	return target == ErrInvalidHeader
}

// InvalidPayloadError reports that the payload segment could not be decoded,
// parsed, or deserialized into the requested type. Messages holds one
// diagnostic per underlying failure.
type InvalidPayloadError struct {
	Messages []string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPayload, strings.Join(e.Messages, "; "))
}

func (e *InvalidPayloadError) Is(target error) bool {
	return target == ErrInvalidPayload
}

// NoKeyConfiguredError reports that the key set holds no key material for
// the family of Algorithm. It is also the outcome for algorithm families
// that are declared but not implemented.
type NoKeyConfiguredError struct {
	Algorithm Algorithm
}

func (e *NoKeyConfiguredError) Error() string {
	return fmt.Sprintf("%s %s", ErrNoKeyConfigured, e.Algorithm)
}

func (e *NoKeyConfiguredError) Is(target error) bool {
	return target == ErrNoKeyConfigured
}
