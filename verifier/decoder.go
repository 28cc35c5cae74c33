package verifier

import (
	"context"
	"fmt"
	"strings"
)

// DecodeAndVerify splits token into its three segments, decodes the header,
// decodes the payload into P, and verifies the signature against keys. It
// returns the payload on success, or the first stage's error: every error
// matches exactly one of ErrInvalidTokenFormat, ErrInvalidHeader,
// ErrInvalidPayload, ErrNoKeyConfigured or ErrIncorrectSignature via
// errors.Is. No stage is retried and no fallback algorithm is tried.
//
// The call is a pure function of its inputs: no I/O, no retained state,
// bounded CPU, safe to invoke from any number of goroutines sharing keys.
//
// An error from applying a DecodeOption itself is a configuration mistake
// and is returned as-is, outside the decoding taxonomy.
func DecodeAndVerify[P any](token string, keys KeySet, opts ...DecodeOption) (P, error) {
	var zero P

	var cfg decodeConfig
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return zero, err
		}
	}

	if cfg.maxTokenLength > 0 && len(token) > cfg.maxTokenLength {
		return zero, ErrInvalidTokenFormat
	}

	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return zero, ErrInvalidTokenFormat
	}

	header, err := decodeHeader(segments[0])
	if err != nil {
		return zero, err
	}
	if cfg.allowed != nil && !cfg.allowed[header.Algorithm] {
		return zero, &InvalidHeaderError{Messages: []string{
			fmt.Sprintf("algorithm %s is not allowed here", header.Algorithm),
		}}
	}

	payload, err := decodePayload[P](segments[1])
	if err != nil {
		return zero, err
	}

	// The signature covers the encoded wire text of header and payload,
	// never the decoded bytes.
	signedText := segments[0] + "." + segments[1]
	if err := verifySignature(header.Algorithm, keys, signedText, segments[2]); err != nil {
		return zero, err
	}

	return payload, nil
}

// DecodeUnverified decodes the header and payload without checking the
// signature. Format, header and payload errors are reported exactly as in
// DecodeAndVerify; the key set and signature segment play no part. Nothing
// returned from here has been authenticated.
func DecodeUnverified[P any](token string) (P, error) {
	var zero P

	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return zero, ErrInvalidTokenFormat
	}
	if _, err := decodeHeader(segments[0]); err != nil {
		return zero, err
	}
	return decodePayload[P](segments[1])
}

// DecodeHeader decodes only the header segment of token. Useful ahead of
// verification, for example to pick key material by key ID from
// Header.Parameters.
func DecodeHeader(token string) (Header, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return Header{}, ErrInvalidTokenFormat
	}
	return decodeHeader(segments[0])
}

// Func adapts DecodeAndVerify to the verification-function shape the
// middleware layer consumes. The returned function decodes every token into
// P with the same key set and options.
func Func[P any](keys KeySet, opts ...DecodeOption) func(context.Context, string) (any, error) {
	return func(_ context.Context, token string) (any, error) {
		payload, err := DecodeAndVerify[P](token, keys, opts...)
		if err != nil {
			return nil, err
		}
		return payload, nil
	}
}
