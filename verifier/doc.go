// Package verifier decodes and cryptographically verifies compact-serialized
// signed tokens: three dot-separated base64url segments carrying a JSON
// header, a JSON payload, and a signature.
//
// The single entry point is DecodeAndVerify, which splits the token, decodes
// the header, decodes the payload into a caller-chosen type, and checks the
// signature over the encoded header and payload text:
//
//	keys := verifier.NewKeySet().WithHMACSecret([]byte("secret"))
//	payload, err := verifier.DecodeAndVerify[map[string]any](token, keys)
//
// Every failure is reported as one of a closed set of errors, matchable with
// errors.Is and errors.As: ErrInvalidTokenFormat, ErrInvalidHeader,
// ErrInvalidPayload, ErrNoKeyConfigured and ErrIncorrectSignature. Callers
// typically serve a generic unauthorized response and log the specific
// variant.
//
// Claim semantics such as expiry, issuer or audience checks are deliberately
// not part of this package. Verification proves only that the token was
// signed with the configured key material; what the payload means is the
// caller's business.
package verifier
