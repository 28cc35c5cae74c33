package jwtverify

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hyalite/jwtverify/verifier"
)

// Option configures the Middleware.
// Options return errors to enable validation during construction.
type Option func(*Middleware) error

// KeySetProvider supplies key material per verification, letting it change
// between requests. keys.Static, keys.Provider and keys.CachingProvider all
// implement it.
type KeySetProvider interface {
	KeySet(ctx context.Context) (verifier.KeySet, error)
}

// Sentinel errors for configuration validation.
var (
	ErrVerifyTokenNil       = errors.New("verify function cannot be nil")
	ErrKeySetProviderNil    = errors.New("key set provider cannot be nil")
	ErrErrorHandlerNil      = errors.New("error handler cannot be nil")
	ErrTokenExtractorNil    = errors.New("token extractor cannot be nil")
	ErrExcludedPathsEmpty   = errors.New("excluded paths list cannot be empty")
	ErrExcludeFuncNil       = errors.New("exclude function cannot be nil")
	ErrLoggerNil            = errors.New("logger cannot be nil")
	ErrRecorderNil          = errors.New("recorder cannot be nil")
	ErrTracerNil            = errors.New("tracer cannot be nil")
	ErrVerificationUnset    = errors.New("one of WithVerifyToken, WithKeySet or WithKeySetProvider is required")
	ErrVerificationConflict = errors.New("WithVerifyToken, WithKeySet and WithKeySetProvider are mutually exclusive")
)

// WithVerifyToken sets the verification function directly. Use this for
// typed payloads (verifier.Func[T]) or fully custom verification.
//
// Example:
//
//	mw, err := jwtverify.New(
//		jwtverify.WithVerifyToken(verifier.Func[MyClaims](keys)),
//	)
func WithVerifyToken(verify VerifyToken) Option {
	return func(m *Middleware) error {
		if verify == nil {
			return ErrVerifyTokenNil
		}
		if m.verifyToken != nil {
			return ErrVerificationConflict
		}
		m.verifyToken = verify
		return nil
	}
}

// WithKeySet verifies every request against a fixed key set, decoding the
// payload as map[string]any. Decode options such as
// verifier.WithAllowedAlgorithms apply to every verification.
func WithKeySet(keys verifier.KeySet, opts ...verifier.DecodeOption) Option {
	return func(m *Middleware) error {
		if m.verifyToken != nil {
			return ErrVerificationConflict
		}
		m.verifyToken = verifier.Func[map[string]any](keys, opts...)
		return nil
	}
}

// WithKeySetProvider fetches the key set from provider on each verification,
// decoding the payload as map[string]any. Use keys.CachingProvider to avoid
// refetching JWKS documents per request. A provider failure is reported to
// the error handler as an infrastructure error, not as an invalid token.
func WithKeySetProvider(provider KeySetProvider, opts ...verifier.DecodeOption) Option {
	return func(m *Middleware) error {
		if provider == nil {
			return ErrKeySetProviderNil
		}
		if m.verifyToken != nil {
			return ErrVerificationConflict
		}
		m.verifyToken = func(ctx context.Context, token string) (any, error) {
			keys, err := provider.KeySet(ctx)
			if err != nil {
				return nil, fmt.Errorf("getting key set from provider: %w", err)
			}
			payload, err := verifier.DecodeAndVerify[map[string]any](token, keys, opts...)
			if err != nil {
				return nil, err
			}
			return payload, nil
		}
		return nil
	}
}

// WithCredentialsOptional lets requests without any token through, with no
// payload in the context. Requests that do carry a token are still verified.
//
// Default: false (a missing token is an error).
func WithCredentialsOptional(value bool) Option {
	return func(m *Middleware) error {
		m.credentialsOptional = value
		return nil
	}
}

// WithValidateOnOptions controls whether OPTIONS requests are verified.
//
// Default: true.
func WithValidateOnOptions(value bool) Option {
	return func(m *Middleware) error {
		m.validateOnOptions = value
		return nil
	}
}

// WithErrorHandler sets the handler called when a request cannot pass. See
// the ErrorHandler type for the error cases it must distinguish.
//
// Default: DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(m *Middleware) error {
		if h == nil {
			return ErrErrorHandlerNil
		}
		m.errorHandler = h
		return nil
	}
}

// WithTokenExtractor sets how the token is pulled from the request.
//
// Default: AuthHeaderTokenExtractor.
func WithTokenExtractor(e TokenExtractor) Option {
	return func(m *Middleware) error {
		if e == nil {
			return ErrTokenExtractorNil
		}
		m.tokenExtractor = e
		return nil
	}
}

// WithExcludedPaths skips verification for requests whose path or full URL
// equals one of the given strings. For pattern matching, use
// WithExcludeFunc.
func WithExcludedPaths(paths ...string) Option {
	return func(m *Middleware) error {
		if len(paths) == 0 {
			return ErrExcludedPathsEmpty
		}
		excluded := make(map[string]bool, len(paths))
		for _, p := range paths {
			excluded[p] = true
		}
		m.exclude = func(r *http.Request) bool {
			return excluded[r.URL.Path] || excluded[r.URL.String()]
		}
		return nil
	}
}

// WithExcludeFunc skips verification for requests the predicate matches.
func WithExcludeFunc(exclude ExcludeFunc) Option {
	return func(m *Middleware) error {
		if exclude == nil {
			return ErrExcludeFuncNil
		}
		m.exclude = exclude
		return nil
	}
}

// WithLogger sets the logger used throughout the verification flow.
//
// Default: NoopLogger.
func WithLogger(logger Logger) Option {
	return func(m *Middleware) error {
		if logger == nil {
			return ErrLoggerNil
		}
		m.logger = logger
		return nil
	}
}

// WithRecorder sets the metrics recorder for verification outcomes and
// durations.
//
// Default: NoopRecorder.
func WithRecorder(recorder Recorder) Option {
	return func(m *Middleware) error {
		if recorder == nil {
			return ErrRecorderNil
		}
		m.recorder = recorder
		return nil
	}
}

// WithTracer sets the tracer spanning each verification.
//
// Default: NoopTracer.
func WithTracer(tracer Tracer) Option {
	return func(m *Middleware) error {
		if tracer == nil {
			return ErrTracerNil
		}
		m.tracer = tracer
		return nil
	}
}
