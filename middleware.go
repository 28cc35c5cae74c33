package jwtverify

import (
	"context"
	"net/http"
	"time"
)

// VerifyToken decodes and verifies a raw token, returning the verified
// payload. The middleware never inspects the payload; it only stores it in
// the request context. Errors belonging to the verifier taxonomy mark the
// token as invalid; any other error is an infrastructure fault.
type VerifyToken func(ctx context.Context, token string) (any, error)

// ExcludeFunc reports whether a request should skip token verification
// entirely.
type ExcludeFunc func(r *http.Request) bool

// Middleware checks the token on each incoming request before the wrapped
// handler runs. Construct it with New and exactly one of WithVerifyToken,
// WithKeySet or WithKeySetProvider.
type Middleware struct {
	verifyToken         VerifyToken
	errorHandler        ErrorHandler
	tokenExtractor      TokenExtractor
	exclude             ExcludeFunc
	credentialsOptional bool
	validateOnOptions   bool
	logger              Logger
	recorder            Recorder
	tracer              Tracer
}

// New constructs a Middleware from the supplied options. A verification
// source is required; everything else has defaults: AuthHeaderTokenExtractor,
// DefaultErrorHandler, verification of OPTIONS requests, no exclusions, and
// noop logging, metrics and tracing.
func New(opts ...Option) (*Middleware, error) {
	m := &Middleware{
		errorHandler:      DefaultErrorHandler,
		tokenExtractor:    AuthHeaderTokenExtractor,
		validateOnOptions: true,
		logger:            NoopLogger{},
		recorder:          NoopRecorder{},
		tracer:            NoopTracer{},
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	if m.verifyToken == nil {
		return nil, ErrVerificationUnset
	}

	return m, nil
}

// CheckToken returns an http.Handler that verifies the request's token and,
// on success, calls next with the verified payload stored in the request
// context. On failure the configured ErrorHandler writes the response and
// next never runs.
func (m *Middleware) CheckToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.exclude != nil && m.exclude(r) {
			m.logger.Debugf("skipping token check for excluded request %s", r.URL.Path)
			next.ServeHTTP(w, r)
			return
		}

		if !m.validateOnOptions && r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token, err := m.tokenExtractor(r)
		if err != nil {
			// The request offered a token in a shape the extractor could
			// not use. That is an invalid token, not a server fault.
			m.logger.Warnf("failed to extract token: %v", err)
			m.recorder.IncResult(resultMalformed)
			m.errorHandler(w, r, invalidError{details: err})
			return
		}

		if token == "" {
			if m.credentialsOptional {
				m.logger.Debugf("no token on request to %s, credentials optional", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}
			m.recorder.IncResult(resultMissing)
			m.errorHandler(w, r, ErrTokenMissing)
			return
		}

		ctx, span := m.tracer.StartSpan(r.Context(), "jwtverify.check_token")
		start := time.Now()
		payload, err := m.verifyToken(ctx, token)
		m.recorder.ObserveDuration(time.Since(start).Seconds())
		m.recorder.IncResult(resultLabel(err))
		span.SetAttribute("jwtverify.result", resultLabel(err))
		span.End()

		if err != nil {
			if isDecodingError(err) {
				m.logger.Warnf("token failed verification: %v", err)
				m.errorHandler(w, r, invalidError{details: err})
				return
			}
			m.logger.Errorf("token verification errored: %v", err)
			m.errorHandler(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(SetPayload(ctx, payload)))
	})
}
