package jwtverify

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Tracer starts a span around each token verification.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span is one verification span. SetAttribute records the verification
// result; End closes the span.
type Span interface {
	SetAttribute(key, value string)
	End()
}

// NoopTracer produces spans that do nothing. It is the default when no
// WithTracer option is given.
type NoopTracer struct{}

func (NoopTracer) StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) SetAttribute(string, string) {}
func (noopSpan) End()                        {}

// OTelTracer bridges the middleware to an OpenTelemetry tracer. The span
// context is threaded into the verification function, so downstream calls
// such as JWKS fetches join the same trace.
type OTelTracer struct {
	tracer oteltrace.Tracer
}

// NewOTelTracer wraps an OpenTelemetry tracer.
func NewOTelTracer(tracer oteltrace.Tracer) *OTelTracer {
	return &OTelTracer{tracer: tracer}
}

func (t *OTelTracer) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, otelSpan{span}
}

type otelSpan struct {
	span oteltrace.Span
}

func (s otelSpan) SetAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

func (s otelSpan) End() {
	s.span.End()
}
