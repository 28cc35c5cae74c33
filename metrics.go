package jwtverify

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyalite/jwtverify/verifier"
)

// Verification outcomes as recorded in the result label.
const (
	resultOK           = "ok"
	resultMissing      = "missing"
	resultMalformed    = "malformed"
	resultBadHeader    = "invalid_header"
	resultBadPayload   = "invalid_payload"
	resultNoKey        = "no_key"
	resultBadSignature = "bad_signature"
	resultError        = "error"
)

// resultLabel maps a verification error onto its metric label. A nil error
// is ok; anything outside the decoding taxonomy is an infrastructure error.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, verifier.ErrInvalidTokenFormat):
		return resultMalformed
	case errors.Is(err, verifier.ErrInvalidHeader):
		return resultBadHeader
	case errors.Is(err, verifier.ErrInvalidPayload):
		return resultBadPayload
	case errors.Is(err, verifier.ErrNoKeyConfigured):
		return resultNoKey
	case errors.Is(err, verifier.ErrIncorrectSignature):
		return resultBadSignature
	default:
		return resultError
	}
}

// Recorder receives verification measurements from the middleware.
type Recorder interface {
	IncResult(result string)
	ObserveDuration(seconds float64)
}

// NoopRecorder discards all measurements. It is the default when no
// WithRecorder option is given.
type NoopRecorder struct{}

func (NoopRecorder) IncResult(string)        {}
func (NoopRecorder) ObserveDuration(float64) {}

// PrometheusRecorder exports verification metrics through a Prometheus
// registry: a counter vector jwtverify_checks_total partitioned by result,
// and a histogram jwtverify_check_duration_seconds.
type PrometheusRecorder struct {
	checks   *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewPrometheusRecorder registers the middleware metrics with reg. Pass
// prometheus.DefaultRegisterer to use the default registry.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	r := &PrometheusRecorder{
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jwtverify_checks_total",
			Help: "Token verifications by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "jwtverify_check_duration_seconds",
			Help:    "Time spent verifying tokens.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	if err := reg.Register(r.checks); err != nil {
		return nil, err
	}
	if err := reg.Register(r.duration); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PrometheusRecorder) IncResult(result string) {
	r.checks.WithLabelValues(result).Inc()
}

func (r *PrometheusRecorder) ObserveDuration(seconds float64) {
	r.duration.Observe(seconds)
}

// OTelRecorder exports verification metrics through an OpenTelemetry meter
// as the jwtverify.checks counter and jwtverify.check.duration histogram.
type OTelRecorder struct {
	checks   metric.Int64Counter
	duration metric.Float64Histogram
}

// NewOTelRecorder creates the middleware instruments on meter.
func NewOTelRecorder(meter metric.Meter) (*OTelRecorder, error) {
	checks, err := meter.Int64Counter("jwtverify.checks",
		metric.WithDescription("Token verifications by result."))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("jwtverify.check.duration",
		metric.WithDescription("Time spent verifying tokens."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	return &OTelRecorder{checks: checks, duration: duration}, nil
}

// Measurements carry no request scope, so they are recorded against the
// background context.
func (r *OTelRecorder) IncResult(result string) {
	r.checks.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("result", result)))
}

func (r *OTelRecorder) ObserveDuration(seconds float64) {
	r.duration.Record(context.Background(), seconds)
}
