package jwtverify

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyalite/jwtverify/verifier"
)

func TestResultLabel(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "it labels success ok", err: nil, expected: "ok"},
		{name: "it labels a format error malformed", err: verifier.ErrInvalidTokenFormat, expected: "malformed"},
		{name: "it labels a header error", err: &verifier.InvalidHeaderError{Messages: []string{"x"}}, expected: "invalid_header"},
		{name: "it labels a payload error", err: &verifier.InvalidPayloadError{Messages: []string{"x"}}, expected: "invalid_payload"},
		{name: "it labels a missing key", err: &verifier.NoKeyConfiguredError{Algorithm: verifier.HS256}, expected: "no_key"},
		{name: "it labels a signature mismatch", err: verifier.ErrIncorrectSignature, expected: "bad_signature"},
		{name: "it labels anything else an error", err: errors.New("network timeout"), expected: "error"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, resultLabel(testCase.err))
		})
	}
}

func TestPrometheusRecorder(t *testing.T) {
	t.Run("it registers and exports both metrics", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		recorder, err := NewPrometheusRecorder(registry)
		require.NoError(t, err)

		recorder.IncResult("ok")
		recorder.IncResult("ok")
		recorder.IncResult("bad_signature")
		recorder.ObserveDuration(0.002)

		families, err := registry.Gather()
		require.NoError(t, err)

		byName := make(map[string]*dto.MetricFamily, len(families))
		for _, family := range families {
			byName[family.GetName()] = family
		}

		checks, ok := byName["jwtverify_checks_total"]
		require.True(t, ok, "counter not exported")
		counts := make(map[string]float64)
		for _, metric := range checks.GetMetric() {
			counts[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
		}
		assert.Equal(t, float64(2), counts["ok"])
		assert.Equal(t, float64(1), counts["bad_signature"])

		duration, ok := byName["jwtverify_check_duration_seconds"]
		require.True(t, ok, "histogram not exported")
		require.Len(t, duration.GetMetric(), 1)
		assert.Equal(t, uint64(1), duration.GetMetric()[0].GetHistogram().GetSampleCount())
	})

	t.Run("it refuses to register twice on one registry", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		_, err := NewPrometheusRecorder(registry)
		require.NoError(t, err)

		_, err = NewPrometheusRecorder(registry)
		assert.Error(t, err)
	})
}
