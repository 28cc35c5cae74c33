// Package jwtverify provides net/http middleware that decodes and verifies
// compact-serialized signed tokens (JWTs) on incoming requests before the
// wrapped handler runs.
//
// The verification itself lives in the verifier subpackage; this package
// wires it to HTTP: extracting the token from the request, running the
// configured verification function, storing the payload in the request
// context, and translating failures into HTTP responses.
//
//	keys := verifier.NewKeySet().WithHMACSecret(secret)
//
//	mw, err := jwtverify.New(
//		jwtverify.WithKeySet(keys),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	http.ListenAndServe(":8080", mw.CheckToken(handler))
//
// Handlers behind the middleware read the verified payload from the request
// context:
//
//	payload, err := jwtverify.GetPayload[map[string]any](r.Context())
//
// Key material can come from a static key set, a PEM file (keys package), or
// a JWKS endpoint with caching (keys.CachingProvider). Metrics, tracing and
// logging are pluggable through the Recorder, Tracer and Logger interfaces;
// adapters for Prometheus, OpenTelemetry, logrus, zap and zerolog ship with
// this package.
package jwtverify
