// Package keys supplies verification key material to the verifier: parsing
// PEM-encoded public keys, fetching JWKS documents from an issuer or a
// direct URL, and caching fetched key sets.
//
// Every provider yields a ready verifier.KeySet and implements the
// jwtverify.KeySetProvider interface, so it plugs straight into the
// middleware:
//
//	provider, err := keys.NewProvider(keys.WithIssuer("https://issuer.example.com"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mw, err := jwtverify.New(
//		jwtverify.WithKeySetProvider(keys.NewCachingProvider(provider)),
//	)
//
// Failures in this package are infrastructure errors (missing files,
// unreachable endpoints, malformed key documents), reported as plain wrapped
// errors. They never belong to the verifier's decoding taxonomy.
package keys
