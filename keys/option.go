package keys

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/hyalite/jwtverify"
)

// Sentinel errors for provider configuration validation.
var (
	ErrEndpointUnset = errors.New("one of WithIssuer or WithJWKSURL is required")
	ErrHTTPClientNil = errors.New("http client cannot be nil")
	ErrLoggerNil     = errors.New("logger cannot be nil")
)

// ProviderOption configures a Provider.
// Options return errors to enable validation during construction.
type ProviderOption func(*Provider) error

// WithIssuer sets the issuer whose discovery document names the JWKS
// endpoint.
func WithIssuer(issuer string) ProviderOption {
	return func(p *Provider) error {
		if _, err := url.ParseRequestURI(issuer); err != nil {
			return err
		}
		p.issuer = issuer
		return nil
	}
}

// WithJWKSURL sets the JWKS endpoint directly, skipping discovery.
func WithJWKSURL(jwksURL string) ProviderOption {
	return func(p *Provider) error {
		if _, err := url.ParseRequestURI(jwksURL); err != nil {
			return err
		}
		p.jwksURL = jwksURL
		return nil
	}
}

// WithKeyID restricts key selection to the key with this key ID. By default
// the first usable RSA signing key wins.
func WithKeyID(keyID string) ProviderOption {
	return func(p *Provider) error {
		p.keyID = keyID
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for discovery and JWKS fetches.
//
// Default: a client with a 30 second timeout.
func WithHTTPClient(client *http.Client) ProviderOption {
	return func(p *Provider) error {
		if client == nil {
			return ErrHTTPClientNil
		}
		p.client = client
		return nil
	}
}

// WithLogger sets the logger the provider reports fetches through.
//
// Default: jwtverify.NoopLogger.
func WithLogger(logger jwtverify.Logger) ProviderOption {
	return func(p *Provider) error {
		if logger == nil {
			return ErrLoggerNil
		}
		p.logger = logger
		return nil
	}
}

// CachingOption configures a CachingProvider.
type CachingOption func(*CachingProvider)

// WithCacheTTL sets how long a fetched key set is served before the inner
// provider is asked again.
//
// Default: one minute.
func WithCacheTTL(ttl time.Duration) CachingOption {
	return func(c *CachingProvider) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}
