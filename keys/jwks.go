package keys

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/hyalite/jwtverify"
	"github.com/hyalite/jwtverify/internal/wellknown"
	"github.com/hyalite/jwtverify/verifier"
)

// Provider fetches a JWKS document and turns it into a verifier.KeySet. The
// JWKS endpoint comes either from a direct URL (WithJWKSURL) or from the
// issuer's OIDC discovery document (WithIssuer).
//
// Every call to KeySet fetches the document again. Wrap the provider in a
// CachingProvider unless refetching per verification is what you want.
type Provider struct {
	issuer  string
	jwksURL string
	keyID   string
	client  *http.Client
	logger  jwtverify.Logger
}

// NewProvider builds a Provider. One of WithIssuer or WithJWKSURL is
// required.
func NewProvider(opts ...ProviderOption) (*Provider, error) {
	p := &Provider{
		client: &http.Client{Timeout: 30 * time.Second},
		logger: jwtverify.NoopLogger{},
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if p.issuer == "" && p.jwksURL == "" {
		return nil, ErrEndpointUnset
	}

	return p, nil
}

// KeySet fetches the JWKS document and returns a key set holding its first
// usable RSA public key (the key matching WithKeyID when one was given).
func (p *Provider) KeySet(ctx context.Context) (verifier.KeySet, error) {
	jwksURL := p.jwksURL
	if jwksURL == "" {
		discovered, err := wellknown.JWKSURI(ctx, p.client, p.issuer)
		if err != nil {
			return verifier.KeySet{}, fmt.Errorf("discovering JWKS endpoint for %s: %w", p.issuer, err)
		}
		jwksURL = discovered
	}

	p.logger.Debugf("fetching JWKS document from %s", jwksURL)
	set, err := jwk.Fetch(ctx, jwksURL, jwk.WithHTTPClient(p.client))
	if err != nil {
		return verifier.KeySet{}, fmt.Errorf("fetching JWKS document: %w", err)
	}

	key, err := p.selectKey(set)
	if err != nil {
		return verifier.KeySet{}, err
	}

	var raw any
	if err := key.Raw(&raw); err != nil {
		return verifier.KeySet{}, fmt.Errorf("materializing JWKS key %q: %w", key.KeyID(), err)
	}

	return verifier.NewKeySet().WithPublicKey(raw), nil
}

func (p *Provider) selectKey(set jwk.Set) (jwk.Key, error) {
	for i := 0; i < set.Len(); i++ {
		key, ok := set.Key(i)
		if !ok {
			continue
		}
		if key.KeyType() != jwa.RSA {
			continue
		}
		if usage := key.KeyUsage(); usage != "" && usage != string(jwk.ForSignature) {
			continue
		}
		if p.keyID != "" && key.KeyID() != p.keyID {
			continue
		}
		return key, nil
	}

	if p.keyID != "" {
		return nil, fmt.Errorf("JWKS document has no RSA signing key with key ID %q", p.keyID)
	}
	return nil, fmt.Errorf("JWKS document has no RSA signing key")
}

// CachingProvider caches the key set another provider yields for a TTL,
// refetching at most once per expiry. When a refresh fails and a previously
// fetched set exists, the stale set is served instead of the error, so a
// transient JWKS outage does not fail every verification.
type CachingProvider struct {
	inner jwtverify.KeySetProvider
	ttl   time.Duration

	mu        sync.Mutex
	cached    verifier.KeySet
	fetchedAt time.Time
	haveSet   bool
}

// NewCachingProvider wraps inner with a cache. The default TTL is one
// minute; change it with WithCacheTTL.
func NewCachingProvider(inner jwtverify.KeySetProvider, opts ...CachingOption) *CachingProvider {
	c := &CachingProvider{
		inner: inner,
		ttl:   time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// KeySet returns the cached key set, refreshing it from the inner provider
// when the TTL has passed. Concurrent callers during a refresh wait for the
// single in-flight fetch.
func (c *CachingProvider) KeySet(ctx context.Context) (verifier.KeySet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.haveSet && time.Since(c.fetchedAt) < c.ttl {
		return c.cached, nil
	}

	fresh, err := c.inner.KeySet(ctx)
	if err != nil {
		if c.haveSet {
			// Serve stale rather than fail the verification path.
			return c.cached, nil
		}
		return verifier.KeySet{}, err
	}

	c.cached = fresh
	c.fetchedAt = time.Now()
	c.haveSet = true
	return c.cached, nil
}
