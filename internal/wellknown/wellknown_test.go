package wellknown

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWKSURI(t *testing.T) {
	t.Run("it reads the jwks_uri from the discovery document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/.well-known/openid-configuration", r.URL.Path)
			_, _ = w.Write([]byte(`{"issuer":"x","jwks_uri":"https://issuer.example.com/keys"}`))
		}))
		defer server.Close()

		uri, err := JWKSURI(context.Background(), server.Client(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "https://issuer.example.com/keys", uri)
	})

	t.Run("it tolerates a trailing slash on the issuer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/.well-known/openid-configuration", r.URL.Path)
			_, _ = w.Write([]byte(`{"jwks_uri":"https://issuer.example.com/keys"}`))
		}))
		defer server.Close()

		_, err := JWKSURI(context.Background(), server.Client(), server.URL+"/")
		assert.NoError(t, err)
	})

	t.Run("it rejects a non-200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := JWKSURI(context.Background(), server.Client(), server.URL)
		assert.ErrorContains(t, err, "status 404")
	})

	t.Run("it rejects a document without a jwks_uri", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"issuer":"x"}`))
		}))
		defer server.Close()

		_, err := JWKSURI(context.Background(), server.Client(), server.URL)
		assert.ErrorContains(t, err, "no jwks_uri")
	})

	t.Run("it rejects a malformed document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{`))
		}))
		defer server.Close()

		_, err := JWKSURI(context.Background(), server.Client(), server.URL)
		assert.ErrorContains(t, err, "parsing discovery document")
	})
}
