// Package wellknown resolves an issuer's JWKS endpoint through its OIDC
// discovery document.
package wellknown

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

// Discovery documents are small; anything past this is not one.
const maxDocumentSize = 1 << 20

type discoveryDocument struct {
	JWKSURI string `json:"jwks_uri"`
}

// JWKSURI fetches <issuer>/.well-known/openid-configuration and returns the
// jwks_uri it advertises.
func JWKSURI(ctx context.Context, client *http.Client, issuer string) (string, error) {
	endpoint := strings.TrimSuffix(issuer, "/") + "/.well-known/openid-configuration"

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building discovery request: %w", err)
	}

	response, err := client.Do(request)
	if err != nil {
		return "", fmt.Errorf("fetching discovery document: %w", err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("discovery document request returned status %d", response.StatusCode)
	}

	var document discoveryDocument
	if err := json.NewDecoder(io.LimitReader(response.Body, maxDocumentSize)).Decode(&document); err != nil {
		return "", fmt.Errorf("parsing discovery document: %w", err)
	}

	if document.JWKSURI == "" {
		return "", fmt.Errorf("discovery document at %s has no jwks_uri", endpoint)
	}
	if _, err := url.ParseRequestURI(document.JWKSURI); err != nil {
		return "", fmt.Errorf("discovery document advertises invalid jwks_uri: %w", err)
	}

	return document.JWKSURI, nil
}
