package keys

import (
	"crypto"
	"fmt"
	"os"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

// ParsePublicKeyPEM parses a PEM-encoded public key (or certificate) into
// the crypto.PublicKey a verifier.KeySet takes.
func ParsePublicKeyPEM(data []byte) (crypto.PublicKey, error) {
	key, err := jwk.ParseKey(data, jwk.WithPEM(true))
	if err != nil {
		return nil, fmt.Errorf("parsing PEM public key: %w", err)
	}

	var raw any
	if err := key.Raw(&raw); err != nil {
		return nil, fmt.Errorf("materializing public key: %w", err)
	}
	return raw, nil
}

// LoadPublicKeyFile reads and parses a PEM-encoded public key from path.
func LoadPublicKeyFile(path string) (crypto.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading public key file: %w", err)
	}
	return ParsePublicKeyPEM(data)
}
