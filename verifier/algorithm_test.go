package verifier

import (
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithm_Recognized(t *testing.T) {
	recognized := []Algorithm{
		HS256, HS384, HS512,
		RS256, RS384, RS512,
		PS256, PS384, PS512,
		ES256, ES384, ES512,
		None,
	}
	for _, alg := range recognized {
		assert.Truef(t, alg.Recognized(), "%s should be recognized", alg)
	}

	for _, alg := range []Algorithm{"", "HS1024", "hs256", "NONE", "RSA"} {
		assert.Falsef(t, alg.Recognized(), "%q should not be recognized", alg)
	}
}

func TestAlgorithm_HS512IsHMACFamily(t *testing.T) {
	secret := []byte("an hmac secret for hs512")
	token := hmacToken(t, HS512, `{"alg":"HS512"}`, `{"sub":"hs512"}`, secret)

	t.Run("it verifies HS512 with the HMAC secret", func(t *testing.T) {
		t.Parallel()

		payload, err := DecodeAndVerify[map[string]any](token, NewKeySet().WithHMACSecret(secret))

		require.NoError(t, err)
		assert.Equal(t, "hs512", payload["sub"])
	})

	t.Run("it demands an HMAC secret for HS512, not a public key", func(t *testing.T) {
		t.Parallel()

		keys := NewKeySet().WithPublicKey(&rsa.PublicKey{})

		_, err := DecodeAndVerify[map[string]any](token, keys)

		var noKey *NoKeyConfiguredError
		require.ErrorAs(t, err, &noKey)
		assert.Equal(t, HS512, noKey.Algorithm)
	})
}
