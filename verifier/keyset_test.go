package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeySet(t *testing.T) {
	t.Run("it starts with no keys configured", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeAndVerify[map[string]any](exampleToken, NewKeySet())

		assert.ErrorIs(t, err, ErrNoKeyConfigured)
	})

	t.Run("it defensively copies the HMAC secret", func(t *testing.T) {
		t.Parallel()

		secret := []byte(exampleSecret)
		keys := NewKeySet().WithHMACSecret(secret)
		secret[0] = 'X'

		_, err := DecodeAndVerify[map[string]any](exampleToken, keys)

		require.NoError(t, err)
	})

	t.Run("it never mutates the receiver", func(t *testing.T) {
		t.Parallel()

		empty := NewKeySet()
		populated := empty.WithHMACSecret([]byte(exampleSecret))

		_, emptyErr := DecodeAndVerify[map[string]any](exampleToken, empty)
		_, populatedErr := DecodeAndVerify[map[string]any](exampleToken, populated)

		assert.ErrorIs(t, emptyErr, ErrNoKeyConfigured)
		assert.NoError(t, populatedErr)
	})

	t.Run("it clears the HMAC secret when given nil", func(t *testing.T) {
		t.Parallel()

		keys := NewKeySet().WithHMACSecret([]byte(exampleSecret)).WithHMACSecret(nil)

		_, err := DecodeAndVerify[map[string]any](exampleToken, keys)

		assert.ErrorIs(t, err, ErrNoKeyConfigured)
	})

	t.Run("it treats an explicit empty secret as configured", func(t *testing.T) {
		t.Parallel()

		keys := NewKeySet().WithHMACSecret([]byte{})
		token := hmacToken(t, HS256, `{"alg":"HS256"}`, `{"sub":"empty-secret"}`, []byte{})

		payload, err := DecodeAndVerify[map[string]any](token, keys)

		require.NoError(t, err)
		assert.Equal(t, "empty-secret", payload["sub"])
	})
}
