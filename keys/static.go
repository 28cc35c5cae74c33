package keys

import (
	"context"

	"github.com/hyalite/jwtverify/verifier"
)

// Static wraps a fixed key set in the provider interface, for wiring where a
// provider is expected but the keys never change.
type Static verifier.KeySet

// KeySet returns the wrapped key set. It never fails.
func (s Static) KeySet(context.Context) (verifier.KeySet, error) {
	return verifier.KeySet(s), nil
}
