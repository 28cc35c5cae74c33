package verifier

import "crypto"

// KeySet is the verification key material for a decode call: at most one
// HMAC secret and at most one asymmetric public key. It is a value type;
// the With methods return modified copies and never touch the receiver, so
// a KeySet built at startup can be shared by any number of goroutines.
type KeySet struct {
	hmacSecret []byte
	publicKey  crypto.PublicKey
}

// NewKeySet returns a key set with no keys configured. Verifying any token
// other than an unsecured one against it fails with NoKeyConfiguredError.
func NewKeySet() KeySet {
	return KeySet{}
}

// WithHMACSecret returns a copy of the key set that verifies the HMAC family
// with secret. The bytes are copied, so the caller may reuse or zero its
// slice afterwards. A nil secret clears the HMAC key.
func (ks KeySet) WithHMACSecret(secret []byte) KeySet {
	if secret == nil {
		ks.hmacSecret = nil
		return ks
	}
	dup := make([]byte, len(secret))
	copy(dup, secret)
	ks.hmacSecret = dup
	return ks
}

// WithPublicKey returns a copy of the key set that verifies asymmetric
// families with key. A nil key clears the public key.
func (ks KeySet) WithPublicKey(key crypto.PublicKey) KeySet {
	ks.publicKey = key
	return ks
}

func (ks KeySet) hmac() ([]byte, bool) {
	return ks.hmacSecret, ks.hmacSecret != nil
}

func (ks KeySet) public() (crypto.PublicKey, bool) {
	return ks.publicKey, ks.publicKey != nil
}
