package verifier

import (
	"crypto/hmac"
	"crypto/rsa"
)

// verifySignature checks the signature segment against the text that was
// signed, dispatching on the algorithm's family. The algorithm is already
// known to be recognized; unrecognized names never get past header decoding.
//
// The signed text is the encoded header and payload joined by a dot, exactly
// as they appeared on the wire. Signing covers the base64url text, not the
// decoded bytes.
func verifySignature(alg Algorithm, keys KeySet, signedText, signatureB64 string) error {
	info := algorithms[alg]

	switch info.family {
	case familyNone:
		// Unsecured tokens verify unconditionally. Callers that must not
		// accept them reject the algorithm via WithAllowedAlgorithms.
		return nil

	case familyHMAC:
		secret, ok := keys.hmac()
		if !ok {
			return &NoKeyConfiguredError{Algorithm: alg}
		}
		signature, err := decodeSegment(signatureB64)
		if err != nil {
			return ErrIncorrectSignature
		}
		mac := hmac.New(info.hash.New, secret)
		mac.Write([]byte(signedText))
		// hmac.Equal is constant time. Comparison cost must not depend on
		// where the first mismatching byte sits.
		if !hmac.Equal(signature, mac.Sum(nil)) {
			return ErrIncorrectSignature
		}
		return nil

	case familyRSA:
		key, ok := keys.public()
		if !ok {
			return &NoKeyConfiguredError{Algorithm: alg}
		}
		rsaKey, ok := key.(*rsa.PublicKey)
		if !ok {
			// A key of the wrong type counts as absent for this family.
			return &NoKeyConfiguredError{Algorithm: alg}
		}
		signature, err := decodeSegment(signatureB64)
		if err != nil {
			return ErrIncorrectSignature
		}
		hasher := info.hash.New()
		hasher.Write([]byte(signedText))
		digest := hasher.Sum(nil)
		if info.pss {
			err = rsa.VerifyPSS(rsaKey, info.hash, digest, signature, nil)
		} else {
			err = rsa.VerifyPKCS1v15(rsaKey, info.hash, digest, signature)
		}
		if err != nil {
			return ErrIncorrectSignature
		}
		return nil

	default:
		// ECDSA is declared but not implemented. Fail closed exactly as if
		// no key were configured, even when one is.
		return &NoKeyConfiguredError{Algorithm: alg}
	}
}
