package verifier

import "crypto"

// Algorithm is the signing algorithm a token declares in its header.
type Algorithm string

const (
	HS256 = Algorithm("HS256") // HMAC using SHA-256
	HS384 = Algorithm("HS384") // HMAC using SHA-384
	HS512 = Algorithm("HS512") // HMAC using SHA-512
	RS256 = Algorithm("RS256") // RSASSA-PKCS-v1.5 using SHA-256
	RS384 = Algorithm("RS384") // RSASSA-PKCS-v1.5 using SHA-384
	RS512 = Algorithm("RS512") // RSASSA-PKCS-v1.5 using SHA-512
	PS256 = Algorithm("PS256") // RSASSA-PSS using SHA-256 and MGF1-SHA-256
	PS384 = Algorithm("PS384") // RSASSA-PSS using SHA-384 and MGF1-SHA-384
	PS512 = Algorithm("PS512") // RSASSA-PSS using SHA-512 and MGF1-SHA-512
	ES256 = Algorithm("ES256") // ECDSA using P-256 and SHA-256, declared but not implemented
	ES384 = Algorithm("ES384") // ECDSA using P-384 and SHA-384, declared but not implemented
	ES512 = Algorithm("ES512") // ECDSA using P-521 and SHA-512, declared but not implemented
	None  = Algorithm("none")  // Unsecured, signature segment ignored
)

type algorithmFamily int

const (
	familyHMAC algorithmFamily = iota
	familyRSA
	familyECDSA
	familyNone
)

type algorithmInfo struct {
	family algorithmFamily
	hash   crypto.Hash
	pss    bool
}

// algorithms is the closed registry of recognized algorithms. The verifier
// dispatches on family; hash names the native primitive. HS512 is HMAC
// family, whatever older code may have filed it under.
var algorithms = map[Algorithm]algorithmInfo{
	HS256: {family: familyHMAC, hash: crypto.SHA256},
	HS384: {family: familyHMAC, hash: crypto.SHA384},
	HS512: {family: familyHMAC, hash: crypto.SHA512},
	RS256: {family: familyRSA, hash: crypto.SHA256},
	RS384: {family: familyRSA, hash: crypto.SHA384},
	RS512: {family: familyRSA, hash: crypto.SHA512},
	PS256: {family: familyRSA, hash: crypto.SHA256, pss: true},
	PS384: {family: familyRSA, hash: crypto.SHA384, pss: true},
	PS512: {family: familyRSA, hash: crypto.SHA512, pss: true},
	ES256: {family: familyECDSA, hash: crypto.SHA256},
	ES384: {family: familyECDSA, hash: crypto.SHA384},
	ES512: {family: familyECDSA, hash: crypto.SHA512},
	None:  {family: familyNone},
}

// Recognized reports whether a names an algorithm this package knows about,
// implemented or not.
func (a Algorithm) Recognized() bool {
	_, ok := algorithms[a]
	return ok
}

func (a Algorithm) String() string {
	return string(a)
}
