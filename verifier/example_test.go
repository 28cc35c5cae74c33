package verifier_test

import (
	"errors"
	"fmt"

	"github.com/hyalite/jwtverify/verifier"
)

func ExampleDecodeAndVerify() {
	token := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiYWRtaW4iOnRydWV9." +
		"TJVA95OrM7E2cBab30RMHrHDcEfxjoYZgeFONFh7HgQ"

	type claims struct {
		Subject string `json:"sub"`
		Name    string `json:"name"`
		Admin   bool   `json:"admin"`
	}

	keys := verifier.NewKeySet().WithHMACSecret([]byte("secret"))
	payload, err := verifier.DecodeAndVerify[claims](token, keys)
	if err != nil {
		fmt.Println("rejected:", err)
		return
	}

	fmt.Printf("%s (admin: %v)\n", payload.Name, payload.Admin)
	// Output: John Doe (admin: true)
}

func ExampleDecodeAndVerify_errorHandling() {
	token := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiYWRtaW4iOnRydWV9." +
		"TJVA95OrM7E2cBab30RMHrHDcEfxjoYZgeFONFh7HgQ"

	_, err := verifier.DecodeAndVerify[map[string]any](token, verifier.NewKeySet())

	switch {
	case errors.Is(err, verifier.ErrNoKeyConfigured):
		fmt.Println("configure a key for this algorithm")
	case errors.Is(err, verifier.ErrIncorrectSignature):
		fmt.Println("token was tampered with")
	case err != nil:
		fmt.Println("malformed token")
	}
	// Output: configure a key for this algorithm
}
