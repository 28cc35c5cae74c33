// Command jwtverify decodes and verifies compact-serialized signed tokens
// from the command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hyalite/jwtverify/verifier"
)

// Exit codes mirror the decoding error taxonomy, so scripts can branch on
// the failure kind without parsing stderr.
const (
	exitUsage        = 1
	exitBadFormat    = 2
	exitBadHeader    = 3
	exitBadPayload   = 4
	exitNoKey        = 5
	exitBadSignature = 6
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jwtverify:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, verifier.ErrInvalidTokenFormat):
		return exitBadFormat
	case errors.Is(err, verifier.ErrInvalidHeader):
		return exitBadHeader
	case errors.Is(err, verifier.ErrInvalidPayload):
		return exitBadPayload
	case errors.Is(err, verifier.ErrNoKeyConfigured):
		return exitNoKey
	case errors.Is(err, verifier.ErrIncorrectSignature):
		return exitBadSignature
	default:
		return exitUsage
	}
}
