package verifier

import (
	"errors"
	"fmt"
)

type decodeConfig struct {
	allowed        map[Algorithm]bool
	maxTokenLength int
}

// DecodeOption customizes a single decode call.
// Options return errors to enable validation during construction.
type DecodeOption func(*decodeConfig) error

// WithAllowedAlgorithms restricts which algorithms a token may declare.
// Tokens declaring anything else fail with an InvalidHeaderError, including
// "none". By default every recognized algorithm is allowed; this option is
// the caller-side allow-list that production deployments should set.
func WithAllowedAlgorithms(algs ...Algorithm) DecodeOption {
	return func(c *decodeConfig) error {
		if len(algs) == 0 {
			return errors.New("at least one allowed algorithm is required")
		}
		allowed := make(map[Algorithm]bool, len(algs))
		for _, alg := range algs {
			if !alg.Recognized() {
				return fmt.Errorf("unrecognized algorithm in allow-list: %q", alg)
			}
			allowed[alg] = true
		}
		c.allowed = allowed
		return nil
	}
}

// WithMaxTokenLength rejects tokens longer than n bytes before any decoding
// happens, as ErrInvalidTokenFormat. By default there is no limit.
func WithMaxTokenLength(n int) DecodeOption {
	return func(c *decodeConfig) error {
		if n <= 0 {
			return errors.New("maximum token length must be positive")
		}
		c.maxTokenLength = n
		return nil
	}
}
