package jwtverify

import (
	"errors"
	"net/http"
	"strings"
)

// TokenExtractor pulls a token out of a request. It returns the empty string
// when no token is present; an error means a token was offered but in a shape
// the extractor could not use. Absence is not an error.
type TokenExtractor func(r *http.Request) (string, error)

// AuthHeaderTokenExtractor reads the token from the Authorization header,
// expecting the Bearer scheme. The scheme match is case-insensitive.
func AuthHeaderTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", nil
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("authorization header format must be Bearer {token}")
	}

	return parts[1], nil
}

// CookieTokenExtractor builds a TokenExtractor reading the token from the
// named cookie. A missing cookie means no token, not an error.
func CookieTokenExtractor(name string) TokenExtractor {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(name)
		if errors.Is(err, http.ErrNoCookie) {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		return cookie.Value, nil
	}
}

// ParameterTokenExtractor builds a TokenExtractor reading the token from the
// named query string parameter.
func ParameterTokenExtractor(param string) TokenExtractor {
	return func(r *http.Request) (string, error) {
		return r.URL.Query().Get(param), nil
	}
}

// MultiTokenExtractor tries each extractor in order and returns the first
// non-empty token. An extractor error stops the chain immediately.
func MultiTokenExtractor(extractors ...TokenExtractor) TokenExtractor {
	return func(r *http.Request) (string, error) {
		for _, extract := range extractors {
			token, err := extract(r)
			if err != nil {
				return "", err
			}
			if token != "" {
				return token, nil
			}
		}
		return "", nil
	}
}
