package jwtverify

import (
	"context"
	"errors"
	"fmt"
)

// contextKey is unexported so only this package can create payload keys,
// ruling out collisions with other packages' context values.
type contextKey int

const payloadKey contextKey = iota

// ErrNoPayload is returned by GetPayload when the context holds no verified
// payload, typically because the middleware did not run for this request.
var ErrNoPayload = errors.New("no verified payload in context")

// GetPayload retrieves the verified payload from the context, asserted to T.
// T must match the type the verification function produced; with WithKeySet
// that is map[string]any.
func GetPayload[T any](ctx context.Context) (T, error) {
	var zero T

	value := ctx.Value(payloadKey)
	if value == nil {
		return zero, ErrNoPayload
	}

	payload, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("payload in context is %T, not %T", value, zero)
	}
	return payload, nil
}

// MustGetPayload is GetPayload for handlers that know the middleware ran.
// It panics when the payload is missing or of the wrong type.
func MustGetPayload[T any](ctx context.Context) T {
	payload, err := GetPayload[T](ctx)
	if err != nil {
		panic(err)
	}
	return payload
}

// SetPayload stores a verified payload in the context. The middleware calls
// this after successful verification; framework adapters may call it when
// bridging to their own context types.
func SetPayload(ctx context.Context, payload any) context.Context {
	return context.WithValue(ctx, payloadKey, payload)
}

// HasPayload reports whether the context carries a verified payload.
func HasPayload(ctx context.Context) bool {
	return ctx.Value(payloadKey) != nil
}
