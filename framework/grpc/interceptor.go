// Package grpcverify adapts token verification to gRPC server interceptors.
// The token travels in the "authorization" metadata entry with the Bearer
// scheme; failures become codes.Unauthenticated status errors.
package grpcverify

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/hyalite/jwtverify"
)

// Interceptor verifies the token on incoming gRPC calls before the service
// method runs. Construct it with New.
type Interceptor struct {
	verify              jwtverify.VerifyToken
	credentialsOptional bool
	skipMethods         map[string]bool
	logger              jwtverify.Logger
}

// Option configures the Interceptor.
type Option func(*Interceptor)

// WithCredentialsOptional lets calls without a token through, with no
// payload in the context. Calls that do carry a token are still verified.
func WithCredentialsOptional(value bool) Option {
	return func(i *Interceptor) {
		i.credentialsOptional = value
	}
}

// WithSkipMethods disables verification for the given full method names,
// e.g. "/grpc.health.v1.Health/Check".
func WithSkipMethods(methods ...string) Option {
	return func(i *Interceptor) {
		i.skipMethods = make(map[string]bool, len(methods))
		for _, method := range methods {
			i.skipMethods[method] = true
		}
	}
}

// WithLogger sets the logger. Default: jwtverify.NoopLogger.
func WithLogger(logger jwtverify.Logger) Option {
	return func(i *Interceptor) {
		i.logger = logger
	}
}

// New builds an Interceptor around a verification function, typically
// verifier.Func or the function a key provider yields.
func New(verify jwtverify.VerifyToken, opts ...Option) *Interceptor {
	i := &Interceptor{
		verify: verify,
		logger: jwtverify.NoopLogger{},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// tokenFromMetadata reads the bearer token from the authorization metadata.
// Absence yields an empty token, not an error, mirroring the HTTP
// extractors.
func tokenFromMetadata(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", nil
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return "", nil
	}

	parts := strings.Fields(values[0])
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", status.Error(codes.Unauthenticated, "authorization metadata format must be Bearer {token}")
	}
	return parts[1], nil
}

// authenticate runs extraction and verification, returning the context the
// service method should see.
func (i *Interceptor) authenticate(ctx context.Context, method string) (context.Context, error) {
	if i.skipMethods[method] {
		i.logger.Debugf("skipping token check for method %s", method)
		return ctx, nil
	}

	token, err := tokenFromMetadata(ctx)
	if err != nil {
		return nil, err
	}

	if token == "" {
		if i.credentialsOptional {
			return ctx, nil
		}
		return nil, status.Error(codes.Unauthenticated, "token missing")
	}

	payload, err := i.verify(ctx, token)
	if err != nil {
		i.logger.Warnf("token failed verification on %s: %v", method, err)
		return nil, status.Error(codes.Unauthenticated, "token invalid")
	}

	return jwtverify.SetPayload(ctx, payload), nil
}

// UnaryServerInterceptor returns the unary server interceptor.
func (i *Interceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, err := i.authenticate(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamServerInterceptor returns the stream server interceptor.
func (i *Interceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, err := i.authenticate(ss.Context(), info.FullMethod)
		if err != nil {
			return err
		}
		return handler(srv, &payloadStream{ServerStream: ss, ctx: ctx})
	}
}

// payloadStream overrides the stream context so service methods see the
// verified payload.
type payloadStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *payloadStream) Context() context.Context {
	return s.ctx
}
