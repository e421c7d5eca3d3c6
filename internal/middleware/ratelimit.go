package middleware

import (
	"context"
	"errors"
	"net"

	"connectrpc.com/connect"

	"github.com/mmynk/saladbowl/internal/ratelimit"
)

// ErrRateLimited is returned when a client exceeds its request budget.
var ErrRateLimited = errors.New("too many requests, try again later")

// RateLimitInterceptor limits calls per client host.
func RateLimitInterceptor(limiter *ratelimit.KeyedRateLimiter) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if !limiter.Allow(clientKey(req.Peer().Addr)) {
				return nil, connect.NewError(connect.CodeResourceExhausted, ErrRateLimited)
			}
			return next(ctx, req)
		}
	}
}

func clientKey(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
