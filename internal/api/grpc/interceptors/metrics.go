package interceptors

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// RequestObserver records the outcome of one unary call.
type RequestObserver interface {
	ObserveRequest(method, code string, elapsed time.Duration)
}

// MetricsInterceptor reports every unary call's status code and latency.
func MetricsInterceptor(observer RequestObserver) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if observer == nil {
			return handler(ctx, req)
		}
		start := time.Now()
		resp, err := handler(ctx, req)
		observer.ObserveRequest(info.FullMethod, status.Code(err).String(), time.Since(start))
		return resp, err
	}
}
