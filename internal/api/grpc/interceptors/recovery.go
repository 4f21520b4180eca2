// Package interceptors holds the unary server interceptors applied to every
// ritual RPC.
package interceptors

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	grpcmeta "github.com/withmystar/ritual/internal/api/grpc/metadata"
	apperrors "github.com/withmystar/ritual/internal/platform/errors"
	"github.com/withmystar/ritual/internal/platform/logging"
	"google.golang.org/grpc"
)

// RecoveryInterceptor converts handler panics into Internal statuses so one
// faulty call cannot take the server down.
func RecoveryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	logger = logging.OrDiscard(logger)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			logger.ErrorContext(ctx, "recovered handler panic",
				"method", info.FullMethod,
				"request_id", grpcmeta.RequestIDFromContext(ctx),
				"panic", fmt.Sprint(recovered),
				"stack", string(debug.Stack()),
			)
			domainErr := apperrors.Wrap(apperrors.CodeInternal, fmt.Sprintf("%s panicked", info.FullMethod), fmt.Errorf("panic: %v", recovered))
			resp = nil
			err = domainErr.GRPCStatus(apperrors.LocaleFromContext(ctx))
		}()
		return handler(ctx, req)
	}
}
