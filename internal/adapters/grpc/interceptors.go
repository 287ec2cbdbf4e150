package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/andrescamacho/craftsolver-go/internal/application/common"
)

// RateLimitInterceptor waits for a token before each call. Calls whose
// context ends first fail with ResourceExhausted.
func RateLimitInterceptor(limiter *rate.Limiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if err := limiter.Wait(ctx); err != nil {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit: %v", err)
		}
		return handler(ctx, req)
	}
}

// LoggingInterceptor tags each call with a request ID, puts a logger carrying
// it into the context and logs the outcome.
func LoggingInterceptor(base *common.StdLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		logger := base.With(map[string]interface{}{
			"request_id": uuid.NewString(),
			"method":     info.FullMethod,
		})
		ctx = common.WithLogger(ctx, logger)

		start := time.Now()
		resp, err := handler(ctx, req)

		fields := map[string]interface{}{
			"code":     status.Code(err).String(),
			"duration": time.Since(start).String(),
		}
		switch status.Code(err) {
		case codes.OK:
			logger.Log("DEBUG", "request handled", fields)
		case codes.Internal, codes.Unknown:
			fields["error"] = err.Error()
			logger.Log("ERROR", "request failed", fields)
		default:
			fields["error"] = err.Error()
			logger.Log("WARN", "request rejected", fields)
		}
		return resp, err
	}
}
