package obs

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Time logs the duration of an operation and records it in the
// operation histogram. Use as
//
//	defer obs.Time(ctx, "op")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := middleware.GetReqID(ctx)

	return func(errp *error) {
		dur := time.Since(start)
		fields := []zap.Field{
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Int64("dur_ms", dur.Milliseconds()),
		}

		if errp != nil && *errp != nil {
			operationDuration.WithLabelValues(name, "error").Observe(dur.Seconds())
			zap.L().Warn("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		operationDuration.WithLabelValues(name, "ok").Observe(dur.Seconds())
		zap.L().Debug("operation done", fields...)
	}
}
