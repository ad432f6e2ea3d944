package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RequestRecorder receives per-request metrics. The InfluxDB manager
// satisfies it; it is nil when metrics are disabled.
type RequestRecorder interface {
	WriteRequestPoint(ctx context.Context, route string, status int, elapsed time.Duration) error
}

func newStructuredLogger(logger *slog.Logger, metrics RequestRecorder, meter metric.Meter) func(next http.Handler) http.Handler {
	var counter metric.Int64Counter
	if meter != nil {
		counter, _ = meter.Int64Counter("http.server.requests")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				elapsed := time.Since(start)
				logger.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration_ms", elapsed.Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)

				if counter != nil {
					counter.Add(r.Context(), 1,
						metric.WithAttributes(
							attribute.String("method", r.Method),
							attribute.Int("status", ww.Status()),
						),
					)
				}

				if metrics != nil {
					// Detached context: the request context is done once
					// the handler returns.
					if err := metrics.WriteRequestPoint(context.Background(), r.URL.Path, ww.Status(), elapsed); err != nil {
						logger.Warn("Failed to record request metrics", "error", err)
					}
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
