package middleware

import (
	"time"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/tasklist/internal/metrics"
	"github.com/fastygo/tasklist/pkg/httpcontext"
)

// Access assigns the request id, then logs and measures every request once it is served.
// Unmatched paths are reported under the "unmatched" route to keep label cardinality bounded.
func Access(logger *zap.Logger, m *metrics.Metrics) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()
			reqID := httpcontext.RequestID(ctx)

			next(ctx)

			route, _ := ctx.UserValue(router.MatchedRoutePathParam).(string)
			if route == "" {
				route = "unmatched"
			}
			method := string(ctx.Method())
			status := ctx.Response.StatusCode()
			latency := time.Since(start)

			m.ObserveRequest(method, route, status, latency.Seconds())

			fields := []zap.Field{
				zap.String("request_id", reqID),
				zap.String("method", method),
				zap.ByteString("path", ctx.Path()),
				zap.String("route", route),
				zap.Int("status", status),
				zap.Duration("latency", latency),
			}
			if status >= fasthttp.StatusInternalServerError {
				logger.Warn("request completed", fields...)
				return
			}
			logger.Info("request completed", fields...)
		}
	}
}
