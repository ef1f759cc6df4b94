package middleware

import (
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests with 429 once the shared token bucket is empty.
// rps <= 0 disables limiting.
func RateLimit(rps float64, burst int) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if rps <= 0 {
		return func(next fasthttp.RequestHandler) fasthttp.RequestHandler { return next }
	}
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			if !limiter.Allow() {
				ctx.Response.Header.SetContentType("application/json; charset=utf-8")
				ctx.SetStatusCode(fasthttp.StatusTooManyRequests)
				ctx.SetBodyString(`{"error":"too many requests"}`)
				return
			}
			next(ctx)
		}
	}
}
