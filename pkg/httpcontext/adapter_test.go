package httpcontext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/tasklist/pkg/logger"
)

func TestAttachPropagatesRequestID(t *testing.T) {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.Set(HeaderRequestID, "abc-123")
	ctx.Request.Header.SetUserAgent("curl/8")

	stdCtx, cancel := NewAdapter(time.Second).Attach(&ctx)
	defer cancel()

	assert.Equal(t, "abc-123", appLogger.RequestID(stdCtx))
	assert.Equal(t, "curl/8", stdCtx.Value(KeyUserAgent))
	assert.Equal(t, "abc-123", string(ctx.Response.Header.Peek(HeaderRequestID)))

	deadline, ok := stdCtx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
}

func TestRequestIDGeneratedOnce(t *testing.T) {
	var ctx fasthttp.RequestCtx

	first := RequestID(&ctx)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, RequestID(&ctx))
	assert.Equal(t, first, string(ctx.Response.Header.Peek(HeaderRequestID)))
}
