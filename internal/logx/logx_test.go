package logx_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/unshakn-backend/internal/logx"
)

func TestNew(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer
	l, err := logx.New(&buf, "debug", "json")
	rq.NoError(err)
	l.Debug("hello", slog.String(logx.FieldRoute, "/x"))
	rq.Contains(buf.String(), `"route":"/x"`)

	buf.Reset()
	l, err = logx.New(&buf, "warn", "text")
	rq.NoError(err)
	l.Info("dropped")
	rq.Empty(buf.String())

	_, err = logx.New(&buf, "loud", "text")
	rq.Error(err)

	_, err = logx.New(&buf, "info", "xml")
	rq.Error(err)
}

func TestContext(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	rq.Same(slog.Default(), logx.FromContext(ctx))
	rq.Empty(logx.TraceIDFromContext(ctx))

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx = logx.WithLogger(ctx, l)
	ctx = logx.WithTraceID(ctx, "trace-1")

	rq.Same(l, logx.FromContext(ctx))
	rq.Equal("trace-1", logx.TraceIDFromContext(ctx))
}
