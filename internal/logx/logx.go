package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	FieldDurationMs     = "duration-ms"
	FieldError          = "error"
	FieldHTTPMethod     = "http-method"
	FieldIP             = "ip"
	FieldResponseStatus = "response-status"
	FieldRoute          = "route"
	FieldStack          = "stack"
	FieldTraceID        = "trace-id"
	FieldURL            = "url"
)

var Error = tint.Err //nolint:gochecknoglobals

// New builds the process logger. format is "text" (colored, via tint) or "json".
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
	case "text", "":
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.DateTime,
		})), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

type contextKeyLogger struct{}

func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger{}, l)
}

// FromContext returns the request logger, or slog.Default when none is set.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(contextKeyLogger{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

type contextKeyTraceID struct{}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyTraceID{}).(string)
	return id
}
