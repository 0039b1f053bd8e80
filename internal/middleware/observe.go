package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/xid"

	"github.com/yusufkecer/unshakn-backend/internal/logx"
	"github.com/yusufkecer/unshakn-backend/internal/metrics"
)

const HeaderTraceID = "X-Trace-Id"

// TraceID reuses the caller's X-Trace-Id or mints one, and attaches a
// request logger carrying it.
func TraceID(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(HeaderTraceID)
			if traceID == "" || len(traceID) > 64 {
				traceID = xid.New().String()
			}

			ctx := logx.WithTraceID(r.Context(), traceID)
			ctx = logx.WithLogger(ctx, base.With(slog.String(logx.FieldTraceID, traceID)))

			w.Header().Set(HeaderTraceID, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logx.FromContext(r.Context()).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Observe logs each request and records it in the HTTP metrics. It runs as
// router middleware so the matched route template is available.
func Observe(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			route := r.URL.Path
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			elapsed := time.Since(start)

			m.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(rw.status)).Inc()
			m.HTTPRequestSeconds.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())

			logx.FromContext(r.Context()).Info("http request",
				slog.String(logx.FieldHTTPMethod, r.Method),
				slog.String(logx.FieldRoute, route),
				slog.String(logx.FieldURL, r.URL.String()),
				slog.Int(logx.FieldResponseStatus, rw.status),
				slog.Int64(logx.FieldDurationMs, elapsed.Milliseconds()),
				slog.String(logx.FieldIP, ClientIP(r)),
			)
		})
	}
}
