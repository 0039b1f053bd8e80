package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yusufkecer/unshakn-backend/internal/logx"
)

const httpServerReadHeaderTimeout = 5 * time.Second

// Server exposes /metrics on its own listener.
type Server struct {
	listenAddress string
	gatherer      prometheus.Gatherer
}

func NewServer(listenAddress string, gatherer prometheus.Gatherer) Server {
	return Server{listenAddress: listenAddress, gatherer: gatherer}
}

// Run serves until ctx is cancelled.
func (s Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	httpServer := &http.Server{
		Addr:              s.listenAddress,
		Handler:           mux,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logx.FromContext(ctx).Error("metrics server shutdown", logx.Error(err))
		}
	}()

	logx.FromContext(ctx).Info("metrics server started", slog.String("address", s.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logx.FromContext(ctx).Info("metrics server stopped")

	return nil
}
