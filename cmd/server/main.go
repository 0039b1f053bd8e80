package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/yusufkecer/unshakn-backend/internal/config"
	"github.com/yusufkecer/unshakn-backend/internal/db"
	"github.com/yusufkecer/unshakn-backend/internal/domain"
	"github.com/yusufkecer/unshakn-backend/internal/handler"
	"github.com/yusufkecer/unshakn-backend/internal/logx"
	"github.com/yusufkecer/unshakn-backend/internal/metrics"
	"github.com/yusufkecer/unshakn-backend/internal/middleware"
	"github.com/yusufkecer/unshakn-backend/internal/repository"
	"github.com/yusufkecer/unshakn-backend/internal/service"
	"github.com/yusufkecer/unshakn-backend/internal/sizing"
)

const memoryEstimateLogSize = 1000

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", logx.Error(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logx.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logx.WithLogger(ctx, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	var estimateLog service.EstimateRecorder = repository.NewMemoryEstimateRepository(memoryEstimateLogSize)
	if cfg.DB.Enabled {
		database, err := db.Connect(ctx, cfg.DB.DSN())
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer database.Close()
		logger.Info("database connection established")

		if err := db.RunMigrations(ctx, database, logger); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
		estimateLog = repository.NewEstimateRepository(database)
	}

	products, categories, err := repository.LoadSeed()
	if err != nil {
		return err
	}
	productRepo, err := repository.NewProductRepository(products, categories)
	if err != nil {
		return err
	}
	themeRepo := repository.NewThemeRepository(domain.DefaultTheme())

	estimator := sizing.NewEstimator(sizing.DefaultTable())
	sizeService := service.NewSizeService(estimator, estimateLog, m, cfg.EstimateDelay)
	catalogService := service.NewCatalogService(productRepo)
	authService := service.NewAuthService(
		cfg.Admin.Password,
		cfg.Admin.PasswordHash,
		cfg.Admin.TokenTTL,
		middleware.TokenGenerator(cfg.JWTSecret),
	)

	router := handler.NewRouter(handler.RouterConfig{
		Logger:         logger,
		Metrics:        m,
		AllowedOrigins: cfg.AllowedOrigins,
		APIKey:         cfg.APIKey,
		JWTSecret:      cfg.JWTSecret,
		Size:           handler.NewSizeHandler(sizeService),
		Product:        handler.NewProductHandler(productRepo, catalogService),
		Admin:          handler.NewAdminHandler(authService, m),
		Theme:          handler.NewThemeHandler(themeRepo),
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return metrics.NewServer(cfg.MetricsAddr, reg).Run(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("address", httpServer.Addr),
			slog.Int("size_rules", len(estimator.Rules())),
			slog.Bool("db_enabled", cfg.DB.Enabled),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	return g.Wait()
}
