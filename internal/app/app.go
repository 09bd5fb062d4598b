// Package app assembles the application: configuration, logging, database,
// repositories, services, and the HTTP server with graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/annolab/annolab-backend/internal/adapter/postgres"
	annotationrepo "github.com/annolab/annolab-backend/internal/adapter/postgres/annotation"
	projectrepo "github.com/annolab/annolab-backend/internal/adapter/postgres/project"
	reviewrepo "github.com/annolab/annolab-backend/internal/adapter/postgres/review"
	userrepo "github.com/annolab/annolab-backend/internal/adapter/postgres/user"
	videorepo "github.com/annolab/annolab-backend/internal/adapter/postgres/video"
	"github.com/annolab/annolab-backend/internal/auth"
	"github.com/annolab/annolab-backend/internal/config"
	"github.com/annolab/annolab-backend/internal/metrics"
	"github.com/annolab/annolab-backend/internal/service/analytics"
	"github.com/annolab/annolab-backend/internal/service/distribution"
	"github.com/annolab/annolab-backend/internal/service/project"
	"github.com/annolab/annolab-backend/internal/service/review"
	"github.com/annolab/annolab-backend/internal/service/user"
	"github.com/annolab/annolab-backend/internal/service/video"
	"github.com/annolab/annolab-backend/internal/transport/middleware"
	"github.com/annolab/annolab-backend/internal/transport/rest"
	"github.com/annolab/annolab-backend/pkg/taskregistry"
)

// Run is the application entry point. It blocks until ctx is canceled or the
// HTTP server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	projects := projectrepo.New(pool)
	videos := videorepo.New(pool)
	annotations := annotationrepo.New(pool)
	entries := reviewrepo.New(pool)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	tasks := taskregistry.New()

	reviewSvc := review.NewService(logger, entries, videos, annotations, users, txManager, m, review.Config{
		DefaultPriority:  cfg.Workflow.DefaultPriority,
		MaxFeedbackItems: cfg.Workflow.MaxFeedbackItems,
		MaxQueuePageSize: cfg.Workflow.MaxQueuePageSize,
	})
	distributionSvc := distribution.NewService(logger, videos, projects, txManager, m)
	projectSvc := project.NewService(logger, projects, users, videos, txManager)
	videoSvc := video.NewService(logger, videos, projects, txManager)
	userSvc := user.NewService(logger, users)
	analyticsSvc := analytics.NewService(logger, users, projects, videos, annotations, entries, analytics.Config{
		DefaultWindowDays: cfg.Analytics.DefaultWindowDays,
		MaxWindowDays:     cfg.Analytics.MaxWindowDays,
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	handlers := rest.Handlers{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Reviews:   rest.NewReviewHandler(reviewSvc, logger),
		Projects:  rest.NewProjectHandler(projectSvc, distributionSvc, tasks, logger),
		Videos:    rest.NewVideoHandler(videoSvc, logger),
		Analytics: rest.NewAnalyticsHandler(analyticsSvc, logger),
		Users:     rest.NewUserHandler(userSvc, logger),
		Tasks:     rest.NewTaskHandler(tasks, logger),
	}
	if cfg.Metrics.Enabled {
		handlers.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwtManager),
	)(rest.NewRouter(handlers))

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
