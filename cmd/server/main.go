// Command server exposes the country rule engine and audit trail over HTTP.
// main wires dependencies and keeps the server lifecycle small; business
// logic lives in the internal packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trastienda/internal/audit"
	"trastienda/internal/platform/config"
	"trastienda/internal/platform/httpserver"
	"trastienda/internal/platform/logger"
	"trastienda/internal/platform/metrics"
	"trastienda/internal/platform/postgres"
	platformredis "trastienda/internal/platform/redis"
	httptransport "trastienda/internal/transport/http"
	authmw "trastienda/pkg/platform/middleware/auth"
)

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := buildStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("store setup failed", zap.Error(err))
	}
	defer cleanup()

	recorderOpts := []audit.RecorderOption{}
	group, ctx := errgroup.WithContext(ctx)

	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := audit.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Fatal("kafka setup failed", zap.Error(err))
		}
		defer publisher.Close()

		mirror := make(chan audit.Record, 256)
		recorderOpts = append(recorderOpts, audit.WithMirror(mirror))
		worker := audit.NewWorker(publisher, mirror, log)
		group.Go(func() error {
			if err := worker.Run(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
		log.Info("audit mirror enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	recorder := audit.NewRecorder(store, log, recorderOpts...)
	reader := audit.NewReader(store)

	handler := httptransport.NewHandler(recorder, reader, metrics.New(), log)

	var middlewares []func(http.Handler) http.Handler
	if cfg.JWTSigningKey != "" {
		middlewares = append(middlewares, authmw.Actor(cfg.JWTSigningKey, log))
	}
	router := httptransport.NewRouter(handler, middlewares...)

	srv := httpserver.New(cfg.Addr, router)
	group.Go(func() error {
		log.Info("starting trastienda rule engine", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
	log.Info("shutdown complete")
}

// buildStore picks the audit store from configuration: postgres when a
// database URL is set, redis as the lighter alternative, in-memory for
// local development.
func buildStore(ctx context.Context, cfg config.Server, log *zap.Logger) (audit.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("using postgres audit store")
		return audit.NewPostgresStore(db), func() { db.Close() }, nil
	}

	if cfg.Redis.URL != "" {
		client, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using redis audit store")
		return audit.NewRedisStore(client.Client), func() { _ = client.Close() }, nil
	}

	log.Warn("using in-memory audit store; records will not survive restarts")
	return audit.NewInMemoryStore(), func() {}, nil
}
