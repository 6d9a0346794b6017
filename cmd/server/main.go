package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"credlens/internal/audit"
	auditkafka "credlens/internal/audit/kafka"
	"credlens/internal/bureau"
	bureaumetrics "credlens/internal/bureau/metrics"
	"credlens/internal/identity"
	jwttoken "credlens/internal/jwt_token"
	"credlens/internal/platform/config"
	"credlens/internal/platform/httpserver"
	"credlens/internal/platform/logger"
	"credlens/internal/platform/metrics"
	pgplatform "credlens/internal/platform/postgres"
	redisplatform "credlens/internal/platform/redis"
	"credlens/internal/score"
	scorehandler "credlens/internal/score/handler"
	scoremetrics "credlens/internal/score/metrics"
	scorestore "credlens/internal/score/store"
	httptransport "credlens/internal/transport/http"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres is optional for local runs; without it everything stays in
	// memory.
	db, err := pgplatform.Open(cfg.Postgres)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	redisClient, err := redisplatform.New(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Bureau client: mock for local development, HTTP for real vendor
	// credentials, wrapped in the redis cache when available.
	var bureauClient bureau.Client
	if cfg.Bureau.UseMockData || cfg.Bureau.BaseURL == "" {
		log.Info("using mock bureau data")
		bureauClient = bureau.MockClient{Latency: 150 * time.Millisecond}
	} else {
		bureauClient = bureau.NewHTTPClient(cfg.Bureau.BaseURL, cfg.Bureau.APIKey, cfg.Bureau.Timeout)
	}
	if redisClient != nil {
		bureauClient = bureau.NewCachedClient(
			bureauClient,
			bureau.NewRedisReportCache(redisClient),
			cfg.Bureau.CacheTTL,
			bureaumetrics.New(),
		)
	}

	var resultStore score.ResultStore
	var auditStore audit.Store
	if db != nil {
		resultStore = scorestore.NewPostgres(db)
		auditStore = audit.NewPostgresStore(db)
	} else {
		log.Warn("postgres not configured, scores will not survive restarts")
		resultStore = scorestore.NewMemory()
		auditStore = audit.NewMemoryStore()
	}

	var bvns identity.BVNDirectory
	if redisClient != nil {
		bvns = identity.NewRedis(redisClient)
	} else {
		bvns = identity.NewMemory()
	}

	// Audit pipeline: fail-open publisher, background worker, optional
	// Kafka sink.
	publisher := audit.NewPublisher(256, log)
	var sink audit.Sink
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := auditkafka.NewPublisher(ctx, cfg.Kafka.Brokers, cfg.Kafka.AuditTopic)
		if err != nil {
			return err
		}
		defer kafkaSink.Close()
		sink = kafkaSink
	}
	worker := audit.NewWorker(auditStore, sink, publisher.Events(), log)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", slog.String("error", err.Error()))
		}
	}()

	engine, err := score.NewEngine(score.DefaultConfig())
	if err != nil {
		return err
	}
	scoreService := score.NewService(
		engine,
		bureauClient,
		bvns,
		resultStore,
		publisher,
		log,
		scoremetrics.New(),
	)

	jwtService := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, cfg.Server.JWTAudience)

	router := httptransport.New(httptransport.Deps{
		Logger:      log,
		Metrics:     metrics.New(),
		Validator:   jwtService,
		ScoreRoutes: scorehandler.New(scoreService, log),
	})

	srv := httpserver.New(cfg.Server.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting credlens", slog.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-workerDone

	log.Info("shutdown complete")
	return nil
}
