package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"vital-be/config"
	"vital-be/controllers"
	"vital-be/metrics"
	"vital-be/middlewares"
	"vital-be/routes"
	"vital-be/services"
	"vital-be/stores"
	authUtils "vital-be/utils"
)

type backend struct {
	authorities stores.AuthorityStore
	issues      stores.IssueStore
	requests    stores.FundRequestStore
	villagers   stores.VillagerStore
	locker      stores.IssueLocker
	limiter     middlewares.Limiter
	close       func(context.Context)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	b, err := openBackend(cfg, logger)
	if err != nil {
		return err
	}
	defer b.close(context.Background())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	tokens, err := authUtils.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	opts := []services.Option{
		services.WithLogger(logger),
		services.WithMetrics(m),
		services.WithPerformanceStats(b.authorities),
		services.WithPolicy(services.Policy{
			AllowResubmissionAfterRejection: cfg.AllowResubmissionAfterRejection,
			RequireCommentOnReject:          cfg.RequireCommentOnReject,
		}),
	}
	router := routes.NewRouter(routes.Deps{
		Authorities:           services.NewAuthorityService(b.authorities, cfg.AdminEmails, opts...),
		Issues:                services.NewIssueService(b.issues, b.villagers, b.requests, opts...),
		Villagers:             services.NewVillagerService(b.villagers, opts...),
		FundRequests:          services.NewFundRequestService(b.requests, b.issues, b.locker, opts...),
		Tokens:                tokens,
		Limiter:               b.limiter,
		Cookie:                controllers.CookieSettings{Domain: cfg.Domain, Production: cfg.Production()},
		Domain:                cfg.Domain,
		IssueDailyLimit:       cfg.IssueDailyLimit,
		FundRequestDailyLimit: cfg.FundRequestDailyLimit,
		Metrics:               m,
		Gatherer:              registry,
		Logger:                logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("starting vital-be", zap.String("addr", srv.Addr), zap.String("store_backend", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errs:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func openBackend(cfg config.Config, logger *zap.Logger) (*backend, error) {
	redisClient, err := config.ConnectRedis(cfg, logger)
	if err != nil {
		return nil, err
	}

	b := &backend{
		locker:  stores.NewMemoryIssueLocker(),
		limiter: middlewares.NewMemoryLimiter(),
		close:   func(context.Context) {},
	}
	if redisClient != nil {
		b.locker = stores.NewRedisIssueLocker(redisClient, "", 0)
		b.limiter = middlewares.NewRedisLimiter(redisClient, "")
	}

	if cfg.StoreBackend == config.BackendMemory {
		logger.Warn("using in-memory stores, data is lost on restart")
		b.authorities = stores.NewMemoryAuthorityStore()
		b.issues = stores.NewMemoryIssueStore()
		b.requests = stores.NewMemoryFundRequestStore()
		b.villagers = stores.NewMemoryVillagerStore()
		b.close = closer(nil, redisClient, logger)
		return b, nil
	}

	client, db, err := config.ConnectDB(cfg, logger)
	if err != nil {
		closer(nil, redisClient, logger)(context.Background())
		return nil, err
	}
	if err := stores.EnsureIndexes(db); err != nil {
		closer(client, redisClient, logger)(context.Background())
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	b.authorities = stores.NewMongoAuthorityStore(db)
	b.issues = stores.NewMongoIssueStore(db)
	b.requests = stores.NewMongoFundRequestStore(db)
	b.villagers = stores.NewMongoVillagerStore(db)
	b.close = closer(client, redisClient, logger)
	return b, nil
}

func closer(client *mongo.Client, redisClient *redis.Client, logger *zap.Logger) func(context.Context) {
	return func(ctx context.Context) {
		if client != nil {
			if err := client.Disconnect(ctx); err != nil {
				logger.Warn("mongo disconnect failed", zap.Error(err))
			}
		}
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close failed", zap.Error(err))
			}
		}
	}
}
