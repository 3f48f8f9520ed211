package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/equipped-hq/tradein-service/internal/cache"
	"github.com/equipped-hq/tradein-service/internal/config"
	"github.com/equipped-hq/tradein-service/internal/db"
	"github.com/equipped-hq/tradein-service/internal/kafka"
	"github.com/equipped-hq/tradein-service/internal/logger"
	"github.com/equipped-hq/tradein-service/internal/repository/postgresql"
	"github.com/equipped-hq/tradein-service/internal/server"
	"github.com/equipped-hq/tradein-service/internal/shipping"
	"github.com/equipped-hq/tradein-service/internal/tradein"
	"github.com/equipped-hq/tradein-service/internal/valuation"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	database, err := db.NewDb(ctx, cfg.DB.DSN())
	if err != nil {
		log.Fatal("database init error", zap.Error(err))
	}
	defer database.GetPool().Close()

	tradeInRepo := postgresql.NewTradeInRepo(database)
	labelRepo := postgresql.NewLabelRepo(database)
	trackingRepo := postgresql.NewTrackingRepo(database)
	inspectionRepo := postgresql.NewInspectionRepo(database)
	adjustmentRepo := postgresql.NewAdjustmentRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo(database)
	userRepo := postgresql.NewUserRepo(database)

	if cfg.Admin.Username != "" {
		if err := userRepo.EnsureUser(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			log.Fatal("failed to seed admin user", zap.Error(err))
		}
		log.Info("admin user ensured", zap.String("username", cfg.Admin.Username))
	} else {
		log.Warn("no admin user configured, API requests will be rejected until a user is created")
	}

	var valuationStore valuation.Store
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("redis ping failed", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		valuationStore = valuation.NewRedisStore(redisClient)
		log.Info("using redis valuation store", zap.String("addr", cfg.Redis.Addr))
	} else {
		valuationStore = valuation.NewMemoryStore()
		log.Info("using in-memory valuation store")
	}

	engine := valuation.NewEngine(valuation.NewStaticCatalog(cfg.BaseValues), valuation.NewRegistry())
	carrier := shipping.NewMockCarrier()

	tradeInCache := cache.NewTradeInCache(tradeInRepo, log)
	if err := tradeInCache.LoadInitialData(ctx); err != nil {
		log.Warn("failed to preload trade-in cache", zap.Error(err))
	}

	controller := tradein.NewController(
		database,
		tradeInRepo,
		labelRepo,
		trackingRepo,
		inspectionRepo,
		adjustmentRepo,
		outboxRepo,
		carrier,
		valuationStore,
		cfg.Kafka.Topic,
		log,
		tradein.WithCache(tradeInCache),
	)

	var producer kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewWriterProducer(cfg.Kafka.Brokers)
	} else {
		producer = kafka.NewConsoleProducer()
	}

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		MaxAttempts:  cfg.Outbox.MaxAttempts,
	}, log)
	go publisher.Run(ctx)

	auditSink := server.NewOutboxSink(outboxRepo, cfg.Kafka.Topic)
	auditManager := server.NewAuditManager(cfg.Audit.Workers, cfg.Audit.BatchSize, cfg.Audit.FlushTimeout, auditSink)

	srv := server.New(controller, engine, valuationStore, userRepo, auditManager, log)

	go func() {
		if err := srv.Run(ctx, cfg.Server.Port); err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	log.Info("service started", zap.String("port", cfg.Server.Port))

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	publisher.Shutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}

	log.Info("service stopped")
}
