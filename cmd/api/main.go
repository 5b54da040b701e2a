package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-engine/config"
	"wallet-engine/internal/adapter/export"
	httpHandler "wallet-engine/internal/adapter/http/handler"
	"wallet-engine/internal/adapter/http/middleware"
	"wallet-engine/internal/adapter/messaging"
	"wallet-engine/internal/adapter/render"
	"wallet-engine/internal/adapter/settlement"
	pgStorage "wallet-engine/internal/adapter/storage/postgres"
	redisStorage "wallet-engine/internal/adapter/storage/redis"
	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"
	"wallet-engine/internal/service"
	"wallet-engine/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("pivot", cfg.Engine.PivotCurrency).
		Msg("Starting Wallet Engine")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required (WLE_JWT_SECRET)")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	seedBalances, err := cfg.Engine.Balances()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid seed balances")
	}
	seedPrices, err := cfg.Engine.Prices()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid seed prices")
	}

	var (
		journal        ports.Journal
		priceCache     ports.PriceCache
		idempCache     ports.IdempotencyCache
		keyReserver    middleware.KeyReserver = middleware.NewLocalReserver()
		rateLimiter    middleware.Limiter
		auditRepo      ports.AuditRepository
		publisher      ports.EventPublisher
		healthCheckers []ports.HealthChecker
	)

	// PostgreSQL journal (optional)
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize encryption service")
		}

		pgJournal := pgStorage.NewJournal(pool, pgStorage.NewTransactor(pool), encSvc)
		if err := pgJournal.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to create journal schema")
		}
		journal = pgJournal
		idempCache = pgStorage.NewIdempotencyRepo(pool)
		auditRepo = pgStorage.NewAuditRepository(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	// Redis caches (optional); takes over idempotency from PostgreSQL when both are on
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		priceCache = redisStorage.NewPriceCache(rdb)
		idempCache = redisStorage.NewIdempotencyCache(rdb)
		keyReserver = redisStorage.NewReservationStore(rdb)
		rateLimiter = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Kafka event publishing (optional)
	if cfg.Kafka.Enabled {
		kp := messaging.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := kp.Close(); err != nil {
				log.Warn().Err(err).Msg("kafka writer close failed")
			}
		}()
		publisher = kp
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("Kafka publisher enabled")
	}

	// Price oracle: config seed, then whatever the cache last saw
	oracle := service.NewPriceOracle(cfg.Engine.PivotCurrency, priceCache, log)
	oracle.Seed(seedPrices)
	if err := oracle.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("price cache load failed, using seed prices")
	}

	directory := service.NewDirectory()
	for _, c := range cfg.Engine.Contacts {
		if err := directory.Add(domain.Contact{Name: c.Name, Tag: c.Tag, Phone: c.Phone, Address: c.Address}); err != nil {
			log.Fatal().Err(err).Str("contact", c.Name).Msg("Invalid contact")
		}
	}

	// Notifications: always logged, optionally posted to a webhook
	notifiers := service.MultiNotifier{service.NewLogNotifier(log)}
	if cfg.Engine.Webhook.URL != "" {
		notifiers = append(notifiers, service.NewWebhookNotifier(
			cfg.Engine.Webhook.URL,
			cfg.Engine.Webhook.Secret,
			service.NewHMACSignatureService(),
			nil,
			nil,
			log,
		))
	}

	// Settlement outbox over the simulated gateway
	gateway := settlement.NewSimulatedGateway(cfg.Engine.Settlement.Latency, cfg.Engine.Settlement.FailureRate, log)
	outbox := service.NewSettlementOutbox(gateway, notifiers, service.OutboxConfig{
		Workers:        cfg.Engine.Settlement.Workers,
		QueueSize:      cfg.Engine.Settlement.QueueSize,
		AttemptTimeout: cfg.Engine.Settlement.AttemptTimeout,
		RetryIntervals: cfg.Engine.Settlement.RetryIntervals,
		Retention:      cfg.Engine.Settlement.Retention,
	}, log)
	outbox.Start(ctx)
	defer outbox.Stop()

	bus := service.NewEventBus(publisher, log)
	defer bus.Close()

	sessions := service.NewSessionManager(service.SessionDeps{
		Oracle:       oracle,
		Directory:    directory,
		Outbox:       outbox,
		Bus:          bus,
		Journal:      journal,
		Notifier:     notifiers,
		Renderer:     render.NewPNGRenderer("Transactions"),
		ExportSink:   export.NewFileSink(cfg.Engine.ExportDir, log),
		SeedBalances: seedBalances,
		ExportPrefix: cfg.Engine.ExportPrefix,
	}, log)
	go sessions.RunSweeper(ctx, cfg.Engine.SweepInterval)

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Sessions:       sessions,
		TokenSvc:       tokenSvc,
		RateLimiter:    rateLimiter,
		IdempCache:     idempCache,
		KeyReserver:    keyReserver,
		AuditSvc:       service.NewAuditService(auditRepo, log),
		HealthCheckers: healthCheckers,
		DeeplinkScheme: cfg.Engine.DeeplinkScheme,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	stop()

	log.Info().Int("sessions", sessions.Len()).Msg("Server exited")
}
