package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"lawmate/internal/askai"
	"lawmate/internal/audit"
	"lawmate/internal/auth"
	"lawmate/internal/compliance"
	"lawmate/internal/directory"
	"lawmate/internal/document"
	"lawmate/internal/generate"
	"lawmate/internal/platform/config"
	"lawmate/internal/platform/httpserver"
	"lawmate/internal/platform/logger"
	"lawmate/internal/platform/metrics"
	"lawmate/internal/platform/postgres"
	platformredis "lawmate/internal/platform/redis"
	"lawmate/internal/template"
	httptransport "lawmate/internal/transport/http"
)

// main wires dependencies and owns the server lifecycle. Business logic lives
// in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Stores fall back to in-memory when no database is configured so local
	// development needs nothing but the binary.
	var userStore auth.Store = auth.NewInMemoryStore()
	var docStore document.Store = document.NewInMemoryStore()
	if cfg.PostgresDSN != "" {
		db, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			log.Error("schema bootstrap failed", "error", err)
			os.Exit(1)
		}
		userStore = auth.NewPostgresStore(db)
		docStore = document.NewPostgresStore(db)
		log.Info("using postgres stores")
	} else {
		log.Warn("POSTGRES_DSN not set, state is in-memory only")
	}

	var directoryCache directory.Cache = directory.NewMemoryCache()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		directoryCache = directory.NewRedisCache(redisClient.Client)
		log.Info("using redis directory cache")
	}

	var auditPublisher audit.Publisher = audit.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := audit.NewKafka(cfg.KafkaBrokers, cfg.AuditTopic, log)
		if err != nil {
			log.Error("kafka connection failed", "error", err)
			os.Exit(1)
		}
		defer kafka.Close()
		auditPublisher = kafka
		log.Info("publishing audit events", "topic", cfg.AuditTopic)
	}

	tokens := auth.NewJWTService(cfg.JWTSigningKey, "lawmate")
	registry := template.NewRegistry()

	deps := httptransport.Deps{
		Logger:       log,
		Metrics:      m,
		JWTValidator: auth.NewMiddlewareValidator(tokens),
		Auth:         auth.NewService(userStore, tokens, cfg.TokenTTL, m, auditPublisher, log),
		Documents:    document.NewService(docStore, m, auditPublisher),
		Generate:     generate.NewService(registry, template.NewRenderer(), m),
		Checker:      compliance.NewChecker(compliance.WithMetrics(m)),
		Directory:    directory.NewService(userStore, directoryCache, cfg.DirectoryCacheTTL, log),
		AskAI:        askai.NewClient(cfg.AskAIBaseURL),
	}

	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(deps))

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
