package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	auditkafka "caseflow/internal/audit/kafka"
	billinghandler "caseflow/internal/billing/handler"
	billingmetrics "caseflow/internal/billing/metrics"
	"caseflow/internal/billing/service"
	"caseflow/internal/billing/store/ledger"
	"caseflow/internal/jwttoken"
	"caseflow/internal/platform/config"
	"caseflow/internal/platform/httpserver"
	"caseflow/internal/platform/logger"
	"caseflow/internal/platform/middleware"
	httptransport "caseflow/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	var ledgerStore service.LedgerStore
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Error("ledger database connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		ledgerStore = ledger.NewPostgres(pool)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory ledger store")
		ledgerStore = ledger.NewInMemory()
	}

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(billingmetrics.New()),
	}
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := auditkafka.New(cfg.KafkaBrokers, cfg.AuditTopic, log)
		if err != nil {
			log.Error("audit publisher setup failed", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		opts = append(opts, service.WithAuditPublisher(publisher))
	}

	billing, err := service.New(ledgerStore, opts...)
	if err != nil {
		log.Error("billing service setup failed", "error", err)
		os.Exit(1)
	}

	var validator middleware.JWTValidator
	if !cfg.AuthDisabled {
		validator = jwttoken.NewService(cfg.JWTSigningKey, cfg.JWTIssuer)
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Billing:   billinghandler.New(billing, log),
		Validator: validator,
		Logger:    log,
	})
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting caseflow", "addr", cfg.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
