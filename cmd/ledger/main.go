package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"connectrpc.com/grpcreflect"
	"github.com/caarlos0/env/v11"
	"github.com/iskorotkov/referral-ledger/gen/ledger/v1/ledgerv1connect"
	"github.com/iskorotkov/referral-ledger/internal/cache"
	"github.com/iskorotkov/referral-ledger/internal/db"
	"github.com/iskorotkov/referral-ledger/internal/jobs"
	"github.com/iskorotkov/referral-ledger/internal/ledger"
	"github.com/iskorotkov/referral-ledger/internal/metrics"
	"github.com/iskorotkov/referral-ledger/internal/middleware"
	"github.com/iskorotkov/referral-ledger/internal/service"
	"github.com/iskorotkov/referral-ledger/internal/storage"
	"github.com/iskorotkov/referral-ledger/migrations"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", err)
			os.Exit(1)
		}
	}()

	config, err := env.ParseAs[Config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})))

	if err := run(ctx, config); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type Config struct {
	LogLevel slog.Level `env:"LOG_LEVEL"`
	Addr     string     `env:"ADDR" envDefault:":8080"`
	DB       string     `env:"DB,required"`
	Migrate  bool       `env:"MIGRATE"`

	RedisURL string        `env:"REDIS_URL"`
	StatsTTL time.Duration `env:"STATS_TTL" envDefault:"30s"`

	DrainSchedule    string        `env:"DRAIN_SCHEDULE" envDefault:"@every 30s"`
	DrainBatchSize   int           `env:"DRAIN_BATCH_SIZE" envDefault:"100"`
	DrainMaxAttempts int           `env:"DRAIN_MAX_ATTEMPTS" envDefault:"5"`
	DrainClaimLease  time.Duration `env:"DRAIN_CLAIM_LEASE" envDefault:"5m"`
	DrainTimeout     time.Duration `env:"DRAIN_TIMEOUT" envDefault:"1m"`
}

func run(ctx context.Context, c Config) error {
	reflector := grpcreflect.NewStaticReflector(
		ledgerv1connect.LedgerServiceName,
	)

	if c.Migrate {
		slog.InfoContext(ctx, "applying migrations")
		if err := migrations.Up(c.DB); err != nil {
			return err
		}
	}

	pgxConfig, err := pgxpool.ParseConfig(c.DB)
	if err != nil {
		return fmt.Errorf("parse database config: %w", err)
	}
	pgxConfig.AfterConnect = func(ctx context.Context, c *pgx.Conn) error {
		pgxdecimal.Register(c.TypeMap())
		return nil
	}

	conn, err := pgxpool.NewWithConfig(ctx, pgxConfig)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer conn.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	opts := []ledger.Option{
		ledger.WithMetrics(m),
		ledger.WithDrainPolicy(c.DrainMaxAttempts, c.DrainClaimLease),
	}

	if c.RedisURL != "" {
		rdb, err := cache.Dial(ctx, c.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()

		opts = append(opts, ledger.WithCache(cache.NewStats(rdb, c.StatsTTL)))
	}

	queries := db.New(conn)
	storage := storage.NewCommissions(conn, queries)
	engine := ledger.New(storage, opts...)
	service := service.NewLedgers(engine)

	if c.DrainSchedule != "" {
		scheduler, err := jobs.NewScheduler(engine, jobs.Config{
			Schedule:  c.DrainSchedule,
			BatchSize: c.DrainBatchSize,
			Timeout:   c.DrainTimeout,
		})
		if err != nil {
			return err
		}

		scheduler.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), c.DrainTimeout)
			defer cancel()

			if err := scheduler.Stop(ctx); err != nil {
				slog.ErrorContext(ctx, "failed to stop drain scheduler", "error", err)
			}
		}()
	}

	mux := http.NewServeMux()
	mux.Handle(ledgerv1connect.NewLedgerServiceHandler(service,
		connect.WithInterceptors(middleware.Metrics(m), middleware.LogRequests()),
	))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := conn.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	var protocols http.Protocols
	protocols.SetHTTP1(true)
	protocols.SetHTTP2(true)
	protocols.SetUnencryptedHTTP2(true)

	server := &http.Server{
		Addr:         c.Addr,
		Handler:      h2c.NewHandler(mux, &http2.Server{}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		Protocols:    &protocols,
	}

	slog.InfoContext(ctx, "starting server", "addr", c.Addr)
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.InfoContext(ctx, "stopping server")
		if err := server.Shutdown(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to shutdown server", "error", err)
		}
		slog.InfoContext(ctx, "server stopped")
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
