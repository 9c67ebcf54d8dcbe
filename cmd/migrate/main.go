package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/golang-migrate/migrate/v4"
	"github.com/iskorotkov/referral-ledger/internal/db"
	"github.com/iskorotkov/referral-ledger/internal/storage"
	"github.com/iskorotkov/referral-ledger/migrations"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const usage = `usage: migrate <command>

commands:
  up       apply all pending migrations
  down     roll back the last migration
  goto N   migrate to version N
  status   print the current version
  seed N   create N users and one package, print their ids`

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	config, err := env.ParseAs[Config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})))

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(ctx, config, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type Config struct {
	LogLevel slog.Level `env:"LOG_LEVEL"`
	DB       string     `env:"DB,required"`
}

func run(ctx context.Context, c Config, command string, args []string) error {
	if command == "seed" {
		return seed(ctx, c, args)
	}

	m, err := migrations.New(c.DB)
	if err != nil {
		return err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			slog.Error("failed to close migrations", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	switch command {
	case "up":
		return report(m.Up(), "apply migrations")
	case "down":
		return report(m.Steps(-1), "roll back last migration")
	case "goto":
		if len(args) < 1 {
			return errors.New("goto requires a version")
		}
		version, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("parse version: %w", err)
		}
		return report(m.Migrate(uint(version)), "migrate to version", "version", version)
	case "status":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			slog.Info("no migrations applied")
			return nil
		}
		if err != nil {
			return fmt.Errorf("get version: %w", err)
		}
		slog.Info("current version", "version", version, "dirty", dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func report(err error, action string, attrs ...any) error {
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("no change", append(attrs, "action", action)...)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	slog.Info("done", append(attrs, "action", action)...)
	return nil
}

func seed(ctx context.Context, c Config, args []string) error {
	count := 5
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid user count %q", args[0])
		}
		count = n
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

	s := storage.NewCommissions(conn, db.New(conn))

	ids := make([]string, 0, count)
	for i := range count {
		u, err := s.CreateUser(ctx, fmt.Sprintf("User %d", i+1), fmt.Sprintf("user%d.%d@example.com", i+1, os.Getpid()), 1+i%3)
		if err != nil {
			return fmt.Errorf("create user %d: %w", i+1, err)
		}
		ids = append(ids, u.UserID.String())
	}

	p, err := s.CreatePackage(ctx, "Starter", decimal.NewFromInt(1000))
	if err != nil {
		return fmt.Errorf("create package: %w", err)
	}

	fmt.Printf("USER_IDS=%s\nPACKAGE_ID=%s\n", strings.Join(ids, ","), p.PackageID)
	return nil
}
