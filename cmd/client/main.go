package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	ledgerv1 "github.com/iskorotkov/referral-ledger/gen/ledger/v1"
	"github.com/iskorotkov/referral-ledger/gen/ledger/v1/ledgerv1connect"
	"github.com/iskorotkov/referral-ledger/internal/calc"
	"github.com/iskorotkov/referral-ledger/internal/middleware"
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
	Addr     string     `env:"ADDR" envDefault:"http://localhost:8080"`

	// Users and package created by `migrate seed`.
	UserIDs   []uuid.UUID `env:"USER_IDS,required"`
	PackageID uuid.UUID   `env:"PACKAGE_ID"`

	PurchaseInterval time.Duration `env:"PURCHASE_INTERVAL" envDefault:"1s"`
	PurchaseCount    int           `env:"PURCHASE_COUNT" envDefault:"10"`
	PurchasePrice    float64       `env:"PURCHASE_PRICE" envDefault:"1000"`

	MatchingInterval time.Duration `env:"MATCHING_INTERVAL" envDefault:"5s"`

	DrainInterval  time.Duration `env:"DRAIN_INTERVAL" envDefault:"3s"`
	DrainBatchSize int32         `env:"DRAIN_BATCH_SIZE" envDefault:"100"`
}

func run(ctx context.Context, c Config) error {
	if len(c.UserIDs) < 2 {
		return errors.New("at least two users are required")
	}

	client := ledgerv1connect.NewLedgerServiceClient(&http.Client{}, c.Addr,
		connect.WithInterceptors(middleware.LogRequests()),
	)

	var wg sync.WaitGroup
	wg.Go(func() {
		every(ctx, c.PurchaseInterval, func() { recordPurchases(ctx, c, client) })
	})
	wg.Go(func() {
		every(ctx, c.MatchingInterval, func() { recordMatching(ctx, c, client) })
	})
	wg.Go(func() {
		every(ctx, c.DrainInterval, func() { drain(ctx, c, client) })
	})

	wg.Wait()

	return nil
}

func every(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}

func recordPurchases(ctx context.Context, c Config, client ledgerv1connect.LedgerServiceClient) {
	var created int
	for i := range c.PurchaseCount {
		users := rand.Perm(len(c.UserIDs))
		buyer := c.UserIDs[users[0]]

		uplines := make([]*ledgerv1.Upline, 0, calc.DirectLevels())
		for level, idx := range users[1:min(len(users), calc.DirectLevels()+1)] {
			uplines = append(uplines, &ledgerv1.Upline{
				UserId: c.UserIDs[idx].String(),
				Level:  int32(level + 1),
			})
		}

		price := max(1, rand.NormFloat64()*c.PurchasePrice/4+c.PurchasePrice)
		req := &ledgerv1.RecordPurchaseRequest{
			BuyerUserId: buyer.String(),
			Price:       &ledgerv1.Decimal{Value: strconv.FormatFloat(price, 'f', 2, 64)},
			Uplines:     uplines,
		}
		if c.PackageID != uuid.Nil {
			req.PackageId = c.PackageID.String()
		}

		resp, err := client.RecordPurchase(ctx, connect.NewRequest(req))
		if err != nil {
			slog.ErrorContext(ctx, "record purchase", "error", err, "i", i)
			continue
		}

		created += len(resp.Msg.GetCommissions())
	}

	slog.InfoContext(ctx, "recorded purchases", "count", c.PurchaseCount, "commissions", created)
}

func recordMatching(ctx context.Context, c Config, client ledgerv1connect.LedgerServiceClient) {
	user := c.UserIDs[rand.IntN(len(c.UserIDs))]
	volume := rand.Float64() * c.PurchasePrice * 10

	resp, err := client.RecordMatching(ctx, connect.NewRequest(&ledgerv1.RecordMatchingRequest{
		UserId:     user.String(),
		TeamVolume: &ledgerv1.Decimal{Value: strconv.FormatFloat(volume, 'f', 2, 64)},
		UserLevel:  int32(1 + rand.IntN(3)),
	}))
	if err != nil {
		slog.ErrorContext(ctx, "record matching bonus", "error", err)
		return
	}

	slog.InfoContext(ctx, "recorded matching bonus",
		"user_id", user,
		"amount", resp.Msg.GetCommission().GetAmount().GetValue())
}

func drain(ctx context.Context, c Config, client ledgerv1connect.LedgerServiceClient) {
	resp, err := client.DrainPending(ctx, connect.NewRequest(&ledgerv1.DrainPendingRequest{
		BatchSize: c.DrainBatchSize,
	}))
	if err != nil {
		slog.ErrorContext(ctx, "drain", "error", err)
		return
	}

	slog.InfoContext(ctx, "drained",
		"processed", resp.Msg.GetProcessedCount(),
		"failed", resp.Msg.GetFailedCount())

	user := c.UserIDs[rand.IntN(len(c.UserIDs))]

	stats, err := client.UserStats(ctx, connect.NewRequest(&ledgerv1.UserStatsRequest{UserId: user.String()}))
	if err != nil {
		slog.ErrorContext(ctx, "user stats", "error", err)
		return
	}

	reconciled, err := client.Reconcile(ctx, connect.NewRequest(&ledgerv1.ReconcileRequest{UserId: user.String()}))
	if err != nil {
		slog.ErrorContext(ctx, "reconcile", "error", err)
		return
	}

	slog.InfoContext(ctx, "user stats",
		"user_id", user,
		"total", stats.Msg.GetTotal(),
		"settled", stats.Msg.GetSettled(),
		"settlement_rate", stats.Msg.GetSettlementRate().GetValue(),
		"balance", reconciled.Msg.GetBalance().GetValue(),
		"consistent", reconciled.Msg.GetConsistent())
}
