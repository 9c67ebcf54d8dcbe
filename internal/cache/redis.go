// Package cache keeps per-user commission stats in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iskorotkov/referral-ledger/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const keyPrefix = "ledger:stats:"

// Dial connects to Redis and checks the connection.
func Dial(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

type Stats struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewStats(rdb redis.Cmdable, ttl time.Duration) *Stats {
	return &Stats{
		rdb: rdb,
		ttl: ttl,
	}
}

func (s *Stats) Stats(ctx context.Context, userID uuid.UUID) (domain.Stats, bool, error) {
	raw, err := s.rdb.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Stats{}, false, nil
	}
	if err != nil {
		return domain.Stats{}, false, fmt.Errorf("get stats: %w", err)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return domain.Stats{}, false, fmt.Errorf("decode stats: %w", err)
	}

	return e.toDomain(), true, nil
}

func (s *Stats) StoreStats(ctx context.Context, stats domain.Stats) error {
	raw, err := json.Marshal(entryFrom(stats))
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	if err := s.rdb.Set(ctx, key(stats.UserID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("set stats: %w", err)
	}

	return nil
}

func (s *Stats) Invalidate(ctx context.Context, userIDs ...uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}

	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = key(id)
	}

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete stats: %w", err)
	}

	return nil
}

func key(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

type entry struct {
	UserID        uuid.UUID `json:"user_id"`
	Total         int64     `json:"total"`
	Pending       int64     `json:"pending"`
	Processing    int64     `json:"processing"`
	Settled       int64     `json:"settled"`
	Failed        int64     `json:"failed"`
	TotalAmount   string    `json:"total_amount"`
	PendingAmount string    `json:"pending_amount"`
}

func entryFrom(s domain.Stats) entry {
	return entry{
		UserID:        s.UserID,
		Total:         s.Total,
		Pending:       s.Pending,
		Processing:    s.Processing,
		Settled:       s.Settled,
		Failed:        s.Failed,
		TotalAmount:   s.TotalAmount.String(),
		PendingAmount: s.PendingAmount.String(),
	}
}

func (e entry) toDomain() domain.Stats {
	s := domain.Stats{
		UserID:     e.UserID,
		Total:      e.Total,
		Pending:    e.Pending,
		Processing: e.Processing,
		Settled:    e.Settled,
		Failed:     e.Failed,
	}
	// Amounts were written by String and always parse.
	s.TotalAmount, _ = decimal.NewFromString(e.TotalAmount)
	s.PendingAmount, _ = decimal.NewFromString(e.PendingAmount)
	return s
}
