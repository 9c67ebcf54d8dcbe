package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/iskorotkov/referral-ledger/internal/db"
	"github.com/iskorotkov/referral-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateUser registers a user with empty earnings.
func (s *Commissions) CreateUser(ctx context.Context, name, email string, level int) (domain.UserRef, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.UserRef{}, fmt.Errorf("generate user id: %w", err)
	}

	u, err := s.q.CreateUser(ctx, db.CreateUserParams{
		UserID: id,
		Name:   name,
		Email:  email,
		Level:  int32(level),
	})
	if err != nil {
		return domain.UserRef{}, classify("create user", err)
	}

	return domain.UserRef{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}, nil
}

func (s *Commissions) CreatePackage(ctx context.Context, name string, price decimal.Decimal) (domain.PackageRef, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.PackageRef{}, fmt.Errorf("generate package id: %w", err)
	}

	p, err := s.q.CreatePackage(ctx, db.CreatePackageParams{
		PackageID: id,
		Name:      name,
		Price:     price,
	})
	if err != nil {
		return domain.PackageRef{}, classify("create package", err)
	}

	return domain.PackageRef{
		PackageID: p.PackageID,
		Name:      p.Name,
		Price:     p.Price,
	}, nil
}
