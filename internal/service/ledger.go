package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	ledgerv1 "github.com/iskorotkov/referral-ledger/gen/ledger/v1"
	"github.com/iskorotkov/referral-ledger/gen/ledger/v1/ledgerv1connect"
	"github.com/iskorotkov/referral-ledger/internal/domain"
	"github.com/iskorotkov/referral-ledger/internal/ledger"
	"github.com/iskorotkov/referral-ledger/internal/transform"
)

// MaxDrainBatch bounds on-demand drains.
const MaxDrainBatch = 1000

type Ledger interface {
	CreateCommission(ctx context.Context, c domain.NewCommission) (domain.Commission, error)
	CreateCommissions(ctx context.Context, cs []domain.NewCommission) ([]domain.Commission, error)
	RecordPurchase(ctx context.Context, p domain.Purchase) ([]domain.Commission, error)
	RecordMatching(ctx context.Context, b domain.MatchingBonus) (domain.Commission, error)
	Commission(ctx context.Context, id uuid.UUID) (domain.Commission, error)
	List(ctx context.Context, f domain.Filter) (domain.Page, error)
	UpdateCommission(ctx context.Context, id uuid.UUID, patch domain.Patch) (domain.Commission, error)
	DeleteCommission(ctx context.Context, id uuid.UUID) (domain.Commission, error)
	DrainPending(ctx context.Context, batchSize int) (domain.DrainResult, error)
	UserStats(ctx context.Context, userID uuid.UUID) (domain.Stats, error)
	Reconcile(ctx context.Context, userID uuid.UUID) (domain.Reconciliation, error)
}

func NewLedgers(l Ledger) *Ledgers {
	return &Ledgers{
		l: l,
	}
}

type Ledgers struct {
	l Ledger
}

var _ ledgerv1connect.LedgerServiceHandler = (*Ledgers)(nil)

func (s *Ledgers) CreateCommission(
	ctx context.Context,
	req *connect.Request[ledgerv1.CreateCommissionRequest],
) (*connect.Response[ledgerv1.CreateCommissionResponse], error) {
	c, err := transform.NewCommissionFromProto(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	created, err := s.l.CreateCommission(ctx, c)
	if err != nil {
		return nil, toConnect(ctx, err, "failed to create commission")
	}

	return connect.NewResponse(&ledgerv1.CreateCommissionResponse{
		Commission: transform.CommissionToProto(created),
	}), nil
}

func (s *Ledgers) CreateCommissions(
	ctx context.Context,
	req *connect.Request[ledgerv1.CreateCommissionsRequest],
) (*connect.Response[ledgerv1.CreateCommissionsResponse], error) {
	if len(req.Msg.GetCommissions()) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("no commissions provided"))
	}

	cs, err := transform.NewCommissionsFromProto(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	created, err := s.l.CreateCommissions(ctx, cs)
	if err != nil {
		return nil, toConnect(ctx, err, "failed to create commissions")
	}

	return connect.NewResponse(&ledgerv1.CreateCommissionsResponse{
		Commissions: transform.CommissionsToProto(created),
	}), nil
}

func (s *Ledgers) RecordPurchase(
	ctx context.Context,
	req *connect.Request[ledgerv1.RecordPurchaseRequest],
) (*connect.Response[ledgerv1.RecordPurchaseResponse], error) {
	p, err := transform.PurchaseFromProto(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	created, err := s.l.RecordPurchase(ctx, p)
	if err != nil {
		return nil, toConnect(ctx, err, "failed to record purchase")
	}

	return connect.NewResponse(&ledgerv1.RecordPurchaseResponse{
		Commissions: transform.CommissionsToProto(created),
	}), nil
}

func (s *Ledgers) RecordMatching(
	ctx context.Context,
	req *connect.Request[ledgerv1.RecordMatchingRequest],
) (*connect.Response[ledgerv1.RecordMatchingResponse], error) {
	b, err := transform.MatchingFromProto(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	created, err := s.l.RecordMatching(ctx, b)
	if err != nil {
		return nil, toConnect(ctx, err, "failed to record matching bonus")
	}

	return connect.NewResponse(&ledgerv1.RecordMatchingResponse{
		Commission: transform.CommissionToProto(created),
	}), nil
}

func (s *Ledgers) GetCommission(
	ctx context.Context,
	req *connect.Request[ledgerv1.GetCommissionRequest],
) (*connect.Response[ledgerv1.GetCommissionResponse], error) {
	id, err := uuid.Parse(req.Msg.GetCommissionId())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	c, err := s.l.Commission(ctx, id)
	if err != nil {
		return nil, toConnect(ctx, err, "failed to get commission")
	}

	return connect.NewResponse(&ledgerv1.GetCommissionResponse{
		Commission: transform.CommissionToProto(c),
	}), nil
}

func (s *Ledgers) ListCommissions(
	ctx context.Context,
	req *connect.Request[ledgerv1.ListCommissionsRequest],
) (*connect.Response[ledgerv1.ListCommissionsResponse], error) {
	f, err := transform.FilterFromProto(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	page, err := s.l.List(ctx, f)
	if err != nil {
		return nil, toConnect(ctx, err, "failed to list commissions")
	}

	return connect.NewResponse(transform.PageToProto(page)), nil
}

func (s *Ledgers) UpdateCommission(
	ctx context.Context,
	req *connect.Request[ledgerv1.UpdateCommissionRequest],
) (*connect.Response[ledgerv1.UpdateCommissionResponse], error) {
	id, patch, err := transform.PatchFromProto(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	updated, err := s.l.UpdateCommission(ctx, id, patch)
	if err != nil {
		return nil, toConnect(ctx, err, "failed to update commission")
	}

	return connect.NewResponse(&ledgerv1.UpdateCommissionResponse{
		Commission: transform.CommissionToProto(updated),
	}), nil
}

func (s *Ledgers) DeleteCommission(
	ctx context.Context,
	req *connect.Request[ledgerv1.DeleteCommissionRequest],
) (*connect.Response[ledgerv1.DeleteCommissionResponse], error) {
	id, err := uuid.Parse(req.Msg.GetCommissionId())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	deleted, err := s.l.DeleteCommission(ctx, id)
	if err != nil {
		return nil, toConnect(ctx, err, "failed to delete commission")
	}

	return connect.NewResponse(&ledgerv1.DeleteCommissionResponse{
		Commission: transform.CommissionToProto(deleted),
	}), nil
}

func (s *Ledgers) DrainPending(
	ctx context.Context,
	req *connect.Request[ledgerv1.DrainPendingRequest],
) (*connect.Response[ledgerv1.DrainPendingResponse], error) {
	batchSize := int(req.Msg.GetBatchSize())
	if batchSize < 0 || batchSize > MaxDrainBatch {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("batch size must be between 0 and %d", MaxDrainBatch))
	}

	result, err := s.l.DrainPending(ctx, batchSize)
	if err != nil {
		return nil, toConnect(ctx, err, "failed to drain pending commissions")
	}

	return connect.NewResponse(transform.DrainResultToProto(result)), nil
}

func (s *Ledgers) UserStats(
	ctx context.Context,
	req *connect.Request[ledgerv1.UserStatsRequest],
) (*connect.Response[ledgerv1.UserStatsResponse], error) {
	userID, err := uuid.Parse(req.Msg.GetUserId())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	stats, err := s.l.UserStats(ctx, userID)
	if err != nil {
		return nil, toConnect(ctx, err, "failed to get user stats")
	}

	return connect.NewResponse(transform.StatsToProto(stats)), nil
}

func (s *Ledgers) Reconcile(
	ctx context.Context,
	req *connect.Request[ledgerv1.ReconcileRequest],
) (*connect.Response[ledgerv1.ReconcileResponse], error) {
	userID, err := uuid.Parse(req.Msg.GetUserId())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	r, err := s.l.Reconcile(ctx, userID)
	if err != nil {
		return nil, toConnect(ctx, err, "failed to reconcile")
	}

	return connect.NewResponse(transform.ReconciliationToProto(r)), nil
}

// toConnect maps an engine error to a connect error. Internal causes are
// logged and replaced by msg.
func toConnect(ctx context.Context, err error, msg string) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return connect.NewError(connect.CodeAlreadyExists, err)
	}

	switch ledger.KindOf(err) {
	case ledger.KindNotFound:
		return connect.NewError(connect.CodeNotFound, err)
	case ledger.KindValidation:
		return connect.NewError(connect.CodeInvalidArgument, err)
	case ledger.KindTransient:
		slog.WarnContext(ctx, msg, "error", err)
		return connect.NewError(connect.CodeUnavailable, errors.New(msg+": retry later"))
	default:
		slog.ErrorContext(ctx, msg, "error", err)
		return connect.NewError(connect.CodeInternal, errors.New(msg))
	}
}
