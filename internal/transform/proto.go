package transform

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	ledgerv1 "github.com/iskorotkov/referral-ledger/gen/ledger/v1"
	"github.com/iskorotkov/referral-ledger/internal/domain"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var (
	ErrInvalidCommissionID = errors.New("invalid commission id")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrInvalidPackageID    = errors.New("invalid package id")
	ErrInvalidAmount       = errors.New("invalid amount")
)

func NewCommissionFromProto(req *ledgerv1.CreateCommissionRequest) (domain.NewCommission, error) {
	if req == nil {
		return domain.NewCommission{}, errors.New("empty commission")
	}

	var c domain.NewCommission
	var err error

	if req.GetCommissionId() != "" {
		if c.CommissionID, err = uuid.Parse(req.GetCommissionId()); err != nil {
			return domain.NewCommission{}, fmt.Errorf("%w: %v", ErrInvalidCommissionID, err)
		}
	}

	if c.RecipientUserID, err = uuid.Parse(req.GetRecipientUserId()); err != nil {
		return domain.NewCommission{}, fmt.Errorf("%w: %v", ErrInvalidUserID, err)
	}

	if c.SourceUserID, err = optionalID(req.GetSourceUserId(), ErrInvalidUserID); err != nil {
		return domain.NewCommission{}, err
	}

	if c.PackageID, err = optionalID(req.GetPackageId(), ErrInvalidPackageID); err != nil {
		return domain.NewCommission{}, err
	}

	if c.Type, err = typeFromProto(req.GetType()); err != nil {
		return domain.NewCommission{}, err
	}

	if req.GetStatus() != ledgerv1.CommissionStatus_COMMISSION_STATUS_UNSPECIFIED {
		if c.Status, err = statusFromProto(req.GetStatus()); err != nil {
			return domain.NewCommission{}, err
		}
	}

	if c.Amount, err = decimalFromProto(req.GetAmount()); err != nil {
		return domain.NewCommission{}, err
	}

	c.Description = req.GetDescription()
	return c, nil
}

func NewCommissionsFromProto(req *ledgerv1.CreateCommissionsRequest) ([]domain.NewCommission, error) {
	cs := make([]domain.NewCommission, 0, len(req.GetCommissions()))
	for i, r := range req.GetCommissions() {
		c, err := NewCommissionFromProto(r)
		if err != nil {
			return nil, fmt.Errorf("commission %d: %w", i, err)
		}

		cs = append(cs, c)
	}

	return cs, nil
}

func PurchaseFromProto(req *ledgerv1.RecordPurchaseRequest) (domain.Purchase, error) {
	buyer, err := uuid.Parse(req.GetBuyerUserId())
	if err != nil {
		return domain.Purchase{}, fmt.Errorf("%w: %v", ErrInvalidUserID, err)
	}

	packageID, err := optionalID(req.GetPackageId(), ErrInvalidPackageID)
	if err != nil {
		return domain.Purchase{}, err
	}

	price, err := decimalFromProto(req.GetPrice())
	if err != nil {
		return domain.Purchase{}, err
	}

	uplines := make([]domain.Upline, 0, len(req.GetUplines()))
	for _, u := range req.GetUplines() {
		if u == nil {
			continue
		}

		userID, err := uuid.Parse(u.GetUserId())
		if err != nil {
			return domain.Purchase{}, fmt.Errorf("%w: upline: %v", ErrInvalidUserID, err)
		}

		uplines = append(uplines, domain.Upline{
			UserID: userID,
			Level:  int(u.GetLevel()),
		})
	}

	return domain.Purchase{
		BuyerUserID: buyer,
		PackageID:   packageID,
		Price:       price,
		Uplines:     uplines,
	}, nil
}

func MatchingFromProto(req *ledgerv1.RecordMatchingRequest) (domain.MatchingBonus, error) {
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return domain.MatchingBonus{}, fmt.Errorf("%w: %v", ErrInvalidUserID, err)
	}

	sourceID, err := optionalID(req.GetSourceUserId(), ErrInvalidUserID)
	if err != nil {
		return domain.MatchingBonus{}, err
	}

	volume, err := decimalFromProto(req.GetTeamVolume())
	if err != nil {
		return domain.MatchingBonus{}, err
	}

	return domain.MatchingBonus{
		UserID:       userID,
		SourceUserID: sourceID,
		TeamVolume:   volume,
		UserLevel:    int(req.GetUserLevel()),
		Description:  req.GetDescription(),
	}, nil
}

// PatchFromProto rejects PROCESSING: only a drain claim enters it.
func PatchFromProto(req *ledgerv1.UpdateCommissionRequest) (uuid.UUID, domain.Patch, error) {
	id, err := uuid.Parse(req.GetCommissionId())
	if err != nil {
		return uuid.Nil, domain.Patch{}, fmt.Errorf("%w: %v", ErrInvalidCommissionID, err)
	}

	var p domain.Patch

	if req.Amount != nil {
		amount, err := decimalFromProto(req.Amount)
		if err != nil {
			return uuid.Nil, domain.Patch{}, err
		}
		p.Amount = &amount
	}

	if req.Type != nil {
		t, err := typeFromProto(req.GetType())
		if err != nil {
			return uuid.Nil, domain.Patch{}, err
		}
		p.Type = &t
	}

	if req.Status != nil {
		s, err := statusFromProto(req.GetStatus())
		if err != nil {
			return uuid.Nil, domain.Patch{}, err
		}
		if !s.Patchable() {
			return uuid.Nil, domain.Patch{}, fmt.Errorf("%w: %v cannot be requested", ErrInvalidStatus, s)
		}
		p.Status = &s
	}

	p.Description = req.Description
	return id, p, nil
}

func FilterFromProto(req *ledgerv1.ListCommissionsRequest) (domain.Filter, error) {
	f := domain.Filter{
		Page:      int(req.GetPage()),
		Limit:     int(req.GetLimit()),
		StartDate: timeFromProto(req.GetStartDate()),
		EndDate:   timeFromProto(req.GetEndDate()),
	}

	var err error
	if f.UserID, err = optionalID(req.GetUserId(), ErrInvalidUserID); err != nil {
		return domain.Filter{}, err
	}

	if req.GetType() != ledgerv1.CommissionType_COMMISSION_TYPE_UNSPECIFIED {
		t, err := typeFromProto(req.GetType())
		if err != nil {
			return domain.Filter{}, err
		}
		f.Type = &t
	}

	if req.GetStatus() != ledgerv1.CommissionStatus_COMMISSION_STATUS_UNSPECIFIED {
		s, err := statusFromProto(req.GetStatus())
		if err != nil {
			return domain.Filter{}, err
		}
		f.Status = &s
	}

	return f, nil
}

func CommissionToProto(c domain.Commission) *ledgerv1.Commission {
	out := &ledgerv1.Commission{
		CommissionId:    c.CommissionID.String(),
		RecipientUserId: c.RecipientUserID.String(),
		Type:            ledgerv1.CommissionType(c.Type),
		Status:          ledgerv1.CommissionStatus(c.Status),
		Amount:          decimalToProto(c.Amount),
		Description:     c.Description,
		Attempts:        int32(c.Attempts),
		CreatedAt:       timestamppb.New(c.CreatedAt),
	}

	if c.SettledAt != nil {
		out.SettledAt = timestamppb.New(*c.SettledAt)
	}
	if c.SourceUserID != nil {
		out.SourceUserId = c.SourceUserID.String()
	}
	if c.PackageID != nil {
		out.PackageId = c.PackageID.String()
	}
	if c.Recipient != nil {
		out.Recipient = userToProto(*c.Recipient)
	}
	if c.Source != nil {
		out.Source = userToProto(*c.Source)
	}
	if c.Package != nil {
		out.Package = &ledgerv1.Package{
			PackageId: c.Package.PackageID.String(),
			Name:      c.Package.Name,
			Price:     decimalToProto(c.Package.Price),
		}
	}

	return out
}

func CommissionsToProto(cs []domain.Commission) []*ledgerv1.Commission {
	out := make([]*ledgerv1.Commission, 0, len(cs))
	for _, c := range cs {
		out = append(out, CommissionToProto(c))
	}
	return out
}

func PageToProto(p domain.Page) *ledgerv1.ListCommissionsResponse {
	return &ledgerv1.ListCommissionsResponse{
		Commissions: CommissionsToProto(p.Commissions),
		Pagination: &ledgerv1.Pagination{
			Page:  int32(p.Pagination.Page),
			Limit: int32(p.Pagination.Limit),
			Total: p.Pagination.Total,
			Pages: p.Pagination.Pages,
		},
	}
}

func DrainResultToProto(r domain.DrainResult) *ledgerv1.DrainPendingResponse {
	outcomes := make([]*ledgerv1.DrainOutcome, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		out := &ledgerv1.DrainOutcome{
			CommissionId: o.CommissionID.String(),
			Status:       ledgerv1.CommissionStatus(o.Status),
		}
		if o.Err != nil {
			out.Error = o.Err.Error()
		}
		outcomes = append(outcomes, out)
	}

	return &ledgerv1.DrainPendingResponse{
		ProcessedCount: int32(r.Attempted),
		FailedCount:    int32(r.Failed()),
		Outcomes:       outcomes,
	}
}

func StatsToProto(s domain.Stats) *ledgerv1.UserStatsResponse {
	return &ledgerv1.UserStatsResponse{
		UserId:         s.UserID.String(),
		Total:          s.Total,
		Pending:        s.Pending,
		Processing:     s.Processing,
		Settled:        s.Settled,
		Failed:         s.Failed,
		TotalAmount:    decimalToProto(s.TotalAmount),
		PendingAmount:  decimalToProto(s.PendingAmount),
		SettlementRate: decimalToProto(s.SettlementRate()),
	}
}

func ReconciliationToProto(r domain.Reconciliation) *ledgerv1.ReconcileResponse {
	return &ledgerv1.ReconcileResponse{
		UserId:        r.UserID.String(),
		LedgerTotal:   decimalToProto(r.LedgerTotal),
		TotalEarnings: decimalToProto(r.TotalEarnings),
		Balance:       decimalToProto(r.Balance),
		Consistent:    r.Consistent(),
	}
}

func userToProto(u domain.UserRef) *ledgerv1.User {
	return &ledgerv1.User{
		UserId: u.UserID.String(),
		Name:   u.Name,
		Email:  u.Email,
	}
}

func optionalID(s string, sentinel error) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sentinel, err)
	}

	return &id, nil
}

// Wire enums share their numbering with the domain enums.
func typeFromProto(t ledgerv1.CommissionType) (domain.Type, error) {
	d := domain.Type(t)
	if !d.IsAType() || d == domain.TypeUnknown {
		return domain.TypeUnknown, fmt.Errorf("%w: %v", ErrInvalidType, t)
	}
	return d, nil
}

func statusFromProto(s ledgerv1.CommissionStatus) (domain.Status, error) {
	d := domain.Status(s)
	if !d.IsAStatus() || d == domain.StatusUnknown {
		return domain.StatusUnknown, fmt.Errorf("%w: %v", ErrInvalidStatus, s)
	}
	return d, nil
}

func decimalFromProto(d *ledgerv1.Decimal) (decimal.Decimal, error) {
	if d == nil {
		return decimal.Zero, fmt.Errorf("%w: missing", ErrInvalidAmount)
	}

	v, err := decimal.NewFromString(d.GetValue())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	return v, nil
}

func decimalToProto(d decimal.Decimal) *ledgerv1.Decimal {
	return &ledgerv1.Decimal{Value: d.StringFixed(2)}
}

func timeFromProto(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}

	t := ts.AsTime()
	return &t
}
