package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	NotificationCommissionCreated   = "commission_created"
	NotificationCommissionProcessed = "commission_processed"
	NotificationCommissionFailed    = "commission_failed"
)

type Notification struct {
	CreatedAt      time.Time
	NotificationID uuid.UUID
	UserID         uuid.UUID
	Title          string
	Message        string
	Type           string
}

func CreatedNotification(c Commission) Notification {
	return Notification{
		UserID:  c.RecipientUserID,
		Title:   "New commission",
		Message: fmt.Sprintf("You earned a %s commission of %s: %s", typeLabel(c.Type), c.Amount.StringFixed(2), c.Description),
		Type:    NotificationCommissionCreated,
	}
}

func ProcessedNotification(c Commission) Notification {
	return Notification{
		UserID:  c.RecipientUserID,
		Title:   "Commission processed",
		Message: fmt.Sprintf("Your %s commission of %s was added to your balance", typeLabel(c.Type), c.Amount.StringFixed(2)),
		Type:    NotificationCommissionProcessed,
	}
}

func FailedNotification(c Commission) Notification {
	return Notification{
		UserID:  c.RecipientUserID,
		Title:   "Commission failed",
		Message: fmt.Sprintf("Your %s commission of %s could not be processed", typeLabel(c.Type), c.Amount.StringFixed(2)),
		Type:    NotificationCommissionFailed,
	}
}

func typeLabel(t Type) string {
	switch t {
	case TypeDirect:
		return "direct"
	case TypeMatching:
		return "matching"
	case TypeLevel:
		return "level"
	default:
		return "unknown"
	}
}
