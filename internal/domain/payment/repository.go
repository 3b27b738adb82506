package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRepository defines data access for daily payments.
type PaymentRepository interface {
	Create(ctx context.Context, p DailyPayment) (DailyPayment, error)
	GetByID(ctx context.Context, id string) (DailyPayment, error)
	ListByDate(ctx context.Context, dayStart, dayEnd time.Time) ([]DailyPayment, error)

	// UpdateNetTotal overwrites the net total and observations; nothing is
	// recomputed from components.
	UpdateNetTotal(ctx context.Context, id string, netTotal decimal.Decimal, observations string) error

	Delete(ctx context.Context, id string) error
}
