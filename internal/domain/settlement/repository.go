package settlement

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SettlementRepository defines data access for settlements and their details.
type SettlementRepository interface {
	// Settlements
	Create(ctx context.Context, s Settlement) (Settlement, error)
	GetByID(ctx context.Context, id string) (Settlement, error)
	List(ctx context.Context, status *Status, from, to *time.Time) ([]Settlement, error)
	Delete(ctx context.Context, id string) error

	// UpdateStatus transitions status only when the current status matches
	// expected. Returns rows affected so the caller can detect a lost race.
	UpdateStatus(ctx context.Context, id string, expected, next Status) (int64, error)

	// UpdateTotals rewrites the aggregate columns after a detail edit
	UpdateTotals(ctx context.Context, id string, gross, discounts, net decimal.Decimal) error

	// Details
	CreateDetail(ctx context.Context, d SettlementDetail) (SettlementDetail, error)
	GetDetailByID(ctx context.Context, id string) (SettlementDetail, error)
	ListDetails(ctx context.Context, settlementID string) ([]SettlementDetail, error)
	UpdateDetailAdjustment(ctx context.Context, id string, adjustment, netTotal decimal.Decimal, observations string) error
	DeleteDetails(ctx context.Context, settlementID string) error
}
