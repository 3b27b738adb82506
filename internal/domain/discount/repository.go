package discount

import (
	"context"
	"time"
)

// DiscountRepository defines data access for discounts and on-account
// consumptions.
type DiscountRepository interface {
	// Discounts
	Create(ctx context.Context, d Discount) (Discount, error)
	GetByID(ctx context.Context, id string) (Discount, error)
	Delete(ctx context.Context, id string) error
	ListUnpaid(ctx context.Context, from, to *time.Time, employeeIDs []string) ([]Discount, error)
	ListUnpaidByEmployeeOnDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) ([]Discount, error)

	// MarkPaidBySettlement marks discounts paid and linked, touching only
	// rows still unpaid. Returns rows affected.
	MarkPaidBySettlement(ctx context.Context, ids []string, settlementID string) (int64, error)

	// MarkPaidByPayment marks discounts deducted by a daily payment,
	// guarded the same way.
	MarkPaidByPayment(ctx context.Context, ids []string, paymentID string) (int64, error)

	// MarkDeferred flips a discount to paid with no payment link. This is
	// the single home of the deferred-consumption exception: the discount is
	// processed, not deducted, and its money moves to an AccountConsumption.
	MarkDeferred(ctx context.Context, id string) error

	// Release clears paid and payment references on discounts
	Release(ctx context.Context, ids []string) error

	// ReleaseByPayment releases every discount deducted by a payment
	ReleaseByPayment(ctx context.Context, paymentID string) error

	// Account consumptions
	CreateConsumption(ctx context.Context, c AccountConsumption) (AccountConsumption, error)
	GetConsumptionByID(ctx context.Context, id string) (AccountConsumption, error)
	ListUnpaidConsumptions(ctx context.Context, employeeID string) ([]AccountConsumption, error)

	// CollectConsumptions links consumptions to the payment that collects
	// them, touching only rows still unpaid. Returns rows affected.
	CollectConsumptions(ctx context.Context, ids []string, paymentID string) (int64, error)

	// ReleaseConsumptionsByPayment reverses collection on payment deletion
	ReleaseConsumptionsByPayment(ctx context.Context, paymentID string) error
}
