package discount

import (
	"context"
)

// DiscountService defines business logic for the discount and consumption
// ledger.
type DiscountService interface {
	// Add records a discount at its gross value
	Add(ctx context.Context, req AddDiscountRequest) (DiscountResponse, error)

	// Delete removes an unprocessed discount
	Delete(ctx context.Context, id string) error

	// DeferToAccount moves a same-day consumption to the employee's account
	// instead of deducting it; the originating discount is marked processed
	// without any payment link.
	DeferToAccount(ctx context.Context, req DeferToAccountRequest) (ConsumptionResponse, error)

	// ListUnpaid retrieves settlement-eligible discounts
	ListUnpaid(ctx context.Context, filter DiscountFilter) ([]DiscountResponse, error)

	// AccountBalance retrieves an employee's outstanding on-account total
	AccountBalance(ctx context.Context, employeeID string) (AccountBalanceResponse, error)
}
