package payment

import (
	"context"
)

// PaymentService defines business logic for same-day payments.
type PaymentService interface {
	// BuildPreview assembles the payable breakdown for an employee's
	// business day without writing anything.
	BuildPreview(ctx context.Context, req PreviewRequest) (PreviewResponse, error)

	// Pay settles an employee's closed shift for the business day. The
	// evidence precondition is checked before any write; on failure nothing
	// is mutated.
	Pay(ctx context.Context, req PayRequest) (PaymentResponse, error)

	// Delete reverses a payment: the shift and its overtime return to
	// unpaid, deducted discounts are released and collected consumptions
	// become outstanding again. Deferrals created by the payment remain.
	Delete(ctx context.Context, id string) error

	// Edit overwrites the net total and observations without recomputation.
	// Period settlement details recompute on edit; this path deliberately
	// does not, mirroring how the paper process worked.
	Edit(ctx context.Context, req EditPaymentRequest) (PaymentResponse, error)

	// GetPayment retrieves a payment by ID
	GetPayment(ctx context.Context, id string) (PaymentResponse, error)

	// ListByDate retrieves the payments of one business day
	ListByDate(ctx context.Context, date string) ([]PaymentResponse, error)
}
