package settlement

import (
	"context"
)

// SettlementService defines business logic for period settlements.
type SettlementService interface {
	// BuildPreview computes the per-employee settlement lines for a period.
	// Pure read; nothing is mutated.
	BuildPreview(ctx context.Context, req BuildPreviewRequest) (Preview, error)

	// Commit atomically persists a preview: settlement header, one detail
	// per employee, and every linked shift/overtime/discount marked paid.
	// Fails entirely when any linked record was consumed concurrently.
	Commit(ctx context.Context, req CommitRequest) (SettlementResponse, error)

	// MarkPaid transitions a pending settlement to paid, status only
	MarkPaid(ctx context.Context, id string) (SettlementResponse, error)

	// Void releases every linked record and marks the settlement voided
	Void(ctx context.Context, id string) (SettlementResponse, error)

	// Delete performs the void cascade and then removes the settlement
	Delete(ctx context.Context, id string) error

	// EditDetail replaces a detail's manual adjustment, recomputes its net
	// total and re-sums the parent settlement
	EditDetail(ctx context.Context, req EditDetailRequest) (DetailResponse, error)

	// GetSettlement retrieves a settlement with its details
	GetSettlement(ctx context.Context, id string) (SettlementResponse, error)

	// ListSettlements retrieves settlement history
	ListSettlements(ctx context.Context, filter SettlementFilter) ([]SettlementResponse, error)
}
