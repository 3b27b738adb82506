package payconfig

import (
	"context"

	"github.com/shopspring/decimal"
)

// ConfigService exposes named numeric settings with defaults.
type ConfigService interface {
	// Get returns the stored value, or the registered default when the
	// setting was never written.
	Get(ctx context.Context, name string) (decimal.Decimal, error)

	// Set upserts a setting
	Set(ctx context.Context, req SetConfigRequest) (SettingResponse, error)

	// List returns all stored settings
	List(ctx context.Context) ([]SettingResponse, error)
}
