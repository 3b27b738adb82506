package payconfig

import (
	"time"

	"github.com/shopspring/decimal"
)

// Setting is one named numeric knob of the payroll engine.
type Setting struct {
	ID        string
	Name      string
	Value     decimal.Decimal
	Active    bool
	UpdatedAt time.Time
}

// KeyMealSubsidyPercent is the share of a meal consumption the employer
// absorbs instead of deducting it from the employee.
const KeyMealSubsidyPercent = "meal_subsidy_percent"

// Defaults apply when a setting has never been stored.
var Defaults = map[string]decimal.Decimal{
	KeyMealSubsidyPercent: decimal.NewFromInt(10),
}
