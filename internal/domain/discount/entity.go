package discount

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type enum
type Type string

const (
	TypeMealConsumption Type = "meal_consumption"
	TypeAssumedLoss     Type = "assumed_loss"
	TypeLoan            Type = "loan"
	TypeAdvance         Type = "advance"
	TypeOther           Type = "other"
)

var ValidTypes = []string{
	string(TypeMealConsumption),
	string(TypeAssumedLoss),
	string(TypeLoan),
	string(TypeAdvance),
	string(TypeOther),
}

// Discount is one deduction charged to an employee. The stored value is
// always gross; the meal subsidy is applied only when the discount is
// consumed by a settlement or payment.
type Discount struct {
	ID           string
	EmployeeID   string
	Type         Type
	Detail       string
	Value        decimal.Decimal
	Date         time.Time
	Paid         bool
	SettlementID *string
	PaymentID    *string
	CreatedAt    time.Time

	// Joined fields
	EmployeeName *string
}

// AccountConsumption is a same-day consumption deliberately deferred instead
// of deducted; it is collected later by a daily payment.
type AccountConsumption struct {
	ID          string
	EmployeeID  string
	DiscountID  *string
	Value       decimal.Decimal
	Description string
	Paid        bool
	PaymentID   *string
	CreatedAt   time.Time
}

var hundred = decimal.NewFromInt(100)

// NetValue applies the employer meal subsidy. Only meal consumptions are
// subsidized; every other type is owed in full.
func NetValue(d Discount, subsidyPercent decimal.Decimal) decimal.Decimal {
	if d.Type != TypeMealConsumption {
		return d.Value
	}
	keep := decimal.NewFromInt(1).Sub(subsidyPercent.Div(hundred))
	return d.Value.Mul(keep)
}
