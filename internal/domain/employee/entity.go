package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is owned by the staff administration system; the payroll core
// reads it and never mutates it.
type Employee struct {
	ID        string
	FullName  string
	Document  string
	Site      string
	RoleLabel string
	DailyWage decimal.Decimal
	Active    bool
	CreatedAt time.Time
}
