package discount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNetValue(t *testing.T) {
	meal := Discount{
		Type:  TypeMealConsumption,
		Value: decimal.NewFromInt(50000),
	}

	t.Run("meal consumption is subsidized", func(t *testing.T) {
		got := NetValue(meal, decimal.NewFromInt(10))
		assert.True(t, got.Equal(decimal.NewFromInt(45000)), "got %s", got)
	})

	t.Run("zero subsidy deducts in full", func(t *testing.T) {
		got := NetValue(meal, decimal.Zero)
		assert.True(t, got.Equal(decimal.NewFromInt(50000)), "got %s", got)
	})

	t.Run("other types are never subsidized", func(t *testing.T) {
		loan := Discount{Type: TypeLoan, Value: decimal.NewFromInt(30000)}
		got := NetValue(loan, decimal.NewFromInt(10))
		assert.True(t, got.Equal(decimal.NewFromInt(30000)), "got %s", got)
	})
}
