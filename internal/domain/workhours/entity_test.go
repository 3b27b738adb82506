package workhours

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHoursBetween(t *testing.T) {
	start := time.Date(2024, 3, 11, 7, 0, 0, 0, time.UTC)

	t.Run("whole hours", func(t *testing.T) {
		end := start.Add(8 * time.Hour)
		assert.True(t, HoursBetween(start, end).Equal(decimal.NewFromInt(8)))
	})

	t.Run("fractional hours", func(t *testing.T) {
		end := start.Add(10*time.Hour + 30*time.Minute)
		assert.True(t, HoursBetween(start, end).Equal(decimal.RequireFromString("10.5")))
	})
}

func TestOvertimeHours(t *testing.T) {
	cases := []struct {
		name   string
		worked string
		want   string
	}{
		{"below threshold", "6", "0"},
		{"exactly threshold", "8", "0"},
		{"above threshold", "10.5", "2.5"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := OvertimeHours(decimal.RequireFromString(c.worked))
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"OvertimeHours(%s) = %s, want %s", c.worked, got, c.want)
		})
	}
}

func TestOvertimeValue(t *testing.T) {
	wage := decimal.NewFromInt(100000)

	// 2.5 overtime hours at wage/8 per hour with the 1.25 premium.
	got := OvertimeValue(decimal.RequireFromString("2.5"), wage)
	assert.True(t, got.Equal(decimal.RequireFromString("39062.5")),
		"OvertimeValue = %s, want 39062.5", got)

	assert.True(t, OvertimeValue(decimal.Zero, wage).IsZero())
}

func TestHourlyRate(t *testing.T) {
	got := HourlyRate(decimal.NewFromInt(100000))
	assert.True(t, got.Equal(decimal.NewFromInt(12500)))
}
