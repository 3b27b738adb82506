package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSource(t *testing.T) {
	settlementID := "b7a7e5e0-1111-4a2b-8a2b-000000000001"
	paymentID := "b7a7e5e0-2222-4a2b-8a2b-000000000002"

	t.Run("unpaid shift has no source", func(t *testing.T) {
		s := Shift{}
		assert.Equal(t, PaymentSource{Kind: SourceNone}, s.Source())
	})

	t.Run("settlement-paid shift", func(t *testing.T) {
		s := Shift{Paid: true, SettlementID: &settlementID}
		assert.Equal(t, PaymentSource{Kind: SourceSettlement, ID: settlementID}, s.Source())
	})

	t.Run("daily-payment-paid shift", func(t *testing.T) {
		s := Shift{Paid: true, PaymentID: &paymentID}
		assert.Equal(t, PaymentSource{Kind: SourcePayment, ID: paymentID}, s.Source())
	})
}

func TestIsOpen(t *testing.T) {
	end := time.Now()
	assert.True(t, Shift{}.IsOpen())
	assert.False(t, Shift{EndAt: &end}.IsOpen())
}
