// internal/services/payment_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drivegear/autoparts-backend/internal/config"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		cents  int64
	}{
		// 19.99*100 is 1998.999... in float64; plain truncation would
		// undercharge by a cent.
		{19.99, 1999},
		{54.99, 5499},
		{9.99, 999},
		{45.00, 4500},
		{0, 0},
		{1250.00, 125000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.cents, minorUnits(tt.amount), "amount %.2f", tt.amount)
	}
}

func TestPaymentServiceEnabled(t *testing.T) {
	cfg := &config.Config{}
	assert.False(t, NewPaymentService(cfg).Enabled())

	cfg.Payment.StripeSecretKey = "sk_test_123"
	assert.True(t, NewPaymentService(cfg).Enabled())
}
