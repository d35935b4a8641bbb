// internal/services/payment_service.go
package services

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/drivegear/autoparts-backend/internal/config"
)

// PaymentService creates Stripe payment intents for card checkouts. E-wallet
// methods are recorded on the order but settled outside this service.
type PaymentService struct {
	config *config.Config
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	PaymentID    string `json:"payment_id"`
	Status       string `json:"status"`
}

func NewPaymentService(config *config.Config) *PaymentService {
	stripe.Key = config.Payment.StripeSecretKey

	return &PaymentService{config: config}
}

// Enabled reports whether a Stripe key is configured. When disabled, card
// orders are accepted without a payment reference.
func (s *PaymentService) Enabled() bool {
	return s.config.Payment.StripeSecretKey != ""
}

// minorUnits converts a decimal amount to Stripe's integer minor units.
// Rounded, not truncated: 19.99 is 1998.999... in float64 and truncation
// would undercharge by a cent.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (s *PaymentService) CreateCardPayment(amount float64, orderID string) (*PaymentIntentResponse, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minorUnits(amount)),
		Currency: stripe.String(s.config.Payment.Currency),
	}
	params.AddMetadata("order_id", orderID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntentResponse{
		ClientSecret: pi.ClientSecret,
		PaymentID:    pi.ID,
		Status:       string(pi.Status),
	}, nil
}
