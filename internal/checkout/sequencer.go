// internal/checkout/sequencer.go

// Package checkout implements the multi-step checkout flow as an explicit
// finite-state machine. Steps advance forward only on valid completion of
// the current step; illegal transitions are rejected with typed errors.
package checkout

import (
	"errors"
	"fmt"
	"strings"
)

type Step string

const (
	StepAuth         Step = "auth"
	StepAddress      Step = "address"
	StepDelivery     Step = "delivery"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

var (
	ErrWrongStep          = errors.New("operation not valid for current step")
	ErrMissingField       = errors.New("required field missing")
	ErrNoDeliveryOption   = errors.New("no delivery option selected")
	ErrUnknownOption      = errors.New("unknown delivery option")
	ErrNoPaymentMethod    = errors.New("no payment method selected")
	ErrUnknownMethod      = errors.New("unknown payment method")
	ErrMissingCardDetails = errors.New("card details incomplete")
	ErrCheckoutExited     = errors.New("checkout exited")
)

// forward maps each step to its successor. confirmation is terminal.
var forward = map[Step]Step{
	StepAuth:     StepAddress,
	StepAddress:  StepDelivery,
	StepDelivery: StepPayment,
	StepPayment:  StepConfirmation,
}

// backward maps each step to its predecessor within the canonical sequence.
var backward = map[Step]Step{
	StepAddress:      StepAuth,
	StepDelivery:     StepAddress,
	StepPayment:      StepDelivery,
	StepConfirmation: StepPayment,
}

// Address is the delivery address collected at the address step. All fields
// are required non-empty; no format validation is applied here (the contact
// form's phone rule is a separately specified validation).
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Postal    string `json:"postal"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// CardDetails are checked for presence only when the selected payment
// method is a card; no Luhn or expiry validation is performed.
type CardDetails struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// Draft accumulates the buyer's selections across steps. Fields are
// populated strictly in step order.
type Draft struct {
	DeliveryAddress *Address        `json:"delivery_address,omitempty"`
	DeliveryOption  *DeliveryOption `json:"delivery_option,omitempty"`
	PaymentMethod   *PaymentMethod  `json:"payment_method,omitempty"`
	IsGuest         bool            `json:"is_guest"`
}

// Sequencer walks a buyer through the checkout steps, accumulating a Draft.
// It is not safe for concurrent use; the owner serializes access per
// checkout session.
type Sequencer struct {
	current       Step
	authenticated bool
	draft         Draft
}

// NewSequencer starts a checkout. An authenticated buyer skips straight to
// the address step; anyone else begins at auth.
func NewSequencer(authenticated bool) *Sequencer {
	current := StepAuth
	if authenticated {
		current = StepAddress
	}
	return &Sequencer{current: current, authenticated: authenticated}
}

func (s *Sequencer) Current() Step  { return s.current }
func (s *Sequencer) Draft() Draft   { return s.draft }
func (s *Sequencer) IsGuest() bool  { return s.draft.IsGuest }
func (s *Sequencer) Authenticated() bool { return s.authenticated }

// VisibleSteps lists the steps the buyer will actually see: the auth step
// disappears from the progress indicator once the buyer is authenticated or
// has chosen guest mode.
func (s *Sequencer) VisibleSteps() []Step {
	steps := []Step{StepAuth, StepAddress, StepDelivery, StepPayment, StepConfirmation}
	if s.authenticated || s.draft.IsGuest {
		return steps[1:]
	}
	return steps
}

// Progress reports the 1-based position of the current step within the
// visible steps, and the count of visible steps.
func (s *Sequencer) Progress() (position, total int) {
	visible := s.VisibleSteps()
	for i, step := range visible {
		if step == s.current {
			return i + 1, len(visible)
		}
	}
	return 0, len(visible)
}

// CompleteAuth resolves the auth step: guest continue, or a successful
// login/register (the caller performs the actual authentication and reports
// the outcome here). Login/register failures never reach this method; the
// buyer stays on the auth step.
func (s *Sequencer) CompleteAuth(guest bool) error {
	if s.current != StepAuth {
		return fmt.Errorf("%w: %s", ErrWrongStep, s.current)
	}
	s.draft.IsGuest = guest
	if !guest {
		s.authenticated = true
	}
	s.current = forward[StepAuth]
	return nil
}

// CompleteAddress validates and records the delivery address. Every field
// is required non-empty.
func (s *Sequencer) CompleteAddress(addr Address) error {
	if s.current != StepAddress {
		return fmt.Errorf("%w: %s", ErrWrongStep, s.current)
	}

	required := map[string]string{
		"first_name": addr.FirstName,
		"last_name":  addr.LastName,
		"street":     addr.Street,
		"city":       addr.City,
		"postal":     addr.Postal,
		"country":    addr.Country,
		"phone":      addr.Phone,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	s.draft.DeliveryAddress = &addr
	s.current = forward[StepAddress]
	return nil
}

// CompleteDelivery records the selected delivery option. Exactly one option
// must be selected; there is no default.
func (s *Sequencer) CompleteDelivery(optionID string) error {
	if s.current != StepDelivery {
		return fmt.Errorf("%w: %s", ErrWrongStep, s.current)
	}
	if optionID == "" {
		return ErrNoDeliveryOption
	}

	option, ok := DeliveryOptionByID(optionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, optionID)
	}

	s.draft.DeliveryOption = &option
	s.current = forward[StepDelivery]
	return nil
}

// CompletePayment records the selected payment method. Card payments
// additionally require all four card fields to be present.
func (s *Sequencer) CompletePayment(methodID string, card *CardDetails) error {
	if s.current != StepPayment {
		return fmt.Errorf("%w: %s", ErrWrongStep, s.current)
	}
	if methodID == "" {
		return ErrNoPaymentMethod
	}

	method, ok := PaymentMethodByID(methodID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMethod, methodID)
	}

	if method.Type == TypeCard {
		if card == nil ||
			strings.TrimSpace(card.Name) == "" ||
			strings.TrimSpace(card.Number) == "" ||
			strings.TrimSpace(card.Expiry) == "" ||
			strings.TrimSpace(card.CVV) == "" {
			return ErrMissingCardDetails
		}
	}

	s.draft.PaymentMethod = &method
	s.current = forward[StepPayment]
	return nil
}

// Back returns to the immediately preceding step. From auth it exits
// checkout entirely; from address it also exits when the buyer is
// authenticated, since the auth step was never shown. Exiting is reported
// as ErrCheckoutExited so the owner can tear the session down.
func (s *Sequencer) Back() error {
	switch s.current {
	case StepAuth:
		return ErrCheckoutExited
	case StepAddress:
		if s.authenticated {
			return ErrCheckoutExited
		}
		s.current = backward[StepAddress]
		return nil
	default:
		s.current = backward[s.current]
		return nil
	}
}

// OrderTotal is the committed total: cart subtotal plus the selected
// delivery price. No tax, no discount codes.
func (s *Sequencer) OrderTotal(cartSubtotal float64) float64 {
	total := cartSubtotal
	if s.draft.DeliveryOption != nil {
		total += s.draft.DeliveryOption.Price
	}
	return total
}

// ReadyToPlace reports whether the sequencer has reached confirmation with
// a complete draft.
func (s *Sequencer) ReadyToPlace() bool {
	return s.current == StepConfirmation &&
		s.draft.DeliveryAddress != nil &&
		s.draft.DeliveryOption != nil &&
		s.draft.PaymentMethod != nil
}
