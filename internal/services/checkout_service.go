// internal/services/checkout_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/drivegear/autoparts-backend/internal/checkout"
	"github.com/drivegear/autoparts-backend/internal/events"
	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/store"
)

var (
	ErrEmptyCart       = errors.New("cannot start checkout with an empty cart")
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrNotReady        = errors.New("checkout is not ready to place an order")
)

// CheckoutService owns the in-flight checkout sessions. Each session wraps
// a step sequencer plus the cart it was started from; sessions live in
// memory and expire with the process.
type CheckoutService struct {
	carts        store.CartRepository
	orders       store.OrderRepository
	users        store.UserRepository
	payments     *PaymentService
	storage      *StorageService
	notification *NotificationService
	publisher    *events.Publisher
	logger       *logrus.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*checkoutSession
}

// checkoutSession pairs a sequencer with its cart. The sequencer itself is
// not thread-safe; mu serializes all step calls for one session so that
// concurrent requests on the same session id cannot race.
type checkoutSession struct {
	mu        sync.Mutex
	sequencer *checkout.Sequencer
	cartID    uuid.UUID
	userID    *uuid.UUID
}

// SessionView is the session state returned after every checkout call.
type SessionView struct {
	ID           uuid.UUID       `json:"id"`
	CurrentStep  checkout.Step   `json:"current_step"`
	VisibleSteps []checkout.Step `json:"visible_steps"`
	StepPosition int             `json:"step_position"`
	StepCount    int             `json:"step_count"`
	Draft        checkout.Draft  `json:"draft"`
	Subtotal     float64         `json:"subtotal"`
	Total        float64         `json:"total"`
}

// PlaceOrderResult reports the outcome of order placement. Persisted is
// false for guest checkouts: the order confirmation is the guest's only
// record of the purchase.
type PlaceOrderResult struct {
	Order         *models.Order          `json:"order"`
	Persisted     bool                   `json:"persisted"`
	PaymentIntent *PaymentIntentResponse `json:"payment_intent,omitempty"`
}

func NewCheckoutService(
	carts store.CartRepository,
	orders store.OrderRepository,
	users store.UserRepository,
	payments *PaymentService,
	storage *StorageService,
	notification *NotificationService,
	publisher *events.Publisher,
	logger *logrus.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:        carts,
		orders:       orders,
		users:        users,
		payments:     payments,
		storage:      storage,
		notification: notification,
		publisher:    publisher,
		logger:       logger,
		sessions:     make(map[uuid.UUID]*checkoutSession),
	}
}

// Start opens a checkout session for the given cart. An empty cart cannot
// enter checkout.
func (s *CheckoutService) Start(cartID uuid.UUID, userID *uuid.UUID) (uuid.UUID, *SessionView, error) {
	cart, err := s.carts.FindByID(cartID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return uuid.Nil, nil, ErrCartNotFound
		}
		return uuid.Nil, nil, fmt.Errorf("database error: %w", err)
	}

	if len(cart.Items) == 0 {
		return uuid.Nil, nil, ErrEmptyCart
	}

	session := &checkoutSession{
		sequencer: checkout.NewSequencer(userID != nil),
		cartID:    cartID,
		userID:    userID,
	}

	sessionID := uuid.New()
	s.mu.Lock()
	s.sessions[sessionID] = session
	s.mu.Unlock()

	session.mu.Lock()
	defer session.mu.Unlock()
	view, err := s.view(sessionID, session)
	return sessionID, view, err
}

func (s *CheckoutService) Get(sessionID uuid.UUID) (*SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return s.view(sessionID, session)
}

// CompleteAuth resolves the auth step for a guest. Authenticated buyers
// never see this step.
func (s *CheckoutService) CompleteAuth(sessionID uuid.UUID, guest bool) (*SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if err := session.sequencer.CompleteAuth(guest); err != nil {
		return nil, err
	}
	return s.view(sessionID, session)
}

func (s *CheckoutService) SubmitAddress(sessionID uuid.UUID, addr checkout.Address) (*SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if err := session.sequencer.CompleteAddress(addr); err != nil {
		return nil, err
	}
	return s.view(sessionID, session)
}

func (s *CheckoutService) SelectDelivery(sessionID uuid.UUID, optionID string) (*SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if err := session.sequencer.CompleteDelivery(optionID); err != nil {
		return nil, err
	}
	return s.view(sessionID, session)
}

func (s *CheckoutService) SelectPayment(sessionID uuid.UUID, methodID string, card *checkout.CardDetails) (*SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if err := session.sequencer.CompletePayment(methodID, card); err != nil {
		return nil, err
	}
	return s.view(sessionID, session)
}

// Back steps backwards. Stepping back out of checkout ends the session.
func (s *CheckoutService) Back(sessionID uuid.UUID) (*SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := session.sequencer.Back(); err != nil {
		if errors.Is(err, checkout.ErrCheckoutExited) {
			s.mu.Lock()
			delete(s.sessions, sessionID)
			s.mu.Unlock()
		}
		return nil, err
	}

	return s.view(sessionID, session)
}

// Cancel abandons the session without placing an order.
func (s *CheckoutService) Cancel(sessionID uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// PlaceOrder commits the checkout: it builds the order from the cart and
// the draft, charges card payments through Stripe when configured, persists
// the order for authenticated buyers only, clears the cart and retires the
// session. Guest orders are returned but never stored.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID uuid.UUID) (*PlaceOrderResult, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	seq := session.sequencer
	if !seq.ReadyToPlace() {
		return nil, ErrNotReady
	}

	cart, err := s.carts.FindByID(session.cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	draft := seq.Draft()
	subtotal := models.Subtotal(cart.Items)
	total := seq.OrderTotal(subtotal)

	order := &models.Order{
		Total:             total,
		Status:            models.OrderStatusPending,
		OrderDate:         time.Now(),
		DeliveryFirstName: draft.DeliveryAddress.FirstName,
		DeliveryLastName:  draft.DeliveryAddress.LastName,
		DeliveryStreet:    draft.DeliveryAddress.Street,
		DeliveryCity:      draft.DeliveryAddress.City,
		DeliveryPostal:    draft.DeliveryAddress.Postal,
		DeliveryCountry:   draft.DeliveryAddress.Country,
		DeliveryPhone:     draft.DeliveryAddress.Phone,
		DeliveryOption:    draft.DeliveryOption.Name,
		DeliveryPrice:     draft.DeliveryOption.Price,
		EstimatedDelivery: draft.DeliveryOption.EstimatedDays,
		PaymentMethod:     draft.PaymentMethod.Name,
		PaymentType:       models.PaymentType(draft.PaymentMethod.Type),
	}
	order.ID = uuid.New()

	for _, item := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
			Image:       item.Product.Image,
		})
	}

	var paymentIntent *PaymentIntentResponse
	if draft.PaymentMethod.Type == checkout.TypeCard && s.payments.Enabled() {
		paymentIntent, err = s.payments.CreateCardPayment(total, order.ID.String())
		if err != nil {
			return nil, fmt.Errorf("payment failed: %w", err)
		}
		order.PaymentReference = paymentIntent.PaymentID
	}

	persisted := false
	if session.userID != nil {
		order.UserID = *session.userID
		if err := s.orders.Create(order); err != nil {
			return nil, fmt.Errorf("failed to save order: %w", err)
		}
		persisted = true
	}

	if err := s.carts.Clear(session.cartID); err != nil {
		s.logger.WithError(err).WithField("cart_id", session.cartID).Error("Failed to clear cart after order")
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	s.publisher.PublishOrderPlaced(ctx, events.OrderPlaced{
		OrderID:     order.ID.String(),
		UserID:      userIDString(session.userID),
		Total:       order.Total,
		ItemCount:   len(order.Items),
		PaymentType: draft.PaymentMethod.Type,
		PlacedAt:    order.OrderDate,
	})

	go s.archiveAndNotify(session.userID, order)

	return &PlaceOrderResult{
		Order:         order,
		Persisted:     persisted,
		PaymentIntent: paymentIntent,
	}, nil
}

func (s *CheckoutService) DeliveryOptions() []checkout.DeliveryOption {
	return checkout.DeliveryOptions()
}

func (s *CheckoutService) PaymentMethods() []checkout.PaymentMethod {
	return checkout.PaymentMethods()
}

func (s *CheckoutService) session(sessionID uuid.UUID) (*checkoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *CheckoutService) view(sessionID uuid.UUID, session *checkoutSession) (*SessionView, error) {
	cart, err := s.carts.FindByID(session.cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	seq := session.sequencer
	subtotal := models.Subtotal(cart.Items)
	position, count := seq.Progress()

	return &SessionView{
		ID:           sessionID,
		CurrentStep:  seq.Current(),
		VisibleSteps: seq.VisibleSteps(),
		StepPosition: position,
		StepCount:    count,
		Draft:        seq.Draft(),
		Subtotal:     subtotal,
		Total:        seq.OrderTotal(subtotal),
	}, nil
}

func (s *CheckoutService) archiveAndNotify(userID *uuid.UUID, order *models.Order) {
	// Guest orders leave no server-side record, receipts included.
	if userID == nil {
		return
	}

	if _, err := s.storage.UploadOrderReceipt(order); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Error("Failed to archive order receipt")
	}

	user, err := s.users.FindByID(*userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", *userID).Error("Failed to load user for order confirmation")
		return
	}
	if err := s.notification.SendOrderConfirmationEmail(user.Email, user.FirstName, order); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Error("Failed to send order confirmation")
	}
}

func userIDString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
