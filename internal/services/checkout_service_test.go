// internal/services/checkout_service_test.go
package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivegear/autoparts-backend/internal/checkout"
	"github.com/drivegear/autoparts-backend/internal/config"
	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/store/mocks"
)

type checkoutFixture struct {
	service  *CheckoutService
	carts    *mocks.MemoryCartStore
	orders   *mocks.MemoryOrderStore
	users    *mocks.MemoryUserStore
	products []models.Product
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	cfg := &config.Config{}
	logger := logrus.New()

	products := []models.Product{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      "Brake Pads",
			Price:     20.00,
			Stock:     models.StockInStock,
		},
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      "Oil Filter",
			Price:     5.00,
			Stock:     models.StockInStock,
		},
	}

	productStore := &mocks.MemoryProductStore{Products: products}
	cartStore := mocks.NewMemoryCartStore()
	cartStore.Products = productStore
	orderStore := &mocks.MemoryOrderStore{}
	userStore := mocks.NewMemoryUserStore()

	storage, err := NewStorageService(cfg, logger)
	require.NoError(t, err)

	service := NewCheckoutService(
		cartStore, orderStore, userStore,
		NewPaymentService(cfg), storage, NewNotificationService(cfg, logger),
		nil, logger,
	)

	return &checkoutFixture{
		service:  service,
		carts:    cartStore,
		orders:   orderStore,
		users:    userStore,
		products: products,
	}
}

// fillCart creates a cart with 2x brake pads and 1x oil filter (45.00).
func (f *checkoutFixture) fillCart(t *testing.T, userID *uuid.UUID) uuid.UUID {
	t.Helper()

	cart := &models.Cart{UserID: userID}
	require.NoError(t, f.carts.Create(cart))
	require.NoError(t, f.carts.AddItem(cart.ID, &models.CartItem{ProductID: f.products[0].ID, Quantity: 2}))
	require.NoError(t, f.carts.AddItem(cart.ID, &models.CartItem{ProductID: f.products[1].ID, Quantity: 1}))
	return cart.ID
}

func (f *checkoutFixture) createUser(t *testing.T) uuid.UUID {
	t.Helper()

	user := &models.User{
		Email:     "buyer@example.com",
		FirstName: "Jamie",
		LastName:  "Carter",
	}
	require.NoError(t, user.SetPassword("Sup3rSecret"))
	require.NoError(t, f.users.Create(user))
	return user.ID
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	cart := &models.Cart{}
	require.NoError(t, f.carts.Create(cart))

	_, _, err := f.service.Start(cart.ID, nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutAuthenticatedFlowPersistsOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	userID := f.createUser(t)
	cartID := f.fillCart(t, &userID)

	sessionID, view, err := f.service.Start(cartID, &userID)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepAddress, view.CurrentStep)
	assert.InDelta(t, 45.00, view.Subtotal, 0.0001)

	_, err = f.service.SubmitAddress(sessionID, checkout.Address{
		FirstName: "Jamie", LastName: "Carter", Street: "12 Mill Lane",
		City: "Leeds", Postal: "LS1 4AB", Country: "UK", Phone: "+447700900123",
	})
	require.NoError(t, err)

	view, err = f.service.SelectDelivery(sessionID, "uk-standard")
	require.NoError(t, err)
	assert.InDelta(t, 54.99, view.Total, 0.0001)

	_, err = f.service.SelectPayment(sessionID, "paypal", nil)
	require.NoError(t, err)

	result, err := f.service.PlaceOrder(context.Background(), sessionID)
	require.NoError(t, err)

	assert.True(t, result.Persisted)
	assert.InDelta(t, 54.99, result.Order.Total, 0.0001)
	assert.Equal(t, userID, result.Order.UserID)
	require.Len(t, result.Order.Items, 2)
	assert.Equal(t, "Brake Pads", result.Order.Items[0].ProductName)
	assert.Nil(t, result.PaymentIntent)

	// Order is in the store, cart is cleared, session is gone.
	require.Len(t, f.orders.Orders, 1)

	cart, err := f.carts.FindByID(cartID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = f.service.Get(sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCheckoutGuestOrderIsNotPersisted(t *testing.T) {
	f := newCheckoutFixture(t)
	cartID := f.fillCart(t, nil)

	sessionID, view, err := f.service.Start(cartID, nil)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepAuth, view.CurrentStep)

	_, err = f.service.CompleteAuth(sessionID, true)
	require.NoError(t, err)

	_, err = f.service.SubmitAddress(sessionID, checkout.Address{
		FirstName: "Sam", LastName: "Reed", Street: "8 Oak Road",
		City: "Bristol", Postal: "BS1 2CD", Country: "UK", Phone: "+447700900456",
	})
	require.NoError(t, err)

	_, err = f.service.SelectDelivery(sessionID, "customer-pickup")
	require.NoError(t, err)
	_, err = f.service.SelectPayment(sessionID, "google-pay", nil)
	require.NoError(t, err)

	result, err := f.service.PlaceOrder(context.Background(), sessionID)
	require.NoError(t, err)

	assert.False(t, result.Persisted)
	assert.InDelta(t, 45.00, result.Order.Total, 0.0001)
	assert.NotEqual(t, uuid.Nil, result.Order.ID)

	// Nothing in the order store: the confirmation is the guest's record.
	assert.Empty(t, f.orders.Orders)
}

func TestCheckoutPlaceOrderBeforeConfirmation(t *testing.T) {
	f := newCheckoutFixture(t)
	userID := f.createUser(t)
	cartID := f.fillCart(t, &userID)

	sessionID, _, err := f.service.Start(cartID, &userID)
	require.NoError(t, err)

	_, err = f.service.PlaceOrder(context.Background(), sessionID)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Empty(t, f.orders.Orders)
}

func TestCheckoutBackFromFirstStepEndsSession(t *testing.T) {
	f := newCheckoutFixture(t)
	userID := f.createUser(t)
	cartID := f.fillCart(t, &userID)

	sessionID, _, err := f.service.Start(cartID, &userID)
	require.NoError(t, err)

	_, err = f.service.Back(sessionID)
	assert.ErrorIs(t, err, checkout.ErrCheckoutExited)

	_, err = f.service.Get(sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCheckoutStepOrderEnforced(t *testing.T) {
	f := newCheckoutFixture(t)
	userID := f.createUser(t)
	cartID := f.fillCart(t, &userID)

	sessionID, _, err := f.service.Start(cartID, &userID)
	require.NoError(t, err)

	// Delivery before address is refused and the step does not move.
	_, err = f.service.SelectDelivery(sessionID, "uk-standard")
	assert.ErrorIs(t, err, checkout.ErrWrongStep)

	view, err := f.service.Get(sessionID)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepAddress, view.CurrentStep)
}

func TestCheckoutConcurrentStepCallsStaySerialized(t *testing.T) {
	f := newCheckoutFixture(t)
	userID := f.createUser(t)
	cartID := f.fillCart(t, &userID)

	sessionID, _, err := f.service.Start(cartID, &userID)
	require.NoError(t, err)

	addr := checkout.Address{
		FirstName: "Jamie", LastName: "Carter", Street: "12 Mill Lane",
		City: "Leeds", Postal: "LS1 4AB", Country: "UK", Phone: "+447700900123",
	}

	// Double-submit scenario: address and delivery calls race from two
	// clients on the same session. Rejections are expected; corruption of
	// the session state is not.
	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = f.service.SubmitAddress(sessionID, addr)
		}()
		go func() {
			defer wg.Done()
			_, _ = f.service.SelectDelivery(sessionID, "uk-standard")
		}()
	}
	wg.Wait()

	// Whatever the interleaving, the session ends in a coherent step with
	// every earlier step's draft data present.
	view, err := f.service.Get(sessionID)
	require.NoError(t, err)
	switch view.CurrentStep {
	case checkout.StepDelivery:
		require.NotNil(t, view.Draft.DeliveryAddress)
	case checkout.StepPayment:
		require.NotNil(t, view.Draft.DeliveryAddress)
		require.NotNil(t, view.Draft.DeliveryOption)
		assert.InDelta(t, 54.99, view.Total, 0.0001)
	default:
		t.Fatalf("session left in unexpected step %q", view.CurrentStep)
	}
}

func TestReceiptArchiveSkipsGuestOrders(t *testing.T) {
	cfg := &config.Config{}
	logger, hook := logrustest.NewNullLogger()

	users := mocks.NewMemoryUserStore()
	storage, err := NewStorageService(cfg, logger)
	require.NoError(t, err)

	svc := NewCheckoutService(
		mocks.NewMemoryCartStore(), &mocks.MemoryOrderStore{}, users,
		NewPaymentService(cfg), storage, NewNotificationService(cfg, logger),
		nil, logger,
	)

	order := &models.Order{Total: 54.99}
	order.ID = uuid.New()

	// Guest order: no receipt upload, no confirmation email, nothing logged.
	svc.archiveAndNotify(nil, order)
	assert.Empty(t, hook.Entries)

	user := &models.User{Email: "buyer@example.com", FirstName: "Jamie"}
	require.NoError(t, user.SetPassword("Sup3rSecret"))
	require.NoError(t, users.Create(user))

	// Authenticated order: the unconfigured storage and SMTP backends log
	// their skipped deliveries, which shows the pipeline ran.
	hook.Reset()
	svc.archiveAndNotify(&user.ID, order)
	require.NotEmpty(t, hook.Entries)
	assert.Contains(t, hook.Entries[0].Message, "Receipt upload skipped")
}
