// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/store/mocks"
)

func newCartFixture(t *testing.T) (*CartService, uuid.UUID, []models.Product) {
	t.Helper()

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
			Stock:     models.StockLowStock,
		},
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      "LED Headlight",
			Price:     423.75,
			Stock:     models.StockOutOfStock,
		},
	}

	productStore := &mocks.MemoryProductStore{Products: products}
	cartStore := mocks.NewMemoryCartStore()
	cartStore.Products = productStore

	svc := NewCartService(cartStore, productStore)
	cart, err := svc.CreateCart(nil)
	require.NoError(t, err)

	return svc, cart.ID, products
}

func TestCartAddAndSubtotal(t *testing.T) {
	svc, cartID, products := newCartFixture(t)

	_, err := svc.AddItem(cartID, products[0].ID, 2)
	require.NoError(t, err)

	view, err := svc.AddItem(cartID, products[1].ID, 1)
	require.NoError(t, err)

	assert.Len(t, view.Cart.Items, 2)
	assert.InDelta(t, 45.00, view.Subtotal, 0.0001)
}

func TestCartAddMergesExistingLine(t *testing.T) {
	svc, cartID, products := newCartFixture(t)

	_, err := svc.AddItem(cartID, products[0].ID, 1)
	require.NoError(t, err)
	view, err := svc.AddItem(cartID, products[0].ID, 2)
	require.NoError(t, err)

	require.Len(t, view.Cart.Items, 1)
	assert.Equal(t, 3, view.Cart.Items[0].Quantity)
}

func TestCartRejectsOutOfStock(t *testing.T) {
	svc, cartID, products := newCartFixture(t)

	_, err := svc.AddItem(cartID, products[2].ID, 1)
	assert.ErrorIs(t, err, ErrOutOfStock)

	view, err := svc.GetCart(cartID)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Items)
}

func TestCartUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc, cartID, products := newCartFixture(t)

	_, err := svc.AddItem(cartID, products[0].ID, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(cartID, products[1].ID, 1)
	require.NoError(t, err)

	view, err := svc.UpdateQuantity(cartID, products[0].ID, 0)
	require.NoError(t, err)

	require.Len(t, view.Cart.Items, 1)
	assert.Equal(t, products[1].ID, view.Cart.Items[0].ProductID)
	assert.InDelta(t, 5.00, view.Subtotal, 0.0001)
}

func TestCartUpdateQuantityNegativeRemovesLine(t *testing.T) {
	svc, cartID, products := newCartFixture(t)

	_, err := svc.AddItem(cartID, products[0].ID, 1)
	require.NoError(t, err)

	view, err := svc.UpdateQuantity(cartID, products[0].ID, -3)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Items)
}

func TestCartClear(t *testing.T) {
	svc, cartID, products := newCartFixture(t)

	_, err := svc.AddItem(cartID, products[0].ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(cartID))

	view, err := svc.GetCart(cartID)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Items)
	assert.Zero(t, view.Subtotal)
}

func TestCartUnknownProduct(t *testing.T) {
	svc, cartID, _ := newCartFixture(t)

	_, err := svc.AddItem(cartID, uuid.New(), 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
