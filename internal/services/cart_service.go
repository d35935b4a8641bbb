// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/store"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrOutOfStock   = errors.New("product is out of stock")
)

type CartService struct {
	carts    store.CartRepository
	products store.ProductRepository
}

// CartView is the cart plus its derived subtotal.
type CartView struct {
	Cart     *models.Cart `json:"cart"`
	Subtotal float64      `json:"subtotal"`
}

func NewCartService(carts store.CartRepository, products store.ProductRepository) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
	}
}

// CreateCart starts a cart, optionally bound to a user.
func (s *CartService) CreateCart(userID *uuid.UUID) (*models.Cart, error) {
	cart := &models.Cart{UserID: userID}
	if err := s.carts.Create(cart); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) GetCart(cartID uuid.UUID) (*CartView, error) {
	cart, err := s.carts.FindByID(cartID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &CartView{
		Cart:     cart,
		Subtotal: models.Subtotal(cart.Items),
	}, nil
}

// AddItem puts a product in the cart. Out-of-stock products are rejected;
// adding a product already in the cart increases its quantity.
func (s *CartService) AddItem(cartID, productID uuid.UUID, quantity int) (*CartView, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !product.InStock() {
		return nil, ErrOutOfStock
	}

	item := &models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.carts.AddItem(cartID, item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	return s.GetCart(cartID)
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the line.
func (s *CartService) UpdateQuantity(cartID, productID uuid.UUID, quantity int) (*CartView, error) {
	if err := s.carts.UpdateItemQuantity(cartID, productID, quantity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to update quantity: %w", err)
	}
	return s.GetCart(cartID)
}

func (s *CartService) RemoveItem(cartID, productID uuid.UUID) (*CartView, error) {
	if err := s.carts.RemoveItem(cartID, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to remove item: %w", err)
	}
	return s.GetCart(cartID)
}

func (s *CartService) Clear(cartID uuid.UUID) error {
	if err := s.carts.Clear(cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
