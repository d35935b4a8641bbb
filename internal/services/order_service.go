// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/store"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	orders store.OrderRepository
}

func NewOrderService(orders store.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// History returns the user's orders, newest first.
func (s *OrderService) History(userID uuid.UUID) ([]models.Order, error) {
	orders, err := s.orders.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

// Get returns one order, refusing access to another user's order.
func (s *OrderService) Get(userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}

	return order, nil
}
