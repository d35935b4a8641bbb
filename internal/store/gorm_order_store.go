// internal/store/gorm_order_store.go
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/drivegear/autoparts-backend/internal/models"
)

type GormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) Create(order *models.Order) error {
	if err := s.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (s *GormOrderStore) FindByUser(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("user_id = ?", userID).
		Preload("Items").
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *GormOrderStore) FindByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}
