// internal/store/gorm_cart_store.go
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/drivegear/autoparts-backend/internal/models"
)

type GormCartStore struct {
	db *gorm.DB
}

func NewGormCartStore(db *gorm.DB) *GormCartStore {
	return &GormCartStore{db: db}
}

func (s *GormCartStore) Create(cart *models.Cart) error {
	if err := s.db.Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

func (s *GormCartStore) FindByID(id uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_items.created_at")
	}).Preload("Items.Product").First(&cart, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &cart, nil
}

func (s *GormCartStore) AddItem(cartID uuid.UUID, item *models.CartItem) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.Where("cart_id = ? AND product_id = ?", cartID, item.ProductID).
			First(&existing).Error
		if err == nil {
			existing.Quantity += item.Quantity
			return tx.Save(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("database error: %w", err)
		}

		item.CartID = cartID
		return tx.Create(item).Error
	})
}

func (s *GormCartStore) UpdateItemQuantity(cartID, productID uuid.UUID, quantity int) error {
	// Quantity zero or below removes the line entirely.
	if quantity <= 0 {
		return s.RemoveItem(cartID, productID)
	}
	result := s.db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return fmt.Errorf("failed to update quantity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormCartStore) RemoveItem(cartID, productID uuid.UUID) error {
	if err := s.db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	return nil
}

func (s *GormCartStore) Clear(cartID uuid.UUID) error {
	if err := s.db.Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
