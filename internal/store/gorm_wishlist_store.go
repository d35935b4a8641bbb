// internal/store/gorm_wishlist_store.go
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/drivegear/autoparts-backend/internal/models"
)

type GormWishlistStore struct {
	db *gorm.DB
}

func NewGormWishlistStore(db *gorm.DB) *GormWishlistStore {
	return &GormWishlistStore{db: db}
}

func (s *GormWishlistStore) List(userID uuid.UUID) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := s.db.Where("user_id = ?", userID).
		Preload("Product").
		Order("created_at").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	return items, nil
}

// Add is idempotent: adding a product already on the wishlist is a no-op.
func (s *GormWishlistStore) Add(userID, productID uuid.UUID) error {
	exists, err := s.Contains(userID, productID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	item := &models.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return nil
}

func (s *GormWishlistStore) Remove(userID, productID uuid.UUID) error {
	if err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error; err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}
	return nil
}

func (s *GormWishlistStore) Contains(userID, productID uuid.UUID) (bool, error) {
	var item models.WishlistItem
	err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("database error: %w", err)
}
