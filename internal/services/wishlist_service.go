// internal/services/wishlist_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/store"
)

type WishlistService struct {
	wishlist store.WishlistRepository
	products store.ProductRepository
}

func NewWishlistService(wishlist store.WishlistRepository, products store.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlist: wishlist,
		products: products,
	}
}

func (s *WishlistService) List(userID uuid.UUID) ([]models.WishlistItem, error) {
	items, err := s.wishlist.List(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}
	return items, nil
}

// Add saves a product to the wishlist. Re-adding a saved product is a no-op.
func (s *WishlistService) Add(userID, productID uuid.UUID) error {
	if _, err := s.products.FindByID(productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	return s.wishlist.Add(userID, productID)
}

func (s *WishlistService) Remove(userID, productID uuid.UUID) error {
	return s.wishlist.Remove(userID, productID)
}

func (s *WishlistService) Contains(userID, productID uuid.UUID) (bool, error) {
	return s.wishlist.Contains(userID, productID)
}
