// internal/store/interfaces.go

// Package store defines the persistence contracts consumed by the service
// layer, with gorm-backed implementations. Core logic depends only on these
// interfaces so a different backend can swap in without touching it.
package store

import (
	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

type ProductRepository interface {
	All() ([]models.Product, error)
	FindByID(id uuid.UUID) (*models.Product, error)
}

type OrderRepository interface {
	Create(order *models.Order) error
	FindByUser(userID uuid.UUID) ([]models.Order, error)
	FindByID(id uuid.UUID) (*models.Order, error)
}

type CartRepository interface {
	Create(cart *models.Cart) error
	FindByID(id uuid.UUID) (*models.Cart, error)
	AddItem(cartID uuid.UUID, item *models.CartItem) error
	UpdateItemQuantity(cartID, productID uuid.UUID, quantity int) error
	RemoveItem(cartID, productID uuid.UUID) error
	Clear(cartID uuid.UUID) error
}

type WishlistRepository interface {
	List(userID uuid.UUID) ([]models.WishlistItem, error)
	Add(userID, productID uuid.UUID) error
	Remove(userID, productID uuid.UUID) error
	Contains(userID, productID uuid.UUID) (bool, error)
}

type ContactRepository interface {
	Create(message *models.ContactMessage) error
}
