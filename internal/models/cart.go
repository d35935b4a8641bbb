// internal/models/cart.go
package models

import (
	"github.com/google/uuid"
)

type Cart struct {
	BaseModel
	UserID *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`

	Items []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID"`
}

type CartItem struct {
	BaseModel
	CartID    uuid.UUID `json:"cart_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Subtotal returns the summed line totals of the given items.
func Subtotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}
