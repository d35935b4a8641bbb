// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	UserID            uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	Total             float64     `json:"total" gorm:"type:decimal(10,2);not null"`
	Status            OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	OrderDate         time.Time   `json:"order_date"`
	DeliveryFirstName string      `json:"delivery_first_name" gorm:"size:100"`
	DeliveryLastName  string      `json:"delivery_last_name" gorm:"size:100"`
	DeliveryStreet    string      `json:"delivery_street" gorm:"size:255"`
	DeliveryCity      string      `json:"delivery_city" gorm:"size:100"`
	DeliveryPostal    string      `json:"delivery_postal" gorm:"size:20"`
	DeliveryCountry   string      `json:"delivery_country" gorm:"size:100"`
	DeliveryPhone     string      `json:"delivery_phone" gorm:"size:32"`
	DeliveryOption    string      `json:"delivery_option" gorm:"size:100"`
	DeliveryPrice     float64     `json:"delivery_price" gorm:"type:decimal(10,2)"`
	EstimatedDelivery string      `json:"estimated_delivery" gorm:"size:100"`
	PaymentMethod     string      `json:"payment_method" gorm:"size:100"`
	PaymentType       PaymentType `json:"payment_type" gorm:"type:varchar(20)"`
	PaymentReference  string      `json:"payment_reference,omitempty" gorm:"size:255"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	User  User        `json:"-" gorm:"foreignKey:UserID"`
}

// OrderItem snapshots a product at purchase time; later catalog edits must
// not rewrite order history.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	ProductName string    `json:"product_name" gorm:"size:255;not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Image       string    `json:"image" gorm:"size:512"`
}
