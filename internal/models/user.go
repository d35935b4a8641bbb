// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	FirstName    string     `json:"first_name" gorm:"size:100;not null"`
	LastName     string     `json:"last_name" gorm:"size:100;not null"`
	Phone        string     `json:"phone,omitempty" gorm:"size:32"`
	Street       string     `json:"street,omitempty" gorm:"size:255"`
	City         string     `json:"city,omitempty" gorm:"size:100"`
	Postal       string     `json:"postal,omitempty" gorm:"size:20"`
	Country      string     `json:"country,omitempty" gorm:"size:100"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	LastLoginAt  *time.Time `json:"last_login_at"`

	// Relationships
	Orders        []Order        `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	WishlistItems []WishlistItem `json:"wishlist_items,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
