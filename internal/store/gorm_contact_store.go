// internal/store/gorm_contact_store.go
package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/drivegear/autoparts-backend/internal/models"
)

type GormContactStore struct {
	db *gorm.DB
}

func NewGormContactStore(db *gorm.DB) *GormContactStore {
	return &GormContactStore{db: db}
}

func (s *GormContactStore) Create(message *models.ContactMessage) error {
	if err := s.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}
