// internal/store/gorm_product_store.go
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/drivegear/autoparts-backend/internal/models"
)

type GormProductStore struct {
	db *gorm.DB
}

func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

// All loads the complete catalog; the query engine filters it in memory.
func (s *GormProductStore) All() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("product_number").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return products, nil
}

func (s *GormProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}
