// internal/services/comparison_service.go
package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/store"
)

// MaxComparisonProducts caps the side-by-side comparison table.
const MaxComparisonProducts = 4

// ComparisonService keeps per-session comparison selections in memory.
// Selections are throwaway UI state and are never persisted.
type ComparisonService struct {
	products store.ProductRepository

	mu       sync.Mutex
	sessions map[string][]uuid.UUID
}

func NewComparisonService(products store.ProductRepository) *ComparisonService {
	return &ComparisonService{
		products: products,
		sessions: make(map[string][]uuid.UUID),
	}
}

// Add puts a product into the session's comparison set. Adding a duplicate
// or a fifth product leaves the set unchanged; neither is an error.
func (s *ComparisonService) Add(sessionID string, productID uuid.UUID) ([]models.Product, error) {
	if _, err := s.products.FindByID(productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	s.mu.Lock()
	selection := s.sessions[sessionID]
	if len(selection) < MaxComparisonProducts && !contains(selection, productID) {
		s.sessions[sessionID] = append(selection, productID)
	}
	s.mu.Unlock()

	return s.List(sessionID)
}

// Remove drops a product from the set; removing an absent product is a no-op.
func (s *ComparisonService) Remove(sessionID string, productID uuid.UUID) ([]models.Product, error) {
	s.mu.Lock()
	selection := s.sessions[sessionID]
	for i, id := range selection {
		if id == productID {
			s.sessions[sessionID] = append(selection[:i], selection[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return s.List(sessionID)
}

func (s *ComparisonService) Clear(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// List resolves the session's selection to products, in insertion order.
// Products deleted from the catalog since selection are skipped.
func (s *ComparisonService) List(sessionID string) ([]models.Product, error) {
	s.mu.Lock()
	selection := append([]uuid.UUID(nil), s.sessions[sessionID]...)
	s.mu.Unlock()

	result := make([]models.Product, 0, len(selection))
	for _, id := range selection {
		product, err := s.products.FindByID(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		result = append(result, *product)
	}
	return result, nil
}

func contains(ids []uuid.UUID, id uuid.UUID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
