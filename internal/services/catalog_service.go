// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/catalog"
	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/store"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService serves product queries from an in-memory snapshot of the
// catalog. Filtering, sorting and paging run against the snapshot on every
// request; Reload refreshes it after catalog edits.
type CatalogService struct {
	products store.ProductRepository

	mu       sync.RWMutex
	snapshot []models.Product
}

// CatalogPage is a query result plus the page markers the storefront
// renders under the grid.
type CatalogPage struct {
	Items       []models.Product `json:"items"`
	TotalCount  int              `json:"total_count"`
	TotalPages  int              `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
	PageMarkers []string         `json:"page_markers"`
}

func NewCatalogService(products store.ProductRepository) (*CatalogService, error) {
	s := &CatalogService{products: products}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the snapshot with the current catalog contents.
func (s *CatalogService) Reload() error {
	all, err := s.products.All()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	s.mu.Lock()
	s.snapshot = all
	s.mu.Unlock()
	return nil
}

// Query runs the filter pipeline over the catalog snapshot.
func (s *CatalogService) Query(filters catalog.FilterState) CatalogPage {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	result := catalog.Query(snapshot, filters)

	return CatalogPage{
		Items:       result.Items,
		TotalCount:  result.TotalCount,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
		PageMarkers: catalog.PageNumbers(result.CurrentPage, result.TotalPages),
	}
}

func (s *CatalogService) ProductByID(id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return product, nil
}

// Categories lists the distinct categories in the snapshot, sorted.
func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var categories []string
	for i := range s.snapshot {
		c := s.snapshot[i].Category
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)
	return categories
}

// Brands lists the distinct brands in the snapshot, sorted.
func (s *CatalogService) Brands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var brands []string
	for i := range s.snapshot {
		b := s.snapshot[i].Brand
		if _, ok := seen[b]; !ok {
			seen[b] = struct{}{}
			brands = append(brands, b)
		}
	}
	sort.Strings(brands)
	return brands
}
