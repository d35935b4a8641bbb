// internal/catalog/engine.go

// Package catalog implements the storefront product query engine: filtering,
// sorting and pagination over the in-memory catalog. The engine is a pure
// function over its inputs and performs no I/O.
package catalog

import (
	"sort"
	"strings"

	"github.com/drivegear/autoparts-backend/internal/models"
)

// PageSize is the fixed number of products per result page.
const PageSize = 20

// Sentinel values meaning "no filter" for the respective dimension.
const (
	AllCategories = "All"
	AllBrands     = "All Brands"
	AllStock      = "all"
	AllPrices     = "all"
)

// Price range buckets. The shared boundaries at 100 and 500 belong to the
// lower bucket: a 500.00 product matches "100-500", not "500-1000".
const (
	PriceAll      = "all"
	PriceUnder100 = "under-100"
	Price100To500 = "100-500"
	Price500To1K  = "500-1000"
	PriceOver1K   = "over-1000"
)

// Sort keys.
const (
	SortName      = "name"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortStock     = "stock"
)

// FilterState carries one view session's filter, sort and page selection.
// Callers own the page-reset rule: any mutation other than explicit page
// navigation resets CurrentPage to 1; the engine does not clamp.
type FilterState struct {
	Category         string `json:"category"`
	Brand            string `json:"brand"`
	StockStatus      string `json:"stock_status"`
	PriceRange       string `json:"price_range"`
	SortKey          string `json:"sort_key"`
	SearchQuery      string `json:"search_query"`
	CategoryOverride string `json:"category_override,omitempty"`
	CurrentPage      int    `json:"current_page"`
}

// DefaultFilterState returns the filter state of a fresh view session.
func DefaultFilterState() FilterState {
	return FilterState{
		Category:    AllCategories,
		Brand:       AllBrands,
		StockStatus: AllStock,
		PriceRange:  AllPrices,
		SortKey:     SortName,
		CurrentPage: 1,
	}
}

// PagedResult is the visible page of a catalog query. Recomputed on every
// filter or page change, never persisted.
type PagedResult struct {
	Items       []models.Product `json:"items"`
	TotalCount  int              `json:"total_count"`
	TotalPages  int              `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
}

// Query filters, sorts and paginates products according to filters. It is
// total over its domain: an empty catalog yields an empty result.
func Query(products []models.Product, filters FilterState) PagedResult {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(&p, filters) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, filters.SortKey)

	totalCount := len(filtered)
	totalPages := (totalCount + PageSize - 1) / PageSize

	page := filters.CurrentPage
	if page < 1 {
		page = 1
	}

	startIndex := (page - 1) * PageSize
	endIndex := startIndex + PageSize
	if startIndex > totalCount {
		startIndex = totalCount
	}
	if endIndex > totalCount {
		endIndex = totalCount
	}

	return PagedResult{
		Items:       filtered[startIndex:endIndex],
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

// matches applies the AND-combined filter predicate to a single product.
func matches(p *models.Product, f FilterState) bool {
	// Free-text search across name, description, brand and product number.
	if q := strings.ToLower(f.SearchQuery); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) &&
			!strings.Contains(strings.ToLower(p.ProductNumber), q) {
			return false
		}
	}

	// The grid's own category selection and a navigation-driven override
	// apply simultaneously when both are present.
	if f.Category != "" && f.Category != AllCategories && p.Category != f.Category {
		return false
	}
	if f.CategoryOverride != "" && !strings.EqualFold(p.Category, f.CategoryOverride) {
		return false
	}

	if f.Brand != "" && f.Brand != AllBrands && p.Brand != f.Brand {
		return false
	}

	if f.StockStatus != "" && f.StockStatus != AllStock && string(p.Stock) != f.StockStatus {
		return false
	}

	switch f.PriceRange {
	case PriceUnder100:
		return p.Price < 100
	case Price100To500:
		return p.Price >= 100 && p.Price <= 500
	case Price500To1K:
		return p.Price > 500 && p.Price <= 1000
	case PriceOver1K:
		return p.Price > 1000
	}
	return true
}

// sortProducts orders products in place. The sort is stable so that equal
// keys keep their filtered order. Unknown keys fall back to name.
func sortProducts(products []models.Product, sortKey string) {
	var less func(a, b *models.Product) bool

	switch sortKey {
	case SortPriceLow:
		less = func(a, b *models.Product) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b *models.Product) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b *models.Product) bool { return ratingOf(b) < ratingOf(a) }
	case SortStock:
		less = func(a, b *models.Product) bool { return a.StockQuantity > b.StockQuantity }
	default:
		less = func(a, b *models.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(&products[i], &products[j])
	})
}

// ratingOf treats a missing rating as 0 for sorting purposes.
func ratingOf(p *models.Product) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}
