// internal/catalog/engine_test.go
package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drivegear/autoparts-backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func testCatalog() []models.Product {
	return []models.Product{
		{
			Name:          "Brake Disc",
			Price:         100.00,
			Category:      "Brakes",
			Brand:         "Brembo",
			Description:   "Vented front disc",
			ProductNumber: "BD-100",
			Stock:         models.StockInStock,
			StockQuantity: 30,
			Rating:        floatPtr(4.9),
		},
		{
			Name:          "Wiper Blade",
			Price:         34.99,
			Category:      "Wipers",
			Brand:         "Bosch",
			Description:   "All-season blade",
			ProductNumber: "WB-001",
			Stock:         models.StockInStock,
			StockQuantity: 150,
			Rating:        floatPtr(4.5),
		},
		{
			Name:          "Clutch Kit",
			Price:         500.00,
			Category:      "Transmission",
			Brand:         "Sachs",
			Description:   "Reinforced clutch",
			ProductNumber: "CK-500",
			Stock:         models.StockLowStock,
			StockQuantity: 5,
		},
		{
			Name:          "Coilover Kit",
			Price:         1849.00,
			Category:      "Suspension",
			Brand:         "KW",
			Description:   "Adjustable suspension",
			ProductNumber: "SU-900",
			Stock:         models.StockLowStock,
			StockQuantity: 2,
			Rating:        floatPtr(5.0),
		},
		{
			Name:          "Headlight Unit",
			Price:         423.75,
			Category:      "Lighting",
			Brand:         "Hella",
			Description:   "Full LED unit",
			ProductNumber: "LI-400",
			Stock:         models.StockOutOfStock,
			StockQuantity: 0,
			Rating:        floatPtr(4.3),
		},
		{
			Name:          "Timing Belt Kit",
			Price:         640.00,
			Category:      "Engine",
			Brand:         "Continental",
			Description:   "Belt with water pump",
			ProductNumber: "EN-640",
			Stock:         models.StockInStock,
			StockQuantity: 40,
			Rating:        floatPtr(4.7),
		},
	}
}

func TestQueryDefaultFiltersReturnEverything(t *testing.T) {
	result := Query(testCatalog(), DefaultFilterState())

	assert.Equal(t, 6, result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	assert.Len(t, result.Items, 6)
	// Default sort is case-insensitive name ascending.
	assert.Equal(t, "Brake Disc", result.Items[0].Name)
	assert.Equal(t, "Wiper Blade", result.Items[5].Name)
}

func TestQueryEmptyCatalog(t *testing.T) {
	result := Query(nil, DefaultFilterState())

	assert.Equal(t, 0, result.TotalCount)
	assert.Equal(t, 0, result.TotalPages)
	assert.Empty(t, result.Items)
}

func TestQueryPriceBucketBoundaries(t *testing.T) {
	tests := []struct {
		price  float64
		bucket string
		want   bool
	}{
		{99.99, PriceUnder100, true},
		{100.00, PriceUnder100, false},
		{100.00, Price100To500, true},
		{500.00, Price100To500, true},
		{500.00, Price500To1K, false},
		{500.01, Price500To1K, true},
		{1000.00, Price500To1K, true},
		{1000.01, PriceOver1K, true},
		{1000.00, PriceOver1K, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.2f/%s", tt.price, tt.bucket), func(t *testing.T) {
			filters := DefaultFilterState()
			filters.PriceRange = tt.bucket
			products := []models.Product{{Name: "P", Price: tt.price}}

			result := Query(products, filters)
			if tt.want {
				assert.Equal(t, 1, result.TotalCount)
			} else {
				assert.Equal(t, 0, result.TotalCount)
			}
		})
	}
}

func TestQueryPriceBucketsPartitionCatalog(t *testing.T) {
	// Every product lands in exactly one bucket.
	products := testCatalog()
	buckets := []string{PriceUnder100, Price100To500, Price500To1K, PriceOver1K}

	total := 0
	for _, bucket := range buckets {
		filters := DefaultFilterState()
		filters.PriceRange = bucket
		total += Query(products, filters).TotalCount
	}
	assert.Equal(t, len(products), total)
}

func TestQuerySearchMatchesAllTextFields(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"brake", 1},      // name
		{"BOSCH", 1},      // brand, case-insensitive
		{"water pump", 1}, // description
		{"ck-500", 1},     // product number
		{"zzz", 0},
	}

	for _, tt := range tests {
		filters := DefaultFilterState()
		filters.SearchQuery = tt.query
		assert.Equal(t, tt.want, Query(testCatalog(), filters).TotalCount, "query %q", tt.query)
	}
}

func TestQueryCategoryOverrideIsCaseInsensitive(t *testing.T) {
	filters := DefaultFilterState()
	filters.CategoryOverride = "brakes"

	result := Query(testCatalog(), filters)
	assert.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "Brake Disc", result.Items[0].Name)
}

func TestQueryCategoryAndOverrideBothApply(t *testing.T) {
	// A disagreeing pair filters everything out.
	filters := DefaultFilterState()
	filters.Category = "Wipers"
	filters.CategoryOverride = "Brakes"

	assert.Equal(t, 0, Query(testCatalog(), filters).TotalCount)
}

func TestQueryStockFilter(t *testing.T) {
	filters := DefaultFilterState()
	filters.StockStatus = string(models.StockOutOfStock)

	result := Query(testCatalog(), filters)
	assert.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "Headlight Unit", result.Items[0].Name)
}

func TestQuerySortOrders(t *testing.T) {
	products := testCatalog()

	filters := DefaultFilterState()
	filters.SortKey = SortPriceLow
	low := Query(products, filters)
	assert.Equal(t, 34.99, low.Items[0].Price)
	assert.Equal(t, 1849.00, low.Items[len(low.Items)-1].Price)

	filters.SortKey = SortPriceHigh
	high := Query(products, filters)
	assert.Equal(t, 1849.00, high.Items[0].Price)

	// price-high is price-low reversed when all prices are distinct.
	for i := range low.Items {
		assert.Equal(t, low.Items[i].Price, high.Items[len(high.Items)-1-i].Price)
	}

	filters.SortKey = SortRating
	rated := Query(products, filters)
	assert.Equal(t, "Coilover Kit", rated.Items[0].Name)
	// A missing rating sorts as zero, i.e. last.
	assert.Equal(t, "Clutch Kit", rated.Items[len(rated.Items)-1].Name)

	filters.SortKey = SortStock
	stocked := Query(products, filters)
	assert.Equal(t, "Wiper Blade", stocked.Items[0].Name)
	assert.Equal(t, "Headlight Unit", stocked.Items[len(stocked.Items)-1].Name)
}

func TestQueryPagination(t *testing.T) {
	var products []models.Product
	for i := 0; i < 45; i++ {
		products = append(products, models.Product{
			Name:  fmt.Sprintf("Part %03d", i),
			Price: float64(i + 1),
		})
	}

	filters := DefaultFilterState()
	first := Query(products, filters)
	assert.Equal(t, 45, first.TotalCount)
	assert.Equal(t, 3, first.TotalPages)
	assert.Len(t, first.Items, PageSize)

	filters.CurrentPage = 3
	last := Query(products, filters)
	assert.Len(t, last.Items, 5)
	assert.Equal(t, "Part 040", last.Items[0].Name)

	// A page beyond the end yields an empty slice, not a panic.
	filters.CurrentPage = 99
	assert.Empty(t, Query(products, filters).Items)

	// Page zero is coerced to the first page.
	filters.CurrentPage = 0
	assert.Equal(t, 1, Query(products, filters).CurrentPage)
}

func TestQueryIsIdempotent(t *testing.T) {
	products := testCatalog()
	filters := DefaultFilterState()
	filters.SortKey = SortPriceLow

	first := Query(products, filters)
	second := Query(products, filters)
	assert.Equal(t, first, second)
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	products := testCatalog()
	original := make([]models.Product, len(products))
	copy(original, products)

	filters := DefaultFilterState()
	filters.SortKey = SortPriceHigh
	Query(products, filters)

	assert.Equal(t, original, products)
}
