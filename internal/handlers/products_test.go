// internal/handlers/products_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/services"
	"github.com/drivegear/autoparts-backend/internal/store/mocks"
)

func catalogFixture() []models.Product {
	return []models.Product{
		{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			Name:          "Brake Disc Set",
			Price:         89.99,
			Category:      "Brakes",
			Brand:         "Brembo",
			ProductNumber: "BD-100",
			Stock:         models.StockInStock,
			StockQuantity: 12,
		},
		{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			Name:          "Clutch Kit",
			Price:         450.00,
			Category:      "Transmission",
			Brand:         "Sachs",
			ProductNumber: "CK-200",
			Stock:         models.StockInStock,
			StockQuantity: 4,
		},
		{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			Name:          "Turbocharger",
			Price:         1250.00,
			Category:      "Engine",
			Brand:         "Garrett",
			ProductNumber: "TC-300",
			Stock:         models.StockLowStock,
			StockQuantity: 1,
		},
	}
}

func newProductRouter(t *testing.T, products []models.Product) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := services.NewCatalogService(&mocks.MemoryProductStore{Products: products})
	require.NoError(t, err)
	h := NewProductHandler(svc)

	r := gin.New()
	r.GET("/v1/products", h.ListProducts)
	r.GET("/v1/products/:id", h.GetProduct)
	r.GET("/v1/categories", h.ListCategories)
	r.GET("/v1/categories/:category/products", h.ListByCategory)
	return r
}

type listResponse struct {
	Success bool             `json:"success"`
	Data    []models.Product `json:"data"`
	Meta    struct {
		TotalCount  int      `json:"total_count"`
		TotalPages  int      `json:"total_pages"`
		CurrentPage int      `json:"current_page"`
		PageMarkers []string `json:"page_markers"`
	} `json:"meta"`
}

func doList(t *testing.T, r *gin.Engine, path string) listResponse {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	return body
}

func TestListProductsReturnsCatalog(t *testing.T) {
	r := newProductRouter(t, catalogFixture())

	body := doList(t, r, "/v1/products")
	assert.Equal(t, 3, body.Meta.TotalCount)
	assert.Equal(t, 1, body.Meta.TotalPages)
	assert.Equal(t, 1, body.Meta.CurrentPage)
	assert.Equal(t, []string{"1"}, body.Meta.PageMarkers)
	// Default sort is name ascending.
	assert.Equal(t, "Brake Disc Set", body.Data[0].Name)
	assert.Equal(t, "Turbocharger", body.Data[2].Name)
}

func TestListProductsAppliesFilters(t *testing.T) {
	r := newProductRouter(t, catalogFixture())

	body := doList(t, r, "/v1/products?price_range=under-100")
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Brake Disc Set", body.Data[0].Name)

	body = doList(t, r, "/v1/products?brand=Garrett")
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Turbocharger", body.Data[0].Name)

	body = doList(t, r, "/v1/products?search=ck-200")
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Clutch Kit", body.Data[0].Name)
}

func TestListByCategoryOverridesGridFilter(t *testing.T) {
	r := newProductRouter(t, catalogFixture())

	body := doList(t, r, "/v1/categories/brakes/products")
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Brake Disc Set", body.Data[0].Name)

	// An in-grid category that disagrees with the route yields nothing.
	body = doList(t, r, "/v1/categories/brakes/products?category=Engine")
	assert.Empty(t, body.Data)
}

func TestGetProduct(t *testing.T) {
	products := catalogFixture()
	r := newProductRouter(t, products)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/products/"+products[0].ID.String(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/products/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/products/not-a-uuid", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCategories(t *testing.T) {
	r := newProductRouter(t, catalogFixture())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Categories []string `json:"categories"`
			Brands     []string `json:"brands"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Brakes", "Engine", "Transmission"}, body.Data.Categories)
	assert.Equal(t, []string{"Brembo", "Garrett", "Sachs"}, body.Data.Brands)
}
