// internal/handlers/cart_test.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/services"
	"github.com/drivegear/autoparts-backend/internal/store/mocks"
)

type cartRouterFixture struct {
	router   *gin.Engine
	products []models.Product
}

func newCartRouter(t *testing.T) *cartRouterFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := []models.Product{
		{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			Name:          "Brake Pads",
			Price:         20.00,
			Stock:         models.StockInStock,
			StockQuantity: 10,
		},
		{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			Name:          "Headlight",
			Price:         75.00,
			Stock:         models.StockOutOfStock,
			StockQuantity: 0,
		},
	}

	productStore := &mocks.MemoryProductStore{Products: products}
	cartStore := mocks.NewMemoryCartStore()
	cartStore.Products = productStore

	h := NewCartHandler(services.NewCartService(cartStore, productStore))

	r := gin.New()
	r.POST("/v1/cart", h.CreateCart)
	r.GET("/v1/cart/:id", h.GetCart)
	r.POST("/v1/cart/:id/items", h.AddItem)
	r.PUT("/v1/cart/:id/items/:productId", h.UpdateItem)
	r.DELETE("/v1/cart/:id/items/:productId", h.RemoveItem)
	r.DELETE("/v1/cart/:id/items", h.ClearCart)

	return &cartRouterFixture{router: r, products: products}
}

type cartResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Cart     models.Cart `json:"cart"`
		Subtotal float64     `json:"subtotal"`
	} `json:"data"`
}

func (f *cartRouterFixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, cartResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	f.router.ServeHTTP(w, req)

	var parsed cartResponse
	_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	return w, parsed
}

func (f *cartRouterFixture) createCart(t *testing.T) uuid.UUID {
	t.Helper()

	w, parsed := f.do(t, http.MethodPost, "/v1/cart", "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEqual(t, uuid.Nil, parsed.Data.Cart.ID)
	return parsed.Data.Cart.ID
}

func TestCartAddAndSubtotal(t *testing.T) {
	f := newCartRouter(t)
	cartID := f.createCart(t)

	body := fmt.Sprintf(`{"product_id":%q,"quantity":2}`, f.products[0].ID)
	w, parsed := f.do(t, http.MethodPost, "/v1/cart/"+cartID.String()+"/items", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 40.00, parsed.Data.Subtotal)
	require.Len(t, parsed.Data.Cart.Items, 1)
	assert.Equal(t, 2, parsed.Data.Cart.Items[0].Quantity)
}

func TestCartRejectsOutOfStockProduct(t *testing.T) {
	f := newCartRouter(t)
	cartID := f.createCart(t)

	body := fmt.Sprintf(`{"product_id":%q,"quantity":1}`, f.products[1].ID)
	w, _ := f.do(t, http.MethodPost, "/v1/cart/"+cartID.String()+"/items", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCartUpdateToZeroRemovesLine(t *testing.T) {
	f := newCartRouter(t)
	cartID := f.createCart(t)

	body := fmt.Sprintf(`{"product_id":%q,"quantity":3}`, f.products[0].ID)
	w, _ := f.do(t, http.MethodPost, "/v1/cart/"+cartID.String()+"/items", body)
	require.Equal(t, http.StatusOK, w.Code)

	path := "/v1/cart/" + cartID.String() + "/items/" + f.products[0].ID.String()
	w, parsed := f.do(t, http.MethodPut, path, `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, parsed.Data.Cart.Items)
	assert.Zero(t, parsed.Data.Subtotal)
}

func TestCartNotFound(t *testing.T) {
	f := newCartRouter(t)

	w, _ := f.do(t, http.MethodGet, "/v1/cart/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = f.do(t, http.MethodGet, "/v1/cart/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
