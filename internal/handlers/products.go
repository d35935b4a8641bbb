// internal/handlers/products.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/catalog"
	"github.com/drivegear/autoparts-backend/internal/i18n"
	"github.com/drivegear/autoparts-backend/internal/services"
	"github.com/drivegear/autoparts-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filters := filtersFromQuery(c)
	page := h.catalogService.Query(filters)

	utils.SuccessResponseWithMeta(c, page.Items, gin.H{
		"total_count":  page.TotalCount,
		"total_pages":  page.TotalPages,
		"current_page": page.CurrentPage,
		"page_markers": page.PageMarkers,
	})
}

// GET /categories/:category/products
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	filters := filtersFromQuery(c)
	filters.CategoryOverride = c.Param("category")
	page := h.catalogService.Query(filters)

	utils.SuccessResponseWithMeta(c, page.Items, gin.H{
		"total_count":  page.TotalCount,
		"total_pages":  page.TotalPages,
		"current_page": page.CurrentPage,
		"page_markers": page.PageMarkers,
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "product id"), nil)
		return
	}

	product, err := h.catalogService.ProductByID(productID)
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// GET /categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": h.catalogService.Categories(),
		"brands":     h.catalogService.Brands(),
	})
}

func filtersFromQuery(c *gin.Context) catalog.FilterState {
	filters := catalog.DefaultFilterState()

	if v := c.Query("category"); v != "" {
		filters.Category = v
	}
	if v := c.Query("brand"); v != "" {
		filters.Brand = v
	}
	if v := c.Query("stock"); v != "" {
		filters.StockStatus = v
	}
	if v := c.Query("price_range"); v != "" {
		filters.PriceRange = v
	}
	if v := c.Query("sort"); v != "" {
		filters.SortKey = v
	}
	filters.SearchQuery = c.Query("search")

	if v := c.Query("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			filters.CurrentPage = page
		}
	}

	return filters
}
