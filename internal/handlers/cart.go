// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/i18n"
	"github.com/drivegear/autoparts-backend/internal/services"
	"github.com/drivegear/autoparts-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// POST /cart
func (h *CartHandler) CreateCart(c *gin.Context) {
	cart, err := h.cartService.CreateCart(optionalUserID(c))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"cart": cart,
	})
}

// GET /cart/:id
func (h *CartHandler) GetCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "cart id"), nil)
		return
	}

	view, err := h.cartService.GetCart(cartID)
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyCartNotFound))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart":     view.Cart,
		"subtotal": view.Subtotal,
	})
}

// POST /cart/:id/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "cart id"), nil)
		return
	}

	var req struct {
		ProductID uuid.UUID `json:"product_id" validate:"required"`
		Quantity  int       `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	view, err := h.cartService.AddItem(cartID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOutOfStock):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyProductOutOfStock))
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
		case errors.Is(err, services.ErrCartNotFound):
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyCartNotFound))
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCartItemAdded),
		"cart":     view.Cart,
		"subtotal": view.Subtotal,
	})
}

// PUT /cart/:id/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "cart id"), nil)
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "product id"), nil)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	view, err := h.cartService.UpdateQuantity(cartID, productID, req.Quantity)
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyCartNotFound))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart":     view.Cart,
		"subtotal": view.Subtotal,
	})
}

// DELETE /cart/:id/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "cart id"), nil)
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "product id"), nil)
		return
	}

	view, err := h.cartService.RemoveItem(cartID, productID)
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyCartNotFound))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCartItemRemoved),
		"cart":     view.Cart,
		"subtotal": view.Subtotal,
	})
}

// DELETE /cart/:id/items
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "cart id"), nil)
		return
	}

	if err := h.cartService.Clear(cartID); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartCleared),
	})
}
