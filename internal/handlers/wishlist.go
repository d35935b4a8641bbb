// internal/handlers/wishlist.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/i18n"
	"github.com/drivegear/autoparts-backend/internal/services"
	"github.com/drivegear/autoparts-backend/internal/utils"
)

type WishlistHandler struct {
	wishlistService *services.WishlistService
}

func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

// GET /wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	items, err := h.wishlistService.List(userID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": items,
	})
}

// POST /wishlist/:productId
func (h *WishlistHandler) Add(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := userIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "product id"), nil)
		return
	}

	if err := h.wishlistService.Add(userID, productID); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyWishlistAdded),
	})
}

// DELETE /wishlist/:productId
func (h *WishlistHandler) Remove(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := userIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "product id"), nil)
		return
	}

	if err := h.wishlistService.Remove(userID, productID); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyWishlistRemoved),
	})
}
