// internal/handlers/comparison.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/i18n"
	"github.com/drivegear/autoparts-backend/internal/services"
	"github.com/drivegear/autoparts-backend/internal/utils"
)

type ComparisonHandler struct {
	comparisonService *services.ComparisonService
}

func NewComparisonHandler(comparisonService *services.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{
		comparisonService: comparisonService,
	}
}

// comparisonSessionID identifies the anonymous browsing session. The
// storefront sends a stable random value in X-Session-ID.
func comparisonSessionID(c *gin.Context) string {
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		return sessionID
	}
	return c.ClientIP()
}

// GET /comparison
func (h *ComparisonHandler) List(c *gin.Context) {
	products, err := h.comparisonService.List(comparisonSessionID(c))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// POST /comparison/:productId
func (h *ComparisonHandler) Add(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "product id"), nil)
		return
	}

	products, err := h.comparisonService.Add(comparisonSessionID(c), productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// DELETE /comparison/:productId
func (h *ComparisonHandler) Remove(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "product id"), nil)
		return
	}

	products, err := h.comparisonService.Remove(comparisonSessionID(c), productID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// DELETE /comparison
func (h *ComparisonHandler) Clear(c *gin.Context) {
	h.comparisonService.Clear(comparisonSessionID(c))
	utils.SuccessResponse(c, gin.H{
		"products": []interface{}{},
	})
}
