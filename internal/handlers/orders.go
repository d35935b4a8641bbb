// internal/handlers/orders.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/i18n"
	"github.com/drivegear/autoparts-backend/internal/services"
	"github.com/drivegear/autoparts-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orders, err := h.orderService.History(userID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"orders": orders,
	})
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := userIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "order id"), nil)
		return
	}

	order, err := h.orderService.Get(userID, orderID)
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyOrderNotFound))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}
