// internal/handlers/checkout.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/checkout"
	"github.com/drivegear/autoparts-backend/internal/i18n"
	"github.com/drivegear/autoparts-backend/internal/services"
	"github.com/drivegear/autoparts-backend/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// GET /checkout/delivery-options
func (h *CheckoutHandler) DeliveryOptions(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"delivery_options": h.checkoutService.DeliveryOptions(),
	})
}

// GET /checkout/payment-methods
func (h *CheckoutHandler) PaymentMethods(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"payment_methods": h.checkoutService.PaymentMethods(),
	})
}

// POST /checkout
func (h *CheckoutHandler) Start(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		CartID uuid.UUID `json:"cart_id" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	sessionID, view, err := h.checkoutService.Start(req.CartID, optionalUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartEmpty), nil)
		case errors.Is(err, services.ErrCartNotFound):
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyCartNotFound))
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"session_id": sessionID,
		"session":    view,
	})
}

// GET /checkout/:id
func (h *CheckoutHandler) Get(c *gin.Context) {
	h.respondView(c, func(sessionID uuid.UUID) (*services.SessionView, error) {
		return h.checkoutService.Get(sessionID)
	})
}

// POST /checkout/:id/auth
func (h *CheckoutHandler) CompleteAuth(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		Guest bool `json:"guest"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	h.respondView(c, func(sessionID uuid.UUID) (*services.SessionView, error) {
		return h.checkoutService.CompleteAuth(sessionID, req.Guest)
	})
}

// POST /checkout/:id/address
func (h *CheckoutHandler) SubmitAddress(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var addr checkout.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	h.respondView(c, func(sessionID uuid.UUID) (*services.SessionView, error) {
		return h.checkoutService.SubmitAddress(sessionID, addr)
	})
}

// POST /checkout/:id/delivery
func (h *CheckoutHandler) SelectDelivery(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		OptionID string `json:"option_id" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	h.respondView(c, func(sessionID uuid.UUID) (*services.SessionView, error) {
		return h.checkoutService.SelectDelivery(sessionID, req.OptionID)
	})
}

// POST /checkout/:id/payment
func (h *CheckoutHandler) SelectPayment(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		MethodID string                `json:"method_id" validate:"required"`
		Card     *checkout.CardDetails `json:"card,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	h.respondView(c, func(sessionID uuid.UUID) (*services.SessionView, error) {
		return h.checkoutService.SelectPayment(sessionID, req.MethodID, req.Card)
	})
}

// POST /checkout/:id/back
func (h *CheckoutHandler) Back(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "session id"), nil)
		return
	}

	view, err := h.checkoutService.Back(sessionID)
	if err != nil {
		if errors.Is(err, checkout.ErrCheckoutExited) {
			utils.SuccessResponse(c, gin.H{
				"exited": true,
			})
			return
		}
		h.checkoutError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"session": view,
	})
}

// POST /checkout/:id/order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "session id"), nil)
		return
	}

	result, err := h.checkoutService.PlaceOrder(c.Request.Context(), sessionID)
	if err != nil {
		h.checkoutError(c, lang, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":        i18n.T(lang, i18n.KeyCheckoutOrderPlaced),
		"order":          result.Order,
		"persisted":      result.Persisted,
		"payment_intent": result.PaymentIntent,
	})
}

// DELETE /checkout/:id
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "session id"), nil)
		return
	}

	h.checkoutService.Cancel(sessionID)
	utils.SuccessResponse(c, gin.H{
		"cancelled": true,
	})
}

func (h *CheckoutHandler) respondView(c *gin.Context, fn func(uuid.UUID) (*services.SessionView, error)) {
	lang := utils.GetLangFromContext(c)

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "session id"), nil)
		return
	}

	view, err := fn(sessionID)
	if err != nil {
		h.checkoutError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"session": view,
	})
}

func (h *CheckoutHandler) checkoutError(c *gin.Context, lang string, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyCheckoutNotFound))
	case errors.Is(err, services.ErrEmptyCart):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCheckoutCartRequired), nil)
	case errors.Is(err, services.ErrNotReady),
		errors.Is(err, checkout.ErrWrongStep),
		errors.Is(err, checkout.ErrMissingField),
		errors.Is(err, checkout.ErrNoDeliveryOption),
		errors.Is(err, checkout.ErrUnknownOption),
		errors.Is(err, checkout.ErrNoPaymentMethod),
		errors.Is(err, checkout.ErrUnknownMethod),
		errors.Is(err, checkout.ErrMissingCardDetails):
		utils.ErrorResponse(c, 422, "checkout_step_invalid", i18n.T(lang, i18n.KeyCheckoutStepInvalid), err.Error())
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
