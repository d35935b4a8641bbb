// internal/handlers/contact.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/drivegear/autoparts-backend/internal/i18n"
	"github.com/drivegear/autoparts-backend/internal/services"
	"github.com/drivegear/autoparts-backend/internal/utils"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	message, err := h.contactService.Submit(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPhone) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "phone"), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyContactReceived),
		"id":      message.ID,
	})
}
