// internal/services/contact_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/store"
	"github.com/drivegear/autoparts-backend/internal/utils"
)

var ErrInvalidPhone = errors.New("invalid phone number")

type ContactService struct {
	contacts     store.ContactRepository
	notification *NotificationService
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func NewContactService(contacts store.ContactRepository, notification *NotificationService) *ContactService {
	return &ContactService{
		contacts:     contacts,
		notification: notification,
	}
}

// Submit validates and stores a contact form message. The phone number is
// optional, but must be plausible when present.
func (s *ContactService) Submit(req *ContactRequest) (*models.ContactMessage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !utils.ValidPhone(req.Phone) {
		return nil, ErrInvalidPhone
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.contacts.Create(message); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	// Acknowledge by email (async)
	go s.notification.SendContactAcknowledgement(message)

	return message, nil
}
