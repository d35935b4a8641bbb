// internal/services/contact_service_test.go
package services

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivegear/autoparts-backend/internal/config"
	"github.com/drivegear/autoparts-backend/internal/store/mocks"
)

func newContactFixture() (*ContactService, *mocks.MemoryContactStore) {
	contacts := &mocks.MemoryContactStore{}
	cfg := &config.Config{}
	return NewContactService(contacts, NewNotificationService(cfg, logrus.New())), contacts
}

func validContact() *ContactRequest {
	return &ContactRequest{
		Name:    "Jamie Carter",
		Email:   "jamie@example.com",
		Phone:   "+44 7700 900123",
		Subject: "Fitment question",
		Message: "Will the BD-100 discs fit a 2019 F30?",
	}
}

func TestContactSubmit(t *testing.T) {
	svc, contacts := newContactFixture()

	message, err := svc.Submit(validContact())
	require.NoError(t, err)
	assert.Equal(t, "Fitment question", message.Subject)
	require.Len(t, contacts.Messages, 1)
}

func TestContactPhoneIsOptional(t *testing.T) {
	svc, _ := newContactFixture()

	req := validContact()
	req.Phone = ""
	_, err := svc.Submit(req)
	assert.NoError(t, err)
}

func TestContactRejectsBadPhone(t *testing.T) {
	svc, contacts := newContactFixture()

	bad := []string{"0123456", "phone-me", "+0 123", "12345678901234567"}
	for _, phone := range bad {
		req := validContact()
		req.Phone = phone
		_, err := svc.Submit(req)
		assert.ErrorIs(t, err, ErrInvalidPhone, "phone %q", phone)
	}
	assert.Empty(t, contacts.Messages)
}

func TestContactAcceptsFormattedPhones(t *testing.T) {
	svc, _ := newContactFixture()

	good := []string{"+44 7700 900123", "(171) 123-4567", "49 30 123456"}
	for _, phone := range good {
		req := validContact()
		req.Phone = phone
		_, err := svc.Submit(req)
		assert.NoError(t, err, "phone %q", phone)
	}
}

func TestContactRequiredFields(t *testing.T) {
	svc, _ := newContactFixture()

	req := validContact()
	req.Email = "not-an-email"
	_, err := svc.Submit(req)
	assert.Error(t, err)

	req = validContact()
	req.Message = ""
	_, err = svc.Submit(req)
	assert.Error(t, err)
}
