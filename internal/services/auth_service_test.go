// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivegear/autoparts-backend/internal/config"
	"github.com/drivegear/autoparts-backend/internal/store/mocks"
)

func newAuthFixture(t *testing.T) (*AuthService, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  24,
			RefreshTokenTTL: 168,
		},
	}
	logger := logrus.New()

	users := mocks.NewMemoryUserStore()
	return NewAuthService(users, cfg, NewNotificationService(cfg, logger)), cfg
}

func validRegistration() *RegisterRequest {
	return &RegisterRequest{
		Email:     "jamie@example.com",
		Password:  "Sup3rSecret",
		FirstName: "Jamie",
		LastName:  "Carter",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Register(validRegistration())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 24*3600, resp.ExpiresIn)

	// The stored hash never equals the raw password.
	assert.NotEqual(t, "Sup3rSecret", resp.User.PasswordHash)
	assert.NoError(t, resp.User.CheckPassword("Sup3rSecret"))

	login, err := svc.Login(&LoginRequest{Email: "jamie@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
	assert.NotNil(t, login.User.LastLoginAt)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	_, err = svc.Register(validRegistration())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	weak := []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"}
	for _, password := range weak {
		req := validRegistration()
		req.Password = password
		_, err := svc.Register(req)
		assert.Error(t, err, "password %q should be rejected", password)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	_, err = svc.Login(&LoginRequest{Email: "jamie@example.com", Password: "WrongPass1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "Sup3rSecret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Register(validRegistration())
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Register(validRegistration())
	require.NoError(t, err)

	err = svc.ChangePassword(resp.User.ID, &ChangePasswordRequest{
		CurrentPassword: "WrongPass1",
		NewPassword:     "NewSecret99",
	})
	assert.Error(t, err)

	err = svc.ChangePassword(resp.User.ID, &ChangePasswordRequest{
		CurrentPassword: "Sup3rSecret",
		NewPassword:     "NewSecret99",
	})
	require.NoError(t, err)

	_, err = svc.Login(&LoginRequest{Email: "jamie@example.com", Password: "NewSecret99"})
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Register(validRegistration())
	require.NoError(t, err)

	user, err := svc.UpdateProfile(resp.User.ID, &UpdateProfileRequest{
		FirstName: "Jamie",
		LastName:  "Carter-Hughes",
		Street:    "12 Mill Lane",
		City:      "Leeds",
		Postal:    "LS1 4AB",
		Country:   "United Kingdom",
	})
	require.NoError(t, err)
	assert.Equal(t, "Carter-Hughes", user.LastName)
	assert.Equal(t, "Leeds", user.City)
}

func TestDeleteAccountRequiresPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Register(validRegistration())
	require.NoError(t, err)

	assert.Error(t, svc.DeleteAccount(resp.User.ID, "WrongPass1"))
	require.NoError(t, svc.DeleteAccount(resp.User.ID, "Sup3rSecret"))

	_, err = svc.GetUserByID(resp.User.ID)
	assert.Error(t, err)
}
