// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/drivegear/autoparts-backend/internal/config"
	"github.com/drivegear/autoparts-backend/internal/models"
)

type NotificationService struct {
	config *config.Config
	logger *logrus.Logger
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(config *config.Config, logger *logrus.Logger) *NotificationService {
	return &NotificationService{
		config: config,
		logger: logger,
	}
}

// SendOrderConfirmationEmail mails the buyer a summary of a placed order.
func (s *NotificationService) SendOrderConfirmationEmail(toEmail, firstName string, order *models.Order) error {
	tmpl := s.getEmailTemplate("order_confirmation")

	data := map[string]interface{}{
		"FirstName":         firstName,
		"OrderID":           order.ID,
		"Total":             fmt.Sprintf("%.2f", order.Total),
		"DeliveryOption":    order.DeliveryOption,
		"EstimatedDelivery": order.EstimatedDelivery,
		"Items":             order.Items,
		"OrderURL":          fmt.Sprintf("%s/orders/%s", s.config.Frontend.BaseURL, order.ID),
	}

	subject := fmt.Sprintf("Order Confirmation - %s", order.ID)
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(toEmail, subject, body)
}

// SendContactAcknowledgement mails the sender of a contact form message.
func (s *NotificationService) SendContactAcknowledgement(message *models.ContactMessage) error {
	tmpl := s.getEmailTemplate("contact_acknowledgement")

	data := map[string]interface{}{
		"Name":    message.Name,
		"Subject": message.Subject,
	}

	subject := "We received your message - " + message.Subject
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(message.Email, subject, body)
}

func (s *NotificationService) SendPasswordResetEmail(user *models.User, resetToken string) error {
	tmpl := s.getEmailTemplate("password_reset")

	data := map[string]interface{}{
		"FirstName": user.FirstName,
		"ResetURL":  fmt.Sprintf("%s/reset-password?token=%s", s.config.Frontend.BaseURL, resetToken),
		"ExpiresIn": "1 hour",
	}

	subject := "Password Reset Request"
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(user.Email, subject, body)
}

// Helper methods
func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPUsername == "" {
		// Email not configured, just log
		s.logger.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("Email delivery skipped (SMTP not configured)")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s", to, subject, body))

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"order_confirmation": {
			Subject: "Order Confirmation",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Thank you for your order, {{.FirstName}}!</h2>
	<p>Your order <strong>{{.OrderID}}</strong> has been received.</p>
	<table>
		{{range .Items}}
		<tr><td>{{.ProductName}}</td><td>x{{.Quantity}}</td><td>£{{printf "%.2f" .Price}}</td></tr>
		{{end}}
	</table>
	<p>Delivery: {{.DeliveryOption}} ({{.EstimatedDelivery}})</p>
	<p><strong>Total: £{{.Total}}</strong></p>
	<a href="{{.OrderURL}}">View your order</a>
	<p>Best regards,<br>DriveGear Auto Parts</p>
</body>
</html>`,
		},
		"contact_acknowledgement": {
			Subject: "We received your message",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Hello {{.Name}},</h2>
	<p>We received your message about "{{.Subject}}" and will get back to you within one working day.</p>
	<p>Best regards,<br>DriveGear Auto Parts</p>
</body>
</html>`,
		},
		"password_reset": {
			Subject: "Password Reset Request",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Hello {{.FirstName}},</h2>
	<p>We received a request to reset your password. Click the link below to choose a new one:</p>
	<a href="{{.ResetURL}}">Reset Password</a>
	<p>This link expires in {{.ExpiresIn}}. If you did not request a reset, you can ignore this email.</p>
	<p>Best regards,<br>DriveGear Auto Parts</p>
</body>
</html>`,
		},
	}

	if tmpl, exists := templates[templateType]; exists {
		return tmpl
	}

	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.Message}}</p>",
	}
}
