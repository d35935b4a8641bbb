// internal/models/contact.go
package models

type ContactMessage struct {
	BaseModel
	Name    string `json:"name" gorm:"size:100;not null"`
	Email   string `json:"email" gorm:"size:255;not null"`
	Phone   string `json:"phone,omitempty" gorm:"size:32"`
	Subject string `json:"subject" gorm:"size:255;not null"`
	Message string `json:"message" gorm:"type:text;not null"`
}
