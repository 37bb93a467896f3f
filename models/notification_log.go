package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"

	NotificationSent   = "sent"
	NotificationFailed = "failed"
)

// NotificationLog records every outbound SMS/WhatsApp/e-mail attempt.
type NotificationLog struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	OrderID      string    `gorm:"size:64;index" json:"orderId"`
	CustomerID   string    `gorm:"size:64;index" json:"customerId"`
	MessageID    string    `gorm:"size:64" json:"messageId"`
	Recipient    string    `gorm:"type:varchar(120)" json:"recipient"`
	Body         string    `gorm:"type:text" json:"body"`
	Channel      string    `gorm:"type:varchar(20)" json:"channel"` // sms, whatsapp, email
	Status       string    `gorm:"type:varchar(20)" json:"status"`  // sent, failed
	ErrorMessage string    `gorm:"type:text" json:"errorMessage,omitempty"`
	SentAt       time.Time `json:"sentAt"`
}

func (l *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return
}
