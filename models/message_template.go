package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateDeliveryReminder is the key the reminder job looks up.
const TemplateDeliveryReminder = "delivery_reminder"

// MessageTemplate is a canned bilingual message the tailor can send.
// Placeholders: [CustomerName], [OrderID], [DeliveryDate], [RemainingAmount].
type MessageTemplate struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Key      string `gorm:"column:template_key;uniqueIndex;not null" json:"key"`
	Urdu     string `gorm:"type:text;not null" json:"urdu"`
	English  string `gorm:"type:text;not null" json:"english"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *MessageTemplate) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return
}

// Render fills the placeholders for one order.
func (t MessageTemplate) Render(customerName string, o Order) (urdu, english string) {
	r := strings.NewReplacer(
		"[CustomerName]", customerName,
		"[OrderID]", o.ID,
		"[DeliveryDate]", o.Measurements.DeliveryDate,
		"[RemainingAmount]", o.Payment.RemainingAmount.StringFixed(0),
	)
	return r.Replace(t.Urdu), r.Replace(t.English)
}

// DefaultDeliveryReminder is used when the shop has not saved its own.
var DefaultDeliveryReminder = MessageTemplate{
	Key:      TemplateDeliveryReminder,
	Urdu:     "محترم [CustomerName]، آپ کا آرڈر [OrderID] کل [DeliveryDate] کو تیار ہوگا۔ بقایا رقم: [RemainingAmount]",
	English:  "Dear [CustomerName], your order [OrderID] is due tomorrow ([DeliveryDate]). Amount due: [RemainingAmount]",
	IsActive: true,
}
