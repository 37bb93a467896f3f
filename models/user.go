package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole separates the shop owner from the customers who only read
// their own orders.
type UserRole string

const (
	RoleTailor   UserRole = "TAILOR"
	RoleCustomer UserRole = "CUSTOMER"
)

func (r UserRole) Valid() bool {
	return r == RoleTailor || r == RoleCustomer
}

// User is a tailor account. Customers never get a User row; they log in
// with their mobile number against the customers table.
type User struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Phone    string `gorm:"index" json:"phone"`

	ShopName    string `json:"shopName"`
	ShopAddress string `json:"shopAddress"`

	SMSNotifications      bool `gorm:"default:true" json:"smsNotifications"`
	WhatsAppNotifications bool `gorm:"default:false" json:"whatsAppNotifications"`
	EmailDigest           bool `gorm:"default:false" json:"emailDigest"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns the id; the password is hashed by the caller.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return
}
