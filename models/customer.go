package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultProfilePicture is shown for customers that never uploaded one.
const DefaultProfilePicture = "https://via.placeholder.com/150?text=Customer"

type Customer struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	Name           string `gorm:"not null" json:"name"`
	FatherName     string `gorm:"not null" json:"fatherName"`
	Address        string `gorm:"not null" json:"address"`
	MobileNumber   string `gorm:"not null;index" json:"mobileNumber"`
	CNIC           string `json:"cnic"`
	ProfilePicture string `gorm:"type:text" json:"profilePicture"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return
}

// Picture returns the stored profile picture or the placeholder.
func (c Customer) Picture() string {
	if c.ProfilePicture == "" {
		return DefaultProfilePicture
	}
	return c.ProfilePicture
}

// MarshalJSON reports the placeholder for customers without a picture.
// The stored value stays empty.
func (c Customer) MarshalJSON() ([]byte, error) {
	type customer Customer
	out := customer(c)
	out.ProfilePicture = c.Picture()
	return json.Marshal(out)
}
