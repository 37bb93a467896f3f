package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus is the progress label of a stitching job. Any status may be
// set from any other; the shop does not model sub-workflows.
//
//	PENDING ⇄ STITCHING ⇄ READY ⇄ DELIVERED
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusStitching OrderStatus = "STITCHING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
)

var OrderStatuses = []OrderStatus{StatusPending, StatusStitching, StatusReady, StatusDelivered}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

var (
	ErrInvalidStatus = errors.New("order: invalid status")
	ErrForbiddenRole = errors.New("order: only the tailor may change status")
)

// Transition returns the status the order moves to. Only the tailor may
// move an order and every target in the enumeration is reachable.
func Transition(role UserRole, current, target OrderStatus) (OrderStatus, error) {
	if role != RoleTailor {
		return current, ErrForbiddenRole
	}
	if !target.Valid() {
		return current, ErrInvalidStatus
	}
	return target, nil
}

type Order struct {
	ID         string `gorm:"primaryKey;size:64" json:"id"`
	CustomerID string `gorm:"size:64;index;not null" json:"customerId"`

	Measurements Measurements   `gorm:"embedded;embeddedPrefix:measurement_" json:"measurements"`
	Status       OrderStatus    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Payment      PaymentDetails `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`

	// Newest first.
	Messages []Message `gorm:"type:text;serializer:json" json:"messages"`
	// Oldest first.
	Photos []string `gorm:"type:text;serializer:json" json:"photos"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return
}

// NewOrder builds a fresh order for an existing customer. Status, messages,
// photos and createdAt are always the creation defaults.
func NewOrder(customerID string, m Measurements, p PaymentDetails, now time.Time) Order {
	return Order{
		CustomerID:   customerID,
		Measurements: m,
		Status:       StatusPending,
		Payment:      p,
		Messages:     []Message{},
		Photos:       []string{},
		CreatedAt:    now,
	}
}
