package models

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "PAID"
	PaymentUnpaid PaymentStatus = "UNPAID"
)

// PaymentDetails is embedded in Order. RemainingAmount and Status are never
// set directly; build the value with DerivePayment.
type PaymentDetails struct {
	StitchingPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"stitchingPrice"`
	AdvancePaid     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"advancePaid"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"remainingAmount"`
	Status          PaymentStatus   `gorm:"type:varchar(10);not null" json:"status"`
}

// DerivePayment computes the amount still due and the paid state.
// Overpayment leaves a negative remainder and still reads as PAID.
func DerivePayment(stitchingPrice, advancePaid decimal.Decimal) PaymentDetails {
	remaining := stitchingPrice.Sub(advancePaid)
	status := PaymentUnpaid
	if remaining.LessThanOrEqual(decimal.Zero) {
		status = PaymentPaid
	}
	return PaymentDetails{
		StitchingPrice:  stitchingPrice,
		AdvancePaid:     advancePaid,
		RemainingAmount: remaining,
		Status:          status,
	}
}

// RecordPayment adds amount to what was already paid and re-derives.
func (p PaymentDetails) RecordPayment(amount decimal.Decimal) PaymentDetails {
	return DerivePayment(p.StitchingPrice, p.AdvancePaid.Add(amount))
}
