package models_test

import (
	"testing"

	"digitaltailor-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDerivePayment(t *testing.T) {
	tests := []struct {
		name      string
		price     int64
		advance   int64
		remaining int64
		status    models.PaymentStatus
	}{
		{"partial advance", 1500, 500, 1000, models.PaymentUnpaid},
		{"paid in full", 1500, 1500, 0, models.PaymentPaid},
		{"overpaid", 1500, 2000, -500, models.PaymentPaid},
		{"nothing paid", 1200, 0, 1200, models.PaymentUnpaid},
		{"free job", 0, 0, 0, models.PaymentPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.DerivePayment(decimal.NewFromInt(tt.price), decimal.NewFromInt(tt.advance))
			assert.True(t, p.RemainingAmount.Equal(decimal.NewFromInt(tt.remaining)), "remaining = %s", p.RemainingAmount)
			assert.Equal(t, tt.status, p.Status)
			assert.True(t, p.StitchingPrice.Equal(decimal.NewFromInt(tt.price)))
			assert.True(t, p.AdvancePaid.Equal(decimal.NewFromInt(tt.advance)))
		})
	}
}

func TestDerivePaymentKeepsFractions(t *testing.T) {
	p := models.DerivePayment(decimal.RequireFromString("999.50"), decimal.RequireFromString("999.25"))
	assert.Equal(t, "0.25", p.RemainingAmount.String())
	assert.Equal(t, models.PaymentUnpaid, p.Status)
}

func TestDerivePaymentAcceptsNegativeInputs(t *testing.T) {
	p := models.DerivePayment(decimal.NewFromInt(-100), decimal.Zero)
	assert.True(t, p.RemainingAmount.Equal(decimal.NewFromInt(-100)))
	assert.Equal(t, models.PaymentPaid, p.Status)
}

func TestRecordPaymentRederives(t *testing.T) {
	p := models.DerivePayment(decimal.NewFromInt(1500), decimal.NewFromInt(500))

	p = p.RecordPayment(decimal.NewFromInt(400))
	assert.True(t, p.AdvancePaid.Equal(decimal.NewFromInt(900)))
	assert.True(t, p.RemainingAmount.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, models.PaymentUnpaid, p.Status)

	p = p.RecordPayment(decimal.NewFromInt(600))
	assert.True(t, p.RemainingAmount.IsZero())
	assert.Equal(t, models.PaymentPaid, p.Status)
}
