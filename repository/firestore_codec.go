package repository

import (
	"strings"
	"time"

	"digitaltailor-backend/models"

	"github.com/shopspring/decimal"
)

// Firestore documents are plain maps; amounts are stored as numbers so the
// web client can read them directly.

func encodeCustomerDoc(c models.Customer) map[string]any {
	return map[string]any{
		"name":           c.Name,
		"fatherName":     c.FatherName,
		"address":        c.Address,
		"mobileNumber":   strings.TrimSpace(c.MobileNumber),
		"cnic":           c.CNIC,
		"profilePicture": c.ProfilePicture,
		"createdAt":      c.CreatedAt.UTC(),
		"updatedAt":      c.UpdatedAt.UTC(),
	}
}

func decodeCustomerDoc(id string, data map[string]any) models.Customer {
	return models.Customer{
		ID:             id,
		Name:           getStr(data, "name"),
		FatherName:     getStr(data, "fatherName"),
		Address:        getStr(data, "address"),
		MobileNumber:   getStr(data, "mobileNumber"),
		CNIC:           getStr(data, "cnic"),
		ProfilePicture: getStr(data, "profilePicture"),
		CreatedAt:      getTime(data, "createdAt"),
		UpdatedAt:      getTime(data, "updatedAt"),
	}
}

func encodeOrderDoc(o models.Order) map[string]any {
	return map[string]any{
		"customerId":   o.CustomerID,
		"measurements": encodeMeasurements(o.Measurements),
		"status":       string(o.Status),
		"payment":      encodePayment(o.Payment),
		"messages":     encodeMessages(o.Messages),
		"photos":       encodePhotos(o.Photos),
		"createdAt":    o.CreatedAt.UTC(),
		"updatedAt":    o.UpdatedAt.UTC(),
	}
}

func decodeOrderDoc(id string, data map[string]any) models.Order {
	o := models.Order{
		ID:         id,
		CustomerID: getStr(data, "customerId"),
		Status:     models.OrderStatus(getStr(data, "status")),
		Messages:   []models.Message{},
		Photos:     []string{},
		CreatedAt:  getTime(data, "createdAt"),
		UpdatedAt:  getTime(data, "updatedAt"),
	}
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	if m, ok := data["measurements"].(map[string]any); ok {
		o.Measurements = decodeMeasurements(m)
	}
	if p, ok := data["payment"].(map[string]any); ok {
		o.Payment = decodePayment(p)
	}
	if arr, ok := data["messages"].([]any); ok {
		for _, v := range arr {
			if m, ok := v.(map[string]any); ok {
				o.Messages = append(o.Messages, models.Message{
					ID:        getStr(m, "id"),
					Urdu:      getStr(m, "urdu"),
					English:   getStr(m, "english"),
					Timestamp: getTime(m, "timestamp"),
				})
			}
		}
	}
	if arr, ok := data["photos"].([]any); ok {
		for _, v := range arr {
			if s, ok := v.(string); ok {
				o.Photos = append(o.Photos, s)
			}
		}
	}
	return o
}

func encodeMeasurements(m models.Measurements) map[string]any {
	return map[string]any{
		"suitType":         string(m.SuitType),
		"shoulder":         m.Shoulder,
		"chest":            m.Chest,
		"waist":            m.Waist,
		"neck":             m.Neck,
		"armLength":        m.ArmLength,
		"wrist":            m.Wrist,
		"shirtLength":      m.ShirtLength,
		"shalwarLength":    m.ShalwarLength,
		"paincha":          m.Paincha,
		"damain":           m.Damain,
		"numPockets":       m.NumPockets,
		"numSuits":         m.NumSuits,
		"clothLengthGiven": m.ClothLengthGiven,
		"measurementDate":  m.MeasurementDate,
		"deliveryDate":     m.DeliveryDate,
		"specialNotes":     m.SpecialNotes,
	}
}

func decodeMeasurements(data map[string]any) models.Measurements {
	return models.Measurements{
		SuitType:         models.SuitType(getStr(data, "suitType")),
		Shoulder:         getStr(data, "shoulder"),
		Chest:            getStr(data, "chest"),
		Waist:            getStr(data, "waist"),
		Neck:             getStr(data, "neck"),
		ArmLength:        getStr(data, "armLength"),
		Wrist:            getStr(data, "wrist"),
		ShirtLength:      getStr(data, "shirtLength"),
		ShalwarLength:    getStr(data, "shalwarLength"),
		Paincha:          getStr(data, "paincha"),
		Damain:           getStr(data, "damain"),
		NumPockets:       int(getNumber(data, "numPockets").IntPart()),
		NumSuits:         int(getNumber(data, "numSuits").IntPart()),
		ClothLengthGiven: getStr(data, "clothLengthGiven"),
		MeasurementDate:  getStr(data, "measurementDate"),
		DeliveryDate:     getStr(data, "deliveryDate"),
		SpecialNotes:     getStr(data, "specialNotes"),
	}
}

func encodePayment(p models.PaymentDetails) map[string]any {
	return map[string]any{
		"stitchingPrice":  p.StitchingPrice.InexactFloat64(),
		"advancePaid":     p.AdvancePaid.InexactFloat64(),
		"remainingAmount": p.RemainingAmount.InexactFloat64(),
		"status":          string(p.Status),
	}
}

// decodePayment re-derives the computed fields instead of trusting the
// stored copies.
func decodePayment(data map[string]any) models.PaymentDetails {
	return models.DerivePayment(getNumber(data, "stitchingPrice"), getNumber(data, "advancePaid"))
}

func encodeMessages(msgs []models.Message) []any {
	out := make([]any, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, map[string]any{
			"id":        m.ID,
			"urdu":      m.Urdu,
			"english":   m.English,
			"timestamp": m.Timestamp.UTC(),
		})
	}
	return out
}

func encodePhotos(photos []string) []any {
	out := make([]any, 0, len(photos))
	for _, p := range photos {
		out = append(out, p)
	}
	return out
}

func getStr(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func getTime(data map[string]any, key string) time.Time {
	if v, ok := data[key].(time.Time); ok && !v.IsZero() {
		return v.UTC()
	}
	return time.Time{}
}

func getNumber(data map[string]any, key string) decimal.Decimal {
	switch v := data[key].(type) {
	case int64:
		return decimal.NewFromInt(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return decimal.Zero
}
