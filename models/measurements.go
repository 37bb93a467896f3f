package models

import "strconv"

// SuitType is a garment style from the shop catalog.
type SuitType string

const (
	SuitShalwarKameez SuitType = "Shalwar Kameez"
	SuitKurtaShalwar  SuitType = "Kurta Shalwar"
	SuitKurtaPajama   SuitType = "Kurta Pajama"
	SuitPantShirt     SuitType = "Pant Shirt"
	SuitWaistcoat     SuitType = "Waistcoat"
	SuitPrinceCoat    SuitType = "Prince Coat"
	SuitSherwani      SuitType = "Sherwani"
)

// SuitTypes is the catalog in display order.
var SuitTypes = []SuitType{
	SuitShalwarKameez,
	SuitKurtaShalwar,
	SuitKurtaPajama,
	SuitPantShirt,
	SuitWaistcoat,
	SuitPrinceCoat,
	SuitSherwani,
}

func (s SuitType) Valid() bool {
	for _, t := range SuitTypes {
		if t == s {
			return true
		}
	}
	return false
}

// Measurements are captured once when the order is taken. Body values are
// kept as text so entries like "9.5" or "14 1/2" survive untouched.
type Measurements struct {
	SuitType SuitType `gorm:"type:varchar(40)" json:"suitType"`

	Shoulder      string `json:"shoulder"`
	Chest         string `json:"chest"`
	Waist         string `json:"waist"`
	Neck          string `json:"neck"`
	ArmLength     string `json:"armLength"`
	Wrist         string `json:"wrist"`
	ShirtLength   string `json:"shirtLength"`
	ShalwarLength string `json:"shalwarLength"`
	Paincha       string `json:"paincha"`
	Damain        string `json:"damain"`

	NumPockets       int    `json:"numPockets"`
	NumSuits         int    `json:"numSuits"`
	ClothLengthGiven string `json:"clothLengthGiven"`

	MeasurementDate string `gorm:"type:varchar(10)" json:"measurementDate"`
	DeliveryDate    string `gorm:"type:varchar(10);index" json:"deliveryDate"`
	SpecialNotes    string `gorm:"type:text" json:"specialNotes"`
}

// FieldKind tells views whether a field belongs in the measurement grid or
// in the order header.
type FieldKind string

const (
	FieldMeasurement FieldKind = "measurement"
	FieldMetadata    FieldKind = "metadata"
)

type MeasurementField struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Kind  FieldKind `json:"kind"`

	value func(Measurements) string
}

// FieldValue is one rendered cell.
type FieldValue struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// MeasurementFields is the single source for the grid/metadata split.
var MeasurementFields = []MeasurementField{
	{Key: "shoulder", Label: "Shoulder", Kind: FieldMeasurement, value: func(m Measurements) string { return m.Shoulder }},
	{Key: "chest", Label: "Chest", Kind: FieldMeasurement, value: func(m Measurements) string { return m.Chest }},
	{Key: "waist", Label: "Waist", Kind: FieldMeasurement, value: func(m Measurements) string { return m.Waist }},
	{Key: "neck", Label: "Neck", Kind: FieldMeasurement, value: func(m Measurements) string { return m.Neck }},
	{Key: "armLength", Label: "Arm Length", Kind: FieldMeasurement, value: func(m Measurements) string { return m.ArmLength }},
	{Key: "wrist", Label: "Wrist", Kind: FieldMeasurement, value: func(m Measurements) string { return m.Wrist }},
	{Key: "shirtLength", Label: "Shirt Length", Kind: FieldMeasurement, value: func(m Measurements) string { return m.ShirtLength }},
	{Key: "shalwarLength", Label: "Shalwar Length", Kind: FieldMeasurement, value: func(m Measurements) string { return m.ShalwarLength }},
	{Key: "paincha", Label: "Paincha", Kind: FieldMeasurement, value: func(m Measurements) string { return m.Paincha }},
	{Key: "damain", Label: "Damain", Kind: FieldMeasurement, value: func(m Measurements) string { return m.Damain }},
	{Key: "numPockets", Label: "Pockets", Kind: FieldMeasurement, value: func(m Measurements) string { return strconv.Itoa(m.NumPockets) }},
	{Key: "numSuits", Label: "Suits", Kind: FieldMeasurement, value: func(m Measurements) string { return strconv.Itoa(m.NumSuits) }},
	{Key: "clothLengthGiven", Label: "Cloth Given", Kind: FieldMeasurement, value: func(m Measurements) string { return m.ClothLengthGiven }},
	{Key: "suitType", Label: "Suit Type", Kind: FieldMetadata, value: func(m Measurements) string { return string(m.SuitType) }},
	{Key: "measurementDate", Label: "Measurement Date", Kind: FieldMetadata, value: func(m Measurements) string { return m.MeasurementDate }},
	{Key: "deliveryDate", Label: "Delivery Date", Kind: FieldMetadata, value: func(m Measurements) string { return m.DeliveryDate }},
	{Key: "specialNotes", Label: "Special Notes", Kind: FieldMetadata, value: func(m Measurements) string { return m.SpecialNotes }},
}

// Fields returns the values of every field of the given kind, in catalog order.
func (m Measurements) Fields(kind FieldKind) []FieldValue {
	out := make([]FieldValue, 0, len(MeasurementFields))
	for _, f := range MeasurementFields {
		if f.Kind != kind {
			continue
		}
		out = append(out, FieldValue{Key: f.Key, Label: f.Label, Value: f.value(m)})
	}
	return out
}

func (m Measurements) Grid() []FieldValue     { return m.Fields(FieldMeasurement) }
func (m Measurements) Metadata() []FieldValue { return m.Fields(FieldMetadata) }
