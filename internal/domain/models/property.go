package models

import (
	"time"

	"github.com/google/uuid"
)

// InspectionUnknown is the sentinel accepted on input when a property has no
// inspection on record.
const InspectionUnknown = "N/A"

// Property is one physical asset under management. Identity is the generated
// ID; the address is display data and may be edited freely without orphaning
// related records.
type Property struct {
	ID             uuid.UUID  `json:"id"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	ZipCode        string     `json:"zip_code"`
	YearBuilt      int        `json:"year_built"`
	SquareFootage  int        `json:"square_footage"`
	PropertyType   string     `json:"property_type"`
	RoofMaterial   string     `json:"roof_material"`
	RoofAge        int        `json:"roof_age"`
	FoundationType string     `json:"foundation_type"`
	HVACAge        int        `json:"hvac_age"`
	ElectricalAge  int        `json:"electrical_age"`
	PlumbingAge    int        `json:"plumbing_age"`
	LastInspection string     `json:"last_inspection"`
	ImageData      []byte     `json:"-"`
	Documents      []Document `json:"documents,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// LastInspectionDate parses the recorded inspection date. The second return
// is false when no inspection is on record or the stored value does not parse
// as an ISO date.
func (p Property) LastInspectionDate() (time.Time, bool) {
	if p.LastInspection == "" || p.LastInspection == InspectionUnknown {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", p.LastInspection)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Document is an uploaded file attached to a property. The engine never
// inspects its contents.
type Document struct {
	Name        string    `json:"name"`
	Data        []byte    `json:"-"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
