package models

// PropertyInput carries the add/edit property form fields. Required fields
// mirror the form validation: a submission missing any of them is rejected
// before any state changes.
type PropertyInput struct {
	Address        string `json:"address" binding:"required"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state" binding:"required"`
	ZipCode        string `json:"zip_code" binding:"required"`
	YearBuilt      int    `json:"year_built" binding:"required"`
	SquareFootage  int    `json:"square_footage"`
	PropertyType   string `json:"property_type" binding:"required"`
	RoofMaterial   string `json:"roof_material"`
	RoofAge        int    `json:"roof_age"`
	FoundationType string `json:"foundation_type"`
	HVACAge        int    `json:"hvac_age"`
	ElectricalAge  int    `json:"electrical_age"`
	PlumbingAge    int    `json:"plumbing_age"`
	LastInspection string `json:"last_inspection"`
}

// MaintenanceInput carries the log-maintenance form fields.
type MaintenanceInput struct {
	PropertyID  string  `json:"property_id" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Cost        float64 `json:"cost"`
	Contractor  string  `json:"contractor"`
	Urgency     string  `json:"urgency" binding:"required"`
}

// TenantInput carries the tenant registration form fields.
type TenantInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	PropertyID string `json:"property_id" binding:"required"`
}

// LoginRequest is the access-portal submission: the digital signature fields
// plus the shared access code.
type LoginRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Company    string `json:"company"`
	Purpose    string `json:"purpose" binding:"required"`
	AccessCode string `json:"access_code" binding:"required"`
}

// LoginResponse returns the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}
