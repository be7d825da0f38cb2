package models

import (
	"time"

	"github.com/google/uuid"
)

// Urgency levels accepted on a maintenance record.
const (
	UrgencyRoutine = "Routine"
	UrgencyMedium  = "Medium"
	UrgencyHigh    = "High"
)

// MaintenanceRecord is one logged service event. Records are immutable once
// created and are removed only when their parent property is deleted.
type MaintenanceRecord struct {
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"property_id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	Contractor  string    `json:"contractor"`
	Urgency     string    `json:"urgency"`
	CreatedAt   time.Time `json:"created_at"`
}

// Tenant is a registered occupant awaiting or holding admin verification.
type Tenant struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PropertyID       uuid.UUID `json:"property_id"`
	LeaseDocument    []byte    `json:"-"`
	IsVerified       bool      `json:"is_verified"`
	VerificationDate string    `json:"verification_date,omitempty"`
	RegistrationDate time.Time `json:"registration_date"`
}
