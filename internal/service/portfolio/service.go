// Package portfolio implements the property-management operations behind the
// dashboard forms: property and maintenance CRUD, tenant registration, and
// the analytics built on the health engine.
package portfolio

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jesquared/prophealth/internal/domain/models"
	"github.com/jesquared/prophealth/internal/health"
	"github.com/jesquared/prophealth/internal/store"
)

// ErrInvalidInput marks validation failures. No state changes when a request
// fails validation.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound marks lookups against identifiers that are not on file.
var ErrNotFound = store.ErrNotFound

// Service wires the store and the health engine behind the dashboard's
// operations.
type Service struct {
	store  *store.Store
	calc   *health.Calculator
	logger *zap.Logger
	now    func() time.Time
}

// NewService builds a portfolio service.
func NewService(st *store.Store, calc *health.Calculator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, calc: calc, logger: logger, now: time.Now}
}

func validatePropertyInput(in models.PropertyInput) error {
	if in.YearBuilt <= 1800 {
		return fmt.Errorf("%w: year_built must be after 1800", ErrInvalidInput)
	}
	if in.RoofAge < 0 || in.HVACAge < 0 || in.ElectricalAge < 0 || in.PlumbingAge < 0 {
		return fmt.Errorf("%w: component ages must not be negative", ErrInvalidInput)
	}
	return nil
}

// CreateProperty validates the add-property form input and stores a new
// property under a freshly generated ID.
func (s *Service) CreateProperty(in models.PropertyInput) (*models.Property, error) {
	if err := validatePropertyInput(in); err != nil {
		return nil, err
	}

	inspection := in.LastInspection
	if inspection == "" {
		inspection = models.InspectionUnknown
	}

	now := s.now()
	p := &models.Property{
		ID:             uuid.New(),
		Address:        in.Address,
		City:           in.City,
		State:          in.State,
		ZipCode:        in.ZipCode,
		YearBuilt:      in.YearBuilt,
		SquareFootage:  in.SquareFootage,
		PropertyType:   in.PropertyType,
		RoofMaterial:   in.RoofMaterial,
		RoofAge:        in.RoofAge,
		FoundationType: in.FoundationType,
		HVACAge:        in.HVACAge,
		ElectricalAge:  in.ElectricalAge,
		PlumbingAge:    in.PlumbingAge,
		LastInspection: inspection,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.store.PutProperty(p)

	s.logger.Info("property added",
		zap.String("property_id", p.ID.String()),
		zap.String("address", p.Address))

	return p, nil
}

// UpdateProperty applies the edit form to an existing property. Maintenance
// history stays attached via the stable ID even when the address changes.
func (s *Service) UpdateProperty(id uuid.UUID, in models.PropertyInput) (*models.Property, error) {
	if err := validatePropertyInput(in); err != nil {
		return nil, err
	}

	err := s.store.UpdateProperty(id, func(p *models.Property) {
		p.Address = in.Address
		p.City = in.City
		p.State = in.State
		p.ZipCode = in.ZipCode
		p.YearBuilt = in.YearBuilt
		p.SquareFootage = in.SquareFootage
		p.PropertyType = in.PropertyType
		p.RoofMaterial = in.RoofMaterial
		p.RoofAge = in.RoofAge
		p.FoundationType = in.FoundationType
		p.HVACAge = in.HVACAge
		p.ElectricalAge = in.ElectricalAge
		p.PlumbingAge = in.PlumbingAge
		if in.LastInspection != "" {
			p.LastInspection = in.LastInspection
		}
		p.UpdatedAt = s.now()
	})
	if err != nil {
		return nil, err
	}
	return s.store.GetProperty(id)
}

// GetProperty returns one property by ID.
func (s *Service) GetProperty(id uuid.UUID) (*models.Property, error) {
	return s.store.GetProperty(id)
}

// ListProperties returns the portfolio in the order properties were added.
func (s *Service) ListProperties() []*models.Property {
	return s.store.ListProperties()
}

// DeleteProperty removes a property together with its maintenance history and
// tenant registrations.
func (s *Service) DeleteProperty(id uuid.UUID) error {
	removed, err := s.store.DeleteProperty(id)
	if err != nil {
		return err
	}
	s.logger.Info("property deleted",
		zap.String("property_id", id.String()),
		zap.Int("maintenance_records_removed", removed))
	return nil
}

// AttachDocument stores an uploaded document against a property.
func (s *Service) AttachDocument(id uuid.UUID, doc models.Document) error {
	if doc.Name == "" || len(doc.Data) == 0 {
		return fmt.Errorf("%w: document name and content are required", ErrInvalidInput)
	}
	doc.Size = len(doc.Data)
	doc.UploadedAt = s.now()
	return s.store.UpdateProperty(id, func(p *models.Property) {
		p.Documents = append(p.Documents, doc)
	})
}

// AttachImage stores the property photo.
func (s *Service) AttachImage(id uuid.UUID, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: image content is required", ErrInvalidInput)
	}
	return s.store.UpdateProperty(id, func(p *models.Property) {
		p.ImageData = data
	})
}

// AddMaintenance validates and logs a service event against an existing
// property.
func (s *Service) AddMaintenance(in models.MaintenanceInput) (*models.MaintenanceRecord, error) {
	propertyID, err := uuid.Parse(in.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: property_id is not a valid id", ErrInvalidInput)
	}
	if in.Cost < 0 {
		return nil, fmt.Errorf("%w: cost must not be negative", ErrInvalidInput)
	}
	switch in.Urgency {
	case models.UrgencyRoutine, models.UrgencyMedium, models.UrgencyHigh:
	default:
		return nil, fmt.Errorf("%w: urgency must be Routine, Medium or High", ErrInvalidInput)
	}

	if _, err := s.store.GetProperty(propertyID); err != nil {
		return nil, err
	}

	rec := models.MaintenanceRecord{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		Date:        in.Date,
		Category:    in.Category,
		Description: in.Description,
		Cost:        in.Cost,
		Contractor:  in.Contractor,
		Urgency:     in.Urgency,
		CreatedAt:   s.now(),
	}
	s.store.AddMaintenance(rec)

	s.logger.Info("maintenance logged",
		zap.String("property_id", propertyID.String()),
		zap.String("category", in.Category),
		zap.Float64("cost", in.Cost))

	return &rec, nil
}

// MaintenanceHistory returns the records for one property in the order they
// were logged.
func (s *Service) MaintenanceHistory(propertyID uuid.UUID) ([]models.MaintenanceRecord, error) {
	if _, err := s.store.GetProperty(propertyID); err != nil {
		return nil, err
	}
	return s.store.MaintenanceByProperty(propertyID), nil
}

// HealthReport scores one property.
func (s *Service) HealthReport(id uuid.UUID) (models.HealthReport, error) {
	p, err := s.store.GetProperty(id)
	if err != nil {
		return models.HealthReport{}, err
	}
	return s.calc.OverallScore(*p), nil
}

// MaintenanceSchedule projects the maintenance plan for one property.
func (s *Service) MaintenanceSchedule(id uuid.UUID) ([]models.ScheduleTask, error) {
	p, err := s.store.GetProperty(id)
	if err != nil {
		return nil, err
	}
	return s.calc.Schedule(*p), nil
}

// RegisterTenant files a tenant registration pending admin verification.
func (s *Service) RegisterTenant(in models.TenantInput, lease []byte) (*models.Tenant, error) {
	propertyID, err := uuid.Parse(in.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: property_id is not a valid id", ErrInvalidInput)
	}
	if _, err := s.store.GetProperty(propertyID); err != nil {
		return nil, err
	}

	t := &models.Tenant{
		ID:               uuid.New(),
		Name:             in.Name,
		Email:            in.Email,
		PropertyID:       propertyID,
		LeaseDocument:    lease,
		RegistrationDate: s.now(),
	}
	s.store.PutTenant(t)
	return t, nil
}

// VerifyTenant marks a registration as admin-verified.
func (s *Service) VerifyTenant(id uuid.UUID) (*models.Tenant, error) {
	err := s.store.UpdateTenant(id, func(t *models.Tenant) {
		t.IsVerified = true
		t.VerificationDate = s.now().Format("2006-01-02")
	})
	if err != nil {
		return nil, err
	}
	return s.store.GetTenant(id)
}

// ListTenants returns every tenant registration.
func (s *Service) ListTenants() []*models.Tenant {
	return s.store.ListTenants()
}

// Summary aggregates portfolio-wide health and maintenance spend.
func (s *Service) Summary() models.PortfolioSummary {
	properties := s.store.ListProperties()
	records := s.store.ListMaintenance()

	summary := models.PortfolioSummary{
		PropertyCount:    len(properties),
		MaintenanceCount: len(records),
	}
	for _, rec := range records {
		summary.MaintenanceSpend += rec.Cost
	}
	if len(properties) == 0 {
		return summary
	}

	var total float64
	best := math.Inf(-1)
	worst := math.Inf(1)
	for _, p := range properties {
		score := s.calc.OverallScore(*p).OverallScore
		total += score
		best = math.Max(best, score)
		worst = math.Min(worst, score)
		summary.Properties = append(summary.Properties, models.PropertyScoreEntry{
			PropertyID: p.ID.String(),
			Address:    p.Address,
			Score:      score,
		})
	}

	summary.AverageScore = math.Round(total/float64(len(properties))*10) / 10
	summary.BestScore = best
	summary.WorstScore = worst
	return summary
}

// Reset drops the whole portfolio. Invoked when the session owning the state
// logs out.
func (s *Service) Reset() {
	s.store.Reset()
	s.logger.Info("portfolio state cleared")
}
