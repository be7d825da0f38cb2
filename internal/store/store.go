// Package store holds all application state. Nothing is persisted: the
// portfolio lives in process memory for the lifetime of the server, which is
// the documented storage model for this system.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/jesquared/prophealth/internal/domain/models"
)

// ErrNotFound is returned when a lookup misses.
var ErrNotFound = errors.New("store: not found")

// Store is a thread-safe in-memory portfolio store. Properties keep their
// insertion order for listing; maintenance records and tenants are indexed by
// their owning property and removed in cascade when that property is deleted.
//
// Records are copied on the way in and on the way out, so values returned
// from the store are safe to read or modify without holding any lock. All
// writes go through Put/Update/Delete.
type Store struct {
	mu sync.RWMutex

	properties map[uuid.UUID]*models.Property
	order      []uuid.UUID

	maintenance []models.MaintenanceRecord
	tenants     map[uuid.UUID]*models.Tenant
	tenantOrder []uuid.UUID
}

// New creates an empty Store.
func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.properties = make(map[uuid.UUID]*models.Property)
	s.order = nil
	s.maintenance = nil
	s.tenants = make(map[uuid.UUID]*models.Tenant)
	s.tenantOrder = nil
}

// Reset clears every record. Called when the owning session ends.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// cloneProperty returns a deep enough copy of p that the caller and the store
// never share mutable state. The Documents slice gets its own backing array;
// the document and image bytes themselves are never mutated after attach, so
// sharing them is fine.
func cloneProperty(p *models.Property) *models.Property {
	cp := *p
	if p.Documents != nil {
		cp.Documents = make([]models.Document, len(p.Documents))
		copy(cp.Documents, p.Documents)
	}
	return &cp
}

func cloneTenant(t *models.Tenant) *models.Tenant {
	cp := *t
	return &cp
}

// PutProperty stores a copy of p. The caller keeps ownership of p.
func (s *Store) PutProperty(p *models.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.properties[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.properties[p.ID] = cloneProperty(p)
}

// GetProperty returns a copy of the property with the given ID.
func (s *Store) GetProperty(id uuid.UUID) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneProperty(p), nil
}

// ListProperties returns copies of all properties in insertion order.
func (s *Store) ListProperties() []*models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Property, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneProperty(s.properties[id]))
	}
	return out
}

// UpdateProperty applies mutate to the stored property under the write lock.
func (s *Store) UpdateProperty(id uuid.UUID, mutate func(*models.Property)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[id]
	if !ok {
		return ErrNotFound
	}
	mutate(p)
	return nil
}

// DeleteProperty removes the property and cascades to exactly the
// maintenance records and tenants whose PropertyID matches. It returns the
// number of maintenance records removed.
func (s *Store) DeleteProperty(id uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[id]; !ok {
		return 0, ErrNotFound
	}

	delete(s.properties, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	kept := s.maintenance[:0]
	removed := 0
	for _, rec := range s.maintenance {
		if rec.PropertyID == id {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	s.maintenance = kept

	for tid, tenant := range s.tenants {
		if tenant.PropertyID == id {
			delete(s.tenants, tid)
			for i, oid := range s.tenantOrder {
				if oid == tid {
					s.tenantOrder = append(s.tenantOrder[:i], s.tenantOrder[i+1:]...)
					break
				}
			}
		}
	}

	return removed, nil
}

// AddMaintenance appends a maintenance record. Records are immutable once
// stored.
func (s *Store) AddMaintenance(rec models.MaintenanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maintenance = append(s.maintenance, rec)
}

// MaintenanceByProperty returns the records logged against one property, in
// insertion order.
func (s *Store) MaintenanceByProperty(propertyID uuid.UUID) []models.MaintenanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MaintenanceRecord
	for _, rec := range s.maintenance {
		if rec.PropertyID == propertyID {
			out = append(out, rec)
		}
	}
	return out
}

// ListMaintenance returns every maintenance record in insertion order.
func (s *Store) ListMaintenance() []models.MaintenanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MaintenanceRecord, len(s.maintenance))
	copy(out, s.maintenance)
	return out
}

// PutTenant stores a copy of the tenant registration.
func (s *Store) PutTenant(t *models.Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tenants[t.ID]; !exists {
		s.tenantOrder = append(s.tenantOrder, t.ID)
	}
	s.tenants[t.ID] = cloneTenant(t)
}

// GetTenant returns a copy of the tenant with the given ID.
func (s *Store) GetTenant(id uuid.UUID) (*models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tenants[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneTenant(t), nil
}

// ListTenants returns copies of all tenants in registration order.
func (s *Store) ListTenants() []*models.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Tenant, 0, len(s.tenantOrder))
	for _, id := range s.tenantOrder {
		out = append(out, cloneTenant(s.tenants[id]))
	}
	return out
}

// UpdateTenant applies mutate to the stored tenant under the write lock.
func (s *Store) UpdateTenant(id uuid.UUID, mutate func(*models.Tenant)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tenants[id]
	if !ok {
		return ErrNotFound
	}
	mutate(t)
	return nil
}
