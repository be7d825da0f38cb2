package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jesquared/prophealth/internal/domain/models"
)

func newProperty(address string) *models.Property {
	return &models.Property{ID: uuid.New(), Address: address, ZipCode: "22701"}
}

func TestStore_PropertyCRUD(t *testing.T) {
	s := New()

	a := newProperty("1 First St")
	b := newProperty("2 Second St")
	s.PutProperty(a)
	s.PutProperty(b)

	got, err := s.GetProperty(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 First St", got.Address)

	_, err = s.GetProperty(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.UpdateProperty(a.ID, func(p *models.Property) {
		p.Address = "1 Renamed St"
	}))
	got, err = s.GetProperty(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 Renamed St", got.Address)

	assert.ErrorIs(t, s.UpdateProperty(uuid.New(), func(*models.Property) {}), ErrNotFound)
}

func TestStore_ListKeepsInsertionOrder(t *testing.T) {
	s := New()
	addresses := []string{"10 Elm", "20 Oak", "30 Pine", "40 Birch"}
	for _, addr := range addresses {
		s.PutProperty(newProperty(addr))
	}

	list := s.ListProperties()
	require.Len(t, list, len(addresses))
	for i, p := range list {
		assert.Equal(t, addresses[i], p.Address)
	}
}

func TestStore_DeleteCascadesExactly(t *testing.T) {
	s := New()

	keep := newProperty("keep")
	doomed := newProperty("doomed")
	s.PutProperty(keep)
	s.PutProperty(doomed)

	s.AddMaintenance(models.MaintenanceRecord{ID: uuid.New(), PropertyID: keep.ID, Category: "Plumbing"})
	s.AddMaintenance(models.MaintenanceRecord{ID: uuid.New(), PropertyID: doomed.ID, Category: "Roofing"})
	s.AddMaintenance(models.MaintenanceRecord{ID: uuid.New(), PropertyID: doomed.ID, Category: "HVAC"})

	s.PutTenant(&models.Tenant{ID: uuid.New(), Name: "Stays", PropertyID: keep.ID})
	s.PutTenant(&models.Tenant{ID: uuid.New(), Name: "Goes", PropertyID: doomed.ID})

	removed, err := s.DeleteProperty(doomed.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = s.GetProperty(doomed.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	remaining := s.ListMaintenance()
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].PropertyID)

	tenants := s.ListTenants()
	require.Len(t, tenants, 1)
	assert.Equal(t, "Stays", tenants[0].Name)

	_, err = s.DeleteProperty(doomed.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_MaintenanceByProperty(t *testing.T) {
	s := New()
	p := newProperty("5 Maple")
	s.PutProperty(p)

	s.AddMaintenance(models.MaintenanceRecord{ID: uuid.New(), PropertyID: p.ID, Description: "first"})
	s.AddMaintenance(models.MaintenanceRecord{ID: uuid.New(), PropertyID: uuid.New(), Description: "other"})
	s.AddMaintenance(models.MaintenanceRecord{ID: uuid.New(), PropertyID: p.ID, Description: "second"})

	recs := s.MaintenanceByProperty(p.ID)
	require.Len(t, recs, 2)
	assert.Equal(t, "first", recs[0].Description)
	assert.Equal(t, "second", recs[1].Description)
}

func TestStore_ReturnedRecordsAreCopies(t *testing.T) {
	s := New()

	p := newProperty("7 Shared St")
	p.Documents = []models.Document{{Name: "deed.pdf"}}
	s.PutProperty(p)

	// Mutating the caller's value after Put must not reach the store.
	p.Address = "scribbled over"
	got, err := s.GetProperty(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "7 Shared St", got.Address)

	// A record handed out earlier must not observe later updates.
	before, err := s.GetProperty(p.ID)
	require.NoError(t, err)
	require.NoError(t, s.UpdateProperty(p.ID, func(sp *models.Property) {
		sp.Address = "7 Renamed St"
		sp.Documents = append(sp.Documents, models.Document{Name: "survey.pdf"})
	}))
	assert.Equal(t, "7 Shared St", before.Address)
	assert.Len(t, before.Documents, 1)

	// Nor must scribbling on a returned record alter stored state.
	listed := s.ListProperties()
	require.Len(t, listed, 1)
	listed[0].Address = "defaced"
	listed[0].Documents[0].Name = "renamed.pdf"
	got, err = s.GetProperty(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "7 Renamed St", got.Address)
	assert.Equal(t, "deed.pdf", got.Documents[0].Name)

	tn := &models.Tenant{ID: uuid.New(), Name: "Original", PropertyID: p.ID}
	s.PutTenant(tn)
	tn.Name = "changed after put"
	tenants := s.ListTenants()
	require.Len(t, tenants, 1)
	assert.Equal(t, "Original", tenants[0].Name)

	tenants[0].Name = "changed after list"
	stored, err := s.GetTenant(tn.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", stored.Name)
}

func TestStore_Reset(t *testing.T) {
	s := New()
	p := newProperty("9 Gone")
	s.PutProperty(p)
	s.AddMaintenance(models.MaintenanceRecord{ID: uuid.New(), PropertyID: p.ID})
	s.PutTenant(&models.Tenant{ID: uuid.New(), PropertyID: p.ID})

	s.Reset()

	assert.Empty(t, s.ListProperties())
	assert.Empty(t, s.ListMaintenance())
	assert.Empty(t, s.ListTenants())
}
