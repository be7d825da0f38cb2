package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jesquared/prophealth/internal/domain/models"
	"github.com/jesquared/prophealth/internal/health"
	"github.com/jesquared/prophealth/internal/server/handlers"
	"github.com/jesquared/prophealth/internal/server/router"
	portfoliosvc "github.com/jesquared/prophealth/internal/service/portfolio"
	sessionsvc "github.com/jesquared/prophealth/internal/service/session"
	weathersvc "github.com/jesquared/prophealth/internal/service/weather"
	"github.com/jesquared/prophealth/internal/store"
	"github.com/jesquared/prophealth/pkg/clients/openweather"
)

const testAccessCode = "let-me-in"

type testEnv struct {
	engine *gin.Engine
	token  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	weatherUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"main": {"temp": 70.0, "feels_like": 69.0, "humidity": 50},
			"weather": [{"description": "clear sky", "icon": "01d"}],
			"wind": {"speed": 5.0},
			"name": "Testville"
		}`))
	}))
	t.Cleanup(weatherUpstream.Close)

	calc := health.NewCalculator()
	portfolioSvc := portfoliosvc.NewService(store.New(), calc, zap.NewNop())
	sessions := sessionsvc.NewManager(testAccessCode, zap.NewNop())
	weatherSvc := weathersvc.NewService(openweather.NewClient(weatherUpstream.URL, "key"), 0, zap.NewNop())

	engine := router.New(
		handlers.NewAuthHandler(sessions, portfolioSvc, zap.NewNop()),
		handlers.NewPropertyHandler(portfolioSvc, zap.NewNop()),
		handlers.NewDashboardHandler(portfolioSvc, calc, weatherSvc, zap.NewNop()),
		zap.NewNop(),
	)

	env := &testEnv{engine: engine}
	env.token = env.login(t)
	return env
}

func (e *testEnv) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if e.token != "" {
		req.Header.Set(handlers.TokenHeader, e.token)
	}

	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	rec := e.request(t, http.MethodPost, "/api/v1/session", models.LoginRequest{
		Name:       "Handler Test",
		Email:      "handler@example.com",
		Purpose:    "Internal Review",
		AccessCode: testAccessCode,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func validPropertyInput() models.PropertyInput {
	return models.PropertyInput{
		Address:        "742 Evergreen Terrace",
		City:           "Culpeper",
		State:          "VA",
		ZipCode:        "22701",
		YearBuilt:      1995,
		SquareFootage:  1850,
		PropertyType:   "Single Family",
		RoofMaterial:   "Asphalt Shingles",
		RoofAge:        8,
		FoundationType: "Basement",
		HVACAge:        6,
		ElectricalAge:  12,
		PlumbingAge:    15,
	}
}

func (e *testEnv) createProperty(t *testing.T) models.Property {
	t.Helper()
	rec := e.request(t, http.MethodPost, "/api/v1/properties", validPropertyInput())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var p models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func TestAuth_WrongCodeAndMissingToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/session", models.LoginRequest{
		Name:       "Nope",
		Email:      "nope@example.com",
		Purpose:    "Other",
		AccessCode: "wrong",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	env.token = ""
	rec = env.request(t, http.MethodGet, "/api/v1/properties", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProperties_CRUDRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	p := env.createProperty(t)
	assert.Equal(t, "742 Evergreen Terrace", p.Address)

	rec := env.request(t, http.MethodGet, "/api/v1/properties/"+p.ID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	update := validPropertyInput()
	update.Address = "1 Updated Ave"
	rec = env.request(t, http.MethodPut, "/api/v1/properties/"+p.ID.String(), update)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "1 Updated Ave", updated.Address)

	rec = env.request(t, http.MethodDelete, "/api/v1/properties/"+p.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/v1/properties/"+p.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProperties_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	missing := validPropertyInput()
	missing.Address = ""
	rec := env.request(t, http.MethodPost, "/api/v1/properties", missing)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	tooOld := validPropertyInput()
	tooOld.YearBuilt = 1500
	rec = env.request(t, http.MethodPost, "/api/v1/properties", tooOld)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/v1/properties/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndScheduleEndpoints(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProperty(t)

	rec := env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/properties/%s/health", p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report models.HealthReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.GreaterOrEqual(t, report.OverallScore, 0.0)
	assert.LessOrEqual(t, report.OverallScore, 100.0)
	assert.Len(t, report.CategoryScores, 4)

	rec = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/properties/%s/schedule", p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var schedulePayload struct {
		Schedule []models.ScheduleTask `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schedulePayload))
	assert.NotEmpty(t, schedulePayload.Schedule)
}

func TestMaintenanceFlow(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProperty(t)

	rec := env.request(t, http.MethodPost, "/api/v1/maintenance", models.MaintenanceInput{
		PropertyID:  p.ID.String(),
		Date:        "2025-04-01",
		Category:    "HVAC",
		Description: "Spring tune-up",
		Cost:        350,
		Urgency:     models.UrgencyRoutine,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/properties/%s/maintenance", p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Records []models.MaintenanceRecord `json:"records"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Records, 1)
	assert.Equal(t, "HVAC", payload.Records[0].Category)

	rec = env.request(t, http.MethodPost, "/api/v1/maintenance", models.MaintenanceInput{
		PropertyID:  p.ID.String(),
		Date:        "2025-04-01",
		Category:    "HVAC",
		Description: "Bad urgency",
		Cost:        100,
		Urgency:     "Apocalyptic",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCostAndRegionEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/costs?item=hvac_replacement&zip=22102", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var est models.CostEstimate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &est))
	assert.Equal(t, 6750, est.Min)
	assert.Equal(t, 16200, est.Max)
	assert.Equal(t, 10125, est.Avg)

	rec = env.request(t, http.MethodGet, "/api/v1/costs?item=unknown_item&zip=22102", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &est))
	assert.Zero(t, est.Avg)
	assert.Equal(t, "Unknown", est.Region)

	rec = env.request(t, http.MethodGet, "/api/v1/costs", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/v1/regions/90210", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var region models.RegionalInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &region))
	assert.Equal(t, "Los Angeles Metro", region.Region)
}

func TestWeatherEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/weather/22701", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report models.WeatherReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Empty(t, report.Error)
	assert.Equal(t, "Testville", report.CityName)
	assert.InDelta(t, 70.0, report.Temp, 0.001)
}

func TestTenantEndpoints(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProperty(t)

	rec := env.request(t, http.MethodPost, "/api/v1/tenants", models.TenantInput{
		Name:       "Ada Renter",
		Email:      "ada@example.com",
		PropertyID: p.ID.String(),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var tenant models.Tenant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tenant))
	assert.False(t, tenant.IsVerified)

	rec = env.request(t, http.MethodPost, fmt.Sprintf("/api/v1/tenants/%s/verify", tenant.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tenant))
	assert.True(t, tenant.IsVerified)
}

func TestLogoutClearsDashboardState(t *testing.T) {
	env := newTestEnv(t)
	env.createProperty(t)

	rec := env.request(t, http.MethodDelete, "/api/v1/session", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// A fresh session sees an empty portfolio.
	env.token = env.login(t)
	rec = env.request(t, http.MethodGet, "/api/v1/portfolio/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.PortfolioSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Zero(t, summary.PropertyCount)
}
