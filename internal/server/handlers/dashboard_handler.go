package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jesquared/prophealth/internal/domain/models"
	"github.com/jesquared/prophealth/internal/health"
	"github.com/jesquared/prophealth/internal/service/portfolio"
	"github.com/jesquared/prophealth/internal/service/weather"
)

// DashboardHandler exposes the cross-property panels: maintenance logging,
// tenants, cost lookups, weather and portfolio analytics.
type DashboardHandler struct {
	svc     *portfolio.Service
	calc    *health.Calculator
	weather *weather.Service
	logger  *zap.Logger
}

// NewDashboardHandler constructs the dashboard HTTP adapter.
func NewDashboardHandler(svc *portfolio.Service, calc *health.Calculator, weatherSvc *weather.Service, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{svc: svc, calc: calc, weather: weatherSvc, logger: logger}
}

// AddMaintenance handles the log-maintenance form.
func (h *DashboardHandler) AddMaintenance(c *gin.Context) {
	var in models.MaintenanceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required maintenance fields"})
		return
	}

	rec, err := h.svc.AddMaintenance(in)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// RegisterTenant handles the tenant registration form.
func (h *DashboardHandler) RegisterTenant(c *gin.Context) {
	var in models.TenantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required tenant fields"})
		return
	}

	tenant, err := h.svc.RegisterTenant(in, nil)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, tenant)
}

// ListTenants returns every tenant registration.
func (h *DashboardHandler) ListTenants(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tenants": h.svc.ListTenants()})
}

// VerifyTenant marks a tenant registration as admin-verified.
func (h *DashboardHandler) VerifyTenant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant id"})
		return
	}

	tenant, err := h.svc.VerifyTenant(id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// CostEstimate returns the regionally adjusted cost band for a repair item.
// Unknown items resolve to a zero-valued estimate, never an error.
func (h *DashboardHandler) CostEstimate(c *gin.Context) {
	item := c.Query("item")
	if item == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item query parameter is required"})
		return
	}
	zip := c.Query("zip")

	c.JSON(http.StatusOK, h.calc.EstimateCost(item, zip))
}

// RegionalInfo returns the cost region resolved for a ZIP code.
func (h *DashboardHandler) RegionalInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.calc.RegionalInfo(c.Param("zip")))
}

// Weather returns current conditions for a ZIP code. Failures come back as a
// report with the error field set, always with HTTP 200.
func (h *DashboardHandler) Weather(c *gin.Context) {
	report := h.weather.CurrentByZip(c.Request.Context(), c.Param("zip"))
	c.JSON(http.StatusOK, report)
}

// PortfolioSummary returns portfolio-wide analytics.
func (h *DashboardHandler) PortfolioSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Summary())
}
