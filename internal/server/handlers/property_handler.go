package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jesquared/prophealth/internal/domain/models"
	"github.com/jesquared/prophealth/internal/service/portfolio"
)

// maxUploadBytes caps document and image uploads.
const maxUploadBytes = 10 << 20

// PropertyHandler exposes the property forms and the per-property health
// panels over JSON.
type PropertyHandler struct {
	svc    *portfolio.Service
	logger *zap.Logger
}

// NewPropertyHandler constructs the property HTTP adapter.
func NewPropertyHandler(svc *portfolio.Service, logger *zap.Logger) *PropertyHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PropertyHandler{svc: svc, logger: logger}
}

func propertyID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return uuid.Nil, false
	}
	return id, true
}

func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, portfolio.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, portfolio.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// Create handles the add-property form.
func (h *PropertyHandler) Create(c *gin.Context) {
	var in models.PropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid property payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required property fields"})
		return
	}

	p, err := h.svc.CreateProperty(in)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// List returns the portfolio.
func (h *PropertyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"properties": h.svc.ListProperties()})
}

// Get returns one property.
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	p, err := h.svc.GetProperty(id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update handles the edit-property form.
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}

	var in models.PropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required property fields"})
		return
	}

	p, err := h.svc.UpdateProperty(id, in)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete removes a property and everything referencing it.
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteProperty(id); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadDocument attaches an uploaded file to a property.
func (h *PropertyHandler) UploadDocument(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document file is required"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "document too large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	doc := models.Document{
		Name:        file.Filename,
		Data:        data,
		ContentType: file.Header.Get("Content-Type"),
	}
	if err := h.svc.AttachDocument(id, doc); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusCreated)
}

// UploadImage attaches the property photo.
func (h *PropertyHandler) UploadImage(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	if err := h.svc.AttachImage(id, data); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Health returns the scored health report for one property.
func (h *PropertyHandler) Health(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	report, err := h.svc.HealthReport(id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Schedule returns the projected maintenance plan for one property.
func (h *PropertyHandler) Schedule(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	schedule, err := h.svc.MaintenanceSchedule(id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// MaintenanceHistory returns the logged service events for one property.
func (h *PropertyHandler) MaintenanceHistory(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	history, err := h.svc.MaintenanceHistory(id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": history})
}
