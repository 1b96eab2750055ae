package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/jeffleon2/draftea-device-payments/internal/models/dto"
	"github.com/sirupsen/logrus"
)

type DeviceRegistry interface {
	Register(ctx context.Context, device models.Device) (string, error)
	Get(deviceID string) (models.Device, bool)
	Unregister(deviceID string) error
	List() []models.Device
}

// DeviceFactory builds the adapter for a device registered over the API.
type DeviceFactory func(req dto.RegisterDevice) models.Device

type DeviceHandler struct {
	Registry  DeviceRegistry
	NewDevice DeviceFactory
}

func NewDeviceHandler(r DeviceRegistry, factory DeviceFactory) *DeviceHandler {
	return &DeviceHandler{Registry: r, NewDevice: factory}
}

// POST /devices
func (h *DeviceHandler) RegisterDevice(c *gin.Context) {
	var req dto.RegisterDevice
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.Sanitize()

	deviceID, err := h.Registry.Register(c.Request.Context(), h.NewDevice(req))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"fingerprint": req.Fingerprint,
			"error":       err.Error(),
		}).Warn("Device registration rejected")
		respondError(c, err)
		return
	}

	device, ok := h.Registry.Get(deviceID)
	if !ok {
		logrus.WithField("device_id", deviceID).Warn("Device unregistered before registration completed")
		c.JSON(http.StatusConflict, gin.H{
			"error":     "device was unregistered while registering",
			"device_id": deviceID,
		})
		return
	}
	c.JSON(http.StatusCreated, dto.NewDeviceView(device))
}

// GET /devices
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	devices := h.Registry.List()
	views := make([]dto.DeviceView, 0, len(devices))
	for _, d := range devices {
		views = append(views, dto.NewDeviceView(d))
	}
	c.JSON(http.StatusOK, views)
}

// GET /devices/:id
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	id := c.Param("id")
	device, ok := h.Registry.Get(id)
	if !ok {
		respondError(c, models.NewDeviceNotFoundError(id))
		return
	}
	c.JSON(http.StatusOK, dto.NewDeviceView(device))
}

// DELETE /devices/:id
func (h *DeviceHandler) UnregisterDevice(c *gin.Context) {
	if err := h.Registry.Unregister(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
