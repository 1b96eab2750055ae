package dto

import (
	"strings"

	"github.com/jeffleon2/draftea-device-payments/internal/models"
)

// RegisterDevice is the body of POST /devices.
type RegisterDevice struct {
	Type         string                 `json:"type" binding:"required"`
	Fingerprint  string                 `json:"fingerprint" binding:"required"`
	Name         string                 `json:"name"`
	Capabilities models.CapabilitySet   `json:"capabilities"`
	Security     models.SecurityContext `json:"security"`
	WebhookURL   string                 `json:"webhook_url" binding:"omitempty,url"`
}

func (d *RegisterDevice) Sanitize() {
	d.Type = strings.ToLower(strings.TrimSpace(d.Type))
	d.Fingerprint = strings.TrimSpace(d.Fingerprint)
	d.Name = strings.TrimSpace(d.Name)
	d.WebhookURL = strings.TrimSpace(d.WebhookURL)
	d.Security.EncryptionLevel = strings.TrimSpace(d.Security.EncryptionLevel)

	for i, currency := range d.Capabilities.SupportedCurrencies {
		d.Capabilities.SupportedCurrencies[i] = strings.ToUpper(strings.TrimSpace(currency))
	}
}

// DeviceView is the API representation of a registered device.
type DeviceView struct {
	DeviceID     string               `json:"device_id"`
	Type         models.DeviceType    `json:"type"`
	Fingerprint  string               `json:"fingerprint"`
	Category     models.Category      `json:"category"`
	Capabilities models.CapabilitySet `json:"capabilities"`
}

func NewDeviceView(device models.Device) DeviceView {
	return DeviceView{
		DeviceID:     device.DeviceID(),
		Type:         device.DeviceType(),
		Fingerprint:  device.Fingerprint(),
		Category:     models.CategoryOf(device.DeviceType()),
		Capabilities: device.Capabilities(),
	}
}
