package models

import (
	"context"
	"time"
)

type DeviceType string
type SecurityLevel string

const (
	DeviceSmartphone     DeviceType = "smartphone"
	DeviceSmartTV        DeviceType = "smart_tv"
	DeviceIoT            DeviceType = "iot_device"
	DeviceVoiceAssistant DeviceType = "voice_assistant"
	DeviceGamingConsole  DeviceType = "gaming_console"
	DeviceSmartwatch     DeviceType = "smartwatch"
	DeviceCarSystem      DeviceType = "car_system"
	DeviceUnknown        DeviceType = "unknown"

	SecurityLow    SecurityLevel = "low"
	SecurityMedium SecurityLevel = "medium"
	SecurityHigh   SecurityLevel = "high"
)

// ParseDeviceType maps free-form input onto the known device types.
// Anything unrecognised becomes DeviceUnknown.
func ParseDeviceType(s string) DeviceType {
	t := DeviceType(s)
	if t.IsValid() {
		return t
	}
	return DeviceUnknown
}

func (t DeviceType) IsValid() bool {
	switch t {
	case DeviceSmartphone, DeviceSmartTV, DeviceIoT, DeviceVoiceAssistant,
		DeviceGamingConsole, DeviceSmartwatch, DeviceCarSystem, DeviceUnknown:
		return true
	default:
		return false
	}
}

// CapabilitySet describes what a device can do. It is fixed once the device
// has been admitted by the registry.
type CapabilitySet struct {
	HasDisplay          bool          `json:"has_display"`
	HasCamera           bool          `json:"has_camera"`
	HasNFC              bool          `json:"has_nfc"`
	HasVoiceIO          bool          `json:"has_voice_io"`
	SupportsEncryption  bool          `json:"supports_encryption"`
	InternetConnection  bool          `json:"internet_connection"`
	MaxPaymentAmount    float64       `json:"max_payment_amount,omitempty"`
	SupportedCurrencies []string      `json:"supported_currencies,omitempty"`
	SecurityLevel       SecurityLevel `json:"security_level,omitempty"`
}

// SupportsCurrency reports whether the currency is accepted. An empty
// SupportedCurrencies list accepts everything.
func (c CapabilitySet) SupportsCurrency(currency string) bool {
	if len(c.SupportedCurrencies) == 0 {
		return true
	}
	for _, supported := range c.SupportedCurrencies {
		if supported == currency {
			return true
		}
	}
	return false
}

type SecurityContext struct {
	EncryptionLevel    string `json:"encryption_level"`
	Attested           bool   `json:"attested"`
	UserAuthMethod     string `json:"user_auth_method,omitempty"`
	TrustedEnvironment bool   `json:"trusted_environment"`
}

// Device is the adapter contract every payment-capable device satisfies.
// Adapters are built outside the core; the registry assigns DeviceID.
type Device interface {
	DeviceID() string
	DeviceType() DeviceType
	Capabilities() CapabilitySet
	Fingerprint() string
	SecurityContext() SecurityContext
	HandlePaymentResponse(ctx context.Context, result PaymentResult, response DeviceResponse) error
	HandleError(ctx context.Context, err *PaymentError)
}

// PaymentUIDisplayer is implemented by devices that can show a confirmation
// screen. It is only used when the device also reports HasDisplay.
type PaymentUIDisplayer interface {
	DisplayPaymentUI(ctx context.Context, request PaymentRequest) error
}

// DiscoveredDevice is what a discovery probe reports about a device it found.
type DiscoveredDevice struct {
	Fingerprint  string            `json:"fingerprint"`
	DeviceType   DeviceType        `json:"device_type"`
	Name         string            `json:"name,omitempty"`
	Address      string            `json:"address,omitempty"`
	Capabilities CapabilitySet     `json:"capabilities"`
	Probe        string            `json:"probe"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	DiscoveredAt time.Time         `json:"discovered_at"`
}
