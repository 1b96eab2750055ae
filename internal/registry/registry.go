package registry

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/sirupsen/logrus"
)

const DefaultMinFingerprintLength = 8

// EventPublisher receives lifecycle events. Publish must not block.
type EventPublisher interface {
	Publish(evt models.Event)
}

// Registry owns admitted device handles, keyed by the id it assigns, with a
// secondary index by fingerprint so one physical device maps to one entry.
type Registry struct {
	Publisher EventPublisher

	mu                   sync.RWMutex
	devices              map[string]*registeredDevice
	byFingerprint        map[string]string
	counter              uint64
	minFingerprintLength int
}

// registeredDevice pins the registry-assigned id, the parsed device type and
// the capability set captured at admission onto the adapter.
type registeredDevice struct {
	models.Device
	id         string
	deviceType models.DeviceType
	caps       models.CapabilitySet
}

func (d *registeredDevice) DeviceID() string { return d.id }

func (d *registeredDevice) DeviceType() models.DeviceType { return d.deviceType }

func (d *registeredDevice) Capabilities() models.CapabilitySet { return cloneCapabilities(d.caps) }

// Unwrap returns the adapter as it was passed to Register, so callers can
// look for optional interfaces such as models.PaymentUIDisplayer.
func (d *registeredDevice) Unwrap() models.Device { return d.Device }

func New(minFingerprintLength int, publisher EventPublisher) *Registry {
	if minFingerprintLength <= 0 {
		minFingerprintLength = DefaultMinFingerprintLength
	}
	return &Registry{
		Publisher:            publisher,
		devices:              make(map[string]*registeredDevice),
		byFingerprint:        make(map[string]string),
		minFingerprintLength: minFingerprintLength,
	}
}

// Register validates and admits a device. Registering a fingerprint that is
// already known returns the existing id and no error. Admission is atomic:
// a device that fails validation leaves no trace.
func (r *Registry) Register(ctx context.Context, device models.Device) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := r.validate(device); err != nil {
		logrus.WithField("fields", strings.Join(err.Fields, ",")).Warnf("Device registration rejected: %v", err)
		return "", err
	}

	fingerprint := strings.TrimSpace(device.Fingerprint())
	deviceType := models.ParseDeviceType(string(device.DeviceType()))

	r.mu.Lock()
	if id, ok := r.byFingerprint[fingerprint]; ok {
		r.mu.Unlock()
		logrus.WithFields(logrus.Fields{"device_id": id, "fingerprint": fingerprint}).
			Info("Device already registered, returning existing id")
		return id, nil
	}
	r.counter++
	id := fmt.Sprintf("%s_%d_%s", deviceType, r.counter, strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	r.devices[id] = &registeredDevice{
		Device:     device,
		id:         id,
		deviceType: deviceType,
		caps:       cloneCapabilities(device.Capabilities()),
	}
	r.byFingerprint[fingerprint] = id
	r.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"device_id":   id,
		"device_type": deviceType,
	}).Info("Device registered")

	if r.Publisher != nil {
		r.Publisher.Publish(models.Event{
			Type:        models.EventDeviceRegistered,
			DeviceID:    id,
			DeviceType:  deviceType,
			Fingerprint: fingerprint,
		})
	}
	return id, nil
}

func (r *Registry) validate(device models.Device) *models.PaymentError {
	if device == nil {
		return models.NewValidationError([]string{"device"}, []string{"device is required"})
	}

	var fields, reasons []string
	if !device.Capabilities().InternetConnection {
		fields = append(fields, "internet_connection")
		reasons = append(reasons, "device must have an internet connection")
	}
	if strings.TrimSpace(device.SecurityContext().EncryptionLevel) == "" {
		fields = append(fields, "encryption_level")
		reasons = append(reasons, "security context must declare an encryption level")
	}
	if len(strings.TrimSpace(device.Fingerprint())) < r.minFingerprintLength {
		fields = append(fields, "fingerprint")
		reasons = append(reasons, fmt.Sprintf("fingerprint must be at least %d characters", r.minFingerprintLength))
	}
	if len(fields) > 0 {
		return models.NewValidationError(fields, reasons)
	}
	return nil
}

func (r *Registry) IsRegistered(fingerprint string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byFingerprint[strings.TrimSpace(fingerprint)]
	return ok
}

func (r *Registry) Get(deviceID string) (models.Device, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	device, ok := r.devices[deviceID]
	if !ok {
		return nil, false
	}
	return device, true
}

func (r *Registry) Unregister(deviceID string) error {
	r.mu.Lock()
	device, ok := r.devices[deviceID]
	if ok {
		delete(r.devices, deviceID)
		delete(r.byFingerprint, strings.TrimSpace(device.Fingerprint()))
	}
	r.mu.Unlock()

	if !ok {
		return models.NewDeviceNotFoundError(deviceID)
	}
	logrus.WithField("device_id", deviceID).Info("Device unregistered")
	return nil
}

// List returns the registered devices ordered by id.
func (r *Registry) List() []models.Device {
	r.mu.RLock()
	ids := make([]string, 0, len(r.devices))
	for id := range r.devices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	list := make([]models.Device, 0, len(ids))
	for _, id := range ids {
		list = append(list, r.devices[id])
	}
	r.mu.RUnlock()
	return list
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

func cloneCapabilities(caps models.CapabilitySet) models.CapabilitySet {
	caps.SupportedCurrencies = slices.Clone(caps.SupportedCurrencies)
	return caps
}
