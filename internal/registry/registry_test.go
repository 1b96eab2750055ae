package registry_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jeffleon2/draftea-device-payments/internal/events"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/jeffleon2/draftea-device-payments/internal/models/mocks"
	"github.com/jeffleon2/draftea-device-payments/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevice(t *testing.T, deviceType models.DeviceType, fingerprint string, caps models.CapabilitySet, sec models.SecurityContext) *mocks.MockDevice {
	device := mocks.NewMockDevice(t)
	device.EXPECT().DeviceType().Return(deviceType).Maybe()
	device.EXPECT().Fingerprint().Return(fingerprint).Maybe()
	device.EXPECT().Capabilities().Return(caps).Maybe()
	device.EXPECT().SecurityContext().Return(sec).Maybe()
	return device
}

func validDevice(t *testing.T, fingerprint string) *mocks.MockDevice {
	return newDevice(t, models.DeviceSmartphone, fingerprint,
		models.CapabilitySet{InternetConnection: true, HasNFC: true, SupportedCurrencies: []string{"USD"}},
		models.SecurityContext{EncryptionLevel: "aes256"})
}

func TestRegister_Success(t *testing.T) {
	bus := events.NewBus()
	sub := bus.Subscribe("test", 4)
	reg := registry.New(8, bus)

	id, err := reg.Register(context.Background(), validDevice(t, "fp-phone-0001"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "smartphone_1_"))
	assert.Len(t, strings.TrimPrefix(id, "smartphone_1_"), 8)
	assert.True(t, reg.IsRegistered("fp-phone-0001"))
	assert.Equal(t, 1, reg.Count())

	device, ok := reg.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, device.DeviceID())
	assert.Equal(t, models.DeviceSmartphone, device.DeviceType())

	evt := <-sub
	assert.Equal(t, models.EventDeviceRegistered, evt.Type)
	assert.Equal(t, id, evt.DeviceID)
	assert.Equal(t, "fp-phone-0001", evt.Fingerprint)
}

func TestRegister_NoInternetConnection(t *testing.T) {
	reg := registry.New(8, nil)
	device := newDevice(t, models.DeviceIoT, "fp-fridge-0001",
		models.CapabilitySet{InternetConnection: false},
		models.SecurityContext{EncryptionLevel: "aes128"})

	id, err := reg.Register(context.Background(), device)

	require.Error(t, err)
	assert.Empty(t, id)
	assert.True(t, errors.Is(err, models.ErrValidation))
	var pe *models.PaymentError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{"internet_connection"}, pe.Fields)
	assert.False(t, reg.IsRegistered("fp-fridge-0001"))
	assert.Zero(t, reg.Count())
}

func TestRegister_ReportsEveryInvalidField(t *testing.T) {
	reg := registry.New(8, nil)
	device := newDevice(t, models.DeviceSmartTV, "short", models.CapabilitySet{}, models.SecurityContext{})

	_, err := reg.Register(context.Background(), device)

	var pe *models.PaymentError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{"internet_connection", "encryption_level", "fingerprint"}, pe.Fields)
	assert.Contains(t, pe.Message, "at least 8 characters")
}

func TestRegister_NilDevice(t *testing.T) {
	reg := registry.New(8, nil)

	_, err := reg.Register(context.Background(), nil)

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRegister_CancelledContext(t *testing.T) {
	reg := registry.New(8, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reg.Register(ctx, mocks.NewMockDevice(t))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegister_IdempotentByFingerprint(t *testing.T) {
	bus := events.NewBus()
	sub := bus.Subscribe("test", 4)
	reg := registry.New(8, bus)

	first, err := reg.Register(context.Background(), validDevice(t, "fp-watch-0001"))
	require.NoError(t, err)
	second, err := reg.Register(context.Background(), validDevice(t, "fp-watch-0001"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, reg.Count())
	assert.Len(t, sub, 1)
}

func TestRegister_ConcurrentSameFingerprint(t *testing.T) {
	reg := registry.New(8, nil)

	const callers = 16
	ids := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		device := validDevice(t, "fp-shared-0001")
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := reg.Register(context.Background(), device)
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, reg.Count())
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestRegister_UnknownDeviceTypeGetsUnknownPrefix(t *testing.T) {
	reg := registry.New(8, nil)
	device := newDevice(t, models.DeviceType("toaster"), "fp-toaster-01",
		models.CapabilitySet{InternetConnection: true}, models.SecurityContext{EncryptionLevel: "tls"})

	id, err := reg.Register(context.Background(), device)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "unknown_1_"))

	registered, ok := reg.Get(id)
	require.True(t, ok)
	assert.Equal(t, models.DeviceUnknown, registered.DeviceType())
	assert.Equal(t, models.CategoryGeneric, models.CategoryOf(registered.DeviceType()))
}

func TestRegister_CapabilitiesAreFixedAtAdmission(t *testing.T) {
	reg := registry.New(8, nil)
	caps := models.CapabilitySet{InternetConnection: true, SupportedCurrencies: []string{"USD"}}
	device := newDevice(t, models.DeviceSmartphone, "fp-phone-0002", caps, models.SecurityContext{EncryptionLevel: "aes"})

	id, err := reg.Register(context.Background(), device)
	require.NoError(t, err)
	caps.SupportedCurrencies[0] = "EUR"

	registered, _ := reg.Get(id)
	assert.Equal(t, []string{"USD"}, registered.Capabilities().SupportedCurrencies)
}

func TestUnregister(t *testing.T) {
	reg := registry.New(8, nil)
	id, err := reg.Register(context.Background(), validDevice(t, "fp-phone-0003"))
	require.NoError(t, err)

	require.NoError(t, reg.Unregister(id))

	assert.False(t, reg.IsRegistered("fp-phone-0003"))
	_, ok := reg.Get(id)
	assert.False(t, ok)
	assert.ErrorIs(t, reg.Unregister(id), models.ErrDeviceNotFound)
}

func TestList_OrderedByID(t *testing.T) {
	reg := registry.New(8, nil)
	a, _ := reg.Register(context.Background(), validDevice(t, "fp-list-0001"))
	b, _ := reg.Register(context.Background(), validDevice(t, "fp-list-0002"))

	devices := reg.List()

	require.Len(t, devices, 2)
	assert.Equal(t, a, devices[0].DeviceID())
	assert.Equal(t, b, devices[1].DeviceID())
}
