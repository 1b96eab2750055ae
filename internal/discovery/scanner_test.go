package discovery_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-device-payments/internal/discovery"
	"github.com/jeffleon2/draftea-device-payments/internal/discovery/mocks"
	"github.com/jeffleon2/draftea-device-payments/internal/events"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discovered(fingerprint string, deviceType models.DeviceType) models.DiscoveredDevice {
	return models.DiscoveredDevice{
		Fingerprint:  fingerprint,
		DeviceType:   deviceType,
		Capabilities: models.CapabilitySet{InternetConnection: true},
	}
}

func newProbe(t *testing.T, name string) *mocks.MockProbe {
	probe := mocks.NewMockProbe(t)
	probe.EXPECT().Name().Return(name).Maybe()
	return probe
}

func fingerprints(devices []models.DiscoveredDevice) []string {
	var out []string
	for _, d := range devices {
		out = append(out, d.Fingerprint)
	}
	return out
}

func TestScanOnce_FiltersRegisteredAndDuplicates(t *testing.T) {
	index := mocks.NewMockFingerprintIndex(t)
	bus := events.NewBus()
	sub := bus.Subscribe("test", 8)

	phones := newProbe(t, "phones")
	phones.EXPECT().Scan(mock.Anything, mock.Anything).
		Return([]models.DiscoveredDevice{discovered("fp-phone-001", models.DeviceSmartphone), discovered("fp-phone-002", models.DeviceSmartphone)}, nil).
		Once()
	tvs := newProbe(t, "tvs")
	tvs.EXPECT().Scan(mock.Anything, mock.Anything).
		Return([]models.DiscoveredDevice{discovered("fp-phone-001", models.DeviceSmartphone), discovered("fp-tv-001", models.DeviceSmartTV)}, nil).
		Once()

	index.EXPECT().IsRegistered("fp-phone-001").Return(false).Once()
	index.EXPECT().IsRegistered("fp-phone-002").Return(false).Once()
	index.EXPECT().IsRegistered("fp-tv-001").Return(true).Once()

	scanner := discovery.NewScanner(index, bus, discovery.Config{}, phones, tvs)
	fresh := scanner.ScanOnce(context.Background())

	assert.ElementsMatch(t, []string{"fp-phone-001", "fp-phone-002"}, fingerprints(fresh))
	assert.Equal(t, discovery.StateIdle, scanner.State())
	assert.False(t, scanner.LastScan().IsZero())
	require.Len(t, sub, 2)
	evt := <-sub
	assert.Equal(t, models.EventDeviceDiscovered, evt.Type)
	require.NotNil(t, evt.Discovered)
	assert.Equal(t, evt.Fingerprint, evt.Discovered.Fingerprint)
	assert.NotEmpty(t, evt.Discovered.Probe)
}

func TestScanOnce_ProbeFailuresAreIsolated(t *testing.T) {
	index := mocks.NewMockFingerprintIndex(t)
	index.EXPECT().IsRegistered(mock.Anything).Return(false)

	failing := newProbe(t, "failing")
	failing.EXPECT().Scan(mock.Anything, mock.Anything).Return(nil, errors.New("radio off")).Once()
	panicking := newProbe(t, "panicking")
	panicking.EXPECT().Scan(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Duration) ([]models.DiscoveredDevice, error) {
			panic("driver crashed")
		}).
		Once()
	healthy := discovery.NewStaticProbe("static", discovered("fp-console-01", models.DeviceGamingConsole))

	scanner := discovery.NewScanner(index, nil, discovery.Config{}, failing, panicking, healthy)

	var fresh []models.DiscoveredDevice
	require.NotPanics(t, func() { fresh = scanner.ScanOnce(context.Background()) })

	require.Len(t, fresh, 1)
	assert.Equal(t, "fp-console-01", fresh[0].Fingerprint)
	assert.Equal(t, "static", fresh[0].Probe)
	assert.Equal(t, models.DeviceGamingConsole, fresh[0].DeviceType)
}

func TestScanOnce_SlowProbeTimesOut(t *testing.T) {
	index := mocks.NewMockFingerprintIndex(t)
	index.EXPECT().IsRegistered(mock.Anything).Return(false)

	slow := newProbe(t, "slow")
	slow.EXPECT().Scan(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ time.Duration) ([]models.DiscoveredDevice, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).
		Once()
	fast := discovery.NewStaticProbe("fast", discovered("fp-watch-001", models.DeviceSmartwatch))

	scanner := discovery.NewScanner(index, nil, discovery.Config{ProbeTimeout: 20 * time.Millisecond}, slow, fast)
	fresh := scanner.ScanOnce(context.Background())

	assert.Equal(t, []string{"fp-watch-001"}, fingerprints(fresh))
}

func TestScanOnce_UnregisteredDeviceIsAnnouncedEveryCycle(t *testing.T) {
	index := mocks.NewMockFingerprintIndex(t)
	index.EXPECT().IsRegistered("fp-car-0001").Return(false).Twice()
	probe := discovery.NewStaticProbe("cars", discovered("fp-car-0001", models.DeviceCarSystem))
	scanner := discovery.NewScanner(index, nil, discovery.Config{}, probe)

	assert.Len(t, scanner.ScanOnce(context.Background()), 1)
	assert.Len(t, scanner.ScanOnce(context.Background()), 1)
}

func TestScanOnce_SkipsWhileAlreadyScanning(t *testing.T) {
	index := mocks.NewMockFingerprintIndex(t)
	index.EXPECT().IsRegistered(mock.Anything).Return(false).Maybe()

	release := make(chan struct{})
	blocking := newProbe(t, "blocking")
	blocking.EXPECT().Scan(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Duration) ([]models.DiscoveredDevice, error) {
			<-release
			return nil, nil
		}).
		Once()

	scanner := discovery.NewScanner(index, nil, discovery.Config{}, blocking)
	done := make(chan struct{})
	go func() {
		scanner.ScanOnce(context.Background())
		close(done)
	}()

	assert.Eventually(t, func() bool { return scanner.State() == discovery.StateScanning }, time.Second, 5*time.Millisecond)
	assert.Nil(t, scanner.ScanOnce(context.Background()))

	close(release)
	<-done
	assert.Equal(t, discovery.StateIdle, scanner.State())
}

func TestStart_RunsOnScheduleUntilStopped(t *testing.T) {
	index := mocks.NewMockFingerprintIndex(t)
	index.EXPECT().IsRegistered(mock.Anything).Return(false)
	bus := events.NewBus()
	sub := bus.Subscribe("test", 64)
	probe := discovery.NewStaticProbe("iot", discovered("fp-fridge-01", models.DeviceIoT))

	scanner := discovery.NewScanner(index, bus, discovery.Config{Interval: time.Second}, probe)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, scanner.Start(ctx))
	assert.Error(t, scanner.Start(ctx))

	select {
	case evt := <-sub:
		assert.Equal(t, "fp-fridge-01", evt.Fingerprint)
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled scan did not run")
	}

	scanner.Stop()
	scanner.Stop()
}

func TestStart_RestartOutlivesEarlierContext(t *testing.T) {
	index := mocks.NewMockFingerprintIndex(t)
	index.EXPECT().IsRegistered(mock.Anything).Return(false).Maybe()
	bus := events.NewBus()
	sub := bus.Subscribe("test", 64)
	probe := discovery.NewStaticProbe("iot", discovered("fp-fridge-02", models.DeviceIoT))
	scanner := discovery.NewScanner(index, bus, discovery.Config{Interval: time.Second}, probe)

	first, cancelFirst := context.WithCancel(context.Background())
	require.NoError(t, scanner.Start(first))
	scanner.Stop()

	second, cancelSecond := context.WithCancel(context.Background())
	defer cancelSecond()
	require.NoError(t, scanner.Start(second))
	defer scanner.Stop()

	cancelFirst()
	time.Sleep(50 * time.Millisecond)

	assert.ErrorContains(t, scanner.Start(second), "already started")
	select {
	case evt := <-sub:
		assert.Equal(t, "fp-fridge-02", evt.Fingerprint)
	case <-time.After(3 * time.Second):
		t.Fatal("restarted scanner stopped scheduling")
	}
}

func TestStart_ContextCancellationStopsScanner(t *testing.T) {
	scanner := discovery.NewScanner(mocks.NewMockFingerprintIndex(t), nil, discovery.Config{Interval: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, scanner.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool {
		if err := scanner.Start(context.Background()); err != nil {
			return false
		}
		scanner.Stop()
		return true
	}, time.Second, 10*time.Millisecond)
}
