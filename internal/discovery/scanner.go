package discovery

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type State string

const (
	StateIdle     State = "idle"
	StateScanning State = "scanning"

	DefaultInterval       = 30 * time.Second
	DefaultProbeTimeout   = 5 * time.Second
	DefaultMaxConcurrency = 8
)

// Probe looks for devices of one category.
type Probe interface {
	Name() string
	Scan(ctx context.Context, timeout time.Duration) ([]models.DiscoveredDevice, error)
}

// FingerprintIndex answers whether a device is already registered.
type FingerprintIndex interface {
	IsRegistered(fingerprint string) bool
}

// EventPublisher receives lifecycle events. Publish must not block.
type EventPublisher interface {
	Publish(evt models.Event)
}

type Config struct {
	Interval       time.Duration
	ProbeTimeout   time.Duration
	MaxConcurrency int
}

// Scanner periodically runs every probe, drops devices that are already
// registered and announces the rest as device_discovered events. It never
// registers devices itself.
type Scanner struct {
	Probes    []Probe
	Registry  FingerprintIndex
	Publisher EventPublisher

	cfg      Config
	scanning atomic.Bool

	mu       sync.Mutex
	cron     *cron.Cron
	stop     chan struct{}
	lastScan time.Time
}

func NewScanner(registry FingerprintIndex, publisher EventPublisher, cfg Config, probes ...Probe) *Scanner {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = DefaultProbeTimeout
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	return &Scanner{
		Probes:    probes,
		Registry:  registry,
		Publisher: publisher,
		cfg:       cfg,
	}
}

func (s *Scanner) State() State {
	if s.scanning.Load() {
		return StateScanning
	}
	return StateIdle
}

// LastScan returns when the most recent scan cycle finished.
func (s *Scanner) LastScan() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastScan
}

// Start schedules ScanOnce every configured interval until Stop is called
// or ctx is done. A tick that fires while a scan is still running is skipped.
func (s *Scanner) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return fmt.Errorf("discovery scanner already started")
	}

	logger := cron.PrintfLogger(logrus.StandardLogger())
	c := cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)))
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", s.cfg.Interval), func() { s.ScanOnce(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule discovery scan: %w", err)
	}
	stop := make(chan struct{})
	s.cron, s.stop = c, stop
	c.Start()

	go func() {
		select {
		case <-ctx.Done():
			s.halt(c)
		case <-stop:
		}
	}()

	logrus.WithFields(logrus.Fields{
		"interval": s.cfg.Interval.String(),
		"probes":   len(s.Probes),
	}).Info("Discovery scanner started")
	return nil
}

// Stop halts scheduling and waits for a running scan to finish.
func (s *Scanner) Stop() {
	s.halt(nil)
}

// halt stops the current schedule. A non-nil owner only stops the schedule
// it started, so a cancelled context from an earlier Start leaves a
// restarted scanner running.
func (s *Scanner) halt(owner *cron.Cron) {
	s.mu.Lock()
	c, stop := s.cron, s.stop
	if c == nil || (owner != nil && c != owner) {
		s.mu.Unlock()
		return
	}
	s.cron, s.stop = nil, nil
	s.mu.Unlock()

	close(stop)
	<-c.Stop().Done()
	logrus.Info("Discovery scanner stopped")
}

// ScanOnce runs one discovery cycle and returns the devices that are new in
// it. A probe that fails or panics is logged and skipped; the others still
// report. Calling ScanOnce while a cycle is running returns nil.
func (s *Scanner) ScanOnce(ctx context.Context) []models.DiscoveredDevice {
	if !s.scanning.CompareAndSwap(false, true) {
		logrus.Debug("Discovery scan already running, skipping")
		return nil
	}
	defer s.scanning.Store(false)

	started := time.Now()
	found := make([][]models.DiscoveredDevice, len(s.Probes))

	var g errgroup.Group
	g.SetLimit(s.cfg.MaxConcurrency)
	for i, probe := range s.Probes {
		g.Go(func() error {
			devices, err := s.runProbe(ctx, probe)
			if err != nil {
				logrus.WithField("probe", probe.Name()).Warn(models.NewScannerProbeError(probe.Name(), err).Error())
				return nil
			}
			found[i] = devices
			return nil
		})
	}
	_ = g.Wait()

	fresh := s.filter(found)
	for i := range fresh {
		device := fresh[i]
		if s.Publisher != nil {
			s.Publisher.Publish(models.Event{
				Type:        models.EventDeviceDiscovered,
				DeviceType:  device.DeviceType,
				Fingerprint: device.Fingerprint,
				Discovered:  &device,
			})
		}
	}

	s.mu.Lock()
	s.lastScan = time.Now()
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"probes":   len(s.Probes),
		"new":      len(fresh),
		"duration": time.Since(started).String(),
	}).Info("Discovery scan finished")
	return fresh
}

func (s *Scanner) runProbe(ctx context.Context, probe Probe) (devices []models.DiscoveredDevice, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("probe panicked: %v", r)
		}
	}()
	pctx, cancel := context.WithTimeout(ctx, s.cfg.ProbeTimeout)
	defer cancel()

	devices, err = probe.Scan(pctx, s.cfg.ProbeTimeout)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for i := range devices {
		if devices[i].Probe == "" {
			devices[i].Probe = probe.Name()
		}
		if devices[i].DiscoveredAt.IsZero() {
			devices[i].DiscoveredAt = now
		}
		devices[i].DeviceType = models.ParseDeviceType(string(devices[i].DeviceType))
	}
	return devices, nil
}

// filter drops blank and registered fingerprints and keeps the first report
// of each fingerprint within the cycle.
func (s *Scanner) filter(found [][]models.DiscoveredDevice) []models.DiscoveredDevice {
	seen := make(map[string]struct{})
	var fresh []models.DiscoveredDevice
	for _, devices := range found {
		for _, device := range devices {
			fingerprint := strings.TrimSpace(device.Fingerprint)
			if fingerprint == "" {
				continue
			}
			if _, dup := seen[fingerprint]; dup {
				continue
			}
			seen[fingerprint] = struct{}{}
			if s.Registry != nil && s.Registry.IsRegistered(fingerprint) {
				continue
			}
			device.Fingerprint = fingerprint
			fresh = append(fresh, device)
		}
	}
	return fresh
}
