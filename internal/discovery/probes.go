package discovery

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
)

// StaticProbe reports a fixed set of devices. It stands in for transports
// that cannot be reached from the process, such as simulated BLE or NFC
// readers.
type StaticProbe struct {
	name    string
	devices []models.DiscoveredDevice
}

func NewStaticProbe(name string, devices ...models.DiscoveredDevice) *StaticProbe {
	return &StaticProbe{name: name, devices: devices}
}

func (p *StaticProbe) Name() string { return p.name }

func (p *StaticProbe) Scan(ctx context.Context, _ time.Duration) ([]models.DiscoveredDevice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(p.devices), nil
}

// HTTPProbe asks a device hub for the devices it can see. The hub answers
// GET with a JSON array of discovered devices.
type HTTPProbe struct {
	name       string
	url        string
	deviceType models.DeviceType
	client     *resty.Client
}

func NewHTTPProbe(name string, deviceType models.DeviceType, url string, client *resty.Client) *HTTPProbe {
	if client == nil {
		client = resty.New().SetRetryCount(0)
	}
	return &HTTPProbe{name: name, url: url, deviceType: deviceType, client: client}
}

func (p *HTTPProbe) Name() string { return p.name }

func (p *HTTPProbe) Scan(ctx context.Context, timeout time.Duration) ([]models.DiscoveredDevice, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var devices []models.DiscoveredDevice
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&devices).
		Get(p.url)
	if err != nil {
		return nil, fmt.Errorf("hub request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("hub %s answered %s", p.url, resp.Status())
	}

	for i := range devices {
		if devices[i].DeviceType == "" {
			devices[i].DeviceType = p.deviceType
		}
		if devices[i].Metadata == nil {
			devices[i].Metadata = map[string]string{}
		}
		devices[i].Metadata["hub"] = p.url
	}
	return devices, nil
}

// HubProbes builds one HTTPProbe per "device_type=url" entry.
func HubProbes(entries []string, client *resty.Client) ([]Probe, error) {
	probes := make([]Probe, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		kind, url, ok := strings.Cut(entry, "=")
		if !ok || strings.TrimSpace(url) == "" {
			return nil, fmt.Errorf("invalid hub entry %q, want device_type=url", entry)
		}
		deviceType := models.ParseDeviceType(strings.TrimSpace(kind))
		probes = append(probes, NewHTTPProbe("hub_"+string(deviceType), deviceType, strings.TrimSpace(url), client))
	}
	return probes, nil
}

// StaticProbeFromEntries builds a StaticProbe from "device_type=fingerprint"
// entries. It returns nil when there are no entries.
func StaticProbeFromEntries(name string, entries []string) (*StaticProbe, error) {
	var devices []models.DiscoveredDevice
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		kind, fingerprint, ok := strings.Cut(entry, "=")
		if !ok || strings.TrimSpace(fingerprint) == "" {
			return nil, fmt.Errorf("invalid static device %q, want device_type=fingerprint", entry)
		}
		devices = append(devices, models.DiscoveredDevice{
			Fingerprint: strings.TrimSpace(fingerprint),
			DeviceType:  models.ParseDeviceType(strings.TrimSpace(kind)),
		})
	}
	if len(devices) == 0 {
		return nil, nil
	}
	return NewStaticProbe(name, devices...), nil
}
