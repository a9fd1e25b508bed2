// Package overview builds a per-network health summary of a Meraki
// organization: device status counts, site-to-site VPN mode and uplink
// loss/latency.
package overview

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/lexfrei/go-meraki/api/dashboard"
	"github.com/lexfrei/go-meraki/observability"
)

// NotAvailable is shown for a VPN mode or uplink summary the API did not provide.
const NotAvailable = "N/A"

// Device statuses reported by the Dashboard API.
const (
	StatusOnline   = "online"
	StatusOffline  = "offline"
	StatusAlerting = "alerting"
	StatusDormant  = "dormant"
)

const defaultConcurrency = 4

// API is the part of the Dashboard API an overview reads.
type API interface {
	GetOrganizationNetworks(ctx context.Context, organizationID string, params *dashboard.GetOrganizationNetworksParams) ([]dashboard.Network, error)
	GetOrganizationDeviceStatuses(ctx context.Context, organizationID string) ([]dashboard.DeviceStatus, error)
	GetOrganizationUplinksLossAndLatency(ctx context.Context, organizationID string, params *dashboard.GetOrganizationUplinksLossAndLatencyParams) ([]dashboard.UplinkLossAndLatency, error)
	GetNetworkSiteToSiteVpn(ctx context.Context, networkID string) (*dashboard.SiteToSiteVpn, error)
}

// Options tune Build.
type Options struct {
	// Exclude lists network names left out of the per-network rows.
	// Their devices still count towards the organization totals.
	Exclude []string

	// Concurrency bounds the parallel per-network VPN lookups (default 4).
	Concurrency int

	// Logger receives the lookups that degrade to N/A.
	Logger observability.Logger
}

// Counts tallies devices by status.
type Counts struct {
	Online   int            `json:"online"`
	Offline  int            `json:"offline"`
	Alerting int            `json:"alerting"`
	Dormant  int            `json:"dormant"`
	Other    map[string]int `json:"other,omitempty"`
}

// Add counts one device with the given status.
func (c *Counts) Add(status string) {
	switch status {
	case StatusOnline:
		c.Online++
	case StatusOffline:
		c.Offline++
	case StatusAlerting:
		c.Alerting++
	case StatusDormant:
		c.Dormant++
	default:
		if c.Other == nil {
			c.Other = map[string]int{}
		}
		c.Other[status]++
	}
}

// Get returns the count for status.
func (c Counts) Get(status string) int {
	switch status {
	case StatusOnline:
		return c.Online
	case StatusOffline:
		return c.Offline
	case StatusAlerting:
		return c.Alerting
	case StatusDormant:
		return c.Dormant
	default:
		return c.Other[status]
	}
}

// Statuses returns the four well-known statuses followed by any others
// counted, sorted.
func (c Counts) Statuses() []string {
	statuses := []string{StatusOnline, StatusOffline, StatusAlerting, StatusDormant}
	other := make([]string, 0, len(c.Other))
	for status := range c.Other {
		other = append(other, status)
	}
	slices.Sort(other)

	return append(statuses, other...)
}

// Total is the number of devices counted.
func (c Counts) Total() int {
	total := c.Online + c.Offline + c.Alerting + c.Dormant
	for _, n := range c.Other {
		total += n
	}
	return total
}

// Network is one row of the overview.
type Network struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	VPNMode string `json:"vpnMode"`
	Uplinks string `json:"uplinks"`
	Devices Counts `json:"devices"`
}

// Overview is the health summary of one organization.
type Overview struct {
	OrganizationID string    `json:"organizationId"`
	Networks       []Network `json:"networks"`
	Totals         Counts    `json:"totals"`
}

// Build fetches the organization's networks, device statuses and uplink
// statistics concurrently, then the VPN mode of every included network.
// Failing to list networks or device statuses fails the build; missing
// uplink or VPN data degrades to N/A.
func Build(ctx context.Context, api API, organizationID string, opts Options) (*Overview, error) {
	if organizationID == "" {
		return nil, errors.New("organization ID is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = observability.NoopLogger()
	}
	logger = logger.With(observability.F("organization", organizationID))

	var (
		networks []dashboard.Network
		statuses []dashboard.DeviceStatus
		uplinks  []dashboard.UplinkLossAndLatency
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		networks, err = api.GetOrganizationNetworks(gctx, organizationID, nil)
		return errors.Wrap(err, "failed to list networks")
	})
	g.Go(func() error {
		var err error
		statuses, err = api.GetOrganizationDeviceStatuses(gctx, organizationID)
		return errors.Wrap(err, "failed to list device statuses")
	})
	g.Go(func() error {
		var err error
		uplinks, err = api.GetOrganizationUplinksLossAndLatency(gctx, organizationID, nil)
		if err != nil && gctx.Err() == nil {
			logger.Warn("uplink statistics unavailable", observability.Err(err))
			uplinks = nil
			return nil
		}
		return errors.Wrap(err, "failed to fetch uplink statistics")
	})
	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // Wrapped inside the group
	}

	out := &Overview{OrganizationID: organizationID}

	byNetwork := map[string]*Counts{}
	for _, device := range statuses {
		out.Totals.Add(device.Status)

		counts, ok := byNetwork[device.NetworkID]
		if !ok {
			counts = &Counts{}
			byNetwork[device.NetworkID] = counts
		}
		counts.Add(device.Status)
	}

	for _, network := range networks {
		if slices.Contains(opts.Exclude, network.Name) {
			continue
		}

		row := Network{
			ID:      network.ID,
			Name:    network.Name,
			VPNMode: NotAvailable,
			Uplinks: summarizeUplinks(network.ID, uplinks),
		}
		if counts, ok := byNetwork[network.ID]; ok {
			row.Devices = *counts
		}
		out.Networks = append(out.Networks, row)
	}

	if err := fillVPNModes(ctx, api, out.Networks, opts.Concurrency, logger); err != nil {
		return nil, err
	}

	return out, nil
}

func fillVPNModes(ctx context.Context, api API, rows []Network, limit int, logger observability.Logger) error {
	if limit <= 0 {
		limit = defaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range rows {
		g.Go(func() error {
			vpn, err := api.GetNetworkSiteToSiteVpn(gctx, rows[i].ID)
			switch {
			case err == nil && vpn != nil && vpn.Mode != "":
				rows[i].VPNMode = vpn.Mode
			case gctx.Err() != nil:
				return errors.Wrapf(gctx.Err(), "VPN lookup for %s", rows[i].ID)
			case err != nil:
				logger.Debug("site-to-site VPN unavailable",
					observability.F("network", rows[i].ID),
					observability.Err(err),
				)
			}
			return nil
		})
	}

	return g.Wait() //nolint:wrapcheck // Wrapped inside the group
}

// summarizeUplinks renders the average loss and latency of each uplink of a
// network, for example "wan1 0.0% loss 21.3ms".
func summarizeUplinks(networkID string, uplinks []dashboard.UplinkLossAndLatency) string {
	var parts []string
	for _, uplink := range uplinks {
		if uplink.NetworkID != networkID {
			continue
		}
		parts = append(parts, summarizeUplink(uplink))
	}

	if len(parts) == 0 {
		return NotAvailable
	}
	slices.Sort(parts)

	return strings.Join(parts, ", ")
}

func summarizeUplink(uplink dashboard.UplinkLossAndLatency) string {
	var (
		loss, latency           float64
		lossCount, latencyCount int
	)
	for _, point := range uplink.TimeSeries {
		if point.LossPercent != nil {
			loss += *point.LossPercent
			lossCount++
		}
		if point.LatencyMs != nil {
			latency += *point.LatencyMs
			latencyCount++
		}
	}

	if lossCount == 0 && latencyCount == 0 {
		return uplink.Uplink + " no data"
	}

	summary := uplink.Uplink
	if lossCount > 0 {
		summary += fmt.Sprintf(" %.1f%% loss", loss/float64(lossCount))
	}
	if latencyCount > 0 {
		summary += fmt.Sprintf(" %.1fms", latency/float64(latencyCount))
	}

	return summary
}
