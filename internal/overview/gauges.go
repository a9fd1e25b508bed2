package overview

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Gauges exports an Overview as Prometheus gauges. Collectors are created
// unregistered; call Register to expose them.
type Gauges struct {
	networkDevices *prometheus.GaugeVec
	orgDevices     *prometheus.GaugeVec
	networkVPN     *prometheus.GaugeVec
}

// NewGauges creates gauges whose names are prefixed with namespace
// (for example "meraki" produces meraki_network_devices).
func NewGauges(namespace string) *Gauges {
	return &Gauges{
		networkDevices: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "network_devices",
				Help:      "Devices per network by status",
			},
			[]string{"network", "status"},
		),
		orgDevices: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "organization_devices",
				Help:      "Devices in the organization by status",
			},
			[]string{"organization", "status"},
		),
		networkVPN: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "network_vpn_mode",
				Help:      "Site-to-site VPN mode of each network (1 for the current mode)",
			},
			[]string{"network", "mode"},
		),
	}
}

// Register registers all gauges with reg.
func (g *Gauges) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{g.networkDevices, g.orgDevices, g.networkVPN} {
		if err := reg.Register(c); err != nil {
			return errors.Wrap(err, "failed to register gauge")
		}
	}
	return nil
}

// Update replaces the exported values with those of o. Networks missing
// from o disappear from the output.
func (g *Gauges) Update(o *Overview) {
	g.networkDevices.Reset()
	g.orgDevices.Reset()
	g.networkVPN.Reset()

	if o == nil {
		return
	}

	for _, network := range o.Networks {
		for _, status := range network.Devices.Statuses() {
			g.networkDevices.WithLabelValues(network.Name, status).Set(float64(network.Devices.Get(status)))
		}
		g.networkVPN.WithLabelValues(network.Name, network.VPNMode).Set(1)
	}

	for _, status := range o.Totals.Statuses() {
		g.orgDevices.WithLabelValues(o.OrganizationID, status).Set(float64(o.Totals.Get(status)))
	}
}
