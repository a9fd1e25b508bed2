package cli

import (
	"github.com/spf13/cobra"

	"github.com/lexfrei/go-meraki/api/dashboard"
	"github.com/lexfrei/go-meraki/internal/overview"
)

func (a *app) orgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orgs",
		Short: "List the organizations the API key can access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client(nil)
			if err != nil {
				return err
			}

			orgs, err := client.GetOrganizations(cmd.Context())
			if err != nil {
				return err //nolint:wrapcheck // Dashboard errors are self-describing
			}

			return render(a.out, a.cfg.Output, orgs, func() *table {
				t := &table{header: []string{"ID", "NAME", "URL"}}
				for _, org := range orgs {
					t.add(org.ID, org.Name, org.URL)
				}
				return t
			})
		},
	}
}

func (a *app) networksCmd() *cobra.Command {
	var (
		orgID    string
		template string
	)

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the networks of an organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client(nil)
			if err != nil {
				return err
			}

			var params *dashboard.GetOrganizationNetworksParams
			if template != "" {
				params = &dashboard.GetOrganizationNetworksParams{ConfigTemplateID: &template}
			}

			networks, err := client.GetOrganizationNetworks(cmd.Context(), orgID, params)
			if err != nil {
				return err //nolint:wrapcheck // Dashboard errors are self-describing
			}

			return render(a.out, a.cfg.Output, networks, func() *table {
				t := &table{header: []string{"ID", "NAME", "TYPE", "TIME ZONE"}}
				for _, network := range networks {
					t.add(network.ID, network.Name, network.Type, network.TimeZone)
				}
				return t
			})
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "organization ID (required)")
	cmd.Flags().StringVar(&template, "config-template", "", "only networks bound to this configuration template")
	_ = cmd.MarkFlagRequired("org")

	return cmd
}

func (a *app) devicesCmd() *cobra.Command {
	var networkID string

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List the devices of a network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client(nil)
			if err != nil {
				return err
			}

			devices, err := client.GetNetworkDevices(cmd.Context(), networkID)
			if err != nil {
				return err //nolint:wrapcheck // Dashboard errors are self-describing
			}

			return render(a.out, a.cfg.Output, devices, func() *table {
				t := &table{header: []string{"SERIAL", "NAME", "MODEL", "MAC", "LAN IP", "FIRMWARE"}}
				for _, device := range devices {
					t.add(device.Serial, device.Name, device.Model, device.MAC, device.LanIP, device.Firmware)
				}
				return t
			})
		},
	}

	cmd.Flags().StringVar(&networkID, "network", "", "network ID (required)")
	_ = cmd.MarkFlagRequired("network")

	cmd.AddCommand(a.deviceStatusesCmd())

	return cmd
}

func (a *app) deviceStatusesCmd() *cobra.Command {
	var orgID, networkID string

	cmd := &cobra.Command{
		Use:   "statuses",
		Short: "Show the status of every device in an organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client(nil)
			if err != nil {
				return err
			}

			all, err := client.GetOrganizationDeviceStatuses(cmd.Context(), orgID)
			if err != nil {
				return err //nolint:wrapcheck // Dashboard errors are self-describing
			}

			statuses := make([]dashboard.DeviceStatus, 0, len(all))
			var counts overview.Counts
			for _, device := range all {
				if networkID != "" && device.NetworkID != networkID {
					continue
				}
				statuses = append(statuses, device)
				counts.Add(device.Status)
			}

			return render(a.out, a.cfg.Output, statuses, func() *table {
				t := &table{header: []string{"NAME", "SERIAL", "MAC", "NETWORK", "LAN IP", "LAST REPORTED", "STATUS"}}
				for _, device := range statuses {
					t.add(device.Name, device.Serial, device.MAC, device.NetworkID, device.LanIP, device.LastReportedAt, device.Status)
				}
				t.add("", "", "", "", "", "", "")
				for _, status := range counts.Statuses() {
					t.add("", "", "", "", "", status, counts.Get(status))
				}
				return t
			})
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "organization ID (required)")
	cmd.Flags().StringVar(&networkID, "network", "", "only devices of this network")
	_ = cmd.MarkFlagRequired("org")

	return cmd
}
