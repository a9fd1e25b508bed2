package dashboard

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-meraki/internal/middleware"
	"github.com/lexfrei/go-meraki/internal/testutil"
)

type operationCase struct {
	operationID string
	method      string
	path        string
	call        func(ctx context.Context, c *Client) error
}

func operationCases() []operationCase {
	return []operationCase{
		{
			operationID: "getOrganizationAdmins",
			method:      http.MethodGet,
			path:        "/organizations/2930418/admins",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationAdmins(ctx, testOrgID)
				return err
			},
		},
		{
			operationID: "createOrganizationAdmin",
			method:      http.MethodPost,
			path:        "/organizations/2930418/admins",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateOrganizationAdmin(ctx, testOrgID, &CreateOrganizationAdmin{})
				return err
			},
		},
		{
			operationID: "updateOrganizationAdmin",
			method:      http.MethodPut,
			path:        "/organizations/2930418/admins/212406",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateOrganizationAdmin(ctx, testOrgID, "212406", &UpdateOrganizationAdmin{})
				return err
			},
		},
		{
			operationID: "deleteOrganizationAdmin",
			method:      http.MethodDelete,
			path:        "/organizations/2930418/admins/212406",
			call: func(ctx context.Context, c *Client) error {
				return c.DeleteOrganizationAdmin(ctx, testOrgID, "212406")
			},
		},
		{
			operationID: "getOrganizations",
			method:      http.MethodGet,
			path:        "/organizations",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizations(ctx)
				return err
			},
		},
		{
			operationID: "getOrganization",
			method:      http.MethodGet,
			path:        "/organizations/2930418",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganization(ctx, testOrgID)
				return err
			},
		},
		{
			operationID: "createOrganization",
			method:      http.MethodPost,
			path:        "/organizations",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateOrganization(ctx, &CreateOrganization{})
				return err
			},
		},
		{
			operationID: "updateOrganization",
			method:      http.MethodPut,
			path:        "/organizations/2930418",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateOrganization(ctx, testOrgID, &UpdateOrganization{})
				return err
			},
		},
		{
			operationID: "cloneOrganization",
			method:      http.MethodPost,
			path:        "/organizations/2930418/clone",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CloneOrganization(ctx, testOrgID, &CloneOrganization{})
				return err
			},
		},
		{
			operationID: "claimOrganization",
			method:      http.MethodPost,
			path:        "/organizations/2930418/claim",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ClaimOrganization(ctx, testOrgID, &ClaimOrganization{})
				return err
			},
		},
		{
			operationID: "getOrganizationDeviceStatuses",
			method:      http.MethodGet,
			path:        "/organizations/2930418/deviceStatuses",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationDeviceStatuses(ctx, testOrgID)
				return err
			},
		},
		{
			operationID: "getOrganizationInventory",
			method:      http.MethodGet,
			path:        "/organizations/2930418/inventory",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationInventory(ctx, testOrgID)
				return err
			},
		},
		{
			operationID: "getOrganizationLicenseState",
			method:      http.MethodGet,
			path:        "/organizations/2930418/licenseState",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationLicenseState(ctx, testOrgID)
				return err
			},
		},
		{
			operationID: "getOrganizationUplinksLossAndLatency",
			method:      http.MethodGet,
			path:        "/organizations/2930418/uplinksLossAndLatency",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationUplinksLossAndLatency(ctx, testOrgID, nil)
				return err
			},
		},
		{
			operationID: "getOrganizationSnmp",
			method:      http.MethodGet,
			path:        "/organizations/2930418/snmp",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationSnmp(ctx, testOrgID)
				return err
			},
		},
		{
			operationID: "updateOrganizationSnmp",
			method:      http.MethodPut,
			path:        "/organizations/2930418/snmp",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateOrganizationSnmp(ctx, testOrgID, &UpdateOrganizationSnmp{})
				return err
			},
		},
		{
			operationID: "getOrganizationThirdPartyVPNPeers",
			method:      http.MethodGet,
			path:        "/organizations/2930418/thirdPartyVPNPeers",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationThirdPartyVPNPeers(ctx, testOrgID)
				return err
			},
		},
		{
			operationID: "updateOrganizationThirdPartyVPNPeers",
			method:      http.MethodPut,
			path:        "/organizations/2930418/thirdPartyVPNPeers",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateOrganizationThirdPartyVPNPeers(ctx, testOrgID, &UpdateOrganizationThirdPartyVPNPeers{})
				return err
			},
		},
		{
			operationID: "getOrganizationVpnFirewallRules",
			method:      http.MethodGet,
			path:        "/organizations/2930418/vpnFirewallRules",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationVpnFirewallRules(ctx, testOrgID)
				return err
			},
		},
		{
			operationID: "updateOrganizationVpnFirewallRules",
			method:      http.MethodPut,
			path:        "/organizations/2930418/vpnFirewallRules",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateOrganizationVpnFirewallRules(ctx, testOrgID, &UpdateOrganizationVpnFirewallRules{})
				return err
			},
		},
		{
			operationID: "getOrganizationActionBatches",
			method:      http.MethodGet,
			path:        "/organizations/2930418/actionBatches",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationActionBatches(ctx, testOrgID)
				return err
			},
		},
		{
			operationID: "createOrganizationActionBatch",
			method:      http.MethodPost,
			path:        "/organizations/2930418/actionBatches",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateOrganizationActionBatch(ctx, testOrgID, &CreateOrganizationActionBatch{})
				return err
			},
		},
		{
			operationID: "getOrganizationActionBatch",
			method:      http.MethodGet,
			path:        "/organizations/2930418/actionBatches/123",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationActionBatch(ctx, testOrgID, "123")
				return err
			},
		},
		{
			operationID: "updateOrganizationActionBatch",
			method:      http.MethodPut,
			path:        "/organizations/2930418/actionBatches/123",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateOrganizationActionBatch(ctx, testOrgID, "123", &UpdateOrganizationActionBatch{})
				return err
			},
		},
		{
			operationID: "deleteOrganizationActionBatch",
			method:      http.MethodDelete,
			path:        "/organizations/2930418/actionBatches/123",
			call: func(ctx context.Context, c *Client) error {
				return c.DeleteOrganizationActionBatch(ctx, testOrgID, "123")
			},
		},
		{
			operationID: "getOrganizationSamlRoles",
			method:      http.MethodGet,
			path:        "/organizations/2930418/samlRoles",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationSamlRoles(ctx, testOrgID)
				return err
			},
		},
		{
			operationID: "createOrganizationSamlRole",
			method:      http.MethodPost,
			path:        "/organizations/2930418/samlRoles",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateOrganizationSamlRole(ctx, testOrgID, &CreateOrganizationSamlRole{})
				return err
			},
		},
		{
			operationID: "getOrganizationSamlRole",
			method:      http.MethodGet,
			path:        "/organizations/2930418/samlRoles/212406",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationSamlRole(ctx, testOrgID, "212406")
				return err
			},
		},
		{
			operationID: "updateOrganizationSamlRole",
			method:      http.MethodPut,
			path:        "/organizations/2930418/samlRoles/212406",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateOrganizationSamlRole(ctx, testOrgID, "212406", &UpdateOrganizationSamlRole{})
				return err
			},
		},
		{
			operationID: "deleteOrganizationSamlRole",
			method:      http.MethodDelete,
			path:        "/organizations/2930418/samlRoles/212406",
			call: func(ctx context.Context, c *Client) error {
				return c.DeleteOrganizationSamlRole(ctx, testOrgID, "212406")
			},
		},
		{
			operationID: "getOrganizationNetworks",
			method:      http.MethodGet,
			path:        "/organizations/2930418/networks",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOrganizationNetworks(ctx, testOrgID, nil)
				return err
			},
		},
		{
			operationID: "createOrganizationNetwork",
			method:      http.MethodPost,
			path:        "/organizations/2930418/networks",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateOrganizationNetwork(ctx, testOrgID, &CreateOrganizationNetwork{})
				return err
			},
		},
		{
			operationID: "combineOrganizationNetworks",
			method:      http.MethodPost,
			path:        "/organizations/2930418/networks/combine",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CombineOrganizationNetworks(ctx, testOrgID, &CombineOrganizationNetworks{})
				return err
			},
		},
		{
			operationID: "getNetwork",
			method:      http.MethodGet,
			path:        "/networks/N_1111",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetwork(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "updateNetwork",
			method:      http.MethodPut,
			path:        "/networks/N_1111",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetwork(ctx, testNetworkID, &UpdateNetwork{})
				return err
			},
		},
		{
			operationID: "deleteNetwork",
			method:      http.MethodDelete,
			path:        "/networks/N_1111",
			call: func(ctx context.Context, c *Client) error {
				return c.DeleteNetwork(ctx, testNetworkID)
			},
		},
		{
			operationID: "bindNetwork",
			method:      http.MethodPost,
			path:        "/networks/N_1111/bind",
			call: func(ctx context.Context, c *Client) error {
				return c.BindNetwork(ctx, testNetworkID, &BindNetwork{})
			},
		},
		{
			operationID: "unbindNetwork",
			method:      http.MethodPost,
			path:        "/networks/N_1111/unbind",
			call: func(ctx context.Context, c *Client) error {
				return c.UnbindNetwork(ctx, testNetworkID)
			},
		},
		{
			operationID: "getNetworkSiteToSiteVpn",
			method:      http.MethodGet,
			path:        "/networks/N_1111/siteToSiteVpn",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkSiteToSiteVpn(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "updateNetworkSiteToSiteVpn",
			method:      http.MethodPut,
			path:        "/networks/N_1111/siteToSiteVpn",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkSiteToSiteVpn(ctx, testNetworkID, &UpdateNetworkSiteToSiteVpn{})
				return err
			},
		},
		{
			operationID: "getNetworkTraffic",
			method:      http.MethodGet,
			path:        "/networks/N_1111/traffic",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkTraffic(ctx, testNetworkID, nil)
				return err
			},
		},
		{
			operationID: "getNetworkDevices",
			method:      http.MethodGet,
			path:        "/networks/N_1111/devices",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkDevices(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "getNetworkDevice",
			method:      http.MethodGet,
			path:        "/networks/N_1111/devices/Q234-ABCD-0001",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkDevice(ctx, testNetworkID, testSerial)
				return err
			},
		},
		{
			operationID: "updateNetworkDevice",
			method:      http.MethodPut,
			path:        "/networks/N_1111/devices/Q234-ABCD-0001",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkDevice(ctx, testNetworkID, testSerial, &UpdateNetworkDevice{})
				return err
			},
		},
		{
			operationID: "claimNetworkDevices",
			method:      http.MethodPost,
			path:        "/networks/N_1111/devices/claim",
			call: func(ctx context.Context, c *Client) error {
				return c.ClaimNetworkDevices(ctx, testNetworkID, &ClaimNetworkDevices{})
			},
		},
		{
			operationID: "removeNetworkDevice",
			method:      http.MethodPost,
			path:        "/networks/N_1111/devices/Q234-ABCD-0001/remove",
			call: func(ctx context.Context, c *Client) error {
				return c.RemoveNetworkDevice(ctx, testNetworkID, testSerial)
			},
		},
		{
			operationID: "rebootNetworkDevice",
			method:      http.MethodPost,
			path:        "/networks/N_1111/devices/Q234-ABCD-0001/reboot",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.RebootNetworkDevice(ctx, testNetworkID, testSerial)
				return err
			},
		},
		{
			operationID: "blinkNetworkDeviceLeds",
			method:      http.MethodPost,
			path:        "/networks/N_1111/devices/Q234-ABCD-0001/blinkLeds",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.BlinkNetworkDeviceLeds(ctx, testNetworkID, testSerial, &BlinkNetworkDeviceLeds{})
				return err
			},
		},
		{
			operationID: "getNetworkDeviceUplink",
			method:      http.MethodGet,
			path:        "/networks/N_1111/devices/Q234-ABCD-0001/uplink",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkDeviceUplink(ctx, testNetworkID, testSerial)
				return err
			},
		},
		{
			operationID: "getNetworkDeviceManagementInterfaceSettings",
			method:      http.MethodGet,
			path:        "/networks/N_1111/devices/Q234-ABCD-0001/managementInterfaceSettings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkDeviceManagementInterfaceSettings(ctx, testNetworkID, testSerial)
				return err
			},
		},
		{
			operationID: "updateNetworkDeviceManagementInterfaceSettings",
			method:      http.MethodPut,
			path:        "/networks/N_1111/devices/Q234-ABCD-0001/managementInterfaceSettings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkDeviceManagementInterfaceSettings(ctx, testNetworkID, testSerial, &UpdateNetworkDeviceManagementInterfaceSettings{})
				return err
			},
		},
		{
			operationID: "getDeviceSwitchPorts",
			method:      http.MethodGet,
			path:        "/devices/Q234-ABCD-0001/switchPorts",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetDeviceSwitchPorts(ctx, testSerial)
				return err
			},
		},
		{
			operationID: "getDeviceSwitchPort",
			method:      http.MethodGet,
			path:        "/devices/Q234-ABCD-0001/switchPorts/3",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetDeviceSwitchPort(ctx, testSerial, "3")
				return err
			},
		},
		{
			operationID: "updateDeviceSwitchPort",
			method:      http.MethodPut,
			path:        "/devices/Q234-ABCD-0001/switchPorts/3",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateDeviceSwitchPort(ctx, testSerial, "3", &UpdateDeviceSwitchPort{})
				return err
			},
		},
		{
			operationID: "getNetworkSsids",
			method:      http.MethodGet,
			path:        "/networks/N_1111/ssids",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkSsids(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "getNetworkSsid",
			method:      http.MethodGet,
			path:        "/networks/N_1111/ssids/3",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkSsid(ctx, testNetworkID, "3")
				return err
			},
		},
		{
			operationID: "updateNetworkSsid",
			method:      http.MethodPut,
			path:        "/networks/N_1111/ssids/3",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkSsid(ctx, testNetworkID, "3", &UpdateNetworkSsid{})
				return err
			},
		},
		{
			operationID: "getNetworkSsidL3FirewallRules",
			method:      http.MethodGet,
			path:        "/networks/N_1111/ssids/3/l3FirewallRules",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkSsidL3FirewallRules(ctx, testNetworkID, "3")
				return err
			},
		},
		{
			operationID: "updateNetworkSsidL3FirewallRules",
			method:      http.MethodPut,
			path:        "/networks/N_1111/ssids/3/l3FirewallRules",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkSsidL3FirewallRules(ctx, testNetworkID, "3", &UpdateNetworkSsidL3FirewallRules{})
				return err
			},
		},
		{
			operationID: "getNetworkSsidSplashSettings",
			method:      http.MethodGet,
			path:        "/networks/N_1111/ssids/3/splashSettings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkSsidSplashSettings(ctx, testNetworkID, "3")
				return err
			},
		},
		{
			operationID: "updateNetworkSsidSplashSettings",
			method:      http.MethodPut,
			path:        "/networks/N_1111/ssids/3/splashSettings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkSsidSplashSettings(ctx, testNetworkID, "3", &UpdateNetworkSsidSplashSettings{})
				return err
			},
		},
		{
			operationID: "getNetworkSsidTrafficShaping",
			method:      http.MethodGet,
			path:        "/networks/N_1111/ssids/3/trafficShaping",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkSsidTrafficShaping(ctx, testNetworkID, "3")
				return err
			},
		},
		{
			operationID: "updateNetworkSsidTrafficShaping",
			method:      http.MethodPut,
			path:        "/networks/N_1111/ssids/3/trafficShaping",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkSsidTrafficShaping(ctx, testNetworkID, "3", &UpdateNetworkSsidTrafficShaping{})
				return err
			},
		},
		{
			operationID: "getNetworkVlans",
			method:      http.MethodGet,
			path:        "/networks/N_1111/vlans",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkVlans(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "createNetworkVlan",
			method:      http.MethodPost,
			path:        "/networks/N_1111/vlans",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateNetworkVlan(ctx, testNetworkID, &CreateNetworkVlan{})
				return err
			},
		},
		{
			operationID: "getNetworkVlan",
			method:      http.MethodGet,
			path:        "/networks/N_1111/vlans/100",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkVlan(ctx, testNetworkID, "100")
				return err
			},
		},
		{
			operationID: "updateNetworkVlan",
			method:      http.MethodPut,
			path:        "/networks/N_1111/vlans/100",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkVlan(ctx, testNetworkID, "100", &UpdateNetworkVlan{})
				return err
			},
		},
		{
			operationID: "deleteNetworkVlan",
			method:      http.MethodDelete,
			path:        "/networks/N_1111/vlans/100",
			call: func(ctx context.Context, c *Client) error {
				return c.DeleteNetworkVlan(ctx, testNetworkID, "100")
			},
		},
		{
			operationID: "getNetworkVlansEnabledState",
			method:      http.MethodGet,
			path:        "/networks/N_1111/vlansEnabledState",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkVlansEnabledState(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "updateNetworkVlansEnabledState",
			method:      http.MethodPut,
			path:        "/networks/N_1111/vlansEnabledState",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkVlansEnabledState(ctx, testNetworkID, &UpdateNetworkVlansEnabledState{})
				return err
			},
		},
		{
			operationID: "getNetworkL3FirewallRules",
			method:      http.MethodGet,
			path:        "/networks/N_1111/l3FirewallRules",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkL3FirewallRules(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "updateNetworkL3FirewallRules",
			method:      http.MethodPut,
			path:        "/networks/N_1111/l3FirewallRules",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkL3FirewallRules(ctx, testNetworkID, &UpdateNetworkL3FirewallRules{})
				return err
			},
		},
		{
			operationID: "getNetworkL7FirewallRules",
			method:      http.MethodGet,
			path:        "/networks/N_1111/l7FirewallRules",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkL7FirewallRules(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "updateNetworkL7FirewallRules",
			method:      http.MethodPut,
			path:        "/networks/N_1111/l7FirewallRules",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkL7FirewallRules(ctx, testNetworkID, &UpdateNetworkL7FirewallRules{})
				return err
			},
		},
		{
			operationID: "getNetworkL7FirewallRulesApplicationCategories",
			method:      http.MethodGet,
			path:        "/networks/N_1111/l7FirewallRules/applicationCategories",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkL7FirewallRulesApplicationCategories(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "getNetworkCellularFirewallRules",
			method:      http.MethodGet,
			path:        "/networks/N_1111/cellularFirewallRules",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkCellularFirewallRules(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "updateNetworkCellularFirewallRules",
			method:      http.MethodPut,
			path:        "/networks/N_1111/cellularFirewallRules",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkCellularFirewallRules(ctx, testNetworkID, &UpdateNetworkCellularFirewallRules{})
				return err
			},
		},
		{
			operationID: "getNetworkPortForwardingRules",
			method:      http.MethodGet,
			path:        "/networks/N_1111/portForwardingRules",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkPortForwardingRules(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "updateNetworkPortForwardingRules",
			method:      http.MethodPut,
			path:        "/networks/N_1111/portForwardingRules",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkPortForwardingRules(ctx, testNetworkID, &UpdateNetworkPortForwardingRules{})
				return err
			},
		},
		{
			operationID: "getNetworkFirewalledServices",
			method:      http.MethodGet,
			path:        "/networks/N_1111/firewalledServices",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkFirewalledServices(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "getNetworkFirewalledService",
			method:      http.MethodGet,
			path:        "/networks/N_1111/firewalledServices/web",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkFirewalledService(ctx, testNetworkID, "web")
				return err
			},
		},
		{
			operationID: "updateNetworkFirewalledService",
			method:      http.MethodPut,
			path:        "/networks/N_1111/firewalledServices/web",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkFirewalledService(ctx, testNetworkID, "web", &UpdateNetworkFirewalledService{})
				return err
			},
		},
		{
			operationID: "getDeviceClients",
			method:      http.MethodGet,
			path:        "/devices/Q234-ABCD-0001/clients",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetDeviceClients(ctx, testSerial, nil)
				return err
			},
		},
		{
			operationID: "getNetworkClients",
			method:      http.MethodGet,
			path:        "/networks/N_1111/clients",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkClients(ctx, testNetworkID, nil)
				return err
			},
		},
		{
			operationID: "getNetworkClient",
			method:      http.MethodGet,
			path:        "/networks/N_1111/clients/k74272e",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkClient(ctx, testNetworkID, "k74272e")
				return err
			},
		},
		{
			operationID: "provisionNetworkClients",
			method:      http.MethodPost,
			path:        "/networks/N_1111/clients/provision",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ProvisionNetworkClients(ctx, testNetworkID, &ProvisionNetworkClients{})
				return err
			},
		},
		{
			operationID: "getNetworkClientPolicy",
			method:      http.MethodGet,
			path:        "/networks/N_1111/clients/k74272e/policy",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkClientPolicy(ctx, testNetworkID, "k74272e")
				return err
			},
		},
		{
			operationID: "updateNetworkClientPolicy",
			method:      http.MethodPut,
			path:        "/networks/N_1111/clients/k74272e/policy",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkClientPolicy(ctx, testNetworkID, "k74272e", &UpdateNetworkClientPolicy{})
				return err
			},
		},
		{
			operationID: "getNetworkClientSplashAuthorizationStatus",
			method:      http.MethodGet,
			path:        "/networks/N_1111/clients/k74272e/splashAuthorizationStatus",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkClientSplashAuthorizationStatus(ctx, testNetworkID, "k74272e")
				return err
			},
		},
		{
			operationID: "updateNetworkClientSplashAuthorizationStatus",
			method:      http.MethodPut,
			path:        "/networks/N_1111/clients/k74272e/splashAuthorizationStatus",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkClientSplashAuthorizationStatus(ctx, testNetworkID, "k74272e", &UpdateNetworkClientSplashAuthorizationStatus{})
				return err
			},
		},
		{
			operationID: "getNetworkStaticRoutes",
			method:      http.MethodGet,
			path:        "/networks/N_1111/staticRoutes",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkStaticRoutes(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "createNetworkStaticRoute",
			method:      http.MethodPost,
			path:        "/networks/N_1111/staticRoutes",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateNetworkStaticRoute(ctx, testNetworkID, &CreateNetworkStaticRoute{})
				return err
			},
		},
		{
			operationID: "getNetworkStaticRoute",
			method:      http.MethodGet,
			path:        "/networks/N_1111/staticRoutes/d7fa4948",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkStaticRoute(ctx, testNetworkID, "d7fa4948")
				return err
			},
		},
		{
			operationID: "updateNetworkStaticRoute",
			method:      http.MethodPut,
			path:        "/networks/N_1111/staticRoutes/d7fa4948",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkStaticRoute(ctx, testNetworkID, "d7fa4948", &UpdateNetworkStaticRoute{})
				return err
			},
		},
		{
			operationID: "deleteNetworkStaticRoute",
			method:      http.MethodDelete,
			path:        "/networks/N_1111/staticRoutes/d7fa4948",
			call: func(ctx context.Context, c *Client) error {
				return c.DeleteNetworkStaticRoute(ctx, testNetworkID, "d7fa4948")
			},
		},
		{
			operationID: "getNetworkGroupPolicies",
			method:      http.MethodGet,
			path:        "/networks/N_1111/groupPolicies",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkGroupPolicies(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "createNetworkGroupPolicy",
			method:      http.MethodPost,
			path:        "/networks/N_1111/groupPolicies",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateNetworkGroupPolicy(ctx, testNetworkID, &CreateNetworkGroupPolicy{})
				return err
			},
		},
		{
			operationID: "getNetworkGroupPolicy",
			method:      http.MethodGet,
			path:        "/networks/N_1111/groupPolicies/101",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkGroupPolicy(ctx, testNetworkID, "101")
				return err
			},
		},
		{
			operationID: "updateNetworkGroupPolicy",
			method:      http.MethodPut,
			path:        "/networks/N_1111/groupPolicies/101",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkGroupPolicy(ctx, testNetworkID, "101", &UpdateNetworkGroupPolicy{})
				return err
			},
		},
		{
			operationID: "deleteNetworkGroupPolicy",
			method:      http.MethodDelete,
			path:        "/networks/N_1111/groupPolicies/101",
			call: func(ctx context.Context, c *Client) error {
				return c.DeleteNetworkGroupPolicy(ctx, testNetworkID, "101")
			},
		},
		{
			operationID: "getNetworkAlertSettings",
			method:      http.MethodGet,
			path:        "/networks/N_1111/alertSettings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkAlertSettings(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "updateNetworkAlertSettings",
			method:      http.MethodPut,
			path:        "/networks/N_1111/alertSettings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkAlertSettings(ctx, testNetworkID, &UpdateNetworkAlertSettings{})
				return err
			},
		},
		{
			operationID: "getNetworkHttpServers",
			method:      http.MethodGet,
			path:        "/networks/N_1111/httpServers",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkHTTPServers(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "createNetworkHttpServer",
			method:      http.MethodPost,
			path:        "/networks/N_1111/httpServers",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateNetworkHTTPServer(ctx, testNetworkID, &CreateNetworkHTTPServer{})
				return err
			},
		},
		{
			operationID: "getNetworkHttpServer",
			method:      http.MethodGet,
			path:        "/networks/N_1111/httpServers/212406",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkHTTPServer(ctx, testNetworkID, "212406")
				return err
			},
		},
		{
			operationID: "updateNetworkHttpServer",
			method:      http.MethodPut,
			path:        "/networks/N_1111/httpServers/212406",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkHTTPServer(ctx, testNetworkID, "212406", &UpdateNetworkHTTPServer{})
				return err
			},
		},
		{
			operationID: "deleteNetworkHttpServer",
			method:      http.MethodDelete,
			path:        "/networks/N_1111/httpServers/212406",
			call: func(ctx context.Context, c *Client) error {
				return c.DeleteNetworkHTTPServer(ctx, testNetworkID, "212406")
			},
		},
		{
			operationID: "createNetworkHttpServersWebhookTest",
			method:      http.MethodPost,
			path:        "/networks/N_1111/httpServers/webhookTests",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateNetworkHTTPServersWebhookTest(ctx, testNetworkID, &CreateNetworkHTTPServersWebhookTest{})
				return err
			},
		},
		{
			operationID: "getNetworkHttpServersWebhookTest",
			method:      http.MethodGet,
			path:        "/networks/N_1111/httpServers/webhookTests/212406",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkHTTPServersWebhookTest(ctx, testNetworkID, "212406")
				return err
			},
		},
		{
			operationID: "getNetworkSnmpSettings",
			method:      http.MethodGet,
			path:        "/networks/N_1111/snmpSettings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkSnmpSettings(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "updateNetworkSnmpSettings",
			method:      http.MethodPut,
			path:        "/networks/N_1111/snmpSettings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkSnmpSettings(ctx, testNetworkID, &UpdateNetworkSnmpSettings{})
				return err
			},
		},
		{
			operationID: "getNetworkSyslogServers",
			method:      http.MethodGet,
			path:        "/networks/N_1111/syslogServers",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNetworkSyslogServers(ctx, testNetworkID)
				return err
			},
		},
		{
			operationID: "updateNetworkSyslogServers",
			method:      http.MethodPut,
			path:        "/networks/N_1111/syslogServers",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateNetworkSyslogServers(ctx, testNetworkID, &UpdateNetworkSyslogServers{})
				return err
			},
		},
	}
}

func TestOperationsUseTheirEndpoint(t *testing.T) {
	t.Parallel()

	for _, tc := range operationCases() {
		t.Run(tc.operationID, func(t *testing.T) {
			t.Parallel()

			server, recorder := testutil.NewRecordingServer(t, http.StatusOK, "null")
			defer server.Close()

			err := tc.call(context.Background(), newTestClient(t, server.URL))
			require.NoError(t, err)

			req := recorder.Last(t)
			assert.Equal(t, tc.method, req.Method)
			assert.Equal(t, tc.path, req.Path)

			ep, ok := LookupEndpoint(tc.operationID)
			require.True(t, ok)
			assert.Equal(t, tc.method, ep.Method)
		})
	}
}

func TestEveryEndpointHasAMethod(t *testing.T) {
	t.Parallel()

	covered := map[string]bool{}
	for _, tc := range operationCases() {
		covered[tc.operationID] = true
	}

	for _, ep := range Endpoints() {
		assert.True(t, covered[ep.OperationID], "no client method exercised for %s", ep.OperationID)
	}
}

func TestOperationContextReachesMiddleware(t *testing.T) {
	t.Parallel()

	var seen []middleware.Operation
	capture := func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if op, ok := middleware.OperationFromContext(req.Context()); ok {
				seen = append(seen, op)
			}
			return next.RoundTrip(req)
		})
	}

	server, _ := testutil.NewRecordingServer(t, http.StatusOK, "[]")
	defer server.Close()

	client, err := NewWithConfig(&ClientConfig{
		APIKey:     testAPIKey,
		BaseURL:    server.URL,
		HTTPClient: &http.Client{Transport: capture(http.DefaultTransport)},
	})
	require.NoError(t, err)

	_, err = client.GetNetworkVlans(context.Background(), testNetworkID)
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, middleware.Operation{ID: "getNetworkVlans", PathTemplate: "/networks/{networkId}/vlans"}, seen[0])
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
