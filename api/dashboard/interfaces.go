package dashboard

import (
	"context"
	"encoding/json"
	"net/url"
)

// AdminsAPI covers dashboard administrators.
type AdminsAPI interface {
	// GetOrganizationAdmins lists the dashboard administrators of an organization.
	GetOrganizationAdmins(ctx context.Context, organizationID string) ([]Admin, error)

	// CreateOrganizationAdmin creates a dashboard administrator.
	CreateOrganizationAdmin(ctx context.Context, organizationID string, body *CreateOrganizationAdmin) (*Admin, error)

	// UpdateOrganizationAdmin updates an administrator.
	UpdateOrganizationAdmin(ctx context.Context, organizationID, adminID string, body *UpdateOrganizationAdmin) (*Admin, error)

	// DeleteOrganizationAdmin revokes all access for an administrator.
	DeleteOrganizationAdmin(ctx context.Context, organizationID, adminID string) error
}

// OrganizationsAPI covers organizations, their inventory, licensing, SNMP, and VPN settings.
type OrganizationsAPI interface { //nolint:interfacebloat // One method per Dashboard operation
	// GetOrganizations lists the organizations the API key can access.
	GetOrganizations(ctx context.Context) ([]Organization, error)

	// GetOrganization returns an organization.
	GetOrganization(ctx context.Context, organizationID string) (*Organization, error)

	// CreateOrganization creates a new organization.
	CreateOrganization(ctx context.Context, body *CreateOrganization) (*Organization, error)

	// UpdateOrganization updates an organization.
	UpdateOrganization(ctx context.Context, organizationID string, body *UpdateOrganization) (*Organization, error)

	// CloneOrganization creates a new organization by cloning an existing one.
	CloneOrganization(ctx context.Context, organizationID string, body *CloneOrganization) (*Organization, error)

	// ClaimOrganization claims an order, device, or license into an organization.
	ClaimOrganization(ctx context.Context, organizationID string, body *ClaimOrganization) (*ClaimOrganizationResult, error)

	// GetOrganizationDeviceStatuses lists the status of every device in an organization.
	GetOrganizationDeviceStatuses(ctx context.Context, organizationID string) ([]DeviceStatus, error)

	// GetOrganizationInventory lists the devices claimed by an organization.
	GetOrganizationInventory(ctx context.Context, organizationID string) ([]InventoryDevice, error)

	// GetOrganizationLicenseState returns the license state of an organization.
	GetOrganizationLicenseState(ctx context.Context, organizationID string) (*LicenseState, error)

	// GetOrganizationUplinksLossAndLatency returns the uplink loss and latency of every MX in an organization.
	GetOrganizationUplinksLossAndLatency(ctx context.Context, organizationID string, params *GetOrganizationUplinksLossAndLatencyParams) ([]UplinkLossAndLatency, error)

	// GetOrganizationSnmp returns the SNMP settings of an organization.
	GetOrganizationSnmp(ctx context.Context, organizationID string) (*OrganizationSnmp, error)

	// UpdateOrganizationSnmp updates the SNMP settings of an organization.
	UpdateOrganizationSnmp(ctx context.Context, organizationID string, body *UpdateOrganizationSnmp) (*OrganizationSnmp, error)

	// GetOrganizationThirdPartyVPNPeers lists the third-party VPN peers of an organization.
	GetOrganizationThirdPartyVPNPeers(ctx context.Context, organizationID string) ([]ThirdPartyVPNPeer, error)

	// UpdateOrganizationThirdPartyVPNPeers replaces the third-party VPN peers of an organization.
	UpdateOrganizationThirdPartyVPNPeers(ctx context.Context, organizationID string, body *UpdateOrganizationThirdPartyVPNPeers) ([]ThirdPartyVPNPeer, error)

	// GetOrganizationVpnFirewallRules returns the site-to-site VPN firewall rules of an organization.
	GetOrganizationVpnFirewallRules(ctx context.Context, organizationID string) ([]FirewallRule, error)

	// UpdateOrganizationVpnFirewallRules updates the site-to-site VPN firewall rules of an organization.
	UpdateOrganizationVpnFirewallRules(ctx context.Context, organizationID string, body *UpdateOrganizationVpnFirewallRules) ([]FirewallRule, error)
}

// ActionBatchesAPI covers action batches.
type ActionBatchesAPI interface {
	// GetOrganizationActionBatches lists the action batches of an organization.
	GetOrganizationActionBatches(ctx context.Context, organizationID string) ([]ActionBatch, error)

	// CreateOrganizationActionBatch creates an action batch.
	CreateOrganizationActionBatch(ctx context.Context, organizationID string, body *CreateOrganizationActionBatch) (*ActionBatch, error)

	// GetOrganizationActionBatch returns an action batch.
	GetOrganizationActionBatch(ctx context.Context, organizationID, actionBatchID string) (*ActionBatch, error)

	// UpdateOrganizationActionBatch confirms or changes the execution mode of an action batch.
	UpdateOrganizationActionBatch(ctx context.Context, organizationID, actionBatchID string, body *UpdateOrganizationActionBatch) (*ActionBatch, error)

	// DeleteOrganizationActionBatch deletes an unconfirmed action batch.
	DeleteOrganizationActionBatch(ctx context.Context, organizationID, actionBatchID string) error
}

// SamlRolesAPI covers SAML administrator roles.
type SamlRolesAPI interface {
	// GetOrganizationSamlRoles lists the SAML roles of an organization.
	GetOrganizationSamlRoles(ctx context.Context, organizationID string) ([]SamlRole, error)

	// CreateOrganizationSamlRole creates a SAML role.
	CreateOrganizationSamlRole(ctx context.Context, organizationID string, body *CreateOrganizationSamlRole) (*SamlRole, error)

	// GetOrganizationSamlRole returns a SAML role.
	GetOrganizationSamlRole(ctx context.Context, organizationID, samlRoleID string) (*SamlRole, error)

	// UpdateOrganizationSamlRole updates a SAML role.
	UpdateOrganizationSamlRole(ctx context.Context, organizationID, samlRoleID string, body *UpdateOrganizationSamlRole) (*SamlRole, error)

	// DeleteOrganizationSamlRole removes a SAML role.
	DeleteOrganizationSamlRole(ctx context.Context, organizationID, samlRoleID string) error
}

// NetworksAPI covers networks, template binding, and site-to-site VPN.
type NetworksAPI interface { //nolint:interfacebloat // One method per Dashboard operation
	// GetOrganizationNetworks lists the networks of an organization.
	GetOrganizationNetworks(ctx context.Context, organizationID string, params *GetOrganizationNetworksParams) ([]Network, error)

	// CreateOrganizationNetwork creates a network.
	CreateOrganizationNetwork(ctx context.Context, organizationID string, body *CreateOrganizationNetwork) (*Network, error)

	// CombineOrganizationNetworks combines several networks into one.
	CombineOrganizationNetworks(ctx context.Context, organizationID string, body *CombineOrganizationNetworks) (*CombinedNetwork, error)

	// GetNetwork returns a network.
	GetNetwork(ctx context.Context, networkID string) (*Network, error)

	// UpdateNetwork updates a network.
	UpdateNetwork(ctx context.Context, networkID string, body *UpdateNetwork) (*Network, error)

	// DeleteNetwork deletes a network.
	DeleteNetwork(ctx context.Context, networkID string) error

	// BindNetwork binds a network to a configuration template.
	BindNetwork(ctx context.Context, networkID string, body *BindNetwork) error

	// UnbindNetwork unbinds a network from its configuration template.
	UnbindNetwork(ctx context.Context, networkID string) error

	// GetNetworkSiteToSiteVpn returns the site-to-site VPN settings of a network.
	GetNetworkSiteToSiteVpn(ctx context.Context, networkID string) (*SiteToSiteVpn, error)

	// UpdateNetworkSiteToSiteVpn updates the site-to-site VPN settings of a network.
	UpdateNetworkSiteToSiteVpn(ctx context.Context, networkID string, body *UpdateNetworkSiteToSiteVpn) (*SiteToSiteVpn, error)

	// GetNetworkTraffic returns the traffic analysis data of a network.
	GetNetworkTraffic(ctx context.Context, networkID string, params *GetNetworkTrafficParams) ([]TrafficEntry, error)
}

// DevicesAPI covers devices claimed into networks.
type DevicesAPI interface {
	// GetNetworkDevices lists the devices in a network.
	GetNetworkDevices(ctx context.Context, networkID string) ([]Device, error)

	// GetNetworkDevice returns a device.
	GetNetworkDevice(ctx context.Context, networkID, serial string) (*Device, error)

	// UpdateNetworkDevice updates the attributes of a device.
	UpdateNetworkDevice(ctx context.Context, networkID, serial string, body *UpdateNetworkDevice) (*Device, error)

	// ClaimNetworkDevices claims a device into a network.
	ClaimNetworkDevices(ctx context.Context, networkID string, body *ClaimNetworkDevices) error

	// RemoveNetworkDevice removes a device from a network.
	RemoveNetworkDevice(ctx context.Context, networkID, serial string) error

	// RebootNetworkDevice reboots a device.
	RebootNetworkDevice(ctx context.Context, networkID, serial string) (*RebootResult, error)

	// BlinkNetworkDeviceLeds blinks the LEDs of a device.
	BlinkNetworkDeviceLeds(ctx context.Context, networkID, serial string, body *BlinkNetworkDeviceLeds) (*BlinkNetworkDeviceLeds, error)

	// GetNetworkDeviceUplink returns the uplink status of a device.
	GetNetworkDeviceUplink(ctx context.Context, networkID, serial string) ([]DeviceUplink, error)

	// GetNetworkDeviceManagementInterfaceSettings returns the management interface settings of a device.
	GetNetworkDeviceManagementInterfaceSettings(ctx context.Context, networkID, serial string) (*ManagementInterfaceSettings, error)

	// UpdateNetworkDeviceManagementInterfaceSettings updates the management interface settings of a device.
	UpdateNetworkDeviceManagementInterfaceSettings(ctx context.Context, networkID, serial string, body *UpdateNetworkDeviceManagementInterfaceSettings) (*ManagementInterfaceSettings, error)
}

// SwitchPortsAPI covers switch ports.
type SwitchPortsAPI interface {
	// GetDeviceSwitchPorts lists the ports of a switch.
	GetDeviceSwitchPorts(ctx context.Context, serial string) ([]SwitchPort, error)

	// GetDeviceSwitchPort returns a switch port.
	GetDeviceSwitchPort(ctx context.Context, serial, number string) (*SwitchPort, error)

	// UpdateDeviceSwitchPort updates a switch port.
	UpdateDeviceSwitchPort(ctx context.Context, serial, number string, body *UpdateDeviceSwitchPort) (*SwitchPort, error)
}

// SsidsAPI covers wireless SSIDs.
type SsidsAPI interface {
	// GetNetworkSsids lists the SSIDs of a network.
	GetNetworkSsids(ctx context.Context, networkID string) ([]Ssid, error)

	// GetNetworkSsid returns an SSID.
	GetNetworkSsid(ctx context.Context, networkID, number string) (*Ssid, error)

	// UpdateNetworkSsid updates an SSID.
	UpdateNetworkSsid(ctx context.Context, networkID, number string, body *UpdateNetworkSsid) (*Ssid, error)

	// GetNetworkSsidL3FirewallRules returns the layer 3 firewall rules of an SSID.
	GetNetworkSsidL3FirewallRules(ctx context.Context, networkID, number string) ([]FirewallRule, error)

	// UpdateNetworkSsidL3FirewallRules updates the layer 3 firewall rules of an SSID.
	UpdateNetworkSsidL3FirewallRules(ctx context.Context, networkID, number string, body *UpdateNetworkSsidL3FirewallRules) ([]FirewallRule, error)

	// GetNetworkSsidSplashSettings returns the splash page settings of an SSID.
	GetNetworkSsidSplashSettings(ctx context.Context, networkID, number string) (*SplashSettings, error)

	// UpdateNetworkSsidSplashSettings updates the splash page settings of an SSID.
	UpdateNetworkSsidSplashSettings(ctx context.Context, networkID, number string, body *UpdateNetworkSsidSplashSettings) (*SplashSettings, error)

	// GetNetworkSsidTrafficShaping returns the traffic shaping settings of an SSID.
	GetNetworkSsidTrafficShaping(ctx context.Context, networkID, number string) (*SsidTrafficShaping, error)

	// UpdateNetworkSsidTrafficShaping updates the traffic shaping settings of an SSID.
	UpdateNetworkSsidTrafficShaping(ctx context.Context, networkID, number string, body *UpdateNetworkSsidTrafficShaping) (*SsidTrafficShaping, error)
}

// VlansAPI covers appliance VLANs.
type VlansAPI interface {
	// GetNetworkVlans lists the VLANs of an appliance network.
	GetNetworkVlans(ctx context.Context, networkID string) ([]Vlan, error)

	// CreateNetworkVlan adds a VLAN.
	CreateNetworkVlan(ctx context.Context, networkID string, body *CreateNetworkVlan) (*Vlan, error)

	// GetNetworkVlan returns a VLAN.
	GetNetworkVlan(ctx context.Context, networkID, vlanID string) (*Vlan, error)

	// UpdateNetworkVlan updates a VLAN.
	UpdateNetworkVlan(ctx context.Context, networkID, vlanID string, body *UpdateNetworkVlan) (*Vlan, error)

	// DeleteNetworkVlan deletes a VLAN.
	DeleteNetworkVlan(ctx context.Context, networkID, vlanID string) error

	// GetNetworkVlansEnabledState reports whether VLANs are enabled on a network.
	GetNetworkVlansEnabledState(ctx context.Context, networkID string) (*VlansEnabledState, error)

	// UpdateNetworkVlansEnabledState enables or disables VLANs on a network.
	UpdateNetworkVlansEnabledState(ctx context.Context, networkID string, body *UpdateNetworkVlansEnabledState) (*VlansEnabledState, error)
}

// FirewallAPI covers appliance firewall and port forwarding rules.
type FirewallAPI interface { //nolint:interfacebloat // One method per Dashboard operation
	// GetNetworkL3FirewallRules returns the layer 3 firewall rules of an appliance network.
	GetNetworkL3FirewallRules(ctx context.Context, networkID string) ([]FirewallRule, error)

	// UpdateNetworkL3FirewallRules updates the layer 3 firewall rules of an appliance network.
	UpdateNetworkL3FirewallRules(ctx context.Context, networkID string, body *UpdateNetworkL3FirewallRules) ([]FirewallRule, error)

	// GetNetworkL7FirewallRules returns the layer 7 firewall rules of an appliance network.
	GetNetworkL7FirewallRules(ctx context.Context, networkID string) (*L7FirewallRules, error)

	// UpdateNetworkL7FirewallRules updates the layer 7 firewall rules of an appliance network.
	UpdateNetworkL7FirewallRules(ctx context.Context, networkID string, body *UpdateNetworkL7FirewallRules) (*L7FirewallRules, error)

	// GetNetworkL7FirewallRulesApplicationCategories returns the application categories usable in layer 7 rules.
	GetNetworkL7FirewallRulesApplicationCategories(ctx context.Context, networkID string) (*L7ApplicationCategories, error)

	// GetNetworkCellularFirewallRules returns the cellular firewall rules of a network.
	GetNetworkCellularFirewallRules(ctx context.Context, networkID string) ([]FirewallRule, error)

	// UpdateNetworkCellularFirewallRules updates the cellular firewall rules of a network.
	UpdateNetworkCellularFirewallRules(ctx context.Context, networkID string, body *UpdateNetworkCellularFirewallRules) ([]FirewallRule, error)

	// GetNetworkPortForwardingRules returns the port forwarding rules of a network.
	GetNetworkPortForwardingRules(ctx context.Context, networkID string) (*PortForwardingRules, error)

	// UpdateNetworkPortForwardingRules replaces the port forwarding rules of a network.
	UpdateNetworkPortForwardingRules(ctx context.Context, networkID string, body *UpdateNetworkPortForwardingRules) (*PortForwardingRules, error)

	// GetNetworkFirewalledServices lists the appliance services and their access policies.
	GetNetworkFirewalledServices(ctx context.Context, networkID string) ([]FirewalledService, error)

	// GetNetworkFirewalledService returns the access policy of an appliance service.
	GetNetworkFirewalledService(ctx context.Context, networkID, service string) (*FirewalledService, error)

	// UpdateNetworkFirewalledService updates the access policy of an appliance service.
	UpdateNetworkFirewalledService(ctx context.Context, networkID, service string, body *UpdateNetworkFirewalledService) (*FirewalledService, error)
}

// ClientsAPI covers network clients.
type ClientsAPI interface {
	// GetDeviceClients lists the clients seen by a device.
	GetDeviceClients(ctx context.Context, serial string, params *GetDeviceClientsParams) ([]DeviceClient, error)

	// GetNetworkClients lists the clients of a network.
	GetNetworkClients(ctx context.Context, networkID string, params *GetNetworkClientsParams) ([]NetworkClient, error)

	// GetNetworkClient returns a client of a network.
	GetNetworkClient(ctx context.Context, networkID, clientID string) (*NetworkClient, error)

	// ProvisionNetworkClients provisions a client with a name and policy.
	ProvisionNetworkClients(ctx context.Context, networkID string, body *ProvisionNetworkClients) (*ProvisionedClient, error)

	// GetNetworkClientPolicy returns the policy assigned to a client.
	GetNetworkClientPolicy(ctx context.Context, networkID, clientID string) (*ClientPolicy, error)

	// UpdateNetworkClientPolicy updates the policy assigned to a client.
	UpdateNetworkClientPolicy(ctx context.Context, networkID, clientID string, body *UpdateNetworkClientPolicy) (*ClientPolicy, error)

	// GetNetworkClientSplashAuthorizationStatus returns the splash authorization of a client on every SSID.
	GetNetworkClientSplashAuthorizationStatus(ctx context.Context, networkID, clientID string) (*SplashAuthorizationStatus, error)

	// UpdateNetworkClientSplashAuthorizationStatus updates the splash authorization of a client.
	UpdateNetworkClientSplashAuthorizationStatus(ctx context.Context, networkID, clientID string, body *UpdateNetworkClientSplashAuthorizationStatus) (*SplashAuthorizationStatus, error)
}

// StaticRoutesAPI covers appliance static routes.
type StaticRoutesAPI interface {
	// GetNetworkStaticRoutes lists the static routes of an appliance network.
	GetNetworkStaticRoutes(ctx context.Context, networkID string) ([]StaticRoute, error)

	// CreateNetworkStaticRoute adds a static route.
	CreateNetworkStaticRoute(ctx context.Context, networkID string, body *CreateNetworkStaticRoute) (*StaticRoute, error)

	// GetNetworkStaticRoute returns a static route.
	GetNetworkStaticRoute(ctx context.Context, networkID, staticRouteID string) (*StaticRoute, error)

	// UpdateNetworkStaticRoute updates a static route.
	UpdateNetworkStaticRoute(ctx context.Context, networkID, staticRouteID string, body *UpdateNetworkStaticRoute) (*StaticRoute, error)

	// DeleteNetworkStaticRoute deletes a static route.
	DeleteNetworkStaticRoute(ctx context.Context, networkID, staticRouteID string) error
}

// GroupPoliciesAPI covers group policies.
type GroupPoliciesAPI interface {
	// GetNetworkGroupPolicies lists the group policies of a network.
	GetNetworkGroupPolicies(ctx context.Context, networkID string) ([]GroupPolicy, error)

	// CreateNetworkGroupPolicy creates a group policy.
	CreateNetworkGroupPolicy(ctx context.Context, networkID string, body *CreateNetworkGroupPolicy) (*GroupPolicy, error)

	// GetNetworkGroupPolicy returns a group policy.
	GetNetworkGroupPolicy(ctx context.Context, networkID, groupPolicyID string) (*GroupPolicy, error)

	// UpdateNetworkGroupPolicy updates a group policy.
	UpdateNetworkGroupPolicy(ctx context.Context, networkID, groupPolicyID string, body *UpdateNetworkGroupPolicy) (*GroupPolicy, error)

	// DeleteNetworkGroupPolicy deletes a group policy.
	DeleteNetworkGroupPolicy(ctx context.Context, networkID, groupPolicyID string) error
}

// AlertSettingsAPI covers network alert settings.
type AlertSettingsAPI interface {
	// GetNetworkAlertSettings returns the alert configuration of a network.
	GetNetworkAlertSettings(ctx context.Context, networkID string) (*AlertSettings, error)

	// UpdateNetworkAlertSettings updates the alert configuration of a network.
	UpdateNetworkAlertSettings(ctx context.Context, networkID string, body *UpdateNetworkAlertSettings) (*AlertSettings, error)
}

// HTTPServersAPI covers webhook receivers.
type HTTPServersAPI interface {
	// GetNetworkHTTPServers lists the webhook receivers of a network.
	GetNetworkHTTPServers(ctx context.Context, networkID string) ([]HTTPServer, error)

	// CreateNetworkHTTPServer adds a webhook receiver.
	CreateNetworkHTTPServer(ctx context.Context, networkID string, body *CreateNetworkHTTPServer) (*HTTPServer, error)

	// GetNetworkHTTPServer returns a webhook receiver.
	GetNetworkHTTPServer(ctx context.Context, networkID, httpServerID string) (*HTTPServer, error)

	// UpdateNetworkHTTPServer updates a webhook receiver.
	UpdateNetworkHTTPServer(ctx context.Context, networkID, httpServerID string, body *UpdateNetworkHTTPServer) (*HTTPServer, error)

	// DeleteNetworkHTTPServer deletes a webhook receiver.
	DeleteNetworkHTTPServer(ctx context.Context, networkID, httpServerID string) error

	// CreateNetworkHTTPServersWebhookTest sends a test webhook to a URL.
	CreateNetworkHTTPServersWebhookTest(ctx context.Context, networkID string, body *CreateNetworkHTTPServersWebhookTest) (*WebhookTest, error)

	// GetNetworkHTTPServersWebhookTest returns the delivery state of a test webhook.
	GetNetworkHTTPServersWebhookTest(ctx context.Context, networkID, testID string) (*WebhookTest, error)
}

// NetworkSettingsAPI covers network SNMP and syslog settings.
type NetworkSettingsAPI interface {
	// GetNetworkSnmpSettings returns the SNMP settings of a network.
	GetNetworkSnmpSettings(ctx context.Context, networkID string) (*SnmpSettings, error)

	// UpdateNetworkSnmpSettings updates the SNMP settings of a network.
	UpdateNetworkSnmpSettings(ctx context.Context, networkID string, body *UpdateNetworkSnmpSettings) (*SnmpSettings, error)

	// GetNetworkSyslogServers lists the syslog servers of a network.
	GetNetworkSyslogServers(ctx context.Context, networkID string) ([]SyslogServer, error)

	// UpdateNetworkSyslogServers replaces the syslog servers of a network.
	UpdateNetworkSyslogServers(ctx context.Context, networkID string, body *UpdateNetworkSyslogServers) ([]SyslogServer, error)
}

// DashboardAPIClient is the full Dashboard API surface implemented by *Client.
// Consumers depend on it, or on one of the narrower controller interfaces,
// to substitute test doubles.
//
//nolint:revive // DashboardAPIClient is intentionally explicit to avoid confusion with Client struct
type DashboardAPIClient interface {
	AdminsAPI
	OrganizationsAPI
	ActionBatchesAPI
	SamlRolesAPI
	NetworksAPI
	DevicesAPI
	SwitchPortsAPI
	SsidsAPI
	VlansAPI
	FirewallAPI
	ClientsAPI
	StaticRoutesAPI
	GroupPoliciesAPI
	AlertSettingsAPI
	HTTPServersAPI
	NetworkSettingsAPI

	// Invoke executes any catalogued operation by its operation ID.
	Invoke(ctx context.Context, operationID string, params map[string]string, query url.Values, body json.RawMessage) (json.RawMessage, error)
}
