package dashboard

import (
	"context"
	"net/http"
)

var opGetOrganizations = register(Endpoint{
	OperationID:    "getOrganizations",
	Controller:     "Organizations",
	Method:         http.MethodGet,
	Path:           "/organizations",
	Response:       KindOrganization,
	ResponseIsList: true,
})

var opGetOrganization = register(Endpoint{
	OperationID: "getOrganization",
	Controller:  "Organizations",
	Method:      http.MethodGet,
	Path:        "/organizations/{organizationId}",
	Response:    KindOrganization,
})

var opCreateOrganization = register(Endpoint{
	OperationID:  "createOrganization",
	Controller:   "Organizations",
	Method:       http.MethodPost,
	Path:         "/organizations",
	Body:         KindCreateOrganization,
	BodyRequired: true,
	Response:     KindOrganization,
})

var opUpdateOrganization = register(Endpoint{
	OperationID: "updateOrganization",
	Controller:  "Organizations",
	Method:      http.MethodPut,
	Path:        "/organizations/{organizationId}",
	Body:        KindUpdateOrganization,
	Response:    KindOrganization,
})

var opCloneOrganization = register(Endpoint{
	OperationID:  "cloneOrganization",
	Controller:   "Organizations",
	Method:       http.MethodPost,
	Path:         "/organizations/{organizationId}/clone",
	Body:         KindCloneOrganization,
	BodyRequired: true,
	Response:     KindOrganization,
})

var opClaimOrganization = register(Endpoint{
	OperationID:  "claimOrganization",
	Controller:   "Organizations",
	Method:       http.MethodPost,
	Path:         "/organizations/{organizationId}/claim",
	Body:         KindClaimOrganization,
	BodyRequired: true,
	Response:     KindClaimOrganizationResult,
})

var opGetOrganizationDeviceStatuses = register(Endpoint{
	OperationID:    "getOrganizationDeviceStatuses",
	Controller:     "Organizations",
	Method:         http.MethodGet,
	Path:           "/organizations/{organizationId}/deviceStatuses",
	Response:       KindDeviceStatus,
	ResponseIsList: true,
})

var opGetOrganizationInventory = register(Endpoint{
	OperationID:    "getOrganizationInventory",
	Controller:     "Organizations",
	Method:         http.MethodGet,
	Path:           "/organizations/{organizationId}/inventory",
	Response:       KindInventoryDevice,
	ResponseIsList: true,
})

var opGetOrganizationLicenseState = register(Endpoint{
	OperationID: "getOrganizationLicenseState",
	Controller:  "Organizations",
	Method:      http.MethodGet,
	Path:        "/organizations/{organizationId}/licenseState",
	Response:    KindLicenseState,
})

var opGetOrganizationUplinksLossAndLatency = register(Endpoint{
	OperationID:    "getOrganizationUplinksLossAndLatency",
	Controller:     "Organizations",
	Method:         http.MethodGet,
	Path:           "/organizations/{organizationId}/uplinksLossAndLatency",
	Query:          []string{"t0", "t1", "timespan", "uplink", "ip"},
	Response:       KindUplinkLossAndLatency,
	ResponseIsList: true,
})

var opGetOrganizationSnmp = register(Endpoint{
	OperationID: "getOrganizationSnmp",
	Controller:  "Organizations",
	Method:      http.MethodGet,
	Path:        "/organizations/{organizationId}/snmp",
	Response:    KindOrganizationSnmp,
})

var opUpdateOrganizationSnmp = register(Endpoint{
	OperationID: "updateOrganizationSnmp",
	Controller:  "Organizations",
	Method:      http.MethodPut,
	Path:        "/organizations/{organizationId}/snmp",
	Body:        KindUpdateOrganizationSnmp,
	Response:    KindOrganizationSnmp,
})

var opGetOrganizationThirdPartyVPNPeers = register(Endpoint{
	OperationID:    "getOrganizationThirdPartyVPNPeers",
	Controller:     "Organizations",
	Method:         http.MethodGet,
	Path:           "/organizations/{organizationId}/thirdPartyVPNPeers",
	Response:       KindThirdPartyVPNPeer,
	ResponseIsList: true,
})

var opUpdateOrganizationThirdPartyVPNPeers = register(Endpoint{
	OperationID:    "updateOrganizationThirdPartyVPNPeers",
	Controller:     "Organizations",
	Method:         http.MethodPut,
	Path:           "/organizations/{organizationId}/thirdPartyVPNPeers",
	Body:           KindUpdateOrganizationThirdPartyVPNPeers,
	Response:       KindThirdPartyVPNPeer,
	ResponseIsList: true,
})

var opGetOrganizationVpnFirewallRules = register(Endpoint{
	OperationID:    "getOrganizationVpnFirewallRules",
	Controller:     "Organizations",
	Method:         http.MethodGet,
	Path:           "/organizations/{organizationId}/vpnFirewallRules",
	Response:       KindFirewallRule,
	ResponseIsList: true,
})

var opUpdateOrganizationVpnFirewallRules = register(Endpoint{
	OperationID:    "updateOrganizationVpnFirewallRules",
	Controller:     "Organizations",
	Method:         http.MethodPut,
	Path:           "/organizations/{organizationId}/vpnFirewallRules",
	Body:           KindUpdateOrganizationVpnFirewallRules,
	Response:       KindFirewallRule,
	ResponseIsList: true,
})

// GetOrganizations lists the organizations the API key can access.
func (c *Client) GetOrganizations(ctx context.Context) ([]Organization, error) {
	return list[Organization](ctx, c, request{
		endpoint: opGetOrganizations,
	})
}

// GetOrganization returns an organization.
func (c *Client) GetOrganization(ctx context.Context, organizationID string) (*Organization, error) {
	return one[Organization](ctx, c, request{
		endpoint: opGetOrganization,
		path:     map[string]string{"organizationId": organizationID},
	})
}

// CreateOrganization creates a new organization.
func (c *Client) CreateOrganization(ctx context.Context, body *CreateOrganization) (*Organization, error) {
	return one[Organization](ctx, c, request{
		endpoint: opCreateOrganization,
		body:     body,
	})
}

// UpdateOrganization updates an organization.
func (c *Client) UpdateOrganization(ctx context.Context, organizationID string, body *UpdateOrganization) (*Organization, error) {
	return one[Organization](ctx, c, request{
		endpoint: opUpdateOrganization,
		path:     map[string]string{"organizationId": organizationID},
		body:     body,
	})
}

// CloneOrganization creates a new organization by cloning an existing one.
func (c *Client) CloneOrganization(ctx context.Context, organizationID string, body *CloneOrganization) (*Organization, error) {
	return one[Organization](ctx, c, request{
		endpoint: opCloneOrganization,
		path:     map[string]string{"organizationId": organizationID},
		body:     body,
	})
}

// ClaimOrganization claims an order, device, or license into an organization.
func (c *Client) ClaimOrganization(ctx context.Context, organizationID string, body *ClaimOrganization) (*ClaimOrganizationResult, error) {
	return one[ClaimOrganizationResult](ctx, c, request{
		endpoint: opClaimOrganization,
		path:     map[string]string{"organizationId": organizationID},
		body:     body,
	})
}

// GetOrganizationDeviceStatuses lists the status of every device in an organization.
func (c *Client) GetOrganizationDeviceStatuses(ctx context.Context, organizationID string) ([]DeviceStatus, error) {
	return list[DeviceStatus](ctx, c, request{
		endpoint: opGetOrganizationDeviceStatuses,
		path:     map[string]string{"organizationId": organizationID},
	})
}

// GetOrganizationInventory lists the devices claimed by an organization.
func (c *Client) GetOrganizationInventory(ctx context.Context, organizationID string) ([]InventoryDevice, error) {
	return list[InventoryDevice](ctx, c, request{
		endpoint: opGetOrganizationInventory,
		path:     map[string]string{"organizationId": organizationID},
	})
}

// GetOrganizationLicenseState returns the license state of an organization.
func (c *Client) GetOrganizationLicenseState(ctx context.Context, organizationID string) (*LicenseState, error) {
	return one[LicenseState](ctx, c, request{
		endpoint: opGetOrganizationLicenseState,
		path:     map[string]string{"organizationId": organizationID},
	})
}

// GetOrganizationUplinksLossAndLatency returns the uplink loss and latency of every MX in an organization.
func (c *Client) GetOrganizationUplinksLossAndLatency(ctx context.Context, organizationID string, params *GetOrganizationUplinksLossAndLatencyParams) ([]UplinkLossAndLatency, error) {
	query, err := params.values()
	if err != nil {
		return nil, err
	}

	return list[UplinkLossAndLatency](ctx, c, request{
		endpoint: opGetOrganizationUplinksLossAndLatency,
		path:     map[string]string{"organizationId": organizationID},
		query:    query,
	})
}

// GetOrganizationSnmp returns the SNMP settings of an organization.
func (c *Client) GetOrganizationSnmp(ctx context.Context, organizationID string) (*OrganizationSnmp, error) {
	return one[OrganizationSnmp](ctx, c, request{
		endpoint: opGetOrganizationSnmp,
		path:     map[string]string{"organizationId": organizationID},
	})
}

// UpdateOrganizationSnmp updates the SNMP settings of an organization.
func (c *Client) UpdateOrganizationSnmp(ctx context.Context, organizationID string, body *UpdateOrganizationSnmp) (*OrganizationSnmp, error) {
	return one[OrganizationSnmp](ctx, c, request{
		endpoint: opUpdateOrganizationSnmp,
		path:     map[string]string{"organizationId": organizationID},
		body:     body,
	})
}

// GetOrganizationThirdPartyVPNPeers lists the third-party VPN peers of an organization.
func (c *Client) GetOrganizationThirdPartyVPNPeers(ctx context.Context, organizationID string) ([]ThirdPartyVPNPeer, error) {
	return list[ThirdPartyVPNPeer](ctx, c, request{
		endpoint: opGetOrganizationThirdPartyVPNPeers,
		path:     map[string]string{"organizationId": organizationID},
	})
}

// UpdateOrganizationThirdPartyVPNPeers replaces the third-party VPN peers of an organization.
func (c *Client) UpdateOrganizationThirdPartyVPNPeers(ctx context.Context, organizationID string, body *UpdateOrganizationThirdPartyVPNPeers) ([]ThirdPartyVPNPeer, error) {
	return list[ThirdPartyVPNPeer](ctx, c, request{
		endpoint: opUpdateOrganizationThirdPartyVPNPeers,
		path:     map[string]string{"organizationId": organizationID},
		body:     body,
	})
}

// GetOrganizationVpnFirewallRules returns the site-to-site VPN firewall rules of an organization.
func (c *Client) GetOrganizationVpnFirewallRules(ctx context.Context, organizationID string) ([]FirewallRule, error) {
	return list[FirewallRule](ctx, c, request{
		endpoint: opGetOrganizationVpnFirewallRules,
		path:     map[string]string{"organizationId": organizationID},
	})
}

// UpdateOrganizationVpnFirewallRules updates the site-to-site VPN firewall rules of an organization.
func (c *Client) UpdateOrganizationVpnFirewallRules(ctx context.Context, organizationID string, body *UpdateOrganizationVpnFirewallRules) ([]FirewallRule, error) {
	return list[FirewallRule](ctx, c, request{
		endpoint: opUpdateOrganizationVpnFirewallRules,
		path:     map[string]string{"organizationId": organizationID},
		body:     body,
	})
}
