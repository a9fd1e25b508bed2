package dashboard

import (
	"context"
	"net/http"
)

var opGetOrganizationNetworks = register(Endpoint{
	OperationID:    "getOrganizationNetworks",
	Controller:     "Networks",
	Method:         http.MethodGet,
	Path:           "/organizations/{organizationId}/networks",
	Query:          []string{"configTemplateId"},
	Response:       KindNetwork,
	ResponseIsList: true,
})

var opCreateOrganizationNetwork = register(Endpoint{
	OperationID:  "createOrganizationNetwork",
	Controller:   "Networks",
	Method:       http.MethodPost,
	Path:         "/organizations/{organizationId}/networks",
	Body:         KindCreateOrganizationNetwork,
	BodyRequired: true,
	Response:     KindNetwork,
})

var opCombineOrganizationNetworks = register(Endpoint{
	OperationID:  "combineOrganizationNetworks",
	Controller:   "Networks",
	Method:       http.MethodPost,
	Path:         "/organizations/{organizationId}/networks/combine",
	Body:         KindCombineOrganizationNetworks,
	BodyRequired: true,
	Response:     KindCombinedNetwork,
})

var opGetNetwork = register(Endpoint{
	OperationID: "getNetwork",
	Controller:  "Networks",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}",
	Response:    KindNetwork,
})

var opUpdateNetwork = register(Endpoint{
	OperationID: "updateNetwork",
	Controller:  "Networks",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}",
	Body:        KindUpdateNetwork,
	Response:    KindNetwork,
})

var opDeleteNetwork = register(Endpoint{
	OperationID: "deleteNetwork",
	Controller:  "Networks",
	Method:      http.MethodDelete,
	Path:        "/networks/{networkId}",
	NoContent:   true,
})

var opBindNetwork = register(Endpoint{
	OperationID:  "bindNetwork",
	Controller:   "Networks",
	Method:       http.MethodPost,
	Path:         "/networks/{networkId}/bind",
	Body:         KindBindNetwork,
	BodyRequired: true,
	NoContent:    true,
})

var opUnbindNetwork = register(Endpoint{
	OperationID: "unbindNetwork",
	Controller:  "Networks",
	Method:      http.MethodPost,
	Path:        "/networks/{networkId}/unbind",
	NoContent:   true,
})

var opGetNetworkSiteToSiteVpn = register(Endpoint{
	OperationID: "getNetworkSiteToSiteVpn",
	Controller:  "Networks",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/siteToSiteVpn",
	Response:    KindSiteToSiteVpn,
})

var opUpdateNetworkSiteToSiteVpn = register(Endpoint{
	OperationID:  "updateNetworkSiteToSiteVpn",
	Controller:   "Networks",
	Method:       http.MethodPut,
	Path:         "/networks/{networkId}/siteToSiteVpn",
	Body:         KindUpdateNetworkSiteToSiteVpn,
	BodyRequired: true,
	Response:     KindSiteToSiteVpn,
})

var opGetNetworkTraffic = register(Endpoint{
	OperationID:    "getNetworkTraffic",
	Controller:     "Networks",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/traffic",
	Query:          []string{"timespan", "deviceType"},
	Response:       KindTrafficEntry,
	ResponseIsList: true,
})

// GetOrganizationNetworks lists the networks of an organization.
func (c *Client) GetOrganizationNetworks(ctx context.Context, organizationID string, params *GetOrganizationNetworksParams) ([]Network, error) {
	query, err := params.values()
	if err != nil {
		return nil, err
	}

	return list[Network](ctx, c, request{
		endpoint: opGetOrganizationNetworks,
		path:     map[string]string{"organizationId": organizationID},
		query:    query,
	})
}

// CreateOrganizationNetwork creates a network.
func (c *Client) CreateOrganizationNetwork(ctx context.Context, organizationID string, body *CreateOrganizationNetwork) (*Network, error) {
	return one[Network](ctx, c, request{
		endpoint: opCreateOrganizationNetwork,
		path:     map[string]string{"organizationId": organizationID},
		body:     body,
	})
}

// CombineOrganizationNetworks combines several networks into one.
func (c *Client) CombineOrganizationNetworks(ctx context.Context, organizationID string, body *CombineOrganizationNetworks) (*CombinedNetwork, error) {
	return one[CombinedNetwork](ctx, c, request{
		endpoint: opCombineOrganizationNetworks,
		path:     map[string]string{"organizationId": organizationID},
		body:     body,
	})
}

// GetNetwork returns a network.
func (c *Client) GetNetwork(ctx context.Context, networkID string) (*Network, error) {
	return one[Network](ctx, c, request{
		endpoint: opGetNetwork,
		path:     map[string]string{"networkId": networkID},
	})
}

// UpdateNetwork updates a network.
func (c *Client) UpdateNetwork(ctx context.Context, networkID string, body *UpdateNetwork) (*Network, error) {
	return one[Network](ctx, c, request{
		endpoint: opUpdateNetwork,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// DeleteNetwork deletes a network.
func (c *Client) DeleteNetwork(ctx context.Context, networkID string) error {
	return noContent(ctx, c, request{
		endpoint: opDeleteNetwork,
		path:     map[string]string{"networkId": networkID},
	})
}

// BindNetwork binds a network to a configuration template.
func (c *Client) BindNetwork(ctx context.Context, networkID string, body *BindNetwork) error {
	return noContent(ctx, c, request{
		endpoint: opBindNetwork,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// UnbindNetwork unbinds a network from its configuration template.
func (c *Client) UnbindNetwork(ctx context.Context, networkID string) error {
	return noContent(ctx, c, request{
		endpoint: opUnbindNetwork,
		path:     map[string]string{"networkId": networkID},
	})
}

// GetNetworkSiteToSiteVpn returns the site-to-site VPN settings of a network.
func (c *Client) GetNetworkSiteToSiteVpn(ctx context.Context, networkID string) (*SiteToSiteVpn, error) {
	return one[SiteToSiteVpn](ctx, c, request{
		endpoint: opGetNetworkSiteToSiteVpn,
		path:     map[string]string{"networkId": networkID},
	})
}

// UpdateNetworkSiteToSiteVpn updates the site-to-site VPN settings of a network.
func (c *Client) UpdateNetworkSiteToSiteVpn(ctx context.Context, networkID string, body *UpdateNetworkSiteToSiteVpn) (*SiteToSiteVpn, error) {
	return one[SiteToSiteVpn](ctx, c, request{
		endpoint: opUpdateNetworkSiteToSiteVpn,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// GetNetworkTraffic returns the traffic analysis data of a network.
func (c *Client) GetNetworkTraffic(ctx context.Context, networkID string, params *GetNetworkTrafficParams) ([]TrafficEntry, error) {
	query, err := params.values()
	if err != nil {
		return nil, err
	}

	return list[TrafficEntry](ctx, c, request{
		endpoint: opGetNetworkTraffic,
		path:     map[string]string{"networkId": networkID},
		query:    query,
	})
}
