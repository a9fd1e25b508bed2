package dashboard

import (
	"context"
	"net/http"
)

var opGetNetworkL3FirewallRules = register(Endpoint{
	OperationID:    "getNetworkL3FirewallRules",
	Controller:     "Firewall",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/l3FirewallRules",
	Response:       KindFirewallRule,
	ResponseIsList: true,
})

var opUpdateNetworkL3FirewallRules = register(Endpoint{
	OperationID:    "updateNetworkL3FirewallRules",
	Controller:     "Firewall",
	Method:         http.MethodPut,
	Path:           "/networks/{networkId}/l3FirewallRules",
	Body:           KindUpdateNetworkL3FirewallRules,
	Response:       KindFirewallRule,
	ResponseIsList: true,
})

var opGetNetworkL7FirewallRules = register(Endpoint{
	OperationID: "getNetworkL7FirewallRules",
	Controller:  "Firewall",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/l7FirewallRules",
	Response:    KindL7FirewallRules,
})

var opUpdateNetworkL7FirewallRules = register(Endpoint{
	OperationID: "updateNetworkL7FirewallRules",
	Controller:  "Firewall",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/l7FirewallRules",
	Body:        KindUpdateNetworkL7FirewallRules,
	Response:    KindL7FirewallRules,
})

var opGetNetworkL7FirewallRulesApplicationCategories = register(Endpoint{
	OperationID: "getNetworkL7FirewallRulesApplicationCategories",
	Controller:  "Firewall",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/l7FirewallRules/applicationCategories",
	Response:    KindL7ApplicationCategories,
})

var opGetNetworkCellularFirewallRules = register(Endpoint{
	OperationID:    "getNetworkCellularFirewallRules",
	Controller:     "Firewall",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/cellularFirewallRules",
	Response:       KindFirewallRule,
	ResponseIsList: true,
})

var opUpdateNetworkCellularFirewallRules = register(Endpoint{
	OperationID:    "updateNetworkCellularFirewallRules",
	Controller:     "Firewall",
	Method:         http.MethodPut,
	Path:           "/networks/{networkId}/cellularFirewallRules",
	Body:           KindUpdateNetworkCellularFirewallRules,
	Response:       KindFirewallRule,
	ResponseIsList: true,
})

var opGetNetworkPortForwardingRules = register(Endpoint{
	OperationID: "getNetworkPortForwardingRules",
	Controller:  "Firewall",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/portForwardingRules",
	Response:    KindPortForwardingRules,
})

var opUpdateNetworkPortForwardingRules = register(Endpoint{
	OperationID: "updateNetworkPortForwardingRules",
	Controller:  "Firewall",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/portForwardingRules",
	Body:        KindUpdateNetworkPortForwardingRules,
	Response:    KindPortForwardingRules,
})

var opGetNetworkFirewalledServices = register(Endpoint{
	OperationID:    "getNetworkFirewalledServices",
	Controller:     "Firewall",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/firewalledServices",
	Response:       KindFirewalledService,
	ResponseIsList: true,
})

var opGetNetworkFirewalledService = register(Endpoint{
	OperationID: "getNetworkFirewalledService",
	Controller:  "Firewall",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/firewalledServices/{service}",
	Response:    KindFirewalledService,
})

var opUpdateNetworkFirewalledService = register(Endpoint{
	OperationID:  "updateNetworkFirewalledService",
	Controller:   "Firewall",
	Method:       http.MethodPut,
	Path:         "/networks/{networkId}/firewalledServices/{service}",
	Body:         KindUpdateNetworkFirewalledService,
	BodyRequired: true,
	Response:     KindFirewalledService,
})

// GetNetworkL3FirewallRules returns the layer 3 firewall rules of an appliance network.
func (c *Client) GetNetworkL3FirewallRules(ctx context.Context, networkID string) ([]FirewallRule, error) {
	return list[FirewallRule](ctx, c, request{
		endpoint: opGetNetworkL3FirewallRules,
		path:     map[string]string{"networkId": networkID},
	})
}

// UpdateNetworkL3FirewallRules updates the layer 3 firewall rules of an appliance network.
func (c *Client) UpdateNetworkL3FirewallRules(ctx context.Context, networkID string, body *UpdateNetworkL3FirewallRules) ([]FirewallRule, error) {
	return list[FirewallRule](ctx, c, request{
		endpoint: opUpdateNetworkL3FirewallRules,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// GetNetworkL7FirewallRules returns the layer 7 firewall rules of an appliance network.
func (c *Client) GetNetworkL7FirewallRules(ctx context.Context, networkID string) (*L7FirewallRules, error) {
	return one[L7FirewallRules](ctx, c, request{
		endpoint: opGetNetworkL7FirewallRules,
		path:     map[string]string{"networkId": networkID},
	})
}

// UpdateNetworkL7FirewallRules updates the layer 7 firewall rules of an appliance network.
func (c *Client) UpdateNetworkL7FirewallRules(ctx context.Context, networkID string, body *UpdateNetworkL7FirewallRules) (*L7FirewallRules, error) {
	return one[L7FirewallRules](ctx, c, request{
		endpoint: opUpdateNetworkL7FirewallRules,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// GetNetworkL7FirewallRulesApplicationCategories returns the application categories usable in layer 7 rules.
func (c *Client) GetNetworkL7FirewallRulesApplicationCategories(ctx context.Context, networkID string) (*L7ApplicationCategories, error) {
	return one[L7ApplicationCategories](ctx, c, request{
		endpoint: opGetNetworkL7FirewallRulesApplicationCategories,
		path:     map[string]string{"networkId": networkID},
	})
}

// GetNetworkCellularFirewallRules returns the cellular firewall rules of a network.
func (c *Client) GetNetworkCellularFirewallRules(ctx context.Context, networkID string) ([]FirewallRule, error) {
	return list[FirewallRule](ctx, c, request{
		endpoint: opGetNetworkCellularFirewallRules,
		path:     map[string]string{"networkId": networkID},
	})
}

// UpdateNetworkCellularFirewallRules updates the cellular firewall rules of a network.
func (c *Client) UpdateNetworkCellularFirewallRules(ctx context.Context, networkID string, body *UpdateNetworkCellularFirewallRules) ([]FirewallRule, error) {
	return list[FirewallRule](ctx, c, request{
		endpoint: opUpdateNetworkCellularFirewallRules,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// GetNetworkPortForwardingRules returns the port forwarding rules of a network.
func (c *Client) GetNetworkPortForwardingRules(ctx context.Context, networkID string) (*PortForwardingRules, error) {
	return one[PortForwardingRules](ctx, c, request{
		endpoint: opGetNetworkPortForwardingRules,
		path:     map[string]string{"networkId": networkID},
	})
}

// UpdateNetworkPortForwardingRules replaces the port forwarding rules of a network.
func (c *Client) UpdateNetworkPortForwardingRules(ctx context.Context, networkID string, body *UpdateNetworkPortForwardingRules) (*PortForwardingRules, error) {
	return one[PortForwardingRules](ctx, c, request{
		endpoint: opUpdateNetworkPortForwardingRules,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// GetNetworkFirewalledServices lists the appliance services and their access policies.
func (c *Client) GetNetworkFirewalledServices(ctx context.Context, networkID string) ([]FirewalledService, error) {
	return list[FirewalledService](ctx, c, request{
		endpoint: opGetNetworkFirewalledServices,
		path:     map[string]string{"networkId": networkID},
	})
}

// GetNetworkFirewalledService returns the access policy of an appliance service.
func (c *Client) GetNetworkFirewalledService(ctx context.Context, networkID, service string) (*FirewalledService, error) {
	return one[FirewalledService](ctx, c, request{
		endpoint: opGetNetworkFirewalledService,
		path:     map[string]string{"networkId": networkID, "service": service},
	})
}

// UpdateNetworkFirewalledService updates the access policy of an appliance service.
func (c *Client) UpdateNetworkFirewalledService(ctx context.Context, networkID, service string, body *UpdateNetworkFirewalledService) (*FirewalledService, error) {
	return one[FirewalledService](ctx, c, request{
		endpoint: opUpdateNetworkFirewalledService,
		path:     map[string]string{"networkId": networkID, "service": service},
		body:     body,
	})
}
