package dashboard

import (
	"context"
	"net/http"
)

var opGetNetworkSsids = register(Endpoint{
	OperationID:    "getNetworkSsids",
	Controller:     "Ssids",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/ssids",
	Response:       KindSsid,
	ResponseIsList: true,
})

var opGetNetworkSsid = register(Endpoint{
	OperationID: "getNetworkSsid",
	Controller:  "Ssids",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/ssids/{number}",
	Response:    KindSsid,
})

var opUpdateNetworkSsid = register(Endpoint{
	OperationID: "updateNetworkSsid",
	Controller:  "Ssids",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/ssids/{number}",
	Body:        KindUpdateNetworkSsid,
	Response:    KindSsid,
})

var opGetNetworkSsidL3FirewallRules = register(Endpoint{
	OperationID:    "getNetworkSsidL3FirewallRules",
	Controller:     "Ssids",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/ssids/{number}/l3FirewallRules",
	Response:       KindFirewallRule,
	ResponseIsList: true,
})

var opUpdateNetworkSsidL3FirewallRules = register(Endpoint{
	OperationID:    "updateNetworkSsidL3FirewallRules",
	Controller:     "Ssids",
	Method:         http.MethodPut,
	Path:           "/networks/{networkId}/ssids/{number}/l3FirewallRules",
	Body:           KindUpdateNetworkSsidL3FirewallRules,
	Response:       KindFirewallRule,
	ResponseIsList: true,
})

var opGetNetworkSsidSplashSettings = register(Endpoint{
	OperationID: "getNetworkSsidSplashSettings",
	Controller:  "Ssids",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/ssids/{number}/splashSettings",
	Response:    KindSplashSettings,
})

var opUpdateNetworkSsidSplashSettings = register(Endpoint{
	OperationID: "updateNetworkSsidSplashSettings",
	Controller:  "Ssids",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/ssids/{number}/splashSettings",
	Body:        KindUpdateNetworkSsidSplashSettings,
	Response:    KindSplashSettings,
})

var opGetNetworkSsidTrafficShaping = register(Endpoint{
	OperationID: "getNetworkSsidTrafficShaping",
	Controller:  "Ssids",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/ssids/{number}/trafficShaping",
	Response:    KindSsidTrafficShaping,
})

var opUpdateNetworkSsidTrafficShaping = register(Endpoint{
	OperationID: "updateNetworkSsidTrafficShaping",
	Controller:  "Ssids",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/ssids/{number}/trafficShaping",
	Body:        KindUpdateNetworkSsidTrafficShaping,
	Response:    KindSsidTrafficShaping,
})

// GetNetworkSsids lists the SSIDs of a network.
func (c *Client) GetNetworkSsids(ctx context.Context, networkID string) ([]Ssid, error) {
	return list[Ssid](ctx, c, request{
		endpoint: opGetNetworkSsids,
		path:     map[string]string{"networkId": networkID},
	})
}

// GetNetworkSsid returns an SSID.
func (c *Client) GetNetworkSsid(ctx context.Context, networkID, number string) (*Ssid, error) {
	return one[Ssid](ctx, c, request{
		endpoint: opGetNetworkSsid,
		path:     map[string]string{"networkId": networkID, "number": number},
	})
}

// UpdateNetworkSsid updates an SSID.
func (c *Client) UpdateNetworkSsid(ctx context.Context, networkID, number string, body *UpdateNetworkSsid) (*Ssid, error) {
	return one[Ssid](ctx, c, request{
		endpoint: opUpdateNetworkSsid,
		path:     map[string]string{"networkId": networkID, "number": number},
		body:     body,
	})
}

// GetNetworkSsidL3FirewallRules returns the layer 3 firewall rules of an SSID.
func (c *Client) GetNetworkSsidL3FirewallRules(ctx context.Context, networkID, number string) ([]FirewallRule, error) {
	return list[FirewallRule](ctx, c, request{
		endpoint: opGetNetworkSsidL3FirewallRules,
		path:     map[string]string{"networkId": networkID, "number": number},
	})
}

// UpdateNetworkSsidL3FirewallRules updates the layer 3 firewall rules of an SSID.
func (c *Client) UpdateNetworkSsidL3FirewallRules(ctx context.Context, networkID, number string, body *UpdateNetworkSsidL3FirewallRules) ([]FirewallRule, error) {
	return list[FirewallRule](ctx, c, request{
		endpoint: opUpdateNetworkSsidL3FirewallRules,
		path:     map[string]string{"networkId": networkID, "number": number},
		body:     body,
	})
}

// GetNetworkSsidSplashSettings returns the splash page settings of an SSID.
func (c *Client) GetNetworkSsidSplashSettings(ctx context.Context, networkID, number string) (*SplashSettings, error) {
	return one[SplashSettings](ctx, c, request{
		endpoint: opGetNetworkSsidSplashSettings,
		path:     map[string]string{"networkId": networkID, "number": number},
	})
}

// UpdateNetworkSsidSplashSettings updates the splash page settings of an SSID.
func (c *Client) UpdateNetworkSsidSplashSettings(ctx context.Context, networkID, number string, body *UpdateNetworkSsidSplashSettings) (*SplashSettings, error) {
	return one[SplashSettings](ctx, c, request{
		endpoint: opUpdateNetworkSsidSplashSettings,
		path:     map[string]string{"networkId": networkID, "number": number},
		body:     body,
	})
}

// GetNetworkSsidTrafficShaping returns the traffic shaping settings of an SSID.
func (c *Client) GetNetworkSsidTrafficShaping(ctx context.Context, networkID, number string) (*SsidTrafficShaping, error) {
	return one[SsidTrafficShaping](ctx, c, request{
		endpoint: opGetNetworkSsidTrafficShaping,
		path:     map[string]string{"networkId": networkID, "number": number},
	})
}

// UpdateNetworkSsidTrafficShaping updates the traffic shaping settings of an SSID.
func (c *Client) UpdateNetworkSsidTrafficShaping(ctx context.Context, networkID, number string, body *UpdateNetworkSsidTrafficShaping) (*SsidTrafficShaping, error) {
	return one[SsidTrafficShaping](ctx, c, request{
		endpoint: opUpdateNetworkSsidTrafficShaping,
		path:     map[string]string{"networkId": networkID, "number": number},
		body:     body,
	})
}
