package dashboard

import (
	"context"
	"net/http"
)

var opGetNetworkVlans = register(Endpoint{
	OperationID:    "getNetworkVlans",
	Controller:     "Vlans",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/vlans",
	Response:       KindVlan,
	ResponseIsList: true,
})

var opCreateNetworkVlan = register(Endpoint{
	OperationID:  "createNetworkVlan",
	Controller:   "Vlans",
	Method:       http.MethodPost,
	Path:         "/networks/{networkId}/vlans",
	Body:         KindCreateNetworkVlan,
	BodyRequired: true,
	Response:     KindVlan,
})

var opGetNetworkVlan = register(Endpoint{
	OperationID: "getNetworkVlan",
	Controller:  "Vlans",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/vlans/{vlanId}",
	Response:    KindVlan,
})

var opUpdateNetworkVlan = register(Endpoint{
	OperationID: "updateNetworkVlan",
	Controller:  "Vlans",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/vlans/{vlanId}",
	Body:        KindUpdateNetworkVlan,
	Response:    KindVlan,
})

var opDeleteNetworkVlan = register(Endpoint{
	OperationID: "deleteNetworkVlan",
	Controller:  "Vlans",
	Method:      http.MethodDelete,
	Path:        "/networks/{networkId}/vlans/{vlanId}",
	NoContent:   true,
})

var opGetNetworkVlansEnabledState = register(Endpoint{
	OperationID: "getNetworkVlansEnabledState",
	Controller:  "Vlans",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/vlansEnabledState",
	Response:    KindVlansEnabledState,
})

var opUpdateNetworkVlansEnabledState = register(Endpoint{
	OperationID:  "updateNetworkVlansEnabledState",
	Controller:   "Vlans",
	Method:       http.MethodPut,
	Path:         "/networks/{networkId}/vlansEnabledState",
	Body:         KindUpdateNetworkVlansEnabledState,
	BodyRequired: true,
	Response:     KindVlansEnabledState,
})

// GetNetworkVlans lists the VLANs of an appliance network.
func (c *Client) GetNetworkVlans(ctx context.Context, networkID string) ([]Vlan, error) {
	return list[Vlan](ctx, c, request{
		endpoint: opGetNetworkVlans,
		path:     map[string]string{"networkId": networkID},
	})
}

// CreateNetworkVlan adds a VLAN.
func (c *Client) CreateNetworkVlan(ctx context.Context, networkID string, body *CreateNetworkVlan) (*Vlan, error) {
	return one[Vlan](ctx, c, request{
		endpoint: opCreateNetworkVlan,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// GetNetworkVlan returns a VLAN.
func (c *Client) GetNetworkVlan(ctx context.Context, networkID, vlanID string) (*Vlan, error) {
	return one[Vlan](ctx, c, request{
		endpoint: opGetNetworkVlan,
		path:     map[string]string{"networkId": networkID, "vlanId": vlanID},
	})
}

// UpdateNetworkVlan updates a VLAN.
func (c *Client) UpdateNetworkVlan(ctx context.Context, networkID, vlanID string, body *UpdateNetworkVlan) (*Vlan, error) {
	return one[Vlan](ctx, c, request{
		endpoint: opUpdateNetworkVlan,
		path:     map[string]string{"networkId": networkID, "vlanId": vlanID},
		body:     body,
	})
}

// DeleteNetworkVlan deletes a VLAN.
func (c *Client) DeleteNetworkVlan(ctx context.Context, networkID, vlanID string) error {
	return noContent(ctx, c, request{
		endpoint: opDeleteNetworkVlan,
		path:     map[string]string{"networkId": networkID, "vlanId": vlanID},
	})
}

// GetNetworkVlansEnabledState reports whether VLANs are enabled on a network.
func (c *Client) GetNetworkVlansEnabledState(ctx context.Context, networkID string) (*VlansEnabledState, error) {
	return one[VlansEnabledState](ctx, c, request{
		endpoint: opGetNetworkVlansEnabledState,
		path:     map[string]string{"networkId": networkID},
	})
}

// UpdateNetworkVlansEnabledState enables or disables VLANs on a network.
func (c *Client) UpdateNetworkVlansEnabledState(ctx context.Context, networkID string, body *UpdateNetworkVlansEnabledState) (*VlansEnabledState, error) {
	return one[VlansEnabledState](ctx, c, request{
		endpoint: opUpdateNetworkVlansEnabledState,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}
