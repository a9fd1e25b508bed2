package dashboard

import (
	"context"
	"net/http"
)

var opGetNetworkAlertSettings = register(Endpoint{
	OperationID: "getNetworkAlertSettings",
	Controller:  "AlertSettings",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/alertSettings",
	Response:    KindAlertSettings,
})

var opUpdateNetworkAlertSettings = register(Endpoint{
	OperationID: "updateNetworkAlertSettings",
	Controller:  "AlertSettings",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/alertSettings",
	Body:        KindUpdateNetworkAlertSettings,
	Response:    KindAlertSettings,
})

// GetNetworkAlertSettings returns the alert configuration of a network.
func (c *Client) GetNetworkAlertSettings(ctx context.Context, networkID string) (*AlertSettings, error) {
	return one[AlertSettings](ctx, c, request{
		endpoint: opGetNetworkAlertSettings,
		path:     map[string]string{"networkId": networkID},
	})
}

// UpdateNetworkAlertSettings updates the alert configuration of a network.
func (c *Client) UpdateNetworkAlertSettings(ctx context.Context, networkID string, body *UpdateNetworkAlertSettings) (*AlertSettings, error) {
	return one[AlertSettings](ctx, c, request{
		endpoint: opUpdateNetworkAlertSettings,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}
