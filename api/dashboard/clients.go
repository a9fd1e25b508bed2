package dashboard

import (
	"context"
	"net/http"
)

var opGetDeviceClients = register(Endpoint{
	OperationID:    "getDeviceClients",
	Controller:     "Clients",
	Method:         http.MethodGet,
	Path:           "/devices/{serial}/clients",
	Query:          []string{"t0", "timespan"},
	Response:       KindDeviceClient,
	ResponseIsList: true,
})

var opGetNetworkClients = register(Endpoint{
	OperationID:    "getNetworkClients",
	Controller:     "Clients",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/clients",
	Query:          []string{"t0", "timespan", "perPage", "startingAfter", "endingBefore"},
	Response:       KindNetworkClient,
	ResponseIsList: true,
})

var opGetNetworkClient = register(Endpoint{
	OperationID: "getNetworkClient",
	Controller:  "Clients",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/clients/{clientId}",
	Response:    KindNetworkClient,
})

var opProvisionNetworkClients = register(Endpoint{
	OperationID:  "provisionNetworkClients",
	Controller:   "Clients",
	Method:       http.MethodPost,
	Path:         "/networks/{networkId}/clients/provision",
	Body:         KindProvisionNetworkClients,
	BodyRequired: true,
	Response:     KindProvisionedClient,
})

var opGetNetworkClientPolicy = register(Endpoint{
	OperationID: "getNetworkClientPolicy",
	Controller:  "Clients",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/clients/{clientId}/policy",
	Response:    KindClientPolicy,
})

var opUpdateNetworkClientPolicy = register(Endpoint{
	OperationID:  "updateNetworkClientPolicy",
	Controller:   "Clients",
	Method:       http.MethodPut,
	Path:         "/networks/{networkId}/clients/{clientId}/policy",
	Body:         KindUpdateNetworkClientPolicy,
	BodyRequired: true,
	Response:     KindClientPolicy,
})

var opGetNetworkClientSplashAuthorizationStatus = register(Endpoint{
	OperationID: "getNetworkClientSplashAuthorizationStatus",
	Controller:  "Clients",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/clients/{clientId}/splashAuthorizationStatus",
	Response:    KindSplashAuthorizationStatus,
})

var opUpdateNetworkClientSplashAuthorizationStatus = register(Endpoint{
	OperationID: "updateNetworkClientSplashAuthorizationStatus",
	Controller:  "Clients",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/clients/{clientId}/splashAuthorizationStatus",
	Body:        KindUpdateNetworkClientSplashAuthorizationStatus,
	Response:    KindSplashAuthorizationStatus,
})

// GetDeviceClients lists the clients seen by a device.
func (c *Client) GetDeviceClients(ctx context.Context, serial string, params *GetDeviceClientsParams) ([]DeviceClient, error) {
	query, err := params.values()
	if err != nil {
		return nil, err
	}

	return list[DeviceClient](ctx, c, request{
		endpoint: opGetDeviceClients,
		path:     map[string]string{"serial": serial},
		query:    query,
	})
}

// GetNetworkClients lists the clients of a network.
func (c *Client) GetNetworkClients(ctx context.Context, networkID string, params *GetNetworkClientsParams) ([]NetworkClient, error) {
	query, err := params.values()
	if err != nil {
		return nil, err
	}

	return list[NetworkClient](ctx, c, request{
		endpoint: opGetNetworkClients,
		path:     map[string]string{"networkId": networkID},
		query:    query,
	})
}

// GetNetworkClient returns a client of a network.
func (c *Client) GetNetworkClient(ctx context.Context, networkID, clientID string) (*NetworkClient, error) {
	return one[NetworkClient](ctx, c, request{
		endpoint: opGetNetworkClient,
		path:     map[string]string{"networkId": networkID, "clientId": clientID},
	})
}

// ProvisionNetworkClients provisions a client with a name and policy.
func (c *Client) ProvisionNetworkClients(ctx context.Context, networkID string, body *ProvisionNetworkClients) (*ProvisionedClient, error) {
	return one[ProvisionedClient](ctx, c, request{
		endpoint: opProvisionNetworkClients,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// GetNetworkClientPolicy returns the policy assigned to a client.
func (c *Client) GetNetworkClientPolicy(ctx context.Context, networkID, clientID string) (*ClientPolicy, error) {
	return one[ClientPolicy](ctx, c, request{
		endpoint: opGetNetworkClientPolicy,
		path:     map[string]string{"networkId": networkID, "clientId": clientID},
	})
}

// UpdateNetworkClientPolicy updates the policy assigned to a client.
func (c *Client) UpdateNetworkClientPolicy(ctx context.Context, networkID, clientID string, body *UpdateNetworkClientPolicy) (*ClientPolicy, error) {
	return one[ClientPolicy](ctx, c, request{
		endpoint: opUpdateNetworkClientPolicy,
		path:     map[string]string{"networkId": networkID, "clientId": clientID},
		body:     body,
	})
}

// GetNetworkClientSplashAuthorizationStatus returns the splash authorization of a client on every SSID.
func (c *Client) GetNetworkClientSplashAuthorizationStatus(ctx context.Context, networkID, clientID string) (*SplashAuthorizationStatus, error) {
	return one[SplashAuthorizationStatus](ctx, c, request{
		endpoint: opGetNetworkClientSplashAuthorizationStatus,
		path:     map[string]string{"networkId": networkID, "clientId": clientID},
	})
}

// UpdateNetworkClientSplashAuthorizationStatus updates the splash authorization of a client.
func (c *Client) UpdateNetworkClientSplashAuthorizationStatus(ctx context.Context, networkID, clientID string, body *UpdateNetworkClientSplashAuthorizationStatus) (*SplashAuthorizationStatus, error) {
	return one[SplashAuthorizationStatus](ctx, c, request{
		endpoint: opUpdateNetworkClientSplashAuthorizationStatus,
		path:     map[string]string{"networkId": networkID, "clientId": clientID},
		body:     body,
	})
}
