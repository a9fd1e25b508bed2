package dashboard

import (
	"context"
	"net/http"
)

var opGetNetworkStaticRoutes = register(Endpoint{
	OperationID:    "getNetworkStaticRoutes",
	Controller:     "StaticRoutes",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/staticRoutes",
	Response:       KindStaticRoute,
	ResponseIsList: true,
})

var opCreateNetworkStaticRoute = register(Endpoint{
	OperationID:  "createNetworkStaticRoute",
	Controller:   "StaticRoutes",
	Method:       http.MethodPost,
	Path:         "/networks/{networkId}/staticRoutes",
	Body:         KindCreateNetworkStaticRoute,
	BodyRequired: true,
	Response:     KindStaticRoute,
})

var opGetNetworkStaticRoute = register(Endpoint{
	OperationID: "getNetworkStaticRoute",
	Controller:  "StaticRoutes",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/staticRoutes/{srId}",
	Response:    KindStaticRoute,
})

var opUpdateNetworkStaticRoute = register(Endpoint{
	OperationID: "updateNetworkStaticRoute",
	Controller:  "StaticRoutes",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/staticRoutes/{srId}",
	Body:        KindUpdateNetworkStaticRoute,
	Response:    KindStaticRoute,
})

var opDeleteNetworkStaticRoute = register(Endpoint{
	OperationID: "deleteNetworkStaticRoute",
	Controller:  "StaticRoutes",
	Method:      http.MethodDelete,
	Path:        "/networks/{networkId}/staticRoutes/{srId}",
	NoContent:   true,
})

// GetNetworkStaticRoutes lists the static routes of an appliance network.
func (c *Client) GetNetworkStaticRoutes(ctx context.Context, networkID string) ([]StaticRoute, error) {
	return list[StaticRoute](ctx, c, request{
		endpoint: opGetNetworkStaticRoutes,
		path:     map[string]string{"networkId": networkID},
	})
}

// CreateNetworkStaticRoute adds a static route.
func (c *Client) CreateNetworkStaticRoute(ctx context.Context, networkID string, body *CreateNetworkStaticRoute) (*StaticRoute, error) {
	return one[StaticRoute](ctx, c, request{
		endpoint: opCreateNetworkStaticRoute,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// GetNetworkStaticRoute returns a static route.
func (c *Client) GetNetworkStaticRoute(ctx context.Context, networkID, staticRouteID string) (*StaticRoute, error) {
	return one[StaticRoute](ctx, c, request{
		endpoint: opGetNetworkStaticRoute,
		path:     map[string]string{"networkId": networkID, "srId": staticRouteID},
	})
}

// UpdateNetworkStaticRoute updates a static route.
func (c *Client) UpdateNetworkStaticRoute(ctx context.Context, networkID, staticRouteID string, body *UpdateNetworkStaticRoute) (*StaticRoute, error) {
	return one[StaticRoute](ctx, c, request{
		endpoint: opUpdateNetworkStaticRoute,
		path:     map[string]string{"networkId": networkID, "srId": staticRouteID},
		body:     body,
	})
}

// DeleteNetworkStaticRoute deletes a static route.
func (c *Client) DeleteNetworkStaticRoute(ctx context.Context, networkID, staticRouteID string) error {
	return noContent(ctx, c, request{
		endpoint: opDeleteNetworkStaticRoute,
		path:     map[string]string{"networkId": networkID, "srId": staticRouteID},
	})
}
