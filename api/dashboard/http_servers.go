package dashboard

import (
	"context"
	"net/http"
)

var opGetNetworkHTTPServers = register(Endpoint{
	OperationID:    "getNetworkHttpServers",
	Controller:     "HTTPServers",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/httpServers",
	Response:       KindHTTPServer,
	ResponseIsList: true,
})

var opCreateNetworkHTTPServer = register(Endpoint{
	OperationID:  "createNetworkHttpServer",
	Controller:   "HTTPServers",
	Method:       http.MethodPost,
	Path:         "/networks/{networkId}/httpServers",
	Body:         KindCreateNetworkHTTPServer,
	BodyRequired: true,
	Response:     KindHTTPServer,
})

var opGetNetworkHTTPServer = register(Endpoint{
	OperationID: "getNetworkHttpServer",
	Controller:  "HTTPServers",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/httpServers/{id}",
	Response:    KindHTTPServer,
})

var opUpdateNetworkHTTPServer = register(Endpoint{
	OperationID: "updateNetworkHttpServer",
	Controller:  "HTTPServers",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/httpServers/{id}",
	Body:        KindUpdateNetworkHTTPServer,
	Response:    KindHTTPServer,
})

var opDeleteNetworkHTTPServer = register(Endpoint{
	OperationID: "deleteNetworkHttpServer",
	Controller:  "HTTPServers",
	Method:      http.MethodDelete,
	Path:        "/networks/{networkId}/httpServers/{id}",
	NoContent:   true,
})

var opCreateNetworkHTTPServersWebhookTest = register(Endpoint{
	OperationID:  "createNetworkHttpServersWebhookTest",
	Controller:   "HTTPServers",
	Method:       http.MethodPost,
	Path:         "/networks/{networkId}/httpServers/webhookTests",
	Body:         KindCreateNetworkHTTPServersWebhookTest,
	BodyRequired: true,
	Response:     KindWebhookTest,
})

var opGetNetworkHTTPServersWebhookTest = register(Endpoint{
	OperationID: "getNetworkHttpServersWebhookTest",
	Controller:  "HTTPServers",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/httpServers/webhookTests/{id}",
	Response:    KindWebhookTest,
})

// GetNetworkHTTPServers lists the webhook receivers of a network.
func (c *Client) GetNetworkHTTPServers(ctx context.Context, networkID string) ([]HTTPServer, error) {
	return list[HTTPServer](ctx, c, request{
		endpoint: opGetNetworkHTTPServers,
		path:     map[string]string{"networkId": networkID},
	})
}

// CreateNetworkHTTPServer adds a webhook receiver.
func (c *Client) CreateNetworkHTTPServer(ctx context.Context, networkID string, body *CreateNetworkHTTPServer) (*HTTPServer, error) {
	return one[HTTPServer](ctx, c, request{
		endpoint: opCreateNetworkHTTPServer,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// GetNetworkHTTPServer returns a webhook receiver.
func (c *Client) GetNetworkHTTPServer(ctx context.Context, networkID, httpServerID string) (*HTTPServer, error) {
	return one[HTTPServer](ctx, c, request{
		endpoint: opGetNetworkHTTPServer,
		path:     map[string]string{"networkId": networkID, "id": httpServerID},
	})
}

// UpdateNetworkHTTPServer updates a webhook receiver.
func (c *Client) UpdateNetworkHTTPServer(ctx context.Context, networkID, httpServerID string, body *UpdateNetworkHTTPServer) (*HTTPServer, error) {
	return one[HTTPServer](ctx, c, request{
		endpoint: opUpdateNetworkHTTPServer,
		path:     map[string]string{"networkId": networkID, "id": httpServerID},
		body:     body,
	})
}

// DeleteNetworkHTTPServer deletes a webhook receiver.
func (c *Client) DeleteNetworkHTTPServer(ctx context.Context, networkID, httpServerID string) error {
	return noContent(ctx, c, request{
		endpoint: opDeleteNetworkHTTPServer,
		path:     map[string]string{"networkId": networkID, "id": httpServerID},
	})
}

// CreateNetworkHTTPServersWebhookTest sends a test webhook to a URL.
func (c *Client) CreateNetworkHTTPServersWebhookTest(ctx context.Context, networkID string, body *CreateNetworkHTTPServersWebhookTest) (*WebhookTest, error) {
	return one[WebhookTest](ctx, c, request{
		endpoint: opCreateNetworkHTTPServersWebhookTest,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// GetNetworkHTTPServersWebhookTest returns the delivery state of a test webhook.
func (c *Client) GetNetworkHTTPServersWebhookTest(ctx context.Context, networkID, testID string) (*WebhookTest, error) {
	return one[WebhookTest](ctx, c, request{
		endpoint: opGetNetworkHTTPServersWebhookTest,
		path:     map[string]string{"networkId": networkID, "id": testID},
	})
}
