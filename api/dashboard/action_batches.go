package dashboard

import (
	"context"
	"net/http"
)

var opGetOrganizationActionBatches = register(Endpoint{
	OperationID:    "getOrganizationActionBatches",
	Controller:     "ActionBatches",
	Method:         http.MethodGet,
	Path:           "/organizations/{organizationId}/actionBatches",
	Response:       KindActionBatch,
	ResponseIsList: true,
})

var opCreateOrganizationActionBatch = register(Endpoint{
	OperationID:  "createOrganizationActionBatch",
	Controller:   "ActionBatches",
	Method:       http.MethodPost,
	Path:         "/organizations/{organizationId}/actionBatches",
	Body:         KindCreateOrganizationActionBatch,
	BodyRequired: true,
	Response:     KindActionBatch,
})

var opGetOrganizationActionBatch = register(Endpoint{
	OperationID: "getOrganizationActionBatch",
	Controller:  "ActionBatches",
	Method:      http.MethodGet,
	Path:        "/organizations/{organizationId}/actionBatches/{actionBatchId}",
	Response:    KindActionBatch,
})

var opUpdateOrganizationActionBatch = register(Endpoint{
	OperationID: "updateOrganizationActionBatch",
	Controller:  "ActionBatches",
	Method:      http.MethodPut,
	Path:        "/organizations/{organizationId}/actionBatches/{actionBatchId}",
	Body:        KindUpdateOrganizationActionBatch,
	Response:    KindActionBatch,
})

var opDeleteOrganizationActionBatch = register(Endpoint{
	OperationID: "deleteOrganizationActionBatch",
	Controller:  "ActionBatches",
	Method:      http.MethodDelete,
	Path:        "/organizations/{organizationId}/actionBatches/{actionBatchId}",
	NoContent:   true,
})

// GetOrganizationActionBatches lists the action batches of an organization.
func (c *Client) GetOrganizationActionBatches(ctx context.Context, organizationID string) ([]ActionBatch, error) {
	return list[ActionBatch](ctx, c, request{
		endpoint: opGetOrganizationActionBatches,
		path:     map[string]string{"organizationId": organizationID},
	})
}

// CreateOrganizationActionBatch creates an action batch.
func (c *Client) CreateOrganizationActionBatch(ctx context.Context, organizationID string, body *CreateOrganizationActionBatch) (*ActionBatch, error) {
	return one[ActionBatch](ctx, c, request{
		endpoint: opCreateOrganizationActionBatch,
		path:     map[string]string{"organizationId": organizationID},
		body:     body,
	})
}

// GetOrganizationActionBatch returns an action batch.
func (c *Client) GetOrganizationActionBatch(ctx context.Context, organizationID, actionBatchID string) (*ActionBatch, error) {
	return one[ActionBatch](ctx, c, request{
		endpoint: opGetOrganizationActionBatch,
		path:     map[string]string{"organizationId": organizationID, "actionBatchId": actionBatchID},
	})
}

// UpdateOrganizationActionBatch confirms or changes the execution mode of an action batch.
func (c *Client) UpdateOrganizationActionBatch(ctx context.Context, organizationID, actionBatchID string, body *UpdateOrganizationActionBatch) (*ActionBatch, error) {
	return one[ActionBatch](ctx, c, request{
		endpoint: opUpdateOrganizationActionBatch,
		path:     map[string]string{"organizationId": organizationID, "actionBatchId": actionBatchID},
		body:     body,
	})
}

// DeleteOrganizationActionBatch deletes an unconfirmed action batch.
func (c *Client) DeleteOrganizationActionBatch(ctx context.Context, organizationID, actionBatchID string) error {
	return noContent(ctx, c, request{
		endpoint: opDeleteOrganizationActionBatch,
		path:     map[string]string{"organizationId": organizationID, "actionBatchId": actionBatchID},
	})
}
