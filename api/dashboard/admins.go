package dashboard

import (
	"context"
	"net/http"
)

var opGetOrganizationAdmins = register(Endpoint{
	OperationID:    "getOrganizationAdmins",
	Controller:     "Admins",
	Method:         http.MethodGet,
	Path:           "/organizations/{organizationId}/admins",
	Response:       KindAdmin,
	ResponseIsList: true,
})

var opCreateOrganizationAdmin = register(Endpoint{
	OperationID:  "createOrganizationAdmin",
	Controller:   "Admins",
	Method:       http.MethodPost,
	Path:         "/organizations/{organizationId}/admins",
	Body:         KindCreateOrganizationAdmin,
	BodyRequired: true,
	Response:     KindAdmin,
})

var opUpdateOrganizationAdmin = register(Endpoint{
	OperationID: "updateOrganizationAdmin",
	Controller:  "Admins",
	Method:      http.MethodPut,
	Path:        "/organizations/{organizationId}/admins/{id}",
	Body:        KindUpdateOrganizationAdmin,
	Response:    KindAdmin,
})

var opDeleteOrganizationAdmin = register(Endpoint{
	OperationID: "deleteOrganizationAdmin",
	Controller:  "Admins",
	Method:      http.MethodDelete,
	Path:        "/organizations/{organizationId}/admins/{id}",
	NoContent:   true,
})

// GetOrganizationAdmins lists the dashboard administrators of an organization.
func (c *Client) GetOrganizationAdmins(ctx context.Context, organizationID string) ([]Admin, error) {
	return list[Admin](ctx, c, request{
		endpoint: opGetOrganizationAdmins,
		path:     map[string]string{"organizationId": organizationID},
	})
}

// CreateOrganizationAdmin creates a dashboard administrator.
func (c *Client) CreateOrganizationAdmin(ctx context.Context, organizationID string, body *CreateOrganizationAdmin) (*Admin, error) {
	return one[Admin](ctx, c, request{
		endpoint: opCreateOrganizationAdmin,
		path:     map[string]string{"organizationId": organizationID},
		body:     body,
	})
}

// UpdateOrganizationAdmin updates an administrator.
func (c *Client) UpdateOrganizationAdmin(ctx context.Context, organizationID, adminID string, body *UpdateOrganizationAdmin) (*Admin, error) {
	return one[Admin](ctx, c, request{
		endpoint: opUpdateOrganizationAdmin,
		path:     map[string]string{"organizationId": organizationID, "id": adminID},
		body:     body,
	})
}

// DeleteOrganizationAdmin revokes all access for an administrator.
func (c *Client) DeleteOrganizationAdmin(ctx context.Context, organizationID, adminID string) error {
	return noContent(ctx, c, request{
		endpoint: opDeleteOrganizationAdmin,
		path:     map[string]string{"organizationId": organizationID, "id": adminID},
	})
}
