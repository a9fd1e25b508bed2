package dashboard

import (
	"context"
	"net/http"
)

var opGetOrganizationSamlRoles = register(Endpoint{
	OperationID:    "getOrganizationSamlRoles",
	Controller:     "SamlRoles",
	Method:         http.MethodGet,
	Path:           "/organizations/{organizationId}/samlRoles",
	Response:       KindSamlRole,
	ResponseIsList: true,
})

var opCreateOrganizationSamlRole = register(Endpoint{
	OperationID:  "createOrganizationSamlRole",
	Controller:   "SamlRoles",
	Method:       http.MethodPost,
	Path:         "/organizations/{organizationId}/samlRoles",
	Body:         KindCreateOrganizationSamlRole,
	BodyRequired: true,
	Response:     KindSamlRole,
})

var opGetOrganizationSamlRole = register(Endpoint{
	OperationID: "getOrganizationSamlRole",
	Controller:  "SamlRoles",
	Method:      http.MethodGet,
	Path:        "/organizations/{organizationId}/samlRoles/{id}",
	Response:    KindSamlRole,
})

var opUpdateOrganizationSamlRole = register(Endpoint{
	OperationID: "updateOrganizationSamlRole",
	Controller:  "SamlRoles",
	Method:      http.MethodPut,
	Path:        "/organizations/{organizationId}/samlRoles/{id}",
	Body:        KindUpdateOrganizationSamlRole,
	Response:    KindSamlRole,
})

var opDeleteOrganizationSamlRole = register(Endpoint{
	OperationID: "deleteOrganizationSamlRole",
	Controller:  "SamlRoles",
	Method:      http.MethodDelete,
	Path:        "/organizations/{organizationId}/samlRoles/{id}",
	NoContent:   true,
})

// GetOrganizationSamlRoles lists the SAML roles of an organization.
func (c *Client) GetOrganizationSamlRoles(ctx context.Context, organizationID string) ([]SamlRole, error) {
	return list[SamlRole](ctx, c, request{
		endpoint: opGetOrganizationSamlRoles,
		path:     map[string]string{"organizationId": organizationID},
	})
}

// CreateOrganizationSamlRole creates a SAML role.
func (c *Client) CreateOrganizationSamlRole(ctx context.Context, organizationID string, body *CreateOrganizationSamlRole) (*SamlRole, error) {
	return one[SamlRole](ctx, c, request{
		endpoint: opCreateOrganizationSamlRole,
		path:     map[string]string{"organizationId": organizationID},
		body:     body,
	})
}

// GetOrganizationSamlRole returns a SAML role.
func (c *Client) GetOrganizationSamlRole(ctx context.Context, organizationID, samlRoleID string) (*SamlRole, error) {
	return one[SamlRole](ctx, c, request{
		endpoint: opGetOrganizationSamlRole,
		path:     map[string]string{"organizationId": organizationID, "id": samlRoleID},
	})
}

// UpdateOrganizationSamlRole updates a SAML role.
func (c *Client) UpdateOrganizationSamlRole(ctx context.Context, organizationID, samlRoleID string, body *UpdateOrganizationSamlRole) (*SamlRole, error) {
	return one[SamlRole](ctx, c, request{
		endpoint: opUpdateOrganizationSamlRole,
		path:     map[string]string{"organizationId": organizationID, "id": samlRoleID},
		body:     body,
	})
}

// DeleteOrganizationSamlRole removes a SAML role.
func (c *Client) DeleteOrganizationSamlRole(ctx context.Context, organizationID, samlRoleID string) error {
	return noContent(ctx, c, request{
		endpoint: opDeleteOrganizationSamlRole,
		path:     map[string]string{"organizationId": organizationID, "id": samlRoleID},
	})
}
