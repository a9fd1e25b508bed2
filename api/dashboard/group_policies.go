package dashboard

import (
	"context"
	"net/http"
)

var opGetNetworkGroupPolicies = register(Endpoint{
	OperationID:    "getNetworkGroupPolicies",
	Controller:     "GroupPolicies",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/groupPolicies",
	Response:       KindGroupPolicy,
	ResponseIsList: true,
})

var opCreateNetworkGroupPolicy = register(Endpoint{
	OperationID:  "createNetworkGroupPolicy",
	Controller:   "GroupPolicies",
	Method:       http.MethodPost,
	Path:         "/networks/{networkId}/groupPolicies",
	Body:         KindCreateNetworkGroupPolicy,
	BodyRequired: true,
	Response:     KindGroupPolicy,
})

var opGetNetworkGroupPolicy = register(Endpoint{
	OperationID: "getNetworkGroupPolicy",
	Controller:  "GroupPolicies",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/groupPolicies/{groupPolicyId}",
	Response:    KindGroupPolicy,
})

var opUpdateNetworkGroupPolicy = register(Endpoint{
	OperationID: "updateNetworkGroupPolicy",
	Controller:  "GroupPolicies",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/groupPolicies/{groupPolicyId}",
	Body:        KindUpdateNetworkGroupPolicy,
	Response:    KindGroupPolicy,
})

var opDeleteNetworkGroupPolicy = register(Endpoint{
	OperationID: "deleteNetworkGroupPolicy",
	Controller:  "GroupPolicies",
	Method:      http.MethodDelete,
	Path:        "/networks/{networkId}/groupPolicies/{groupPolicyId}",
	NoContent:   true,
})

// GetNetworkGroupPolicies lists the group policies of a network.
func (c *Client) GetNetworkGroupPolicies(ctx context.Context, networkID string) ([]GroupPolicy, error) {
	return list[GroupPolicy](ctx, c, request{
		endpoint: opGetNetworkGroupPolicies,
		path:     map[string]string{"networkId": networkID},
	})
}

// CreateNetworkGroupPolicy creates a group policy.
func (c *Client) CreateNetworkGroupPolicy(ctx context.Context, networkID string, body *CreateNetworkGroupPolicy) (*GroupPolicy, error) {
	return one[GroupPolicy](ctx, c, request{
		endpoint: opCreateNetworkGroupPolicy,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// GetNetworkGroupPolicy returns a group policy.
func (c *Client) GetNetworkGroupPolicy(ctx context.Context, networkID, groupPolicyID string) (*GroupPolicy, error) {
	return one[GroupPolicy](ctx, c, request{
		endpoint: opGetNetworkGroupPolicy,
		path:     map[string]string{"networkId": networkID, "groupPolicyId": groupPolicyID},
	})
}

// UpdateNetworkGroupPolicy updates a group policy.
func (c *Client) UpdateNetworkGroupPolicy(ctx context.Context, networkID, groupPolicyID string, body *UpdateNetworkGroupPolicy) (*GroupPolicy, error) {
	return one[GroupPolicy](ctx, c, request{
		endpoint: opUpdateNetworkGroupPolicy,
		path:     map[string]string{"networkId": networkID, "groupPolicyId": groupPolicyID},
		body:     body,
	})
}

// DeleteNetworkGroupPolicy deletes a group policy.
func (c *Client) DeleteNetworkGroupPolicy(ctx context.Context, networkID, groupPolicyID string) error {
	return noContent(ctx, c, request{
		endpoint: opDeleteNetworkGroupPolicy,
		path:     map[string]string{"networkId": networkID, "groupPolicyId": groupPolicyID},
	})
}
