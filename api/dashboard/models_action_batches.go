package dashboard

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// BatchAction is one operation inside an action batch. Body is any
// request model, for example an UpdateDeviceSwitchPort.
type BatchAction struct {
	Resource  string          `json:"resource"`
	Operation string          `json:"operation"`
	Body      json.RawMessage `json:"body,omitempty"`
}

// ActionBatchStatus reports the progress of an action batch.
type ActionBatchStatus struct {
	Completed bool     `json:"completed"`
	Failed    bool     `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// ActionBatch is a set of actions executed atomically.
type ActionBatch struct {
	ID             string            `json:"id"`
	OrganizationID string            `json:"organizationId"`
	Confirmed      bool              `json:"confirmed"`
	Synchronous    bool              `json:"synchronous"`
	Status         ActionBatchStatus `json:"status"`
	Actions        []BatchAction     `json:"actions"`
}

// CreateOrganizationActionBatch is the body of CreateOrganizationActionBatch.
type CreateOrganizationActionBatch struct {
	Confirmed   *bool         `json:"confirmed,omitempty"`
	Synchronous *bool         `json:"synchronous,omitempty"`
	Actions     []BatchAction `json:"actions"`
}

// UpdateOrganizationActionBatch is the body of UpdateOrganizationActionBatch.
type UpdateOrganizationActionBatch struct {
	Confirmed   *bool `json:"confirmed,omitempty"`
	Synchronous *bool `json:"synchronous,omitempty"`
}

// NewBatchAction builds an action whose body is the JSON form of model.
func NewBatchAction(resource, operation string, model any) (BatchAction, error) {
	action := BatchAction{Resource: resource, Operation: operation}
	if model == nil {
		return action, nil
	}

	body, err := json.Marshal(model)
	if err != nil {
		return action, errors.Wrapf(err, "failed to encode %s action body", operation)
	}
	action.Body = body

	return action, nil
}
