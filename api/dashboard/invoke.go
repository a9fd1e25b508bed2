package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"slices"
	"strings"
)

// Invoke executes the catalogued operation named by operationID.
//
// params fills the path placeholders and query holds optional query
// parameters. A non-empty body is strictly decoded into the operation's
// request model first, so unknown keys are rejected locally with a
// ValidationError. The raw JSON response is returned; no-content
// operations return nil.
func (c *Client) Invoke(
	ctx context.Context,
	operationID string,
	params map[string]string,
	query url.Values,
	body json.RawMessage,
) (json.RawMessage, error) {
	ep, ok := catalog[strings.ToLower(operationID)]
	if !ok {
		return nil, newValidationError("Unknown operation `%s`.", operationID)
	}

	for name := range query {
		if !slices.Contains(ep.Query, name) {
			return nil, newValidationError("The query parameter `%s` is not accepted by `%s`.", name, ep.OperationID)
		}
	}

	req := request{endpoint: ep, path: params, query: query}

	if len(bytes.TrimSpace(body)) > 0 {
		if ep.Body == "" {
			return nil, newValidationError("The operation `%s` does not accept a body.", ep.OperationID)
		}

		model, err := decodeStrict(ep.Body, body)
		if err != nil {
			return nil, err
		}
		req.body = model
	}

	raw, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	if ep.NoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil //nolint:nilnil // No-content operations have no payload
	}

	return json.RawMessage(raw), nil
}

// decodeStrict decodes data into a new model of the given kind, rejecting
// keys the model does not declare.
func decodeStrict(kind ModelKind, data []byte) (any, error) {
	model, err := NewModel(kind)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(model); err != nil {
		return nil, newValidationError("The body is not a valid %s: %s", kind, err.Error())
	}

	return model, nil
}
