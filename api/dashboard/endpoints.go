package dashboard

import (
	"slices"
	"strings"
)

// Endpoint describes one Dashboard API operation. Every client method is
// backed by an Endpoint and executed by the same request path.
type Endpoint struct {
	// OperationID is the Dashboard operation ID, e.g. "getOrganizationAdmins".
	OperationID string

	// Controller is the resource group the operation belongs to, e.g. "Admins".
	Controller string

	// Method is the HTTP method.
	Method string

	// Path is the path template relative to the base URL, with {name} placeholders.
	Path string

	// Query lists the optional query parameters the operation accepts.
	Query []string

	// Body is the request model kind, empty when the operation takes no body.
	Body ModelKind

	// BodyRequired rejects calls without a body before any network I/O.
	BodyRequired bool

	// Response is the model kind of the decoded result, empty for untyped results.
	Response ModelKind

	// ResponseIsList reports whether the result is a JSON array of Response.
	ResponseIsList bool

	// NoContent operations succeed without a response payload.
	NoContent bool
}

// PathParameters returns the required path parameter names in template order.
func (e *Endpoint) PathParameters() []string {
	return PathParameters(e.Path)
}

func (e *Endpoint) clone() Endpoint {
	out := *e
	out.Query = slices.Clone(e.Query)
	return out
}

// catalog is filled during package initialization and read-only afterwards.
var catalog = map[string]*Endpoint{}

func register(e Endpoint) *Endpoint {
	ep := &e
	catalog[strings.ToLower(e.OperationID)] = ep
	return ep
}

// LookupEndpoint returns the endpoint with the given operation ID.
// Matching is case-insensitive.
func LookupEndpoint(operationID string) (Endpoint, bool) {
	ep, ok := catalog[strings.ToLower(operationID)]
	if !ok {
		return Endpoint{}, false
	}
	return ep.clone(), true
}

// Endpoints returns a copy of the catalog ordered by controller, then
// operation ID.
func Endpoints() []Endpoint {
	out := make([]Endpoint, 0, len(catalog))
	for _, ep := range catalog {
		out = append(out, ep.clone())
	}

	slices.SortFunc(out, func(a, b Endpoint) int {
		if c := strings.Compare(a.Controller, b.Controller); c != 0 {
			return c
		}
		return strings.Compare(a.OperationID, b.OperationID)
	})

	return out
}
