// Package audit compares the Dashboard API catalog and models against an
// OpenAPI document and against real responses, reporting drift.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/lexfrei/go-meraki/api/dashboard"
)

// FindingKind classifies a Finding.
type FindingKind string

// Finding kinds.
const (
	MissingPath           FindingKind = "missing-path"
	MissingMethod         FindingKind = "missing-method"
	OperationIDMismatch   FindingKind = "operation-id-mismatch"
	UncataloguedOperation FindingKind = "uncatalogued-operation"
)

// Finding is one difference between the catalog and a document.
type Finding struct {
	Kind        FindingKind `json:"kind"`
	OperationID string      `json:"operationId"`
	Method      string      `json:"method"`
	Path        string      `json:"path"`
	Detail      string      `json:"detail,omitempty"`
}

func (f Finding) String() string {
	s := fmt.Sprintf("%s %s %s (%s)", f.Kind, f.Method, f.Path, f.OperationID)
	if f.Detail != "" {
		s += ": " + f.Detail
	}
	return s
}

// Parse decodes an OpenAPI 3 document or a Swagger 2.0 document, JSON or
// YAML. Swagger documents are converted to OpenAPI 3.
func Parse(ctx context.Context, data []byte) (*openapi3.T, error) {
	raw, err := toJSON(data)
	if err != nil {
		return nil, err
	}

	var probe struct {
		Swagger string `json:"swagger"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, errors.Wrap(err, "failed to read document")
	}

	if probe.Swagger == "" {
		loader := openapi3.NewLoader()
		loader.Context = ctx

		doc, err := loader.LoadFromData(raw)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load OpenAPI document")
		}
		return doc, nil
	}

	var doc2 openapi2.T
	if err := json.Unmarshal(raw, &doc2); err != nil {
		return nil, errors.Wrap(err, "failed to decode Swagger document")
	}

	doc, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert Swagger document")
	}

	return doc, nil
}

// toJSON re-encodes a YAML document as JSON. JSON input is returned as is.
func toJSON(data []byte) ([]byte, error) {
	if json.Valid(data) {
		return data, nil
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "failed to decode YAML document")
	}

	raw, err := json.Marshal(stringKeys(v))
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-encode YAML document")
	}

	return raw, nil
}

// stringKeys converts YAML mappings with non-string keys, such as response
// codes, into JSON-compatible maps.
func stringKeys(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, val := range v {
			v[k] = stringKeys(val)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case []any:
		for i, val := range v {
			v[i] = stringKeys(val)
		}
		return v
	default:
		return v
	}
}

var placeholder = regexp.MustCompile(`\{[^}]*\}`)

// pathKey drops placeholder names so "/admins/{id}" matches "/admins/{adminId}".
func pathKey(path string) string {
	return placeholder.ReplaceAllString(strings.TrimRight(path, "/"), "{}")
}

func indexPaths(doc *openapi3.T) map[string]*openapi3.PathItem {
	index := map[string]*openapi3.PathItem{}
	if doc == nil || doc.Paths == nil {
		return index
	}

	for path, item := range doc.Paths.Map() {
		index[pathKey(path)] = item
	}

	return index
}

// Check reports the catalogued endpoints the document does not describe
// and those it names differently.
func Check(doc *openapi3.T, endpoints []dashboard.Endpoint) []Finding {
	index := indexPaths(doc)

	var findings []Finding
	for _, ep := range endpoints {
		finding := Finding{OperationID: ep.OperationID, Method: ep.Method, Path: ep.Path}

		item, ok := index[pathKey(ep.Path)]
		if !ok {
			finding.Kind = MissingPath
			findings = append(findings, finding)
			continue
		}

		op := item.GetOperation(ep.Method)
		if op == nil {
			finding.Kind = MissingMethod
			findings = append(findings, finding)
			continue
		}

		if op.OperationID != "" && !strings.EqualFold(op.OperationID, ep.OperationID) {
			finding.Kind = OperationIDMismatch
			finding.Detail = "document names it " + op.OperationID
			findings = append(findings, finding)
		}
	}

	sortFindings(findings)

	return findings
}

// Uncatalogued reports the document operations no catalogued endpoint covers.
func Uncatalogued(doc *openapi3.T, endpoints []dashboard.Endpoint) []Finding {
	covered := map[string]bool{}
	for _, ep := range endpoints {
		covered[ep.Method+" "+pathKey(ep.Path)] = true
	}

	if doc == nil || doc.Paths == nil {
		return nil
	}

	var findings []Finding
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			method = strings.ToUpper(method)
			if covered[method+" "+pathKey(path)] {
				continue
			}
			findings = append(findings, Finding{
				Kind:        UncataloguedOperation,
				OperationID: op.OperationID,
				Method:      method,
				Path:        path,
			})
		}
	}

	sortFindings(findings)

	return findings
}

var methodOrder = map[string]int{
	http.MethodGet:    0,
	http.MethodPost:   1,
	http.MethodPut:    2,
	http.MethodPatch:  3,
	http.MethodDelete: 4,
}

func sortFindings(findings []Finding) {
	slices.SortFunc(findings, func(a, b Finding) int {
		if c := strings.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return methodOrder[a.Method] - methodOrder[b.Method]
	})
}
