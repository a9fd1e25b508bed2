package audit

import (
	"encoding/json"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/lexfrei/go-meraki/api/dashboard"
)

var rawMessageType = reflect.TypeFor[json.RawMessage]()

// UnknownFields reports the keys of the JSON document raw that model does
// not declare, as dotted paths ("tags[].access"). model is a value or
// pointer of the type raw is meant to decode into. Arrays are checked
// element by element; maps and untyped fields are not descended into.
func UnknownFields(raw []byte, model any) ([]string, error) {
	if model == nil {
		return nil, errors.New("model is required")
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "invalid JSON")
	}

	seen := map[string]bool{}
	walk(doc, reflect.TypeOf(model), "", seen)

	unknown := make([]string, 0, len(seen))
	for path := range seen {
		unknown = append(unknown, path)
	}
	slices.Sort(unknown)

	return unknown, nil
}

// UnknownResponseFields checks raw against the response model of the
// catalogued operation; list operations are checked element by element.
// Operations without a response model report nothing.
func UnknownResponseFields(operationID string, raw []byte) ([]string, error) {
	ep, ok := dashboard.LookupEndpoint(operationID)
	if !ok {
		return nil, errors.Newf("unknown operation %q", operationID)
	}
	if ep.Response == "" {
		return nil, nil
	}

	model, err := dashboard.NewModel(ep.Response)
	if err != nil {
		return nil, errors.Wrap(err, operationID)
	}
	if ep.ResponseIsList {
		model = reflect.New(reflect.SliceOf(reflect.TypeOf(model))).Interface()
	}

	return UnknownFields(raw, model)
}

func walk(doc any, typ reflect.Type, path string, seen map[string]bool) {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	switch v := doc.(type) {
	case []any:
		if typ.Kind() != reflect.Slice && typ.Kind() != reflect.Array {
			return
		}
		for _, elem := range v {
			walk(elem, typ.Elem(), path+"[]", seen)
		}
	case map[string]any:
		if typ.Kind() != reflect.Struct {
			return
		}

		fields := jsonFields(typ)
		for key, val := range v {
			fieldPath := key
			if path != "" {
				fieldPath = path + "." + key
			}

			field, ok := fields[key]
			if !ok {
				seen[fieldPath] = true
				continue
			}
			if field.Type == rawMessageType || field.Type.Kind() == reflect.Interface {
				continue
			}
			walk(val, field.Type, fieldPath, seen)
		}
	}
}

// jsonFields maps the wire names of typ's exported fields to the fields.
func jsonFields(typ reflect.Type) map[string]reflect.StructField {
	fields := map[string]reflect.StructField{}
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			wire, _, _ := strings.Cut(tag, ",")
			if wire == "-" {
				continue
			}
			if wire != "" {
				name = wire
			}
		}

		if field.Anonymous && field.Tag.Get("json") == "" {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				maps.Copy(fields, jsonFields(embedded))
				continue
			}
		}

		fields[name] = field
	}

	return fields
}
