package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// table is a header plus rows of cells rendered with tabwriter.
type table struct {
	header []string
	rows   [][]string
}

func (t *table) add(cells ...any) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, row)
}

func (t *table) write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(t.header) > 0 {
		fmt.Fprintln(tw, strings.Join(t.header, "\t"))
	}
	for _, row := range t.rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return errors.Wrap(tw.Flush(), "failed to write table")
}

// render writes v as JSON or YAML, or the table built by tbl. YAML keys
// follow the JSON wire names.
func render(w io.Writer, format string, v any, tbl func() *table) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "failed to encode JSON")
	case formatYAML:
		data, err := json.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "failed to encode YAML")
		}
		return writeYAML(w, data)
	default:
		return tbl().write(w)
	}
}

func writeYAML(w io.Writer, data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "response is not valid JSON")
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode YAML")
	}

	return errors.Wrap(enc.Close(), "failed to encode YAML")
}

// renderRaw writes a raw JSON document in the requested format. Tables fall
// back to indented JSON.
func renderRaw(w io.Writer, format string, raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}

	if format == formatYAML {
		return writeYAML(w, raw)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return errors.Wrap(err, "response is not valid JSON")
	}
	buf.WriteByte('\n')

	_, err := buf.WriteTo(w)
	return errors.Wrap(err, "failed to write response")
}
