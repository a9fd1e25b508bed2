// Package testdata embeds recorded Dashboard API v0 responses used as
// test fixtures. Paths are relative to this directory, grouped by
// controller: "admins/list_success.json", "errors/rate_limited.json".
package testdata

import (
	"embed"
	"encoding/json"
	"strings"
	"testing"
)

//go:embed **/*.json
var fixtures embed.FS

// LoadFixture returns the fixture at path, failing the test if it is missing.
func LoadFixture(t *testing.T, path string) string {
	t.Helper()

	data, err := fixtures.ReadFile(path)
	if err != nil {
		t.Fatalf("fixture %s: %v", path, err)
	}

	return string(data)
}

// LoadFixtureJSON decodes the fixture at path into v. Unknown keys fail
// the test, so a fixture cannot silently drift away from its model.
func LoadFixtureJSON(t *testing.T, path string, v any) {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(LoadFixture(t, path)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		t.Fatalf("fixture %s does not match %T: %v", path, v, err)
	}
}
