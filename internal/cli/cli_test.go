package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lexfrei/go-meraki/api/dashboard"
	"github.com/lexfrei/go-meraki/api/dashboard/testdata"
	"github.com/lexfrei/go-meraki/internal/testutil"
)

const (
	testAPIKey = "test-api-key"
	testOrgID  = "2930418"
)

// writeConfig writes a merakictl config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "merakictl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// runCLI executes merakictl with args and an empty config file, so the
// caller's $HOME/.merakictl.yaml never leaks into a test.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd(&out, &errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", writeConfig(t, "{}\n")}, args...))

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func jsonHandler(t *testing.T, status int, body string) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testAPIKey, r.Header.Get(testutil.APIKeyHeader))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "merakictl "), out)
}

func TestEndpoints(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "", "endpoints", "--controller", "admins", "-o", "json")
	require.NoError(t, err)

	var endpoints []dashboard.Endpoint
	require.NoError(t, json.Unmarshal([]byte(out), &endpoints))
	require.Len(t, endpoints, 4)
	for _, ep := range endpoints {
		assert.Equal(t, "Admins", ep.Controller)
	}
}

func TestEndpointsTable(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "", "endpoints", "--controller", "Admins")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Regexp(t, `^CONTROLLER\s+OPERATION\s+METHOD\s+PATH\s+BODY$`, lines[0])
	assert.Contains(t, out, "CreateOrganizationAdmin (required)")
}

func TestModels(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "", "models", "UpdateDeviceSwitchPort")
	require.NoError(t, err)
	assert.Regexp(t, `AllowedVLANs\s+allowedVlans\s+\*string\s+false`, out)

	out, _, err = runCLI(t, "", "models", "-o", "yaml")
	require.NoError(t, err)

	var kinds []string
	require.NoError(t, yaml.Unmarshal([]byte(out), &kinds))
	assert.Contains(t, kinds, "SwitchPort")

	_, _, err = runCLI(t, "", "models", "NoSuchModel")
	require.Error(t, err)
}

func TestOrgs(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/organizations", testAPIKey,
		testdata.LoadFixture(t, "organizations/list_success.json"), http.StatusOK)
	defer server.Close()

	out, _, err := runCLI(t, "", "orgs", "--api-key", testAPIKey, "--base-url", server.URL)
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^ID\s+NAME\s+URL$`, out)
	assert.Contains(t, out, testOrgID)
}

func TestInsecureSkipVerify(t *testing.T) {
	t.Parallel()

	server := httptest.NewTLSServer(jsonHandler(t, http.StatusOK, testdata.LoadFixture(t, "organizations/list_success.json")))
	defer server.Close()

	_, _, err := runCLI(t, "", "orgs", "--api-key", testAPIKey, "--base-url", server.URL)
	require.Error(t, err, "self-signed certificate must be rejected by default")

	out, _, err := runCLI(t, "", "orgs", "--api-key", testAPIKey, "--base-url", server.URL, "--insecure-skip-verify")
	require.NoError(t, err)
	assert.Contains(t, out, "DevNet Sandbox")
}

func TestAPIKeyRequired(t *testing.T) {
	t.Parallel()

	_, errOut, err := runCLI(t, "", "orgs", "--base-url", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
	assert.Contains(t, errOut, "API key is required")
}

func TestRequiredFlags(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"networks"},
		{"devices"},
		{"devices", "statuses"},
		{"overview"},
		{"audit"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			t.Parallel()

			_, _, err := runCLI(t, "", append(args, "--api-key", testAPIKey)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "required flag")
		})
	}
}

func TestUnsupportedOutput(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, "", "endpoints", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output")
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/organizations/"+testOrgID+"/networks", testAPIKey,
		testdata.LoadFixture(t, "networks/list_success.json"), http.StatusOK)
	defer server.Close()

	config := writeConfig(t, "api-key: "+testAPIKey+"\nbase-url: "+server.URL+"\noutput: json\n")

	var out bytes.Buffer
	cmd := NewRootCmd(&out, &bytes.Buffer{})
	cmd.SetArgs([]string{"--config", config, "networks", "--org", testOrgID})
	require.NoError(t, cmd.Execute())

	var networks []dashboard.Network
	require.NoError(t, json.Unmarshal(out.Bytes(), &networks))
	assert.Len(t, networks, 3)
}

func TestMissingConfigFile(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "version"})
	require.Error(t, cmd.Execute())
}

func TestEnvironment(t *testing.T) {
	server := testutil.NewMockServer(t, "/organizations", testAPIKey,
		testdata.LoadFixture(t, "organizations/list_success.json"), http.StatusOK)
	defer server.Close()

	t.Setenv("MERAKI_API_KEY", testAPIKey)
	t.Setenv("MERAKI_BASE_URL", server.URL)

	out, _, err := runCLI(t, "", "orgs", "-o", "json")
	require.NoError(t, err)

	var orgs []dashboard.Organization
	require.NoError(t, json.Unmarshal([]byte(out), &orgs))
	require.Len(t, orgs, 2)
	assert.Equal(t, testOrgID, orgs[0].ID)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	server := testutil.NewMockServer(t, "/organizations", testAPIKey, `[]`, http.StatusOK)
	defer server.Close()

	t.Setenv("MERAKI_API_KEY", "from-env")
	t.Setenv("MERAKI_BASE_URL", "http://127.0.0.1:1")

	_, _, err := runCLI(t, "", "orgs", "--api-key", testAPIKey, "--base-url", server.URL)
	require.NoError(t, err)
}

func TestDeviceStatuses(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/organizations/"+testOrgID+"/deviceStatuses", testAPIKey,
		testdata.LoadFixture(t, "organizations/device_statuses.json"), http.StatusOK)
	defer server.Close()

	out, _, err := runCLI(t, "", "devices", "statuses", "--org", testOrgID, "--network", "N_2222",
		"--api-key", testAPIKey, "--base-url", server.URL)
	require.NoError(t, err)

	assert.Contains(t, out, "Branch MX")
	assert.Contains(t, out, "Spare AP")
	assert.NotContains(t, out, "HQ MX")
	assert.Regexp(t, `(?m)^\s+online\s+1\s*$`, out)
	assert.Regexp(t, `(?m)^\s+dormant\s+1\s*$`, out)
}

func TestCall(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/organizations/"+testOrgID+"/admins", testAPIKey,
		testdata.LoadFixture(t, "admins/list_success.json"), http.StatusOK)
	defer server.Close()

	out, _, err := runCLI(t, "", "call", "getOrganizationAdmins", "-p", "organizationId="+testOrgID,
		"--api-key", testAPIKey, "--base-url", server.URL, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Miles Meraki")
}

func TestCallWithBodyFromStdin(t *testing.T) {
	t.Parallel()

	server, recorder := testutil.NewRecordingServer(t, http.StatusOK, testdata.LoadFixture(t, "devices/switch_port.json"))
	defer server.Close()

	out, _, err := runCLI(t, `{"allowed_vlans":"1,3,5"}`,
		"call", "updateDeviceSwitchPort", "-p", "serial=Q234-ABCD-0001", "-p", "number=3", "--body", "-",
		"--api-key", testAPIKey, "--base-url", server.URL)
	require.NoError(t, err)

	req := recorder.Last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/devices/Q234-ABCD-0001/switchPorts/3", req.Path)
	assert.JSONEq(t, `{"allowedVlans":"1,3,5"}`, string(req.Body))
	assert.Contains(t, out, `"rstpEnabled": true`)
}

func TestCallCheckFields(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/devices/Q234-ABCD-0001/switchPorts/3", testAPIKey,
		`{"number":3,"poeBudget":30}`, http.StatusOK)
	defer server.Close()

	_, errOut, err := runCLI(t, "", "call", "getDeviceSwitchPort", "-p", "serial=Q234-ABCD-0001", "-p", "number=3",
		"--check-fields", "--api-key", testAPIKey, "--base-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, errOut, "response field not in model")
	assert.Contains(t, errOut, "poeBudget")
}

func TestCallValidation(t *testing.T) {
	t.Parallel()

	server, recorder := testutil.NewRecordingServer(t, http.StatusOK, `{}`)
	defer server.Close()

	_, _, err := runCLI(t, "", "call", "getNetwork", "--api-key", testAPIKey, "--base-url", server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "The parameter `networkId` is a required parameter and cannot be null.")
	assert.Zero(t, recorder.Count())
}

func TestOverview(t *testing.T) {
	t.Parallel()

	orgPath := "/organizations/" + testOrgID
	server := testutil.NewMockServerMulti(t, map[string]http.HandlerFunc{
		orgPath + "/networks":              jsonHandler(t, http.StatusOK, testdata.LoadFixture(t, "networks/list_success.json")),
		orgPath + "/deviceStatuses":        jsonHandler(t, http.StatusOK, testdata.LoadFixture(t, "organizations/device_statuses.json")),
		orgPath + "/uplinksLossAndLatency": jsonHandler(t, http.StatusOK, testdata.LoadFixture(t, "organizations/uplinks_loss_latency.json")),
		"/networks/N_1111/siteToSiteVpn":   jsonHandler(t, http.StatusOK, `{"mode":"hub"}`),
		"/networks/N_2222/siteToSiteVpn":   jsonHandler(t, http.StatusOK, testdata.LoadFixture(t, "networks/site_to_site_vpn_spoke.json")),
	})
	defer server.Close()

	out, _, err := runCLI(t, "", "overview", "--org", testOrgID, "--exclude", "Lab",
		"--api-key", testAPIKey, "--base-url", server.URL)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Regexp(t, `^NETWORK\s+VPN\s+UPLINKS\s+ONLINE\s+OFFLINE\s+ALERTING\s+DORMANT$`, lines[0])
	assert.Regexp(t, regexp.MustCompile(`^Headquarters\s+hub\s+wan1 0\.0% loss 21\.3ms\s+1\s+1\s+1\s+0$`), lines[1])
	assert.Regexp(t, regexp.MustCompile(`^Branch\s+spoke\s+wan1 2\.5% loss 48\.0ms\s+1\s+0\s+0\s+1$`), lines[2])
	assert.Regexp(t, regexp.MustCompile(`^TOTAL\s+2\s+1\s+1\s+1$`), lines[3])
}

func TestAudit(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "", "audit", "--spec", filepath.Join("..", "audit", "testdata", "openapi.yaml"), "-o", "json")
	require.Error(t, err, "the sample document lacks most catalogued operations")
	assert.Contains(t, err.Error(), "differ from the document")

	var findings []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &findings))
	assert.NotEmpty(t, findings)

	kinds := map[string]bool{}
	for _, f := range findings {
		kinds[f["kind"]] = true
	}
	assert.True(t, kinds["missing-path"])
	assert.True(t, kinds["operation-id-mismatch"])
}

func TestParseQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pairs   []string
		want    string
		wantErr bool
	}{
		{name: "none", pairs: nil, want: ""},
		{name: "repeated", pairs: []string{"timespan=3600", "perPage=10", "perPage=20"}, want: "perPage=10&perPage=20&timespan=3600"},
		{name: "empty value", pairs: []string{"startingAfter="}, want: "startingAfter="},
		{name: "missing equals", pairs: []string{"timespan"}, wantErr: true},
		{name: "missing name", pairs: []string{"=3600"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseQuery(tt.pairs)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Encode())
		})
	}
}

func TestReadBody(t *testing.T) {
	t.Parallel()

	body, err := readBody(strings.NewReader(""), "")
	require.NoError(t, err)
	assert.Nil(t, body)

	body, err = readBody(strings.NewReader(`{"name":"Guest"}`), "-")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Guest"}`, string(body))

	_, err = readBody(strings.NewReader(`{"name":`), "-")
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"enabled":true}`), 0o600))
	body, err = readBody(nil, path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"enabled":true}`, string(body))

	_, err = readBody(nil, filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
