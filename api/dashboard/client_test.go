package dashboard

import (
	"context"
	"crypto/tls"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-meraki/internal/testutil"
)

// Test constants.
const (
	testAPIKey    = "test-api-key"
	testOrgID     = "2930418"
	testNetworkID = "N_1111"
	testSerial    = "Q234-ABCD-0001"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := NewWithConfig(&ClientConfig{
		APIKey:  testAPIKey,
		BaseURL: baseURL,
	})
	require.NoError(t, err)

	return client
}

func TestNew(t *testing.T) {
	t.Parallel()

	client, err := New(testAPIKey)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
}

func TestNewWithConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      *ClientConfig
		wantErr     bool
		wantBaseURL string
	}{
		{
			name:        "minimal config",
			config:      &ClientConfig{APIKey: testAPIKey},
			wantBaseURL: DefaultBaseURL,
		},
		{
			name:        "custom base URL with trailing slash",
			config:      &ClientConfig{APIKey: testAPIKey, BaseURL: "https://n149.meraki.com/api/v0/"},
			wantBaseURL: "https://n149.meraki.com/api/v0",
		},
		{
			name:    "nil config",
			config:  nil,
			wantErr: true,
		},
		{
			name:    "empty API key",
			config:  &ClientConfig{APIKey: ""},
			wantErr: true,
		},
		{
			name:    "base URL without scheme",
			config:  &ClientConfig{APIKey: testAPIKey, BaseURL: "api.meraki.com/api/v0"},
			wantErr: true,
		},
		{
			name:    "base URL with unsupported scheme",
			config:  &ClientConfig{APIKey: testAPIKey, BaseURL: "ftp://api.meraki.com"},
			wantErr: true,
		},
		{
			name: "all options",
			config: &ClientConfig{
				APIKey:             testAPIKey,
				BaseURL:            "https://api.meraki.com/api/v0",
				HTTPClient:         &http.Client{},
				Timeout:            10 * time.Second,
				TLSConfig:          &tls.Config{MinVersion: tls.VersionTLS12},
				RateLimitPerSecond: 5,
			},
			wantBaseURL: "https://api.meraki.com/api/v0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := NewWithConfig(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, client)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBaseURL, client.BaseURL())
		})
	}
}

func TestNewWithConfigDoesNotMutateHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	_, err := NewWithConfig(&ClientConfig{APIKey: testAPIKey, HTTPClient: custom, Timeout: time.Second})
	require.NoError(t, err)

	assert.Nil(t, custom.Transport, "caller's transport must stay untouched")
	assert.Zero(t, custom.Timeout, "caller's timeout must stay untouched")
}

func TestConfigIsCopied(t *testing.T) {
	t.Parallel()

	server, recorder := testutil.NewRecordingServer(t, http.StatusOK, `[]`)
	defer server.Close()

	cfg := &ClientConfig{APIKey: testAPIKey, BaseURL: server.URL}
	client, err := NewWithConfig(cfg)
	require.NoError(t, err)

	cfg.APIKey = "changed"
	cfg.BaseURL = "https://elsewhere.invalid"

	_, err = client.GetOrganizations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAPIKey, recorder.Last(t).Header.Get(APIKeyHeader))
}

func TestRateLimitedClient(t *testing.T) {
	t.Parallel()

	server, recorder := testutil.NewRecordingServer(t, http.StatusOK, `[]`)
	defer server.Close()

	client, err := NewWithConfig(&ClientConfig{
		APIKey:             testAPIKey,
		BaseURL:            server.URL,
		RateLimitPerSecond: 5,
	})
	require.NoError(t, err)

	for range 3 {
		_, err := client.GetOrganizationAdmins(context.Background(), testOrgID)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, recorder.Count())
}
