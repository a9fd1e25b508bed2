package dashboard

import (
	"net/url"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		params   map[string]string
		want     string
		wantMiss string
	}{
		{
			name:     "organization admin",
			template: "/organizations/{organizationId}/admins/{id}",
			params:   map[string]string{"organizationId": "O1", "id": "A2"},
			want:     "/organizations/O1/admins/A2",
		},
		{
			name:     "placement is by name",
			template: "/networks/{networkId}/devices/{serial}",
			params:   map[string]string{"serial": "Q234-ABCD-5678", "networkId": "N_24329156"},
			want:     "/networks/N_24329156/devices/Q234-ABCD-5678",
		},
		{
			name:     "values are path escaped",
			template: "/networks/{networkId}/firewalledServices/{service}",
			params:   map[string]string{"networkId": "N_1", "service": "web/ui"},
			want:     "/networks/N_1/firewalledServices/web%2Fui",
		},
		{
			name:     "no placeholders",
			template: "/organizations",
			params:   nil,
			want:     "/organizations",
		},
		{
			name:     "extra parameters are ignored",
			template: "/organizations/{organizationId}",
			params:   map[string]string{"organizationId": "O1", "unused": "x"},
			want:     "/organizations/O1",
		},
		{
			name:     "missing parameter",
			template: "/organizations/{organizationId}/admins/{id}",
			params:   map[string]string{"organizationId": "O1"},
			wantMiss: "id",
		},
		{
			name:     "empty parameter",
			template: "/organizations/{organizationId}/admins/{id}",
			params:   map[string]string{"organizationId": "", "id": "A2"},
			wantMiss: "organizationId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExpandPath(tt.template, tt.params)
			if tt.wantMiss != "" {
				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, ValidationErrorCode, validationErr.ErrorCode)
				assert.Equal(t,
					"The parameter `"+tt.wantMiss+"` is a required parameter and cannot be null.",
					validationErr.ErrorMessage)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathParameters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"organizationId", "id"}, PathParameters("/organizations/{organizationId}/admins/{id}"))
	assert.Empty(t, PathParameters("/organizations"))
}

func TestCleanURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "already clean",
			raw:  "https://api.meraki.com/api/v0/organizations",
			want: "https://api.meraki.com/api/v0/organizations",
		},
		{
			name: "duplicate slashes collapsed",
			raw:  "https://api.meraki.com/api/v0//organizations///O1",
			want: "https://api.meraki.com/api/v0/organizations/O1",
		},
		{
			name: "http with port",
			raw:  "http://127.0.0.1:8080//networks",
			want: "http://127.0.0.1:8080/networks",
		},
		{
			name:    "no scheme",
			raw:     "api.meraki.com/api/v0",
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			raw:     "ftp://api.meraki.com/api/v0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := cleanURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddQuery(t *testing.T) {
	t.Parallel()

	query := url.Values{}
	require.NoError(t, addQuery(query, "timespan", Ptr(7200)))
	require.NoError(t, addQuery(query, "t0", Ptr("2019-01-31T18:46:13Z")))
	require.NoError(t, addQuery[string](query, "uplink", nil))

	assert.Equal(t, "7200", query.Get("timespan"))
	assert.Equal(t, "2019-01-31T18:46:13Z", query.Get("t0"))
	assert.False(t, query.Has("uplink"))
}
