package response

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAdmin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func TestIsSuccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		statusCode int
		want       bool
	}{
		{statusCode: 199, want: false},
		{statusCode: http.StatusOK, want: true},
		{statusCode: http.StatusCreated, want: true},
		{statusCode: http.StatusAccepted, want: true},
		{statusCode: http.StatusNoContent, want: true},
		{statusCode: http.StatusPartialContent, want: true},
		{statusCode: 207, want: false},
		{statusCode: http.StatusFound, want: false},
		{statusCode: http.StatusBadRequest, want: false},
		{statusCode: http.StatusTooManyRequests, want: false},
		{statusCode: http.StatusInternalServerError, want: false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.statusCode), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsSuccess(tt.statusCode), "status %d", tt.statusCode)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, Validate(http.StatusOK, http.Header{}, []byte(`{}`)))
	})

	t.Run("dashboard errors array", func(t *testing.T) {
		t.Parallel()

		failure := Validate(http.StatusBadRequest, http.Header{},
			[]byte(`{"errors":["Name can't be blank","Email is invalid"]}`))
		require.NotNil(t, failure)
		assert.Equal(t, http.StatusBadRequest, failure.StatusCode)
		assert.Equal(t, []string{"Name can't be blank", "Email is invalid"}, failure.Errors)
		assert.Equal(t, "Name can't be blank; Email is invalid", failure.Message)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		failure := Validate(http.StatusNotFound, http.Header{}, nil)
		require.NotNil(t, failure)
		assert.Equal(t, DefaultErrorMessage, failure.Message)
		assert.Empty(t, failure.Errors)
	})

	t.Run("html body", func(t *testing.T) {
		t.Parallel()

		failure := Validate(http.StatusBadGateway, http.Header{}, []byte(`<html>Bad Gateway</html>`))
		require.NotNil(t, failure)
		assert.Equal(t, DefaultErrorMessage, failure.Message)
	})

	t.Run("rate limited", func(t *testing.T) {
		t.Parallel()

		header := http.Header{}
		header.Set("Retry-After", "2")

		failure := Validate(http.StatusTooManyRequests, header, []byte(`{"errors":["API rate limit exceeded for organization"]}`))
		require.NotNil(t, failure)
		assert.Equal(t, 2*time.Second, failure.RetryAfter)
	})
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{name: "empty", header: "", want: 0},
		{name: "seconds", header: "120", want: 120 * time.Second},
		{name: "one second", header: "1", want: time.Second},
		{name: "negative", header: "-5", want: 0},
		{name: "http date unsupported", header: "Wed, 21 Oct 2015 07:28:00 GMT", want: 0},
		{name: "garbage", header: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseRetryAfter(tt.header))
		})
	}
}

func TestCheckBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "document", status: http.StatusOK, body: `{"id":"2930418"}`},
		{name: "empty 200", status: http.StatusOK, body: "", wantErr: true},
		{name: "whitespace 201", status: http.StatusCreated, body: " \n", wantErr: true},
		{name: "empty 204", status: http.StatusNoContent, body: ""},
		{name: "empty 205", status: http.StatusResetContent, body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckBody(tt.status, []byte(tt.body))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrEmptyBody)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("object", func(t *testing.T) {
		t.Parallel()

		admin, err := Decode[*testAdmin]([]byte(`{"id":"A2","email":"miles@meraki.com"}`))
		require.NoError(t, err)
		require.NotNil(t, admin)
		assert.Equal(t, "A2", admin.ID)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		admins, err := Decode[[]testAdmin]([]byte(`[{"id":"A1"},{"id":"A2"}]`))
		require.NoError(t, err)
		assert.Len(t, admins, 2)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		admin, err := Decode[*testAdmin]([]byte("  \n"))
		require.NoError(t, err)
		assert.Nil(t, admin)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		_, err := Decode[*testAdmin]([]byte(`{"id":`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode response body")
	})
}
