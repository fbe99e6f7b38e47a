package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultHTTPClient(t *testing.T) {
	client := NewDefaultHTTPClient(5 * time.Second)
	assert.Equal(t, 5*time.Second, client.Timeout)
}

func TestNewOAuthHTTPClient_SendsBearerToken(t *testing.T) {
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewOAuthHTTPClient(context.Background(), " token-123 ", 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, client.Timeout)

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Bearer token-123", authHeader)
}

func TestNewOAuthHTTPClient_RequiresToken(t *testing.T) {
	client, err := NewOAuthHTTPClient(context.Background(), "  ", time.Second)
	assert.Error(t, err)
	assert.Nil(t, client)
}
