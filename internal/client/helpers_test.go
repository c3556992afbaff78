package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// newTestServer starts a server for handler and a client authenticated with
// testToken that talks to it.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&brigade.Config{APIAddress: server.URL, Token: testToken})
	require.NoError(t, err)

	return server, client
}

func writeJSON(t *testing.T, writer http.ResponseWriter, status int, body interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if body != nil {
		assert.NoError(t, json.NewEncoder(writer).Encode(body))
	}
}

func decodeBody(t *testing.T, request *http.Request) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}

	assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))

	return body
}
