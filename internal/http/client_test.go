package http_test

import (
	"context"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	brighttp "github.com/fivetwenty-io/brigade-client/internal/http"
	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func newClient(t *testing.T, baseURL string, opts ...brighttp.Option) *brighttp.Client {
	t.Helper()

	client, err := brighttp.NewClient(baseURL, opts...)
	require.NoError(t, err)

	return client
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/projects/italian", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "brigade-client/0.1.0", request.Header.Get("User-Agent"))
			assert.Empty(t, request.URL.RawQuery)

			response := map[string]interface{}{"kind": "Project", "metadata": map[string]string{"id": "italian"}}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := newClient(t, server.URL, brighttp.WithBearerToken("test-token"))

		req := client.NewRequest(http.MethodGet, "/v2/projects/italian", nil)

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]interface{}

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "Project", result["kind"])
	})

	t.Run("no token sends no authorization", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newClient(t, server.URL)
		assert.False(t, client.HasToken())

		_, err := client.Do(context.Background(), client.NewRequest(http.MethodGet, "/v2/projects", nil))
		require.NoError(t, err)
	})

	t.Run("request with pagination options", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/events", request.URL.Path)
			assert.Equal(t, "abc", request.URL.Query().Get("continue"))
			assert.Equal(t, "5", request.URL.Query().Get("limit"))
			assert.Equal(t, "italian", request.URL.Query().Get("projectID"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newClient(t, server.URL)

		opts := brigade.NewListOptions().WithContinue("abc").WithLimit(5)
		req := client.NewRequest(http.MethodGet, "/v2/events", opts).WithQuery("projectID", "italian")

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with query literal", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "limit=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newClient(t, server.URL)

		req := &brighttp.Request{
			Method: "GET",
			Path:   "/v2/projects",
			Query:  url.Values{"limit": []string{"2"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "brigade.sh/cli", body["source"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := newClient(t, server.URL)

		req := client.NewRequest(http.MethodPost, "/v2/events", nil).
			WithJSONBody(map[string]string{"source": "brigade.sh/cli"})

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":"not found"}`))
		}))
		defer server.Close()

		client := newClient(t, server.URL)

		resp, err := client.Get(context.Background(), "/v2/projects/missing", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 404, resp.StatusCode)

		errResp := &brigade.ResponseError{}
		ok := errors.As(err, &errResp)
		require.True(t, ok)
		assert.Equal(t, 404, errResp.StatusCode)
		assert.Equal(t, "not found", errResp.Message)
		assert.Equal(t, `{"error":"not found"}`, string(errResp.Body))
		assert.True(t, brigade.IsNotFound(err))
		assert.Equal(t, "404 Not Found: not found", err.Error())
	})

	t.Run("error response with plain text body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("upstream unavailable"))
		}))
		defer server.Close()

		client := newClient(t, server.URL)

		_, err := client.Get(context.Background(), "/v2/projects", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, brigade.StatusCode(err))
		assert.Contains(t, err.Error(), "upstream unavailable")
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "brig/test", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newClient(t, server.URL, brighttp.WithUserAgent("brig/test"))

		req := client.NewRequest(http.MethodGet, "/v2/projects", nil).WithHeader("X-Custom-Header", "custom-value")

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("basic auth replaces bearer token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			username, password, ok := request.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "root", username)
			assert.Equal(t, "secret", password)
			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := newClient(t, server.URL, brighttp.WithBearerToken("test-token"))

		req := client.NewRequest(http.MethodPost, "/v2/sessions", nil).WithBasicAuth("root", "secret")

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := newClient(t, server.URL, brighttp.WithLogger(logger), brighttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/v2/projects", nil)
		require.NoError(t, err)

		// Should have logged request and response
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("without debug nothing is logged", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := newClient(t, server.URL, brighttp.WithLogger(logger))

		_, err := client.Get(context.Background(), "/v2/projects", nil)
		require.NoError(t, err)
		assert.Empty(t, logger.logs)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*brighttp.Client, context.Context) (*brighttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *brighttp.Client, ctx context.Context) (*brighttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *brighttp.Client, ctx context.Context) (*brighttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *brighttp.Client, ctx context.Context) (*brighttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *brighttp.Client, ctx context.Context) (*brighttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := newClient(t, server.URL)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_NoRetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
	}{
		{name: "server error", status: http.StatusInternalServerError},
		{name: "rate limited", status: http.StatusTooManyRequests},
		{name: "client error", status: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				attempts.Add(1)
				writer.WriteHeader(testCase.status)
			}))
			defer server.Close()

			client := newClient(t, server.URL)

			resp, err := client.Get(context.Background(), "/test", nil)
			require.Error(t, err)
			assert.Equal(t, testCase.status, resp.StatusCode)
			assert.Equal(t, int32(1), attempts.Load())
		})
	}
}

func TestNewClient_Configuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		opts    []brighttp.Option
		wantErr error
	}{
		{name: "empty address", baseURL: "", wantErr: brigade.ErrAPIAddressRequired},
		{name: "missing scheme", baseURL: "brigade.example.com", wantErr: brigade.ErrInvalidAPIAddress},
		{name: "unsupported scheme", baseURL: "ftp://brigade.example.com", wantErr: brigade.ErrInvalidAPIAddress},
		{
			name:    "unparsable CA bundle",
			baseURL: "https://brigade.example.com",
			opts:    []brighttp.Option{brighttp.WithRootCAs([]byte("not a certificate"))},
			wantErr: brigade.ErrInvalidRootCAs,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client, err := brighttp.NewClient(testCase.baseURL, testCase.opts...)
			require.Error(t, err)
			assert.Nil(t, client)
			require.ErrorIs(t, err, brigade.ErrConfiguration)
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, "https://brigade.example.com/")
		assert.Equal(t, "https://brigade.example.com", client.BaseURL())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_TLS(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	t.Run("self-signed certificate is rejected", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewTLSServer(handler)
		defer server.Close()

		client := newClient(t, server.URL)

		_, err := client.Get(context.Background(), "/v2/projects", nil)
		require.Error(t, err)
		require.ErrorIs(t, err, brigade.ErrTransport)
		assert.Equal(t, 0, brigade.StatusCode(err))
	})

	t.Run("insecure skips verification", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewTLSServer(handler)
		defer server.Close()

		client := newClient(t, server.URL, brighttp.WithInsecureSkipVerify(true))

		resp, err := client.Get(context.Background(), "/v2/projects", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("custom root CA is trusted", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewTLSServer(handler)
		defer server.Close()

		caPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: server.Certificate().Raw})
		client := newClient(t, server.URL, brighttp.WithRootCAs(caPEM))

		resp, err := client.Get(context.Background(), "/v2/projects", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}

func TestClient_TransportErrors(t *testing.T) {
	t.Parallel()

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		baseURL := server.URL
		server.Close()

		client := newClient(t, baseURL)

		resp, err := client.Get(context.Background(), "/v2/projects", nil)
		require.ErrorIs(t, err, brigade.ErrTransport)
		assert.Nil(t, resp)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newClient(t, server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Get(ctx, "/v2/projects", nil)
		require.ErrorIs(t, err, brigade.ErrTransport)
		require.ErrorIs(t, err, context.Canceled)
	})
}
