// Package http is the transport shared by every resource client. It owns the
// underlying HTTP client and its TLS policy, injects credentials, encodes
// pagination, and turns non-2xx responses into *brigade.ResponseError.
package http

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// Logger interface for HTTP logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client sends requests to one platform API address with one credential.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
	insecure   bool
	rootCAs    []byte
}

// Option configures a Client.
type Option func(*Client)

// WithBearerToken sets the token sent as a bearer credential on every request.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify(insecure bool) Option {
	return func(c *Client) {
		c.insecure = insecure
	}
}

// WithRootCAs adds a PEM encoded CA bundle to the trusted roots.
func WithRootCAs(pem []byte) Option {
	return func(c *Client) {
		c.rootCAs = pem
	}
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates a transport for baseURL. It fails with an error wrapping
// brigade.ErrConfiguration when the address or the TLS settings are unusable.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	client := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	err := validateBaseURL(client.baseURL)
	if err != nil {
		return nil, err
	}

	transport, err := client.newTransport()
	if err != nil {
		return nil, err
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{Transport: transport}
	retryClient.Logger = nil
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if client.logger != nil && client.debug {
		retryClient.RequestLogHook = client.logRequest
		retryClient.ResponseLogHook = client.logResponse
	}

	client.httpClient = retryClient

	return client, nil
}

func validateBaseURL(baseURL string) error {
	if baseURL == "" {
		return fmt.Errorf("%w: %w", brigade.ErrConfiguration, brigade.ErrAPIAddressRequired)
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("%w: parsing API address: %w", brigade.ErrConfiguration, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: %w: %q", brigade.ErrConfiguration, brigade.ErrInvalidAPIAddress, baseURL)
	}

	return nil
}

func (c *Client) newTransport() (*http.Transport, error) {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	if c.insecure {
		tlsConfig.InsecureSkipVerify = true // #nosec G402 -- explicitly requested by the caller
	}

	if len(c.rootCAs) > 0 {
		pool, err := x509.SystemCertPool()
		if err != nil {
			pool = x509.NewCertPool()
		}

		if !pool.AppendCertsFromPEM(c.rootCAs) {
			return nil, fmt.Errorf("%w: %w", brigade.ErrConfiguration, brigade.ErrInvalidRootCAs)
		}

		tlsConfig.RootCAs = pool
	}

	transport := cleanhttp.DefaultPooledTransport()
	transport.TLSClientConfig = tlsConfig

	return transport, nil
}

// neverRetry hands every response and error straight back to the caller.
func neverRetry(ctx context.Context, _ *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, err
}

// BaseURL returns the normalized API address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HasToken reports whether requests carry a bearer credential.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// NewRequest starts a request. The bearer token, if any, is attached and the
// pagination options are encoded as the continue and limit query parameters.
// Nothing is sent until the request is passed to Do.
func (c *Client) NewRequest(method, path string, opts *brigade.ListOptions) *Request {
	req := &Request{
		Method:  method,
		Path:    path,
		Query:   opts.ToValues(),
		Headers: map[string]string{},
	}

	if c.token != "" {
		req.Headers[constants.HeaderAuthorization] = "Bearer " + c.token
	}

	return req
}

// Do sends req and reads the whole response. A non-2xx status is returned as
// a *brigade.ResponseError alongside the response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}

	if req.Body != nil {
		body, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if req.basicAuth != nil {
		httpReq.SetBasicAuth(req.basicAuth.username, req.basicAuth.password)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		return nil, fmt.Errorf("%w: %s %s: %w", brigade.ErrTransport, req.Method, req.Path, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", brigade.ErrTransport, err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, brigade.ParseResponseError(httpResp.StatusCode, body)
	}

	return resp, nil
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	parsed, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("building request URL: %w", err)
	}

	if len(query) > 0 {
		values := parsed.Query()
		for key, vals := range query {
			for _, val := range vals {
				values.Add(key, val)
			}
		}

		parsed.RawQuery = values.Encode()
	}

	return parsed.String(), nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	req := c.NewRequest(http.MethodGet, path, nil).WithValues(query)

	return c.Do(ctx, req)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	req := c.NewRequest(http.MethodPost, path, nil).WithJSONBody(body)

	return c.Do(ctx, req)
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	req := c.NewRequest(http.MethodPut, path, nil).WithJSONBody(body)

	return c.Do(ctx, req)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, c.NewRequest(http.MethodDelete, path, nil))
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, _ int) {
	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	fields := map[string]interface{}{
		"status": resp.StatusCode,
	}

	if resp.Request != nil {
		fields["method"] = resp.Request.Method
		fields["url"] = resp.Request.URL.String()
	}

	c.logger.Debug("HTTP Response", fields)
}
