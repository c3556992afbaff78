package client

import (
	"fmt"

	"github.com/fivetwenty-io/brigade-client/internal/http"
	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
)

// Client implements the brigade.Client interface.
type Client struct {
	httpClient *http.Client

	// Resource clients
	projects *ProjectsClient
	events   *EventsClient
	sessions *SessionsClient
}

// New creates a new platform API client from config. Each client holds exactly
// the credential in config; build another client to use another token.
func New(config *brigade.Config) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: %w", brigade.ErrConfiguration, brigade.ErrConfigRequired)
	}

	httpClient, err := http.NewClient(config.APIAddress, createHTTPClientOptions(config)...)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP client: %w", err)
	}

	return NewWithHTTPClient(httpClient), nil
}

// NewWithHTTPClient creates a client over an existing transport.
func NewWithHTTPClient(httpClient *http.Client) *Client {
	client := &Client{
		httpClient: httpClient,
	}

	client.initializeResourceClients()

	return client
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *brigade.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithBearerToken(config.Token),
		http.WithInsecureSkipVerify(config.AllowInsecureConnections),
	}

	if len(config.RootCAs) > 0 {
		httpOpts = append(httpOpts, http.WithRootCAs(config.RootCAs))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.events = NewEventsClient(c.httpClient)
	c.sessions = NewSessionsClient(c.httpClient)
}

// BaseURL returns the API address requests are sent to.
func (c *Client) BaseURL() string {
	return c.httpClient.BaseURL()
}

// Projects implements brigade.Client.Projects.
func (c *Client) Projects() brigade.ProjectsClient {
	return c.projects
}

// Events implements brigade.Client.Events.
func (c *Client) Events() brigade.EventsClient {
	return c.events
}

// Sessions implements brigade.Client.Sessions.
func (c *Client) Sessions() brigade.SessionsClient {
	return c.sessions
}

// loggerAdapter adapts brigade.Logger to http.Logger.
type loggerAdapter struct {
	logger brigade.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
