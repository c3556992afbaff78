package brigade

import "context"

// ProjectsClient manages projects.
type ProjectsClient interface {
	Get(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, project *Project) (*Project, error)
	Update(ctx context.Context, project *Project) (*Project, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, selector *ProjectsSelector, opts *ListOptions) (*ProjectList, error)
}

// EventsClient manages events.
type EventsClient interface {
	Get(ctx context.Context, id string) (*Event, error)
	// Create returns one event per project subscribed to the submitted event.
	Create(ctx context.Context, event *Event) (*EventList, error)
	List(ctx context.Context, selector *EventsSelector, opts *ListOptions) (*EventList, error)
	Cancel(ctx context.Context, id string) error
	CancelMany(ctx context.Context, selector *EventsSelector) (*CancelManyEventsResult, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, selector *EventsSelector) (*DeleteManyEventsResult, error)
}

// SessionsClient bootstraps credentials.
type SessionsClient interface {
	CreateRootSession(ctx context.Context, password string) (*Token, error)
}

// Client provides access to all resource clients over one set of credentials.
type Client interface {
	Projects() ProjectsClient
	Events() EventsClient
	Sessions() SessionsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a brigade.Client.
//
// A Config describes exactly one credential. To switch tokens, build a new
// client from a new Config; clients never share or mutate a "current" token.
type Config struct {
	// APIAddress: base URL of the platform API (e.g., "https://brigade.example.com").
	// brigclient.New trims a trailing slash and adds "https://" if no scheme is present.
	APIAddress string

	// Token: bearer token sent with every request. Leave empty to talk to the
	// API anonymously, e.g. to create a root session.
	Token string

	// AllowInsecureConnections: disables TLS certificate verification. Intended
	// for local development against self-signed certificates only.
	AllowInsecureConnections bool
	// RootCAs: optional PEM bundle trusted in addition to the system pool.
	RootCAs []byte

	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
