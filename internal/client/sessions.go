package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/fivetwenty-io/brigade-client/internal/http"
	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
)

// SessionsClient implements brigade.SessionsClient.
type SessionsClient struct {
	httpClient *http.Client
}

// NewSessionsClient creates a new sessions client.
func NewSessionsClient(httpClient *http.Client) *SessionsClient {
	return &SessionsClient{
		httpClient: httpClient,
	}
}

// CreateRootSession implements brigade.SessionsClient.CreateRootSession. The
// request authenticates with the root password only; any bearer token the
// transport holds is not sent.
func (c *SessionsClient) CreateRootSession(ctx context.Context, password string) (*brigade.Token, error) {
	if password == "" {
		return nil, fmt.Errorf("creating root session: %w", brigade.ErrPasswordRequired)
	}

	req := c.httpClient.NewRequest(http.MethodPost, constants.APIPathPrefix+constants.CollectionSessions, nil).
		WithQuery(brigade.QueryRoot, "true").
		WithBasicAuth(brigade.RootUsername, password)

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating root session: %w", err)
	}

	return decode[brigade.Token](resp, "session token")
}
