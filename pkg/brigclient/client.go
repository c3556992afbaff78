package brigclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/brigade-client/internal/client"
	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
)

// New creates a new platform API client. The config is copied; the caller's
// value is never modified.
func New(config *brigade.Config) (brigade.Client, error) {
	normalized, err := normalizeConfig(config)
	if err != nil {
		return nil, err
	}

	// Use the internal client implementation
	apiClient, err := client.New(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a new client with an API address and bearer token.
func NewWithToken(address, token string) (brigade.Client, error) {
	return New(&brigade.Config{
		APIAddress: address,
		Token:      token,
	})
}

// CreateRootSession exchanges the root password for a session token. Any token
// already present in config is ignored for this call.
func CreateRootSession(ctx context.Context, config *brigade.Config, password string) (*brigade.Token, error) {
	normalized, err := normalizeConfig(config)
	if err != nil {
		return nil, err
	}

	normalized.Token = ""

	anonymous, err := client.New(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create session client: %w", err)
	}

	token, err := anonymous.Sessions().CreateRootSession(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("failed to create root session: %w", err)
	}

	return token, nil
}

// NewWithRootPassword creates a root session and returns a new client that
// authenticates with the resulting token.
func NewWithRootPassword(ctx context.Context, config *brigade.Config, password string) (brigade.Client, error) {
	token, err := CreateRootSession(ctx, config, password)
	if err != nil {
		return nil, err
	}

	authenticated := *config
	authenticated.Token = token.Value

	return New(&authenticated)
}

// NormalizeAddress trims a trailing slash and adds "https://" when address has
// no scheme.
func NormalizeAddress(address string) string {
	address = strings.TrimSuffix(strings.TrimSpace(address), "/")
	if address == "" {
		return ""
	}

	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "https://" + address
	}

	return address
}

func normalizeConfig(config *brigade.Config) (*brigade.Config, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: %w", brigade.ErrConfiguration, brigade.ErrConfigRequired)
	}

	if strings.TrimSpace(config.APIAddress) == "" {
		return nil, fmt.Errorf("%w: %w", brigade.ErrConfiguration, brigade.ErrAPIAddressRequired)
	}

	normalized := *config
	normalized.APIAddress = NormalizeAddress(config.APIAddress)

	return &normalized, nil
}
