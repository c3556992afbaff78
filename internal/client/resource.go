package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/fivetwenty-io/brigade-client/internal/http"
	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
)

// ResourceClient provides the generic operations shared by every resource
// collection. Values are passed through prepare before being sent; prepare
// receives a copy, so the caller's value is never modified.
type ResourceClient[T any] struct {
	httpClient *http.Client
	collection string
	kind       string
	prepare    func(T) T
}

// NewResourceClient creates a new generic resource client for collection.
// kind names a single resource in error messages.
func NewResourceClient[T any](httpClient *http.Client, collection, kind string, prepare func(T) T) *ResourceClient[T] {
	if prepare == nil {
		prepare = func(resource T) T { return resource }
	}

	return &ResourceClient[T]{
		httpClient: httpClient,
		collection: collection,
		kind:       kind,
		prepare:    prepare,
	}
}

// CollectionPath returns the path of the collection, e.g. /v2/projects.
func (c *ResourceClient[T]) CollectionPath() string {
	return constants.APIPathPrefix + c.collection
}

// ItemPath returns the path of a single resource in the collection.
func (c *ResourceClient[T]) ItemPath(id string) string {
	return c.CollectionPath() + "/" + url.PathEscape(id)
}

// Get retrieves a resource by id.
func (c *ResourceClient[T]) Get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("getting %s: %w", c.kind, brigade.ErrIDRequired)
	}

	resp, err := c.httpClient.Get(ctx, c.ItemPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s %q: %w", c.kind, id, err)
	}

	return decode[T](resp, c.kind)
}

// Create submits a new resource and returns the resource the server stored.
func (c *ResourceClient[T]) Create(ctx context.Context, resource *T) (*T, error) {
	if resource == nil {
		return nil, fmt.Errorf("creating %s: %w", c.kind, brigade.ErrResourceRequired)
	}

	resp, err := c.httpClient.Post(ctx, c.CollectionPath(), c.prepare(*resource))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.kind, err)
	}

	return decode[T](resp, c.kind)
}

// Update replaces the resource stored under id.
func (c *ResourceClient[T]) Update(ctx context.Context, id string, resource *T) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("updating %s: %w", c.kind, brigade.ErrIDRequired)
	}

	if resource == nil {
		return nil, fmt.Errorf("updating %s: %w", c.kind, brigade.ErrResourceRequired)
	}

	resp, err := c.httpClient.Put(ctx, c.ItemPath(id), c.prepare(*resource))
	if err != nil {
		return nil, fmt.Errorf("updating %s %q: %w", c.kind, id, err)
	}

	return decode[T](resp, c.kind)
}

// Delete removes a resource. Any 2xx response is success; its body is ignored.
func (c *ResourceClient[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("deleting %s: %w", c.kind, brigade.ErrIDRequired)
	}

	_, err := c.httpClient.Delete(ctx, c.ItemPath(id))
	if err != nil {
		return fmt.Errorf("deleting %s %q: %w", c.kind, id, err)
	}

	return nil
}

// List retrieves one page of the collection. query carries selector
// parameters; opts carries the continue token and page size.
func (c *ResourceClient[T]) List(ctx context.Context, query url.Values, opts *brigade.ListOptions) (*brigade.List[T], error) {
	req := c.httpClient.NewRequest(http.MethodGet, c.CollectionPath(), opts).WithValues(query)

	return c.ListRequest(ctx, req)
}

// ListRequest sends a prepared request and decodes the response as a page of
// the collection.
func (c *ResourceClient[T]) ListRequest(ctx context.Context, req *http.Request) (*brigade.List[T], error) {
	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", c.kind, err)
	}

	return decode[brigade.List[T]](resp, c.kind+" list")
}

// decode parses a successful response body.
func decode[R any](resp *http.Response, what string) (*R, error) {
	var result R

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s response: %w", brigade.ErrDecode, what, err)
	}

	return &result, nil
}
