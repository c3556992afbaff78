package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/fivetwenty-io/brigade-client/internal/http"
	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
)

// EventsClient implements brigade.EventsClient.
type EventsClient struct {
	httpClient *http.Client
	resources  *ResourceClient[brigade.Event]
}

// NewEventsClient creates a new events client.
func NewEventsClient(httpClient *http.Client) *EventsClient {
	return &EventsClient{
		httpClient: httpClient,
		resources:  NewResourceClient(httpClient, constants.CollectionEvents, "event", brigade.PrepareEvent),
	}
}

// Get implements brigade.EventsClient.Get.
func (c *EventsClient) Get(ctx context.Context, id string) (*brigade.Event, error) {
	return c.resources.Get(ctx, id)
}

// Create implements brigade.EventsClient.Create. The platform fans a submitted
// event out to every subscribed project, so the result is a list.
func (c *EventsClient) Create(ctx context.Context, event *brigade.Event) (*brigade.EventList, error) {
	if event == nil {
		return nil, fmt.Errorf("creating event: %w", brigade.ErrResourceRequired)
	}

	resp, err := c.httpClient.Post(ctx, c.resources.CollectionPath(), brigade.PrepareEvent(*event))
	if err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	return decode[brigade.EventList](resp, "event list")
}

// List implements brigade.EventsClient.List.
func (c *EventsClient) List(ctx context.Context, selector *brigade.EventsSelector, opts *brigade.ListOptions) (*brigade.EventList, error) {
	return c.resources.List(ctx, selector.ToValues(), opts)
}

// Cancel implements brigade.EventsClient.Cancel.
func (c *EventsClient) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("canceling event: %w", brigade.ErrIDRequired)
	}

	path := c.resources.ItemPath(id) + "/" + constants.SubresourceCancellation

	_, err := c.httpClient.Put(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("canceling event %q: %w", id, err)
	}

	return nil
}

// CancelMany implements brigade.EventsClient.CancelMany.
func (c *EventsClient) CancelMany(ctx context.Context, selector *brigade.EventsSelector) (*brigade.CancelManyEventsResult, error) {
	path := c.resources.CollectionPath() + "/" + constants.SubresourceCancellations
	req := c.httpClient.NewRequest(http.MethodPost, path, nil).WithValues(selector.ToValues())

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("canceling events: %w", err)
	}

	return decode[brigade.CancelManyEventsResult](resp, "event cancellation")
}

// Delete implements brigade.EventsClient.Delete.
func (c *EventsClient) Delete(ctx context.Context, id string) error {
	return c.resources.Delete(ctx, id)
}

// DeleteMany implements brigade.EventsClient.DeleteMany.
func (c *EventsClient) DeleteMany(ctx context.Context, selector *brigade.EventsSelector) (*brigade.DeleteManyEventsResult, error) {
	path := c.resources.CollectionPath() + "/" + constants.SubresourceDeletions
	req := c.httpClient.NewRequest(http.MethodPost, path, nil).WithValues(selector.ToValues())

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("deleting events: %w", err)
	}

	return decode[brigade.DeleteManyEventsResult](resp, "event deletion")
}
