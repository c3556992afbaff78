package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/fivetwenty-io/brigade-client/internal/http"
	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
)

// ProjectsClient implements brigade.ProjectsClient.
type ProjectsClient struct {
	resources *ResourceClient[brigade.Project]
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		resources: NewResourceClient(httpClient, constants.CollectionProjects, "project", brigade.PrepareProject),
	}
}

// Get implements brigade.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, id string) (*brigade.Project, error) {
	return c.resources.Get(ctx, id)
}

// Create implements brigade.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, project *brigade.Project) (*brigade.Project, error) {
	return c.resources.Create(ctx, project)
}

// Update implements brigade.ProjectsClient.Update. The project is addressed by
// its metadata id.
func (c *ProjectsClient) Update(ctx context.Context, project *brigade.Project) (*brigade.Project, error) {
	if project == nil {
		return nil, fmt.Errorf("updating project: %w", brigade.ErrResourceRequired)
	}

	return c.resources.Update(ctx, project.Metadata.ID, project)
}

// Delete implements brigade.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, id string) error {
	return c.resources.Delete(ctx, id)
}

// List implements brigade.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, selector *brigade.ProjectsSelector, opts *brigade.ListOptions) (*brigade.ProjectList, error) {
	return c.resources.List(ctx, selector.ToValues(), opts)
}
