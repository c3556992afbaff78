package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
	"github.com/spf13/cobra"
)

// NewProjectsCommand creates the project command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects", "proj"},
		Short:   "Manage projects",
		Long:    "List, view, create, update, and delete Brigade projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsUpdateCommand())
	cmd.AddCommand(newProjectsDeleteCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		limit         int64
		continueToken string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		Long:    "List one page of projects",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			opts := brigade.NewListOptions().WithLimit(limit).WithContinue(continueToken)

			projects, err := client.Projects().List(ctx, nil, opts)
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			err = renderOutput(cmd.OutOrStdout(), projects, func(w io.Writer) error {
				rows := make([][]string, 0, len(projects.Items))
				for _, project := range projects.Items {
					rows = append(rows, []string{
						project.Metadata.ID,
						truncate(project.Description, constants.DescriptionDisplayLength),
						formatTime(project.Metadata.Created),
					})
				}

				return renderTable(w, []string{"ID", "Description", "Created"}, rows)
			})
			if err != nil {
				return err
			}

			printContinueHint(cmd.ErrOrStderr(), "projects", projects.Metadata.Continue)

			return nil
		},
	}

	cmd.Flags().Int64Var(&limit, "limit", constants.DefaultPageSize, "maximum number of projects to return")
	cmd.Flags().StringVar(&continueToken, "continue", "", "continue token from a previous page")

	return cmd
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Get project details",
		Long:  "Display detailed information about a specific project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			project, err := client.Projects().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), project, func(w io.Writer) error {
				return renderProjectTable(w, project)
			})
		},
	}
}

func renderProjectTable(w io.Writer, project *brigade.Project) error {
	namespace := constants.NotAvailable
	if project.Kubernetes != nil {
		namespace = project.Kubernetes.Namespace
	}

	return renderTable(w, []string{"Property", "Value"}, [][]string{
		{"ID", project.Metadata.ID},
		{"Description", formatValue(project.Description)},
		{"Created", formatTime(project.Metadata.Created)},
		{"Namespace", namespace},
		{"Event Subscriptions", strconv.Itoa(len(project.Spec.EventSubscriptions))},
		{"Log Level", formatValue(string(project.Spec.WorkerTemplate.LogLevel))},
	})
}

func newProjectsCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Long:  "Create a project from a YAML or JSON manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadProjectManifest(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			created, err := client.Projects().Create(ctx, project)
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			_, _ = okLabel.Fprintf(cmd.ErrOrStderr(), "Created project %q\n", created.Metadata.ID)

			return renderOutput(cmd.OutOrStdout(), created, func(w io.Writer) error {
				return renderProjectTable(w, created)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "project manifest, or - for stdin")

	return cmd
}

func newProjectsUpdateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a project",
		Long:  "Replace a project with the contents of a YAML or JSON manifest; the manifest's metadata.id selects the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadProjectManifest(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			updated, err := client.Projects().Update(ctx, project)
			if err != nil {
				return fmt.Errorf("failed to update project: %w", err)
			}

			_, _ = okLabel.Fprintf(cmd.ErrOrStderr(), "Updated project %q\n", updated.Metadata.ID)

			return renderOutput(cmd.OutOrStdout(), updated, func(w io.Writer) error {
				return renderProjectTable(w, updated)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "project manifest, or - for stdin")

	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Long:  "Delete a project and all of its events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			err = client.Projects().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete project: %w", err)
			}

			_, _ = okLabel.Fprintf(cmd.OutOrStdout(), "Deleted project %q\n", args[0])

			return nil
		},
	}
}
