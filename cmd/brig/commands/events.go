package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
	"github.com/spf13/cobra"
)

// DefaultEventSource is the source stamped on events created from the CLI.
const DefaultEventSource = "brigade.sh/cli"

// DefaultEventType is the type stamped on events created from the CLI.
const DefaultEventType = "exec"

// NewEventsCommand creates the event command group.
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"events"},
		Short:   "Manage events",
		Long:    "List, view, create, cancel, and delete Brigade events",
	}

	cmd.AddCommand(newEventsListCommand())
	cmd.AddCommand(newEventsGetCommand())
	cmd.AddCommand(newEventsCreateCommand())
	cmd.AddCommand(newEventsCancelCommand())
	cmd.AddCommand(newEventsCancelManyCommand())
	cmd.AddCommand(newEventsDeleteCommand())
	cmd.AddCommand(newEventsDeleteManyCommand())

	return cmd
}

// parseWorkerPhases converts phase names given on the command line. Each
// value may itself be a comma-separated list.
func parseWorkerPhases(values []string) ([]brigade.WorkerPhase, error) {
	phases := make([]brigade.WorkerPhase, 0, len(values))

	for _, value := range values {
		for _, name := range strings.Split(value, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}

			phase, err := brigade.ParseWorkerPhase(name)
			if err != nil {
				return nil, err
			}

			phases = append(phases, phase)
		}
	}

	return phases, nil
}

// terminalWorkerPhases returns the phases in which an event may be deleted.
func terminalWorkerPhases() []brigade.WorkerPhase {
	var phases []brigade.WorkerPhase

	for _, phase := range brigade.WorkerPhasesAll() {
		if phase.IsTerminal() {
			phases = append(phases, phase)
		}
	}

	return phases
}

func eventPhase(event brigade.Event) string {
	if event.Worker == nil || event.Worker.Status == nil || event.Worker.Status.Phase == "" {
		return constants.NotAvailable
	}

	return string(event.Worker.Status.Phase)
}

func eventID(event brigade.Event) string {
	if event.Metadata == nil {
		return constants.NotAvailable
	}

	return event.Metadata.ID
}

func eventCreated(event brigade.Event) string {
	if event.Metadata == nil {
		return constants.NotAvailable
	}

	return formatTime(event.Metadata.Created)
}

func renderEventsTable(w io.Writer, events []brigade.Event) error {
	rows := make([][]string, 0, len(events))
	for _, event := range events {
		rows = append(rows, []string{
			eventID(event),
			event.ProjectID,
			event.Source,
			event.Type,
			eventPhase(event),
			eventCreated(event),
		})
	}

	return renderTable(w, []string{"ID", "Project", "Source", "Type", "Phase", "Created"}, rows)
}

func newEventsListCommand() *cobra.Command {
	var (
		projectID     string
		phaseNames    []string
		limit         int64
		continueToken string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List events",
		Long:    "List one page of events, optionally filtered by project and worker phase",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			phases, err := parseWorkerPhases(phaseNames)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			selector := brigade.NewEventsSelector().WithProjectID(projectID).WithWorkerPhases(phases...)
			opts := brigade.NewListOptions().WithLimit(limit).WithContinue(continueToken)

			events, err := client.Events().List(ctx, selector, opts)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			err = renderOutput(cmd.OutOrStdout(), events, func(w io.Writer) error {
				return renderEventsTable(w, events.Items)
			})
			if err != nil {
				return err
			}

			printContinueHint(cmd.ErrOrStderr(), "events", events.Metadata.Continue)

			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "only list events for this project")
	cmd.Flags().StringSliceVar(&phaseNames, "phase", nil, "only list events whose worker is in one of these phases")
	cmd.Flags().Int64Var(&limit, "limit", constants.DefaultPageSize, "maximum number of events to return")
	cmd.Flags().StringVar(&continueToken, "continue", "", "continue token from a previous page")

	return cmd
}

func newEventsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EVENT_ID",
		Short: "Get event details",
		Long:  "Display detailed information about a specific event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			event, err := client.Events().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get event: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), event, func(w io.Writer) error {
				jobs := 0
				if event.Worker != nil {
					jobs = len(event.Worker.Jobs)
				}

				return renderTable(w, []string{"Property", "Value"}, [][]string{
					{"ID", eventID(*event)},
					{"Project", event.ProjectID},
					{"Source", event.Source},
					{"Type", event.Type},
					{"Title", formatValue(event.ShortTitle)},
					{"Phase", eventPhase(*event)},
					{"Jobs", strconv.Itoa(jobs)},
					{"Created", eventCreated(*event)},
				})
			})
		},
	}
}

func newEventsCreateCommand() *cobra.Command {
	var (
		projectID string
		source    string
		eventType string
		payload   string
		labels    map[string]string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		Long:  "Create an event for a project. One event is returned per subscribed project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID == "" {
				return constants.ErrProjectRequired
			}

			if source == "" {
				return constants.ErrSourceRequired
			}

			if eventType == "" {
				return constants.ErrTypeRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			event := brigade.NewEvent(projectID, source, eventType)
			event.Payload = payload

			if len(labels) > 0 {
				event.Labels = labels
			}

			events, err := client.Events().Create(ctx, &event)
			if err != nil {
				return fmt.Errorf("failed to create event: %w", err)
			}

			_, _ = okLabel.Fprintf(cmd.ErrOrStderr(), "Created %d event(s)\n", len(events.Items))

			return renderOutput(cmd.OutOrStdout(), events, func(w io.Writer) error {
				return renderEventsTable(w, events.Items)
			})
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "project to create the event for (required)")
	cmd.Flags().StringVarP(&source, "source", "s", DefaultEventSource, "event source")
	cmd.Flags().StringVar(&eventType, "type", DefaultEventType, "event type")
	cmd.Flags().StringVar(&payload, "payload", "", "event payload")
	cmd.Flags().StringToStringVarP(&labels, "label", "l", nil, "event labels as key=value pairs")

	return cmd
}

func newEventsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel EVENT_ID",
		Short: "Cancel an event",
		Long:  "Cancel a single event whose worker is pending or running",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			err = client.Events().Cancel(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel event: %w", err)
			}

			_, _ = okLabel.Fprintf(cmd.OutOrStdout(), "Canceled event %q\n", args[0])

			return nil
		},
	}
}

func newEventsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete EVENT_ID",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			err = client.Events().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete event: %w", err)
			}

			_, _ = okLabel.Fprintf(cmd.OutOrStdout(), "Deleted event %q\n", args[0])

			return nil
		},
	}
}

// bulkSelector builds the selector shared by cancel-many and delete-many.
// Both operations require a project; fallback is used when no phase is given.
func bulkSelector(projectID string, phaseNames []string, fallback []brigade.WorkerPhase) (*brigade.EventsSelector, error) {
	if projectID == "" {
		return nil, constants.ErrProjectRequired
	}

	phases, err := parseWorkerPhases(phaseNames)
	if err != nil {
		return nil, err
	}

	if len(phases) == 0 {
		phases = fallback
	}

	return brigade.NewEventsSelector().WithProjectID(projectID).WithWorkerPhases(phases...), nil
}

func newEventsCancelManyCommand() *cobra.Command {
	var (
		projectID  string
		phaseNames []string
	)

	cmd := &cobra.Command{
		Use:   "cancel-many",
		Short: "Cancel many events",
		Long:  "Cancel every event of a project whose worker is in one of the given phases (default PENDING)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, err := bulkSelector(projectID, phaseNames, []brigade.WorkerPhase{brigade.WorkerPhasePending})
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			result, err := client.Events().CancelMany(ctx, selector)
			if err != nil {
				return fmt.Errorf("failed to cancel events: %w", err)
			}

			_, _ = okLabel.Fprintf(cmd.OutOrStdout(), "Canceled %d event(s) in project %q\n", result.Count, projectID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "project whose events are canceled (required)")
	cmd.Flags().StringSliceVar(&phaseNames, "phase", nil, "worker phases to cancel")

	return cmd
}

func newEventsDeleteManyCommand() *cobra.Command {
	var (
		projectID  string
		phaseNames []string
	)

	cmd := &cobra.Command{
		Use:   "delete-many",
		Short: "Delete many events",
		Long:  "Delete every event of a project whose worker is in one of the given phases (default all terminal phases)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, err := bulkSelector(projectID, phaseNames, terminalWorkerPhases())
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			result, err := client.Events().DeleteMany(ctx, selector)
			if err != nil {
				return fmt.Errorf("failed to delete events: %w", err)
			}

			_, _ = okLabel.Fprintf(cmd.OutOrStdout(), "Deleted %d event(s) in project %q\n", result.Count, projectID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "project whose events are deleted (required)")
	cmd.Flags().StringSliceVar(&phaseNames, "phase", nil, "worker phases to delete")

	return cmd
}
