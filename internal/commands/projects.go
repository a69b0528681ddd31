package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/inayah-hub/DASHBOARDS/internal/client"
	"github.com/inayah-hub/DASHBOARDS/internal/dashboard"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := opts.api.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects yet. Add one with \"kpictl add\".")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderProjects(projects))
			fmt.Fprintf(cmd.OutOrStdout(), "%d Total\n", len(projects))
			return nil
		},
	}
}

func newAddCmd(opts *options) *cobra.Command {
	var in client.CreateProjectRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Media != "" && !dashboard.KnownMedia(in.Media) {
				color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "warning: %q is not a standard media type\n", in.Media)
			}

			p, err := opts.api.Projects.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Created project #%d (%s, %s)\n", p.ID, p.ClientName, p.ProjectNo)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.ClientName, "client", "", "client name")
	cmd.Flags().StringVar(&in.ProjectNo, "no", "", "project number, e.g. P-101")
	cmd.Flags().StringVar(&in.Media, "media", "", "media type (Video, Web, Social, Print, Other)")
	cmd.Flags().StringVar(&in.Status, "status", "", "initial status (defaults to In Progress)")

	return cmd
}

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a project's status",
		Example: `  kpictl status 3 Completed
  kpictl status 3 "On Hold"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status := args[1]
			if dashboard.StatusTone(status) == dashboard.ToneUnknown {
				color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "warning: %q is not a standard status\n", status)
			}

			p, err := opts.api.Projects.Update(cmd.Context(), id, client.UpdateProjectRequest{Status: &status})
			if err != nil {
				if client.IsNotFound(err) {
					return fmt.Errorf("project #%d not found", id)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project #%d is now %s\n", p.ID, statusColor(p.Status).Sprint(p.Status))
			return nil
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.api.Projects.Delete(cmd.Context(), id); err != nil {
				return err
			}
			color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "Deleted project #%d\n", id)
			return nil
		},
	}
}

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show dashboard KPIs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := opts.api.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(dashboard.Summarize(projects)))
			return nil
		},
	}
}

func statusColor(status string) *color.Color {
	switch dashboard.StatusTone(status) {
	case dashboard.ToneCompleted:
		return color.New(color.FgGreen)
	case dashboard.ToneInProgress:
		return color.New(color.FgBlue)
	case dashboard.ToneOnHold:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Reset)
	}
}
