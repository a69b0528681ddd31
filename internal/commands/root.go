// Package commands implements kpictl, a terminal client for the dashboard API.
package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/inayah-hub/DASHBOARDS/internal/client"
)

const defaultAPIURL = "http://localhost:8080"

type options struct {
	apiURL string
	api    *client.Client
}

// NewRootCmd builds the kpictl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "kpictl",
		Short: "Manage KPI dashboard projects from the terminal",
		Long: `kpictl talks to the KPI dashboard API. It lists, adds, updates and
deletes projects and prints the dashboard summary.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.api = client.New(opts.apiURL, client.WithRateLimit(rate.Limit(10), 5))
		},
	}

	apiURL := os.Getenv("KPI_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api", apiURL, "dashboard API base URL (env KPI_API_URL)")

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newDeleteCmd(opts))
	rootCmd.AddCommand(newSummaryCmd(opts))

	return rootCmd
}

// Execute runs kpictl with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid project id %q", arg)
	}
	return id, nil
}
