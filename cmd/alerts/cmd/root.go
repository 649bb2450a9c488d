// Package cmd contains the CLI commands for the alerts tool.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Browse active National Weather Service alerts",
	Long: `alerts fetches the currently active weather alerts from the National
Weather Service API and prints them as a table.

Configuration comes from the same environment variables as the viewer
(NWS_BASE_URL, NWS_USER_AGENT, NWS_TIMEOUT, LOG_LEVEL, LOG_FORMAT).

Examples:
  # All active alerts
  alerts fetch

  # Alerts for California, with the full detail table
  alerts fetch --area ca --details

  # Save the CSV export
  alerts fetch --area TX --csv nws_alerts.csv`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command. It is called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}
