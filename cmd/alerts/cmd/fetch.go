package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/couchcryptid/nws-alerts-viewer/internal/adapter/nws"
	"github.com/couchcryptid/nws-alerts-viewer/internal/config"
	"github.com/couchcryptid/nws-alerts-viewer/internal/domain"
	"github.com/couchcryptid/nws-alerts-viewer/internal/observability"
	"github.com/couchcryptid/nws-alerts-viewer/internal/pipeline"
	"github.com/couchcryptid/nws-alerts-viewer/internal/presenter"
	"github.com/spf13/cobra"
)

var (
	fetchArea    string
	fetchCSVPath string
	fetchDetails bool
)

// errFetchFailed marks a run that ended in the error state. The message has
// already been printed.
var errFetchFailed = errors.New("fetch failed")

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch active alerts once and print them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := observability.NewLogger(cfg)
		metrics := observability.NewMetrics()
		client := nws.NewClient(cfg.NWSBaseURL, cfg.NWSUserAgent, cfg.NWSTimeout, metrics, logger)
		p := pipeline.New(client, nil, logger, metrics)

		return runFetch(cmd.Context(), p, cmd.OutOrStdout(), fetchArea, fetchCSVPath, fetchDetails)
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchArea, "area", "a", "", "2-letter state code (e.g. CA, TX, NY); blank for all states")
	fetchCmd.Flags().StringVar(&fetchCSVPath, "csv", "", "write the CSV export to this path ("+presenter.CSVFilename+" if a directory)")
	fetchCmd.Flags().BoolVar(&fetchDetails, "details", false, "print the full alert details")
	rootCmd.AddCommand(fetchCmd)
}

type runner interface {
	Run(ctx context.Context, input string) (domain.Result, error)
}

func runFetch(ctx context.Context, r runner, out io.Writer, area, csvPath string, details bool) error {
	result, err := r.Run(ctx, area)
	view := presenter.BuildView(area, result, err)

	if err := presenter.RenderText(out, view, details); err != nil {
		return err
	}
	if view.IsError() {
		return errFetchFailed
	}
	if view.State != presenter.StateAlerts || csvPath == "" {
		return nil
	}

	path := csvPath
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		path = filepath.Join(path, presenter.CSVFilename)
	}
	if err := os.WriteFile(path, view.CSV, 0o644); err != nil { //nolint:gosec // export is meant to be readable
		return fmt.Errorf("write csv: %w", err)
	}
	fmt.Fprintf(out, "Wrote %d alerts to %s\n", len(view.DetailRows), path)
	return nil
}
