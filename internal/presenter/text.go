package presenter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// RenderText prints the status line and, for StateAlerts, the summary table.
// With details set the eleven-column table follows as one block per alert.
func RenderText(w io.Writer, v View, details bool) error {
	if _, err := fmt.Fprintln(w, v.Message); err != nil {
		return err
	}
	if v.State != StateAlerts {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(v.SummaryHeaders, "\t"))
	for _, row := range v.SummaryRows {
		fmt.Fprintln(tw, strings.Join(singleLine(row), "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !details {
		return nil
	}
	for i, row := range v.DetailRows {
		fmt.Fprintf(w, "\n[%d]\n", i+1)
		dw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for j, value := range row {
			fmt.Fprintf(dw, "%s:\t%s\n", v.DetailHeaders[j], value)
		}
		if err := dw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// singleLine collapses embedded newlines and tabs so table cells stay aligned.
func singleLine(values []string) []string {
	out := make([]string, len(values))
	for i, s := range values {
		out[i] = strings.Join(strings.Fields(s), " ")
	}
	return out
}
