package presenter

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/couchcryptid/nws-alerts-viewer/internal/domain"
)

// State is the terminal state of a single run.
type State int

const (
	StateError State = iota
	StateEmpty
	StateAlerts
)

func (s State) String() string {
	switch s {
	case StateError:
		return "error"
	case StateEmpty:
		return "empty"
	case StateAlerts:
		return "alerts"
	default:
		return "unknown"
	}
}

// EmptyMessage is shown when the API returns no alerts.
const EmptyMessage = "No active alerts found."

// View is everything a renderer needs for one run. Tables and CSV are only
// populated in StateAlerts.
type View struct {
	State     State
	Input     string
	Region    domain.Region
	Message   string
	FetchedAt time.Time

	SummaryHeaders []string
	SummaryRows    [][]string
	DetailHeaders  []string
	DetailRows     [][]string
	CSV            []byte
}

// IsError reports whether the run failed to fetch.
func (v View) IsError() bool { return v.State == StateError }

// IsEmpty reports whether the run succeeded with no alerts.
func (v View) IsEmpty() bool { return v.State == StateEmpty }

// BuildView maps the outcome of a run onto one of the three terminal states.
func BuildView(input string, result domain.Result, err error) View {
	v := View{Input: input, Region: domain.ParseRegion(input)}

	if err != nil {
		v.State = StateError
		v.Message = errorMessage(err)
		return v
	}

	v.FetchedAt = result.FetchedAt
	if result.Empty() {
		v.State = StateEmpty
		v.Message = EmptyMessage
		return v
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, result.Rows); err != nil {
		v.State = StateError
		v.Message = fmt.Sprintf("Failed to build CSV export: %v", err)
		return v
	}

	v.State = StateAlerts
	v.Message = fmt.Sprintf("Found %d active alerts", len(result.Rows))
	v.SummaryHeaders = domain.SummaryColumns()
	v.DetailHeaders = domain.Columns()
	v.SummaryRows = make([][]string, 0, len(result.Rows))
	v.DetailRows = make([][]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		v.SummaryRows = append(v.SummaryRows, row.SummaryValues())
		v.DetailRows = append(v.DetailRows, row.Values())
	}
	v.CSV = buf.Bytes()
	return v
}

// errorMessage prefers the bare status code for HTTP failures.
func errorMessage(err error) string {
	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) && fetchErr.StatusCode != 0 && fetchErr.Err == nil {
		return fmt.Sprintf("Failed to fetch data: %d", fetchErr.StatusCode)
	}
	return fmt.Sprintf("Failed to fetch data: %v", err)
}
