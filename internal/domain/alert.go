package domain

import (
	"encoding/json"
	"time"
)

// RawAlert is one feature from the API's feature collection. Properties are
// kept as raw JSON so a single oddly typed value cannot fail the whole decode.
type RawAlert struct {
	ID         string
	Properties map[string]json.RawMessage
}

// UnmarshalJSON decodes a feature leniently: a feature that is not an object,
// or whose properties are not an object, decodes to an alert with no
// properties instead of an error.
func (a *RawAlert) UnmarshalJSON(data []byte) error {
	var f struct {
		ID         json.RawMessage `json:"id"`
		Properties json.RawMessage `json:"properties"`
	}
	*a = RawAlert{}
	if err := json.Unmarshal(data, &f); err != nil {
		return nil //nolint:nilerr // malformed features become empty rows
	}
	a.ID = OptionalString(f.ID)

	var props map[string]json.RawMessage
	if err := json.Unmarshal(f.Properties, &props); err == nil {
		a.Properties = props
	}
	return nil
}

// AlertRow is the flat, display-ready form of one alert.
type AlertRow struct {
	Event       string `json:"event"`
	Area        string `json:"area"`
	Severity    string `json:"severity"`
	Certainty   string `json:"certainty"`
	Urgency     string `json:"urgency"`
	Effective   string `json:"effective"`
	Expires     string `json:"expires"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
	Office      string `json:"office"`
	AlertID     string `json:"alert_id"`
}

// Values returns the row's fields in Columns order.
func (r AlertRow) Values() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.get(r)
	}
	return out
}

// SummaryValues returns the row's fields in SummaryColumns order.
func (r AlertRow) SummaryValues() []string {
	return []string{r.Event, r.Area, r.Severity, r.Effective, r.Expires}
}

// RowFromValues builds a row from fields in Columns order. Missing trailing
// values are left empty.
func RowFromValues(values []string) AlertRow {
	var r AlertRow
	for i, f := range fields {
		if i >= len(values) {
			break
		}
		f.set(&r, values[i])
	}
	return r
}

// Result is the outcome of one successful fetch.
type Result struct {
	Region    Region
	Rows      []AlertRow
	FetchedAt time.Time
}

// Empty reports whether the fetch returned no alerts.
func (r Result) Empty() bool {
	return len(r.Rows) == 0
}
