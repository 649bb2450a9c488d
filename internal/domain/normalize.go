package domain

import "encoding/json"

// Normalize flattens raw alerts into rows, one per input and in input order.
// It never fails; missing or malformed properties become empty fields.
func Normalize(raw []RawAlert) []AlertRow {
	rows := make([]AlertRow, 0, len(raw))
	for _, a := range raw {
		rows = append(rows, normalizeAlert(a))
	}
	return rows
}

func normalizeAlert(a RawAlert) AlertRow {
	var row AlertRow
	for _, f := range fields {
		f.set(&row, OptionalString(a.Properties[f.key]))
	}
	return row
}

// OptionalString returns the string held by a raw JSON value, or "" when the
// value is absent, null, or not a string.
func OptionalString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
