package domain

// field binds a column header to its API property key and row accessor.
type field struct {
	header string
	key    string
	get    func(AlertRow) string
	set    func(*AlertRow, string)
}

// fields is the fixed column order used by the detail table and CSV export.
var fields = []field{
	{"Event", "event", func(r AlertRow) string { return r.Event }, func(r *AlertRow, v string) { r.Event = v }},
	{"Area", "areaDesc", func(r AlertRow) string { return r.Area }, func(r *AlertRow, v string) { r.Area = v }},
	{"Severity", "severity", func(r AlertRow) string { return r.Severity }, func(r *AlertRow, v string) { r.Severity = v }},
	{"Certainty", "certainty", func(r AlertRow) string { return r.Certainty }, func(r *AlertRow, v string) { r.Certainty = v }},
	{"Urgency", "urgency", func(r AlertRow) string { return r.Urgency }, func(r *AlertRow, v string) { r.Urgency = v }},
	{"Effective", "effective", func(r AlertRow) string { return r.Effective }, func(r *AlertRow, v string) { r.Effective = v }},
	{"Expires", "expires", func(r AlertRow) string { return r.Expires }, func(r *AlertRow, v string) { r.Expires = v }},
	{"Description", "description", func(r AlertRow) string { return r.Description }, func(r *AlertRow, v string) { r.Description = v }},
	{"Instruction", "instruction", func(r AlertRow) string { return r.Instruction }, func(r *AlertRow, v string) { r.Instruction = v }},
	{"NWS Office", "senderName", func(r AlertRow) string { return r.Office }, func(r *AlertRow, v string) { r.Office = v }},
	{"Alert ID", "id", func(r AlertRow) string { return r.AlertID }, func(r *AlertRow, v string) { r.AlertID = v }},
}

// Columns returns the eleven detail column headers in export order.
func Columns() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.header
	}
	return out
}

// SummaryColumns returns the headers of the five-column summary table.
func SummaryColumns() []string {
	return []string{"Event", "Area", "Severity", "Effective", "Expires"}
}
