// Command validate checks a CSV export against the viewer's export contract
// and, optionally, against the NWS feature collection it was built from. It
// verifies the header, record shape, timestamps, and row-for-row parity with
// the normalized source.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -csv nws_alerts.csv \
//	  -source-json testdata/alerts_active.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/couchcryptid/nws-alerts-viewer/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	csvPath := flag.String("csv", "", "path to the exported CSV file")
	sourceJSON := flag.String("source-json", "", "optional path to the NWS feature collection the export was built from")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(os.Stdout, *csvPath, *sourceJSON))
}

func run(out io.Writer, csvPath, sourceJSONPath string) int {
	fmt.Fprintln(out, "=== NWS Alerts Export Validation ===")
	fmt.Fprintln(out)

	records, err := loadCSV(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load CSV: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateHeader(records),
		validateRecords(records),
		validateTimestamps(records),
	}

	if sourceJSONPath != "" {
		source, err := loadFeatureCollection(sourceJSONPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: load source JSON: %v\n", err)
			return 1
		}
		phases = append(phases, validateSourceParity(records, domain.Normalize(source)))
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Records: %d data rows\n", max(len(records)-1, 0))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

// ── Data loading ──

func loadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // shape is checked per record in phase 2
	return r.ReadAll()
}

func loadFeatureCollection(path string) ([]domain.RawAlert, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc struct {
		Features []domain.RawAlert `json:"features"`
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return fc.Features, nil
}

// ── Phase 1: Header ──

func validateHeader(records [][]string) *phase {
	p := &phase{name: "Phase 1: Header"}
	if len(records) == 0 {
		p.errorf("file is empty, expected header row")
		return p
	}
	if want := domain.Columns(); !slices.Equal(records[0], want) {
		p.errorf("header: expected %q, got %q", want, records[0])
	}
	return p
}

// ── Phase 2: Record shape ──
// Every data row has eleven fields and a unique, non-empty Alert ID.

func validateRecords(records [][]string) *phase {
	p := &phase{name: "Phase 2: Record Shape"}
	if len(records) < 2 {
		return p
	}

	width := len(domain.Columns())
	seen := map[string]int{}
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) != width {
			p.errorf("line %d: expected %d fields, got %d", line, width, len(rec))
			continue
		}
		row := domain.RowFromValues(rec)
		if row.AlertID == "" {
			p.errorf("line %d: empty Alert ID", line)
			continue
		}
		if prev, ok := seen[row.AlertID]; ok {
			p.errorf("line %d: Alert ID %q duplicates line %d", line, row.AlertID, prev)
			continue
		}
		seen[row.AlertID] = line
	}
	return p
}

// ── Phase 3: Timestamps ──
// Effective and Expires are ISO 8601 when present, and Expires is not before Effective.

func validateTimestamps(records [][]string) *phase {
	p := &phase{name: "Phase 3: Timestamps"}
	if len(records) < 2 {
		return p
	}

	for i, rec := range records[1:] {
		line := i + 2
		row := domain.RowFromValues(rec)

		effective, okEff := parseTimestamp(p, line, "Effective", row.Effective)
		expires, okExp := parseTimestamp(p, line, "Expires", row.Expires)
		if okEff && okExp && expires.Before(effective) {
			p.errorf("line %d: Expires %s is before Effective %s", line, row.Expires, row.Effective)
		}
	}
	return p
}

func parseTimestamp(p *phase, line int, column, value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		p.errorf("line %d: %s %q is not ISO 8601", line, column, value)
		return time.Time{}, false
	}
	return t, true
}

// ── Phase 4: Source parity ──
// The export matches the normalized source row for row, in order.

func validateSourceParity(records [][]string, source []domain.AlertRow) *phase {
	p := &phase{name: "Phase 4: Source Parity (CSV vs JSON)"}
	var data [][]string
	if len(records) > 1 {
		data = records[1:]
	}

	if len(data) != len(source) {
		p.errorf("row count: source has %d alerts, export has %d rows", len(source), len(data))
	}

	columns := domain.Columns()
	for i := range min(len(data), len(source)) {
		want := source[i].Values()
		for j, col := range columns {
			if j >= len(data[i]) {
				break
			}
			if data[i][j] != want[j] {
				p.errorf("line %d: column %q: source=%q, export=%q", i+2, col, want[j], data[i][j])
			}
		}
	}
	return p
}
