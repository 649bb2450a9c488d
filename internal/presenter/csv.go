package presenter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/couchcryptid/nws-alerts-viewer/internal/domain"
)

const (
	// CSVFilename is the name offered for the downloaded export.
	CSVFilename = "nws_alerts.csv"
	// CSVContentType is the MIME type of the export.
	CSVContentType = "text/csv"
)

// WriteCSV writes a header row of the eleven column names followed by one
// record per row. Nothing follows the last data row.
func WriteCSV(w io.Writer, rows []domain.AlertRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.Columns()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Values()); err != nil {
			return fmt.Errorf("write csv row %s: %w", row.AlertID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses an export produced by WriteCSV. The header must match the
// column list exactly.
func ReadCSV(r io.Reader) ([]domain.AlertRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(domain.Columns())

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("read csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if !slices.Equal(header, domain.Columns()) {
		return nil, fmt.Errorf("read csv: unexpected header %q", header)
	}

	var rows []domain.AlertRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, domain.RowFromValues(record))
	}
}
