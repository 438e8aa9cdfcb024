package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// ReadCSV parses CSV content into a Table. The first record is the
// header row.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if err == io.EOF {
		return Table{}, eris.New("csv: file is empty")
	}
	if err != nil {
		return Table{}, eris.Wrap(err, "csv: read header")
	}

	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, eris.Wrap(err, "csv: read row")
		}
		rows = append(rows, record)
	}

	return FromRows(header, rows), nil
}

// ReadCSVFile parses the CSV file at path into a Table.
func ReadCSVFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, eris.Wrapf(err, "csv: open %s", path)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadFile parses a tabular file by extension: .csv, .xlsx, or .xls.
func ReadFile(path string) (Table, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".csv"):
		return ReadCSVFile(path)
	case strings.HasSuffix(strings.ToLower(path), ".xlsx"),
		strings.HasSuffix(strings.ToLower(path), ".xls"):
		return ReadXLSXFile(path, XLSXOptions{})
	default:
		return Table{}, eris.Errorf("dataset: unsupported file type %s", path)
	}
}
