package dataset

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// XLSXOptions configures workbook parsing.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// ReadXLSXFile parses the workbook at path into a Table. The first row
// of the selected sheet is the header.
func ReadXLSXFile(path string, opts XLSXOptions) (Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return Table{}, eris.Wrapf(err, "xlsx: open %s", path)
	}
	return tableFromWorkbook(f, opts)
}

// ReadXLSX parses workbook bytes (e.g. an upload body) into a Table.
func ReadXLSX(content []byte, opts XLSXOptions) (Table, error) {
	f, err := xlsx.OpenBinary(content)
	if err != nil {
		return Table{}, eris.Wrap(err, "xlsx: open workbook")
	}
	return tableFromWorkbook(f, opts)
}

func tableFromWorkbook(f *xlsx.File, opts XLSXOptions) (Table, error) {
	sheet, err := selectSheet(f, opts)
	if err != nil {
		return Table{}, err
	}
	if len(sheet.Rows) == 0 {
		return Table{}, eris.New("xlsx: sheet is empty")
	}

	header := rowToStrings(sheet.Rows[0])
	rows := make([][]string, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		rows = append(rows, rowToStrings(row))
	}

	return FromRows(header, rows), nil
}

func selectSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}
	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("xlsx: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}
	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
