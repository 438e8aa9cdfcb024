package session

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/colsense/internal/classify"
	"github.com/sells-group/colsense/internal/taxonomy"
)

// exportHeaders maps detected categories to cleaned export headers.
// Unknown columns keep their original names.
var exportHeaders = map[taxonomy.Category]string{
	taxonomy.BusinessName: "Business Name",
	taxonomy.PhoneNumber:  "Phone Number",
	taxonomy.Email:        "Email Address",
	taxonomy.BizCategory:  "Business Category",
	taxonomy.Location:     "Address/Location",
	taxonomy.SocialLinks:  "Website/Social Media",
	taxonomy.Review:       "Customer Review",
	taxonomy.Hours:        "Operating Hours",
	taxonomy.Price:        "Price/Cost",
}

// Process records the user's column selection on the session and
// derives the cleaned headers from the classification results.
// Selected names must exist in the session's table.
func (s *Session) Process(selected []string) (*ProcessedView, error) {
	if len(selected) == 0 {
		return nil, eris.New("session: no columns selected")
	}

	byName := classify.ResultMap(s.Results)
	headers := make(map[string]string, len(selected))

	// Keep table order for export stability.
	var ordered []string
	want := make(map[string]bool, len(selected))
	for _, name := range selected {
		want[name] = true
	}
	for _, col := range s.Table.Columns {
		if !want[col.Name] {
			continue
		}
		ordered = append(ordered, col.Name)
		header := col.Name
		if r, ok := byName[col.Name]; ok {
			if h, ok := exportHeaders[r.SuggestedCategory]; ok {
				header = h
			}
		}
		headers[col.Name] = header
	}

	if len(ordered) == 0 {
		return nil, eris.New("session: selected columns not found in table")
	}

	view := &ProcessedView{Headers: headers, Selected: ordered}
	s.Processed = view
	return view, nil
}

// ExportCSV renders the session as a cleaned CSV: the processed
// selection if one exists, otherwise the full original table.
func (s *Session) ExportCSV() ([]byte, error) {
	selected := s.Table.ColumnNames()
	headers := map[string]string{}
	if s.Processed != nil {
		selected = s.Processed.Selected
		headers = s.Processed.Headers
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	headerRow := make([]string, len(selected))
	cols := make([][]string, len(selected))
	rowCount := s.Table.RowCount()
	for i, name := range selected {
		headerRow[i] = name
		if h, ok := headers[name]; ok {
			headerRow[i] = h
		}
		col, ok := s.Table.Column(name)
		if !ok {
			return nil, eris.Errorf("session: column %q not found", name)
		}
		rendered := make([]string, rowCount)
		for j := 0; j < rowCount && j < len(col.Values); j++ {
			rendered[j] = col.Values[j].String()
		}
		cols[i] = rendered
	}

	if err := w.Write(headerRow); err != nil {
		return nil, eris.Wrap(err, "session: write header")
	}
	for j := 0; j < rowCount; j++ {
		row := make([]string, len(cols))
		for i := range cols {
			row[i] = cols[i][j]
		}
		if err := w.Write(row); err != nil {
			return nil, eris.Wrap(err, "session: write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, eris.Wrap(err, "session: flush csv")
	}
	return buf.Bytes(), nil
}

// ExportFilename derives the cleaned download name from the uploaded
// filename.
func (s *Session) ExportFilename() string {
	base := s.Filename
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return fmt.Sprintf("cleaned_%s.csv", base)
}
