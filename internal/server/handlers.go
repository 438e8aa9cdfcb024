package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/colsense/internal/classify"
	"github.com/sells-group/colsense/internal/dataset"
	"github.com/sells-group/colsense/internal/store"
)

const previewRows = 10

// classification is the per-column payload in upload responses.
type classification struct {
	Type        string  `json:"type"`
	Confidence  float64 `json:"confidence"`
	AIEnhanced  bool    `json:"ai_enhanced"`
	AIReasoning string  `json:"ai_reasoning,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"message": "API is running",
	})
}

func (s *Server) handleLimits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"max_file_size_mb": s.limits.MaxFileSizeMB,
		"max_rows":         s.limits.MaxRows,
		"max_columns":      s.limits.MaxColumns,
		"formats":          []string{"csv", "xlsx", "xls"},
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(s.limits.MaxFileSizeMB) * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if ext != "csv" && ext != "xlsx" && ext != "xls" {
		writeError(w, http.StatusBadRequest, "Only CSV and Excel files are supported")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File exceeds maximum size of %dMB", s.limits.MaxFileSizeMB))
		return
	}
	sizeMB := float64(len(content)) / (1024 * 1024)
	if sizeMB > float64(s.limits.MaxFileSizeMB) {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File size (%.1fMB) exceeds maximum limit of %dMB", sizeMB, s.limits.MaxFileSizeMB))
		return
	}

	var table dataset.Table
	if ext == "csv" {
		table, err = dataset.ReadCSV(bytes.NewReader(content))
	} else {
		table, err = dataset.ReadXLSX(content, dataset.XLSXOptions{})
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Error reading file: %v", err))
		return
	}
	if len(table.Columns) == 0 || table.RowCount() == 0 {
		writeError(w, http.StatusBadRequest, "File is empty")
		return
	}

	if table.RowCount() > s.limits.MaxRows {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File has %d rows, exceeds maximum limit of %d rows", table.RowCount(), s.limits.MaxRows))
		return
	}
	if len(table.Columns) > s.limits.MaxColumns {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File has %d columns, exceeds maximum limit of %d columns", len(table.Columns), s.limits.MaxColumns))
		return
	}

	results, err := s.engine.ClassifyTable(r.Context(), table, s.concurrency)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error classifying columns: %v", err))
		return
	}
	if s.enhancer != nil {
		results = s.enhancer.EnhanceAll(r.Context(), results)
	}

	sess := s.sessions.Create(header.Filename, table, results, sizeMB)
	s.saveRun(r, sess.Filename, table, results)

	classifications := make(map[string]classification, len(results))
	for _, res := range results {
		classifications[res.ColumnName] = classification{
			Type:        string(res.SuggestedCategory),
			Confidence:  res.Confidence,
			AIEnhanced:  res.AIEnhanced,
			AIReasoning: res.AIReasoning,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id":      sess.ID,
		"filename":        sess.Filename,
		"columns":         table.ColumnNames(),
		"classifications": classifications,
		"row_count":       table.RowCount(),
		"file_size_mb":    roundMB(sizeMB),
		"sample_data":     sampleRows(table, previewRows),
		"total_columns":   len(table.Columns),
		"total_rows":      table.RowCount(),
		"message":         "File analyzed successfully",
	})
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID       string          `json:"session_id"`
		SelectedColumns map[string]bool `json:"selected_columns"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := s.sessions.Get(req.SessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	var selected []string
	for name, keep := range req.SelectedColumns {
		if keep {
			selected = append(selected, name)
		}
	}
	if len(selected) == 0 {
		writeError(w, http.StatusBadRequest, "No columns selected")
		return
	}

	view, err := sess.Process(selected)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Successfully processed %d rows with %d columns",
			sess.Table.RowCount(), len(view.Selected)),
		"processed_rows":   sess.Table.RowCount(),
		"selected_columns": view.Selected,
		"column_headers":   view.Headers,
		"preview_data":     processedPreview(sess.Table, view.Selected, view.Headers, previewRows),
		"total_rows":       sess.Table.RowCount(),
		"session_id":       sess.ID,
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	csvData, err := sess.ExportCSV()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error generating download: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"csv_data":  string(csvData),
		"filename":  sess.ExportFilename(),
		"row_count": sess.Table.RowCount(),
		"message":   "File ready for download",
	})
}

// saveRun records the upload's classifications when a store is wired.
// Persistence failures are logged and never fail the request.
func (s *Server) saveRun(r *http.Request, filename string, table dataset.Table, results []classify.Result) {
	if s.runs == nil {
		return
	}
	run := &store.ClassificationRun{
		SourceFile:  filename,
		ColumnCount: len(table.Columns),
		RowCount:    table.RowCount(),
		Results:     results,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.runs.SaveRun(r.Context(), run); err != nil {
		zap.L().Warn("server: save run failed",
			zap.String("file", filename),
			zap.Error(err),
		)
	}
}

// sampleRows renders the first n rows as name→value maps for preview.
func sampleRows(table dataset.Table, n int) []map[string]string {
	n = min(n, table.RowCount())
	rows := make([]map[string]string, n)
	for i := 0; i < n; i++ {
		row := make(map[string]string, len(table.Columns))
		for _, col := range table.Columns {
			if i < len(col.Values) {
				row[col.Name] = col.Values[i].String()
			}
		}
		rows[i] = row
	}
	return rows
}

// processedPreview renders the first n rows of the selected columns
// keyed by their cleaned headers.
func processedPreview(table dataset.Table, selected []string, headers map[string]string, n int) []map[string]string {
	n = min(n, table.RowCount())
	rows := make([]map[string]string, n)
	for i := 0; i < n; i++ {
		row := make(map[string]string, len(selected))
		for _, name := range selected {
			col, ok := table.Column(name)
			if !ok || i >= len(col.Values) {
				continue
			}
			header := name
			if h, ok := headers[name]; ok {
				header = h
			}
			row[header] = col.Values[i].String()
		}
		rows[i] = row
	}
	return rows
}

func roundMB(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
