package main

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/colsense/internal/classify"
	"github.com/sells-group/colsense/internal/dataset"
	"github.com/sells-group/colsense/internal/store"
)

var (
	classifyConcurrency int
	classifyEnsemble    bool
	classifyThreshold   float64
	classifyMode        string
	classifyOutput      string
	classifyFormat      string
	classifySave        bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file>",
	Short: "Classify the columns of a CSV or Excel file",
	Long: `Reads a CSV/XLSX/XLS file and classifies every column into a
business data category using name, content, pattern, and statistical
signals.

Examples:
  # Classify a CSV, print results as JSON
  colsense classify leads.csv

  # Blend low-confidence columns with AI judgments
  colsense classify leads.csv --ensemble

  # Write a summary CSV and persist the run
  colsense classify leads.xlsx --format csv --output results.csv --save`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path := args[0]

		if cmd.Flags().Changed("threshold") {
			cfg.Classifier.Threshold = classifyThreshold
		}
		if cmd.Flags().Changed("mode") {
			cfg.Ensemble.Mode = classifyMode
		}

		table, err := dataset.ReadFile(path)
		if err != nil {
			return eris.Wrap(err, "classify: read file")
		}
		zap.L().Info("file parsed",
			zap.String("file", path),
			zap.Int("columns", len(table.Columns)),
			zap.Int("rows", table.RowCount()),
		)

		engine := buildEngine()
		concurrency := classifyConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Classifier.Concurrency
		}

		results, err := engine.ClassifyTable(ctx, table, concurrency)
		if err != nil {
			return eris.Wrap(err, "classify: table pass")
		}

		if classifyEnsemble || cfg.Ensemble.Enabled {
			if enhancer := buildEnhancer(); enhancer != nil {
				results = enhancer.EnhanceAll(ctx, results)
			}
		}

		if classifySave {
			if err := saveClassifyRun(cmd, path, table, results); err != nil {
				return err
			}
		}

		return writeClassifyResults(results)
	},
}

func init() {
	classifyCmd.Flags().IntVar(&classifyConcurrency, "concurrency", 0, "max columns to classify concurrently (default from config)")
	classifyCmd.Flags().BoolVar(&classifyEnsemble, "ensemble", false, "blend low-confidence columns with AI judgments")
	classifyCmd.Flags().Float64Var(&classifyThreshold, "threshold", 0, "acceptance threshold override (default from config)")
	classifyCmd.Flags().StringVar(&classifyMode, "mode", "", "ensemble blend mode: override or weighted (default from config)")
	classifyCmd.Flags().StringVar(&classifyOutput, "output", "", "write results to file (default: stdout)")
	classifyCmd.Flags().StringVar(&classifyFormat, "format", "json", "output format: json (default) or csv")
	classifyCmd.Flags().BoolVar(&classifySave, "save", false, "persist the run to the configured store")
	rootCmd.AddCommand(classifyCmd)
}

func saveClassifyRun(cmd *cobra.Command, path string, table dataset.Table, results []classify.Result) error {
	st, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	run := &store.ClassificationRun{
		SourceFile:  path,
		ColumnCount: len(table.Columns),
		RowCount:    table.RowCount(),
		Results:     results,
	}
	if err := st.SaveRun(cmd.Context(), run); err != nil {
		return eris.Wrap(err, "classify: save run")
	}
	zap.L().Info("run saved", zap.String("run_id", run.ID))
	return nil
}

func writeClassifyResults(results []classify.Result) error {
	var w *os.File
	if classifyOutput != "" {
		f, err := os.Create(classifyOutput)
		if err != nil {
			return eris.Wrap(err, "classify: create output file")
		}
		defer f.Close() //nolint:errcheck
		w = f
	} else {
		w = os.Stdout
	}

	if classifyFormat == "csv" {
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"column", "category", "confidence", "non_null", "total", "ai_enhanced"}); err != nil {
			return eris.Wrap(err, "classify: write csv header")
		}
		for _, r := range results {
			row := []string{
				r.ColumnName,
				string(r.SuggestedCategory),
				strconv.FormatFloat(r.Confidence, 'f', 3, 64),
				strconv.Itoa(r.NonNullValues),
				strconv.Itoa(r.TotalValues),
				strconv.FormatBool(r.AIEnhanced),
			}
			if err := cw.Write(row); err != nil {
				return eris.Wrap(err, "classify: write csv row")
			}
		}
		cw.Flush()
		return eris.Wrap(cw.Error(), "classify: flush csv")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(classify.ResultMap(results)), "classify: encode results")
}
