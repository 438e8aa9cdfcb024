package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sells-group/colsense/internal/ensemble"
	"github.com/sells-group/colsense/internal/taxonomy"
)

var judgesTimeout time.Duration

var judgesCmd = &cobra.Command{
	Use:   "judges",
	Short: "Probe the configured AI judges",
	Long: `Sends a fixed sample column to every configured judge and reports
whether each provider returns a usable judgment. Useful for verifying
API keys and model names before enabling the ensemble.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		judges := buildJudges()
		if len(judges) == 0 {
			fmt.Fprintln(os.Stderr, "No provider keys configured.")
			return nil
		}

		probe := ensemble.Request{
			ColumnName:        "email_address",
			SampleValues:      []string{"jane@example.com", "info@acme.io", "bob.smith@mail.net"},
			CandidateCategory: taxonomy.Email,
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "JUDGE\tSTATUS\tCATEGORY\tCONFIDENCE\tLATENCY")

		for _, judge := range judges {
			ctx, cancel := context.WithTimeout(cmd.Context(), judgesTimeout)

			start := time.Now()
			judgment, err := judge.Judge(ctx, probe)
			latency := time.Since(start).Round(time.Millisecond)
			cancel()

			if err != nil {
				fmt.Fprintf(w, "%s\tFAIL\t-\t-\t%s\n", judge.Name(), latency)
				fmt.Fprintf(os.Stderr, "%s: %v\n", judge.Name(), err)
				continue
			}
			fmt.Fprintf(w, "%s\tOK\t%s\t%.2f\t%s\n",
				judge.Name(), judgment.Category, judgment.Confidence, latency)
		}

		return w.Flush()
	},
}

func init() {
	judgesCmd.Flags().DurationVar(&judgesTimeout, "timeout", 15*time.Second, "per-judge probe timeout")
	rootCmd.AddCommand(judgesCmd)
}
