package classify

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/colsense/internal/dataset"
	"github.com/sells-group/colsense/internal/taxonomy"
)

// maxSampleValues is the cap on representative values kept per result.
const maxSampleValues = 5

// Engine fuses the four analyzers' scores into one decision per
// column. It is stateless and re-entrant: configuration is fixed at
// construction and never mutated during a run.
type Engine struct {
	weights   FusionWeights
	detectors []Detector
	threshold float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights overrides the default fusion weights.
func WithWeights(w FusionWeights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithThreshold overrides the default acceptance threshold.
func WithThreshold(t float64) Option {
	return func(e *Engine) { e.threshold = t }
}

// WithDetectors overrides the default content detector set.
func WithDetectors(ds []Detector) Option {
	return func(e *Engine) { e.detectors = ds }
}

// NewEngine creates a classification engine with production defaults.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		weights:   DefaultFusionWeights,
		detectors: DefaultDetectors(),
		threshold: AcceptanceThreshold,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// ClassifyColumn classifies a single column. It is a pure synchronous
// computation and always returns a Result, including for all-null
// columns.
func (e *Engine) ClassifyColumn(col dataset.Column) Result {
	nonNull := col.NonNull()
	if len(nonNull) == 0 {
		return Result{
			ColumnName:        col.Name,
			SuggestedCategory: taxonomy.UnknownJunk,
			Confidence:        0.0,
			SampleValues:      []string{},
			TotalValues:       len(col.Values),
			NonNullValues:     0,
		}
	}

	cv := ColumnView{Values: nonNull, Numeric: col.Numeric()}

	nameScores := AnalyzeName(col.Name)
	contentScores := AnalyzeContent(cv, e.detectors)
	patternScores := AnalyzePattern(cv)
	statScores := AnalyzeStats(cv)

	fused := NewSignalScore()
	for _, c := range taxonomy.Priority {
		fused[c] = e.weights.Name*nameScores[c] +
			e.weights.Content*contentScores[c] +
			e.weights.Pattern*patternScores[c] +
			e.weights.Statistical*statScores[c]
	}

	// Tie-break by iterating the declared priority order and keeping
	// the first strictly-maximal value: equal scores resolve to the
	// earlier category.
	winner := taxonomy.Priority[0]
	best := fused[winner]
	for _, c := range taxonomy.Priority[1:] {
		if fused[c] > best {
			winner, best = c, fused[c]
		}
	}

	category := winner
	confidence := min(1.0, best)
	if best < e.threshold {
		category = taxonomy.UnknownJunk
		confidence = 0.0
	}

	return Result{
		ColumnName:        col.Name,
		SuggestedCategory: category,
		Confidence:        round3(confidence),
		SampleValues:      sampleValues(nonNull),
		TotalValues:       len(col.Values),
		NonNullValues:     len(nonNull),
		Scores:            roundScores(fused),
		Breakdown: &Breakdown{
			Name:        roundScores(nameScores),
			Content:     roundScores(contentScores),
			Pattern:     roundScores(patternScores),
			Statistical: roundScores(statScores),
		},
	}
}

// ClassifyTable classifies every column of a table on a bounded worker
// pool. Columns are independent, so the only coordination is the
// result slot per column. On context cancellation the already-finished
// results are returned alongside the context error; each is still a
// complete, valid Result.
func (e *Engine) ClassifyTable(ctx context.Context, table dataset.Table, concurrency int) ([]Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(table.Columns))
	done := make([]bool, len(table.Columns))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, col := range table.Columns {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = e.ClassifyColumn(col)
			done[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		finished := make([]Result, 0, len(results))
		for i := range results {
			if done[i] {
				finished = append(finished, results[i])
			}
		}
		zap.L().Warn("classify: table pass cancelled",
			zap.Int("columns_total", len(table.Columns)),
			zap.Int("columns_finished", len(finished)),
		)
		return finished, err
	}

	return results, nil
}

// ResultMap keys results by column name for the serialization boundary.
// The first result wins when column names repeat.
func ResultMap(results []Result) map[string]Result {
	out := make(map[string]Result, len(results))
	for _, r := range results {
		if _, exists := out[r.ColumnName]; !exists {
			out[r.ColumnName] = r
		}
	}
	return out
}

// sampleValues returns up to maxSampleValues distinct rendered values
// in first-seen order.
func sampleValues(values []dataset.Value) []string {
	samples := make([]string, 0, maxSampleValues)
	seen := make(map[string]struct{}, maxSampleValues)
	for _, v := range values {
		s := v.String()
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		samples = append(samples, s)
		if len(samples) == maxSampleValues {
			break
		}
	}
	return samples
}
