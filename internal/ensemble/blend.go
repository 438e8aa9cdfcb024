package ensemble

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/colsense/internal/classify"
)

// Mode selects how a judgment merges with the local result.
type Mode string

const (
	// ModeOverride adopts the judgment only when its confidence beats
	// the local one.
	ModeOverride Mode = "override"
	// ModeWeighted always adopts the judgment's category and blends
	// confidences 0.4 local / 0.6 judge.
	ModeWeighted Mode = "weighted"
)

// Blend constants.
const (
	// ConfidenceCap marks AI-derived confidence as never fully certain.
	ConfidenceCap = 0.95

	localWeight = 0.4
	judgeWeight = 0.6

	// DefaultOverrideThreshold and DefaultWeightedThreshold gate when
	// the blend engages, per mode.
	DefaultOverrideThreshold = 0.7
	DefaultWeightedThreshold = 0.8

	defaultTimeout    = 15 * time.Second
	defaultMaxSamples = 3
)

// Options configure an Enhancer.
type Options struct {
	Mode       Mode
	Threshold  float64       // engage when local confidence is below this
	Timeout    time.Duration // per judge call
	MaxSamples int           // sample values sent to the judge
	RatePerMin int           // judge calls per minute, 0 = unlimited
}

// Enhancer runs the ensemble blend over classification results. Judges
// are attempted in their fixed declared order, per column; one column's
// provider failure never disables the judge for later columns.
type Enhancer struct {
	judges  []Judge
	opts    Options
	limiter *rate.Limiter
}

// NewEnhancer creates an enhancer over an ordered judge list.
func NewEnhancer(judges []Judge, opts Options) *Enhancer {
	if opts.Mode == "" {
		opts.Mode = ModeOverride
	}
	if opts.Threshold == 0 {
		if opts.Mode == ModeWeighted {
			opts.Threshold = DefaultWeightedThreshold
		} else {
			opts.Threshold = DefaultOverrideThreshold
		}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxSamples <= 0 {
		opts.MaxSamples = defaultMaxSamples
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RatePerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RatePerMin)/60.0), 1)
	}

	return &Enhancer{judges: judges, opts: opts, limiter: limiter}
}

// Enhance returns either the unchanged result or a new blended result.
// It never returns an error: judge failures fall back to the local
// result.
func (e *Enhancer) Enhance(ctx context.Context, result classify.Result) classify.Result {
	if result.Confidence >= e.opts.Threshold || len(e.judges) == 0 {
		return result
	}

	judgment := e.consult(ctx, judgeRequest(result, e.opts.MaxSamples))
	if judgment == nil {
		return result
	}

	return e.blend(result, judgment)
}

// EnhanceAll enhances each result in order, preserving positions.
func (e *Enhancer) EnhanceAll(ctx context.Context, results []classify.Result) []classify.Result {
	out := make([]classify.Result, len(results))
	for i, r := range results {
		out[i] = e.Enhance(ctx, r)
	}
	return out
}

// consult tries each judge in order until one returns a valid
// judgment. All failures are logged and swallowed.
func (e *Enhancer) consult(ctx context.Context, req Request) *Judgment {
	for _, judge := range e.judges {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil
		}

		callCtx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
		judgment, err := judge.Judge(callCtx, req)
		cancel()

		if err != nil {
			zap.L().Warn("ensemble: judge failed",
				zap.String("judge", judge.Name()),
				zap.String("column", req.ColumnName),
				zap.Error(err),
			)
			continue
		}
		zap.L().Debug("ensemble: judgment received",
			zap.String("judge", judge.Name()),
			zap.String("column", req.ColumnName),
			zap.String("category", string(judgment.Category)),
			zap.Float64("confidence", judgment.Confidence),
		)
		return judgment
	}
	return nil
}

// blend merges a judgment into a fresh copy of the local result under
// the configured mode's rules.
func (e *Enhancer) blend(local classify.Result, judgment *Judgment) classify.Result {
	blended := local

	switch e.opts.Mode {
	case ModeWeighted:
		blended.SuggestedCategory = judgment.Category
		blended.Confidence = min(ConfidenceCap,
			local.Confidence*localWeight+judgment.Confidence*judgeWeight)
	default: // override
		if judgment.Confidence <= local.Confidence {
			return local
		}
		blended.SuggestedCategory = judgment.Category
		blended.Confidence = min(ConfidenceCap, judgment.Confidence)
	}

	blended.AIEnhanced = true
	blended.AIReasoning = judgment.Reasoning
	blended.BaseCategory = local.SuggestedCategory
	blended.BaseConfidence = local.Confidence
	return blended
}

func judgeRequest(result classify.Result, maxSamples int) Request {
	samples := result.SampleValues
	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}
	return Request{
		ColumnName:        result.ColumnName,
		SampleValues:      samples,
		CandidateCategory: result.SuggestedCategory,
	}
}
