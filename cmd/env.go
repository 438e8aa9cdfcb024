package main

import (
	"context"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/colsense/internal/classify"
	"github.com/sells-group/colsense/internal/ensemble"
	"github.com/sells-group/colsense/internal/store"
	"github.com/sells-group/colsense/pkg/anthropic"
	"github.com/sells-group/colsense/pkg/openrouter"
)

// buildEngine creates the classification engine from config.
func buildEngine() *classify.Engine {
	return classify.NewEngine(classify.WithThreshold(cfg.Classifier.Threshold))
}

// buildJudges constructs one judge per configured provider key, in the
// default order OpenRouter, Groq, Anthropic.
func buildJudges() []ensemble.Judge {
	var judges []ensemble.Judge

	if cfg.OpenRouter.Key != "" {
		client := openrouter.NewClient(cfg.OpenRouter.Key,
			openrouter.WithBaseURL(cfg.OpenRouter.BaseURL),
			openrouter.WithModel(cfg.OpenRouter.Model),
		)
		judges = append(judges, ensemble.NewChatJudge("openrouter", client, cfg.OpenRouter.Model))
	}
	if cfg.Groq.Key != "" {
		client := openrouter.NewClient(cfg.Groq.Key,
			openrouter.WithBaseURL(openrouter.GroqBaseURL),
			openrouter.WithModel(cfg.Groq.Model),
		)
		judges = append(judges, ensemble.NewChatJudge("groq", client, cfg.Groq.Model))
	}
	if cfg.Anthropic.Key != "" {
		client := anthropic.NewClient(cfg.Anthropic.Key)
		judges = append(judges, ensemble.NewAnthropicJudge(client, cfg.Anthropic.Model))
	}

	return judges
}

// buildEnhancer creates the AI judgment blend, or nil when no provider
// is configured. An ensemble config file, when present, overrides the
// main config's settings and judge order.
func buildEnhancer() *ensemble.Enhancer {
	judges := buildJudges()
	if len(judges) == 0 {
		zap.L().Warn("ensemble requested but no provider keys configured, continuing without AI judgments")
		return nil
	}

	opts := ensemble.Options{
		Mode:       ensemble.Mode(cfg.Ensemble.Mode),
		Threshold:  cfg.Ensemble.Threshold,
		Timeout:    time.Duration(cfg.Ensemble.TimeoutSecs) * time.Second,
		MaxSamples: cfg.Ensemble.MaxSamples,
		RatePerMin: cfg.Ensemble.RatePerMin,
	}

	if path := cfg.Ensemble.ConfigPath; path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			fileCfg, err := ensemble.LoadConfig(path)
			if err != nil {
				zap.L().Warn("ensemble config file unreadable, using main config",
					zap.String("path", path),
					zap.Error(err),
				)
			} else {
				opts = fileCfg.ToOptions()
				judges = ensemble.Reorder(judges, fileCfg.Order)
			}
		}
	}

	return ensemble.NewEnhancer(judges, opts)
}

// openStore opens the run-history store per config.
func openStore(ctx context.Context) (store.Store, error) {
	var st store.Store
	var err error

	switch cfg.Store.Driver {
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL, nil)
	default:
		st, err = store.NewSQLite(cfg.Store.Path)
	}
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}

	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}
