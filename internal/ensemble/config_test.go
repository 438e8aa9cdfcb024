package ensemble

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "judges.yaml")
	content := `ensemble:
  order:
    - anthropic
    - openrouter
  mode: weighted
  threshold: 0.75
  timeout_secs: 20
  max_samples: 4
  rate_per_min: 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"anthropic", "openrouter"}, cfg.Order)
	assert.Equal(t, ModeWeighted, cfg.Mode)
	assert.InDelta(t, 0.75, cfg.Threshold, 0.0001)

	opts := cfg.ToOptions()
	assert.Equal(t, 20*time.Second, opts.Timeout)
	assert.Equal(t, 4, opts.MaxSamples)
	assert.Equal(t, 30, opts.RatePerMin)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "judges.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ensemble: [not a map"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

type namedJudge string

func (n namedJudge) Name() string                                  { return string(n) }
func (n namedJudge) Judge(context.Context, Request) (*Judgment, error) { return nil, nil }

func judgeNames(judges []Judge) []string {
	names := make([]string, len(judges))
	for i, j := range judges {
		names[i] = j.Name()
	}
	return names
}

func TestReorder(t *testing.T) {
	judges := []Judge{namedJudge("openrouter"), namedJudge("groq"), namedJudge("anthropic")}

	got := Reorder(judges, []string{"anthropic", "openrouter"})
	assert.Equal(t, []string{"anthropic", "openrouter", "groq"}, judgeNames(got))
}

func TestReorderEmptyOrder(t *testing.T) {
	judges := []Judge{namedJudge("a"), namedJudge("b")}
	assert.Equal(t, judges, Reorder(judges, nil))
}

func TestReorderIgnoresUnknownNames(t *testing.T) {
	judges := []Judge{namedJudge("a"), namedJudge("b")}
	got := Reorder(judges, []string{"zz", "b", "b"})
	assert.Equal(t, []string{"b", "a"}, judgeNames(got))
}
