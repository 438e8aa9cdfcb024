package ensemble

import (
	"os"
	"time"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk ensemble configuration: the judge
// attempt order plus call behavior. Absent settings fall back to the
// Options defaults.
type Config struct {
	Order       []string `yaml:"order"`
	Mode        Mode     `yaml:"mode"`
	Threshold   float64  `yaml:"threshold"`
	TimeoutSecs int      `yaml:"timeout_secs"`
	MaxSamples  int      `yaml:"max_samples"`
	RatePerMin  int      `yaml:"rate_per_min"`
}

// LoadConfig reads ensemble config from a YAML file with a top-level
// "ensemble" key.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ensemble: read config %s", path)
	}

	var wrapper struct {
		Ensemble Config `yaml:"ensemble"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "ensemble: parse config")
	}
	return &wrapper.Ensemble, nil
}

// ToOptions converts file config into Options, leaving zero values for
// NewEnhancer's defaulting.
func (c *Config) ToOptions() Options {
	return Options{
		Mode:       c.Mode,
		Threshold:  c.Threshold,
		Timeout:    time.Duration(c.TimeoutSecs) * time.Second,
		MaxSamples: c.MaxSamples,
		RatePerMin: c.RatePerMin,
	}
}

// Reorder returns judges sorted by the configured order; judges not
// named keep their relative position after the named ones. An empty
// order returns judges unchanged.
func Reorder(judges []Judge, order []string) []Judge {
	if len(order) == 0 {
		return judges
	}
	byName := make(map[string]Judge, len(judges))
	for _, j := range judges {
		byName[j.Name()] = j
	}

	out := make([]Judge, 0, len(judges))
	taken := make(map[string]bool, len(judges))
	for _, name := range order {
		if j, ok := byName[name]; ok && !taken[name] {
			out = append(out, j)
			taken[name] = true
		}
	}
	for _, j := range judges {
		if !taken[j.Name()] {
			out = append(out, j)
		}
	}
	return out
}
