// Package sweep describes one threshold sweep of the Sparse Bullshark simulation: which
// direct-commit thresholds were run, where their result files live and how the chart is labelled.
package sweep

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilePattern names one result file per threshold label.
	DefaultFilePattern = "sparse_bullshark_threshold_%s.csv"
	// DefaultLatencyDivisor converts the simulator's accumulated latency into seconds.
	DefaultLatencyDivisor = 10800
	// DefaultValidators is the pool size of the sweep; it only appears in the title.
	DefaultValidators = 2000
)

// DefaultThresholds are the direct-commit thresholds (multiples of f, plus one) of the sweep.
var DefaultThresholds = []string{"1", "1.1", "1.2", "1.3", "1.4", "1.5", "1.6", "1.7", "1.8", "1.9", "2"}

// Sweep holds the settings of one report run.
type Sweep struct {
	// Thresholds in plotting order; the label is substituted verbatim into FilePattern.
	Thresholds []string `yaml:"thresholds"`

	// FilePattern is a fmt pattern with exactly one %s verb.
	FilePattern string `yaml:"file_pattern"`

	// Dir is prepended to every result file name. Empty means the working directory.
	Dir string `yaml:"dir"`

	// LatencyDivisor is applied to the mean raw latency to obtain seconds.
	LatencyDivisor float64 `yaml:"latency_divisor"`

	// Validators is the number of validators shown in the chart title.
	Validators int `yaml:"validators"`
}

// Default returns the sweep the benchmark was run with.
func Default() Sweep {
	return Sweep{
		Thresholds:     append([]string(nil), DefaultThresholds...),
		FilePattern:    DefaultFilePattern,
		LatencyDivisor: DefaultLatencyDivisor,
		Validators:     DefaultValidators,
	}
}

// Load reads a YAML sweep file on top of Default. An empty path returns Default unchanged.
func Load(path string) (Sweep, error) {
	sw := Default()
	if path == "" {
		return sw, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return sw, fmt.Errorf("read sweep config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&sw); err != nil && !errors.Is(err, io.EOF) {
		return sw, fmt.Errorf("parse sweep config %s: %w", path, err)
	}
	if err := sw.Validate(); err != nil {
		return sw, fmt.Errorf("sweep config %s: %w", path, err)
	}
	return sw, nil
}

// Validate checks that the sweep can produce a chart.
func (s Sweep) Validate() error {
	if len(s.Thresholds) == 0 {
		return errors.New("no thresholds configured")
	}
	seen := make(map[string]bool, len(s.Thresholds))
	for _, t := range s.Thresholds {
		if strings.TrimSpace(t) == "" {
			return errors.New("empty threshold label")
		}
		if seen[t] {
			return fmt.Errorf("duplicate threshold %q", t)
		}
		seen[t] = true
	}
	if strings.Count(s.FilePattern, "%") != 1 || !strings.Contains(s.FilePattern, "%s") {
		return fmt.Errorf("file pattern %q must contain exactly one %%s", s.FilePattern)
	}
	if s.LatencyDivisor <= 0 {
		return fmt.Errorf("latency divisor must be positive, got %v", s.LatencyDivisor)
	}
	if s.Validators <= 0 {
		return fmt.Errorf("validators must be positive, got %d", s.Validators)
	}
	return nil
}

// FileName returns the result file name for a threshold label.
func (s Sweep) FileName(threshold string) string {
	return fmt.Sprintf(s.FilePattern, threshold)
}

// Path joins FileName with Dir.
func (s Sweep) Path(threshold string) string {
	if s.Dir == "" {
		return s.FileName(threshold)
	}
	return filepath.Join(s.Dir, s.FileName(threshold))
}

// SeriesLabel is the legend entry for a threshold; the plain f+1 quorum drops the factor.
func SeriesLabel(threshold string) string {
	if threshold == "1" {
		return "Sparse Bullshark f+1"
	}
	return fmt.Sprintf("Sparse Bullshark %sf+1", threshold)
}

// Title is the chart title.
func (s Sweep) Title() string {
	return fmt.Sprintf("Sparse bullshark: Direct commit variation with %d validators", s.Validators)
}
