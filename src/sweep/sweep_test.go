package sweep

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "sweep.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestDefaultSweep(t *testing.T) {
	sw := Default()
	if err := sw.Validate(); err != nil {
		t.Fatalf("default invalid: %v", err)
	}
	if len(sw.Thresholds) != 11 || sw.Thresholds[0] != "1" || sw.Thresholds[10] != "2" {
		t.Fatalf("unexpected thresholds: %v", sw.Thresholds)
	}
	if sw.LatencyDivisor != 10800 || sw.Validators != 2000 {
		t.Fatalf("unexpected constants: %+v", sw)
	}
	// Default must hand out a fresh slice.
	sw.Thresholds[0] = "9"
	if DefaultThresholds[0] != "1" {
		t.Fatalf("Default aliases DefaultThresholds")
	}
}

func TestFileNameAndPath(t *testing.T) {
	sw := Default()
	if got := sw.FileName("1.5"); got != "sparse_bullshark_threshold_1.5.csv" {
		t.Fatalf("file name: %s", got)
	}
	if got := sw.Path("2"); got != "sparse_bullshark_threshold_2.csv" {
		t.Fatalf("path without dir: %s", got)
	}
	sw.Dir = "results"
	if got := sw.Path("2"); got != filepath.Join("results", "sparse_bullshark_threshold_2.csv") {
		t.Fatalf("path with dir: %s", got)
	}
}

func TestSeriesLabel(t *testing.T) {
	cases := map[string]string{
		"1":   "Sparse Bullshark f+1",
		"1.0": "Sparse Bullshark 1.0f+1",
		"1.5": "Sparse Bullshark 1.5f+1",
		"2":   "Sparse Bullshark 2f+1",
	}
	for in, want := range cases {
		if got := SeriesLabel(in); got != want {
			t.Fatalf("SeriesLabel(%q)=%q want %q", in, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Default().Title(); got != "Sparse bullshark: Direct commit variation with 2000 validators" {
		t.Fatalf("title: %s", got)
	}
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	sw, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sw.FilePattern != DefaultFilePattern || len(sw.Thresholds) != len(DefaultThresholds) {
		t.Fatalf("expected defaults, got %+v", sw)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	p := writeConfig(t, "thresholds: [\"1\", \"1.5\"]\nvalidators: 1500\ndir: out\n")
	sw, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(sw.Thresholds) != 2 || sw.Thresholds[1] != "1.5" {
		t.Fatalf("thresholds not replaced: %v", sw.Thresholds)
	}
	if sw.Validators != 1500 || sw.Dir != "out" {
		t.Fatalf("overrides lost: %+v", sw)
	}
	if sw.LatencyDivisor != DefaultLatencyDivisor || sw.FilePattern != DefaultFilePattern {
		t.Fatalf("omitted keys should keep defaults: %+v", sw)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	sw, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if sw.Validators != DefaultValidators {
		t.Fatalf("expected defaults: %+v", sw)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "colour: blue\n",
		"no verb":       "file_pattern: results.csv\n",
		"two verbs":     "file_pattern: \"%s_%s.csv\"\n",
		"zero divisor":  "latency_divisor: 0\n",
		"duplicate":     "thresholds: [\"1\", \"1\"]\n",
		"no thresholds": "thresholds: []\n",
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read sweep config") {
		t.Fatalf("expected read error, got %v", err)
	}
}
