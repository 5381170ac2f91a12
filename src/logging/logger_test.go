package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	savedLogger := baseLogger
	savedLevel := GetLogLevel()
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() {
		baseLogger = savedLogger
		currentLevel = int32(savedLevel)
	})
	if !SetLogLevel(level) {
		t.Fatalf("level %q rejected", level)
	}
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLogs(t, "info")
	// Already formatted messages are passed through a func value, as callers forwarding
	// preformatted text do.
	msg := "loaded /data/sparse_bullshark_threshold_%s.csv (100% of rows)"
	info := Infof
	info(msg)
	out := buf.String()
	if !strings.Contains(out, "threshold_%s.csv (100% of rows)") {
		t.Fatalf("log output mangled: %s", out)
	}
	if strings.Contains(out, "MISSING") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t, "warn")
	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)
	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("messages below warn leaked: %s", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") || !strings.Contains(out, "[ERROR] error 4") {
		t.Fatalf("expected warn and error lines: %s", out)
	}
}

func TestSetLogLevelUnknownKeepsCurrent(t *testing.T) {
	captureLogs(t, "error")
	if SetLogLevel("verbose") {
		t.Fatalf("unknown level accepted")
	}
	if GetLogLevel() != LevelError {
		t.Fatalf("level changed to %s", GetLogLevel())
	}
}

func TestApplyLogLevelWarnsOnUnknown(t *testing.T) {
	buf := captureLogs(t, "info")
	ApplyLogLevel("loud")
	if GetLogLevel() != LevelInfo {
		t.Fatalf("level changed to %s", GetLogLevel())
	}
	if !strings.Contains(buf.String(), `[WARN] unknown log level "loud", keeping INFO`) {
		t.Fatalf("missing warning: %s", buf.String())
	}
	buf.Reset()
	ApplyLogLevel("error")
	if GetLogLevel() != LevelError || buf.Len() != 0 {
		t.Fatalf("known level should apply silently: level=%s out=%q", GetLogLevel(), buf.String())
	}
}

func TestTimeTrackDebugOnly(t *testing.T) {
	buf := captureLogs(t, "debug")
	TimeTrack(time.Now(), "aggregate")
	if !strings.Contains(buf.String(), "[DEBUG] aggregate took") {
		t.Fatalf("missing timing line: %s", buf.String())
	}
}
