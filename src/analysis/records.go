// Package analysis loads Sparse Bullshark threshold result files and reduces them to the
// per-sample-size latency points that make up one chart series.
package analysis

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Record is one line of a result file: "<sample_size> <ordered> <latency_raw>".
type Record struct {
	SampleSize float64
	// Ordered is the number of vertices ordered during the run. It is not part of the latency mean.
	Ordered    float64
	LatencyRaw float64
}

// ErrNoRecords is returned for a file without a single data line.
var ErrNoRecords = errors.New("no records")

// ParseError points at the offending line of a result file.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Reason)
}

const recordFields = 3

// ParseRecords reads whitespace separated rows of three numbers. Blank lines are skipped; any
// other deviation fails the whole read.
func ParseRecords(r io.Reader) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != recordFields {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: fmt.Sprintf("expected %d fields, got %d", recordFields, len(fields))}
		}
		var vals [recordFields]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: fmt.Sprintf("field %d: %v", i+1, err)}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: fmt.Sprintf("field %d: not a finite number", i+1)}
			}
			vals[i] = v
		}
		out = append(out, Record{SampleSize: vals[0], Ordered: vals[1], LatencyRaw: vals[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoRecords
	}
	return out, nil
}

// LoadRecords opens and parses one result file.
func LoadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := ParseRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
