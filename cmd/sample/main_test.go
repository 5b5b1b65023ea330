package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/timpalpant/go-discrete"
)

func TestRun(t *testing.T) {
	opts := Options{
		Weights: []float64{0, 3, 1},
		Labels:  []string{"never", "often", "rarely"},
		N:       10000,
		Seed:    1,
		Top:     2,
	}

	var buf bytes.Buffer
	if err := run(opts, &buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	t.Logf("Output:\n%s", buf.String())
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}

	if !strings.HasPrefix(lines[0], "often\t") || !strings.HasPrefix(lines[1], "rarely\t") {
		t.Errorf("unexpected ranking: %v", lines)
	}
}

func TestRunReverse(t *testing.T) {
	opts := Options{
		Weights: []float64{0, 3, 1},
		N:       1000,
		Seed:    1,
		Top:     1,
		Reverse: true,
	}

	var buf bytes.Buffer
	if err := run(opts, &buf); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); !strings.HasPrefix(got, "0\t0.0000") {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestRunInvalidWeights(t *testing.T) {
	err := run(Options{Weights: []float64{0, 0}, N: 10, Seed: 1}, &bytes.Buffer{})
	if !discrete.IsInvalidInput(err) {
		t.Errorf("expected invalid input, got %v", err)
	}

	err = run(Options{Weights: []float64{1, 1}, Labels: []string{"a"}, N: 10}, &bytes.Buffer{})
	if err == nil {
		t.Error("expected label mismatch error")
	}
}

func TestParseWeights(t *testing.T) {
	w, err := parseWeights("1, 2.5,0")
	if err != nil {
		t.Fatal(err)
	}

	if len(w) != 3 || w[0] != 1 || w[1] != 2.5 || w[2] != 0 {
		t.Errorf("parseWeights = %v", w)
	}

	for _, s := range []string{"", "1,x", "1,,2"} {
		if _, err := parseWeights(s); err == nil {
			t.Errorf("parseWeights(%q): expected error", s)
		}
	}

	if l := parseLabels(""); l != nil {
		t.Errorf("parseLabels(\"\") = %v", l)
	}
}
