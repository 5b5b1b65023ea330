// Command sample draws repeatedly from a discrete distribution and prints
// the ranked empirical frequencies with their standard errors.
//
//  sample -weights 1,3,2 -labels a,b,c -n 100000 -top 2
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-discrete"
	"github.com/timpalpant/go-discrete/ranking"
)

// Options are the command-line configuration for a sampling run.
type Options struct {
	Weights []float64
	Labels  []string
	N       int
	Seed    int64
	Top     int
	Reverse bool
}

func main() {
	weights := flag.String("weights", "", "Comma-separated unnormalized weights")
	labels := flag.String("labels", "", "Comma-separated labels (default: indices)")
	n := flag.Int("n", 10000, "Number of samples to draw")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	top := flag.Int("top", ranking.DefaultLimit, "Number of ranked entries to print")
	reverse := flag.Bool("reverse", false, "Print the lowest-ranked entries instead")
	flag.Parse()

	w, err := parseWeights(*weights)
	if err != nil {
		glog.Fatal(err)
	}

	opts := Options{
		Weights: w,
		Labels:  parseLabels(*labels),
		N:       *n,
		Seed:    *seed,
		Top:     *top,
		Reverse: *reverse,
	}

	if err := run(opts, os.Stdout); err != nil {
		glog.Fatal(err)
	}
}

func run(opts Options, w io.Writer) error {
	labels := opts.Labels
	if labels == nil {
		labels = make([]string, len(opts.Weights))
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}

	if len(labels) != len(opts.Weights) {
		return errors.Errorf("got %d labels for %d weights", len(labels), len(opts.Weights))
	}

	glog.Infof("Drawing %d samples from %d weights (seed %d)", opts.N, len(opts.Weights), opts.Seed)
	sampler := discrete.NewSampler(discrete.NewLockedSource(opts.Seed))
	samples, err := sampler.SampleN(opts.Weights, opts.N)
	if err != nil {
		return errors.Wrap(err, "sampling failed")
	}

	counts := make([]int, len(opts.Weights))
	for _, i := range samples {
		counts[i]++
	}

	p, stderr := ranking.Frequencies(counts)
	ranked := append([]string(nil), labels...)
	if err := ranking.Rank(ranked, p, stderr); err != nil {
		return err
	}

	chart := ranking.Chart{
		Labels:  ranked,
		Values:  p,
		Errors:  stderr,
		Limit:   opts.Top,
		Reverse: opts.Reverse,
	}

	bars, err := chart.Bars()
	if err != nil {
		return err
	}

	for _, bar := range bars {
		if _, err := fmt.Fprintf(w, "%s\t%.4f ± %.4f\n", bar.Label, bar.Value, bar.Err); err != nil {
			return err
		}
	}

	return nil
}

func parseWeights(s string) ([]float64, error) {
	if s == "" {
		return nil, errors.New("-weights is required")
	}

	parts := strings.Split(s, ",")
	result := make([]float64, len(parts))
	for i, part := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid weight %d", i)
		}

		result[i] = w
	}

	return result, nil
}

func parseLabels(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
