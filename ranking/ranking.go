// Package ranking selects the ranked entries of a labelled value vector
// that a horizontal bar chart displays, with optional error bars.
package ranking

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// DefaultLimit is the number of bars shown when Chart.Limit is zero.
const DefaultLimit = 20

// Bar is a single labelled bar with its (possibly zero) error bar.
type Bar struct {
	Label string
	Value float64
	Err   float64
}

// Chart describes a bar chart of Values labelled by Labels.
// Errors may be nil, in which case no error bars are drawn.
type Chart struct {
	Labels  []string
	Values  []float64
	Errors  []float64
	Limit   int  // Number of bars; 0 means DefaultLimit.
	Reverse bool // Take the last Limit entries rather than the first.
}

// Bars returns the bars shown in the chart, in display order (top to bottom).
func (c Chart) Bars() ([]Bar, error) {
	if err := checkLengths(c.Labels, c.Values, c.Errors); err != nil {
		return nil, err
	}

	if c.Limit < 0 {
		return nil, errors.Errorf("invalid limit: %d", c.Limit)
	}

	limit := c.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	n := len(c.Values)
	if limit > n {
		limit = n
	}

	start, end := 0, limit
	if c.Reverse {
		start, end = n-limit, n
	}

	result := make([]Bar, 0, limit)
	for i := start; i < end; i++ {
		bar := Bar{Label: c.Labels[i], Value: c.Values[i]}
		if c.Errors != nil {
			bar.Err = c.Errors[i]
		}

		result = append(result, bar)
	}

	return result, nil
}

// Rank sorts labels, values and errs (if non-nil) in place by value,
// largest first. Entries with equal values keep their relative order.
func Rank(labels []string, values, errs []float64) error {
	if err := checkLengths(labels, values, errs); err != nil {
		return err
	}

	sort.Stable(&byValue{labels, values, errs})
	return nil
}

// Frequencies returns the empirical frequency of each index in counts
// together with its binomial standard error sqrt(p(1-p)/n).
func Frequencies(counts []int) (p, stderr []float64) {
	var n int
	for _, c := range counts {
		n += c
	}

	p = make([]float64, len(counts))
	stderr = make([]float64, len(counts))
	if n == 0 {
		return p, stderr
	}

	for i, c := range counts {
		p[i] = float64(c) / float64(n)
		stderr[i] = math.Sqrt(p[i] * (1 - p[i]) / float64(n))
	}

	return p, stderr
}

func checkLengths(labels []string, values, errs []float64) error {
	if len(labels) != len(values) {
		return errors.Errorf("got %d labels for %d values", len(labels), len(values))
	}

	if errs != nil && len(errs) != len(values) {
		return errors.Errorf("got %d errors for %d values", len(errs), len(values))
	}

	return nil
}

type byValue struct {
	labels []string
	values []float64
	errs   []float64
}

func (b *byValue) Len() int           { return len(b.values) }
func (b *byValue) Less(i, j int) bool { return b.values[i] > b.values[j] }
func (b *byValue) Swap(i, j int) {
	b.labels[i], b.labels[j] = b.labels[j], b.labels[i]
	b.values[i], b.values[j] = b.values[j], b.values[i]
	if b.errs != nil {
		b.errs[i], b.errs[j] = b.errs[j], b.errs[i]
	}
}
