package matches

import (
	"context"
	"fmt"
	"runtime"

	"github.com/carbocation/domainfisher/fisher"
	"golang.org/x/sync/errgroup"
)

// Options controls how categories are tested and classified.
type Options struct {
	// Threshold is the p-value at or below which a tail is significant.
	Threshold float64

	// RatioCutoff flags a category when two-sided / one-sided falls below
	// it, meaning the interesting direction may be the opposite one.
	RatioCutoff float64

	Strategy fisher.TermStrategy

	// Workers bounds the number of categories tested at once. Values below
	// 1 mean runtime.NumCPU().
	Workers int

	// Verify cross-checks both term strategies on every category and fails
	// the run on disagreement.
	Verify          bool
	VerifyTolerance float64
}

// DefaultOptions matches the classic analysis: 0.05 significance, a 0.1
// ratio cutoff, and the direct cancellation strategy.
func DefaultOptions() Options {
	return Options{
		Threshold:       0.05,
		RatioCutoff:     0.1,
		Strategy:        fisher.DirectCancellation,
		Workers:         runtime.NumCPU(),
		VerifyTolerance: 1e-6,
	}
}

// Result is the outcome for one category.
type Result struct {
	Category string `csv:"category"`

	CountA int `csv:"count_a"`
	TotalA int `csv:"total_a"`
	CountB int `csv:"count_b"`
	TotalB int `csv:"total_b"`

	Table fisher.Table `csv:"-"`

	// Greater is the one-sided p-value that the category is enriched in
	// source A relative to source B.
	Greater float64 `csv:"p_greater"`
	Less    float64 `csv:"p_less"`

	TwoSided  float64 `csv:"p_two_sided"`
	ChiSquare float64 `csv:"p_chisq"`

	Significant bool `csv:"significant"`

	// SizeSkew is set when the two-sided p-value is small relative to the
	// one-sided one. Complement = 1 − Greater is then tested as well.
	SizeSkew              bool    `csv:"size_skew"`
	Complement            float64 `csv:"p_complement"`
	ComplementSignificant bool    `csv:"complement_significant"`
}

// NewTable builds [[countA, totalA−countA], [countB, totalB−countB]].
func NewTable(pair Pair, totalA, totalB int) (fisher.Table, error) {
	t, err := fisher.NewTable(pair.A, totalA-pair.A, pair.B, totalB-pair.B)
	if err != nil {
		return t, fmt.Errorf("counts %d/%d and %d/%d: %w", pair.A, totalA, pair.B, totalB, err)
	}

	return t, nil
}

// Classify runs the tests for a single table.
func Classify(category string, t fisher.Table, opts Options) (Result, error) {
	return classify(category, t, opts, fisher.Greater)
}

func classify(category string, t fisher.Table, opts Options, greater fisher.GreaterFunc) (Result, error) {
	if opts.Verify {
		if err := fisher.CrossCheckTail(t, opts.VerifyTolerance); err != nil {
			return Result{}, fmt.Errorf("%s: %w", category, err)
		}
	}

	i, n, K, N := t.Margins()

	res := Result{
		Category: category,
		CountA:   t.A,
		TotalA:   t.A + t.B,
		CountB:   t.C,
		TotalB:   t.C + t.D,
		Table:    t,
		Greater:  greater(opts.Strategy, i, n, K, N),
		Less:     t.Less(opts.Strategy),
		TwoSided: t.TwoSided(opts.Strategy),

		ChiSquare: fisher.Approximate(t),
	}

	if res.Greater <= opts.Threshold {
		res.Significant = true
	}

	// An underflowed one-sided p is already significant and has no
	// meaningful ratio.
	if res.Greater > 0 && res.TwoSided/res.Greater < opts.RatioCutoff {
		res.SizeSkew = true
		res.Complement = 1 - res.Greater
		if res.Complement <= opts.Threshold {
			res.ComplementSignificant = true
			res.Significant = true
		}
	}

	return res, nil
}

// Analyze merges the two sources and classifies every category. Results are
// sorted by category name.
func Analyze(ctx context.Context, a, b Source, opts Options) ([]Result, error) {
	merged := Merge(a.Counts, b.Counts)
	categories := merged.Categories()

	tables := make([]fisher.Table, len(categories))
	for k, category := range categories {
		t, err := NewTable(merged[category], a.Total, b.Total)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", category, err)
		}
		tables[k] = t
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(categories))
	greater := fisher.NewFastGreater()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for k := range categories {
		k := k

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			res, err := classify(categories[k], tables[k], opts, greater)
			if err != nil {
				return err
			}
			results[k] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Interesting returns the significant results, keeping their order.
func Interesting(results []Result) []Result {
	out := make([]Result, 0)
	for _, res := range results {
		if res.Significant {
			out = append(out, res)
		}
	}

	return out
}
