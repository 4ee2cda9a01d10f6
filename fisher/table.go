package fisher

import "fmt"

// Table is a 2×2 contingency table
//
//	| A | B |
//	| C | D |
//
// where the first row is the reference group and the first column holds the
// observations having the property under test.
type Table struct {
	A, B, C, D int
}

// NewTable returns the table [[a, b], [c, d]], refusing negative cells.
func NewTable(a, b, c, d int) (Table, error) {
	t := Table{A: a, B: b, C: c, D: d}

	return t, t.Validate()
}

// Validate reports an ErrInvalidArgument if any cell is negative.
func (t Table) Validate() error {
	if t.A < 0 || t.B < 0 || t.C < 0 || t.D < 0 {
		return fmt.Errorf("%w: table %v has a negative cell", ErrInvalidArgument, t)
	}

	return nil
}

// Margins maps the table onto the hypergeometric parameters: i observed
// successes in the reference row, n the total having the property, K the
// reference row total, and N the grand total.
func (t Table) Margins() (i, n, K, N int) {
	return t.A, t.A + t.C, t.A + t.B, t.A + t.B + t.C + t.D
}

// Greater is the one-sided p-value that the reference row is enriched for the
// property.
func (t Table) Greater(s TermStrategy) float64 {
	i, n, K, N := t.Margins()
	return Greater(s, i, n, K, N)
}

// Less is the one-sided p-value that the reference row is depleted.
func (t Table) Less(s TermStrategy) float64 {
	i, n, K, N := t.Margins()
	return Less(s, i, n, K, N)
}

// TwoSided is the p-value of the table under either direction of skew.
func (t Table) TwoSided(s TermStrategy) float64 {
	i, n, K, N := t.Margins()
	return TwoSided(s, i, n, K, N)
}

func (t Table) String() string {
	return fmt.Sprintf("[[%d %d] [%d %d]]", t.A, t.B, t.C, t.D)
}
