package fisher

import "github.com/tokenme/probab/dst"

// Approximate returns the p-value of Pearson's chi-square test (1 degree of
// freedom, no continuity correction) for the table. It is two-sided and only
// meant as a sanity reference beside the exact tails.
func Approximate(t Table) (p float64) {
	p = 1.0

	chi := chiSquare(t)
	if chi == 0 {
		return
	}

	defer func() { recover() }()

	p = 1.0 - dst.ChiSquareCDF(1)(chi)

	return
}

func chiSquare(t Table) float64 {
	a, b, c, d := float64(t.A), float64(t.B), float64(t.C), float64(t.D)

	row1, row2 := a+b, c+d
	col1, col2 := a+c, b+d

	// Any empty margin leaves nothing to compare. Chi square of 0, P=1.0.
	if row1 == 0 || row2 == 0 || col1 == 0 || col2 == 0 {
		return 0.0
	}

	N := row1 + row2
	diff := a*d - b*c

	return N * diff * diff / (row1 * row2 * col1 * col2)
}
