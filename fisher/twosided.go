package fisher

// relativeTieTolerance lets terms that equal the observed one up to rounding
// count as "as extreme".
const relativeTieTolerance = 1e-7

// TwoSided returns the two-sided p-value: the sum over the whole support of
// every term no more probable than the observed term P(X = i), clamped to 1.
func TwoSided(s TermStrategy, i, n, K, N int) float64 {
	if !validMargins(n, K, N) {
		warnInvalid("TwoSided(i=%d, n=%d, K=%d, N=%d)", i, n, K, N)
		return 1
	}

	observed := Term(s, i, n, K, N) * (1 + relativeTieTolerance)

	var sum float64
	for j := lowerSupport(n, K, N); j <= minInt(n, K); j++ {
		if p := Term(s, j, n, K, N); p <= observed {
			sum += p
		}
	}

	return clamp(sum)
}
