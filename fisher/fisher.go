// Package fisher computes Fisher's exact test for 2×2 contingency tables from
// first principles. Huge binomial coefficients are handled either in log
// space (exact log-factorials below 1000, a Stirling series above) or by
// cancelling factorial factors and multiplying the survivors in an order that
// keeps the running value near 1. Both strategies are pure, hold no state
// across calls, and are safe to call from concurrent goroutines.
package fisher

// Greater returns the one-sided p-value P(X >= i) where X is hypergeometric
// with sample size n, K successes and population N: the sum of the terms for
// i, i+1, …, min(n, K), clamped to 1.
func Greater(s TermStrategy, i, n, K, N int) float64 {
	if !validMargins(n, K, N) {
		warnInvalid("Greater(i=%d, n=%d, K=%d, N=%d)", i, n, K, N)
		return 1
	}

	var sum float64
	for j := maxInt(i, lowerSupport(n, K, N)); j <= minInt(minInt(n, K), N); j++ {
		sum += Term(s, j, n, K, N)
	}

	return clamp(sum)
}

// Less returns the opposite tail, P(X <= i), clamped to 1.
func Less(s TermStrategy, i, n, K, N int) float64 {
	if !validMargins(n, K, N) {
		warnInvalid("Less(i=%d, n=%d, K=%d, N=%d)", i, n, K, N)
		return 1
	}

	var sum float64
	for j := lowerSupport(n, K, N); j <= minInt(i, minInt(n, K)); j++ {
		sum += Term(s, j, n, K, N)
	}

	return clamp(sum)
}

func validMargins(n, K, N int) bool {
	return N >= 0 && K >= 0 && K <= N && n >= 0 && n <= N
}

func clamp(p float64) float64 {
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}

	return p
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
