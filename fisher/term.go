package fisher

import (
	"fmt"
	"math"
	"strings"
)

// TermStrategy selects how a single hypergeometric term is evaluated.
type TermStrategy int

const (
	// LogSpace sums and subtracts log binomial coefficients and exponentiates
	// once. Robust for very large populations.
	LogSpace TermStrategy = iota

	// DirectCancellation cancels factorial factors and multiplies out the
	// survivors, avoiding the log/exp round trip.
	DirectCancellation
)

func (s TermStrategy) String() string {
	switch s {
	case LogSpace:
		return "log"
	case DirectCancellation:
		return "direct"
	}

	return fmt.Sprintf("TermStrategy(%d)", int(s))
}

// ParseTermStrategy accepts the names produced by TermStrategy.String.
func ParseTermStrategy(name string) (TermStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "log", "logspace", "log-space":
		return LogSpace, nil
	case "direct", "cancellation", "directcancellation":
		return DirectCancellation, nil
	}

	return LogSpace, fmt.Errorf("%w: unknown term strategy %q (expected log or direct)", ErrInvalidArgument, name)
}

// Term returns the hypergeometric probability of observing exactly i
// successes in a sample of n drawn without replacement from a population of N
// containing K successes: C(K,i)·C(N−K,n−i)/C(N,n).
//
// Configurations that cannot occur return 0.
func Term(s TermStrategy, i, n, K, N int) float64 {
	if s == DirectCancellation {
		return DirectTerm(i, n, K, N)
	}

	return LogSpaceTerm(i, n, K, N)
}

// LogSpaceTerm evaluates the term through LogBinomial.
func LogSpaceTerm(i, n, K, N int) float64 {
	if !feasible(i, n, K, N) {
		return 0
	}

	a := LogBinomial(K, i)
	b := LogBinomial(N-K, n-i)
	c := LogBinomial(N, n)

	return math.Exp(a - c + b)
}

// DirectTerm evaluates the term as the factorial ratio
// K!(N−K)!n!(N−n)! / (i!(K−i)!(n−i)!N!(N−K−n+i)!).
func DirectTerm(i, n, K, N int) float64 {
	if !feasible(i, n, K, N) {
		return 0
	}

	up := []int{K, N - K, n, N - n}
	down := []int{i, K - i, n - i, N, N - K - n + i}

	return ExactRatio(up, down)
}

// feasible reports whether a table with these margins and i in the upper
// left cell has non-negative cells.
func feasible(i, n, K, N int) bool {
	if N < 0 || K < 0 || K > N || n < 0 || n > N {
		return false
	}

	return i >= lowerSupport(n, K, N) && i <= minInt(n, K)
}

// lowerSupport is the smallest attainable i: the lower right cell N−K−n+i
// must be non-negative.
func lowerSupport(n, K, N int) int {
	return maxInt(0, n+K-N)
}
