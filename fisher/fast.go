package fisher

import "github.com/BenLubar/memoize"

// GreaterFunc has the signature of Greater.
type GreaterFunc func(s TermStrategy, i, n, K, N int) float64

// NewFastGreater returns Greater behind a fresh memo table. Many categories
// in a typical run share identical margins, so each distinct tail is summed
// once. The table lives as long as the returned function; keep one per
// analysis run. Safe to call from concurrent goroutines.
func NewFastGreater() GreaterFunc {
	return memoize.Memoize(Greater).(func(TermStrategy, int, int, int, int) float64)
}
