package fisher

import "math"

// directBinomialCutoff is the smallest a for which LogBinomial sums the
// upper range of logs instead of differencing three log-factorials.
const directBinomialCutoff = 30

// LogBinomial returns ln(C(a, b)). Requests with b > a or b < 0 are logged as
// warnings and yield 0.
func LogBinomial(a, b int) float64 {
	if b < 0 || b > a {
		warnInvalid("LogBinomial(%d, %d)", a, b)
		return 0
	}

	if b == 0 || b == a {
		return 0
	}

	if a < directBinomialCutoff {
		return LogFactorial(a) - LogFactorial(b) - LogFactorial(a-b)
	}

	// ln(a!/y!) is summed directly so the two large log-factorials never have
	// to cancel each other.
	x, y := b, a-b
	if x > y {
		x, y = y, x
	}

	var ret float64
	for k := a; k > y; k-- {
		ret += math.Log(float64(k))
	}

	return ret - LogFactorial(x)
}
