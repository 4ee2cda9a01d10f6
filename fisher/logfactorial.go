package fisher

import (
	"math"
	"math/big"
	"sync"
)

// stirlingCutoff is the smallest n for which LogFactorial switches from the
// exact product to the asymptotic series.
const stirlingCutoff = 1000

var (
	exactLogFactorialsOnce sync.Once
	exactLogFactorials     [stirlingCutoff]float64
)

// LogFactorial returns ln(n!). Below 1000 the value comes from the exact
// integer product; from 1000 upward it is the Stirling series with four
// correction terms. A negative n is logged as a warning and yields 0.
func LogFactorial(n int) float64 {
	if n < 0 {
		warnInvalid("LogFactorial(%d)", n)
		return 0
	}

	if n == 0 {
		return 0
	}

	if n < stirlingCutoff {
		exactLogFactorialsOnce.Do(fillExactLogFactorials)
		return exactLogFactorials[n]
	}

	return stirling(float64(n))
}

func stirling(n float64) float64 {
	n3 := n * n * n
	n5 := n3 * n * n
	n7 := n5 * n * n

	return math.Log(2*math.Pi)/2 +
		(n+0.5)*math.Log(n) -
		n +
		1/(12*n) -
		1/(360*n3) +
		1/(1260*n5) -
		1/(1680*n7)
}

// fillExactLogFactorials walks the running product 1·2·…·k, taking the log of
// each exact intermediate.
func fillExactLogFactorials() {
	product := big.NewInt(1)
	factor := new(big.Int)

	for k := 1; k < stirlingCutoff; k++ {
		product.Mul(product, factor.SetInt64(int64(k)))
		exactLogFactorials[k] = logBigInt(product)
	}
}

// logBigInt returns the natural log of a positive integer of any size.
func logBigInt(x *big.Int) float64 {
	f := new(big.Float).SetInt(x)

	mant := new(big.Float)
	exp := f.MantExp(mant)
	m, _ := mant.Float64()

	return math.Log(m) + float64(exp)*math.Ln2
}
