package fisher

// factorCount is one distinct surviving factor and how many times it
// survived cancellation.
type factorCount struct {
	factor int
	count  int
}

// factorStack hands out factors largest-first.
type factorStack []factorCount

func (s *factorStack) empty() bool {
	return len(*s) == 0
}

func (s *factorStack) pop() float64 {
	top := &(*s)[len(*s)-1]
	f := top.factor

	top.count--
	if top.count == 0 {
		*s = (*s)[:len(*s)-1]
	}

	return float64(f)
}

// ExactRatio returns (up[0]! · up[1]! · …) / (down[0]! · down[1]! · …)
// without forming any factorial. Every factorial is expanded into its
// integer factors, factors shared by numerator and denominator cancel, and
// the survivors are applied largest-first, dividing while the running value
// exceeds 1 and multiplying otherwise, so the intermediate stays near 1.
//
// A negative argument is logged as a warning and contributes nothing.
func ExactRatio(up, down []int) float64 {
	largest := 0
	for _, args := range [][]int{up, down} {
		for _, v := range args {
			if v > largest {
				largest = v
			}
		}
	}

	// net[k] is the multiplicity of factor k after cancellation: positive
	// when k survives in the numerator, negative in the denominator.
	net := make([]int, largest+1)

	for _, u := range up {
		if u < 0 {
			warnInvalid("ExactRatio numerator factorial %d!", u)
			continue
		}
		// 1 is the multiplicative identity and never needs to be tracked.
		for k := 2; k <= u; k++ {
			net[k]++
		}
	}

	for _, d := range down {
		if d < 0 {
			warnInvalid("ExactRatio denominator factorial %d!", d)
			continue
		}
		for k := 2; k <= d; k++ {
			net[k]--
		}
	}

	// Walking k upward leaves both stacks sorted ascending.
	var times, div factorStack
	for k, v := range net {
		switch {
		case v > 0:
			times = append(times, factorCount{factor: k, count: v})
		case v < 0:
			div = append(div, factorCount{factor: k, count: -v})
		}
	}

	ret := 1.0
	for !times.empty() || !div.empty() {
		if ret > 1 {
			if !div.empty() {
				ret /= div.pop()
			} else {
				ret *= times.pop()
			}
			continue
		}

		if !times.empty() {
			ret *= times.pop()
		} else {
			ret /= div.pop()
		}
	}

	return ret
}
