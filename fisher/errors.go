package fisher

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sync"

	"github.com/carbocation/pfx"
)

var (
	// ErrInvalidArgument marks a malformed request to the engine, such as a
	// negative factorial or a binomial coefficient with b > a. The engine
	// never returns it from the numeric functions: it logs a warning and
	// substitutes a safe default.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNumericDivergence is returned when the log-space and the direct
	// cancellation strategies disagree beyond the requested tolerance.
	ErrNumericDivergence = errors.New("numeric divergence between term strategies")
)

var (
	warnMu sync.Mutex
	warner = log.New(os.Stderr, "fisher: ", log.LstdFlags)
)

// SetWarningOutput redirects the warnings emitted for invalid arguments.
func SetWarningOutput(w io.Writer) {
	warnMu.Lock()
	defer warnMu.Unlock()

	warner.SetOutput(w)
}

func warnInvalid(format string, args ...interface{}) {
	err := fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidArgument}, args...)...)

	warnMu.Lock()
	defer warnMu.Unlock()
	warner.Println("Warning:", pfx.Err(err))
}

// DivergenceError describes a single hypergeometric term on which the two
// strategies disagree.
type DivergenceError struct {
	I, SampleSize, Successes, Population int

	LogSpace float64
	Direct   float64
	Relative float64
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("%s: i=%d n=%d K=%d N=%d log-space=%g direct=%g relative error=%g",
		ErrNumericDivergence, e.I, e.SampleSize, e.Successes, e.Population, e.LogSpace, e.Direct, e.Relative)
}

func (e *DivergenceError) Unwrap() error {
	return ErrNumericDivergence
}

// underflowFloor is the magnitude below which both strategies are considered
// to have run out of double precision.
const underflowFloor = 1e-290

// CrossCheck computes the term for (i, n, K, N) with both strategies and
// returns a *DivergenceError if their relative difference exceeds tol.
func CrossCheck(i, n, K, N int, tol float64) error {
	a := LogSpaceTerm(i, n, K, N)
	b := DirectTerm(i, n, K, N)

	if rel, ok := agree(a, b, tol); !ok {
		return &DivergenceError{
			I:          i,
			SampleSize: n,
			Successes:  K,
			Population: N,
			LogSpace:   a,
			Direct:     b,
			Relative:   rel,
		}
	}

	return nil
}

// CrossCheckTail runs CrossCheck on every term summed by t.Greater.
func CrossCheckTail(t Table, tol float64) error {
	if err := t.Validate(); err != nil {
		return err
	}

	i, n, K, N := t.Margins()
	for j := maxInt(i, n+K-N); j <= minInt(n, K); j++ {
		if err := CrossCheck(j, n, K, N, tol); err != nil {
			return err
		}
	}

	return nil
}

func agree(a, b, tol float64) (float64, bool) {
	if a == b {
		return 0, true
	}

	if math.Abs(a) < underflowFloor && math.Abs(b) < underflowFloor {
		return 0, true
	}

	rel := math.Abs(a-b) / math.Max(math.Abs(a), math.Abs(b))

	return rel, rel <= tol
}
