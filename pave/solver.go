package pave

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Default numeric settings for both solvers. Tolerance is on the log10(W18)
// scale, matching how the design equation expresses capacity.
const (
	DefaultTolerance     = 0.01
	DefaultMaxIterations = 10000
)

// Solution is the outcome of a Structural Number search. When Converged is
// false, SN holds the best candidate found before the iteration bound was
// hit; callers must treat it as an estimate, not a design value.
type Solution struct {
	SN         float64
	Iterations int
	Converged  bool
}

// Solver inverts the design equation: find SN ≥ 0 whose predicted capacity
// matches targetESAL within the solver's tolerance on the log10 scale.
// Implementations MUST NOT require more than targetESAL > 0 and valid
// EquationParams, and must return rather than loop forever on pathological
// inputs.
type Solver interface {
	Solve(targetESAL float64, p EquationParams) (Solution, error)
}

// SolverOptions carries the tunable knobs shared by all solvers. Zero values
// select the package defaults.
type SolverOptions struct {
	Tolerance     float64
	MaxIterations int
}

func (o SolverOptions) tolerance() float64 {
	if o.Tolerance > 0 {
		return o.Tolerance
	}
	return DefaultTolerance
}

func (o SolverOptions) maxIterations() int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}
	return DefaultMaxIterations
}

// NewSolver returns the solver registered under name. Empty string selects
// step-search, the classical behavior.
func NewSolver(name string, opts SolverOptions) (Solver, error) {
	switch name {
	case "", "step-search":
		return &StepSearchSolver{Tolerance: opts.tolerance(), MaxIterations: opts.maxIterations()}, nil
	case "bisection":
		return &BisectionSolver{Tolerance: opts.tolerance(), MaxIterations: opts.maxIterations()}, nil
	default:
		return nil, fmt.Errorf("unknown solver %q; valid: step-search, bisection", name)
	}
}

// StepSearchSolver reproduces the classical two-phase step search: walk the
// SN guess toward the target with a coarse 0.1 step while the log-scale
// error exceeds 10x tolerance, then a fine 0.01 step. The guess is clamped
// to SN ≥ 0 throughout.
//
// The step switching has no termination proof — near a plateau the error can
// straddle the coarse/fine boundary and cycle — so the search is bounded by
// MaxIterations and reports Converged=false with the best-found SN when the
// bound is hit.
type StepSearchSolver struct {
	Tolerance     float64
	MaxIterations int
}

const (
	coarseStep = 0.1
	fineStep   = 0.01
)

func (s *StepSearchSolver) Solve(targetESAL float64, p EquationParams) (Solution, error) {
	targetLog, err := targetLog10(targetESAL, p)
	if err != nil {
		return Solution{}, err
	}

	sn := 1.0
	best, bestErr := sn, math.Inf(1)
	for i := 0; i < s.MaxIterations; i++ {
		current, err := LogW18(sn, p)
		if err != nil {
			return Solution{}, err
		}
		diff := math.Abs(current - targetLog)
		if diff < bestErr {
			best, bestErr = sn, diff
		}
		if diff < s.Tolerance {
			logrus.Debugf("step-search converged: SN=%.4f after %d iterations", sn, i)
			return Solution{SN: sn, Iterations: i, Converged: true}, nil
		}
		step := fineStep
		if diff > 10*s.Tolerance {
			step = coarseStep
		}
		if current < targetLog {
			sn += step
		} else {
			sn -= step
		}
		sn = math.Max(sn, 0)
	}
	logrus.Warnf("step-search hit iteration bound %d without converging; best SN=%.4f (log error %.4f)",
		s.MaxIterations, best, bestErr)
	return Solution{SN: best, Iterations: s.MaxIterations, Converged: false}, nil
}

// BisectionSolver exploits monotonicity of LogW18 in SN: expand an upper
// bracket until the target capacity is enclosed, then bisect. Termination is
// guaranteed by the bracket halving, so MaxIterations only guards against
// misconfigured tolerances.
type BisectionSolver struct {
	Tolerance     float64
	MaxIterations int
}

// bracketLimit caps bracket expansion. SN values beyond this are physically
// meaningless (the reference material table tops out well under SN 20).
const bracketLimit = 1 << 20

func (s *BisectionSolver) Solve(targetESAL float64, p EquationParams) (Solution, error) {
	targetLog, err := targetLog10(targetESAL, p)
	if err != nil {
		return Solution{}, err
	}

	// The equation's minimum over the valid domain is at SN=0. A target at
	// or below it needs no structure beyond the layer minimums.
	atZero, err := LogW18(0, p)
	if err != nil {
		return Solution{}, err
	}
	if atZero >= targetLog-s.Tolerance {
		return Solution{SN: 0, Iterations: 0, Converged: math.Abs(atZero-targetLog) < s.Tolerance}, nil
	}

	lo, hi := 0.0, 1.0
	iterations := 0
	for {
		v, err := LogW18(hi, p)
		if err != nil {
			return Solution{}, err
		}
		iterations++
		if v >= targetLog {
			break
		}
		lo, hi = hi, hi*2
		if hi > bracketLimit {
			logrus.Warnf("bisection could not bracket target log10(W18)=%.4f below SN=%d", targetLog, bracketLimit)
			return Solution{SN: lo, Iterations: iterations, Converged: false}, nil
		}
	}

	for ; iterations < s.MaxIterations; iterations++ {
		mid := (lo + hi) / 2
		current, err := LogW18(mid, p)
		if err != nil {
			return Solution{}, err
		}
		if math.Abs(current-targetLog) < s.Tolerance {
			logrus.Debugf("bisection converged: SN=%.4f after %d iterations", mid, iterations)
			return Solution{SN: mid, Iterations: iterations, Converged: true}, nil
		}
		if current < targetLog {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Solution{SN: (lo + hi) / 2, Iterations: s.MaxIterations, Converged: false}, nil
}

// targetLog10 validates the search inputs and converts the target ESAL to
// the log10 scale the equation works on.
func targetLog10(targetESAL float64, p EquationParams) (float64, error) {
	if targetESAL <= 0 {
		return 0, fmt.Errorf("target ESAL must be positive, got %v", targetESAL)
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return math.Log10(targetESAL), nil
}
