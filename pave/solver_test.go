package pave

import (
	"math"
	"math/rand"
	"testing"
)

// referenceTarget is the reference design scenario: heavy truck-route
// traffic on a CBR 10 subgrade at 99.9% reliability.
const referenceTarget = 131399993.62

func TestStepSearchSolver_ReferenceScenario(t *testing.T) {
	solver := &StepSearchSolver{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
	solution, err := solver.Solve(referenceTarget, referenceParams)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !solution.Converged {
		t.Fatalf("expected convergence, stopped at SN=%f after %d iterations", solution.SN, solution.Iterations)
	}
	if math.Abs(solution.SN-8.01) > 0.05 {
		t.Errorf("SN = %f, want 8.01 ± 0.05", solution.SN)
	}
}

func TestBisectionSolver_ReferenceScenario(t *testing.T) {
	solver := &BisectionSolver{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
	solution, err := solver.Solve(referenceTarget, referenceParams)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !solution.Converged {
		t.Fatalf("expected convergence, stopped at SN=%f after %d iterations", solution.SN, solution.Iterations)
	}
	if math.Abs(solution.SN-8.01) > 0.05 {
		t.Errorf("SN = %f, want 8.01 ± 0.05", solution.SN)
	}
}

func TestSolvers_RoundTripRecoversSN(t *testing.T) {
	// For a chosen SN* in [1, 10], solving for target = 10^logW18(SN*)
	// must recover SN* within tolerance on the log scale, which for this
	// equation's slope keeps SN itself within a few hundredths.
	solvers := map[string]Solver{
		"step-search": &StepSearchSolver{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations},
		"bisection":   &BisectionSolver{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations},
	}
	rng := rand.New(rand.NewSource(42))
	for name, solver := range solvers {
		for trial := 0; trial < 25; trial++ {
			snStar := 1 + rng.Float64()*9
			logTarget, err := LogW18(snStar, referenceParams)
			if err != nil {
				t.Fatalf("LogW18(%f): %v", snStar, err)
			}
			solution, err := solver.Solve(math.Pow(10, logTarget), referenceParams)
			if err != nil {
				t.Fatalf("%s: Solve: %v", name, err)
			}
			if !solution.Converged {
				t.Fatalf("%s: did not converge for SN*=%f", name, snStar)
			}
			recovered, err := LogW18(solution.SN, referenceParams)
			if err != nil {
				t.Fatalf("LogW18(%f): %v", solution.SN, err)
			}
			if math.Abs(recovered-logTarget) >= DefaultTolerance {
				t.Errorf("%s: round-trip SN*=%f gave SN=%f, log error %f >= %f",
					name, snStar, solution.SN, math.Abs(recovered-logTarget), DefaultTolerance)
			}
		}
	}
}

func TestStepSearchSolver_IterationBoundReturnsBestEffort(t *testing.T) {
	// With a bound too small to reach the target the solver must stop and
	// flag non-convergence instead of looping.
	solver := &StepSearchSolver{Tolerance: DefaultTolerance, MaxIterations: 3}
	solution, err := solver.Solve(referenceTarget, referenceParams)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if solution.Converged {
		t.Error("expected Converged=false with a 3-iteration bound")
	}
	if solution.Iterations != 3 {
		t.Errorf("Iterations = %d, want 3", solution.Iterations)
	}
	if solution.SN < 1.0 {
		t.Errorf("best-effort SN = %f, should have walked up from the initial guess", solution.SN)
	}
}

func TestSolvers_RejectNonPositiveTarget(t *testing.T) {
	for _, solver := range []Solver{
		&StepSearchSolver{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations},
		&BisectionSolver{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations},
	} {
		for _, target := range []float64{0, -1e6} {
			if _, err := solver.Solve(target, referenceParams); err == nil {
				t.Errorf("%T: expected domain error for target %v, got nil", solver, target)
			}
		}
	}
}

func TestNewSolver_NamesAndDefaults(t *testing.T) {
	s, err := NewSolver("", SolverOptions{})
	if err != nil {
		t.Fatalf("NewSolver(\"\"): %v", err)
	}
	step, ok := s.(*StepSearchSolver)
	if !ok {
		t.Fatalf("NewSolver(\"\") = %T, want *StepSearchSolver", s)
	}
	if step.Tolerance != DefaultTolerance || step.MaxIterations != DefaultMaxIterations {
		t.Errorf("defaults not applied: %+v", step)
	}

	if _, err := NewSolver("bisection", SolverOptions{Tolerance: 0.001}); err != nil {
		t.Errorf("NewSolver(\"bisection\"): %v", err)
	}
	if _, err := NewSolver("newton", SolverOptions{}); err == nil {
		t.Error("NewSolver(\"newton\"): expected error for unknown solver")
	}
}
