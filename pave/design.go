package pave

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// DefaultStandardDeviation is the combined standard error SO customarily
// used for flexible pavements.
const DefaultStandardDeviation = 0.45

// deviateMismatchTolerance bounds how far a tabulated ZR may sit from the
// exact normal quantile before Design emits a consistency warning.
const deviateMismatchTolerance = 0.005

// ErrUnknownClassification reports a roadway classification absent from the
// reliability or serviceability tables. Callers match it with errors.Is and
// decide whether to abort or re-prompt.
var ErrUnknownClassification = errors.New("unknown roadway classification")

// DesignInput is the full set of per-run inputs to a pavement design.
// Zero-valued optional fields select defaults.
type DesignInput struct {
	Counts         map[string]int64 // vehicle class → surveyed count
	CBR            float64          // subgrade California Bearing Ratio (> 0)
	Classification string           // key into the reliability/serviceability/min-SN tables

	StandardDeviation  float64 // SO; 0 → DefaultStandardDeviation
	ReliabilityPercent float64 // custom reliability; 0 → use the classification table's ZR
	Solver             string  // "", "step-search" or "bisection"
	Tolerance          float64 // log10-scale tolerance; 0 → DefaultTolerance
	MaxIterations      int     // solver bound; 0 → DefaultMaxIterations
}

// DesignResult is the structured outcome of one design run. Warnings carry
// the non-fatal conditions (non-convergence, floor governing, unallocated
// SN, deviate mismatch); the core never terminates the process.
type DesignResult struct {
	ESAL             float64
	Contributions    []ClassContribution
	ResilientModulus float64
	Reliability      ReliabilityLevel
	Serviceability   ServiceabilityLevel
	Solution         Solution
	MinimumSN        float64 // classification floor; 0 when the table has none
	FloorGoverns     bool    // true when MinimumSN exceeded the solved SN
	RequiredSN       float64 // max(solved SN, MinimumSN); what the layers are sized for
	Layers           []LayerThickness
	ResidualSN       float64
	Warnings         []string
}

// Design runs the full AASHTO 1993 pipeline: traffic reduction, subgrade
// conversion, Structural Number inversion and greedy layer allocation,
// against the given lookup tables.
func Design(in DesignInput, tables *Tables) (*DesignResult, error) {
	esal, contributions := TotalESAL(in.Counts, tables.EquivalencyFactors)
	if esal <= 0 {
		return nil, fmt.Errorf("traffic survey produced non-positive ESAL %v; at least one rated vehicle class with a positive count is required", esal)
	}

	mr, err := ResilientModulus(in.CBR)
	if err != nil {
		return nil, err
	}

	reliability, ok := tables.ReliabilityFor(in.Classification)
	if !ok {
		return nil, fmt.Errorf("%w %q in reliability table", ErrUnknownClassification, in.Classification)
	}
	serviceability, ok := tables.ServiceabilityFor(in.Classification)
	if !ok {
		return nil, fmt.Errorf("%w %q in serviceability table", ErrUnknownClassification, in.Classification)
	}

	result := &DesignResult{
		ESAL:             esal,
		Contributions:    contributions,
		ResilientModulus: mr,
		Reliability:      reliability,
		Serviceability:   serviceability,
	}

	zr := reliability.Deviate
	if in.ReliabilityPercent > 0 {
		zr, err = DeviateForReliability(in.ReliabilityPercent)
		if err != nil {
			return nil, err
		}
		result.Reliability = ReliabilityLevel{Percent: in.ReliabilityPercent, Deviate: zr}
		if tabulated, err := DeviateForReliability(reliability.Percent); err == nil &&
			math.Abs(tabulated-reliability.Deviate) > deviateMismatchTolerance {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("tabulated deviate %.3f for %s disagrees with exact quantile %.3f",
					reliability.Deviate, in.Classification, tabulated))
		}
	}

	so := in.StandardDeviation
	if so == 0 {
		so = DefaultStandardDeviation
	}

	solver, err := NewSolver(in.Solver, SolverOptions{Tolerance: in.Tolerance, MaxIterations: in.MaxIterations})
	if err != nil {
		return nil, err
	}
	params := EquationParams{MR: mr, SO: so, ZR: zr, DeltaPSI: serviceability.DeltaPSI}
	solution, err := solver.Solve(esal, params)
	if err != nil {
		return nil, err
	}
	result.Solution = solution
	if !solution.Converged {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("solver stopped after %d iterations without converging; SN %.2f is best-effort", solution.Iterations, solution.SN))
	}

	result.RequiredSN = solution.SN
	if minSN, ok := tables.MinimumSNFor(in.Classification); ok {
		result.MinimumSN = minSN
		if solution.SN < minSN {
			result.FloorGoverns = true
			result.RequiredSN = minSN
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("classification minimum SN %.1f governs over solved SN %.2f", minSN, solution.SN))
		}
	} else {
		logrus.Debugf("classification %q carries no minimum SN", in.Classification)
	}

	layers, residual, err := AllocateLayers(result.RequiredSN, tables.Materials)
	if err != nil {
		return nil, err
	}
	result.Layers = layers
	result.ResidualSN = residual
	// Residual can round to a few ULPs above zero when a layer consumes the
	// exact remaining budget; only a materially positive residual is a warning.
	if residual > 1e-9 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("material set left %.2f of SN unallocated; add courses or raise coefficients", residual))
	}

	logrus.Infof("design complete: ESAL=%.2f MR=%.0fpsi SN=%.2f (required %.2f) across %d layers",
		esal, mr, solution.SN, result.RequiredSN, len(layers))
	return result, nil
}
