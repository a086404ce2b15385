package pave

import (
	"fmt"
	"math"
)

// ServiceabilitySpan is the fixed AASHTO serviceability span 4.2 - 1.5 that
// normalizes the design serviceability loss term.
const ServiceabilitySpan = 2.7

// EquationParams bundles the fixed inputs of the design equation: everything
// except the Structural Number itself.
type EquationParams struct {
	MR       float64 // subgrade resilient modulus, psi (> 0)
	SO       float64 // combined standard error of traffic and performance prediction
	ZR       float64 // standard normal deviate for the design reliability (≤ 0)
	DeltaPSI float64 // design serviceability loss p0 - pt (> 0)
}

// Validate checks the equation's domain preconditions that do not involve SN.
func (p EquationParams) Validate() error {
	if p.MR <= 0 {
		return fmt.Errorf("resilient modulus must be positive, got %v", p.MR)
	}
	if p.DeltaPSI <= 0 {
		return fmt.Errorf("serviceability loss must be positive, got %v", p.DeltaPSI)
	}
	return nil
}

// LogW18 evaluates the AASHTO 1993 flexible-pavement design equation: the
// base-10 logarithm of the 18-kip ESAL capacity predicted for a pavement of
// Structural Number sn under params p.
//
// The function is monotonically increasing in sn over sn ≥ 0 for realistic
// parameter ranges, which is what the solvers in this package rely on.
// sn ≤ -1 is rejected up front: sn = -1 makes the log10 term and the
// curvature denominator both blow up.
func LogW18(sn float64, p EquationParams) (float64, error) {
	if sn <= -1 {
		return 0, fmt.Errorf("structural number must be greater than -1, got %v", sn)
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	term1 := p.ZR * p.SO
	term2 := 9.36*math.Log10(sn+1) - 0.20
	term3 := math.Log10(p.DeltaPSI / ServiceabilitySpan)
	term4 := 2.32*math.Log10(p.MR) - 8.07
	term5 := 0.40 + 1094/math.Pow(sn+1, 5.19)
	return term1 + term2 + term3/term5 + term4, nil
}
