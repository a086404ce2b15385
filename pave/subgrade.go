package pave

import "fmt"

// ModulusPerCBR is the empirical scaling from California Bearing Ratio to
// resilient modulus in psi: MR = 1500 * CBR. Kept as a named constant so
// correlation variants can be tested against it.
const ModulusPerCBR = 1500.0

// ResilientModulus converts a subgrade CBR to resilient modulus (psi).
// CBR must be positive: the design equation takes log10(MR) downstream and
// is undefined for MR ≤ 0.
func ResilientModulus(cbr float64) (float64, error) {
	if cbr <= 0 {
		return 0, fmt.Errorf("CBR must be positive, got %v", cbr)
	}
	return ModulusPerCBR * cbr, nil
}
