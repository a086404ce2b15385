package pave

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// DeviateForReliability computes the standard normal deviate ZR for a design
// reliability percentage: the quantile of the standard normal at
// 1 - percent/100. For percent > 50 the result is negative, matching the
// tabulated deviates (higher reliability, more negative ZR).
//
// This backs custom reliability levels outside the fixed classification
// table, and doubles as a consistency check against the table's values.
func DeviateForReliability(percent float64) (float64, error) {
	if percent <= 0 || percent >= 100 {
		return 0, fmt.Errorf("reliability percent must be in (0, 100), got %v", percent)
	}
	return stdNormal.Quantile(1 - percent/100), nil
}
