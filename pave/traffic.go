package pave

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// ClassContribution is the per-vehicle-class audit record produced alongside
// the ESAL total: class name, surveyed count, equivalency factor and the
// resulting contribution count*factor.
type ClassContribution struct {
	Class  string
	Count  int64
	Factor float64
	ESAL   float64
}

// TotalESAL reduces a traffic survey to the cumulative Equivalent Single
// Axle Load: the sum of count*factor over every vehicle class present in
// both maps. Classes counted in the survey but missing from the factor
// table are skipped, not errored — a survey may count classes the design
// method does not load-rate. Counts in the hundreds of millions are normal;
// all arithmetic is float64.
//
// The returned audit slice is sorted by class name so output is
// deterministic regardless of map iteration order.
func TotalESAL(counts map[string]int64, factors map[string]float64) (float64, []ClassContribution) {
	total := 0.0
	audit := make([]ClassContribution, 0, len(counts))
	for class, count := range counts {
		factor, ok := factors[class]
		if !ok {
			logrus.Debugf("vehicle class %q has no equivalency factor, skipping", class)
			continue
		}
		contribution := float64(count) * factor
		total += contribution
		audit = append(audit, ClassContribution{Class: class, Count: count, Factor: factor, ESAL: contribution})
	}
	sort.Slice(audit, func(i, j int) bool { return audit[i].Class < audit[j].Class })
	return total, audit
}
