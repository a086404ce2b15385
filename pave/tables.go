package pave

// ReliabilityLevel pairs a design reliability percentage with its standard
// normal deviate ZR. Higher reliability means a more negative deviate, so
// ZR ≤ 0 for every tabulated level.
type ReliabilityLevel struct {
	Percent float64 // design reliability, e.g. 99.9
	Deviate float64 // ZR, e.g. -3.090
}

// ServiceabilityLevel holds the initial and terminal serviceability indices
// for a roadway classification. DeltaPSI is the design serviceability loss
// p0 - pt and is always positive for tabulated levels.
type ServiceabilityLevel struct {
	Initial  float64 // p0
	Terminal float64 // pt
	DeltaPSI float64 // p0 - pt
}

// MaterialLayer describes one pavement course available to the allocator.
// Coefficient is the structural coefficient a_i (SN contributed per cm of
// thickness); MinThickness is the constructability floor in cm.
type MaterialLayer struct {
	Name         string
	Coefficient  float64
	MinThickness float64
}

// Tables is the full immutable set of design lookup tables. Construct once
// at startup (DefaultTables or TableBundle.Tables) and pass into Design;
// nothing in this package mutates a Tables after construction.
//
// Materials is an ordered slice, not a map: the allocator gives earlier
// layers first claim on the SN budget, so iteration order is part of the
// design contract.
type Tables struct {
	Reliability        map[string]ReliabilityLevel
	Serviceability     map[string]ServiceabilityLevel
	Materials          []MaterialLayer
	MinimumSN          map[string]float64
	EquivalencyFactors map[string]float64
}

// ReliabilityFor looks up the reliability level for a roadway
// classification. The second return is false when the classification is not
// tabulated; callers decide whether that is fatal.
func (t *Tables) ReliabilityFor(classification string) (ReliabilityLevel, bool) {
	r, ok := t.Reliability[classification]
	return r, ok
}

// ServiceabilityFor looks up the serviceability level for a roadway
// classification.
func (t *Tables) ServiceabilityFor(classification string) (ServiceabilityLevel, bool) {
	s, ok := t.Serviceability[classification]
	return s, ok
}

// MinimumSNFor looks up the minimum allowed Structural Number for a roadway
// classification. Not every classification carries a floor; absence is not
// an error.
func (t *Tables) MinimumSNFor(classification string) (float64, bool) {
	sn, ok := t.MinimumSN[classification]
	return sn, ok
}

// serviceabilityLevel derives DeltaPSI from p0 and pt so the built-in rows
// and YAML-loaded rows produce bit-identical values.
func serviceabilityLevel(initial, terminal float64) ServiceabilityLevel {
	return ServiceabilityLevel{Initial: initial, Terminal: terminal, DeltaPSI: initial - terminal}
}

// DefaultTables returns the reference design tables. The returned Tables is
// freshly allocated on every call so callers may extend a copy without
// affecting others.
func DefaultTables() *Tables {
	return &Tables{
		Reliability: map[string]ReliabilityLevel{
			"Truck Route": {Percent: 99.9, Deviate: -3.090},
			"Rural-Urban": {Percent: 99.9, Deviate: -3.090},
			"Expressway":  {Percent: 99.9, Deviate: -3.090},
			"Freeway":     {Percent: 99.9, Deviate: -3.090},
			"Main Road":   {Percent: 99.0, Deviate: -2.327},
			"Sector Road": {Percent: 95.0, Deviate: -1.645},
		},
		Serviceability: map[string]ServiceabilityLevel{
			"Truck Route": serviceabilityLevel(4.2, 3.0),
			"Rural-Urban": serviceabilityLevel(4.2, 3.0),
			"Freeway":     serviceabilityLevel(4.2, 3.0),
			"Expressway":  serviceabilityLevel(4.2, 3.0),
			"Main Road":   serviceabilityLevel(4.1, 2.6),
			"Sector Road": serviceabilityLevel(4.0, 2.4),
		},
		Materials: []MaterialLayer{
			{Name: "Asphaltic Concrete", Coefficient: 0.17, MinThickness: 30},
			{Name: "Aggregate Base", Coefficient: 0.05, MinThickness: 20},
			{Name: "Sand-Asphalt Base", Coefficient: 0.08, MinThickness: 10},
			{Name: "Soil Subbase", Coefficient: 0.04, MinThickness: 10},
		},
		MinimumSN: map[string]float64{
			"Truck Route": 7.9,
			"Freeway":     6.9,
			"Expressway":  6.9,
			"Main Road":   4.9,
			"Sector Road": 2.5,
			"Low Volume":  2.0,
		},
		EquivalencyFactors: map[string]float64{
			"Heavy Truck":  6.5,
			"Medium Truck": 1.0,
			"Light Truck":  0.25,
			"Automobile":   0.0008,
		},
	}
}
