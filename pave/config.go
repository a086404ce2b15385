package pave

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TableBundle holds design-table overrides, loadable from a YAML file.
// Empty sections mean "keep the built-in reference table" — they do not
// clear it. A non-empty materials list replaces the built-in ordered list
// wholesale, since allocation order is part of the contract.
type TableBundle struct {
	Reliability        []ReliabilityEntry    `yaml:"reliability"`
	Serviceability     []ServiceabilityEntry `yaml:"serviceability"`
	Materials          []MaterialEntry       `yaml:"materials"`
	MinimumSN          map[string]float64    `yaml:"minimum_sn"`
	EquivalencyFactors map[string]float64    `yaml:"equivalency_factors"`
}

// ReliabilityEntry is one row of the reliability override table.
type ReliabilityEntry struct {
	Classification string  `yaml:"classification"`
	Percent        float64 `yaml:"percent"`
	Deviate        float64 `yaml:"deviate"`
}

// ServiceabilityEntry is one row of the serviceability override table.
// DeltaPSI is derived as initial - terminal.
type ServiceabilityEntry struct {
	Classification string  `yaml:"classification"`
	Initial        float64 `yaml:"initial"`
	Terminal       float64 `yaml:"terminal"`
}

// MaterialEntry is one row of the material override table, in allocation
// order.
type MaterialEntry struct {
	Name           string  `yaml:"name"`
	Coefficient    float64 `yaml:"coefficient"`
	MinThicknessCm float64 `yaml:"min_thickness_cm"`
}

// LoadTableBundle reads and parses a YAML design-table override file.
func LoadTableBundle(path string) (*TableBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table config: %w", err)
	}
	var bundle TableBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing table config: %w", err)
	}
	return &bundle, nil
}

// Validate checks every override row against the table invariants: ZR ≤ 0,
// p0 > pt > 0, positive structural coefficients, non-negative thickness
// floors, positive minimum SNs and equivalency factors.
func (b *TableBundle) Validate() error {
	for _, r := range b.Reliability {
		if r.Classification == "" {
			return fmt.Errorf("reliability entry missing classification")
		}
		if r.Percent <= 0 || r.Percent >= 100 {
			return fmt.Errorf("reliability percent for %q must be in (0, 100), got %v", r.Classification, r.Percent)
		}
		if r.Deviate > 0 {
			return fmt.Errorf("reliability deviate for %q must be ≤ 0, got %v", r.Classification, r.Deviate)
		}
	}
	for _, s := range b.Serviceability {
		if s.Classification == "" {
			return fmt.Errorf("serviceability entry missing classification")
		}
		if s.Terminal <= 0 || s.Initial <= s.Terminal {
			return fmt.Errorf("serviceability for %q must satisfy p0 > pt > 0, got p0=%v pt=%v",
				s.Classification, s.Initial, s.Terminal)
		}
	}
	seen := make(map[string]bool, len(b.Materials))
	for _, m := range b.Materials {
		if m.Name == "" {
			return fmt.Errorf("material entry missing name")
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate material %q", m.Name)
		}
		seen[m.Name] = true
		if m.Coefficient <= 0 {
			return fmt.Errorf("structural coefficient for %q must be positive, got %v", m.Name, m.Coefficient)
		}
		if m.MinThicknessCm < 0 {
			return fmt.Errorf("minimum thickness for %q must be non-negative, got %v", m.Name, m.MinThicknessCm)
		}
	}
	for class, sn := range b.MinimumSN {
		if sn <= 0 {
			return fmt.Errorf("minimum SN for %q must be positive, got %v", class, sn)
		}
	}
	for class, factor := range b.EquivalencyFactors {
		if factor <= 0 {
			return fmt.Errorf("equivalency factor for %q must be positive, got %v", class, factor)
		}
	}
	return nil
}

// Tables materializes the bundle over the built-in reference tables:
// row-level merge for the keyed tables, wholesale replacement for the
// ordered material list.
func (b *TableBundle) Tables() (*Tables, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	t := DefaultTables()
	for _, r := range b.Reliability {
		t.Reliability[r.Classification] = ReliabilityLevel{Percent: r.Percent, Deviate: r.Deviate}
	}
	for _, s := range b.Serviceability {
		t.Serviceability[s.Classification] = ServiceabilityLevel{
			Initial:  s.Initial,
			Terminal: s.Terminal,
			DeltaPSI: s.Initial - s.Terminal,
		}
	}
	if len(b.Materials) > 0 {
		t.Materials = make([]MaterialLayer, 0, len(b.Materials))
		for _, m := range b.Materials {
			t.Materials = append(t.Materials, MaterialLayer{
				Name:         m.Name,
				Coefficient:  m.Coefficient,
				MinThickness: m.MinThicknessCm,
			})
		}
	}
	for class, sn := range b.MinimumSN {
		t.MinimumSN[class] = sn
	}
	for class, factor := range b.EquivalencyFactors {
		t.EquivalencyFactors[class] = factor
	}
	return t, nil
}
