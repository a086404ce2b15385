package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TrafficSurvey is a YAML traffic survey: per-vehicle-class design-period
// counts plus optional report metadata.
type TrafficSurvey struct {
	Project string           `yaml:"project"`
	Counts  map[string]int64 `yaml:"counts"`
}

// LoadTrafficSurvey reads and parses a YAML traffic survey file. Counts must
// be non-negative; vehicle classes unknown to the equivalency table are
// permitted here and skipped during ESAL reduction.
func LoadTrafficSurvey(path string) (*TrafficSurvey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading traffic survey: %w", err)
	}
	var survey TrafficSurvey
	if err := yaml.Unmarshal(data, &survey); err != nil {
		return nil, fmt.Errorf("parsing traffic survey: %w", err)
	}
	for class, count := range survey.Counts {
		if count < 0 {
			return nil, fmt.Errorf("count for vehicle class %q must be non-negative, got %d", class, count)
		}
	}
	return &survey, nil
}
