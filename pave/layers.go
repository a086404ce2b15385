package pave

import "fmt"

// LayerThickness is the allocator's output for one material course.
// Pinned is true when the minimum-thickness floor governed instead of the
// remaining SN demand.
type LayerThickness struct {
	Material  string
	Thickness float64 // cm
	Pinned    bool
}

// AllocateLayers distributes a solved Structural Number across the material
// courses, in slice order. Each layer takes the larger of its minimum
// thickness and remaining/a_i, then charges a_i*thickness against the
// remaining budget.
//
// Order matters: earlier layers get first claim on the budget. A layer
// pinned to its minimum still spends a_i*min of SN, which can drive the
// remainder negative — later layers then simply pin to their minimums and
// the section over-satisfies SN. The returned residual is the remaining SN
// after all layers; a positive residual means the material set could not
// absorb the full requirement, which is a reportable deficiency but not an
// error.
func AllocateLayers(sn float64, layers []MaterialLayer) ([]LayerThickness, float64, error) {
	if sn < 0 {
		return nil, 0, fmt.Errorf("structural number must be non-negative, got %v", sn)
	}
	result := make([]LayerThickness, 0, len(layers))
	remaining := sn
	for _, layer := range layers {
		demanded := remaining / layer.Coefficient
		thickness := demanded
		pinned := false
		if thickness < layer.MinThickness {
			thickness = layer.MinThickness
			pinned = true
		}
		remaining -= layer.Coefficient * thickness
		result = append(result, LayerThickness{Material: layer.Name, Thickness: thickness, Pinned: pinned})
	}
	return result, remaining, nil
}
