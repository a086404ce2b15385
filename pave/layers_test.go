package pave

import (
	"math"
	"math/rand"
	"testing"
)

func TestAllocateLayers_ReferenceScenario(t *testing.T) {
	// SN=8.01 with the reference material table: the asphaltic concrete
	// course absorbs the whole requirement; every other course pins to its
	// minimum and over-satisfies SN (no unallocated residual).
	layers, residual, err := AllocateLayers(8.01, DefaultTables().Materials)
	if err != nil {
		t.Fatalf("AllocateLayers: %v", err)
	}
	want := []struct {
		material  string
		thickness float64
		pinned    bool
	}{
		{"Asphaltic Concrete", 47.12, false},
		{"Aggregate Base", 20.00, true},
		{"Sand-Asphalt Base", 10.00, true},
		{"Soil Subbase", 10.00, true},
	}
	if len(layers) != len(want) {
		t.Fatalf("layer count: got %d, want %d", len(layers), len(want))
	}
	for i, w := range want {
		got := layers[i]
		if got.Material != w.material {
			t.Errorf("layer %d: got material %q, want %q", i, got.Material, w.material)
		}
		if math.Abs(got.Thickness-w.thickness) > 0.005 {
			t.Errorf("%s: thickness %f, want %f", w.material, got.Thickness, w.thickness)
		}
		if got.Pinned != w.pinned {
			t.Errorf("%s: pinned %v, want %v", w.material, got.Pinned, w.pinned)
		}
	}
	if residual > 1e-9 {
		t.Errorf("residual SN = %f, want none", residual)
	}
}

func TestAllocateLayers_EveryThicknessMeetsMinimum(t *testing.T) {
	// For all SN ≥ 0 every output thickness is at least its layer's floor.
	materials := DefaultTables().Materials
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 500; trial++ {
		sn := rng.Float64() * 20
		layers, _, err := AllocateLayers(sn, materials)
		if err != nil {
			t.Fatalf("AllocateLayers(%f): %v", sn, err)
		}
		for i, layer := range layers {
			if layer.Thickness < materials[i].MinThickness {
				t.Fatalf("SN=%f: %s thickness %f below minimum %f",
					sn, layer.Material, layer.Thickness, materials[i].MinThickness)
			}
		}
	}
}

func TestAllocateLayers_OrderGivesEarlierLayersFirstClaim(t *testing.T) {
	// Two zero-minimum layers: the first absorbs the entire budget, the
	// second gets nothing.
	materials := []MaterialLayer{
		{Name: "first", Coefficient: 0.2, MinThickness: 0},
		{Name: "second", Coefficient: 0.1, MinThickness: 0},
	}
	layers, residual, err := AllocateLayers(4.0, materials)
	if err != nil {
		t.Fatalf("AllocateLayers: %v", err)
	}
	if math.Abs(layers[0].Thickness-20.0) > 1e-9 {
		t.Errorf("first layer thickness = %f, want 20.0", layers[0].Thickness)
	}
	if math.Abs(layers[1].Thickness) > 1e-9 {
		t.Errorf("second layer thickness = %f, want 0", layers[1].Thickness)
	}
	if math.Abs(residual) > 1e-9 {
		t.Errorf("residual = %f, want 0", residual)
	}
}

func TestAllocateLayers_PinnedMinimumsDriveResidualNegative(t *testing.T) {
	// A tiny SN against large minimums: every layer pins and the section
	// over-satisfies the requirement (negative residual, by design).
	layers, residual, err := AllocateLayers(0.5, DefaultTables().Materials)
	if err != nil {
		t.Fatalf("AllocateLayers: %v", err)
	}
	for _, layer := range layers {
		if !layer.Pinned {
			t.Errorf("%s: expected minimum to govern at SN=0.5", layer.Material)
		}
	}
	if residual >= 0 {
		t.Errorf("residual = %f, want negative (minimums over-consume)", residual)
	}
}

func TestAllocateLayers_EmptyMaterialSetLeavesFullResidual(t *testing.T) {
	layers, residual, err := AllocateLayers(3.0, nil)
	if err != nil {
		t.Fatalf("AllocateLayers: %v", err)
	}
	if len(layers) != 0 {
		t.Errorf("layers = %v, want none", layers)
	}
	if residual != 3.0 {
		t.Errorf("residual = %f, want 3.0 (nothing could consume the requirement)", residual)
	}
}

func TestAllocateLayers_RejectsNegativeSN(t *testing.T) {
	if _, _, err := AllocateLayers(-0.1, DefaultTables().Materials); err == nil {
		t.Error("expected error for negative SN")
	}
}
