package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/flexpave/flexpave/pave"
)

// WriteXLSX exports the design to a workbook: a Summary sheet with the
// scalar results, a Layers sheet with the thickness table and a Traffic
// sheet with the per-class audit records.
func WriteXLSX(path string, res *pave.DesignResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return fmt.Errorf("renaming summary sheet: %w", err)
	}
	summaryRows := [][]interface{}{
		{"Cumulative ESAL", res.ESAL},
		{"Resilient modulus (psi)", res.ResilientModulus},
		{"Reliability (%)", res.Reliability.Percent},
		{"Standard normal deviate ZR", res.Reliability.Deviate},
		{"Serviceability loss", res.Serviceability.DeltaPSI},
		{"Solved SN", res.Solution.SN},
		{"Required SN", res.RequiredSN},
		{"Solver converged", res.Solution.Converged},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+1, err)
		}
	}

	const layers = "Layers"
	if _, err := f.NewSheet(layers); err != nil {
		return fmt.Errorf("creating layers sheet: %w", err)
	}
	header := []interface{}{"Material", "Thickness (cm)", "Minimum governs"}
	if err := f.SetSheetRow(layers, "A1", &header); err != nil {
		return err
	}
	for i, layer := range res.Layers {
		row := []interface{}{layer.Material, layer.Thickness, layer.Pinned}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(layers, cell, &row); err != nil {
			return fmt.Errorf("writing layer row for %q: %w", layer.Material, err)
		}
	}

	const traffic = "Traffic"
	if _, err := f.NewSheet(traffic); err != nil {
		return fmt.Errorf("creating traffic sheet: %w", err)
	}
	trafficHeader := []interface{}{"Vehicle class", "Count", "Equivalency factor", "ESAL contribution"}
	if err := f.SetSheetRow(traffic, "A1", &trafficHeader); err != nil {
		return err
	}
	for i, c := range res.Contributions {
		row := []interface{}{c.Class, c.Count, c.Factor, c.ESAL}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(traffic, cell, &row); err != nil {
			return fmt.Errorf("writing traffic row for %q: %w", c.Class, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
