// Package report exports finished pavement designs as PDF, spreadsheet or
// CSV files. All writers take the same DesignResult and are independent of
// each other; the CLI wires whichever output paths the user asked for.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/flexpave/flexpave/pave"
)

// Meta carries the free-text header fields of a design report.
type Meta struct {
	Project        string
	Author         string
	Classification string
}

// WritePDF renders a one-page design report: header, design summary, the
// layer table and any warnings.
func WritePDF(path string, meta Meta, res *pave.DesignResult) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Flexible Pavement Structural Design")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Roadway classification: %s", meta.Classification))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Design Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Cumulative traffic load: %.2f ESALs", res.ESAL))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Subgrade resilient modulus: %.0f psi", res.ResilientModulus))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Reliability: %.1f%% (ZR = %.3f)", res.Reliability.Percent, res.Reliability.Deviate))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Serviceability loss: %.1f - %.1f = %.1f",
		res.Serviceability.Initial, res.Serviceability.Terminal, res.Serviceability.DeltaPSI))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Structural Number: solved %.2f, required %.2f", res.Solution.SN, res.RequiredSN))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Layer Thicknesses")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, layer := range res.Layers {
		note := ""
		if layer.Pinned {
			note = " (minimum governs)"
		}
		pdf.Cell(0, 6, fmt.Sprintf("%s: %.2f cm%s", layer.Material, layer.Thickness, note))
		pdf.Ln(6)
	}

	if len(res.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Warnings")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, w := range res.Warnings {
			pdf.MultiCell(0, 6, "- "+w, "", "L", false)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF report: %w", err)
	}
	return nil
}
