package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flexpave/flexpave/pave"
	"github.com/flexpave/flexpave/pave/report"
)

var (
	// CLI flags for the design inputs
	logLevel       string           // Log verbosity level
	cbr            float64          // Subgrade California Bearing Ratio
	classification string           // Roadway classification key
	counts         map[string]int64 // Per-class vehicle counts from --count flags
	trafficPath    string           // YAML traffic survey path (overrides --count)
	tablesPath     string           // YAML design-table overrides path

	// CLI flags for the solver
	solverName        string  // step-search or bisection
	tolerance         float64 // log10-scale convergence tolerance
	maxIterations     int     // solver iteration bound
	standardDeviation float64 // combined standard error SO
	reliabilityPct    float64 // custom reliability percent (0 = use table)

	// CLI flags for report output
	pdfPath  string // PDF report output path
	xlsxPath string // Workbook output path
	csvPath  string // CSV layer table output path
	project  string // Project name on the report header
	author   string // Author name on the report header
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "flexpave",
	Short: "AASHTO 1993 flexible-pavement structural design",
}

// designCmd runs one pavement design using parameters from CLI flags
var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Compute the required Structural Number and layer thicknesses",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		tables := pave.DefaultTables()
		if tablesPath != "" {
			bundle, err := pave.LoadTableBundle(tablesPath)
			if err != nil {
				logrus.Fatalf("Could not load design tables: %v", err)
			}
			tables, err = bundle.Tables()
			if err != nil {
				logrus.Fatalf("Invalid design tables: %v", err)
			}
		}

		surveyCounts := counts
		if trafficPath != "" {
			survey, err := LoadTrafficSurvey(trafficPath)
			if err != nil {
				logrus.Fatalf("Could not load traffic survey: %v", err)
			}
			surveyCounts = survey.Counts
			if survey.Project != "" && project == "" {
				project = survey.Project
			}
		}
		if len(surveyCounts) == 0 {
			logrus.Fatalf("No vehicle counts provided; use --count or --traffic")
		}

		input := pave.DesignInput{
			Counts:             surveyCounts,
			CBR:                cbr,
			Classification:     classification,
			StandardDeviation:  standardDeviation,
			ReliabilityPercent: reliabilityPct,
			Solver:             solverName,
			Tolerance:          tolerance,
			MaxIterations:      maxIterations,
		}
		result, err := pave.Design(input, tables)
		if err != nil {
			logrus.Fatalf("Design failed: %v", err)
		}

		printResult(result)

		meta := report.Meta{Project: project, Author: author, Classification: classification}
		if pdfPath != "" {
			if err := report.WritePDF(pdfPath, meta, result); err != nil {
				logrus.Fatalf("PDF export failed: %v", err)
			}
			logrus.Infof("Wrote PDF report to %s", pdfPath)
		}
		if xlsxPath != "" {
			if err := report.WriteXLSX(xlsxPath, result); err != nil {
				logrus.Fatalf("Workbook export failed: %v", err)
			}
			logrus.Infof("Wrote workbook to %s", xlsxPath)
		}
		if csvPath != "" {
			if err := report.WriteCSV(csvPath, result); err != nil {
				logrus.Fatalf("CSV export failed: %v", err)
			}
			logrus.Infof("Wrote layer table to %s", csvPath)
		}
	},
}

// printResult writes the design outcome to stdout, 2 decimals for display.
func printResult(res *pave.DesignResult) {
	fmt.Println("Traffic:")
	for _, c := range res.Contributions {
		fmt.Printf("  %-14s count=%-12d factor=%-7.4f ESAL=%.2f\n", c.Class, c.Count, c.Factor, c.ESAL)
	}
	fmt.Printf("Total ESAL:          %.2f\n", res.ESAL)
	fmt.Printf("Resilient modulus:   %.0f psi\n", res.ResilientModulus)
	fmt.Printf("Reliability:         %.1f%% (ZR=%.3f)\n", res.Reliability.Percent, res.Reliability.Deviate)
	fmt.Printf("Serviceability loss: %.1f\n", res.Serviceability.DeltaPSI)
	fmt.Printf("Structural Number:   %.2f", res.Solution.SN)
	if res.FloorGoverns {
		fmt.Printf(" (classification minimum %.1f governs)", res.MinimumSN)
	}
	fmt.Println()
	fmt.Println("Layers:")
	for _, layer := range res.Layers {
		note := ""
		if layer.Pinned {
			note = "  (minimum)"
		}
		fmt.Printf("  %-18s %.2f cm%s\n", layer.Material, layer.Thickness, note)
	}
	for _, w := range res.Warnings {
		fmt.Printf("WARNING: %s\n", w)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	designCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Design inputs
	designCmd.Flags().Float64Var(&cbr, "cbr", 0, "Subgrade California Bearing Ratio (required, > 0)")
	designCmd.Flags().StringVar(&classification, "class", "", "Roadway classification (e.g. \"Truck Route\", \"Main Road\")")
	designCmd.Flags().StringToInt64Var(&counts, "count", nil, "Vehicle counts as class=count (repeatable)")
	designCmd.Flags().StringVar(&trafficPath, "traffic", "", "YAML traffic survey file (overrides --count)")
	designCmd.Flags().StringVar(&tablesPath, "tables", "", "YAML design-table overrides file")

	// Solver configuration
	designCmd.Flags().StringVar(&solverName, "solver", "step-search", "Structural Number solver (step-search, bisection)")
	designCmd.Flags().Float64Var(&tolerance, "tolerance", pave.DefaultTolerance, "Convergence tolerance on the log10(W18) scale")
	designCmd.Flags().IntVar(&maxIterations, "max-iterations", pave.DefaultMaxIterations, "Solver iteration bound")
	designCmd.Flags().Float64Var(&standardDeviation, "so", pave.DefaultStandardDeviation, "Combined standard error of traffic and performance prediction")
	designCmd.Flags().Float64Var(&reliabilityPct, "reliability", 0, "Custom reliability percent (0 = use the classification table)")

	// Report output
	designCmd.Flags().StringVar(&pdfPath, "pdf", "", "Write a PDF design report to this path")
	designCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write a design workbook to this path")
	designCmd.Flags().StringVar(&csvPath, "csv", "", "Write the layer table CSV to this path")
	designCmd.Flags().StringVar(&project, "project", "", "Project name for the report header")
	designCmd.Flags().StringVar(&author, "author", "", "Author name for the report header")

	cobra.CheckErr(designCmd.MarkFlagRequired("cbr"))
	cobra.CheckErr(designCmd.MarkFlagRequired("class"))

	// Attach `design` as a subcommand to `root`
	rootCmd.AddCommand(designCmd)
}
