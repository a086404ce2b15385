// Package pave implements flexible-pavement structural design per the
// AASHTO 1993 empirical method.
//
// # Reading Guide
//
// Start with these three files to understand the design pipeline:
//   - equation.go: the empirical design equation logW18 and its domain guards
//   - solver.go: numeric inversion of the equation for the Structural Number
//   - design.go: the end-to-end pipeline (traffic → subgrade → solver → layers)
//
// # Architecture
//
// The pipeline is a chain of pure functions over immutable lookup tables:
//
//	TotalESAL + ResilientModulus → Solver.Solve → AllocateLayers
//
// Lookup tables (tables.go) are constructed once via DefaultTables or loaded
// from YAML via LoadTableBundle (config.go) and never mutated afterwards.
// Export of finished designs lives in the pave/report sub-package.
//
// # Key Interfaces
//
// Solver is the single extension point: StepSearchSolver reproduces the
// classical coarse/fine step search (bounded by MaxIterations), while
// BisectionSolver exploits the equation's monotonicity in SN for a
// termination-guaranteed search. Both are selected by name via NewSolver.
package pave
