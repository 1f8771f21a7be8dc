// Package timebound solves time-bounded resource-optimization problems with a
// shared, memoized branch-and-bound engine.
//
// 🚀 What is inside?
//
//	Two problem families share one search core:
//		• Flow networks: open nodes with a per-minute rate before a deadline,
//		  alone or with a second agent splitting the work
//		• Recipe books: build production units from stocked resources to
//		  maximize a scored resource at the deadline
//
// Packages:
//
//	core/        Network, Cookbook, Mask and Resources value types
//	distance/    all-pairs step counts over a Network
//	search/      generic Engine with memo and bound pruning strategies
//	partition/   two-agent split enumeration and parallel best-split search
//	valve/       flow-network planner (Solve, SolvePair)
//	recipe/      build-order planner (Solve, QualitySum, TopProduct)
//	metrics/     Prometheus export of search statistics
//
// The timebound command (cmd/timebound) runs both planners over YAML instances.
package timebound
