// Package binmetrics is a memory-bounded evaluation toolkit for binary
// classifiers — exact and binned precision-recall metrics over batched,
// multi-task prediction matrices.
//
// 🚀 What is binmetrics?
//
//	A small, deterministic library that brings together:
//		• Threshold grids: explicit or uniformly spaced bucket boundaries over [0,1]
//		• Quantization: floor-snap of raw scores onto a grid (bounded memory for huge streams)
//		• Exact AUPRC: rank-based area under the precision-recall curve, ties grouped
//		• Binned AUPRC: exact AUPRC of the quantized scores, per task, in one call
//
// ✨ Why choose binmetrics?
//
//   - Predictable – every validation failure is a distinct sentinel error
//   - Batched – [numTasks × batchSize] matrices processed as independent tasks
//   - Pure – no hidden state, no mutation of inputs, no logging in library code
//   - gonum-native – scores and targets travel as gonum/mat containers
//
// Everything is organized under two subpackages plus one command:
//
//	binning/        — threshold resolution + score quantization
//	auprc/          — exact and binned AUPRC engines
//	cmd/binmetrics/ — CSV-in, JSON-out evaluation CLI
//
// Quick sketch of the binned pipeline:
//
//	scores ──quantize──▶ grid values ──sort desc──▶ PR walk ──▶ area
//
// The contract that makes binning safe: binned AUPRC is exactly the exact
// AUPRC of the quantized scores — discretization is a preprocessing step,
// never a different formula.
//
//	go get github.com/quantfold/binmetrics
package binmetrics
