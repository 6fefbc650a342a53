// Package orchestration runs several multiplication algorithms on the same
// operands concurrently and compares their products. It decouples the
// comparison logic from presentation via the ProgressReporter,
// ResultPresenter and ErrorHandler interfaces.
package orchestration
