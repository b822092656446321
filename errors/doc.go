// Package errors provides structured error types for the farm-bundler library.
//
// Errors are categorized by Phase (the compilation hook where the error occurred)
// and Kind (error category). The Error type includes rich context: the module or
// resource pot involved and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRender, errors.KindSourceMap).
//		Pot("FARM_RUNTIME").
//		Detail("serialize source map").
//		Cause(cause).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownModuleType("src/index.vue")
//	err := errors.RenderFailed(potID, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// A hook that merely declines to handle its input never produces an Error; it
// returns a nil result instead.
package errors
