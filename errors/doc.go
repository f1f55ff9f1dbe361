// Package errors provides structured error types for the assetloader library.
//
// Errors are categorized by Phase (where in the load pipeline the error
// occurred) and Kind (error category). The Error type includes rich context:
// the asset reference, the offending URL or field, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidContainer).
//		Ref("model/asset://props/lantern.glb").
//		Detail("JSON chunk missing").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unresolvable("model/asset://x.glb", "asset://x.glb")
//	err := errors.FetchFailed(url, 404, nil)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
