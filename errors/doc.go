// Package errors provides structured error types for the ronet codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes rich context: field path,
// Go/wire type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
//		Path("character_information", "name").
//		Detail("need 24 bytes, 7 remaining").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseDecode, path, 24, 7)
//	err := errors.UnknownTag(errors.PhaseDecode, path, 9, "Sex")
//
// All errors implement the standard error interface and support
// errors.Is/As. Two *Error values match under errors.Is when their
// Phase and Kind agree, so sentinel comparisons like
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds})
//
// work without the caller holding the original value.
package errors
