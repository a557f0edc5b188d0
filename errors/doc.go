// Package errors provides structured error types for the smallbox library.
//
// Errors are categorized by Phase (where in the storage lifecycle the error
// occurred) and Kind (error category). The Error type carries the stored and
// requested type names and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBorrow, errors.KindTypeMismatch).
//		StoredType("main.big").
//		WantType("int64").
//		Detail("cell holds a different payload").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseBorrow, "main.big", "int64")
//	err := errors.Released(errors.PhaseExtract, "main.big")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
