package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the storage lifecycle the error occurred
type Phase string

const (
	PhaseStore   Phase = "store"   // moving a value into storage
	PhaseBorrow  Phase = "borrow"  // non-owning access
	PhaseExtract Phase = "extract" // owning extraction
	PhaseErase   Phase = "erase"   // stripping the type marker
	PhaseAdopt   Phase = "adopt"   // reasserting a type over erased storage
	PhaseClose   Phase = "close"   // teardown
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch Kind = "type_mismatch"
	KindReleased     Kind = "released"
	KindUnsupported  Kind = "unsupported"
	KindLeak         Kind = "leak"
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause      error
	Phase      Phase
	Kind       Kind
	StoredType string
	WantType   string
	Detail     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.StoredType != "" || e.WantType != "" {
		b.WriteString(": ")
		if e.StoredType != "" && e.WantType != "" {
			b.WriteString("stored ")
			b.WriteString(e.StoredType)
			b.WriteString(", requested ")
			b.WriteString(e.WantType)
		} else if e.StoredType != "" {
			b.WriteString("stored ")
			b.WriteString(e.StoredType)
		} else {
			b.WriteString("requested ")
			b.WriteString(e.WantType)
		}
	}

	if e.Detail != "" {
		if e.StoredType != "" || e.WantType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// StoredType sets the type the storage was created with
func (b *Builder) StoredType(t string) *Builder {
	b.err.StoredType = t
	return b
}

// WantType sets the type the caller supplied
func (b *Builder) WantType(t string) *Builder {
	b.err.WantType = t
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, stored, want string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindTypeMismatch,
		StoredType: stored,
		WantType:   want,
	}
}

// Released creates a use-after-consume error
func Released(phase Phase, stored string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindReleased,
		StoredType: stored,
		Detail:     "storage already consumed",
	}
}

// Unsupported creates an unsupported payload error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Leak creates an error reporting storages that were never consumed
func Leak(count int) *Error {
	return &Error{
		Phase:  PhaseClose,
		Kind:   KindLeak,
		Detail: fmt.Sprintf("%d live storage(s) never extracted or adopted", count),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}
