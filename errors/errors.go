package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompile  Phase = "compile"  // schema compilation
	PhaseEncode   Phase = "encode"   // value to wire bytes
	PhaseDecode   Phase = "decode"   // wire bytes to value
	PhaseDispatch Phase = "dispatch" // envelope header handling
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds      Kind = "out_of_bounds"
	KindUnknownTag       Kind = "unknown_tag"
	KindMismatchedHeader Kind = "mismatched_header"
	KindMalformedLength  Kind = "malformed_length"
	KindOverflow         Kind = "overflow"
	KindInvalidData      Kind = "invalid_data"
	KindUnsupported      Kind = "unsupported"
	KindNilPointer       Kind = "nil_pointer"
	KindFieldUnknown     Kind = "field_unknown"
	KindRegistration     Kind = "registration"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	WireType string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.WireType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WireType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", wire type ")
			b.WriteString(e.WireType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("wire type ")
			b.WriteString(e.WireType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WireType != "" {
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

// WithField returns a copy of the error with name prepended to its
// field path. Used when a nested decode failure bubbles up through an
// enclosing struct.
func (e *Error) WithField(name string) *Error {
	clone := *e
	clone.Path = append([]string{name}, e.Path...)
	return &clone
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WireType sets the wire type name
func (b *Builder) WireType(t string) *Builder {
	b.err.WireType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// OutOfBounds creates an out of bounds error for a read past the end
// of the buffer region.
func OutOfBounds(phase Phase, path []string, want, remaining int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("need %d bytes, %d remaining", want, remaining),
		Value:  want,
	}
}

// UnknownTag creates an unknown tag error for an enum wire value with
// no declared variant.
func UnknownTag(phase Phase, path []string, value uint64, enumType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindUnknownTag,
		Path:     path,
		WireType: enumType,
		Detail:   fmt.Sprintf("wire value %d has no declared variant", value),
		Value:    value,
	}
}

// MismatchedHeader creates a header mismatch error. Signals protocol
// desync: the stream carried a different packet than the caller
// expected.
func MismatchedHeader(want, got uint16) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindMismatchedHeader,
		Detail: fmt.Sprintf("expected header 0x%04X, stream has 0x%04X", want, got),
		Value:  got,
	}
}

// MalformedLength creates an error for a self-described packet length
// that is inconsistent with the packet's declared fields.
func MalformedLength(path []string, detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedLength,
		Path:   path,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindOverflow,
		Path:     path,
		WireType: targetType,
		Detail:   fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:    value,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		GoType: goType,
		Detail: "nil pointer",
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// FieldUnknown creates an unknown field reference error, raised when a
// length policy names a field that does not precede it.
func FieldUnknown(path []string, fieldName string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindFieldUnknown,
		Path:   path,
		Detail: fmt.Sprintf("unknown field %q", fieldName),
	}
}

// Registration creates a registration error
func Registration(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
