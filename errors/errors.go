package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which runtime layer raised the error
type Phase string

const (
	PhaseHeap      Phase = "heap"      // handle allocation and release
	PhaseSlice     Phase = "slice"     // slice construction and indexing
	PhaseMap       Phase = "map"       // ordered map access and iteration
	PhaseRuntime   Phase = "runtime"   // panic propagation and goroutines
	PhaseDecode    Phase = "decode"    // UTF-16 text interop
	PhaseBootstrap Phase = "bootstrap" // process startup and shutdown
	PhaseToolchain Phase = "toolchain" // build helpers
	PhaseConfig    Phase = "config"    // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindAllocation             Kind = "allocation"
	KindOutOfBounds            Kind = "out_of_bounds"
	KindDoubleRelease          Kind = "double_release"
	KindNilHandle              Kind = "nil_handle"
	KindDangling               Kind = "dangling_handle"
	KindConcurrentModification Kind = "concurrent_modification"
	KindInvalidUTF16           Kind = "invalid_utf16"
	KindPanic                  Kind = "panic"
	KindNotFound               Kind = "not_found"
	KindInvalidInput           Kind = "invalid_input"
	KindIO                     Kind = "io"
	KindCommandFailed          Kind = "command_failed"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
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

	if e.Detail != "" {
		b.WriteString(": ")
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

// Message is a user-raised error whose description is the message itself.
// It is what generated code panics with for `panic("...")`.
type Message string

func (m Message) Error() string {
	return string(m)
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

// Path sets the access path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
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

// AllocationFailed creates an allocation failure error for count elements of size bytes
func AllocationFailed(phase Phase, count int, size uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("memory allocation failed: %d x %d bytes", count, size),
	}
}

// OutOfBounds creates an index out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// SliceBounds creates an error for an invalid [lo:hi] range
func SliceBounds(phase Phase, lo, hi, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("slice bounds [%d:%d] out of range (length %d)", lo, hi, length),
		Value:  [2]int{lo, hi},
	}
}

// DoubleRelease creates an error for releasing a handle past zero
func DoubleRelease(phase Phase, handle uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDoubleRelease,
		Detail: fmt.Sprintf("handle %d released more times than retained", handle),
		Value:  handle,
	}
}

// Dangling creates an error for using a handle whose allocation was already destroyed
func Dangling(phase Phase, handle uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDangling,
		Detail: fmt.Sprintf("handle %d used after release", handle),
		Value:  handle,
	}
}

// NilHandle creates an error for dereferencing the nil handle
func NilHandle(phase Phase, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilHandle,
		Detail: fmt.Sprintf("nil %s dereference", goType),
	}
}

// ConcurrentModification creates an error for mutating a container while it is iterated
func ConcurrentModification(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindConcurrentModification,
		Detail: fmt.Sprintf("%s during iteration", what),
	}
}

// Recovered wraps a panic value that is not an error
func Recovered(value any) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindPanic,
		Detail: fmt.Sprint(value),
		Value:  value,
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

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
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

// CommandFailed creates an error for an external command that exited non-zero
func CommandFailed(command string, status int, cause error) *Error {
	return &Error{
		Phase:  PhaseToolchain,
		Kind:   KindCommandFailed,
		Detail: fmt.Sprintf("%q exited with status %d", command, status),
		Value:  status,
		Cause:  cause,
	}
}
