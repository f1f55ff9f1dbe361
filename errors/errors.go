package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the load pipeline the error occurred
type Phase string

const (
	PhaseResolve Phase = "resolve" // reference to URL resolution
	PhaseFetch   Phase = "fetch"   // byte retrieval
	PhaseDecode  Phase = "decode"  // container decoding
	PhaseView    Phase = "view"    // kind-specific view construction
	PhaseLoad    Phase = "load"    // cache orchestration
	PhaseConfig  Phase = "config"  // configuration parsing
)

// Kind categorizes the error
type Kind string

const (
	KindUnresolvable     Kind = "unresolvable"      // locator has no fetchable address
	KindFetchFailed      Kind = "fetch_failed"      // transport or status failure
	KindUnsupportedKind  Kind = "unsupported_kind"  // caller requested an unhandled asset kind
	KindInvalidContainer Kind = "invalid_container" // malformed container bytes
	KindMissingAnimation Kind = "missing_animation" // emote container without a clip
	KindMissingBone      Kind = "missing_bone"      // retarget target bone cannot be mapped
	KindInvalidData      Kind = "invalid_data"
	KindInvalidInput     Kind = "invalid_input"
	KindNotFound         Kind = "not_found"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Ref    string // asset reference key, if known
	URL    string // resolved address, if known
	Status int    // HTTP-equivalent status, if any
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Ref != "" {
		b.WriteString(" for ")
		b.WriteString(e.Ref)
	}

	if e.URL != "" {
		b.WriteString(" at ")
		b.WriteString(e.URL)
	}

	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
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

// Ref sets the asset reference key
func (b *Builder) Ref(ref string) *Builder {
	b.err.Ref = ref
	return b
}

// URL sets the resolved address
func (b *Builder) URL(url string) *Builder {
	b.err.URL = url
	return b
}

// Status sets the HTTP-equivalent status code
func (b *Builder) Status(code int) *Builder {
	b.err.Status = code
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

// Unresolvable creates an error for a locator with no fetchable address
func Unresolvable(ref, locator string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindUnresolvable,
		Ref:    ref,
		Detail: fmt.Sprintf("locator %q cannot be resolved to an address", locator),
		Value:  locator,
	}
}

// FetchFailed creates a transport or status failure error.
// status is zero when the failure happened before a response arrived.
func FetchFailed(url string, status int, cause error) *Error {
	return &Error{
		Phase:  PhaseFetch,
		Kind:   KindFetchFailed,
		URL:    url,
		Status: status,
		Cause:  cause,
	}
}

// UnsupportedKind creates an error carrying the offending kind string
func UnsupportedKind(kind string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindUnsupportedKind,
		Detail: fmt.Sprintf("unsupported asset kind %q", kind),
		Value:  kind,
	}
}

// InvalidContainer creates a malformed container error
func InvalidContainer(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidContainer,
		Detail: detail,
		Cause:  cause,
	}
}

// MissingAnimation creates an error for an emote container without a clip
func MissingAnimation(ref string) *Error {
	return &Error{
		Phase:  PhaseView,
		Kind:   KindMissingAnimation,
		Ref:    ref,
		Detail: "container holds no animation clips",
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

// NotFound creates a not found error
func NotFound(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: what,
	}
}
