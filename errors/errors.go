package errors

import (
	"fmt"
	"strings"
)

// Phase indicates the compilation hook where the error occurred
type Phase string

const (
	PhaseConfig    Phase = "config"    // configuration mutation
	PhaseResolve   Phase = "resolve"   // specifier resolution
	PhaseLoad      Phase = "load"      // source loading
	PhaseTransform Phase = "transform" // content transformation
	PhaseAnalyze   Phase = "analyze"   // dependency analysis
	PhaseFinalize  Phase = "finalize"  // module finalization
	PhaseRender    Phase = "render"    // resource pot rendering
	PhaseGenerate  Phase = "generate"  // resource generation
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindUnknownModuleType Kind = "unknown_module_type"
	KindIO                Kind = "io"
	KindInvalidInput      Kind = "invalid_input"
	KindRender            Kind = "render"
	KindSourceMap         Kind = "sourcemap"
	KindRegistration      Kind = "registration"
)

// Error is the structured error type used throughout the bundler
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Module string
	Pot    string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Module != "" || e.Pot != "" {
		b.WriteString(" at ")
		if e.Module != "" && e.Pot != "" {
			b.WriteString("module ")
			b.WriteString(e.Module)
			b.WriteString(" in pot ")
			b.WriteString(e.Pot)
		} else if e.Module != "" {
			b.WriteString("module ")
			b.WriteString(e.Module)
		} else {
			b.WriteString("pot ")
			b.WriteString(e.Pot)
		}
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

// Module sets the module id the error relates to
func (b *Builder) Module(id string) *Builder {
	b.err.Module = id
	return b
}

// Pot sets the resource pot id the error relates to
func (b *Builder) Pot(id string) *Builder {
	b.err.Pot = id
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

// UnknownModuleType creates an error for a source path whose extension maps to
// no registered module type. Compilation must abort on this condition.
func UnknownModuleType(path string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindUnknownModuleType,
		Module: path,
		Detail: fmt.Sprintf("cannot infer module type from path %q", path),
	}
}

// ReadFailed creates an error for an unreadable module source file
func ReadFailed(id string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindIO,
		Module: id,
		Detail: "read source file",
		Cause:  cause,
	}
}

// RenderFailed creates an error for a resource pot that failed to render
func RenderFailed(potID string, cause error) *Error {
	return &Error{
		Phase:  PhaseRender,
		Kind:   KindRender,
		Pot:    potID,
		Detail: "render resource pot modules",
		Cause:  cause,
	}
}

// SourceMapFailed creates an error for a source map that failed to generate
// or serialize for a resource pot
func SourceMapFailed(potID string, cause error) *Error {
	return &Error{
		Phase:  PhaseRender,
		Kind:   KindSourceMap,
		Pot:    potID,
		Detail: "generate source map",
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

// Registration creates a plugin registration error
func Registration(plugin string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf("register plugin %q", plugin),
		Cause:  cause,
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
