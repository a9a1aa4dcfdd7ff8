package jon

import (
	"fmt"

	"github.com/jonfmt/jon/internal/lex"
)

// ParseError reports a lexical or syntactic error encountered while lexing
// or parsing jon source text, or while resolving $name references. For
// lexer and parser errors its Error method renders a two-line excerpt of
// the offending source with a caret pointing at the error column;
// reference-resolution errors carry no excerpt and render the message
// alone.
//
// This is a type alias for the internal lexer package's error type, so
// that both the lexer and the ast parser can construct *ParseError values
// directly without an import cycle through this package.
type ParseError = lex.ParseError

// TypeError reports that a Value was accessed, indexed, or used as an object
// key with the wrong runtime type.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return "type error: " + e.Msg }

// OutOfRange reports a missing object key on At, or an out-of-bounds index
// on AtIndex.
type OutOfRange struct {
	Msg string
}

func (e *OutOfRange) Error() string { return "out of range: " + e.Msg }

// InvalidSchema reports that a schema value itself is structurally wrong
// (unknown type name, misshapen keyword value, empty type list, ...).
type InvalidSchema struct {
	Msg  string
	Path string
}

func (e *InvalidSchema) Error() string {
	return fmt.Sprintf("invalid schema: %s %q", e.Msg, e.Path)
}

// ValidationError promotes a Validate report into an error. Validate itself
// never returns one; it exists for callers that want to treat a nonconforming
// instance as a Go error rather than inspect the report tree directly.
type ValidationError struct {
	Report Value
}

func (e *ValidationError) Error() string {
	return "validation failed: " + Dump(ToErrorList(e.Report), CompactIndent())
}

// FromReport wraps report in a *ValidationError if it is non-Null, or returns
// nil if report represents a conforming instance.
func FromReport(report Value) error {
	if report.IsNull() {
		return nil
	}
	return &ValidationError{Report: report}
}
