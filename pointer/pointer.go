// Package pointer implements JSON-Pointer-like path strings used to locate
// values inside a document: a leading "/" followed by "/"-separated steps,
// each either an object member name or a decimal array index.
//
// The grammar is adapted from RFC 6901: "~1" decodes to "/" and "~0"
// decodes to "~" within a step, and the same substitutions are applied in
// reverse when rendering a Path back to its string form.
package pointer

import (
	"strconv"
	"strings"
)

// A Step is one component of a Path: either a string object-member name or
// an integer array index. Exactly one of Name or IsIndex applies; Index is
// meaningful only when IsIndex is true.
type Step struct {
	Name    string
	Index   int
	IsIndex bool
}

// Member returns a string-keyed Step.
func Member(name string) Step { return Step{Name: name} }

// Elem returns an integer-indexed Step.
func Elem(i int) Step { return Step{Index: i, IsIndex: true} }

func (s Step) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return escapeStep(s.Name)
}

// A Path is a sequence of Steps locating a value relative to a document
// root. The empty Path refers to the root itself.
type Path []Step

// Parse parses s, which must either be empty (the root path) or begin with
// "/". Each step between slashes is unescaped and, if it parses as a
// sequence of ASCII digits (with no leading zero unless the step is
// exactly "0"), taken as an array index; otherwise it is a member name.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}
	if s[0] != '/' {
		return nil, &SyntaxError{Msg: "pointer path must be empty or start with '/'", Path: s}
	}
	parts := strings.Split(s[1:], "/")
	path := make(Path, len(parts))
	for i, raw := range parts {
		tok := unescapeStep(raw)
		if n, ok := parseIndex(tok); ok {
			path[i] = Elem(n)
		} else {
			path[i] = Member(tok)
		}
	}
	return path, nil
}

func parseIndex(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	if tok != "0" && tok[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}

// String renders p in its canonical "/a/0/b" form. The root Path renders
// as the empty string.
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

// Append returns a new Path with step appended, leaving p unmodified.
func (p Path) Append(step Step) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = step
	return out
}

func escapeStep(name string) string {
	if !strings.ContainsAny(name, "~/") {
		return name
	}
	name = strings.ReplaceAll(name, "~", "~0")
	name = strings.ReplaceAll(name, "/", "~1")
	return name
}

func unescapeStep(raw string) string {
	if !strings.Contains(raw, "~") {
		return raw
	}
	raw = strings.ReplaceAll(raw, "~1", "/")
	raw = strings.ReplaceAll(raw, "~0", "~")
	return raw
}

// SyntaxError reports a malformed pointer path string.
type SyntaxError struct {
	Msg  string
	Path string
}

func (e *SyntaxError) Error() string {
	return e.Msg + ": " + strconv.Quote(e.Path)
}
