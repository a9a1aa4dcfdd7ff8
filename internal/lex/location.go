package lex

// A Span describes a contiguous span of a source input, in bytes.
type Span struct {
	Pos int // the start offset, 0-based
	Len int // the length in bytes
}

// End returns the noninclusive end offset of the span.
func (s Span) End() int { return s.Pos + s.Len }

// A LineCol describes the line number and byte column offset of a location
// in source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}
