package jon

import "github.com/jonfmt/jon/internal/lex"

// A Span describes a contiguous span of a source input, in bytes.
type Span = lex.Span

// A LineCol describes the line number and byte column offset of a
// location in source text.
type LineCol = lex.LineCol
