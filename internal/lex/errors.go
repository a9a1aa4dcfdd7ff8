package lex

// ParseError reports a lexical or syntactic error encountered while
// lexing or parsing jon source text. When Excerpt is set, its Error method
// renders a two-line excerpt of the offending source with a caret pointing
// at the error column; otherwise it renders Msg alone.
//
// The jon package re-exports this type as jon.ParseError (a type alias),
// and the ast package constructs it directly, so that both the lexer and
// the parser report errors through a single concrete type without jon and
// ast needing to import one another.
type ParseError struct {
	Msg  string
	Span Span

	// Excerpt is the pre-rendered "<line>\n<caret line>" diagnostic, built
	// at the point of failure while the source text and line table are
	// still at hand.
	Excerpt string
}

func (e *ParseError) Error() string {
	if e.Excerpt == "" {
		return e.Msg
	}
	return e.Msg + "\n" + e.Excerpt
}
