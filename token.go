package jon

import "github.com/jonfmt/jon/internal/lex"

// TokenKind is the type of a lexical token produced by the lexer. The
// kind constants themselves (lex.Eof, lex.Null, lex.Comma, ...) live in
// the internal/lex package rather than here, since several of their
// natural names (Null, True, False) would otherwise collide with this
// package's own Value-level identifiers.
type TokenKind = lex.TokenKind

// A Token is a single lexical token: its kind, undecoded literal payload
// (empty for pure punctuation and keyword tokens), and source Span.
type Token = lex.Token

// TokenStream is the sequence of tokens produced by a single call to Lex.
// It always ends with exactly one Eof token.
type TokenStream = lex.TokenStream

// Lex scans text into a TokenStream, or fails with a *ParseError.
func Lex(text string) (TokenStream, error) { return lex.Lex(text) }
