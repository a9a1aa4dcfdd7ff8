package lex_test

import (
	"testing"

	"github.com/jonfmt/jon/internal/lex"
)

func TestLexPunctAndNewlines(t *testing.T) {
	toks, err := lex.Lex("{ } [ ] , :\n")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	want := []lex.TokenKind{
		lex.LBrace, lex.RBrace, lex.LBracket, lex.RBracket,
		lex.Comma, lex.Colon, lex.NL, lex.Eof,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexComments(t *testing.T) {
	toks, err := lex.Lex("// line comment\n/* block /* nested */ still */ 1")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	// The leading line comment consumes up to its newline, which itself
	// produces an NL token; the nested block comment is skipped whole.
	var kinds []lex.TokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []lex.TokenKind{lex.NL, lex.DecInt, lex.Eof}
	if len(kinds) != len(want) {
		t.Fatalf("got kinds %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kind %d: got %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestLexStrings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"simple", `'hello'`, "hello"},
		{"escapes", `'\n\t\\\''`, "\n\t\\'"},
		{"hexByte", `'\x41'`, "A"},
		{"octal", `'\101'`, "A"},
		{"uPair", "'" + "\\" + "u4142" + "'", "AB"},
		{"UQuad", `'\U41424344'`, "ABCD"},
		{"unrecognisedEscape", `'\q'`, `\q`},
		{"tripleQuoted", "'''hello\\nworld'''", "hello\nworld"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := lex.Lex(tc.src)
			if err != nil {
				t.Fatalf("Lex(%q): %v", tc.src, err)
			}
			if len(toks) != 2 || toks[0].Kind != lex.String {
				t.Fatalf("Lex(%q): got %v, want a single String token", tc.src, toks)
			}
			if toks[0].Literal != tc.want {
				t.Errorf("Lex(%q): literal = %q, want %q", tc.src, toks[0].Literal, tc.want)
			}
		})
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := lex.Lex(`'unterminated`)
	if err == nil {
		t.Fatal("Lex: expected an error for an unterminated string")
	}
	var pe *lex.ParseError
	if !asParseError(err, &pe) {
		t.Fatalf("Lex: got %T, want *lex.ParseError", err)
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		src  string
		kind lex.TokenKind
		lit  string
	}{
		{"123", lex.DecInt, "123"},
		{"-123", lex.DecInt, "-123"},
		{"+123", lex.DecInt, "+123"},
		{"1_000", lex.DecInt, "1000"},
		{"1.5", lex.Float, "1.5"},
		{"0b1010", lex.BinInt, "1010"},
		{"0o17", lex.OctoInt, "17"},
		{"0xFF", lex.HexInt, "FF"},
	}
	for _, tc := range tests {
		toks, err := lex.Lex(tc.src)
		if err != nil {
			t.Fatalf("Lex(%q): %v", tc.src, err)
		}
		if toks[0].Kind != tc.kind || toks[0].Literal != tc.lit {
			t.Errorf("Lex(%q): got (%s, %q), want (%s, %q)", tc.src, toks[0].Kind, toks[0].Literal, tc.kind, tc.lit)
		}
	}
}

func TestLexSignedBaseRejected(t *testing.T) {
	for _, src := range []string{"+0x1", "-0b1", "+0o7"} {
		if _, err := lex.Lex(src); err == nil {
			t.Errorf("Lex(%q): expected an error for a signed base-prefixed literal", src)
		}
	}
}

func TestLexKeywordsAndRefs(t *testing.T) {
	// Each bare identifier must sit on its own line: the lexer treats a run
	// of characters up to the next `,:{}[]'"` or newline as a single
	// identifier, so space alone does not separate tokens.
	toks, err := lex.Lex("null\ntrue\nfalse\nnan\n+inf\n-inf\n$name")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	want := []lex.TokenKind{
		lex.Null, lex.NL, lex.True, lex.NL, lex.False, lex.NL, lex.NaN, lex.NL,
		lex.PosInf, lex.NL, lex.NegInf, lex.NL, lex.Ref, lex.Eof,
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
	if toks[12].Literal != "name" {
		t.Errorf("ref literal = %q, want %q", toks[12].Literal, "name")
	}
}

func asParseError(err error, out **lex.ParseError) bool {
	pe, ok := err.(*lex.ParseError)
	if ok {
		*out = pe
	}
	return ok
}
