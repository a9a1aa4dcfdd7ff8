package ast

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jonfmt/jon/internal/lex"
)

// Config holds parser settings established by a chain of Option values.
type Config struct {
	// MaxDepth bounds object/array nesting depth. Zero means unlimited.
	MaxDepth int
}

// An Option adjusts a Config, in the style of the teacher's
// Stream.AllowComments/AllowTrailingCommas setters, but expressed as
// values that compose via Parse's variadic opts parameter.
type Option func(*Config)

// WithMaxDepth bounds object/array nesting depth to guard against
// pathological input; depth is unlimited if n is zero or negative.
func WithMaxDepth(n int) Option {
	return func(c *Config) { c.MaxDepth = n }
}

// Parse lexes and parses text into an AST. The root may be an array, a
// braced object, a bare object (a sequence of key:value entries with no
// enclosing braces), or a single scalar value. Trailing input after the
// root value is a *lex.ParseError.
func Parse(text string, opts ...Option) (Value, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	toks, err := lex.Lex(text)
	if err != nil {
		return nil, err
	}
	p := &parser{src: text, toks: toks, cfg: cfg}
	v, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	return v, nil
}

type parser struct {
	src   string
	toks  lex.TokenStream
	pos   int
	cfg   Config
	depth int
}

func (p *parser) cur() lex.Token  { return p.toks[p.pos] }
func (p *parser) kind() lex.TokenKind { return p.toks[p.pos].Kind }

func (p *parser) lookKind(n int) lex.TokenKind {
	if p.pos+n >= len(p.toks) {
		return lex.Eof
	}
	return p.toks[p.pos+n].Kind
}

func (p *parser) advance() lex.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) skipNL() {
	for p.kind() == lex.NL {
		p.advance()
	}
}

// skipSep consumes a separator: any number of NL, and/or a single Comma
// optionally surrounded by NL.
func (p *parser) skipSep() {
	p.skipNL()
	if p.kind() == lex.Comma {
		p.advance()
		p.skipNL()
	}
}

func (p *parser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	tok := p.cur()
	lineStart := lastNewlineBefore(p.src, tok.Span.Pos)
	return &lex.ParseError{
		Msg:     msg,
		Span:    tok.Span,
		Excerpt: lex.ExcerptAt(p.src, lineStart, tok.Span.Pos, msg),
	}
}

func lastNewlineBefore(src string, pos int) int {
	if pos > len(src) {
		pos = len(src)
	}
	for i := pos - 1; i >= 0; i-- {
		if src[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// parseDocument implements the root-form selection rule: bare object if
// the first meaningful token is a valid key followed by Colon, braced
// object or array if the corresponding opening punctuation leads, and a
// single value otherwise. Once a form is chosen, anything left over after
// it is parsed is a trailing-input error: bare-root and braced forms are
// mutually exclusive, not layered.
func (p *parser) parseDocument() (Value, error) {
	p.skipNL()

	var root Value
	var err error
	switch {
	case p.kind() == lex.LBracket:
		root, err = p.parseArray()
	case p.kind() == lex.LBrace:
		root, err = p.parseObject()
	case isKeyKind(p.kind()) && p.lookKind(1) == lex.Colon:
		root, err = p.parseBareObject()
	default:
		root, err = p.parseValue()
	}
	if err != nil {
		return nil, err
	}

	p.skipNL()
	if p.kind() != lex.Eof {
		return nil, p.errorf("unexpected %s after document root", p.cur())
	}
	return root, nil
}

func (p *parser) parseBareObject() (Value, error) {
	start := p.cur().Span.Pos
	obj := &Object{Pos: start}
	for isKeyKind(p.kind()) && p.lookKind(1) == lex.Colon {
		m, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, m)
		p.skipSep()
	}
	obj.End = p.cur().Span.Pos
	return obj, nil
}

func (p *parser) parseObject() (Value, error) {
	start := p.advance().Span.Pos // consume '{'
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	obj := &Object{Pos: start}
	p.skipNL()
	for p.kind() != lex.RBrace {
		if p.kind() == lex.Eof {
			return nil, p.errorf("unterminated object, expected `}`")
		}
		m, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, m)
		p.skipSep()
	}
	obj.End = p.advance().Span.End() // consume '}'
	return obj, nil
}

func (p *parser) parseMember() (Member, error) {
	keyTok := p.advance()
	key, err := keyLiteral(keyTok)
	if err != nil {
		return Member{}, err
	}
	if p.kind() != lex.Colon {
		return Member{}, p.errorf("expected `:` after key, got %s", p.cur())
	}
	p.advance()
	p.skipNL()
	val, err := p.parseValue()
	if err != nil {
		return Member{}, err
	}
	return Member{Key: key, Value: val}, nil
}

func (p *parser) parseArray() (Value, error) {
	start := p.advance().Span.Pos // consume '['
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	arr := &Array{Pos: start}
	p.skipNL()
	for p.kind() != lex.RBracket {
		if p.kind() == lex.Eof {
			return nil, p.errorf("unterminated array, expected `]`")
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Elems = append(arr.Elems, v)
		p.skipSep()
	}
	arr.End = p.advance().Span.End() // consume ']'
	return arr, nil
}

func (p *parser) enter() error {
	p.depth++
	if p.cfg.MaxDepth > 0 && p.depth > p.cfg.MaxDepth {
		return p.errorf("nesting depth exceeds limit of %d", p.cfg.MaxDepth)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) parseValue() (Value, error) {
	tok := p.cur()
	switch tok.Kind {
	case lex.LBrace:
		return p.parseObject()
	case lex.LBracket:
		return p.parseArray()
	case lex.Null:
		p.advance()
		return &Null{Pos: tok.Span.Pos, End: tok.Span.End()}, nil
	case lex.True, lex.False:
		p.advance()
		return &Bool{Value: tok.Kind == lex.True, Pos: tok.Span.Pos, End: tok.Span.End()}, nil
	case lex.NaN, lex.PosNaN, lex.NegNaN:
		p.advance()
		return &Float{Value: math.NaN(), Pos: tok.Span.Pos, End: tok.Span.End()}, nil
	case lex.Inf, lex.PosInf:
		p.advance()
		return &Float{Value: math.Inf(1), Pos: tok.Span.Pos, End: tok.Span.End()}, nil
	case lex.NegInf:
		p.advance()
		return &Float{Value: math.Inf(-1), Pos: tok.Span.Pos, End: tok.Span.End()}, nil
	case lex.BinInt, lex.OctoInt, lex.HexInt, lex.DecInt:
		p.advance()
		n, err := strconv.ParseInt(tok.Literal, tok.Kind.IntBase(), 64)
		if err != nil {
			return nil, p.errorFor(tok, "integer literal out of range: %s", tok.Literal)
		}
		return &Int{Value: n, Pos: tok.Span.Pos, End: tok.Span.End()}, nil
	case lex.Float:
		p.advance()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, p.errorFor(tok, "malformed float literal: %s", tok.Literal)
		}
		return &Float{Value: f, Pos: tok.Span.Pos, End: tok.Span.End()}, nil
	case lex.String:
		p.advance()
		return &String{Value: tok.Literal, Pos: tok.Span.Pos, End: tok.Span.End()}, nil
	case lex.Ref:
		p.advance()
		return &Ref{Target: tok.Literal, Pos: tok.Span.Pos, End: tok.Span.End()}, nil
	default:
		return nil, p.errorf("expected a value, got %s", tok)
	}
}

func (p *parser) errorFor(tok lex.Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	lineStart := lastNewlineBefore(p.src, tok.Span.Pos)
	return &lex.ParseError{
		Msg:     msg,
		Span:    tok.Span,
		Excerpt: lex.ExcerptAt(p.src, lineStart, tok.Span.Pos, msg),
	}
}

// isKeyKind reports whether kind may begin an object key: any scalar-
// looking token. Structural punctuation and Eof/NL are excluded.
func isKeyKind(kind lex.TokenKind) bool {
	switch kind {
	case lex.String, lex.Null, lex.True, lex.False,
		lex.NaN, lex.PosNaN, lex.NegNaN,
		lex.Inf, lex.PosInf, lex.NegInf,
		lex.BinInt, lex.OctoInt, lex.HexInt, lex.DecInt, lex.Float,
		lex.Ref:
		return true
	default:
		return false
	}
}

// keyLiteral renders tok's textual spelling as an object key, per the key
// token promotion rule: strings use their payload, keywords use their
// canonical spelling, numbers use their token payload (the digits with any
// base prefix and '_' separators removed, so 0x2A gives "2A"), and refs
// are prefixed with '$'.
func keyLiteral(tok lex.Token) (string, error) {
	switch tok.Kind {
	case lex.String:
		return tok.Literal, nil
	case lex.Null:
		return "null", nil
	case lex.True:
		return "true", nil
	case lex.False:
		return "false", nil
	case lex.NaN:
		return "nan", nil
	case lex.PosNaN:
		return "+nan", nil
	case lex.NegNaN:
		return "-nan", nil
	case lex.Inf:
		return "inf", nil
	case lex.PosInf:
		return "+inf", nil
	case lex.NegInf:
		return "-inf", nil
	case lex.BinInt, lex.OctoInt, lex.HexInt, lex.DecInt, lex.Float:
		return tok.Literal, nil
	case lex.Ref:
		return "$" + tok.Literal, nil
	default:
		// Unreachable in practice: callers only invoke keyLiteral on tokens
		// that isKeyKind has already accepted.
		return "", &lex.ParseError{Msg: "token " + tok.String() + " cannot be used as a key", Span: tok.Span}
	}
}
