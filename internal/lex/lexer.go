package lex

import (
	"fmt"
	"strings"
)

// A Lexer scans jon source text into a TokenStream. Construct one with
// NewLexer, or just call Lex for one-shot use.
type Lexer struct {
	*lineCursor

	tokenPos int // absolute byte offset where the current token began
	tokens   TokenStream

	// arena accumulates the decoded payload of the token being scanned. It
	// is reset at the start of each payload token, so every token's
	// payload gets its own backing storage.
	arena strings.Builder
}

// NewLexer constructs a Lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{lineCursor: newLineCursor(src)}
}

// Lex scans text and returns its token stream, or a *ParseError if the
// text contains a disallowed character, an unterminated string, or a
// malformed numeric literal.
func Lex(text string) (TokenStream, error) {
	return NewLexer(text).Lex()
}

// Lex runs the scan to completion.
func (l *Lexer) Lex() (TokenStream, error) {
	for !l.eof() {
		l.tokenPos = l.pos
		if err := l.lexCurrent(); err != nil {
			return nil, err
		}
	}
	l.tokenPos = l.pos
	l.addTokenAdvance(Eof, 0)
	return l.tokens, nil
}

func (l *Lexer) lexCurrent() error {
	switch l.peek() {
	case '/':
		return l.lexComment()
	case '\'', '"':
		return l.lexString()
	case ',':
		l.addTokenAdvance(Comma, 1)
		return nil
	case ':':
		l.addTokenAdvance(Colon, 1)
		return nil
	case '{':
		l.addTokenAdvance(LBrace, 1)
		return nil
	case '}':
		l.addTokenAdvance(RBrace, 1)
		return nil
	case '[':
		l.addTokenAdvance(LBracket, 1)
		return nil
	case ']':
		l.addTokenAdvance(RBracket, 1)
		return nil
	default:
		return l.lexMisc()
	}
}

func (l *Lexer) lexComment() error {
	if l.lookup(1) == '*' {
		l.skipN(2)
		depth := 1
		for !l.eof() {
			if l.peek() == '/' && l.lookup(1) == '*' {
				depth++
				l.skipN(2)
				continue
			}
			if l.peek() == '*' && l.lookup(1) == '/' {
				depth--
				l.skipN(2)
				if depth == 0 {
					return nil
				}
				continue
			}
			l.advance()
		}
		return l.errorf("unterminated block comment")
	}
	if l.lookup(1) == '/' {
		for !l.eof() && l.peek() != '\n' {
			l.advance()
		}
		return nil
	}
	return l.errorf("unexpected %q", l.peek())
}

func (l *Lexer) lexString() error {
	quote := l.peek()
	if l.lookup(1) == quote && l.lookup(2) == quote {
		return l.lexMLString(quote)
	}
	return l.lexNormalString(quote)
}

func (l *Lexer) lexNormalString(quote byte) error {
	l.advance() // opening quote
	l.arena.Reset()
	for {
		if l.eof() {
			return l.errorf("unterminated string, expected closing %q", quote)
		}
		if l.peek() == '\n' {
			return l.errorf("newline in single-line string")
		}
		if l.peek() == quote {
			l.advance()
			break
		}
		if l.peek() == '\\' {
			l.advance()
			if err := l.lexEscape(); err != nil {
				return err
			}
			continue
		}
		l.arena.WriteByte(l.advance())
	}
	l.addToken(String, l.arena.String())
	return nil
}

func (l *Lexer) lexMLString(quote byte) error {
	l.skipN(3) // opening triple-quote
	l.arena.Reset()
	closed := false
	for !l.eof() {
		if l.peek() == quote && l.lookup(1) == quote && l.lookup(2) == quote {
			closed = true
			break
		}
		if l.peek() == '\\' {
			l.advance()
			if err := l.lexEscape(); err != nil {
				return err
			}
			continue
		}
		l.arena.WriteByte(l.advance())
	}
	if !closed {
		return l.errorf("unterminated multi-line string, expected closing %q%q%q", quote, quote, quote)
	}
	l.skipN(3)
	l.addToken(String, l.arena.String())
	return nil
}

// lexEscape consumes one escape sequence (the leading backslash has
// already been consumed) and writes its decoded bytes into l.arena. An
// unrecognised escape is passed through verbatim: the backslash and the
// following character are both written as-is.
func (l *Lexer) lexEscape() error {
	if l.eof() {
		return l.errorf("unterminated escape sequence")
	}
	switch l.peek() {
	case '\'', '"', '\\':
		l.arena.WriteByte(l.advance())
	case 'n':
		l.advance()
		l.arena.WriteByte('\n')
	case 'r':
		l.advance()
		l.arena.WriteByte('\r')
	case 't':
		l.advance()
		l.arena.WriteByte('\t')
	case 'b':
		l.advance()
		l.arena.WriteByte('\b')
	case 'f':
		l.advance()
		l.arena.WriteByte('\f')
	case 'v':
		l.advance()
		l.arena.WriteByte('\v')
	case 'x':
		l.advance()
		b, err := l.readHexByte()
		if err != nil {
			return err
		}
		l.arena.WriteByte(b)
	case 'u':
		l.advance()
		for i := 0; i < 2; i++ {
			b, err := l.readHexByte()
			if err != nil {
				return err
			}
			l.arena.WriteByte(b)
		}
	case 'U':
		l.advance()
		for i := 0; i < 4; i++ {
			b, err := l.readHexByte()
			if err != nil {
				return err
			}
			l.arena.WriteByte(b)
		}
	default:
		if isOctalDigit(l.peek()) {
			v := 0
			for i := 0; i < 3; i++ {
				if !isOctalDigit(l.peek()) {
					return l.errorf("octal escape requires exactly three digits")
				}
				v = v*8 + int(l.advance()-'0')
			}
			l.arena.WriteByte(byte(v))
			return nil
		}
		// Unrecognised escape: keep the backslash and the next byte verbatim.
		l.arena.WriteByte('\\')
		l.arena.WriteByte(l.advance())
	}
	return nil
}

func (l *Lexer) readHexByte() (byte, error) {
	hi, err := l.readHexDigit()
	if err != nil {
		return 0, err
	}
	lo, err := l.readHexDigit()
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}

func (l *Lexer) readHexDigit() (byte, error) {
	c := l.peek()
	switch {
	case c >= '0' && c <= '9':
		l.advance()
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		l.advance()
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		l.advance()
		return c - 'A' + 10, nil
	default:
		return 0, l.errorf("expected hexadecimal digit, got %q", c)
	}
}

func (l *Lexer) lexMisc() error {
	switch {
	case l.peek() == '\n':
		l.addTokenAdvance(NL, 1)
		return nil
	case isHidden(l.peek()):
		l.advance()
		return nil
	case isDigit(l.peek()):
		return l.lexNumber(false)
	case (l.peek() == '+' || l.peek() == '-') && isDigit(l.lookup(1)):
		return l.lexNumber(true)
	}
	return l.lexIdent()
}

func isHidden(c byte) bool     { return c == ' ' || c == '\t' || c == '\r' }
func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isOctalDigit(c byte) bool { return c >= '0' && c <= '7' }
func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isBinDigit(c byte) bool { return c == '0' || c == '1' }

var identStop = [256]bool{
	',': true, ':': true, '{': true, '}': true,
	'[': true, ']': true, '\'': true, '"': true, '\n': true,
}

func (l *Lexer) lexIdent() error {
	l.arena.Reset()
	for !l.eof() && !identStop[l.peek()] {
		l.arena.WriteByte(l.advance())
	}
	word := strings.TrimRight(l.arena.String(), " \t\r")
	if kind, ok := keywords[word]; ok {
		l.addToken(kind, "")
		return nil
	}
	if strings.HasPrefix(word, "$") {
		l.addToken(Ref, word[1:])
		return nil
	}
	l.addToken(String, word)
	return nil
}

var keywords = map[string]TokenKind{
	"null":  Null,
	"true":  True,
	"false": False,
	"nan":   NaN,
	"+nan":  PosNaN,
	"-nan":  NegNaN,
	"inf":   Inf,
	"+inf":  PosInf,
	"-inf":  NegInf,
}

// lexNumber scans a numeric literal. signed indicates that the caller has
// observed a leading '+' or '-' that must be consumed as part of a
// decimal or float literal; base-prefixed literals never accept a sign.
func (l *Lexer) lexNumber(signed bool) error {
	var sign string
	if signed {
		sign = string(l.advance())
	}

	if l.peek() == '0' && (l.lookup(1) == 'b' || l.lookup(1) == 'B') {
		if signed {
			return l.errorf("signed binary literal is not allowed")
		}
		return l.lexBasedInt(BinInt, 2, isBinDigit)
	}
	if l.peek() == '0' && (l.lookup(1) == 'o' || l.lookup(1) == 'O') {
		if signed {
			return l.errorf("signed octal literal is not allowed")
		}
		return l.lexBasedInt(OctoInt, 2, isOctalDigit)
	}
	if l.peek() == '0' && (l.lookup(1) == 'x' || l.lookup(1) == 'X') {
		if signed {
			return l.errorf("signed hexadecimal literal is not allowed")
		}
		return l.lexBasedInt(HexInt, 2, isHexDigit)
	}

	l.arena.Reset()
	l.arena.WriteString(sign)
	l.scanDigits(isDigit)

	kind := DecInt
	if l.peek() == '.' {
		l.arena.WriteByte(l.advance())
		if !isDigit(l.peek()) {
			return l.errorf("expected fractional digit")
		}
		l.scanDigits(isDigit)
		kind = Float
	}
	l.addToken(kind, l.arena.String())
	return nil
}

func (l *Lexer) lexBasedInt(kind TokenKind, skip int, isDigitFn func(byte) bool) error {
	l.skipN(skip)
	if !isDigitFn(l.peek()) {
		return l.errorf("expected digit after numeric base prefix")
	}
	l.arena.Reset()
	l.scanDigits(isDigitFn)
	l.addToken(kind, l.arena.String())
	return nil
}

// scanDigits consumes digits matching isDigitFn into l.arena, silently
// stripping '_' separators.
func (l *Lexer) scanDigits(isDigitFn func(byte) bool) {
	for {
		for l.peek() == '_' {
			l.advance()
		}
		if !isDigitFn(l.peek()) {
			return
		}
		l.arena.WriteByte(l.advance())
	}
}

func (l *Lexer) skipN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) addToken(kind TokenKind, literal string) {
	l.tokens = append(l.tokens, Token{
		Kind:    kind,
		Literal: literal,
		Span:    Span{Pos: l.tokenPos, Len: len(literal)},
	})
}

func (l *Lexer) addTokenAdvance(kind TokenKind, n int) {
	l.skipN(n)
	l.tokens = append(l.tokens, Token{Kind: kind, Span: Span{Pos: l.tokenPos, Len: n}})
}

func (l *Lexer) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return &ParseError{
		Msg:     msg,
		Span:    Span{Pos: l.pos, Len: 1},
		Excerpt: ExcerptAt(l.src, l.lineStart, l.pos, msg),
	}
}
