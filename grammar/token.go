package grammar

import "fmt"

// TokenType is the lexical class of a DSL token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenName
	TokenInt
	TokenFloat
	TokenString
	TokenLParen
	TokenRParen
	TokenComma
	TokenPipe
)

var tokenNames = [...]string{
	TokenEOF:    "EOF",
	TokenName:   "NAME",
	TokenInt:    "INT",
	TokenFloat:  "FLOAT",
	TokenString: "STRING",
	TokenLParen: "(",
	TokenRParen: ")",
	TokenComma:  ",",
	TokenPipe:   "|",
}

// String returns the token type name.
func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "UNKNOWN"
}

// Token is one lexed unit with its byte offset in the input.
type Token struct {
	Type   TokenType
	Value  string
	Offset int
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Type, t.Value)
}

// Lexer splits a DSL string into tokens. Whitespace is insignificant.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize returns every token up to and including EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) next() (Token, error) {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
	start := l.pos
	if start >= len(l.input) {
		return Token{Type: TokenEOF, Offset: start}, nil
	}

	ch := l.input[start]
	single := func(t TokenType) (Token, error) {
		l.pos++
		return Token{Type: t, Value: string(ch), Offset: start}, nil
	}
	switch ch {
	case '(':
		return single(TokenLParen)
	case ')':
		return single(TokenRParen)
	case ',':
		return single(TokenComma)
	case '|':
		return single(TokenPipe)
	case '\'', '"':
		return l.scanString()
	}
	if isDigit(ch) || (ch == '.' && l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1])) {
		return l.scanNumber(), nil
	}
	if isIdentStart(ch) {
		for l.pos < len(l.input) && isIdentContinue(l.input[l.pos]) {
			l.pos++
		}
		return Token{Type: TokenName, Value: l.input[start:l.pos], Offset: start}, nil
	}
	return Token{}, syntaxErrorf("no support for %q at offset %d", ch, start)
}

// scanString reads a single- or double-quoted literal. A backslash escapes
// the next byte.
func (l *Lexer) scanString() (Token, error) {
	start := l.pos
	quote := l.input[start]
	l.pos++
	var out []byte
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case ch == quote:
			l.pos++
			return Token{Type: TokenString, Value: string(out), Offset: start}, nil
		case ch == '\\' && l.pos+1 < len(l.input):
			out = append(out, l.input[l.pos+1])
			l.pos += 2
		case ch == '\n':
			return Token{}, syntaxErrorf("unterminated string at offset %d", start)
		default:
			out = append(out, ch)
			l.pos++
		}
	}
	return Token{}, syntaxErrorf("unterminated string at offset %d", start)
}

func (l *Lexer) scanNumber() Token {
	start := l.pos
	isFloat := false
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		isFloat = true
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
		mark := l.pos
		l.pos++
		if l.pos < len(l.input) && (l.input[l.pos] == '+' || l.input[l.pos] == '-') {
			l.pos++
		}
		if l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			isFloat = true
			for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
				l.pos++
			}
		} else {
			l.pos = mark
		}
	}
	typ := TokenInt
	if isFloat {
		typ = TokenFloat
	}
	return Token{Type: typ, Value: l.input[start:l.pos], Offset: start}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// tokenStream is a cursor over lexed tokens.
type tokenStream struct {
	tokens []Token
	pos    int
}

func (ts *tokenStream) peek() Token {
	if ts.pos >= len(ts.tokens) {
		return Token{Type: TokenEOF}
	}
	return ts.tokens[ts.pos]
}

func (ts *tokenStream) advance() Token {
	tok := ts.peek()
	if ts.pos < len(ts.tokens) {
		ts.pos++
	}
	return tok
}

func (ts *tokenStream) match(typ TokenType) bool {
	if ts.peek().Type == typ {
		ts.advance()
		return true
	}
	return false
}

func (ts *tokenStream) expect(typ TokenType) (Token, error) {
	tok := ts.peek()
	if tok.Type != typ {
		return tok, syntaxErrorf("expected %s, got %s at offset %d", typ, tok, tok.Offset)
	}
	return ts.advance(), nil
}
