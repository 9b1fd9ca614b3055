package internal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// The %r conversion evaluates the matched text as a literal value:
// numbers, quoted strings, booleans, nil, and nested lists/maps/
// tuples. It is NOT a general expression evaluator:
// identifiers, operators, and calls are rejected with
// UnsafeLiteralError so matched input can never execute anything.

// LitTokenType represents the type of a literal token
type LitTokenType string

// Literal token type constants
const (
	LitTokenTypeString   LitTokenType = "STRING"
	LitTokenTypeNumber   LitTokenType = "NUMBER"
	LitTokenTypeBool     LitTokenType = "BOOL"
	LitTokenTypeNil      LitTokenType = "NIL"
	LitTokenTypeLBracket LitTokenType = "LBRACKET"
	LitTokenTypeRBracket LitTokenType = "RBRACKET"
	LitTokenTypeLBrace   LitTokenType = "LBRACE"
	LitTokenTypeRBrace   LitTokenType = "RBRACE"
	LitTokenTypeLParen   LitTokenType = "LPAREN"
	LitTokenTypeRParen   LitTokenType = "RPAREN"
	LitTokenTypeComma    LitTokenType = "COMMA"
	LitTokenTypeColon    LitTokenType = "COLON"
	LitTokenTypeEOF      LitTokenType = "EOF"
)

// Literal keyword constants
const (
	LitKeywordTrue  = "true"
	LitKeywordFalse = "false"
	LitKeywordNil   = "nil"
)

// LitToken represents a token in a literal expression
type LitToken struct {
	Type  LitTokenType
	Value string
	Pos   int
	Lit   any // parsed value for STRING/NUMBER/BOOL/NIL tokens
}

// UnsafeLiteralError reports input to %r that is outside the safe
// literal grammar.
type UnsafeLiteralError struct {
	Message string
	Pos     int
	Detail  string
}

func (e *UnsafeLiteralError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s at position %d: %s", e.Message, e.Pos, e.Detail)
	}
	return fmt.Sprintf("%s at position %d", e.Message, e.Pos)
}

// NewUnsafeLiteralError creates a new unsafe literal error
func NewUnsafeLiteralError(message string, pos int, detail string) *UnsafeLiteralError {
	return &UnsafeLiteralError{Message: message, Pos: pos, Detail: detail}
}

// Literal evaluator error messages
const (
	ErrMsgLitEmpty             = "empty literal"
	ErrMsgLitUnexpectedChar    = "unexpected character in literal"
	ErrMsgLitUnterminatedStr   = "unterminated string literal"
	ErrMsgLitInvalidEscape     = "invalid escape sequence"
	ErrMsgLitInvalidNumber     = "invalid number literal"
	ErrMsgLitUnexpectedToken   = "unexpected token in literal"
	ErrMsgLitUnexpectedKeyword = "identifier is not a literal"
	ErrMsgLitTrailingInput     = "trailing input after literal"
	ErrMsgLitUnhashableKey     = "map key must be a scalar literal"
)

// litTokenizer tokenizes literal expressions
type litTokenizer struct {
	input string
	pos   int
	len   int
}

func (t *litTokenizer) tokenize() ([]LitToken, error) {
	var tokens []LitToken
	for {
		t.skipWhitespace()
		if t.pos >= t.len {
			tokens = append(tokens, LitToken{Type: LitTokenTypeEOF, Pos: t.pos})
			return tokens, nil
		}
		token, err := t.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
}

func (t *litTokenizer) skipWhitespace() {
	for t.pos < t.len && unicode.IsSpace(rune(t.input[t.pos])) {
		t.pos++
	}
}

func (t *litTokenizer) nextToken() (LitToken, error) {
	startPos := t.pos
	ch := t.input[t.pos]

	if ch == '"' || ch == '\'' {
		return t.readString()
	}
	if ch >= '0' && ch <= '9' || ch == '.' || ch == '+' || ch == '-' {
		return t.readNumber()
	}
	if unicode.IsLetter(rune(ch)) || ch == '_' {
		return t.readKeyword()
	}

	t.pos++
	switch ch {
	case '[':
		return LitToken{Type: LitTokenTypeLBracket, Value: "[", Pos: startPos}, nil
	case ']':
		return LitToken{Type: LitTokenTypeRBracket, Value: "]", Pos: startPos}, nil
	case '{':
		return LitToken{Type: LitTokenTypeLBrace, Value: "{", Pos: startPos}, nil
	case '}':
		return LitToken{Type: LitTokenTypeRBrace, Value: "}", Pos: startPos}, nil
	case '(':
		return LitToken{Type: LitTokenTypeLParen, Value: "(", Pos: startPos}, nil
	case ')':
		return LitToken{Type: LitTokenTypeRParen, Value: ")", Pos: startPos}, nil
	case ',':
		return LitToken{Type: LitTokenTypeComma, Value: ",", Pos: startPos}, nil
	case ':':
		return LitToken{Type: LitTokenTypeColon, Value: ":", Pos: startPos}, nil
	default:
		return LitToken{}, NewUnsafeLiteralError(ErrMsgLitUnexpectedChar, startPos, string(ch))
	}
}

func (t *litTokenizer) readString() (LitToken, error) {
	startPos := t.pos
	quote := t.input[t.pos]
	t.pos++

	var sb strings.Builder
	for t.pos < t.len {
		ch := t.input[t.pos]
		if ch == quote {
			t.pos++
			return LitToken{Type: LitTokenTypeString, Value: sb.String(), Pos: startPos, Lit: sb.String()}, nil
		}
		if ch == '\\' {
			if t.pos+1 >= t.len {
				return LitToken{}, NewUnsafeLiteralError(ErrMsgLitUnterminatedStr, startPos, "")
			}
			t.pos++
			esc := t.input[t.pos]
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\', '\'', '"':
				sb.WriteByte(esc)
			default:
				return LitToken{}, NewUnsafeLiteralError(ErrMsgLitInvalidEscape, t.pos, string(esc))
			}
			t.pos++
			continue
		}
		sb.WriteByte(ch)
		t.pos++
	}
	return LitToken{}, NewUnsafeLiteralError(ErrMsgLitUnterminatedStr, startPos, "")
}

func (t *litTokenizer) readNumber() (LitToken, error) {
	startPos := t.pos
	if t.input[t.pos] == '+' || t.input[t.pos] == '-' {
		t.pos++
	}
	for t.pos < t.len && isNumberChar(t.input[t.pos]) {
		// An exponent may carry its own sign.
		if (t.input[t.pos] == 'e' || t.input[t.pos] == 'E') &&
			t.pos+1 < t.len && (t.input[t.pos+1] == '+' || t.input[t.pos+1] == '-') {
			t.pos++
		}
		t.pos++
	}
	text := t.input[startPos:t.pos]

	if n, err := strconv.ParseInt(text, 0, 64); err == nil {
		return LitToken{Type: LitTokenTypeNumber, Value: text, Pos: startPos, Lit: n}, nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return LitToken{Type: LitTokenTypeNumber, Value: text, Pos: startPos, Lit: f}, nil
	}
	return LitToken{}, NewUnsafeLiteralError(ErrMsgLitInvalidNumber, startPos, text)
}

// isNumberChar accepts the characters that may appear inside an
// integer or float literal body (hex digits, base markers, point,
// exponent sign handled via e/E adjacency by the parse attempt).
func isNumberChar(ch byte) bool {
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F':
		return true
	case ch == 'x' || ch == 'X' || ch == 'o' || ch == 'O':
		return true
	case ch == '.' || ch == '_':
		return true
	default:
		return false
	}
}

func (t *litTokenizer) readKeyword() (LitToken, error) {
	startPos := t.pos
	for t.pos < t.len && (unicode.IsLetter(rune(t.input[t.pos])) || unicode.IsDigit(rune(t.input[t.pos])) || t.input[t.pos] == '_') {
		t.pos++
	}
	word := t.input[startPos:t.pos]

	switch word {
	case LitKeywordTrue:
		return LitToken{Type: LitTokenTypeBool, Value: word, Pos: startPos, Lit: true}, nil
	case LitKeywordFalse:
		return LitToken{Type: LitTokenTypeBool, Value: word, Pos: startPos, Lit: false}, nil
	case LitKeywordNil:
		return LitToken{Type: LitTokenTypeNil, Value: word, Pos: startPos, Lit: nil}, nil
	default:
		return LitToken{}, NewUnsafeLiteralError(ErrMsgLitUnexpectedKeyword, startPos, word)
	}
}

// litParser parses a token stream into a literal value
type litParser struct {
	tokens []LitToken
	pos    int
}

func (p *litParser) peek() LitToken {
	if p.pos >= len(p.tokens) {
		return LitToken{Type: LitTokenTypeEOF}
	}
	return p.tokens[p.pos]
}

func (p *litParser) next() LitToken {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *litParser) expect(tt LitTokenType) (LitToken, error) {
	tok := p.next()
	if tok.Type != tt {
		return LitToken{}, NewUnsafeLiteralError(ErrMsgLitUnexpectedToken, tok.Pos, tok.Value)
	}
	return tok, nil
}

func (p *litParser) parseValue() (any, error) {
	tok := p.next()
	switch tok.Type {
	case LitTokenTypeString, LitTokenTypeNumber, LitTokenTypeBool, LitTokenTypeNil:
		return tok.Lit, nil
	case LitTokenTypeLBracket:
		return p.parseSequence(LitTokenTypeRBracket)
	case LitTokenTypeLParen:
		return p.parseSequence(LitTokenTypeRParen)
	case LitTokenTypeLBrace:
		return p.parseMap()
	default:
		return nil, NewUnsafeLiteralError(ErrMsgLitUnexpectedToken, tok.Pos, tok.Value)
	}
}

// parseSequence handles both list and tuple forms; both yield []any.
// A trailing comma before the closer is allowed.
func (p *litParser) parseSequence(closer LitTokenType) (any, error) {
	items := []any{}
	for {
		if p.peek().Type == closer {
			p.next()
			return items, nil
		}
		item, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		switch p.peek().Type {
		case LitTokenTypeComma:
			p.next()
		case closer:
			// closer consumed on next loop iteration
		default:
			return nil, NewUnsafeLiteralError(ErrMsgLitUnexpectedToken, p.peek().Pos, p.peek().Value)
		}
	}
}

func (p *litParser) parseMap() (any, error) {
	m := map[any]any{}
	for {
		if p.peek().Type == LitTokenTypeRBrace {
			p.next()
			return m, nil
		}

		keyTok := p.next()
		switch keyTok.Type {
		case LitTokenTypeString, LitTokenTypeNumber, LitTokenTypeBool:
		default:
			return nil, NewUnsafeLiteralError(ErrMsgLitUnhashableKey, keyTok.Pos, keyTok.Value)
		}
		if _, err := p.expect(LitTokenTypeColon); err != nil {
			return nil, err
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		m[keyTok.Lit] = val

		switch p.peek().Type {
		case LitTokenTypeComma:
			p.next()
		case LitTokenTypeRBrace:
		default:
			return nil, NewUnsafeLiteralError(ErrMsgLitUnexpectedToken, p.peek().Pos, p.peek().Value)
		}
	}
}

// EvalLiteral evaluates a string as a single literal value. Anything
// outside the literal grammar fails with *UnsafeLiteralError.
func EvalLiteral(input string) (any, error) {
	if strings.TrimSpace(input) == "" {
		return nil, NewUnsafeLiteralError(ErrMsgLitEmpty, 0, "")
	}

	tokenizer := &litTokenizer{input: input, len: len(input)}
	tokens, err := tokenizer.tokenize()
	if err != nil {
		return nil, err
	}

	parser := &litParser{tokens: tokens}
	value, err := parser.parseValue()
	if err != nil {
		return nil, err
	}
	if tok := parser.peek(); tok.Type != LitTokenTypeEOF {
		return nil, NewUnsafeLiteralError(ErrMsgLitTrailingInput, tok.Pos, tok.Value)
	}
	return value, nil
}
