/*
File: srclang/lexer/lexer.go
*/

// Package lexer performs lexical analysis of source text, turning it
// into a stream of token.Token values one NextToken call at a time.
package lexer

import (
	"github.com/srclang/srclang/token"
)

// Lexer scans through source text byte by byte, tracking its position,
// the current byte under examination, and line/column for error
// reporting.
//
// Fields:
//   - Src: the complete source code as a string
//   - Current: the byte at the current position being examined
//   - Position: the current index in the source string (0-indexed)
//   - SrcLength: the total length of the source string
//   - Line: the current line number in the source (1-indexed)
//   - Column: the current column number in the source (1-indexed)
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// NewLexer creates and initializes a new Lexer for the given source
// code. It sets up the initial state with the first character of the
// source and initializes position tracking to line 1, column 1.
//
// Parameters:
//   - src: the source code string to tokenize
//
// Returns:
//   - Lexer: a new lexer ready to tokenize the source code
func NewLexer(src string) Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
}

// NextToken retrieves the next token from the source code stream. It
// skips whitespace, then identifies and returns the next meaningful
// token. EOF is returned once and forever after the source is
// exhausted.
//
// Returns:
//   - token.Token: the next token in the source, or an EOF token
func (lex *Lexer) NextToken() token.Token {
	var tok token.Token

	lex.SkipWhitespace()

	switch lex.Current {
	case '=':
		if lex.Peek() == '=' {
			tok = token.NewTokenWithMetadata(token.EQ, "==", lex.Line, lex.Column)
			lex.Advance()
		} else {
			tok = token.NewTokenWithMetadata(token.ASSIGN, "=", lex.Line, lex.Column)
		}
	case '!':
		if lex.Peek() == '=' {
			tok = token.NewTokenWithMetadata(token.NOT_EQ, "!=", lex.Line, lex.Column)
			lex.Advance()
		} else {
			tok = token.NewTokenWithMetadata(token.BANG, "!", lex.Line, lex.Column)
		}
	case '<':
		tok = token.NewTokenWithMetadata(token.LT, "<", lex.Line, lex.Column)
	case '>':
		tok = token.NewTokenWithMetadata(token.GT, ">", lex.Line, lex.Column)
	case '+':
		tok = token.NewTokenWithMetadata(token.PLUS, "+", lex.Line, lex.Column)
	case '-':
		tok = token.NewTokenWithMetadata(token.MINUS, "-", lex.Line, lex.Column)
	case '*':
		tok = token.NewTokenWithMetadata(token.ASTERISK, "*", lex.Line, lex.Column)
	case '/':
		tok = token.NewTokenWithMetadata(token.SLASH, "/", lex.Line, lex.Column)
	case '(':
		tok = token.NewTokenWithMetadata(token.LPAREN, "(", lex.Line, lex.Column)
	case ')':
		tok = token.NewTokenWithMetadata(token.RPAREN, ")", lex.Line, lex.Column)
	case '{':
		tok = token.NewTokenWithMetadata(token.LBRACE, "{", lex.Line, lex.Column)
	case '}':
		tok = token.NewTokenWithMetadata(token.RBRACE, "}", lex.Line, lex.Column)
	case ',':
		tok = token.NewTokenWithMetadata(token.COMMA, ",", lex.Line, lex.Column)
	case ';':
		tok = token.NewTokenWithMetadata(token.SEMICOLON, ";", lex.Line, lex.Column)
	case 0:
		tok = token.NewTokenWithMetadata(token.EOF, "", lex.Line, lex.Column)
	default:
		if isLetter(lex.Current) {
			return lex.readIdentifier()
		} else if isDigit(lex.Current) {
			return lex.readNumber()
		}
		tok = token.NewTokenWithMetadata(token.ILLEGAL, string(lex.Current), lex.Line, lex.Column)
	}

	lex.Advance()
	return tok
}

// Peek looks ahead to the next character in the source without
// consuming it. This is useful for lookahead when determining
// multi-character tokens like "==" and "!=".
//
// Returns:
//   - byte: the next character, or 0 if at end of source
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves the lexer to the next character in the source. It
// updates Current, Position, and Column tracking; SkipWhitespace is
// responsible for bumping Line and resetting Column on a newline.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++

	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// SkipWhitespace advances past spaces, tabs, and newlines, tracking
// line/column as it goes. It is called once at the top of every
// NextToken so callers never see whitespace tokens.
func (lex *Lexer) SkipWhitespace() {
	for lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\r' || lex.Current == '\n' {
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0 // Advance below brings this to 1
		}
		lex.Advance()
	}
}

// readIdentifier scans a run of letters/digits/underscores starting at
// Current and classifies it as a keyword or a plain identifier.
//
// Returns:
//   - token.Token: an IDENT token, or the keyword Type LookupIdent finds
func (lex *Lexer) readIdentifier() token.Token {
	startPos := lex.Position
	line, column := lex.Line, lex.Column

	for isLetter(lex.Current) || isDigit(lex.Current) {
		lex.Advance()
	}

	literal := lex.Src[startPos:lex.Position]
	return token.NewTokenWithMetadata(token.LookupIdent(literal), literal, line, column)
}

// readNumber scans a run of decimal digits starting at Current.
// Overflow handling (a literal too large for int64) is the parser's
// responsibility, not the lexer's — this just hands back the raw text.
//
// Returns:
//   - token.Token: an INT token whose Literal is the digit run
func (lex *Lexer) readNumber() token.Token {
	startPos := lex.Position
	line, column := lex.Line, lex.Column

	for isDigit(lex.Current) {
		lex.Advance()
	}

	literal := lex.Src[startPos:lex.Position]
	return token.NewTokenWithMetadata(token.INT, literal, line, column)
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
