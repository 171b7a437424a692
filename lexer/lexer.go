/*
File    : go-monkey/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer performs lexical analysis of Monkey source code. It scans
// the input one byte at a time and produces a lazy stream of token.Token
// values, pulled one at a time by a call to NextToken.
package lexer

import "github.com/akashmaji946/go-monkey/token"

// Lexer is a single-pass character cursor over a source string. It never
// backtracks beyond a single-character peek.
//
// Fields:
//   - input: the entire source text
//   - position: index of ch, the character currently under examination
//   - readPosition: index of the next character to read (position+1, once
//     any character has been read)
//   - ch: the byte at position, or 0 at end of input
//   - line, column: 1-indexed position of ch, tracked for token metadata
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// New creates a Lexer positioned at the first character of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// readChar advances the cursor by one character, maintaining the invariant
// readPosition == position + 1 once past the first read.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without consuming it, or 0 at end of
// input. Used to recognize the two-character operators == and !=.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken produces the next token in the stream, advancing the cursor
// past whatever characters it consumes. Repeated calls eventually return an
// EOF token and continue to do so for any further call.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, column := l.line, l.column

	var tok token.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			literal := string(ch) + string(l.ch)
			tok = token.NewWithPosition(token.EQ, literal, line, column)
		} else {
			tok = token.NewWithPosition(token.ASSIGN, string(l.ch), line, column)
		}
	case '+':
		tok = token.NewWithPosition(token.PLUS, string(l.ch), line, column)
	case '-':
		tok = token.NewWithPosition(token.MINUS, string(l.ch), line, column)
	case '!':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			literal := string(ch) + string(l.ch)
			tok = token.NewWithPosition(token.NOT_EQ, literal, line, column)
		} else {
			tok = token.NewWithPosition(token.BANG, string(l.ch), line, column)
		}
	case '/':
		tok = token.NewWithPosition(token.SLASH, string(l.ch), line, column)
	case '*':
		tok = token.NewWithPosition(token.ASTERISK, string(l.ch), line, column)
	case '<':
		tok = token.NewWithPosition(token.LT, string(l.ch), line, column)
	case '>':
		tok = token.NewWithPosition(token.GT, string(l.ch), line, column)
	case ';':
		tok = token.NewWithPosition(token.SEMICOLON, string(l.ch), line, column)
	case ',':
		tok = token.NewWithPosition(token.COMMA, string(l.ch), line, column)
	case '(':
		tok = token.NewWithPosition(token.LPAREN, string(l.ch), line, column)
	case ')':
		tok = token.NewWithPosition(token.RPAREN, string(l.ch), line, column)
	case '{':
		tok = token.NewWithPosition(token.LBRACE, string(l.ch), line, column)
	case '}':
		tok = token.NewWithPosition(token.RBRACE, string(l.ch), line, column)
	case 0:
		tok = token.NewWithPosition(token.EOF, "", line, column)
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			return token.NewWithPosition(token.LookupIdent(literal), literal, line, column)
		} else if isDigit(l.ch) {
			literal := l.readNumber()
			return token.NewWithPosition(token.INT, literal, line, column)
		}
		tok = token.NewWithPosition(token.ILLEGAL, string(l.ch), line, column)
	}

	l.readChar()
	return tok
}

// skipWhitespace consumes a run of ASCII whitespace: space, tab, carriage
// return, newline.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier consumes the maximal run of letters/underscores starting
// at the current character and returns it.
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber consumes the maximal run of digits starting at the current
// character and returns it.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
