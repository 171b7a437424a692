/*
File    : go-monkey/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-monkey/token"

// Operator precedence levels, ascending binding power. Comparisons against
// this table are always strict (<), never (<=), which is what makes every
// infix operator left-associative: equal precedence on the peek token halts
// the Pratt loop rather than recursing into it.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x, !x
	CALL        // f(x)
)

// precedences maps each infix-capable token to its binding power. Tokens
// absent from this table (e.g. SEMICOLON, EOF, RPAREN) are treated as
// LOWEST by peekPrecedence/currentPrecedence, which is exactly what stops
// the Pratt loop at a statement or expression boundary.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}
