/*
File    : go-monkey/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the abstract syntax tree produced by the parser.
//
// Every node is one of two closed unions, expressed the idiomatic Go way:
// a marker interface (Statement, Expression) implemented by a fixed set of
// concrete struct types. There is no virtual dispatch table and no visitor
// double-dispatch — callers that need to branch on node kind use an
// ordinary type switch, and pretty-printing is a String() method on each
// concrete type. Nodes are built by the parser and are read-only
// thereafter; each node exclusively owns its children, so a Program can be
// torn down by simply letting it go out of scope.
package ast

import "bytes"

// Node is satisfied by every statement and expression. TokenLiteral exists
// for debugging and testing; String renders the canonical pretty-printed
// form used by the parser's test suite.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is satisfied by the four statement variants: LetStatement,
// ReturnStatement, ExpressionStatement, BlockStatement. The dummy
// statementNode method exists only to keep the Go compiler from accepting
// an Expression where a Statement is required, and vice versa.
type Statement interface {
	Node
	statementNode()
}

// Expression is satisfied by the eight expression variants: Identifier,
// IntegerLiteral, Boolean, PrefixExpression, InfixExpression, IfExpression,
// FunctionLiteral, CallExpression.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every AST the parser produces: an ordered
// sequence of top-level statements.
type Program struct {
	Statements []Statement
}

// TokenLiteral returns the literal of the first statement's token, or the
// empty string if the program has no statements.
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// String concatenates the pretty-printed form of every statement in order.
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}
