// Package ast defines TinyLang's tagged-variant expression and
// statement trees. Every node carries the token it started on so
// parse and evaluation errors can always report a source position,
// the way the teacher's AstNode/FirstToken shape does.
package ast

import "tinylang/internal/lexer"

// AstNode is implemented by every expression and statement.
type AstNode interface {
	AstNode()
	FirstToken() *lexer.Token
}

// Stmt is any node the evaluator executes for effect.
type Stmt interface {
	AstNode
	StmtNode()
}

// Expr is any node that produces a Value when evaluated.
type Expr interface {
	AstNode
	ExprNode()
}
