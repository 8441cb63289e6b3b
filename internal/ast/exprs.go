package ast

import "tinylang/internal/lexer"

type IntLit struct {
	StartToken *lexer.Token
	Value      int32
}

type FloatLit struct {
	StartToken *lexer.Token
	Value      float64
}

type CharLit struct {
	StartToken *lexer.Token
	Value      byte
}

type BoolLit struct {
	StartToken *lexer.Token
	Value      bool
}

type StringLit struct {
	StartToken *lexer.Token
	Value      string
}

// VarExpr reads a variable by name.
type VarExpr struct {
	StartToken *lexer.Token
	Name       string
}

// UnaryExpr is `!x` or `-x`.
type UnaryExpr struct {
	StartToken *lexer.Token
	Op         string
	Operand    Expr
}

// BinaryExpr covers every binary operator, including `&&`/`||`; the
// evaluator short-circuits on Op rather than the parser splitting out a
// separate logical-expression node.
type BinaryExpr struct {
	StartToken *lexer.Token
	Op         string
	Left       Expr
	Right      Expr
}

// CallExpr invokes a top-level ComeAndDo function.
type CallExpr struct {
	StartToken *lexer.Token
	Name       string
	Args       []Expr
}

// ArrayAccessExpr reads one element of a named array: `name[Index]`.
type ArrayAccessExpr struct {
	StartToken *lexer.Token
	ArrayName  string
	Index      Expr
}

// ArrayLit is an array-literal expression, valid only in initializer
// position: `{ e1, e2, ... }`.
type ArrayLit struct {
	StartToken *lexer.Token
	Elements   []Expr
}

// MemberAccessExpr reads a field off an object or object-array element:
// `Object.Member`. The parser builds Object from the identifier chain,
// so it may also be another MemberAccessExpr or MethodCallExpr; the
// evaluator accepts only a VarExpr or an ArrayAccessExpr as receiver.
type MemberAccessExpr struct {
	StartToken *lexer.Token
	Object     Expr
	Member     string
}

// MethodCallExpr invokes a method on an object or object-array element.
type MethodCallExpr struct {
	StartToken *lexer.Token
	Object     Expr
	Method     string
	Args       []Expr
}

// InputExpr reads one whitespace-separated integer from standard input.
type InputExpr struct {
	StartToken *lexer.Token
}

// ReadExpr reads one whitespace-separated integer from a named file.
// The filename is always a string literal per spec.md §3.
type ReadExpr struct {
	StartToken *lexer.Token
	Filename   string
}

func (IntLit) AstNode()           {}
func (FloatLit) AstNode()         {}
func (CharLit) AstNode()          {}
func (BoolLit) AstNode()          {}
func (StringLit) AstNode()        {}
func (VarExpr) AstNode()          {}
func (UnaryExpr) AstNode()        {}
func (BinaryExpr) AstNode()       {}
func (CallExpr) AstNode()         {}
func (ArrayAccessExpr) AstNode()  {}
func (ArrayLit) AstNode()         {}
func (MemberAccessExpr) AstNode() {}
func (MethodCallExpr) AstNode()   {}
func (InputExpr) AstNode()        {}
func (ReadExpr) AstNode()         {}

func (e *IntLit) FirstToken() *lexer.Token           { return e.StartToken }
func (e *FloatLit) FirstToken() *lexer.Token         { return e.StartToken }
func (e *CharLit) FirstToken() *lexer.Token          { return e.StartToken }
func (e *BoolLit) FirstToken() *lexer.Token          { return e.StartToken }
func (e *StringLit) FirstToken() *lexer.Token        { return e.StartToken }
func (e *VarExpr) FirstToken() *lexer.Token          { return e.StartToken }
func (e *UnaryExpr) FirstToken() *lexer.Token        { return e.StartToken }
func (e *BinaryExpr) FirstToken() *lexer.Token       { return e.StartToken }
func (e *CallExpr) FirstToken() *lexer.Token         { return e.StartToken }
func (e *ArrayAccessExpr) FirstToken() *lexer.Token  { return e.StartToken }
func (e *ArrayLit) FirstToken() *lexer.Token         { return e.StartToken }
func (e *MemberAccessExpr) FirstToken() *lexer.Token { return e.StartToken }
func (e *MethodCallExpr) FirstToken() *lexer.Token   { return e.StartToken }
func (e *InputExpr) FirstToken() *lexer.Token        { return e.StartToken }
func (e *ReadExpr) FirstToken() *lexer.Token         { return e.StartToken }

func (IntLit) ExprNode()           {}
func (FloatLit) ExprNode()         {}
func (CharLit) ExprNode()          {}
func (BoolLit) ExprNode()          {}
func (StringLit) ExprNode()        {}
func (VarExpr) ExprNode()          {}
func (UnaryExpr) ExprNode()        {}
func (BinaryExpr) ExprNode()       {}
func (CallExpr) ExprNode()         {}
func (ArrayAccessExpr) ExprNode()  {}
func (ArrayLit) ExprNode()         {}
func (MemberAccessExpr) ExprNode() {}
func (MethodCallExpr) ExprNode()   {}
func (InputExpr) ExprNode()        {}
func (ReadExpr) ExprNode()         {}
