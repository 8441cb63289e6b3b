package ast

import "tinylang/internal/lexer"

// AssignTarget is the typed left-hand side of an AssignStmt. Name is
// always set; Index and Member are populated as the chain demands:
// a bare variable has neither, `obj.field` has Member only, and
// `arr[const].field` has both. The parser only ever puts a constant
// index expression here — a non-constant index with a following
// `.field` is a ParseError, not an AssignTarget shape.
type AssignTarget struct {
	Name   string
	Index  Expr
	Member string
}

// AssignStmt covers a plain variable write, a declaration with an
// optional initializer and declared type, a field write on an object,
// and a field write on an object-array element.
type AssignStmt struct {
	StartToken *lexer.Token

	Target       AssignTarget
	DeclaredType string
	Value        Expr
}

// ArrayElementAssignStmt is the sole shape for `arr[expr] = value`,
// kept separate from AssignStmt because its index need not be
// constant.
type ArrayElementAssignStmt struct {
	StartToken *lexer.Token

	ArrayName string
	Index     Expr
	Value     Expr
}

// ArrayDeclStmt declares a primitive array: `<type> name[size];`,
// `<type> name[];`, or `<type> name[] = { ... };`. At most one of
// Size or Elements is set; `<type> name[];` leaves both nil.
type ArrayDeclStmt struct {
	StartToken *lexer.Token

	ElemType string
	Name     string
	Size     Expr
	Elements []Expr
}

// ObjectArrayDeclStmt declares an array of class instances:
// `ClassName name[size];`.
type ObjectArrayDeclStmt struct {
	StartToken *lexer.Token

	ClassName string
	Name      string
	Size      Expr
}

type PrintStmt struct {
	StartToken *lexer.Token
	Expr       Expr
}

// FuncDefStmt defines a top-level ComeAndDo function, or a class
// method when embedded in a ClassDefStmt's Methods.
type FuncDefStmt struct {
	StartToken *lexer.Token

	Name   string
	Params []string
	Body   []Stmt
}

type ReturnStmt struct {
	StartToken *lexer.Token
	Expr       Expr
}

type IfStmt struct {
	StartToken *lexer.Token

	Cond Expr
	Then []Stmt
	Else []Stmt
}

type WhileStmt struct {
	StartToken *lexer.Token

	Cond Expr
	Body []Stmt
}

// ForStmt's Init, Cond, and Post may each be nil: a missing Cond is
// treated as always-true.
type ForStmt struct {
	StartToken *lexer.Token

	Init Stmt
	Cond Expr
	Post Stmt
	Body []Stmt
}

type ExprStmt struct {
	StartToken *lexer.Token
	Expr       Expr
}

// FieldDecl is one `<type> <name>;` line in a class body.
type FieldDecl struct {
	Type string
	Name string
}

// ClassDefStmt defines a class. Base is empty when the class has no
// parent. A method named "init" is the constructor and is only run
// when the instantiation statement supplies argument parentheses.
type ClassDefStmt struct {
	StartToken *lexer.Token

	Name    string
	Base    string
	Fields  []FieldDecl
	Methods []*FuncDefStmt
}

// ObjectInstStmt instantiates one object of a known class. HasArgs
// distinguishes `ClassName var;` (no constructor call) from
// `ClassName var();` or `ClassName var(a, b);` (constructor call,
// possibly with zero arguments).
type ObjectInstStmt struct {
	StartToken *lexer.Token

	ClassName string
	Name      string
	HasArgs   bool
	Args      []Expr
}

func (a *AssignStmt) AstNode()             {}
func (a *ArrayElementAssignStmt) AstNode() {}
func (a *ArrayDeclStmt) AstNode()          {}
func (o *ObjectArrayDeclStmt) AstNode()    {}
func (p *PrintStmt) AstNode()              {}
func (f *FuncDefStmt) AstNode()            {}
func (r *ReturnStmt) AstNode()             {}
func (i *IfStmt) AstNode()                 {}
func (w *WhileStmt) AstNode()              {}
func (f *ForStmt) AstNode()                {}
func (e *ExprStmt) AstNode()               {}
func (c *ClassDefStmt) AstNode()           {}
func (o *ObjectInstStmt) AstNode()         {}

func (a *AssignStmt) FirstToken() *lexer.Token             { return a.StartToken }
func (a *ArrayElementAssignStmt) FirstToken() *lexer.Token { return a.StartToken }
func (a *ArrayDeclStmt) FirstToken() *lexer.Token          { return a.StartToken }
func (o *ObjectArrayDeclStmt) FirstToken() *lexer.Token    { return o.StartToken }
func (p *PrintStmt) FirstToken() *lexer.Token              { return p.StartToken }
func (f *FuncDefStmt) FirstToken() *lexer.Token            { return f.StartToken }
func (r *ReturnStmt) FirstToken() *lexer.Token             { return r.StartToken }
func (i *IfStmt) FirstToken() *lexer.Token                 { return i.StartToken }
func (w *WhileStmt) FirstToken() *lexer.Token              { return w.StartToken }
func (f *ForStmt) FirstToken() *lexer.Token                { return f.StartToken }
func (e *ExprStmt) FirstToken() *lexer.Token               { return e.StartToken }
func (c *ClassDefStmt) FirstToken() *lexer.Token           { return c.StartToken }
func (o *ObjectInstStmt) FirstToken() *lexer.Token         { return o.StartToken }

func (a *AssignStmt) StmtNode()             {}
func (a *ArrayElementAssignStmt) StmtNode() {}
func (a *ArrayDeclStmt) StmtNode()          {}
func (o *ObjectArrayDeclStmt) StmtNode()    {}
func (p *PrintStmt) StmtNode()              {}
func (f *FuncDefStmt) StmtNode()            {}
func (r *ReturnStmt) StmtNode()             {}
func (i *IfStmt) StmtNode()                 {}
func (w *WhileStmt) StmtNode()              {}
func (f *ForStmt) StmtNode()                {}
func (e *ExprStmt) StmtNode()               {}
func (c *ClassDefStmt) StmtNode()           {}
func (o *ObjectInstStmt) StmtNode()         {}
