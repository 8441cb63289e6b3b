package parser

import (
	"fmt"
	"strconv"

	"tinylang/internal/ast"
	"tinylang/internal/compiler_errors"
	"tinylang/internal/lexer"
)

// Parser is a recursive-descent parser with precedence climbing for
// expressions. ClassNames is the shared mutable set populated the
// moment a class statement's name is read, so later statements can
// recognize `Identifier x;`/`Identifier x[n];`/`Identifier x(...);` as
// object or object-array declarations rather than plain assignments.
type Parser struct {
	fileName string

	scanner lexer.TokenScanner
	curr    lexer.Token

	ClassNames map[string]bool
}

func NewParser(fileName string, scanner lexer.TokenScanner) *Parser {
	return &Parser{
		fileName:   fileName,
		scanner:    scanner,
		curr:       scanner.Read(),
		ClassNames: make(map[string]bool),
	}
}

var bindingPowerLookup = map[lexer.TokenKind]int{
	lexer.LOR:      0,
	lexer.LAND:     1,
	lexer.EQ:       2,
	lexer.NEQ:      2,
	lexer.LT:       2,
	lexer.GT:       2,
	lexer.PLUS:     3,
	lexer.MINUS:    3,
	lexer.ASTERISK: 4,
	lexer.SLASH:    4,
}

func isTypeKeyword(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.INT, lexer.FLOAT, lexer.CHAR, lexer.BOOL, lexer.STRING:
		return true
	}
	return false
}

// Parse consumes the full token stream and returns the flat top-level
// statement list. It halts and returns the first error encountered;
// there is no resynchronization (spec.md §4.2 "Errors").
func (p *Parser) Parse() ([]ast.Stmt, error) {
	stmts := make([]ast.Stmt, 0)
	for p.curr.Kind != lexer.EOF {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.curr.Kind {
	case lexer.CLASS:
		return p.parseClassDef()
	case lexer.COMEANDDO:
		return p.parseFuncDef()
	case lexer.FOR:
		return p.parseFor()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.IF:
		return p.parseIf()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.RETURN:
		return p.parseReturn()
	}

	if isTypeKeyword(p.curr.Kind) {
		return p.parseTypedDecl()
	}

	if p.curr.Kind == lexer.IDENT && p.ClassNames[p.curr.Value] {
		return p.parseClassLedStmt()
	}

	return p.parseAssignableOrExprStmt(true)
}

func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	p.read()

	stmts := make([]ast.Stmt, 0)
	for p.scanner.HasTokens() && p.curr.Kind != lexer.RBRACE {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	p.read()

	return stmts, nil
}

func (p *Parser) parseClassDef() (*ast.ClassDefStmt, error) {
	if err := p.expect(lexer.CLASS); err != nil {
		return nil, err
	}
	startTok := p.curr
	p.read()

	if err := p.expect(lexer.IDENT); err != nil {
		return nil, err
	}
	name := p.curr.Value
	p.read()
	p.ClassNames[name] = true

	base := ""
	if p.curr.Kind == lexer.COLON {
		p.read()
		if err := p.expect(lexer.IDENT); err != nil {
			return nil, err
		}
		base = p.curr.Value
		p.read()
	}

	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	p.read()

	fields := make([]ast.FieldDecl, 0)
	methods := make([]*ast.FuncDefStmt, 0)
	for p.scanner.HasTokens() && p.curr.Kind != lexer.RBRACE {
		switch {
		case isTypeKeyword(p.curr.Kind):
			fieldType := p.curr.Value
			p.read()

			if err := p.expect(lexer.IDENT); err != nil {
				return nil, err
			}
			fieldName := p.curr.Value
			p.read()

			if err := p.expect(lexer.SEMICOLON); err != nil {
				return nil, err
			}
			p.read()

			fields = append(fields, ast.FieldDecl{Type: fieldType, Name: fieldName})

		case p.curr.Kind == lexer.COMEANDDO:
			method, err := p.parseFuncDef()
			if err != nil {
				return nil, err
			}
			methods = append(methods, method)

		default:
			return nil, p.unexpected()
		}
	}

	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	p.read()

	return &ast.ClassDefStmt{
		StartToken: &startTok,
		Name:       name,
		Base:       base,
		Fields:     fields,
		Methods:    methods,
	}, nil
}

func (p *Parser) parseFuncDef() (*ast.FuncDefStmt, error) {
	if err := p.expect(lexer.COMEANDDO); err != nil {
		return nil, err
	}
	startTok := p.curr
	p.read()

	if err := p.expect(lexer.IDENT); err != nil {
		return nil, err
	}
	name := p.curr.Value
	p.read()

	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	p.read()

	params := make([]string, 0)
	for p.scanner.HasTokens() && p.curr.Kind != lexer.RPAREN {
		if isTypeKeyword(p.curr.Kind) {
			p.read()
		}
		if err := p.expect(lexer.IDENT); err != nil {
			return nil, err
		}
		params = append(params, p.curr.Value)
		p.read()

		if p.curr.Kind == lexer.COMMA {
			p.read()
		}
	}

	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	p.read()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FuncDefStmt{
		StartToken: &startTok,
		Name:       name,
		Params:     params,
		Body:       body,
	}, nil
}

func (p *Parser) parseClassLedStmt() (ast.Stmt, error) {
	startTok := p.curr
	className := p.curr.Value
	p.read()

	if err := p.expect(lexer.IDENT); err != nil {
		return nil, err
	}
	name := p.curr.Value
	p.read()

	switch p.curr.Kind {
	case lexer.LBRACKET:
		p.read()
		size, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		p.read()
		if err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		p.read()

		return &ast.ObjectArrayDeclStmt{
			StartToken: &startTok,
			ClassName:  className,
			Name:       name,
			Size:       size,
		}, nil

	case lexer.LPAREN:
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		p.read()

		return &ast.ObjectInstStmt{
			StartToken: &startTok,
			ClassName:  className,
			Name:       name,
			HasArgs:    true,
			Args:       args,
		}, nil

	case lexer.SEMICOLON:
		p.read()
		return &ast.ObjectInstStmt{
			StartToken: &startTok,
			ClassName:  className,
			Name:       name,
			HasArgs:    false,
		}, nil
	}

	return nil, p.unexpected()
}

func (p *Parser) parseTypedDecl() (ast.Stmt, error) {
	typeTok := p.curr
	typeName := p.curr.Value
	p.read()

	if err := p.expect(lexer.IDENT); err != nil {
		return nil, err
	}
	name := p.curr.Value
	p.read()

	switch p.curr.Kind {
	case lexer.LBRACKET:
		p.read()

		if p.curr.Kind == lexer.RBRACKET {
			p.read()

			if p.curr.Kind == lexer.ASSIGN {
				p.read()
				elements, err := p.parseArrayLiteral()
				if err != nil {
					return nil, err
				}
				if err := p.expect(lexer.SEMICOLON); err != nil {
					return nil, err
				}
				p.read()

				return &ast.ArrayDeclStmt{
					StartToken: &typeTok,
					ElemType:   typeName,
					Name:       name,
					Elements:   elements,
				}, nil
			}

			if err := p.expect(lexer.SEMICOLON); err != nil {
				return nil, err
			}
			p.read()

			return &ast.ArrayDeclStmt{
				StartToken: &typeTok,
				ElemType:   typeName,
				Name:       name,
			}, nil
		}

		size, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		p.read()
		if err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		p.read()

		return &ast.ArrayDeclStmt{
			StartToken: &typeTok,
			ElemType:   typeName,
			Name:       name,
			Size:       size,
		}, nil

	case lexer.ASSIGN:
		p.read()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		p.read()

		return &ast.AssignStmt{
			StartToken:   &typeTok,
			Target:       ast.AssignTarget{Name: name},
			DeclaredType: typeName,
			Value:        value,
		}, nil

	case lexer.SEMICOLON:
		p.read()
		return &ast.AssignStmt{
			StartToken:   &typeTok,
			Target:       ast.AssignTarget{Name: name},
			DeclaredType: typeName,
		}, nil
	}

	return nil, p.unexpected()
}

func (p *Parser) parseArrayLiteral() ([]ast.Expr, error) {
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	p.read()

	elements := make([]ast.Expr, 0)
	for p.scanner.HasTokens() && p.curr.Kind != lexer.RBRACE {
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)

		if p.curr.Kind == lexer.COMMA {
			p.read()
		}
	}

	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	p.read()

	return elements, nil
}

func (p *Parser) parseIf() (*ast.IfStmt, error) {
	if err := p.expect(lexer.IF); err != nil {
		return nil, err
	}
	startTok := p.curr
	p.read()

	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	p.read()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	p.read()

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBlock []ast.Stmt
	if p.curr.Kind == lexer.ELSE {
		p.read()
		if p.curr.Kind == lexer.IF {
			elseIf, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			elseBlock = []ast.Stmt{elseIf}
		} else {
			elseBlock, err = p.parseBlock()
			if err != nil {
				return nil, err
			}
		}
	}

	return &ast.IfStmt{
		StartToken: &startTok,
		Cond:       cond,
		Then:       then,
		Else:       elseBlock,
	}, nil
}

func (p *Parser) parseWhile() (*ast.WhileStmt, error) {
	if err := p.expect(lexer.WHILE); err != nil {
		return nil, err
	}
	startTok := p.curr
	p.read()

	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	p.read()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	p.read()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{StartToken: &startTok, Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (*ast.ForStmt, error) {
	if err := p.expect(lexer.FOR); err != nil {
		return nil, err
	}
	startTok := p.curr
	p.read()

	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	p.read()

	var init ast.Stmt
	var err error
	if p.curr.Kind != lexer.SEMICOLON {
		if isTypeKeyword(p.curr.Kind) {
			init, err = p.parseTypedDecl()
		} else {
			init, err = p.parseAssignableOrExprStmt(true)
		}
		if err != nil {
			return nil, err
		}
	} else {
		p.read()
	}

	var cond ast.Expr
	if p.curr.Kind != lexer.SEMICOLON {
		cond, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	p.read()

	var post ast.Stmt
	if p.curr.Kind != lexer.RPAREN {
		post, err = p.parseAssignableOrExprStmt(false)
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	p.read()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ForStmt{
		StartToken: &startTok,
		Init:       init,
		Cond:       cond,
		Post:       post,
		Body:       body,
	}, nil
}

func (p *Parser) parsePrint() (*ast.PrintStmt, error) {
	if err := p.expect(lexer.PRINT); err != nil {
		return nil, err
	}
	startTok := p.curr
	p.read()

	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	p.read()
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	p.read()
	if err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	p.read()

	return &ast.PrintStmt{StartToken: &startTok, Expr: expr}, nil
}

func (p *Parser) parseReturn() (*ast.ReturnStmt, error) {
	if err := p.expect(lexer.RETURN); err != nil {
		return nil, err
	}
	startTok := p.curr
	p.read()

	if p.curr.Kind == lexer.SEMICOLON {
		p.read()
		return &ast.ReturnStmt{StartToken: &startTok}, nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	p.read()

	return &ast.ReturnStmt{StartToken: &startTok, Expr: expr}, nil
}

// parseAssignableOrExprStmt parses a statement led by a non-class
// identifier: either an assignment target followed by `= value`, or a
// plain expression statement (a function call, most commonly). When
// consumeSemicolon is false this is being called for a for-loop's
// post-statement, which is terminated by `)` rather than `;`.
func (p *Parser) parseAssignableOrExprStmt(consumeSemicolon bool) (ast.Stmt, error) {
	startTok := p.curr

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.curr.Kind != lexer.ASSIGN {
		if consumeSemicolon {
			if err := p.expect(lexer.SEMICOLON); err != nil {
				return nil, err
			}
			p.read()
		}
		return &ast.ExprStmt{StartToken: &startTok, Expr: expr}, nil
	}

	p.read() // consume '='
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if consumeSemicolon {
		if err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		p.read()
	}

	if arr, ok := expr.(*ast.ArrayAccessExpr); ok {
		return &ast.ArrayElementAssignStmt{
			StartToken: &startTok,
			ArrayName:  arr.ArrayName,
			Index:      arr.Index,
			Value:      value,
		}, nil
	}

	target, err := p.exprToAssignTarget(expr)
	if err != nil {
		return nil, err
	}

	return &ast.AssignStmt{
		StartToken: &startTok,
		Target:     target,
		Value:      value,
	}, nil
}

func (p *Parser) exprToAssignTarget(expr ast.Expr) (ast.AssignTarget, error) {
	switch e := expr.(type) {
	case *ast.VarExpr:
		return ast.AssignTarget{Name: e.Name}, nil

	case *ast.MemberAccessExpr:
		switch obj := e.Object.(type) {
		case *ast.VarExpr:
			return ast.AssignTarget{Name: obj.Name, Member: e.Member}, nil

		case *ast.ArrayAccessExpr:
			if _, ok := obj.Index.(*ast.IntLit); !ok {
				tok := obj.FirstToken()
				return ast.AssignTarget{}, compiler_errors.NewParseError(
					p.fileName, "non-constant index in assignment-target chain", tok.Line, tok.Column)
			}
			return ast.AssignTarget{Name: obj.ArrayName, Index: obj.Index, Member: e.Member}, nil
		}
	}

	tok := expr.FirstToken()
	return ast.AssignTarget{}, compiler_errors.NewParseError(p.fileName, "invalid assignment target", tok.Line, tok.Column)
}

// --- expressions ---

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseBinaryExpr(0)
}

func (p *Parser) parseBinaryExpr(minBindingPower int) (ast.Expr, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		bindingPower, ok := bindingPowerLookup[p.curr.Kind]
		if !ok || bindingPower < minBindingPower {
			return left, nil
		}

		opTok := p.curr
		p.read()

		right, err := p.parseBinaryExpr(bindingPower + 1)
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{StartToken: left.FirstToken(), Op: opTok.Value, Left: left, Right: right}
	}
}

func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	if p.curr.Kind == lexer.NOT || p.curr.Kind == lexer.MINUS {
		opTok := p.curr
		p.read()

		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}

		return &ast.UnaryExpr{StartToken: &opTok, Op: opTok.Value, Operand: operand}, nil
	}

	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	switch p.curr.Kind {
	case lexer.INT_LIT:
		return p.parseIntLit()
	case lexer.FLOAT_LIT:
		return p.parseFloatLit()
	case lexer.CHAR_LIT:
		return p.parseCharLit()
	case lexer.BOOL_LIT:
		return p.parseBoolLit()
	case lexer.STRING_LIT:
		return p.parseStringLit()

	case lexer.LPAREN:
		p.read()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		p.read()
		return expr, nil

	case lexer.LBRACE:
		startTok := p.curr
		elements, err := p.parseArrayLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLit{StartToken: &startTok, Elements: elements}, nil

	case lexer.INPUT:
		startTok := p.curr
		p.read()
		if err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		p.read()
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		p.read()
		return &ast.InputExpr{StartToken: &startTok}, nil

	case lexer.READ:
		startTok := p.curr
		p.read()
		if err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		p.read()
		if err := p.expect(lexer.STRING_LIT); err != nil {
			return nil, err
		}
		filename := p.curr.Value
		p.read()
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		p.read()
		return &ast.ReadExpr{StartToken: &startTok, Filename: filename}, nil

	case lexer.IDENT:
		return p.parseIdentChain()
	}

	return nil, p.unexpected()
}

// parseIdentChain implements the greedy postfix chain after an
// identifier primary (spec.md §4.2): `[expr]` array access, `.member`
// field access (or method call if followed by `(`), and `(args)` — the
// last only valid on a bare identifier.
func (p *Parser) parseIdentChain() (ast.Expr, error) {
	startTok := p.curr
	name := p.curr.Value
	p.read()

	if p.curr.Kind == lexer.LPAREN {
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &ast.CallExpr{StartToken: &startTok, Name: name, Args: args}, nil
	}

	var expr ast.Expr = &ast.VarExpr{StartToken: &startTok, Name: name}

	if p.curr.Kind == lexer.LBRACKET {
		p.read()
		index, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		p.read()
		expr = &ast.ArrayAccessExpr{StartToken: &startTok, ArrayName: name, Index: index}
	}

	for p.curr.Kind == lexer.DOT {
		p.read()
		if err := p.expect(lexer.IDENT); err != nil {
			return nil, err
		}
		member := p.curr.Value
		p.read()

		if p.curr.Kind == lexer.LPAREN {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.MethodCallExpr{StartToken: &startTok, Object: expr, Method: member, Args: args}
			continue
		}

		expr = &ast.MemberAccessExpr{StartToken: &startTok, Object: expr, Member: member}
	}

	return expr, nil
}

func (p *Parser) parseArgs() ([]ast.Expr, error) {
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	p.read()

	args := make([]ast.Expr, 0)
	for p.scanner.HasTokens() && p.curr.Kind != lexer.RPAREN {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.curr.Kind == lexer.COMMA {
			p.read()
		}
	}

	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	p.read()

	return args, nil
}

func (p *Parser) parseIntLit() (*ast.IntLit, error) {
	startTok := p.curr
	value, err := strconv.ParseInt(p.curr.Value, 10, 32)
	if err != nil {
		return nil, compiler_errors.NewParseError(
			p.fileName, fmt.Sprintf("invalid integer literal: %s", p.curr.Value), startTok.Line, startTok.Column)
	}
	p.read()
	return &ast.IntLit{StartToken: &startTok, Value: int32(value)}, nil
}

func (p *Parser) parseFloatLit() (*ast.FloatLit, error) {
	startTok := p.curr
	value, err := strconv.ParseFloat(p.curr.Value, 64)
	if err != nil {
		return nil, compiler_errors.NewParseError(
			p.fileName, fmt.Sprintf("invalid floating literal: %s", p.curr.Value), startTok.Line, startTok.Column)
	}
	p.read()
	return &ast.FloatLit{StartToken: &startTok, Value: value}, nil
}

func (p *Parser) parseCharLit() (*ast.CharLit, error) {
	startTok := p.curr
	p.read()
	return &ast.CharLit{StartToken: &startTok, Value: startTok.Value[0]}, nil
}

func (p *Parser) parseBoolLit() (*ast.BoolLit, error) {
	startTok := p.curr
	p.read()
	return &ast.BoolLit{StartToken: &startTok, Value: startTok.Value == "true"}, nil
}

func (p *Parser) parseStringLit() (*ast.StringLit, error) {
	startTok := p.curr
	p.read()
	return &ast.StringLit{StartToken: &startTok, Value: startTok.Value}, nil
}

// --- token-stream helpers ---

func (p *Parser) read() {
	p.curr = p.scanner.Read()
}

func (p *Parser) expect(kind lexer.TokenKind) error {
	if p.curr.Kind != kind {
		return compiler_errors.NewParseError(
			p.fileName, fmt.Sprintf("unexpected token: '%s', expected: '%s'", p.curr.Kind, kind),
			p.curr.Line, p.curr.Column)
	}
	return nil
}

func (p *Parser) unexpected() error {
	return compiler_errors.NewParseError(
		p.fileName, fmt.Sprintf("unexpected token: '%s'", p.curr.Kind), p.curr.Line, p.curr.Column)
}
