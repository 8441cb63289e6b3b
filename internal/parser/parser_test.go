package parser

import (
	"testing"

	"tinylang/internal/ast"
	"tinylang/internal/lexer"
)

func parseSource(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, err := lexer.NewLexer([]byte(src)).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	stmts, err := NewParser("test.tl", lexer.NewTokenScanner(tokens)).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return stmts
}

func parseSourceErr(t *testing.T, src string) error {
	t.Helper()
	tokens, err := lexer.NewLexer([]byte(src)).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	_, err = NewParser("test.tl", lexer.NewTokenScanner(tokens)).Parse()
	return err
}

func TestParseIsDeterministic(t *testing.T) {
	src := "int x = 1; print(x);"
	a := parseSource(t, src)
	b := parseSource(t, src)
	if len(a) != len(b) || len(a) != 2 {
		t.Fatalf("expected two statements both times, got %d and %d", len(a), len(b))
	}
}

func TestTypedDeclarationProducesAssignStmt(t *testing.T) {
	stmts := parseSource(t, "int x = 5;")
	decl, ok := stmts[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("expected *ast.AssignStmt, got %T", stmts[0])
	}
	if decl.DeclaredType != "int" || decl.Target.Name != "x" {
		t.Fatalf("unexpected decl: %+v", decl)
	}
}

func TestArrayDeclarationWithSize(t *testing.T) {
	stmts := parseSource(t, "int arr[5];")
	decl, ok := stmts[0].(*ast.ArrayDeclStmt)
	if !ok {
		t.Fatalf("expected *ast.ArrayDeclStmt, got %T", stmts[0])
	}
	if decl.ElemType != "int" || decl.Name != "arr" || decl.Size == nil {
		t.Fatalf("unexpected decl: %+v", decl)
	}
}

func TestArrayLiteralDeclaration(t *testing.T) {
	stmts := parseSource(t, "int arr[] = {1,2,3};")
	decl, ok := stmts[0].(*ast.ArrayDeclStmt)
	if !ok {
		t.Fatalf("expected *ast.ArrayDeclStmt, got %T", stmts[0])
	}
	if len(decl.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(decl.Elements))
	}
}

func TestArrayElementAssignIsItsOwnNode(t *testing.T) {
	stmts := parseSource(t, "arr[2] = 42;")
	if _, ok := stmts[0].(*ast.ArrayElementAssignStmt); !ok {
		t.Fatalf("expected *ast.ArrayElementAssignStmt, got %T", stmts[0])
	}
}

func TestClassNameEnablesObjectArrayDeclaration(t *testing.T) {
	stmts := parseSource(t, "class P { int v; } P arr[3];")
	if _, ok := stmts[1].(*ast.ObjectArrayDeclStmt); !ok {
		t.Fatalf("expected *ast.ObjectArrayDeclStmt, got %T", stmts[1])
	}
}

func TestDefaultVsConstructorInstantiation(t *testing.T) {
	stmts := parseSource(t, "class P { int v; ComeAndDo init(int x){ v = x; } } P a; P b(7);")
	plain, ok := stmts[1].(*ast.ObjectInstStmt)
	if !ok || plain.HasArgs {
		t.Fatalf("expected default instantiation, got %+v", stmts[1])
	}
	withArgs, ok := stmts[2].(*ast.ObjectInstStmt)
	if !ok || !withArgs.HasArgs || len(withArgs.Args) != 1 {
		t.Fatalf("expected constructor call with one argument, got %+v", stmts[2])
	}
}

func TestMemberAssignmentTarget(t *testing.T) {
	stmts := parseSource(t, "class P { string n; } P p; p.n = \"x\";")
	assign, ok := stmts[2].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("expected *ast.AssignStmt, got %T", stmts[2])
	}
	if assign.Target.Name != "p" || assign.Target.Member != "n" {
		t.Fatalf("unexpected target: %+v", assign.Target)
	}
}

func TestObjectArrayFieldAssignmentTargetRequiresConstantIndex(t *testing.T) {
	stmts := parseSource(t, "class P { string n; } P arr[2]; arr[0].n = \"x\";")
	assign, ok := stmts[2].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("expected *ast.AssignStmt, got %T", stmts[2])
	}
	if assign.Target.Name != "arr" || assign.Target.Member != "n" || assign.Target.Index == nil {
		t.Fatalf("unexpected target: %+v", assign.Target)
	}
}

func TestNonConstantIndexInAssignmentTargetChainIsParseError(t *testing.T) {
	err := parseSourceErr(t, "class P { string n; } P arr[2]; int i = 0; arr[i].n = \"x\";")
	if err == nil {
		t.Fatal("expected a parse error for a non-constant index in an assignment-target chain")
	}
}

func TestBinaryPrecedence(t *testing.T) {
	stmts := parseSource(t, "int x = 1 + 2 * 3;")
	assign := stmts[0].(*ast.AssignStmt)
	bin, ok := assign.Value.(*ast.BinaryExpr)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected top-level '+', got %T", assign.Value)
	}
	rhs, ok := bin.Right.(*ast.BinaryExpr)
	if !ok || rhs.Op != "*" {
		t.Fatalf("expected '*' nested under '+', got %+v", bin.Right)
	}
}

func TestInheritedClassBase(t *testing.T) {
	stmts := parseSource(t, "class A { int v; } class B : A { int w; }")
	b, ok := stmts[1].(*ast.ClassDefStmt)
	if !ok || b.Base != "A" {
		t.Fatalf("expected class B with base A, got %+v", stmts[1])
	}
}
