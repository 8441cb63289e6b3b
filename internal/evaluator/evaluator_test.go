package evaluator

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"tinylang/internal/lexer"
	"tinylang/internal/parser"
)

type noStdin struct{}

func (noStdin) ReadInt() (int32, error) { return 0, fmt.Errorf("no stdin configured") }

type noFiles struct{}

func (noFiles) ReadIntFrom(string) (int32, error) { return 0, fmt.Errorf("no files configured") }

func runSource(t *testing.T, src string) string {
	t.Helper()
	tokens, err := lexer.NewLexer([]byte(src)).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	stmts, err := parser.NewParser("test.tl", lexer.NewTokenScanner(tokens)).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var out bytes.Buffer
	eval := New(&out, noStdin{}, noFiles{})
	if err := eval.Run(stmts); err != nil {
		t.Fatalf("evaluation error: %v", err)
	}
	return out.String()
}

func assertLines(t *testing.T, got string, want ...string) {
	t.Helper()
	gotLines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(gotLines) != len(want) {
		t.Fatalf("got %d output lines %v, want %d %v", len(gotLines), gotLines, len(want), want)
	}
	for i := range want {
		if gotLines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, gotLines[i], want[i])
		}
	}
}

func TestScopedIntegers(t *testing.T) {
	out := runSource(t, `int x = 100; print(x); ComeAndDo t(){ int x = 42; print(x); } t(); print(x);`)
	assertLines(t, out, "100", "42", "100")
}

func TestShortCircuitAndPromotion(t *testing.T) {
	out := runSource(t, `int a = 5; int c = 0; print(a > 0 && c > 0); print(!c); float f = 1; print(f + 2);`)
	assertLines(t, out, "0", "1", "3")
}

func TestArrayLiteralWriteRead(t *testing.T) {
	out := runSource(t, `int arr[] = {1,2,3,4,5}; arr[2] = 42; print(arr[2]); print(arr[0]);`)
	assertLines(t, out, "42", "1")
}

func TestSingleInheritanceAndMethodDispatch(t *testing.T) {
	out := runSource(t, `
		class A { int v; ComeAndDo show(){ print(v); } }
		class B : A { ComeAndDo init(int x){ v = x; } }
		B b(7); b.show();
	`)
	assertLines(t, out, "7")
}

func TestObjectArrayWithFieldsAndMethod(t *testing.T) {
	out := runSource(t, `
		class P { string n; ComeAndDo greet(){ print(n); } }
		P p[2]; p[0].n = "Alice"; p[1].n = "Bob"; p[0].greet(); p[1].greet();
	`)
	assertLines(t, out, "Alice", "Bob")
}

func TestStringConcatenationAcrossTypes(t *testing.T) {
	out := runSource(t, `string s = "x=" + 5; print(s);`)
	assertLines(t, out, "x=5")
}

func TestIntegerWritesNeverCrossIntoEnclosingScope(t *testing.T) {
	out := runSource(t, `
		int x = 1;
		ComeAndDo t(){ x = 2; print(x); }
		t();
		print(x);
	`)
	// Integer writes always target the current frame: the call's write to
	// x creates a fresh binding local to t, leaving the global x intact.
	assertLines(t, out, "2", "1")
}

func TestFloatWritesThroughToEnclosingScope(t *testing.T) {
	out := runSource(t, `
		float x = 1;
		ComeAndDo t(){ x = 2.0; }
		t();
		print(x);
	`)
	assertLines(t, out, "2")
}

func TestDivisionByZeroIsFatal(t *testing.T) {
	tokens, err := lexer.NewLexer([]byte(`int x = 1 / 0;`)).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	stmts, err := parser.NewParser("test.tl", lexer.NewTokenScanner(tokens)).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var out bytes.Buffer
	eval := New(&out, noStdin{}, noFiles{})
	if err := eval.Run(stmts); err == nil {
		t.Fatal("expected division by zero to be a fatal evaluation error")
	}
}

func TestArrayOutOfBoundsIsFatal(t *testing.T) {
	tokens, err := lexer.NewLexer([]byte(`int arr[2]; print(arr[5]);`)).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	stmts, err := parser.NewParser("test.tl", lexer.NewTokenScanner(tokens)).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var out bytes.Buffer
	eval := New(&out, noStdin{}, noFiles{})
	if err := eval.Run(stmts); err == nil {
		t.Fatal("expected an out-of-range array index to be a fatal evaluation error")
	}
}

func TestForLoopAccumulates(t *testing.T) {
	out := runSource(t, `int sum = 0; for (int i = 0; i < 5; i = i + 1) { sum = sum + i; } print(sum);`)
	assertLines(t, out, "10")
}

func TestFunctionReturnsIntegerZeroByDefault(t *testing.T) {
	out := runSource(t, `ComeAndDo noop(){ int y = 1; } print(noop());`)
	assertLines(t, out, "0")
}
