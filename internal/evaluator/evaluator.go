// Package evaluator tree-walks TinyLang's AST: scoped primitive
// environments, global class/function/object/array tables, and the
// three-pass top-level execution order spec.md §4.4 requires.
package evaluator

import (
	"fmt"
	"io"

	"tinylang/internal/ast"
	"tinylang/internal/compiler_errors"
)

// Evaluator owns every piece of mutable interpreter state: the four
// scoped domains, the global class/function/object/array tables, and
// the host collaborators for `input()`/`read()`/`print`.
type Evaluator struct {
	scopes *domainStacks

	classes     map[string]*classInfo
	functions   map[string]*ast.FuncDefStmt
	objects     map[string]*object
	objectArrays map[string][]*object
	arrays      map[string]*array

	stdout io.Writer
	stdin  StdinReader
	files  FileReader
}

func New(stdout io.Writer, stdin StdinReader, files FileReader) *Evaluator {
	return &Evaluator{
		scopes:       newDomainStacks(),
		classes:      make(map[string]*classInfo),
		functions:    make(map[string]*ast.FuncDefStmt),
		objects:      make(map[string]*object),
		objectArrays: make(map[string][]*object),
		arrays:       make(map[string]*array),
		stdout:       stdout,
		stdin:        stdin,
		files:        files,
	}
}

// Run executes a complete program: register classes, instantiate
// default objects, then execute everything else in source order
// (spec.md §4.4 "Statement execution").
func (e *Evaluator) Run(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if def, ok := s.(*ast.ClassDefStmt); ok {
			if err := e.registerClass(def); err != nil {
				return err
			}
		}
	}

	for _, s := range stmts {
		if inst, ok := s.(*ast.ObjectInstStmt); ok && !inst.HasArgs {
			obj, err := e.defaultObject(inst.ClassName)
			if err != nil {
				return err
			}
			e.objects[inst.Name] = obj
		}
	}

	for _, s := range stmts {
		switch v := s.(type) {
		case *ast.ClassDefStmt:
			continue
		case *ast.ObjectInstStmt:
			if !v.HasArgs {
				continue
			}
		}
		if _, err := e.execTop(s); err != nil {
			return err
		}
	}
	return nil
}

// execTop runs one top-level statement, registering function
// definitions on first encounter and performing constructor-style
// object instantiation (spec.md §4.4 "Function definitions are
// registered the first time they are encountered during pass 3").
func (e *Evaluator) execTop(s ast.Stmt) (*Value, error) {
	switch v := s.(type) {
	case *ast.FuncDefStmt:
		if _, ok := e.functions[v.Name]; !ok {
			e.functions[v.Name] = v
		}
		return nil, nil
	case *ast.ObjectInstStmt:
		return nil, e.instantiateObject(v)
	default:
		return e.execStmt(s)
	}
}

// execBlock runs a statement list, halting and propagating as soon as
// a return is hit or an error occurs.
func (e *Evaluator) execBlock(stmts []ast.Stmt) (*Value, error) {
	for _, s := range stmts {
		ret, err := e.execTop(s)
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret, nil
		}
	}
	return nil, nil
}

// execStmt runs a single statement other than a function definition
// or object instantiation, which execTop handles. Class definitions
// are registered only by Run's first pass; one reaching execStmt is
// reported as an unsupported statement.
func (e *Evaluator) execStmt(s ast.Stmt) (*Value, error) {
	switch v := s.(type) {
	case *ast.AssignStmt:
		return nil, e.execAssign(v)
	case *ast.ArrayElementAssignStmt:
		return nil, e.execArrayElementAssign(v)
	case *ast.ArrayDeclStmt:
		return nil, e.execArrayDecl(v)
	case *ast.ObjectArrayDeclStmt:
		return nil, e.execObjectArrayDecl(v)
	case *ast.PrintStmt:
		val, err := e.eval(v.Expr)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(e.stdout, val.displayString())
		return nil, nil
	case *ast.ReturnStmt:
		if v.Expr == nil {
			zero := IntVal(0)
			return &zero, nil
		}
		val, err := e.eval(v.Expr)
		if err != nil {
			return nil, err
		}
		return &val, nil
	case *ast.IfStmt:
		cond, err := e.eval(v.Cond)
		if err != nil {
			return nil, err
		}
		if cond.IntProjection() != 0 {
			return e.execBlock(v.Then)
		}
		return e.execBlock(v.Else)
	case *ast.WhileStmt:
		for {
			cond, err := e.eval(v.Cond)
			if err != nil {
				return nil, err
			}
			if cond.IntProjection() == 0 {
				return nil, nil
			}
			ret, err := e.execBlock(v.Body)
			if err != nil || ret != nil {
				return ret, err
			}
		}
	case *ast.ForStmt:
		if v.Init != nil {
			if _, err := e.execStmt(v.Init); err != nil {
				return nil, err
			}
		}
		for {
			if v.Cond != nil {
				cond, err := e.eval(v.Cond)
				if err != nil {
					return nil, err
				}
				if cond.IntProjection() == 0 {
					return nil, nil
				}
			}
			ret, err := e.execBlock(v.Body)
			if err != nil || ret != nil {
				return ret, err
			}
			if v.Post != nil {
				if _, err := e.execStmt(v.Post); err != nil {
					return nil, err
				}
			}
		}
	case *ast.ExprStmt:
		_, err := e.eval(v.Expr)
		return nil, err
	default:
		return nil, compiler_errors.NewNameError(fmt.Sprintf("unsupported statement: %T", s))
	}
}
