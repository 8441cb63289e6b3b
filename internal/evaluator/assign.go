package evaluator

import (
	"tinylang/internal/ast"
	"tinylang/internal/compiler_errors"
)

// execAssign dispatches an AssignStmt to a plain scoped write, a field
// write on an object or object-array element, or — when the
// initializer is a bare array literal with no declared type — array
// allocation with the element type inferred from the first element
// (spec.md §4.4's final fallback).
func (e *Evaluator) execAssign(s *ast.AssignStmt) error {
	if s.Target.Member != "" {
		return e.execFieldAssign(s)
	}

	if s.DeclaredType == "" {
		if lit, ok := s.Value.(*ast.ArrayLit); ok {
			return e.allocateArrayFromLiteral(s.Target.Name, lit)
		}
		val, err := e.evalOrZero(s.Value, TagInt)
		if err != nil {
			return err
		}
		e.scopes.write(s.Target.Name, val)
		return nil
	}

	val, err := e.evalOrZero(s.Value, domainForDeclaredType(s.DeclaredType))
	if err != nil {
		return err
	}
	e.scopes.writeTyped(s.Target.Name, s.DeclaredType, val)
	return nil
}

func (e *Evaluator) evalOrZero(expr ast.Expr, fallbackTag ValueTag) (Value, error) {
	if expr == nil {
		return ZeroValue(fallbackTag), nil
	}
	return e.eval(expr)
}

func (e *Evaluator) execFieldAssign(s *ast.AssignStmt) error {
	val, err := e.eval(s.Value)
	if err != nil {
		return err
	}

	if s.Target.Index == nil {
		obj, ok := e.objects[s.Target.Name]
		if !ok {
			return compiler_errors.NewNameError("undefined object: " + s.Target.Name)
		}
		if _, ok := obj.fields[s.Target.Member]; !ok {
			return compiler_errors.NewNameError("undefined field: " + s.Target.Member)
		}
		obj.fields[s.Target.Member] = val
		return nil
	}

	idxVal, err := e.eval(s.Target.Index)
	if err != nil {
		return err
	}
	elems, ok := e.objectArrays[s.Target.Name]
	if !ok {
		return compiler_errors.NewNameError("undefined object array: " + s.Target.Name)
	}
	idx := int(idxVal.IntProjection())
	if idx < 0 || idx >= len(elems) {
		return compiler_errors.NewBoundsError("index out of range for object array: " + s.Target.Name)
	}
	obj := elems[idx]
	if _, ok := obj.fields[s.Target.Member]; !ok {
		return compiler_errors.NewNameError("undefined field: " + s.Target.Member)
	}
	obj.fields[s.Target.Member] = val
	return nil
}

func (e *Evaluator) execArrayElementAssign(s *ast.ArrayElementAssignStmt) error {
	arr, ok := e.arrays[s.ArrayName]
	if !ok {
		return compiler_errors.NewNameError("undefined array: " + s.ArrayName)
	}
	idxVal, err := e.eval(s.Index)
	if err != nil {
		return err
	}
	idx := int(idxVal.IntProjection())
	if idx < 0 || idx >= len(arr.elems) {
		return compiler_errors.NewBoundsError("index out of range for array: " + s.ArrayName)
	}
	val, err := e.eval(s.Value)
	if err != nil {
		return err
	}
	arr.elems[idx] = coerceTo(val, domainForDeclaredType(arr.elemType))
	return nil
}

func (e *Evaluator) execArrayDecl(s *ast.ArrayDeclStmt) error {
	if s.Elements != nil {
		elems := make([]Value, len(s.Elements))
		for i, exprNode := range s.Elements {
			v, err := e.eval(exprNode)
			if err != nil {
				return err
			}
			elems[i] = coerceTo(v, domainForDeclaredType(s.ElemType))
		}
		e.arrays[s.Name] = &array{elemType: s.ElemType, elems: elems}
		return nil
	}

	size := 0
	if s.Size != nil {
		v, err := e.eval(s.Size)
		if err != nil {
			return err
		}
		size = int(v.IntProjection())
	}

	elems := make([]Value, size)
	zero := zeroForDeclaredType(s.ElemType)
	for i := range elems {
		elems[i] = zero
	}
	e.arrays[s.Name] = &array{elemType: s.ElemType, elems: elems}
	return nil
}

func (e *Evaluator) allocateArrayFromLiteral(name string, lit *ast.ArrayLit) error {
	elems := make([]Value, len(lit.Elements))
	elemType := "int"
	for i, exprNode := range lit.Elements {
		v, err := e.eval(exprNode)
		if err != nil {
			return err
		}
		if i == 0 {
			elemType = declaredTypeForTag(v.Tag)
		}
		elems[i] = v
	}
	e.arrays[name] = &array{elemType: elemType, elems: elems}
	return nil
}

func declaredTypeForTag(tag ValueTag) string {
	switch tag {
	case TagFloat:
		return "float"
	case TagChar:
		return "char"
	case TagString:
		return "string"
	default:
		return "int"
	}
}

func (e *Evaluator) execObjectArrayDecl(s *ast.ObjectArrayDeclStmt) error {
	sizeVal, err := e.eval(s.Size)
	if err != nil {
		return err
	}
	size := int(sizeVal.IntProjection())

	elems := make([]*object, size)
	for i := range elems {
		obj, err := e.defaultObject(s.ClassName)
		if err != nil {
			return err
		}
		elems[i] = obj
	}
	e.objectArrays[s.Name] = elems
	return nil
}
