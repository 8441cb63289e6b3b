package evaluator

import (
	"fmt"

	"tinylang/internal/ast"
	"tinylang/internal/compiler_errors"
)

// callFunction implements spec.md §4.4's "Function call": arity
// check, fresh frame on all four stacks, argument binding by the
// argument's own value tag, run the body, pop, and default to integer
// 0 when the body never returned.
func (e *Evaluator) callFunction(call *ast.CallExpr) (Value, error) {
	def, ok := e.functions[call.Name]
	if !ok {
		return Value{}, compiler_errors.NewNameError("undefined function: " + call.Name)
	}
	if len(call.Args) != len(def.Params) {
		return Value{}, compiler_errors.NewArityError(
			fmt.Sprintf("%s expects %d argument(s), got %d", call.Name, len(def.Params), len(call.Args)))
	}

	args := make([]Value, len(call.Args))
	for i, a := range call.Args {
		v, err := e.eval(a)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	prev := e.scopes.push()
	for i, param := range def.Params {
		e.scopes.bind(param, args[i])
	}

	ret, err := e.execBlock(def.Body)
	e.scopes.pop(prev)
	if err != nil {
		return Value{}, err
	}
	if ret != nil {
		return *ret, nil
	}
	return IntVal(0), nil
}

// callMethod implements spec.md §4.4's "Method call": resolve the
// method off the class's already-merged table, push frames, mirror
// every field into the scope frame matching its current value tag so
// the body can read/write fields by unqualified name, run the body,
// copy each field's innermost-frame value back into the object, then
// pop.
func (e *Evaluator) callMethod(obj *object, method string, argExprs []ast.Expr) (Value, error) {
	info, ok := e.classes[obj.className]
	if !ok {
		return Value{}, compiler_errors.NewNameError("undefined class: " + obj.className)
	}
	def, ok := info.methods[method]
	if !ok {
		return Value{}, compiler_errors.NewNameError("undefined method: " + method)
	}
	if len(argExprs) != len(def.Params) {
		return Value{}, compiler_errors.NewArityError(
			fmt.Sprintf("%s.%s expects %d argument(s), got %d", obj.className, method, len(def.Params), len(argExprs)))
	}

	args := make([]Value, len(argExprs))
	for i, a := range argExprs {
		v, err := e.eval(a)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	prev := e.scopes.push()
	for name, val := range obj.fields {
		e.scopes.bind(name, val)
	}
	for i, param := range def.Params {
		e.scopes.bind(param, args[i])
	}

	ret, err := e.execBlock(def.Body)

	for name := range obj.fields {
		if v, ok := e.scopes.lookupTop(name); ok {
			obj.fields[name] = v
		}
	}
	e.scopes.pop(prev)

	if err != nil {
		return Value{}, err
	}
	if ret != nil {
		return *ret, nil
	}
	return IntVal(0), nil
}

// instantiateObject creates a default-initialized object and, only
// when the instantiation statement carried argument parentheses, runs
// its "init" constructor method immediately afterward (spec.md §4.4
// "Constructor"). Top-level default instantiations are created by
// Run's second pass and skipped by its third, so they never reach this
// method. Nested instantiation statements (inside a function, method,
// or control-flow body) have no such pre-pass and rely on this method
// entirely.
func (e *Evaluator) instantiateObject(s *ast.ObjectInstStmt) error {
	obj, err := e.defaultObject(s.ClassName)
	if err != nil {
		return err
	}
	e.objects[s.Name] = obj

	if !s.HasArgs {
		return nil
	}

	info, ok := e.classes[s.ClassName]
	if !ok {
		return compiler_errors.NewNameError("undefined class: " + s.ClassName)
	}
	if _, ok := info.methods["init"]; !ok {
		if len(s.Args) != 0 {
			return compiler_errors.NewArityError(s.ClassName + " has no constructor but was given arguments")
		}
		return nil
	}

	_, err = e.callMethod(obj, "init", s.Args)
	return err
}
