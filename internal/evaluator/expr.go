package evaluator

import (
	"strconv"

	"tinylang/internal/ast"
	"tinylang/internal/compiler_errors"
)

func (e *Evaluator) eval(expr ast.Expr) (Value, error) {
	switch v := expr.(type) {
	case *ast.IntLit:
		return IntVal(v.Value), nil
	case *ast.FloatLit:
		return FloatVal(v.Value), nil
	case *ast.CharLit:
		return CharVal(v.Value), nil
	case *ast.BoolLit:
		return BoolVal(v.Value), nil
	case *ast.StringLit:
		return StringVal(v.Value), nil

	case *ast.VarExpr:
		val, ok := e.scopes.read(v.Name)
		if !ok {
			return Value{}, compiler_errors.NewNameError("undefined variable: " + v.Name)
		}
		return val, nil

	case *ast.UnaryExpr:
		return e.evalUnary(v)
	case *ast.BinaryExpr:
		return e.evalBinary(v)

	case *ast.CallExpr:
		return e.callFunction(v)

	case *ast.ArrayAccessExpr:
		arr, ok := e.arrays[v.ArrayName]
		if !ok {
			return Value{}, compiler_errors.NewNameError("undefined array: " + v.ArrayName)
		}
		idxVal, err := e.eval(v.Index)
		if err != nil {
			return Value{}, err
		}
		idx := int(idxVal.IntProjection())
		if idx < 0 || idx >= len(arr.elems) {
			return Value{}, compiler_errors.NewBoundsError("index out of range for array: " + v.ArrayName)
		}
		return arr.elems[idx], nil

	case *ast.ArrayLit:
		return Value{}, compiler_errors.NewTypeError("array literal is only valid as an initializer")

	case *ast.MemberAccessExpr:
		obj, err := e.resolveReceiver(v.Object)
		if err != nil {
			return Value{}, err
		}
		val, ok := obj.fields[v.Member]
		if !ok {
			return Value{}, compiler_errors.NewNameError("undefined field: " + v.Member)
		}
		return val, nil

	case *ast.MethodCallExpr:
		obj, err := e.resolveReceiver(v.Object)
		if err != nil {
			return Value{}, err
		}
		return e.callMethod(obj, v.Method, v.Args)

	case *ast.InputExpr:
		n, err := e.stdin.ReadInt()
		if err != nil {
			return Value{}, compiler_errors.NewIOError(err.Error())
		}
		return IntVal(n), nil

	case *ast.ReadExpr:
		n, err := e.files.ReadIntFrom(v.Filename)
		if err != nil {
			return Value{}, compiler_errors.NewIOError(err.Error())
		}
		return IntVal(n), nil
	}

	return Value{}, compiler_errors.NewTypeError("unsupported expression")
}

// resolveReceiver locates the object named by a member-access or
// method-call target: a bare variable, or `array[index]` naming an
// object-array element (the "object-array-element proxy" spec.md §3
// describes resolves directly to the element here, with no separate
// proxy value ever materialized).
func (e *Evaluator) resolveReceiver(objExpr ast.Expr) (*object, error) {
	switch v := objExpr.(type) {
	case *ast.VarExpr:
		obj, ok := e.objects[v.Name]
		if !ok {
			return nil, compiler_errors.NewNameError("undefined object: " + v.Name)
		}
		return obj, nil

	case *ast.ArrayAccessExpr:
		elems, ok := e.objectArrays[v.ArrayName]
		if !ok {
			return nil, compiler_errors.NewNameError("undefined object array: " + v.ArrayName)
		}
		idxVal, err := e.eval(v.Index)
		if err != nil {
			return nil, err
		}
		idx := int(idxVal.IntProjection())
		if idx < 0 || idx >= len(elems) {
			return nil, compiler_errors.NewBoundsError("index out of range for object array: " + v.ArrayName)
		}
		return elems[idx], nil
	}

	tok := objExpr.FirstToken()
	return nil, compiler_errors.NewTypeError("not an object receiver at line " + strconv.Itoa(tok.Line))
}

func (e *Evaluator) evalUnary(v *ast.UnaryExpr) (Value, error) {
	operand, err := e.eval(v.Operand)
	if err != nil {
		return Value{}, err
	}
	switch v.Op {
	case "!":
		return BoolVal(operand.IntProjection() == 0), nil
	case "-":
		switch operand.Tag {
		case TagFloat:
			return FloatVal(-operand.Float), nil
		default:
			return IntVal(-operand.IntProjection()), nil
		}
	}
	return Value{}, compiler_errors.NewTypeError("unsupported unary operator: " + v.Op)
}

func (e *Evaluator) evalBinary(v *ast.BinaryExpr) (Value, error) {
	switch v.Op {
	case "&&":
		left, err := e.eval(v.Left)
		if err != nil {
			return Value{}, err
		}
		if left.IntProjection() == 0 {
			return BoolVal(false), nil
		}
		right, err := e.eval(v.Right)
		if err != nil {
			return Value{}, err
		}
		return BoolVal(right.IntProjection() != 0), nil

	case "||":
		left, err := e.eval(v.Left)
		if err != nil {
			return Value{}, err
		}
		if left.IntProjection() != 0 {
			return BoolVal(true), nil
		}
		right, err := e.eval(v.Right)
		if err != nil {
			return Value{}, err
		}
		return BoolVal(right.IntProjection() != 0), nil
	}

	left, err := e.eval(v.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := e.eval(v.Right)
	if err != nil {
		return Value{}, err
	}
	return applyBinary(v.Op, left, right)
}

// applyBinary implements spec.md §4.3's numeric promotion ladder: any
// floating operand promotes both sides and the result to floating;
// otherwise two characters are restricted to equality operators;
// otherwise everything is integer, with characters contributing their
// numeric code. `+` is separately overloaded to string concatenation
// whenever either operand is a string.
func applyBinary(op string, left, right Value) (Value, error) {
	if op == "+" && (left.Tag == TagString || right.Tag == TagString) {
		return StringVal(left.concatString() + right.concatString()), nil
	}

	if left.Tag == TagFloat || right.Tag == TagFloat {
		return applyFloat(op, toFloat(left), toFloat(right))
	}

	if left.Tag == TagChar && right.Tag == TagChar {
		switch op {
		case "==":
			return BoolVal(left.Char == right.Char), nil
		case "!=":
			return BoolVal(left.Char != right.Char), nil
		}
		return Value{}, compiler_errors.NewTypeError("operator " + op + " is not defined for two characters")
	}

	return applyInt(op, toInt(left), toInt(right))
}

func toFloat(v Value) float64 {
	switch v.Tag {
	case TagFloat:
		return v.Float
	case TagChar:
		return float64(v.Char)
	default:
		return float64(v.IntProjection())
	}
}

func toInt(v Value) int32 {
	if v.Tag == TagChar {
		return int32(v.Char)
	}
	return v.IntProjection()
}

func applyFloat(op string, left, right float64) (Value, error) {
	switch op {
	case "+":
		return FloatVal(left + right), nil
	case "-":
		return FloatVal(left - right), nil
	case "*":
		return FloatVal(left * right), nil
	case "/":
		if right == 0 {
			return Value{}, compiler_errors.NewArithmeticError("division by zero")
		}
		return FloatVal(left / right), nil
	case "==":
		return BoolVal(left == right), nil
	case "!=":
		return BoolVal(left != right), nil
	case "<":
		return BoolVal(left < right), nil
	case ">":
		return BoolVal(left > right), nil
	}
	return Value{}, compiler_errors.NewTypeError("unsupported operator: " + op)
}

func applyInt(op string, left, right int32) (Value, error) {
	switch op {
	case "+":
		return IntVal(left + right), nil
	case "-":
		return IntVal(left - right), nil
	case "*":
		return IntVal(left * right), nil
	case "/":
		if right == 0 {
			return Value{}, compiler_errors.NewArithmeticError("division by zero")
		}
		return IntVal(left / right), nil
	case "==":
		return BoolVal(left == right), nil
	case "!=":
		return BoolVal(left != right), nil
	case "<":
		return BoolVal(left < right), nil
	case ">":
		return BoolVal(left > right), nil
	}
	return Value{}, compiler_errors.NewTypeError("unsupported operator: " + op)
}
