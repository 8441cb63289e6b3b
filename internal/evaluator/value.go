package evaluator

import (
	"fmt"
	"strconv"
)

// ValueTag discriminates the payload carried by a Value. Booleans have
// no tag of their own — spec.md §3 represents them as integer 0/1 —
// so TagInt doubles as the boolean domain for scalars. A `bool`
// primitive array likewise holds TagInt elements; only its elemType
// records "bool" (see the array type in classobj.go).
type ValueTag int

const (
	TagInt ValueTag = iota
	TagFloat
	TagChar
	TagString
)

// Value is TinyLang's tagged runtime value: 32-bit integer, 64-bit
// floating, a single byte character, or an owned string. There is no
// object tag here — objects and object-array elements are resolved to
// a receiver before a value is ever produced from them (see
// resolveReceiver in expr.go).
type Value struct {
	Tag   ValueTag
	Int   int32
	Float float64
	Char  byte
	Str   string
}

func IntVal(n int32) Value    { return Value{Tag: TagInt, Int: n} }
func FloatVal(f float64) Value { return Value{Tag: TagFloat, Float: f} }
func CharVal(c byte) Value    { return Value{Tag: TagChar, Char: c} }
func StringVal(s string) Value { return Value{Tag: TagString, Str: s} }

// BoolVal encodes a boolean as its spec-mandated integer projection.
func BoolVal(b bool) Value {
	if b {
		return IntVal(1)
	}
	return IntVal(0)
}

func ZeroValue(tag ValueTag) Value {
	switch tag {
	case TagFloat:
		return FloatVal(0)
	case TagChar:
		return CharVal(0)
	case TagString:
		return StringVal("")
	default:
		return IntVal(0)
	}
}

func zeroForDeclaredType(declaredType string) Value {
	switch declaredType {
	case "float":
		return FloatVal(0)
	case "char":
		return CharVal(0)
	case "string":
		return StringVal("")
	default:
		return IntVal(0)
	}
}

func domainForDeclaredType(declaredType string) ValueTag {
	switch declaredType {
	case "float":
		return TagFloat
	case "char":
		return TagChar
	case "string":
		return TagString
	default:
		return TagInt
	}
}

// IntProjection is "the integer projection" spec.md repeatedly refers
// to for conditionals, `!`, and short-circuit decisions: an int
// projects to itself; a float or char projects to 1 when nonzero and
// 0 when zero; a string always projects to 0. No error is raised for
// any tag.
func (v Value) IntProjection() int32 {
	switch v.Tag {
	case TagInt:
		return v.Int
	case TagFloat:
		if v.Float != 0 {
			return 1
		}
		return 0
	case TagChar:
		if v.Char != 0 {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// concatString renders a value the way the `+` string-concatenation
// overload does: integers via their decimal form, floats via their
// default textual form (spec.md §4.3).
func (v Value) concatString() string {
	switch v.Tag {
	case TagInt:
		return strconv.FormatInt(int64(v.Int), 10)
	case TagFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case TagChar:
		return string(v.Char)
	default:
		return v.Str
	}
}

// coerceTo converts v to the payload a declared domain expects. Int
// and float interconvert numerically; a char or string converted to
// int or float takes its IntProjection. Converting to char or string
// returns v unchanged.
func coerceTo(v Value, tag ValueTag) Value {
	if v.Tag == tag {
		return v
	}
	switch tag {
	case TagInt:
		if v.Tag == TagFloat {
			return IntVal(int32(v.Float))
		}
		return IntVal(v.IntProjection())
	case TagFloat:
		if v.Tag == TagInt {
			return FloatVal(float64(v.Int))
		}
		return FloatVal(float64(v.IntProjection()))
	default:
		return v
	}
}

// displayString renders a value for `print`.
func (v Value) displayString() string {
	switch v.Tag {
	case TagInt:
		return strconv.FormatInt(int64(v.Int), 10)
	case TagFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case TagChar:
		return string(v.Char)
	case TagString:
		return v.Str
	default:
		return fmt.Sprintf("%v", v)
	}
}
