package evaluator

import (
	"tinylang/internal/ast"
	"tinylang/internal/compiler_errors"
)

// classInfo is a class after inheritance merging: Fields and Methods
// are already flattened base-first with child overrides applied, so
// dispatch never has to walk the chain again at call time.
type classInfo struct {
	name    string
	fields  []ast.FieldDecl
	methods map[string]*ast.FuncDefStmt
}

func (c *classInfo) fieldType(name string) (string, bool) {
	for _, f := range c.fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return "", false
}

// object is one instance: a class tag plus a field map keyed by field
// name. Method calls mirror this map into scope frames and write it
// back on return (spec.md §4.4).
type object struct {
	className string
	fields    map[string]Value
}

// array is a homogeneous primitive array. ElemType discriminates which
// of the five primitive domains populates Elems; the five tables
// spec.md §4.4 calls for are modeled as one Go slice type carrying its
// own element-type tag rather than five parallel Go maps, since the
// type tag already guarantees the tables never cross-contaminate.
type array struct {
	elemType string
	elems    []Value
}

// registerClass flattens class into the global class table, merging
// fields and methods up its inheritance chain base-first with child
// declarations overriding by name (spec.md §4.4 "Inheritance
// resolution").
func (e *Evaluator) registerClass(def *ast.ClassDefStmt) error {
	info := &classInfo{name: def.Name, methods: make(map[string]*ast.FuncDefStmt)}

	if def.Base != "" {
		base, ok := e.classes[def.Base]
		if !ok {
			return compiler_errors.NewNameError("undefined base class: " + def.Base)
		}
		info.fields = append(info.fields, base.fields...)
		for name, m := range base.methods {
			info.methods[name] = m
		}
	}

	for _, f := range def.Fields {
		info.fields = overrideField(info.fields, f)
	}
	for _, m := range def.Methods {
		info.methods[m.Name] = m
	}

	e.classes[def.Name] = info
	return nil
}

func overrideField(fields []ast.FieldDecl, f ast.FieldDecl) []ast.FieldDecl {
	for i, existing := range fields {
		if existing.Name == f.Name {
			fields[i] = f
			return fields
		}
	}
	return append(fields, f)
}

func (e *Evaluator) defaultObject(className string) (*object, error) {
	info, ok := e.classes[className]
	if !ok {
		return nil, compiler_errors.NewNameError("undefined class: " + className)
	}
	obj := &object{className: className, fields: make(map[string]Value)}
	for _, f := range info.fields {
		obj.fields[f.Name] = zeroForDeclaredType(f.Type)
	}
	return obj, nil
}
