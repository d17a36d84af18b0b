package ir

// EachReference visits every outgoing reference in the program: supertypes,
// implemented interfaces, field/parameter/return types, typedef bodies, and
// extension member descriptors. The owner passed to fn is the declaration
// the reference occurs in. Used by integrity checking and name-surface
// tooling; the visit order is the declaration order.
func (p *Program) EachReference(fn func(owner NamedNode, ref *Reference)) {
	for _, lib := range p.Libraries {
		for _, c := range lib.Classes {
			for _, tp := range c.TypeParameters {
				walkTypeRefs(tp.Bound, func(r *Reference) { fn(tp, r) })
			}
			if c.Supertype != nil {
				fn(c, c.Supertype.Class)
				for _, arg := range c.Supertype.TypeArguments {
					walkTypeRefs(arg, func(r *Reference) { fn(c, r) })
				}
			}
			for _, it := range c.Interfaces {
				fn(c, it.Class)
				for _, arg := range it.TypeArguments {
					walkTypeRefs(arg, func(r *Reference) { fn(c, r) })
				}
			}
			for _, f := range c.Fields {
				walkTypeRefs(f.Type, func(r *Reference) { fn(f, r) })
			}
			for _, pr := range c.Procedures {
				walkFunctionRefs(pr.Function, pr, fn)
			}
			for _, ct := range c.Constructors {
				walkFunctionRefs(ct.Function, ct, fn)
			}
		}
		for _, e := range lib.Extensions {
			for _, tp := range e.TypeParameters {
				walkTypeRefs(tp.Bound, func(r *Reference) { fn(tp, r) })
			}
			walkTypeRefs(e.OnType, func(r *Reference) { fn(e, r) })
			for _, m := range e.Members {
				if m.Member != nil {
					fn(e, m.Member)
				}
			}
		}
		for _, td := range lib.Typedefs {
			for _, tp := range td.TypeParameters {
				walkTypeRefs(tp.Bound, func(r *Reference) { fn(tp, r) })
			}
			walkTypeRefs(td.Type, func(r *Reference) { fn(td, r) })
		}
		for _, f := range lib.Fields {
			walkTypeRefs(f.Type, func(r *Reference) { fn(f, r) })
		}
		for _, pr := range lib.Procedures {
			walkFunctionRefs(pr.Function, pr, fn)
		}
	}
}

func walkFunctionRefs(f *FunctionNode, owner NamedNode, fn func(NamedNode, *Reference)) {
	if f == nil {
		return
	}
	for _, tp := range f.TypeParameters {
		walkTypeRefs(tp.Bound, func(r *Reference) { fn(tp, r) })
	}
	for _, p := range f.Parameters {
		walkTypeRefs(p.Type, func(r *Reference) { fn(owner, r) })
	}
	walkTypeRefs(f.ReturnType, func(r *Reference) { fn(owner, r) })
}

// walkTypeRefs visits the class and typedef references inside a type.
// Type-parameter uses point directly at declarations and carry no
// reference.
func walkTypeRefs(t Type, fn func(*Reference)) {
	switch t := t.(type) {
	case nil:
	case *InterfaceType:
		if t.Class != nil {
			fn(t.Class)
		}
		for _, arg := range t.TypeArguments {
			walkTypeRefs(arg, fn)
		}
	case *TypedefType:
		if t.Typedef != nil {
			fn(t.Typedef)
		}
		for _, arg := range t.TypeArguments {
			walkTypeRefs(arg, fn)
		}
	case *FunctionType:
		for _, p := range t.Parameters {
			walkTypeRefs(p, fn)
		}
		walkTypeRefs(t.ReturnType, fn)
	case *TypeParameterType, *DynamicType, *VoidType, *NeverType:
	}
}
