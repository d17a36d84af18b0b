package ir

// TypeParameter is a generic type parameter of a class, extension, typedef,
// procedure, or constructor. Synthetic type parameters may be unnamed; the
// printer gives those a diagnostic fallback rendering so they stay
// individually distinguishable in dumps.
type TypeParameter struct {
	// Name may be empty for synthetic parameters.
	Name string

	// Bound is the upper bound, or nil for an unconstrained parameter.
	Bound Type

	parent    NamedNode
	reference *Reference
}

// NewTypeParameter returns a type parameter with the given name.
func NewTypeParameter(name string) *TypeParameter {
	return &TypeParameter{Name: name}
}

// Kind returns KindTypeParameter.
func (t *TypeParameter) Kind() NodeKind { return KindTypeParameter }

// Parent returns the declaration the parameter belongs to.
func (t *TypeParameter) Parent() NamedNode { return t.parent }

// Ref returns the type parameter's identity reference.
func (t *TypeParameter) Ref() *Reference {
	if t.reference == nil {
		t.reference = &Reference{node: t}
	}
	return t.reference
}

func (t *TypeParameter) adoptReference(r *Reference) { t.reference = r }
