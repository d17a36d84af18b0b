package ir

// Typedef is a type alias declaration. Typedefs intern under the reserved
// TypedefBucket segment of their library, which marks their canonical names
// so that type references inside typedef bodies can follow a different
// library-qualification policy than other names.
type Typedef struct {
	Name string

	TypeParameters []*TypeParameter

	// Type is the aliased type.
	Type Type

	parent    *Library
	reference *Reference
}

// NewTypedef returns a typedef aliasing the given type.
func NewTypedef(name string, aliased Type) *Typedef {
	return &Typedef{Name: name, Type: aliased}
}

// Kind returns KindTypedef.
func (t *Typedef) Kind() NodeKind { return KindTypedef }

// Parent returns the enclosing library.
func (t *Typedef) Parent() NamedNode {
	if t.parent == nil {
		return nil
	}
	return t.parent
}

// Ref returns the typedef's identity reference.
func (t *Typedef) Ref() *Reference {
	if t.reference == nil {
		t.reference = &Reference{node: t}
	}
	return t.reference
}

func (t *Typedef) adoptReference(r *Reference) { t.reference = r }

// AddTypeParameter attaches a type parameter to the typedef.
func (t *Typedef) AddTypeParameter(tp *TypeParameter) *Typedef {
	tp.parent = t
	t.TypeParameters = append(t.TypeParameters, tp)
	return t
}
