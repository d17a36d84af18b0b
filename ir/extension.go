package ir

// ExtensionMemberKind identifies how an extension member is invoked.
type ExtensionMemberKind int

const (
	ExtMethod ExtensionMemberKind = iota
	ExtGetter
	ExtSetter
	ExtOperator
)

// String returns the string representation of the extension member kind.
func (k ExtensionMemberKind) String() string {
	switch k {
	case ExtMethod:
		return "Method"
	case ExtGetter:
		return "Getter"
	case ExtSetter:
		return "Setter"
	case ExtOperator:
		return "Operator"
	default:
		return "Unknown"
	}
}

// ExtensionMemberDescriptor maps an extension member's surface name to the
// lowered top-level procedure that implements it. Extension members are not
// declarations of their own; the descriptor's reference points at the
// implementing procedure, which carries the canonical name.
type ExtensionMemberDescriptor struct {
	Name   Name
	Kind   ExtensionMemberKind
	Member *Reference
}

// Extension is an extension declaration: a named set of members grafted onto
// an existing type.
type Extension struct {
	Name string

	TypeParameters []*TypeParameter

	// OnType is the type the extension applies to.
	OnType Type

	Members []ExtensionMemberDescriptor

	parent    *Library
	reference *Reference
}

// NewExtension returns an extension with the given name and on-type.
func NewExtension(name string, onType Type) *Extension {
	return &Extension{Name: name, OnType: onType}
}

// Kind returns KindExtension.
func (e *Extension) Kind() NodeKind { return KindExtension }

// Parent returns the enclosing library.
func (e *Extension) Parent() NamedNode {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// Ref returns the extension's identity reference.
func (e *Extension) Ref() *Reference {
	if e.reference == nil {
		e.reference = &Reference{node: e}
	}
	return e.reference
}

func (e *Extension) adoptReference(r *Reference) { e.reference = r }

// AddTypeParameter attaches a type parameter to the extension.
func (e *Extension) AddTypeParameter(tp *TypeParameter) *Extension {
	tp.parent = e
	e.TypeParameters = append(e.TypeParameters, tp)
	return e
}

// AddMember records an extension member descriptor.
func (e *Extension) AddMember(name Name, kind ExtensionMemberKind, member *Reference) *Extension {
	e.Members = append(e.Members, ExtensionMemberDescriptor{Name: name, Kind: kind, Member: member})
	return e
}
