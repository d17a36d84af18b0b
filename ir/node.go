// Package ir defines the whole-program intermediate representation for the
// Tarn language: the declaration graph (libraries, classes, extensions,
// typedefs, members, type parameters), the canonical-name tree that gives
// every declaration a serialization-stable identity, and the references that
// link the two across compilation-unit boundaries.
package ir

// NodeKind identifies the category of a named declaration node.
type NodeKind int

const (
	KindLibrary NodeKind = iota
	KindClass
	KindExtension
	KindTypedef
	KindField
	KindProcedure
	KindConstructor
	KindTypeParameter
)

// String returns the string representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindLibrary:
		return "Library"
	case KindClass:
		return "Class"
	case KindExtension:
		return "Extension"
	case KindTypedef:
		return "Typedef"
	case KindField:
		return "Field"
	case KindProcedure:
		return "Procedure"
	case KindConstructor:
		return "Constructor"
	case KindTypeParameter:
		return "TypeParameter"
	default:
		return "Unknown"
	}
}

// NamedNode is the base interface for all declaration nodes.
//
// The declaration graph is built single-threaded during a load/link phase and
// read concurrently afterwards. Parent links are non-owning navigational
// pointers; the forward direction (library → class → member) owns the nodes.
type NamedNode interface {
	// Kind returns the node kind for exhaustive switching.
	Kind() NodeKind

	// Parent returns the enclosing declaration, or nil for a Library.
	Parent() NamedNode

	// Ref returns the identity reference for this node, creating a
	// self-bound one if the node was built outside a canonical-name tree.
	Ref() *Reference

	// adoptReference installs the interned reference during canonical-name
	// binding. Also ensures only types in this package implement NamedNode.
	adoptReference(*Reference)
}

// Member is a declaration that lives inside a class or at the top level of a
// library: a field, procedure, or constructor.
type Member interface {
	NamedNode

	// MemberName returns the member's declared name. Members always have a
	// resolvable name; it is never absent.
	MemberName() Name
}

// MemberSegment returns the canonical-name segment for a member. Segments are
// the member's name text, with two normalizations: setters append "=" so a
// getter/setter pair occupies two distinct tree slots, and an unnamed
// constructor occupies the slot "new". Tarn forbids a constructor and another
// member of the same class sharing a name, so segments are unique per parent.
func MemberSegment(m Member) string {
	name := m.MemberName()
	switch n := m.(type) {
	case *Procedure:
		if n.ProcKind == ProcSetter {
			return name.Text + "="
		}
	case *Constructor:
		if name.Text == "" {
			return DefaultConstructorName
		}
	}
	return name.Text
}
