package ir

// Reference is a lazy-resolving handle to a declaration with two alternate
// data sources: a direct node pointer, or a canonical-name path not yet
// resolved to an in-memory object. The direct pointer wins when both are
// present.
//
// The unlinked state is first class: a reference into a compilation unit
// that has not been loaded still renders (via its canonical name) and still
// compares by identity. Because references are interned per canonical name,
// loading the target later links every such reference in place.
type Reference struct {
	node          NamedNode
	canonicalName *CanonicalName
}

// Node returns the directly linked declaration, or nil if the reference is
// unlinked. Most callers want Resolve, which also consults the canonical
// name's declaration slot.
func (r *Reference) Node() NamedNode {
	if r == nil {
		return nil
	}
	return r.node
}

// CanonicalName returns the reference's canonical-name path, or nil for a
// reference created directly from a node.
func (r *Reference) CanonicalName() *CanonicalName {
	if r == nil {
		return nil
	}
	return r.canonicalName
}

// Resolve returns the referenced declaration. The direct node pointer takes
// precedence; otherwise the canonical name's linked declaration slot is
// consulted. Callers that only need display text should not branch on the
// failure and instead use the printer's by-reference renderers, which fall
// back to canonical-name text.
func (r *Reference) Resolve() (NamedNode, bool) {
	if r == nil {
		return nil, false
	}
	if r.node != nil {
		return r.node, true
	}
	if r.canonicalName != nil {
		if ref := r.canonicalName.BoundReference(); ref != nil && ref.node != nil {
			return ref.node, true
		}
	}
	return nil, false
}

// IsLinked reports whether the reference currently resolves to a
// declaration.
func (r *Reference) IsLinked() bool {
	_, ok := r.Resolve()
	return ok
}
