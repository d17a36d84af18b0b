// Package printer renders Tarn IR to text: qualified declaration names,
// types with nullability suffixes, escaped string data, and whole-program
// dumps.
//
// Every rendering function is total. Absent inputs produce defined sentinel
// strings ("null" for a nil declaration, "<missing-x-reference>" for a nil
// reference, "<unlinked-x-reference>" for a reference that neither resolves
// nor carries a canonical name), so dump and diagnostic code never guards a
// call site. The only fatal conditions are closed-enumeration violations and
// canonical trees whose shape matches no documented case.
package printer

import (
	"fmt"
	"strings"

	"github.com/tarnlang/tarnir/ir"
)

// LibraryName returns the library's explicit name when set, otherwise
// "library " plus its import URI. A nil library renders as "null".
func LibraryName(l *ir.Library) string {
	if l == nil {
		return "null"
	}
	if l.Name != "" {
		return l.Name
	}
	return "library " + l.ImportURI
}

// ClassName returns the class name, or "null" for a nil class.
func ClassName(c *ir.Class) string {
	if c == nil {
		return "null"
	}
	return c.Name
}

// ExtensionName returns the extension name, or "null" for a nil extension.
func ExtensionName(e *ir.Extension) string {
	if e == nil {
		return "null"
	}
	return e.Name
}

// TypedefName returns the typedef name, or "null" for a nil typedef.
func TypedefName(t *ir.Typedef) string {
	if t == nil {
		return "null"
	}
	return t.Name
}

// MemberSimpleName returns the member's rendered name: the name text, with
// the same setter suffix its canonical-name segment carries, so that linked
// and unlinked renders of the same member agree. A nil member renders as
// "null".
func MemberSimpleName(m ir.Member) string {
	if m == nil {
		return "null"
	}
	return ir.MemberSegment(m)
}

// TypeParameterName returns the type parameter's name. Unnamed synthetic
// parameters get a diagnostic fallback embedding the dynamic type and the
// instance identity, so distinct parameters stay distinguishable in dumps;
// the fallback is not parseable and not stable across runs.
func TypeParameterName(tp *ir.TypeParameter) string {
	if tp == nil {
		return "null"
	}
	if tp.Name != "" {
		return tp.Name
	}
	return fmt.Sprintf("unnamed %T %p", tp, tp)
}

// QualifiedClassName renders a class, prefixed with its library name and
// "::" when includeLibraryName is set and the class is attached to a
// library.
func QualifiedClassName(c *ir.Class, includeLibraryName bool) string {
	if c == nil {
		return "null"
	}
	if lib, ok := c.Parent().(*ir.Library); ok && includeLibraryName {
		return LibraryName(lib) + "::" + ClassName(c)
	}
	return ClassName(c)
}

// QualifiedExtensionName renders an extension, prefixed with its library
// name and "::" when includeLibraryName is set.
func QualifiedExtensionName(e *ir.Extension, includeLibraryName bool) string {
	if e == nil {
		return "null"
	}
	if lib, ok := e.Parent().(*ir.Library); ok && includeLibraryName {
		return LibraryName(lib) + "::" + ExtensionName(e)
	}
	return ExtensionName(e)
}

// QualifiedTypedefName renders a typedef, prefixed with its library name and
// "::" when includeLibraryName is set.
func QualifiedTypedefName(t *ir.Typedef, includeLibraryName bool) string {
	if t == nil {
		return "null"
	}
	if lib, ok := t.Parent().(*ir.Library); ok && includeLibraryName {
		return LibraryName(lib) + "::" + TypedefName(t)
	}
	return TypedefName(t)
}

// QualifiedMemberName renders a member. Class members are always prefixed
// with their qualified class name and "." regardless of includeLibraryName;
// class qualification is structural, not optional. Top-level members follow
// the library flag.
func QualifiedMemberName(m ir.Member, includeLibraryName bool) string {
	if m == nil {
		return "null"
	}
	switch p := m.Parent().(type) {
	case *ir.Class:
		return QualifiedClassName(p, includeLibraryName) + "." + MemberSimpleName(m)
	case *ir.Library:
		if includeLibraryName {
			return LibraryName(p) + "::" + MemberSimpleName(m)
		}
	}
	return MemberSimpleName(m)
}

// QualifiedTypeParameterName renders a type parameter, qualified by its
// enclosing class or extension (structurally, like members), by its library
// when the flag asks, and bare when it belongs to a typedef, procedure, or
// constructor.
func QualifiedTypeParameterName(tp *ir.TypeParameter, includeLibraryName bool) string {
	if tp == nil {
		return "null"
	}
	switch p := tp.Parent().(type) {
	case *ir.Class:
		return QualifiedClassName(p, includeLibraryName) + "." + TypeParameterName(tp)
	case *ir.Extension:
		return QualifiedExtensionName(p, includeLibraryName) + "." + TypeParameterName(tp)
	case *ir.Library:
		if includeLibraryName {
			return LibraryName(p) + "::" + TypeParameterName(tp)
		}
	}
	return TypeParameterName(tp)
}

// QualifiedClassNameOfReference renders a class reference: the resolved
// class when linked, the canonical-name rendering when only a path is known,
// and a sentinel otherwise. The two sentinels are deliberately distinct from
// the "null" a nil node renders as.
func QualifiedClassNameOfReference(r *ir.Reference, includeLibraryName bool) string {
	if r == nil {
		return "<missing-class-reference>"
	}
	if node, ok := r.Resolve(); ok {
		return QualifiedClassName(node.(*ir.Class), includeLibraryName)
	}
	if cn := r.CanonicalName(); cn != nil {
		return QualifiedCanonicalName(cn, includeLibraryName, includeLibraryName)
	}
	return "<unlinked-class-reference>"
}

// QualifiedExtensionNameOfReference renders an extension reference; see
// QualifiedClassNameOfReference.
func QualifiedExtensionNameOfReference(r *ir.Reference, includeLibraryName bool) string {
	if r == nil {
		return "<missing-extension-reference>"
	}
	if node, ok := r.Resolve(); ok {
		return QualifiedExtensionName(node.(*ir.Extension), includeLibraryName)
	}
	if cn := r.CanonicalName(); cn != nil {
		return QualifiedCanonicalName(cn, includeLibraryName, includeLibraryName)
	}
	return "<unlinked-extension-reference>"
}

// QualifiedTypedefNameOfReference renders a typedef reference; see
// QualifiedClassNameOfReference.
func QualifiedTypedefNameOfReference(r *ir.Reference, includeLibraryName bool) string {
	if r == nil {
		return "<missing-typedef-reference>"
	}
	if node, ok := r.Resolve(); ok {
		return QualifiedTypedefName(node.(*ir.Typedef), includeLibraryName)
	}
	if cn := r.CanonicalName(); cn != nil {
		return QualifiedCanonicalName(cn, includeLibraryName, includeLibraryName)
	}
	return "<unlinked-typedef-reference>"
}

// QualifiedMemberNameOfReference renders a member reference; see
// QualifiedClassNameOfReference.
func QualifiedMemberNameOfReference(r *ir.Reference, includeLibraryName bool) string {
	if r == nil {
		return "<missing-member-reference>"
	}
	if node, ok := r.Resolve(); ok {
		return QualifiedMemberName(node.(ir.Member), includeLibraryName)
	}
	if cn := r.CanonicalName(); cn != nil {
		return QualifiedCanonicalName(cn, includeLibraryName, includeLibraryName)
	}
	return "<unlinked-member-reference>"
}

// QualifiedTypeParameterNameOfReference renders a type-parameter reference;
// see QualifiedClassNameOfReference. Type parameters have no canonical
// names, so an unresolved reference renders the unlinked sentinel.
func QualifiedTypeParameterNameOfReference(r *ir.Reference, includeLibraryName bool) string {
	if r == nil {
		return "<missing-typeparameter-reference>"
	}
	if node, ok := r.Resolve(); ok {
		return QualifiedTypeParameterName(node.(*ir.TypeParameter), includeLibraryName)
	}
	if cn := r.CanonicalName(); cn != nil {
		return QualifiedCanonicalName(cn, includeLibraryName, includeLibraryName)
	}
	return "<unlinked-typeparameter-reference>"
}

// DeclarationName returns the unqualified display name for any declaration
// kind. Unknown kinds panic; the kind set is closed.
func DeclarationName(n ir.NamedNode) string {
	switch n := n.(type) {
	case nil:
		return "null"
	case *ir.Library:
		return LibraryName(n)
	case *ir.Class:
		return ClassName(n)
	case *ir.Extension:
		return ExtensionName(n)
	case *ir.Typedef:
		return TypedefName(n)
	case ir.Member:
		return MemberSimpleName(n)
	case *ir.TypeParameter:
		return TypeParameterName(n)
	default:
		panic(fmt.Sprintf("printer: unhandled node kind %v", n.Kind()))
	}
}

// QualifiedDeclarationName returns the qualified display name for any
// declaration kind.
func QualifiedDeclarationName(n ir.NamedNode, includeLibraryName bool) string {
	switch n := n.(type) {
	case nil:
		return "null"
	case *ir.Library:
		return LibraryName(n)
	case *ir.Class:
		return QualifiedClassName(n, includeLibraryName)
	case *ir.Extension:
		return QualifiedExtensionName(n, includeLibraryName)
	case *ir.Typedef:
		return QualifiedTypedefName(n, includeLibraryName)
	case ir.Member:
		return QualifiedMemberName(n, includeLibraryName)
	case *ir.TypeParameter:
		return QualifiedTypeParameterName(n, includeLibraryName)
	default:
		panic(fmt.Sprintf("printer: unhandled node kind %v", n.Kind()))
	}
}

// QualifiedCanonicalName renders a canonical-name path exactly as the
// node-based renderers would render the equivalent live declaration, so
// displayed text never betrays whether a reference was linked. Dispatch is
// depth-sensitive:
//
//   - the root renders as "<root>",
//   - depth 1 as "library " plus the segment,
//   - depth 2 (classes, extensions, top-level members) bare or joined to the
//     library with "::" per includeLibraryName,
//   - deeper nodes first skip the per-library bucket level if the segment is
//     private, then, if sitting in the typedef bucket, switch the library
//     flag to includeLibraryNamesInTypes and skip the bucket; what remains
//     is joined with "." under a class-level parent and "::" (or nothing)
//     under a library.
//
// Bucket segments never appear in output. A nil name renders as "null".
func QualifiedCanonicalName(cn *ir.CanonicalName, includeLibraryName, includeLibraryNamesInTypes bool) string {
	if cn == nil {
		return "null"
	}
	if cn.IsRoot() {
		return "<root>"
	}
	if cn.Parent().IsRoot() {
		return "library " + cn.Name()
	}
	if cn.Parent().Parent().IsRoot() {
		if !includeLibraryName {
			return cn.Name()
		}
		return QualifiedCanonicalName(cn.Parent(), includeLibraryName, includeLibraryNamesInTypes) + "::" + cn.Name()
	}

	parent := cn.Parent()
	if strings.HasPrefix(cn.Name(), ir.PrivateMarker) {
		parent = parent.Parent()
	}
	if parent.Name() == ir.TypedefBucket {
		includeLibraryName = includeLibraryNamesInTypes
		parent = parent.Parent()
	}
	if parent.IsRoot() {
		// Skipping bucket levels can only land on a library or a
		// class-level node; reaching the root means the tree shape
		// violated its own invariants.
		panic(fmt.Sprintf("printer: malformed canonical name %q", cn))
	}
	if parent.Parent().IsRoot() {
		if !includeLibraryName {
			return cn.Name()
		}
		return QualifiedCanonicalName(parent, includeLibraryName, includeLibraryNamesInTypes) + "::" + cn.Name()
	}
	return QualifiedCanonicalName(parent, includeLibraryName, includeLibraryNamesInTypes) + "." + cn.Name()
}
