package ir

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// CanonicalName is a node in the canonical-name tree: a tree-structured,
// serialization-stable identity path for a declaration, independent of
// in-memory object identity.
//
// The tree is append-only. A node, once interned, never changes its segment
// or parent and is never removed. Inserts are serialized per parent node, so
// interning may race with concurrent reads; a fully built tree needs no
// locking to read.
//
// Path shape determines meaning: depth 1 nodes are libraries, depth 2 nodes
// are classes, extensions, or top-level members, deeper nodes are members,
// constructors, and typedefs. Private segments sit one level deeper under a
// per-library bucket node, and typedefs under the reserved TypedefBucket
// segment; neither bucket level ever appears in rendered output.
type CanonicalName struct {
	parent *CanonicalName
	name   string

	mu       sync.RWMutex
	children map[string]*CanonicalName
	ref      *Reference
}

// NewRoot returns the root of a fresh canonical-name tree. The root has an
// empty segment and no parent.
func NewRoot() *CanonicalName {
	return &CanonicalName{}
}

// IsRoot reports whether this node is the tree root.
func (c *CanonicalName) IsRoot() bool {
	return c.parent == nil
}

// Name returns the node's path segment. Empty for the root.
func (c *CanonicalName) Name() string {
	return c.name
}

// Parent returns the parent node, or nil for the root.
func (c *CanonicalName) Parent() *CanonicalName {
	return c.parent
}

// Depth returns the number of segments between this node and the root. The
// root has depth 0.
func (c *CanonicalName) Depth() int {
	d := 0
	for n := c; n.parent != nil; n = n.parent {
		d++
	}
	return d
}

// Child interns a segment under this node: the existing child is returned if
// one exists, otherwise a new node is created. Interning the same segment
// twice yields the identical node.
func (c *CanonicalName) Child(name string) *CanonicalName {
	c.mu.RLock()
	child := c.children[name]
	c.mu.RUnlock()
	if child != nil {
		return child
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if child := c.children[name]; child != nil {
		return child
	}
	child = &CanonicalName{parent: c, name: name}
	if c.children == nil {
		c.children = make(map[string]*CanonicalName)
	}
	c.children[name] = child
	return child
}

// PeekChild returns the existing child for a segment without interning one.
func (c *CanonicalName) PeekChild(name string) *CanonicalName {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.children[name]
}

// ChildFromQualifiedName interns the node for a possibly-private name.
// Private names nest one level deeper, under the bucket segment of their
// defining library's import URI.
func (c *CanonicalName) ChildFromQualifiedName(n Name) *CanonicalName {
	if n.IsPrivate() {
		return c.Child(n.LibraryURI).Child(n.Text)
	}
	return c.Child(n.Text)
}

// Children returns the node's children sorted by segment.
func (c *CanonicalName) Children() []*CanonicalName {
	c.mu.RLock()
	out := make([]*CanonicalName, 0, len(c.children))
	for _, child := range c.children {
		out = append(out, child)
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Walk visits the node and all descendants in depth-first order, children
// sorted by segment. The root itself is visited first.
func (c *CanonicalName) Walk(fn func(*CanonicalName)) {
	fn(c)
	for _, child := range c.Children() {
		child.Walk(fn)
	}
}

// Path returns the segments from the root down to this node. The root's
// empty segment is excluded; the root itself returns nil.
func (c *CanonicalName) Path() []string {
	if c.parent == nil {
		return nil
	}
	segs := make([]string, c.Depth())
	for n := c; n.parent != nil; n = n.parent {
		segs[n.Depth()-1] = n.name
	}
	return segs
}

// String returns a diagnostic rendering of the full path. Not part of the
// qualified-name surface; use the printer package for display names.
func (c *CanonicalName) String() string {
	if c.IsRoot() {
		return "<root>"
	}
	return strings.Join(c.Path(), "::")
}

// Reference returns the interned reference for this canonical name, the
// "linked declaration slot" shared by every consumer of the name. It is
// created on first use; binding a declaration later links every reference
// obtained here.
func (c *CanonicalName) Reference() *Reference {
	c.mu.RLock()
	ref := c.ref
	c.mu.RUnlock()
	if ref != nil {
		return ref
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ref == nil {
		c.ref = &Reference{canonicalName: c}
	}
	return c.ref
}

// BoundReference returns the interned reference if one exists, without
// creating it.
func (c *CanonicalName) BoundReference() *Reference {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ref
}

// Bind links this canonical name's interned reference to a live declaration.
// Binding is idempotent for the same node and fails if the name is already
// bound to a different declaration (a duplicate in the loaded program, which
// is input data corruption rather than a programming error).
func (c *CanonicalName) Bind(node NamedNode) error {
	if node == nil {
		return fmt.Errorf("ir: cannot bind nil node to %s", c)
	}
	ref := c.Reference()
	if ref.node != nil && ref.node != node {
		return fmt.Errorf("ir: canonical name %s already bound to a different %s", c, ref.node.Kind())
	}
	ref.node = node
	node.adoptReference(ref)
	return nil
}
