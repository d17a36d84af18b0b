package loader

import (
	"sort"

	"github.com/tarnlang/tarnir/ir"
	"github.com/tarnlang/tarnir/printer"
)

// UnlinkedReference describes a reference whose target declaration is not
// in the program.
type UnlinkedReference struct {
	// Owner is the qualified name of the declaration holding the reference.
	Owner string
	// Path is the canonical name the reference points at, or "null" for a
	// reference that never interned a path.
	Path string
}

// CheckProgram lists the references that never linked, ordered by path then
// owner. An empty result means the program is fully linked.
func CheckProgram(p *ir.Program) []UnlinkedReference {
	var out []UnlinkedReference
	seen := make(map[UnlinkedReference]bool)
	p.EachReference(func(owner ir.NamedNode, ref *ir.Reference) {
		if ref == nil || ref.IsLinked() {
			return
		}
		u := UnlinkedReference{
			Owner: printer.QualifiedDeclarationName(owner, true),
			Path:  referencePath(ref),
		}
		if seen[u] {
			return
		}
		seen[u] = true
		out = append(out, u)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Owner < out[j].Owner
	})
	return out
}

func referencePath(ref *ir.Reference) string {
	if cn := ref.CanonicalName(); cn != nil {
		return cn.String()
	}
	return "null"
}
