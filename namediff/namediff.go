// Package namediff compares the canonical name surface of two programs:
// the set of declarations a bundle exports, identified by kind and
// library-qualified name. Two bundles with equal name surfaces can be
// substituted for each other without breaking references.
package namediff

import (
	"sort"

	"github.com/tarnlang/tarnir/ir"
	"github.com/tarnlang/tarnir/printer"
)

// Inventory returns one line per declaration: the node kind, a tab, and the
// library-qualified display name. Lines are sorted, so programs with equal
// name surfaces produce byte-equal inventories regardless of declaration
// order.
func Inventory(p *ir.Program) []string {
	var lines []string
	add := func(n ir.NamedNode) {
		lines = append(lines, n.Kind().String()+"\t"+printer.QualifiedDeclarationName(n, true))
	}
	for _, lib := range p.Libraries {
		add(lib)
		for _, c := range lib.Classes {
			add(c)
			for _, f := range c.Fields {
				add(f)
			}
			for _, ct := range c.Constructors {
				add(ct)
			}
			for _, pr := range c.Procedures {
				add(pr)
			}
		}
		for _, e := range lib.Extensions {
			add(e)
		}
		for _, td := range lib.Typedefs {
			add(td)
		}
		for _, f := range lib.Fields {
			add(f)
		}
		for _, pr := range lib.Procedures {
			add(pr)
		}
	}
	sort.Strings(lines)
	return lines
}

// Report lists the inventory lines present in only one of two programs.
type Report struct {
	Added   []string
	Removed []string
}

// Empty reports whether the two name surfaces match.
func (r Report) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0
}

// Compare diffs two inventories by membership. Added holds lines only in
// after, Removed lines only in before, each in inventory order.
func Compare(before, after []string) Report {
	beforeSet := toSet(before)
	afterSet := toSet(after)
	var r Report
	for _, ln := range after {
		if !beforeSet[ln] {
			r.Added = append(r.Added, ln)
		}
	}
	for _, ln := range before {
		if !afterSet[ln] {
			r.Removed = append(r.Removed, ln)
		}
	}
	return r
}

func toSet(lines []string) map[string]bool {
	set := make(map[string]bool, len(lines))
	for _, ln := range lines {
		set[ln] = true
	}
	return set
}
