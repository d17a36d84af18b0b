package ir

import "fmt"

// Program is a whole program: the loaded libraries plus the canonical-name
// tree that assigns every declaration its serialization-stable identity.
type Program struct {
	Libraries []*Library

	root *CanonicalName
}

// NewProgram returns an empty program with a fresh canonical-name tree.
func NewProgram() *Program {
	return &Program{root: NewRoot()}
}

// Root returns the canonical-name tree root.
func (p *Program) Root() *CanonicalName {
	if p.root == nil {
		p.root = NewRoot()
	}
	return p.root
}

// AddLibrary attaches a library to the program. Canonical names are not
// assigned until AssignCanonicalNames runs.
func (p *Program) AddLibrary(l *Library) *Program {
	p.Libraries = append(p.Libraries, l)
	return p
}

// LibraryByURI returns the library with the given import URI, or nil.
func (p *Program) LibraryByURI(uri string) *Library {
	for _, l := range p.Libraries {
		if l.ImportURI == uri {
			return l
		}
	}
	return nil
}

// AssignCanonicalNames interns and binds the canonical name of every
// declaration in the program. Libraries intern under their import URI,
// classes and extensions under their library, typedefs under the library's
// typedef bucket, and members under their enclosing class or library, with
// private member names bucketed by defining library. Binding an already
// assigned program is idempotent; a name bound to two distinct declarations
// is reported as an error.
func (p *Program) AssignCanonicalNames() error {
	for _, lib := range p.Libraries {
		if lib.ImportURI == "" {
			return fmt.Errorf("ir: library %q has no import URI", lib.Name)
		}
		ln := p.Root().Child(lib.ImportURI)
		if err := ln.Bind(lib); err != nil {
			return fmt.Errorf("library %q: %w", lib.ImportURI, err)
		}
		for _, c := range lib.Classes {
			cn := ln.Child(c.Name)
			if err := cn.Bind(c); err != nil {
				return fmt.Errorf("library %q: class %q: %w", lib.ImportURI, c.Name, err)
			}
			for _, f := range c.Fields {
				if err := bindMember(cn, f, lib); err != nil {
					return fmt.Errorf("library %q: class %q: %w", lib.ImportURI, c.Name, err)
				}
			}
			for _, pr := range c.Procedures {
				if err := bindMember(cn, pr, lib); err != nil {
					return fmt.Errorf("library %q: class %q: %w", lib.ImportURI, c.Name, err)
				}
			}
			for _, ct := range c.Constructors {
				if err := bindMember(cn, ct, lib); err != nil {
					return fmt.Errorf("library %q: class %q: %w", lib.ImportURI, c.Name, err)
				}
			}
		}
		for _, e := range lib.Extensions {
			if err := ln.Child(e.Name).Bind(e); err != nil {
				return fmt.Errorf("library %q: extension %q: %w", lib.ImportURI, e.Name, err)
			}
		}
		for _, td := range lib.Typedefs {
			if err := ln.Child(TypedefBucket).Child(td.Name).Bind(td); err != nil {
				return fmt.Errorf("library %q: typedef %q: %w", lib.ImportURI, td.Name, err)
			}
		}
		for _, f := range lib.Fields {
			if err := bindMember(ln, f, lib); err != nil {
				return fmt.Errorf("library %q: %w", lib.ImportURI, err)
			}
		}
		for _, pr := range lib.Procedures {
			if err := bindMember(ln, pr, lib); err != nil {
				return fmt.Errorf("library %q: %w", lib.ImportURI, err)
			}
		}
	}
	return nil
}

// bindMember interns a member's canonical name under its container and binds
// it. Private names missing an explicit bucket default to the enclosing
// library's import URI.
func bindMember(parent *CanonicalName, m Member, lib *Library) error {
	eff := Name{Text: MemberSegment(m), LibraryURI: m.MemberName().LibraryURI}
	if eff.IsPrivate() && eff.LibraryURI == "" {
		eff.LibraryURI = lib.ImportURI
	}
	if err := parent.ChildFromQualifiedName(eff).Bind(m); err != nil {
		return fmt.Errorf("member %q: %w", eff.Text, err)
	}
	return nil
}
