package ir

// Library is the root declaration of one compilation unit. Its import URI is
// mandatory and doubles as the display fallback key when no explicit name is
// set, and as the library's canonical-name segment.
type Library struct {
	// Name is the optional human-readable library name.
	Name string

	// ImportURI identifies the library, e.g. "tarn:core" or
	// "pkg:app/app.tarn".
	ImportURI string

	Classes    []*Class
	Extensions []*Extension
	Typedefs   []*Typedef

	// Fields and Procedures are the library's top-level members.
	Fields     []*Field
	Procedures []*Procedure

	reference *Reference
}

// NewLibrary returns a library with the given import URI. Children are
// attached with the Add methods, which set their parent links.
func NewLibrary(importURI string) *Library {
	return &Library{ImportURI: importURI}
}

// Kind returns KindLibrary.
func (l *Library) Kind() NodeKind { return KindLibrary }

// Parent returns nil; libraries are roots of the declaration graph.
func (l *Library) Parent() NamedNode { return nil }

// Ref returns the library's identity reference.
func (l *Library) Ref() *Reference {
	if l.reference == nil {
		l.reference = &Reference{node: l}
	}
	return l.reference
}

func (l *Library) adoptReference(r *Reference) { l.reference = r }

// AddClass attaches a class to the library.
func (l *Library) AddClass(c *Class) *Library {
	c.parent = l
	l.Classes = append(l.Classes, c)
	return l
}

// AddExtension attaches an extension to the library.
func (l *Library) AddExtension(e *Extension) *Library {
	e.parent = l
	l.Extensions = append(l.Extensions, e)
	return l
}

// AddTypedef attaches a typedef to the library.
func (l *Library) AddTypedef(t *Typedef) *Library {
	t.parent = l
	l.Typedefs = append(l.Typedefs, t)
	return l
}

// AddField attaches a top-level field to the library.
func (l *Library) AddField(f *Field) *Library {
	f.parent = l
	l.Fields = append(l.Fields, f)
	return l
}

// AddProcedure attaches a top-level procedure to the library.
func (l *Library) AddProcedure(p *Procedure) *Library {
	p.parent = l
	l.Procedures = append(l.Procedures, p)
	return l
}
