package ir

// Class is a class declaration. Private classes simply have a name starting
// with the private marker; unlike members they intern directly under their
// library, with no bucket level.
type Class struct {
	Name string

	TypeParameters []*TypeParameter

	// Supertype is the extended class, or nil for the root object class.
	Supertype *InterfaceType

	// Interfaces are the implemented interface types.
	Interfaces []*InterfaceType

	IsAbstract bool

	Fields       []*Field
	Procedures   []*Procedure
	Constructors []*Constructor

	parent    *Library
	reference *Reference
}

// NewClass returns a class with the given name.
func NewClass(name string) *Class {
	return &Class{Name: name}
}

// Kind returns KindClass.
func (c *Class) Kind() NodeKind { return KindClass }

// Parent returns the enclosing library.
func (c *Class) Parent() NamedNode {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

// EnclosingLibrary returns the library the class is declared in, or nil if
// the class is detached.
func (c *Class) EnclosingLibrary() *Library { return c.parent }

// Ref returns the class's identity reference.
func (c *Class) Ref() *Reference {
	if c.reference == nil {
		c.reference = &Reference{node: c}
	}
	return c.reference
}

func (c *Class) adoptReference(r *Reference) { c.reference = r }

// AddTypeParameter attaches a type parameter to the class.
func (c *Class) AddTypeParameter(tp *TypeParameter) *Class {
	tp.parent = c
	c.TypeParameters = append(c.TypeParameters, tp)
	return c
}

// AddField attaches a field to the class.
func (c *Class) AddField(f *Field) *Class {
	f.parent = c
	c.Fields = append(c.Fields, f)
	return c
}

// AddProcedure attaches a procedure to the class.
func (c *Class) AddProcedure(p *Procedure) *Class {
	p.parent = c
	c.Procedures = append(c.Procedures, p)
	return c
}

// AddConstructor attaches a constructor to the class.
func (c *Class) AddConstructor(ct *Constructor) *Class {
	ct.parent = c
	c.Constructors = append(c.Constructors, ct)
	return c
}
