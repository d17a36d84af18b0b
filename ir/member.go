package ir

// ProcedureKind identifies how a procedure is declared and invoked.
type ProcedureKind int

const (
	ProcMethod ProcedureKind = iota
	ProcGetter
	ProcSetter
	ProcOperator
	ProcFactory
)

// String returns the string representation of the procedure kind.
func (k ProcedureKind) String() string {
	switch k {
	case ProcMethod:
		return "Method"
	case ProcGetter:
		return "Getter"
	case ProcSetter:
		return "Setter"
	case ProcOperator:
		return "Operator"
	case ProcFactory:
		return "Factory"
	default:
		return "Unknown"
	}
}

// Parameter is a formal parameter of a function node.
type Parameter struct {
	Name string
	Type Type

	// IsNamed marks parameters passed by name rather than position.
	IsNamed bool
}

// FunctionNode holds the signature shared by procedures and constructors.
type FunctionNode struct {
	TypeParameters []*TypeParameter
	Parameters     []*Parameter
	ReturnType     Type
}

// Field is a field declaration, either on a class or at the top level of a
// library.
type Field struct {
	Name Name
	Type Type

	IsFinal  bool
	IsConst  bool
	IsStatic bool

	parent    NamedNode
	reference *Reference
}

// NewField returns a field with the given name and type.
func NewField(name Name, typ Type) *Field {
	return &Field{Name: name, Type: typ}
}

// Kind returns KindField.
func (f *Field) Kind() NodeKind { return KindField }

// Parent returns the enclosing class or library.
func (f *Field) Parent() NamedNode { return f.parent }

// MemberName returns the field's name.
func (f *Field) MemberName() Name { return f.Name }

// Ref returns the field's identity reference.
func (f *Field) Ref() *Reference {
	if f.reference == nil {
		f.reference = &Reference{node: f}
	}
	return f.reference
}

func (f *Field) adoptReference(r *Reference) { f.reference = r }

// Procedure is a method, getter, setter, operator, or factory, either on a
// class or at the top level of a library.
type Procedure struct {
	Name     Name
	ProcKind ProcedureKind

	IsStatic   bool
	IsAbstract bool

	// Function is the procedure's signature. Never nil for loaded programs.
	Function *FunctionNode

	parent    NamedNode
	reference *Reference
}

// NewProcedure returns a procedure with the given name, kind, and signature.
// Type parameters of the signature are parented to the procedure.
func NewProcedure(name Name, kind ProcedureKind, fn *FunctionNode) *Procedure {
	p := &Procedure{Name: name, ProcKind: kind, Function: fn}
	if fn != nil {
		for _, tp := range fn.TypeParameters {
			tp.parent = p
		}
	}
	return p
}

// Kind returns KindProcedure.
func (p *Procedure) Kind() NodeKind { return KindProcedure }

// Parent returns the enclosing class or library.
func (p *Procedure) Parent() NamedNode { return p.parent }

// MemberName returns the procedure's name.
func (p *Procedure) MemberName() Name { return p.Name }

// Ref returns the procedure's identity reference.
func (p *Procedure) Ref() *Reference {
	if p.reference == nil {
		p.reference = &Reference{node: p}
	}
	return p.reference
}

func (p *Procedure) adoptReference(r *Reference) { p.reference = r }

// Constructor is a generative or constant constructor of a class. An
// unnamed constructor has an empty name text and interns under the segment
// "new".
type Constructor struct {
	Name    Name
	IsConst bool

	// Function is the constructor's signature. Never nil for loaded
	// programs.
	Function *FunctionNode

	parent    *Class
	reference *Reference
}

// NewConstructor returns a constructor with the given name and signature.
// Type parameters of the signature are parented to the constructor.
func NewConstructor(name Name, fn *FunctionNode) *Constructor {
	ct := &Constructor{Name: name, Function: fn}
	if fn != nil {
		for _, tp := range fn.TypeParameters {
			tp.parent = ct
		}
	}
	return ct
}

// Kind returns KindConstructor.
func (c *Constructor) Kind() NodeKind { return KindConstructor }

// Parent returns the enclosing class.
func (c *Constructor) Parent() NamedNode {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

// MemberName returns the constructor's name. Empty text means the unnamed
// constructor.
func (c *Constructor) MemberName() Name { return c.Name }

// Ref returns the constructor's identity reference.
func (c *Constructor) Ref() *Reference {
	if c.reference == nil {
		c.reference = &Reference{node: c}
	}
	return c.reference
}

func (c *Constructor) adoptReference(r *Reference) { c.reference = r }
