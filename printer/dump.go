package printer

import (
	"bytes"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/tarnlang/tarnir/ir"
)

// Colors maps dump elements to sprintf-style colorizers, in the manner of
// terminal pretty-printers.
type Colors struct {
	Keyword func(string, ...any) string
	Name    func(string, ...any) string
	Type    func(string, ...any) string
	Literal func(string, ...any) string
}

// NewColors returns the default dump palette.
func NewColors() *Colors {
	return &Colors{
		Keyword: color.New(color.FgBlue).SprintfFunc(),
		Name:    color.RGB(196, 96, 16).SprintfFunc(),
		Type:    color.RGB(8, 196, 16).SprintfFunc(),
		Literal: color.RGB(88, 158, 86).SprintfFunc(),
	}
}

func plainColor(s string, _ ...any) string { return s }

// Options configure a Dumper.
type Options struct {
	// QualifyDeclarations prefixes declaration references outside type
	// positions (extension member targets) with their library name.
	QualifyDeclarations bool

	// QualifyTypes prefixes class and typedef names inside rendered types
	// with their library name. Typedef bodies and member signatures follow
	// this flag independently of QualifyDeclarations.
	QualifyTypes bool

	// Filter selects which declarations appear. Nil keeps everything; a
	// declaration whose filter evaluation errors is skipped.
	Filter *Filter

	// Colors enables ANSI coloring. Nil writes plain text.
	Colors *Colors
}

// Dumper writes programs as stable, diff-friendly text: libraries in
// import-URI order, declarations in declaration order, identical output for
// identical programs.
type Dumper struct {
	w    io.Writer
	opts Options

	kw, name, typ, lit func(string, ...any) string
}

// NewDumper returns a Dumper writing to w.
func NewDumper(w io.Writer, opts Options) *Dumper {
	d := &Dumper{w: w, opts: opts, kw: plainColor, name: plainColor, typ: plainColor, lit: plainColor}
	if c := opts.Colors; c != nil {
		if c.Keyword != nil {
			d.kw = c.Keyword
		}
		if c.Name != nil {
			d.name = c.Name
		}
		if c.Type != nil {
			d.typ = c.Type
		}
		if c.Literal != nil {
			d.lit = c.Literal
		}
	}
	return d
}

// DumpProgram writes every library in the program.
func (d *Dumper) DumpProgram(p *ir.Program) error {
	libs := append([]*ir.Library(nil), p.Libraries...)
	sort.Slice(libs, func(i, j int) bool { return libs[i].ImportURI < libs[j].ImportURI })

	var buf bytes.Buffer
	for i, lib := range libs {
		if i > 0 {
			buf.WriteByte('\n')
		}
		d.writeLibrary(&buf, lib)
	}
	_, err := d.w.Write(buf.Bytes())
	return err
}

// DumpLibrary writes a single library.
func (d *Dumper) DumpLibrary(l *ir.Library) error {
	var buf bytes.Buffer
	d.writeLibrary(&buf, l)
	_, err := d.w.Write(buf.Bytes())
	return err
}

func (d *Dumper) keep(lib *ir.Library, n ir.NamedNode) bool {
	if d.opts.Filter == nil {
		return true
	}
	ok, err := d.opts.Filter.Match(lib, n)
	if err != nil {
		return false
	}
	return ok
}

func (d *Dumper) writeLibrary(buf *bytes.Buffer, l *ir.Library) {
	buf.WriteString(d.kw("library"))
	if l.Name != "" {
		buf.WriteString(" ")
		buf.WriteString(d.name(l.Name))
	}
	buf.WriteString(` "`)
	buf.WriteString(d.lit(EscapeString(l.ImportURI)))
	buf.WriteString("\" {\n")

	for _, td := range l.Typedefs {
		if !d.keep(l, td) {
			continue
		}
		buf.WriteString("  ")
		buf.WriteString(d.kw("typedef"))
		buf.WriteString(" ")
		buf.WriteString(d.name(TypedefName(td)))
		d.writeTypeParameters(buf, td.TypeParameters)
		buf.WriteString(" = ")
		buf.WriteString(d.typ(TypeString(td.Type, d.opts.QualifyTypes)))
		buf.WriteString(";\n")
	}

	for _, c := range l.Classes {
		if !d.keep(l, c) {
			continue
		}
		d.writeClass(buf, c)
	}

	for _, e := range l.Extensions {
		if !d.keep(l, e) {
			continue
		}
		d.writeExtension(buf, e)
	}

	for _, f := range l.Fields {
		if !d.keep(l, f) {
			continue
		}
		d.writeField(buf, f, "  ")
	}
	for _, p := range l.Procedures {
		if !d.keep(l, p) {
			continue
		}
		d.writeProcedure(buf, p, "  ")
	}

	buf.WriteString("}\n")
}

func (d *Dumper) writeClass(buf *bytes.Buffer, c *ir.Class) {
	buf.WriteString("  ")
	if c.IsAbstract {
		buf.WriteString(d.kw("abstract"))
		buf.WriteString(" ")
	}
	buf.WriteString(d.kw("class"))
	buf.WriteString(" ")
	buf.WriteString(d.name(ClassName(c)))
	d.writeTypeParameters(buf, c.TypeParameters)
	if c.Supertype != nil {
		buf.WriteString(" ")
		buf.WriteString(d.kw("extends"))
		buf.WriteString(" ")
		buf.WriteString(d.typ(TypeString(c.Supertype, d.opts.QualifyTypes)))
	}
	if len(c.Interfaces) > 0 {
		buf.WriteString(" ")
		buf.WriteString(d.kw("implements"))
		buf.WriteString(" ")
		for i, it := range c.Interfaces {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(d.typ(TypeString(it, d.opts.QualifyTypes)))
		}
	}
	buf.WriteString(" {\n")

	for _, f := range c.Fields {
		d.writeField(buf, f, "    ")
	}
	for _, ct := range c.Constructors {
		d.writeConstructor(buf, ct, "    ")
	}
	for _, p := range c.Procedures {
		d.writeProcedure(buf, p, "    ")
	}

	buf.WriteString("  }\n")
}

func (d *Dumper) writeExtension(buf *bytes.Buffer, e *ir.Extension) {
	buf.WriteString("  ")
	buf.WriteString(d.kw("extension"))
	buf.WriteString(" ")
	buf.WriteString(d.name(ExtensionName(e)))
	d.writeTypeParameters(buf, e.TypeParameters)
	buf.WriteString(" ")
	buf.WriteString(d.kw("on"))
	buf.WriteString(" ")
	buf.WriteString(d.typ(TypeString(e.OnType, d.opts.QualifyTypes)))
	buf.WriteString(" {\n")
	for _, m := range e.Members {
		buf.WriteString("    ")
		buf.WriteString(d.kw(extensionMemberKeyword(m.Kind)))
		buf.WriteString(" ")
		buf.WriteString(d.name(m.Name.Text))
		buf.WriteString(" = ")
		buf.WriteString(QualifiedMemberNameOfReference(m.Member, d.opts.QualifyDeclarations))
		buf.WriteString(";\n")
	}
	buf.WriteString("  }\n")
}

func (d *Dumper) writeField(buf *bytes.Buffer, f *ir.Field, indent string) {
	buf.WriteString(indent)
	if f.IsStatic {
		buf.WriteString(d.kw("static"))
		buf.WriteString(" ")
	}
	if f.IsConst {
		buf.WriteString(d.kw("const"))
		buf.WriteString(" ")
	} else if f.IsFinal {
		buf.WriteString(d.kw("final"))
		buf.WriteString(" ")
	}
	buf.WriteString(d.kw("field"))
	buf.WriteString(" ")
	buf.WriteString(d.typ(TypeString(f.Type, d.opts.QualifyTypes)))
	buf.WriteString(" ")
	buf.WriteString(d.name(MemberSimpleName(f)))
	buf.WriteString(";\n")
}

func (d *Dumper) writeProcedure(buf *bytes.Buffer, p *ir.Procedure, indent string) {
	buf.WriteString(indent)
	if p.IsStatic {
		buf.WriteString(d.kw("static"))
		buf.WriteString(" ")
	}
	if p.IsAbstract {
		buf.WriteString(d.kw("abstract"))
		buf.WriteString(" ")
	}
	buf.WriteString(d.kw(procedureKeyword(p.ProcKind)))
	buf.WriteString(" ")
	buf.WriteString(d.name(MemberSimpleName(p)))
	d.writeSignature(buf, p.Function, true)
	buf.WriteString(";\n")
}

func (d *Dumper) writeConstructor(buf *bytes.Buffer, ct *ir.Constructor, indent string) {
	buf.WriteString(indent)
	if ct.IsConst {
		buf.WriteString(d.kw("const"))
		buf.WriteString(" ")
	}
	buf.WriteString(d.kw("constructor"))
	buf.WriteString(" ")
	buf.WriteString(d.name(MemberSimpleName(ct)))
	d.writeSignature(buf, ct.Function, false)
	buf.WriteString(";\n")
}

// writeSignature renders "<T>(params) -> ret" for a function node. The
// return arrow is omitted for constructors.
func (d *Dumper) writeSignature(buf *bytes.Buffer, fn *ir.FunctionNode, withReturn bool) {
	if fn == nil {
		buf.WriteString("()")
		return
	}
	d.writeTypeParameters(buf, fn.TypeParameters)
	buf.WriteString("(")
	wrote := 0
	for _, p := range fn.Parameters {
		if p.IsNamed {
			continue
		}
		if wrote > 0 {
			buf.WriteString(", ")
		}
		d.writeParameter(buf, p)
		wrote++
	}
	named := 0
	for _, p := range fn.Parameters {
		if !p.IsNamed {
			continue
		}
		if named == 0 {
			if wrote > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString("{")
		} else {
			buf.WriteString(", ")
		}
		d.writeParameter(buf, p)
		named++
	}
	if named > 0 {
		buf.WriteString("}")
	}
	buf.WriteString(")")
	if withReturn {
		buf.WriteString(" -> ")
		buf.WriteString(d.typ(TypeString(fn.ReturnType, d.opts.QualifyTypes)))
	}
}

func (d *Dumper) writeParameter(buf *bytes.Buffer, p *ir.Parameter) {
	buf.WriteString(d.typ(TypeString(p.Type, d.opts.QualifyTypes)))
	if p.Name != "" {
		buf.WriteString(" ")
		buf.WriteString(p.Name)
	}
}

func (d *Dumper) writeTypeParameters(buf *bytes.Buffer, tps []*ir.TypeParameter) {
	if len(tps) == 0 {
		return
	}
	buf.WriteString("<")
	for i, tp := range tps {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(TypeParameterName(tp))
		if tp.Bound != nil {
			buf.WriteString(" ")
			buf.WriteString(d.kw("extends"))
			buf.WriteString(" ")
			buf.WriteString(d.typ(TypeString(tp.Bound, d.opts.QualifyTypes)))
		}
	}
	buf.WriteString(">")
}

func procedureKeyword(k ir.ProcedureKind) string {
	switch k {
	case ir.ProcMethod:
		return "method"
	case ir.ProcGetter:
		return "get"
	case ir.ProcSetter:
		return "set"
	case ir.ProcOperator:
		return "operator"
	case ir.ProcFactory:
		return "factory"
	default:
		return "method"
	}
}

func extensionMemberKeyword(k ir.ExtensionMemberKind) string {
	switch k {
	case ir.ExtMethod:
		return "method"
	case ir.ExtGetter:
		return "get"
	case ir.ExtSetter:
		return "set"
	case ir.ExtOperator:
		return "operator"
	default:
		return "method"
	}
}
