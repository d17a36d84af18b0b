// Package loader reads library bundles into linked programs.
//
// A bundle is a txtar archive holding one YAML manifest per library.
// Loading interns every declaration and reference path through the
// program's canonical name tree, so cross-library references link up no
// matter which order the manifests appear in, and references into
// libraries absent from the bundle stay unlinked but keep a displayable
// canonical name.
package loader

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tarnlang/tarnir/ir"
)

// Options configures bundle loading.
type Options struct {
	// Logger receives load progress. Defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// LoadBundleFile reads a txtar bundle from disk and loads it.
func LoadBundleFile(path string, opts Options) (*ir.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read bundle: %w", err)
	}
	return LoadBundle(data, opts)
}

// LoadBundle builds a linked program from a txtar bundle of library
// manifests.
func LoadBundle(data []byte, opts Options) (*ir.Program, error) {
	manifests, err := ParseBundle(data)
	if err != nil {
		return nil, err
	}
	logger := opts.logger()

	p := ir.NewProgram()
	for _, m := range manifests {
		if p.LibraryByURI(m.URI) != nil {
			return nil, fmt.Errorf("loader: duplicate library %q", m.URI)
		}
		lib, err := newBuilder(p, m).library()
		if err != nil {
			return nil, err
		}
		p.AddLibrary(lib)
		logger.Debug("loaded library",
			slog.String("uri", m.URI),
			slog.Int("classes", len(m.Classes)),
			slog.Int("typedefs", len(m.Typedefs)))
	}
	if err := p.AssignCanonicalNames(); err != nil {
		return nil, err
	}
	logger.Info("loaded bundle",
		slog.Int("libraries", len(p.Libraries)),
		slog.Int("unlinked", len(CheckProgram(p))))
	return p, nil
}

// builder lowers one manifest into an ir.Library. Type parameters resolve
// lexically through scopes pushed while classes, typedefs, extensions, and
// functions build.
type builder struct {
	program *ir.Program
	m       *Manifest
	scopes  [][]*ir.TypeParameter
}

func newBuilder(p *ir.Program, m *Manifest) *builder {
	return &builder{program: p, m: m}
}

func (b *builder) library() (*ir.Library, error) {
	lib := ir.NewLibrary(b.m.URI)
	lib.Name = b.m.Name
	for i := range b.m.Classes {
		c, err := b.class(&b.m.Classes[i])
		if err != nil {
			return nil, fmt.Errorf("loader: library %q: %w", b.m.URI, err)
		}
		lib.AddClass(c)
	}
	for i := range b.m.Typedefs {
		td, err := b.typedef(&b.m.Typedefs[i])
		if err != nil {
			return nil, fmt.Errorf("loader: library %q: %w", b.m.URI, err)
		}
		lib.AddTypedef(td)
	}
	for i := range b.m.Extensions {
		e, err := b.extension(&b.m.Extensions[i])
		if err != nil {
			return nil, fmt.Errorf("loader: library %q: %w", b.m.URI, err)
		}
		lib.AddExtension(e)
	}
	for i := range b.m.Fields {
		f, err := b.field(&b.m.Fields[i])
		if err != nil {
			return nil, fmt.Errorf("loader: library %q: %w", b.m.URI, err)
		}
		lib.AddField(f)
	}
	for i := range b.m.Procedures {
		pr, err := b.procedure(&b.m.Procedures[i])
		if err != nil {
			return nil, fmt.Errorf("loader: library %q: %w", b.m.URI, err)
		}
		lib.AddProcedure(pr)
	}
	return lib, nil
}

func (b *builder) class(cm *ClassManifest) (*ir.Class, error) {
	c := ir.NewClass(cm.Name)
	c.IsAbstract = cm.Abstract
	tps := b.typeParameters(cm.TypeParameters)
	for _, tp := range tps {
		c.AddTypeParameter(tp)
	}
	b.push(tps)
	defer b.pop()
	if err := b.bindBounds(cm.TypeParameters, tps); err != nil {
		return nil, fmt.Errorf("class %q: %w", cm.Name, err)
	}
	if cm.Supertype != nil {
		st, err := b.interfaceType(cm.Supertype)
		if err != nil {
			return nil, fmt.Errorf("class %q supertype: %w", cm.Name, err)
		}
		c.Supertype = st
	}
	for i := range cm.Interfaces {
		it, err := b.interfaceType(&cm.Interfaces[i])
		if err != nil {
			return nil, fmt.Errorf("class %q interfaces: %w", cm.Name, err)
		}
		c.Interfaces = append(c.Interfaces, it)
	}
	for i := range cm.Fields {
		f, err := b.field(&cm.Fields[i])
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", cm.Name, err)
		}
		c.AddField(f)
	}
	for i := range cm.Constructors {
		ct, err := b.constructor(&cm.Constructors[i])
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", cm.Name, err)
		}
		c.AddConstructor(ct)
	}
	for i := range cm.Procedures {
		pr, err := b.procedure(&cm.Procedures[i])
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", cm.Name, err)
		}
		c.AddProcedure(pr)
	}
	return c, nil
}

func (b *builder) typedef(tm *TypedefManifest) (*ir.Typedef, error) {
	tps := b.typeParameters(tm.TypeParameters)
	b.push(tps)
	defer b.pop()
	if err := b.bindBounds(tm.TypeParameters, tps); err != nil {
		return nil, fmt.Errorf("typedef %q: %w", tm.Name, err)
	}
	aliased, err := b.buildType(&tm.Type)
	if err != nil {
		return nil, fmt.Errorf("typedef %q: %w", tm.Name, err)
	}
	td := ir.NewTypedef(tm.Name, aliased)
	for _, tp := range tps {
		td.AddTypeParameter(tp)
	}
	return td, nil
}

func (b *builder) extension(em *ExtensionManifest) (*ir.Extension, error) {
	tps := b.typeParameters(em.TypeParameters)
	b.push(tps)
	defer b.pop()
	if err := b.bindBounds(em.TypeParameters, tps); err != nil {
		return nil, fmt.Errorf("extension %q: %w", em.Name, err)
	}
	onType, err := b.buildType(&em.On)
	if err != nil {
		return nil, fmt.Errorf("extension %q on: %w", em.Name, err)
	}
	e := ir.NewExtension(em.Name, onType)
	for _, tp := range tps {
		e.AddTypeParameter(tp)
	}
	for i := range em.Members {
		mm := &em.Members[i]
		kind, err := extensionMemberKind(mm.Kind)
		if err != nil {
			return nil, fmt.Errorf("extension %q member %q: %w", em.Name, mm.Name, err)
		}
		e.AddMember(b.name(mm.Name), kind, b.reference(mm.Target))
	}
	return e, nil
}

func (b *builder) field(fm *FieldManifest) (*ir.Field, error) {
	typ, err := b.buildType(&fm.Type)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", fm.Name, err)
	}
	f := ir.NewField(b.name(fm.Name), typ)
	f.IsStatic = fm.Static
	f.IsFinal = fm.Final
	f.IsConst = fm.Const
	return f, nil
}

func (b *builder) procedure(pm *ProcedureManifest) (*ir.Procedure, error) {
	kind, err := procedureKind(pm.Kind)
	if err != nil {
		return nil, fmt.Errorf("procedure %q: %w", pm.Name, err)
	}
	fn, err := b.function(&pm.Function)
	if err != nil {
		return nil, fmt.Errorf("procedure %q: %w", pm.Name, err)
	}
	p := ir.NewProcedure(b.name(pm.Name), kind, fn)
	p.IsStatic = pm.Static
	p.IsAbstract = pm.Abstract
	return p, nil
}

func (b *builder) constructor(cm *ConstructorManifest) (*ir.Constructor, error) {
	fn, err := b.function(&cm.Function)
	if err != nil {
		return nil, fmt.Errorf("constructor %q: %w", cm.Name, err)
	}
	ct := ir.NewConstructor(b.name(cm.Name), fn)
	ct.IsConst = cm.Const
	return ct, nil
}

func (b *builder) function(fm *FunctionManifest) (*ir.FunctionNode, error) {
	tps := b.typeParameters(fm.TypeParameters)
	b.push(tps)
	defer b.pop()
	if err := b.bindBounds(fm.TypeParameters, tps); err != nil {
		return nil, err
	}
	fn := &ir.FunctionNode{TypeParameters: tps}
	for i := range fm.Parameters {
		pm := &fm.Parameters[i]
		typ, err := b.buildType(&pm.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", pm.Name, err)
		}
		fn.Parameters = append(fn.Parameters, &ir.Parameter{Name: pm.Name, Type: typ, IsNamed: pm.Named})
	}
	if fm.ReturnType != nil {
		ret, err := b.buildType(fm.ReturnType)
		if err != nil {
			return nil, fmt.Errorf("return type: %w", err)
		}
		fn.ReturnType = ret
	} else {
		fn.ReturnType = ir.Dynamic
	}
	return fn, nil
}

// name resolves a declaration name, defaulting the private bucket to the
// enclosing library.
func (b *builder) name(text string) ir.Name {
	if strings.HasPrefix(text, ir.PrivateMarker) {
		return ir.NewPrivateName(text, b.m.URI)
	}
	return ir.NewName(text)
}

// reference interns a raw canonical path below the root. Interning through
// the shared tree is what makes linking order-independent.
func (b *builder) reference(segments []string) *ir.Reference {
	cn := b.program.Root()
	for _, seg := range segments {
		cn = cn.Child(seg)
	}
	return cn.Reference()
}

func (b *builder) buildType(tm *TypeManifest) (ir.Type, error) {
	n, err := nullability(tm.Nullability)
	if err != nil {
		return nil, err
	}
	switch tm.Kind {
	case "interface":
		if len(tm.Target) == 0 {
			return nil, fmt.Errorf("interface type needs a target path")
		}
		args, err := b.buildTypes(tm.TypeArguments)
		if err != nil {
			return nil, err
		}
		return &ir.InterfaceType{Class: b.reference(tm.Target), TypeArguments: args, Nullability: n}, nil
	case "typedef":
		if len(tm.Target) == 0 {
			return nil, fmt.Errorf("typedef type needs a target path")
		}
		args, err := b.buildTypes(tm.TypeArguments)
		if err != nil {
			return nil, err
		}
		return &ir.TypedefType{Typedef: b.reference(tm.Target), TypeArguments: args, Nullability: n}, nil
	case "typeParameter":
		tp := b.lookup(tm.Name)
		if tp == nil {
			return nil, fmt.Errorf("type parameter %q is not in scope", tm.Name)
		}
		return &ir.TypeParameterType{Parameter: tp, Nullability: n}, nil
	case "function":
		params, err := b.buildTypes(tm.Parameters)
		if err != nil {
			return nil, err
		}
		var ret ir.Type = ir.Dynamic
		if tm.ReturnType != nil {
			ret, err = b.buildType(tm.ReturnType)
			if err != nil {
				return nil, err
			}
		}
		return &ir.FunctionType{Parameters: params, ReturnType: ret, Nullability: n}, nil
	case "dynamic":
		return ir.Dynamic, nil
	case "void":
		return ir.Void, nil
	case "never":
		return &ir.NeverType{Nullability: n}, nil
	}
	return nil, fmt.Errorf("unknown type kind %q", tm.Kind)
}

func (b *builder) buildTypes(tms []TypeManifest) ([]ir.Type, error) {
	if len(tms) == 0 {
		return nil, nil
	}
	out := make([]ir.Type, len(tms))
	for i := range tms {
		t, err := b.buildType(&tms[i])
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func (b *builder) interfaceType(tm *TypeManifest) (*ir.InterfaceType, error) {
	t, err := b.buildType(tm)
	if err != nil {
		return nil, err
	}
	it, ok := t.(*ir.InterfaceType)
	if !ok {
		return nil, fmt.Errorf("%s type where an interface type is required", tm.Kind)
	}
	return it, nil
}

func (b *builder) typeParameters(tpms []TypeParamManifest) []*ir.TypeParameter {
	if len(tpms) == 0 {
		return nil
	}
	tps := make([]*ir.TypeParameter, len(tpms))
	for i := range tpms {
		tps[i] = ir.NewTypeParameter(tpms[i].Name)
	}
	return tps
}

// bindBounds fills bounds after the parameters joined the scope, so
// F-bounded parameters can reference themselves.
func (b *builder) bindBounds(tpms []TypeParamManifest, tps []*ir.TypeParameter) error {
	for i := range tpms {
		if tpms[i].Bound == nil {
			continue
		}
		bound, err := b.buildType(tpms[i].Bound)
		if err != nil {
			return fmt.Errorf("type parameter %q bound: %w", tpms[i].Name, err)
		}
		tps[i].Bound = bound
	}
	return nil
}

func (b *builder) push(tps []*ir.TypeParameter) {
	b.scopes = append(b.scopes, tps)
}

func (b *builder) pop() {
	b.scopes = b.scopes[:len(b.scopes)-1]
}

func (b *builder) lookup(name string) *ir.TypeParameter {
	for i := len(b.scopes) - 1; i >= 0; i-- {
		for _, tp := range b.scopes[i] {
			if tp.Name == name {
				return tp
			}
		}
	}
	return nil
}

func procedureKind(s string) (ir.ProcedureKind, error) {
	switch s {
	case "", "method":
		return ir.ProcMethod, nil
	case "getter":
		return ir.ProcGetter, nil
	case "setter":
		return ir.ProcSetter, nil
	case "operator":
		return ir.ProcOperator, nil
	case "factory":
		return ir.ProcFactory, nil
	}
	return 0, fmt.Errorf("unknown procedure kind %q", s)
}

func extensionMemberKind(s string) (ir.ExtensionMemberKind, error) {
	switch s {
	case "method":
		return ir.ExtMethod, nil
	case "getter":
		return ir.ExtGetter, nil
	case "setter":
		return ir.ExtSetter, nil
	case "operator":
		return ir.ExtOperator, nil
	}
	return 0, fmt.Errorf("unknown extension member kind %q", s)
}

func nullability(s string) (ir.Nullability, error) {
	switch s {
	case "", "nonNullable":
		return ir.NonNullable, nil
	case "nullable":
		return ir.Nullable, nil
	case "legacy":
		return ir.Legacy, nil
	case "undetermined":
		return ir.Undetermined, nil
	}
	return 0, fmt.Errorf("unknown nullability %q", s)
}
