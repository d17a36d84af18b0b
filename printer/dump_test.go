package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/tarnlang/tarnir/ir"
)

// dumpFixture builds a two-library program exercising every dump construct:
// typedefs, generic abstract classes, private and static members,
// getter/setter pairs, operators, extensions, and top-level declarations.
func dumpFixture(t *testing.T) *ir.Program {
	t.Helper()
	p := ir.NewProgram()

	core := ir.NewLibrary("tarn:core")
	core.Name = "core"
	strRef := p.Root().Child("tarn:core").Child("String").Reference()
	intRef := p.Root().Child("tarn:core").Child("int").Reference()
	objRef := p.Root().Child("tarn:core").Child("Object").Reference()
	pointRef := p.Root().Child("tarn:core").Child("Point").Reference()

	object := ir.NewClass("Object")
	object.AddProcedure(ir.NewProcedure(ir.NewName("toString"), ir.ProcMethod,
		&ir.FunctionNode{ReturnType: ir.Interface(strRef, ir.NonNullable)}))
	core.AddClass(object)
	core.AddClass(ir.NewClass("String"))
	core.AddClass(ir.NewClass("int"))
	core.AddClass(ir.NewClass("Point"))
	p.AddLibrary(core)

	app := ir.NewLibrary("pkg:app/app.tarn")

	app.AddTypedef(ir.NewTypedef("Transform", &ir.FunctionType{
		Parameters:  []ir.Type{ir.Interface(pointRef, ir.Nullable)},
		ReturnType:  ir.Interface(pointRef, ir.NonNullable),
		Nullability: ir.NonNullable,
	}))

	shape := ir.NewClass("Shape")
	shape.IsAbstract = true
	tp := ir.NewTypeParameter("T")
	tp.Bound = ir.Interface(objRef, ir.Nullable)
	shape.AddTypeParameter(tp)
	shape.Supertype = ir.Interface(objRef, ir.NonNullable)
	shape.AddField(ir.NewField(ir.NewPrivateName("_sides", "pkg:app/app.tarn"), ir.Interface(intRef, ir.NonNullable)))
	count := ir.NewField(ir.NewName("count"), ir.Interface(intRef, ir.NonNullable))
	count.IsStatic = true
	count.IsFinal = true
	shape.AddField(count)
	shape.AddConstructor(ir.NewConstructor(ir.NewName(""), &ir.FunctionNode{}))
	unit := ir.NewConstructor(ir.NewName("unit"), &ir.FunctionNode{})
	unit.IsConst = true
	shape.AddConstructor(unit)
	shape.AddProcedure(ir.NewProcedure(ir.NewName("scale"), ir.ProcMethod, &ir.FunctionNode{
		Parameters: []*ir.Parameter{{Name: "factor", Type: ir.Interface(intRef, ir.NonNullable)}},
		ReturnType: ir.Void,
	}))
	shape.AddProcedure(ir.NewProcedure(ir.NewName("area"), ir.ProcGetter,
		&ir.FunctionNode{ReturnType: ir.Interface(intRef, ir.NonNullable)}))
	shape.AddProcedure(ir.NewProcedure(ir.NewName("area"), ir.ProcSetter, &ir.FunctionNode{
		Parameters: []*ir.Parameter{{Name: "value", Type: ir.Interface(intRef, ir.NonNullable)}},
		ReturnType: ir.Void,
	}))
	shape.AddProcedure(ir.NewProcedure(ir.NewName("+"), ir.ProcOperator, &ir.FunctionNode{
		Parameters: []*ir.Parameter{{Name: "other", Type: ir.Interface(intRef, ir.NonNullable)}},
		ReturnType: ir.Interface(intRef, ir.NonNullable),
	}))
	app.AddClass(shape)

	flipRef := p.Root().Child("pkg:app/app.tarn").Child("pkg:app/app.tarn").Child("_flip").Reference()
	scaling := ir.NewExtension("Scaling", ir.Interface(objRef, ir.NonNullable))
	scaling.AddMember(ir.NewName("flip"), ir.ExtMethod, flipRef)
	app.AddExtension(scaling)

	app.AddField(ir.NewField(ir.NewName("registry"), ir.Dynamic))
	app.AddProcedure(ir.NewProcedure(ir.NewName("main"), ir.ProcMethod, &ir.FunctionNode{ReturnType: ir.Void}))
	app.AddProcedure(ir.NewProcedure(ir.NewPrivateName("_flip", "pkg:app/app.tarn"), ir.ProcMethod,
		&ir.FunctionNode{ReturnType: ir.Void}))
	p.AddLibrary(app)

	if err := p.AssignCanonicalNames(); err != nil {
		t.Fatalf("AssignCanonicalNames() error = %v", err)
	}
	return p
}

const wantAppDump = `library "pkg:app/app.tarn" {
  typedef Transform = (core::Point?) -> core::Point;
  abstract class Shape<T extends core::Object?> extends core::Object {
    field core::int _sides;
    static final field core::int count;
    constructor new();
    const constructor unit();
    method scale(core::int factor) -> void;
    get area() -> core::int;
    set area=(core::int value) -> void;
    operator +(core::int other) -> core::int;
  }
  extension Scaling on core::Object {
    method flip = _flip;
  }
  field dynamic registry;
  method main() -> void;
  method _flip() -> void;
}
`

const wantCoreDump = `library core "tarn:core" {
  class Object {
    method toString() -> core::String;
  }
  class String {
  }
  class int {
  }
  class Point {
  }
}
`

func TestDumpProgram(t *testing.T) {
	p := dumpFixture(t)

	var buf bytes.Buffer
	d := NewDumper(&buf, Options{QualifyTypes: true})
	if err := d.DumpProgram(p); err != nil {
		t.Fatalf("DumpProgram() error = %v", err)
	}

	// Libraries print in import-URI order: pkg: before tarn:.
	want := wantAppDump + "\n" + wantCoreDump
	if got := buf.String(); got != want {
		t.Errorf("DumpProgram() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpProgram_Deterministic(t *testing.T) {
	p := dumpFixture(t)

	var first, second bytes.Buffer
	if err := NewDumper(&first, Options{QualifyTypes: true}).DumpProgram(p); err != nil {
		t.Fatalf("first dump error = %v", err)
	}
	if err := NewDumper(&second, Options{QualifyTypes: true}).DumpProgram(p); err != nil {
		t.Fatalf("second dump error = %v", err)
	}
	if first.String() != second.String() {
		t.Error("identical programs should dump identically")
	}
}

// TestDumpProgram_TypedefBodyQualification checks the flag split: with
// QualifyTypes on and QualifyDeclarations off, the typedef's own name stays
// bare while class references inside its body carry their library.
func TestDumpProgram_TypedefBodyQualification(t *testing.T) {
	p := dumpFixture(t)

	var buf bytes.Buffer
	if err := NewDumper(&buf, Options{QualifyTypes: true}).DumpProgram(p); err != nil {
		t.Fatalf("DumpProgram() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "typedef Transform = (core::Point?) -> core::Point;") {
		t.Errorf("typedef body should qualify inner types, got:\n%s", out)
	}
	if strings.Contains(out, "typedef pkg:app/app.tarn::Transform") ||
		strings.Contains(out, "typedef library") {
		t.Errorf("typedef's own name should stay unqualified, got:\n%s", out)
	}
}

func TestDumpProgram_QualifyDeclarations(t *testing.T) {
	p := dumpFixture(t)

	var buf bytes.Buffer
	if err := NewDumper(&buf, Options{QualifyDeclarations: true, QualifyTypes: false}).DumpProgram(p); err != nil {
		t.Fatalf("DumpProgram() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "method flip = library pkg:app/app.tarn::_flip;") {
		t.Errorf("extension member target should be library-qualified, got:\n%s", out)
	}
	if !strings.Contains(out, "method scale(int factor) -> void;") {
		t.Errorf("types should be bare with QualifyTypes off, got:\n%s", out)
	}
}

func TestDumpProgram_Filter(t *testing.T) {
	p := dumpFixture(t)

	filter, err := CompileFilter(`kind == "Class"`)
	if err != nil {
		t.Fatalf("CompileFilter() error = %v", err)
	}
	var buf bytes.Buffer
	if err := NewDumper(&buf, Options{QualifyTypes: true, Filter: filter}).DumpProgram(p); err != nil {
		t.Fatalf("DumpProgram() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "class Shape") {
		t.Error("filter should keep classes")
	}
	for _, banned := range []string{"typedef", "extension", "field dynamic registry", "method main"} {
		if strings.Contains(out, banned) {
			t.Errorf("filter should drop %q, got:\n%s", banned, out)
		}
	}
}

func TestDumpProgram_Colorized(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	p := dumpFixture(t)
	var buf bytes.Buffer
	if err := NewDumper(&buf, Options{QualifyTypes: true, Colors: NewColors()}).DumpProgram(p); err != nil {
		t.Fatalf("DumpProgram() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("colorized dump should contain ANSI escapes")
	}
}

func TestDumpLibrary_EscapesURI(t *testing.T) {
	lib := ir.NewLibrary("pkg:weird/\twith tab.tarn")

	var buf bytes.Buffer
	if err := NewDumper(&buf, Options{}).DumpLibrary(lib); err != nil {
		t.Fatalf("DumpLibrary() error = %v", err)
	}
	if !strings.Contains(buf.String(), `pkg:weird/\twith tab.tarn`) {
		t.Errorf("URI should be escaped in header, got %q", buf.String())
	}
}
