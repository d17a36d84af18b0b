package printer

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tarnlang/tarnir/ir"
)

// Filter selects declarations by a boolean expression over the variables
// kind (the NodeKind name, e.g. "Class"), name (the unqualified declaration
// name), library (the enclosing library's import URI), and private.
// Examples:
//
//	kind == "Class"
//	library == "tarn:core" && !private
//	name startsWith "_"
type Filter struct {
	src     string
	program *vm.Program
}

// CompileFilter compiles a filter expression. Bad expressions fail here, not
// at match time.
func CompileFilter(src string) (*Filter, error) {
	program, err := expr.Compile(src, expr.Env(emptyFilterEnv()), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("printer: compile filter %q: %w", src, err)
	}
	return &Filter{src: src, program: program}, nil
}

// Match evaluates the filter for one declaration. Evaluation errors report
// false along with the error so callers can decide whether to skip or
// abort.
func (f *Filter) Match(lib *ir.Library, node ir.NamedNode) (bool, error) {
	out, err := expr.Run(f.program, filterEnv(lib, node))
	if err != nil {
		return false, fmt.Errorf("printer: filter %q: %w", f.src, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// String returns the filter source.
func (f *Filter) String() string {
	return f.src
}

func emptyFilterEnv() map[string]any {
	return map[string]any{
		"kind":    "",
		"name":    "",
		"library": "",
		"private": false,
	}
}

func filterEnv(lib *ir.Library, node ir.NamedNode) map[string]any {
	env := emptyFilterEnv()
	if lib != nil {
		env["library"] = lib.ImportURI
	}
	if node != nil {
		name := DeclarationName(node)
		env["kind"] = node.Kind().String()
		env["name"] = name
		env["private"] = strings.HasPrefix(name, ir.PrivateMarker)
	}
	return env
}
