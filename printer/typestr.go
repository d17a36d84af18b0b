package printer

import (
	"fmt"
	"strings"

	"github.com/tarnlang/tarnir/ir"
)

// TypeString renders a type with its nullability suffix. The qualify flag
// controls library qualification of the class and typedef names inside; in
// dumps it is fed from the type-position policy, which may differ from the
// declaration-name policy. The type set is closed: an unknown dynamic type
// panics.
func TypeString(t ir.Type, qualify bool) string {
	var b strings.Builder
	writeType(&b, t, qualify)
	return b.String()
}

func writeType(b *strings.Builder, t ir.Type, qualify bool) {
	switch t := t.(type) {
	case nil:
		b.WriteString("null")
	case *ir.InterfaceType:
		b.WriteString(QualifiedClassNameOfReference(t.Class, qualify))
		writeTypeArguments(b, t.TypeArguments, qualify)
		b.WriteString(t.Nullability.Suffix())
	case *ir.TypedefType:
		b.WriteString(QualifiedTypedefNameOfReference(t.Typedef, qualify))
		writeTypeArguments(b, t.TypeArguments, qualify)
		b.WriteString(t.Nullability.Suffix())
	case *ir.TypeParameterType:
		b.WriteString(TypeParameterName(t.Parameter))
		b.WriteString(t.Nullability.Suffix())
	case *ir.FunctionType:
		// A suffixed function type is parenthesized so the suffix
		// unambiguously applies to the whole type.
		suffix := t.Nullability.Suffix()
		if suffix != "" {
			b.WriteString("(")
		}
		b.WriteString("(")
		for i, p := range t.Parameters {
			if i > 0 {
				b.WriteString(", ")
			}
			writeType(b, p, qualify)
		}
		b.WriteString(") -> ")
		writeType(b, t.ReturnType, qualify)
		if suffix != "" {
			b.WriteString(")")
			b.WriteString(suffix)
		}
	case *ir.DynamicType:
		b.WriteString("dynamic")
	case *ir.VoidType:
		b.WriteString("void")
	case *ir.NeverType:
		b.WriteString("Never")
		b.WriteString(t.Nullability.Suffix())
	default:
		panic(fmt.Sprintf("printer: unhandled type kind %v", t.TypeKind()))
	}
}

func writeTypeArguments(b *strings.Builder, args []ir.Type, qualify bool) {
	if len(args) == 0 {
		return
	}
	b.WriteString("<")
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		writeType(b, arg, qualify)
	}
	b.WriteString(">")
}
