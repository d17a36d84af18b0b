package ir

// TypeKind identifies the category of a type for exhaustive switching.
type TypeKind int

const (
	TypeInterface TypeKind = iota
	TypeTypedef
	TypeTypeParameter
	TypeFunction
	TypeDynamic
	TypeVoid
	TypeNever
)

// String returns the string representation of the type kind.
func (k TypeKind) String() string {
	switch k {
	case TypeInterface:
		return "Interface"
	case TypeTypedef:
		return "Typedef"
	case TypeTypeParameter:
		return "TypeParameter"
	case TypeFunction:
		return "Function"
	case TypeDynamic:
		return "Dynamic"
	case TypeVoid:
		return "Void"
	case TypeNever:
		return "Never"
	default:
		return "Unknown"
	}
}

// Type is the base interface for all types. The set is closed; renderers
// switch exhaustively over the concrete types and treat an unknown dynamic
// type as a fatal condition.
type Type interface {
	// TypeKind returns the type kind for exhaustive switching.
	TypeKind() TypeKind

	// Ensure only types in this package can implement Type.
	typeNode()
}

type typeBase struct{}

func (typeBase) typeNode() {}

// InterfaceType is the type of a class instantiation, e.g. "List<int>?".
// The class is held by reference so the type stays renderable when the
// defining library has not been loaded.
type InterfaceType struct {
	typeBase

	Class         *Reference
	TypeArguments []Type
	Nullability   Nullability
}

// TypeKind returns TypeInterface.
func (t *InterfaceType) TypeKind() TypeKind { return TypeInterface }

// Interface returns an InterfaceType for a class reference.
func Interface(class *Reference, n Nullability, args ...Type) *InterfaceType {
	return &InterfaceType{Class: class, TypeArguments: args, Nullability: n}
}

// TypedefType is an un-expanded use of a typedef, e.g. "Handler?". Like
// InterfaceType it holds its target by reference.
type TypedefType struct {
	typeBase

	Typedef       *Reference
	TypeArguments []Type
	Nullability   Nullability
}

// TypeKind returns TypeTypedef.
func (t *TypedefType) TypeKind() TypeKind { return TypeTypedef }

// TypeParameterType is a use of an in-scope type parameter, e.g. "T%".
// Unlike class and typedef uses it points directly at the declaration;
// type parameters have no canonical names.
type TypeParameterType struct {
	typeBase

	Parameter   *TypeParameter
	Nullability Nullability
}

// TypeKind returns TypeTypeParameter.
func (t *TypeParameterType) TypeKind() TypeKind { return TypeTypeParameter }

// FunctionType is a structural function type, e.g. "(String) -> void".
type FunctionType struct {
	typeBase

	Parameters  []Type
	ReturnType  Type
	Nullability Nullability
}

// TypeKind returns TypeFunction.
func (t *FunctionType) TypeKind() TypeKind { return TypeFunction }

// DynamicType is the dynamic top type. It carries no nullability and
// renders no suffix.
type DynamicType struct {
	typeBase
}

// TypeKind returns TypeDynamic.
func (t *DynamicType) TypeKind() TypeKind { return TypeDynamic }

// VoidType is the void type. It carries no nullability and renders no
// suffix.
type VoidType struct {
	typeBase
}

// TypeKind returns TypeVoid.
func (t *VoidType) TypeKind() TypeKind { return TypeVoid }

// NeverType is the bottom type.
type NeverType struct {
	typeBase

	Nullability Nullability
}

// TypeKind returns TypeNever.
func (t *NeverType) TypeKind() TypeKind { return TypeNever }

// Dynamic and Void are the canonical instances of the field-less types.
var (
	Dynamic = &DynamicType{}
	Void    = &VoidType{}
)
