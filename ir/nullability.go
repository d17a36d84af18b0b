package ir

import "fmt"

// Nullability classifies a type's null-acceptance. The enumeration is
// closed: every consumer must handle all four values, and reaching an
// unknown value is a programming error, not a recoverable condition.
type Nullability int

const (
	// Legacy marks types from libraries not yet migrated to null safety.
	Legacy Nullability = iota

	// Nullable types admit null.
	Nullable

	// Undetermined marks type-parameter types whose nullability depends on
	// the instantiation.
	Undetermined

	// NonNullable types never admit null.
	NonNullable
)

// Suffix returns the single-character rendering suffix for the nullability:
// "*" for Legacy, "?" for Nullable, "%" for Undetermined, and "" for
// NonNullable. Panics on any other value.
func (n Nullability) Suffix() string {
	switch n {
	case Legacy:
		return "*"
	case Nullable:
		return "?"
	case Undetermined:
		return "%"
	case NonNullable:
		return ""
	default:
		panic(fmt.Sprintf("ir: invalid Nullability(%d)", int(n)))
	}
}

// String returns the name of the nullability value.
func (n Nullability) String() string {
	switch n {
	case Legacy:
		return "legacy"
	case Nullable:
		return "nullable"
	case Undetermined:
		return "undetermined"
	case NonNullable:
		return "nonNullable"
	default:
		return fmt.Sprintf("Nullability(%d)", int(n))
	}
}
