package ir

import "strings"

// PrivateMarker is the leading character of a name segment with file-local
// visibility. Private names are qualified by the library they are visible in
// and intern one level deeper in the canonical-name tree, under a bucket
// keyed by that library's import URI.
const PrivateMarker = "_"

// DefaultConstructorName is the canonical-name segment of an unnamed
// constructor.
const DefaultConstructorName = "new"

// TypedefBucket is the reserved canonical-name segment under which a
// library's typedefs intern. It never appears in rendered output.
const TypedefBucket = "@typedefs"

// Name is a member name, optionally qualified by the library that can see
// it. Public names carry only Text; private names (Text starting with
// PrivateMarker) also carry the import URI of their defining library, which
// becomes their bucket segment in the canonical-name tree.
type Name struct {
	// Text is the declared name, e.g. "length" or "_cache".
	Text string

	// LibraryURI is the defining library's import URI for private names.
	// Empty for public names. The loader fills it in; hand-built programs
	// may leave it empty and have it defaulted during canonical-name
	// assignment.
	LibraryURI string
}

// NewName returns a public Name.
func NewName(text string) Name {
	return Name{Text: text}
}

// NewPrivateName returns a Name qualified by its defining library.
func NewPrivateName(text, libraryURI string) Name {
	return Name{Text: text, LibraryURI: libraryURI}
}

// IsPrivate reports whether the name has file-local visibility.
func (n Name) IsPrivate() bool {
	return strings.HasPrefix(n.Text, PrivateMarker)
}

// IsZero reports whether the name is empty.
func (n Name) IsZero() bool {
	return n.Text == "" && n.LibraryURI == ""
}

// String returns the name text.
func (n Name) String() string {
	return n.Text
}
