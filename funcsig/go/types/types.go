// Package types defines the closed set of data types that can appear in a
// problem function signature, and turns their textual form (e.g.
// "list[list[int32]]") into Type values.
package types

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/interviewkickstart/funcsig/go/skerr"
	"github.com/interviewkickstart/funcsig/go/util"
)

// Primitive type names. Primitive types are the leaves of a type tree.
const (
	Int32 = "int32"
	Int64 = "int64"
	Bool  = "bool"
	Char  = "char"
	Str   = "str"
	Float = "float"
)

// Composite type names. A composite type always has exactly one element type.
const (
	List = "list"

	// SinglyLinkedListNode is the only custom type. Stub generators declare
	// custom types as a class or struct in every target language.
	SinglyLinkedListNode = "SinglyLinkedListNode"
)

var (
	primitiveTypeNames = []string{Int32, Int64, Bool, Char, Str, Float}
	compositeTypeNames = []string{List, SinglyLinkedListNode}
	customTypeNames    = []string{SinglyLinkedListNode}
)

// PrimitiveTypeNames returns the names of the primitive types.
func PrimitiveTypeNames() []string {
	return append([]string(nil), primitiveTypeNames...)
}

// CompositeTypeNames returns the names of the composite types, custom ones
// included.
func CompositeTypeNames() []string {
	return append([]string(nil), compositeTypeNames...)
}

// CustomTypeNames returns the names of the custom types.
func CustomTypeNames() []string {
	return append([]string(nil), customTypeNames...)
}

// AllTypeNames returns the primitive names followed by the composite names.
func AllTypeNames() []string {
	return append(PrimitiveTypeNames(), compositeTypeNames...)
}

// IsPrimitiveName returns true if name is a primitive type name.
func IsPrimitiveName(name string) bool {
	return util.In(name, primitiveTypeNames)
}

// IsCompositeName returns true if name is a composite type name.
func IsCompositeName(name string) bool {
	return util.In(name, compositeTypeNames)
}

// IsTypeName returns true if name is any recognized type name.
func IsTypeName(name string) bool {
	return IsPrimitiveName(name) || IsCompositeName(name)
}

// Type is the type of a function argument or return value. Types are
// immutable once built and form trees, never cycles.
type Type struct {
	name string
	elem *Type
}

// New returns a Type, checking that a primitive name comes without an
// element type and a composite name comes with one.
func New(name string, elem *Type) (*Type, error) {
	if IsPrimitiveName(name) {
		if elem != nil {
			return nil, skerr.Fmt("primitive type %s cannot have an element type", name)
		}
		return &Type{name: name}, nil
	}
	if IsCompositeName(name) {
		if elem == nil {
			return nil, skerr.Fmt("composite type %s requires an element type", name)
		}
		return &Type{name: name, elem: elem}, nil
	}
	return nil, skerr.Fmt("unknown type name %q", name)
}

// MustNew is like New but panics on error. Meant for tests and static tables.
func MustNew(name string, elem *Type) *Type {
	t, err := New(name, elem)
	if err != nil {
		panic(err)
	}
	return t
}

// Name of the type, e.g. "list".
func (t *Type) Name() string {
	return t.name
}

// Elem returns the element type, or nil for primitive types.
func (t *Type) Elem() *Type {
	return t.elem
}

// IsPrimitive is true iff the type has no element type.
func (t *Type) IsPrimitive() bool {
	return t.elem == nil
}

// IsCustom is true for the types that need their own declaration in
// generated code.
func (t *Type) IsCustom() bool {
	return util.In(t.name, customTypeNames)
}

// Equal reports structural equality. Two nil Types are equal.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.name == o.name && t.elem.Equal(o.elem)
}

// Hash returns a hash of the structure of t. Equal types hash the same.
func (t *Type) Hash() uint64 {
	return xxhash.Sum64String(t.String())
}

// String returns the canonical textual form, e.g. "list[int32]", which
// Validate turns back into an equal Type.
func (t *Type) String() string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	t.write(&sb, "[", "]")
	return sb.String()
}

// Identifier returns a form usable inside generated identifiers, e.g.
// "list_list_int32".
func (t *Type) Identifier() string {
	var sb strings.Builder
	t.write(&sb, "_", "")
	return sb.String()
}

func (t *Type) write(sb *strings.Builder, pre, post string) {
	sb.WriteString(t.name)
	if t.elem == nil {
		return
	}
	sb.WriteString(pre)
	t.elem.write(sb, pre, post)
	sb.WriteString(post)
}

// ContainsListOfPrimitive reports whether t is, or contains, a list of a
// primitive type. If so the primitive element type is also returned.
func (t *Type) ContainsListOfPrimitive() (bool, *Type) {
	if t.IsPrimitive() {
		return false, nil
	}
	if t.elem.IsPrimitive() {
		if t.name == List {
			return true, t.elem
		}
		return false, nil
	}
	return t.elem.ContainsListOfPrimitive()
}

// IsListOfLists is true if t is a list whose elements are lists.
func (t *Type) IsListOfLists() bool {
	if t.IsPrimitive() {
		return false
	}
	return t.name == List && t.elem.name == List
}

// Walk calls fn for t and then for each nested element type, outermost first.
func (t *Type) Walk(fn func(*Type)) {
	for cur := t; cur != nil; cur = cur.elem {
		fn(cur)
	}
}
