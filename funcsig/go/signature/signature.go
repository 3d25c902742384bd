// Package signature parses the declaration of the solution function of a
// coding problem, e.g. "list[int32] fun(z:list[list[char]])", into a
// validated Signature.
package signature

import (
	"encoding/json"
	"strings"

	"github.com/interviewkickstart/funcsig/funcsig/go/types"
)

// Argument is one parameter of the function.
type Argument struct {
	Name string
	Type *types.Type
}

// Signature is a parsed and validated function declaration. It is immutable;
// the only way to get one is Parse or ParseWithOptions.
type Signature struct {
	name       string
	returnType *types.Type
	args       []Argument
}

// Name of the function.
func (s *Signature) Name() string {
	return s.name
}

// ReturnType of the function.
func (s *Signature) ReturnType() *types.Type {
	return s.returnType
}

// Args returns the arguments in declaration order. The slice is a copy.
func (s *Signature) Args() []Argument {
	return append([]Argument(nil), s.args...)
}

// NumArgs returns the number of arguments.
func (s *Signature) NumArgs() int {
	return len(s.args)
}

// Arg returns the i-th argument.
func (s *Signature) Arg(i int) Argument {
	return s.args[i]
}

// CustomTypes returns each distinct custom type used anywhere in the
// signature, in order of first appearance. Stub generators declare one class
// or struct per entry.
func (s *Signature) CustomTypes() []*types.Type {
	var rv []*types.Type
	add := func(t *types.Type) {
		t.Walk(func(cur *types.Type) {
			if !cur.IsCustom() {
				return
			}
			for _, existing := range rv {
				if existing.Equal(cur) {
					return
				}
			}
			rv = append(rv, cur)
		})
	}
	add(s.returnType)
	for _, a := range s.args {
		add(a.Type)
	}
	return rv
}

// Equal returns true if both signatures have the same name, return type and
// arguments.
func (s *Signature) Equal(o *Signature) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.name != o.name || !s.returnType.Equal(o.returnType) || len(s.args) != len(o.args) {
		return false
	}
	for i, a := range s.args {
		if a.Name != o.args[i].Name || !a.Type.Equal(o.args[i].Type) {
			return false
		}
	}
	return true
}

// String returns the canonical text of the signature, which parses back into
// an equal Signature, e.g. "int32 f(a:int32, b:list[char])".
func (s *Signature) String() string {
	var sb strings.Builder
	sb.WriteString(s.returnType.String())
	sb.WriteString(" ")
	sb.WriteString(s.name)
	sb.WriteString("(")
	for i, a := range s.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Name)
		sb.WriteString(":")
		sb.WriteString(a.Type.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// ArgumentDict is the plain form of an Argument.
type ArgumentDict struct {
	Name string      `json:"name"`
	Type *types.Dict `json:"type"`
}

// Dict is the plain nested form of a Signature consumed by stub generation
// tools.
type Dict struct {
	Name string         `json:"name"`
	Type *types.Dict    `json:"type"`
	Args []ArgumentDict `json:"args"`
}

// Dict returns the plain form of s. Args is never nil.
func (s *Signature) Dict() *Dict {
	args := make([]ArgumentDict, 0, len(s.args))
	for _, a := range s.args {
		args = append(args, ArgumentDict{
			Name: a.Name,
			Type: a.Type.Dict(),
		})
	}
	return &Dict{
		Name: s.name,
		Type: s.returnType.Dict(),
		Args: args,
	}
}

// MarshalJSON implements json.Marshaler.
func (s *Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Dict())
}
