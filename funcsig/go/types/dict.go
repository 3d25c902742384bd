package types

import (
	"encoding/json"

	"github.com/interviewkickstart/funcsig/go/skerr"
)

// Dict is the plain nested form of a Type consumed by stub generation tools.
// ElementType is always present in JSON, as null for primitive types.
type Dict struct {
	Name        string `json:"name"`
	ElementType *Dict  `json:"element_type"`
	Primitive   bool   `json:"primitive"`
	Custom      bool   `json:"custom"`
}

// Dict returns the plain nested form of t.
func (t *Type) Dict() *Dict {
	if t == nil {
		return nil
	}
	return &Dict{
		Name:        t.name,
		ElementType: t.elem.Dict(),
		Primitive:   t.IsPrimitive(),
		Custom:      t.IsCustom(),
	}
}

// MarshalJSON implements json.Marshaler.
func (t *Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Dict())
}

// FromDict rebuilds a Type from its plain form. The derived Primitive and
// Custom fields must agree with the name and element type.
func FromDict(d *Dict) (*Type, error) {
	if d == nil {
		return nil, skerr.Fmt("missing type")
	}
	var elem *Type
	if d.ElementType != nil {
		var err error
		elem, err = FromDict(d.ElementType)
		if err != nil {
			return nil, skerr.Wrapf(err, "element type of %s", d.Name)
		}
	}
	t, err := New(d.Name, elem)
	if err != nil {
		return nil, err
	}
	if t.IsPrimitive() != d.Primitive || t.IsCustom() != d.Custom {
		return nil, skerr.Fmt("inconsistent flags for %s: primitive=%t custom=%t", t, d.Primitive, d.Custom)
	}
	return t, nil
}
