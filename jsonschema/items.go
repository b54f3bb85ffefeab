package jsonschema

import (
	json "github.com/goccy/go-json"
)

// Items carries the draft-07 items keyword, which is either a single schema
// applied to every element or an ordered tuple of positional schemas.
// Exactly one of Schema and Tuple is set.
type Items struct {
	Schema *Schema
	Tuple  []*Schema
}

// SingleItems wraps s in the single-schema form.
func SingleItems(s *Schema) *Items { return &Items{Schema: s} }

// TupleItems wraps ss in the tuple form.
func TupleItems(ss ...*Schema) *Items { return &Items{Tuple: ss} }

// MarshalJSON emits the schema form when set, otherwise the tuple form.
func (it *Items) MarshalJSON() ([]byte, error) {
	if it.Schema != nil {
		return json.Marshal(it.Schema)
	}
	return json.Marshal(it.Tuple)
}
