package jsonschema

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Map is an insertion-ordered mapping from property or definition names to
// schemas. Encoding preserves the order names were Set, which keeps document
// output deterministic without sorting.
type Map struct {
	keys []string
	vals map[string]*Schema
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{vals: map[string]*Schema{}}
}

// Set stores s under name. Re-setting an existing name replaces the value
// but keeps its original position.
func (m *Map) Set(name string, s *Schema) *Map {
	if _, ok := m.vals[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.vals[name] = s
	return m
}

// Get returns the schema stored under name.
func (m *Map) Get(name string) (*Schema, bool) {
	if m == nil {
		return nil, false
	}
	s, ok := m.vals[name]
	return s, ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the names in insertion order. The slice is shared; callers
// must not mutate it.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// MarshalJSON encodes entries in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
