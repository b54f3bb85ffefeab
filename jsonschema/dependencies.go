package jsonschema

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Dependencies carries the draft-07 dependencies keyword: each entry maps a
// property name to either a list of property names (property dependency) or
// a schema (schema dependency). Entry order is insertion order.
type Dependencies struct {
	keys []string
	vals map[string]any // []string or *Schema
}

// NewDependencies returns an empty dependencies map.
func NewDependencies() *Dependencies {
	return &Dependencies{vals: map[string]any{}}
}

// SetRequired records a property dependency: when name is present, props
// must be present as well.
func (d *Dependencies) SetRequired(name string, props []string) *Dependencies {
	d.set(name, props)
	return d
}

// SetSchema records a schema dependency: when name is present, the instance
// must also validate against s.
func (d *Dependencies) SetSchema(name string, s *Schema) *Dependencies {
	d.set(name, s)
	return d
}

func (d *Dependencies) set(name string, v any) {
	if _, ok := d.vals[name]; !ok {
		d.keys = append(d.keys, name)
	}
	d.vals[name] = v
}

// Len returns the number of entries.
func (d *Dependencies) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// MarshalJSON encodes entries in insertion order.
func (d *Dependencies) MarshalJSON() ([]byte, error) {
	if d == nil || len(d.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
