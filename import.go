package fluentschema

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reoring/fluentschema/i18n"
)

// Import of existing draft-07 documents back into a Builder. The imported
// builder is fully chainable: callers may keep adding properties or
// definitions before serializing again. Structural $id values are not
// imported (they are recomputed from position on the next Build); the root
// $id is kept verbatim.

// docObject is the insertion-ordered decoded form of a JSON/YAML object.
// Values are nil, bool, string, json.Number, int, float64, []any or
// *docObject.
type docObject struct {
	entries []docEntry
}

type docEntry struct {
	key string
	val any
}

// FromJSON reconstructs a builder from a draft-07 document in JSON.
// Property and definition order is preserved, so re-serializing an
// unmodified import yields the same member order.
func FromJSON(data []byte) (*Builder, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeOrdered(dec)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: err.Error()}}
	}
	obj, ok := v.(*docObject)
	if !ok {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: "document root must be an object"}}
	}
	return importDocument(obj)
}

// Import reconstructs a builder from an already-decoded document. Go map
// iteration order is unspecified, so members are walked in sorted key
// order; use FromJSON or FromYAML when source order matters.
func Import(doc map[string]any) (*Builder, error) {
	return importDocument(sortedDocObject(doc))
}

// decodeOrdered walks the decoder token stream into an ordered tree.
func decodeOrdered(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		obj := &docObject{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := kt.(string)
			val, err := decodeOrdered(dec)
			if err != nil {
				return nil, err
			}
			obj.entries = append(obj.entries, docEntry{key: key, val: val})
		}
		if _, err := dec.Token(); err != nil { // closing '}'
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			v, err := decodeOrdered(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil { // closing ']'
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %v", delim)
}

func sortedDocObject(m map[string]any) *docObject {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	obj := &docObject{}
	for _, k := range keys {
		obj.entries = append(obj.entries, docEntry{key: k, val: normalizeDocValue(m[k])})
	}
	return obj
}

func normalizeDocValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return sortedDocObject(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeDocValue(e)
		}
		return out
	default:
		return v
	}
}

func importDocument(obj *docObject) (*Builder, error) {
	imp := &importer{}
	n := imp.node(obj, nil, true)
	b := New()
	b.root = n
	b.cursor = n
	if id, ok := obj.get("$id"); ok {
		if s, ok := id.(string); ok {
			b.rootID = s
		}
	}
	if len(imp.iss) > 0 {
		return b, imp.iss
	}
	return b, nil
}

type importer struct {
	iss Issues
}

func (imp *importer) issue(code string, path []string, hint string) {
	imp.iss = AppendIssues(imp.iss, Issue{
		Path:    pointerOf(path...),
		Code:    code,
		Message: i18n.T(code, nil),
		Hint:    hint,
	})
}

var importTypes = map[string]TypeTag{
	"object": TypeObject, "array": TypeArray, "string": TypeString,
	"number": TypeNumber, "integer": TypeInteger, "boolean": TypeBoolean,
	"null": TypeNull,
}

// node walks one schema object. root toggles the document-only keywords
// ($schema, top-level $id).
func (imp *importer) node(obj *docObject, path []string, root bool) *schemaNode {
	n := &schemaNode{}
	for _, e := range obj.entries {
		p := append(append([]string(nil), path...), e.key)
		switch e.key {
		case "$schema":
			if !root {
				imp.issue(CodeUnsupportedKeyword, p, "$schema is only valid at the document root")
				continue
			}
			if s, _ := e.val.(string); s != SchemaVersion {
				imp.issue(CodeUnsupportedKeyword, p, "only draft-07 documents are supported")
			}
		case "$id":
			// root $id handled by importDocument; nested ids are structural
			// and recomputed at Build time
		case "$ref":
			if s, ok := e.val.(string); ok && s != "" {
				n.ref = s
			} else {
				imp.issue(CodeInvalidKeywordValue, p, "$ref must be a non-empty string")
			}
		case "type":
			s, _ := e.val.(string)
			tag, ok := importTypes[s]
			if !ok {
				imp.issue(CodeInvalidKeywordValue, p, "unknown type "+strconv.Quote(s))
				continue
			}
			n.typ = tag
		case "title":
			n.title, _ = e.val.(string)
		case "description":
			n.description, _ = e.val.(string)
		case "default":
			v := plainValue(e.val)
			n.defaultVal = &v
		case "examples":
			if arr, ok := e.val.([]any); ok {
				n.examples = plainSlice(arr)
			} else {
				imp.issue(CodeInvalidKeywordValue, p, "examples must be an array")
			}
		case "readOnly":
			n.readOnly, _ = e.val.(bool)
		case "writeOnly":
			n.writeOnly, _ = e.val.(bool)
		case "enum":
			if arr, ok := e.val.([]any); ok && len(arr) > 0 {
				n.enum = plainSlice(arr)
			} else {
				imp.issue(CodeInvalidKeywordValue, p, "enum must be a non-empty array")
			}
		case "const":
			v := plainValue(e.val)
			n.constVal = &v
		case "format":
			// foreign format names pass through on import; only the fluent
			// Format call enforces the closed draft-07 set
			if s, ok := e.val.(string); ok {
				n.format = Format(s)
			}
		case "pattern":
			n.pattern, _ = e.val.(string)
		case "contentEncoding":
			n.contentEncoding, _ = e.val.(string)
		case "contentMediaType":
			n.contentMediaType, _ = e.val.(string)
		case "minLength":
			n.minLength = imp.intValue(e.val, p)
		case "maxLength":
			n.maxLength = imp.intValue(e.val, p)
		case "minItems":
			n.minItems = imp.intValue(e.val, p)
		case "maxItems":
			n.maxItems = imp.intValue(e.val, p)
		case "minProperties":
			n.minProperties = imp.intValue(e.val, p)
		case "maxProperties":
			n.maxProperties = imp.intValue(e.val, p)
		case "multipleOf":
			n.multipleOf = imp.floatValue(e.val, p)
		case "minimum":
			n.minimum = imp.floatValue(e.val, p)
		case "maximum":
			n.maximum = imp.floatValue(e.val, p)
		case "exclusiveMinimum":
			n.exclusiveMinimum = imp.floatValue(e.val, p)
		case "exclusiveMaximum":
			n.exclusiveMaximum = imp.floatValue(e.val, p)
		case "uniqueItems":
			n.uniqueItems, _ = e.val.(bool)
		case "items":
			switch it := e.val.(type) {
			case *docObject:
				n.items = []*schemaNode{imp.node(it, p, false)}
				n.itemsTuple = false
			case []any:
				for i, el := range it {
					sub, ok := el.(*docObject)
					if !ok {
						imp.issue(CodeInvalidKeywordValue, append(p, strconv.Itoa(i)), "tuple items must be schemas")
						continue
					}
					n.items = append(n.items, imp.node(sub, append(p, strconv.Itoa(i)), false))
				}
				n.itemsTuple = true
			default:
				imp.issue(CodeInvalidKeywordValue, p, "items must be a schema or an array of schemas")
			}
		case "additionalItems":
			n.additionalItems = imp.boolOrSchema(e.val, p)
		case "additionalProperties":
			n.additionalProperties = imp.boolOrSchema(e.val, p)
		case "contains":
			n.contains = imp.schemaValue(e.val, p)
		case "propertyNames":
			n.propertyNames = imp.schemaValue(e.val, p)
		case "not":
			n.not = imp.schemaValue(e.val, p)
		case "if":
			n.ifCond = imp.schemaValue(e.val, p)
		case "then":
			n.thenSub = imp.schemaValue(e.val, p)
		case "else":
			n.elseSub = imp.schemaValue(e.val, p)
		case "allOf":
			n.allOf = imp.schemaSlice(e.val, p)
		case "anyOf":
			n.anyOf = imp.schemaSlice(e.val, p)
		case "oneOf":
			n.oneOf = imp.schemaSlice(e.val, p)
		case "patternProperties":
			if sub, ok := e.val.(*docObject); ok {
				for _, pe := range sub.entries {
					if so, ok := pe.val.(*docObject); ok {
						n.setPatternProp(pe.key, imp.node(so, append(p, pe.key), false))
					} else {
						imp.issue(CodeInvalidKeywordValue, append(p, pe.key), "patternProperties values must be schemas")
					}
				}
			} else {
				imp.issue(CodeInvalidKeywordValue, p, "patternProperties must be an object")
			}
		case "dependencies":
			imp.dependencies(n, e.val, p)
		case "properties":
			if sub, ok := e.val.(*docObject); ok {
				for _, pe := range sub.entries {
					if so, ok := pe.val.(*docObject); ok {
						n.setProp(pe.key, imp.node(so, append(p, pe.key), false))
					} else {
						imp.issue(CodeInvalidKeywordValue, append(p, pe.key), "property values must be schemas")
					}
				}
			} else {
				imp.issue(CodeInvalidKeywordValue, p, "properties must be an object")
			}
		case "required":
			if arr, ok := e.val.([]any); ok {
				for _, r := range arr {
					if s, ok := r.(string); ok {
						n.markRequired(s)
					} else {
						imp.issue(CodeInvalidKeywordValue, p, "required entries must be strings")
					}
				}
			} else {
				imp.issue(CodeInvalidKeywordValue, p, "required must be an array")
			}
		case "definitions":
			if sub, ok := e.val.(*docObject); ok {
				for _, de := range sub.entries {
					if so, ok := de.val.(*docObject); ok {
						n.defs = append(n.defs, definition{name: de.key, node: imp.node(so, append(p, de.key), false)})
					} else {
						imp.issue(CodeInvalidKeywordValue, append(p, de.key), "definitions values must be schemas")
					}
				}
			} else {
				imp.issue(CodeInvalidKeywordValue, p, "definitions must be an object")
			}
		default:
			imp.issue(CodeUnsupportedKeyword, p, "keyword "+strconv.Quote(e.key)+" is not part of draft-07")
		}
	}
	return n
}

func (imp *importer) schemaValue(v any, path []string) *schemaNode {
	obj, ok := v.(*docObject)
	if !ok {
		imp.issue(CodeInvalidKeywordValue, path, "value must be a schema")
		return nil
	}
	return imp.node(obj, path, false)
}

func (imp *importer) schemaSlice(v any, path []string) []*schemaNode {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		imp.issue(CodeInvalidKeywordValue, path, "value must be a non-empty array of schemas")
		return nil
	}
	out := make([]*schemaNode, 0, len(arr))
	for i, el := range arr {
		obj, ok := el.(*docObject)
		if !ok {
			imp.issue(CodeInvalidKeywordValue, append(path, strconv.Itoa(i)), "value must be a schema")
			continue
		}
		out = append(out, imp.node(obj, append(path, strconv.Itoa(i)), false))
	}
	return out
}

func (imp *importer) boolOrSchema(v any, path []string) any {
	switch t := v.(type) {
	case bool:
		return t
	case *docObject:
		return imp.node(t, path, false)
	default:
		imp.issue(CodeInvalidKeywordValue, path, "value must be a boolean or a schema")
		return nil
	}
}

func (imp *importer) dependencies(n *schemaNode, v any, path []string) {
	obj, ok := v.(*docObject)
	if !ok {
		imp.issue(CodeInvalidKeywordValue, path, "dependencies must be an object")
		return
	}
	for _, de := range obj.entries {
		switch dv := de.val.(type) {
		case []any:
			props := make([]string, 0, len(dv))
			for _, s := range dv {
				if str, ok := s.(string); ok {
					props = append(props, str)
				}
			}
			n.setDependency(dependency{name: de.key, required: props})
		case *docObject:
			n.setDependency(dependency{name: de.key, schema: imp.node(dv, append(path, de.key), false)})
		default:
			imp.issue(CodeInvalidKeywordValue, append(path, de.key), "dependency must be a property list or a schema")
		}
	}
}

func (imp *importer) intValue(v any, path []string) *int {
	switch t := v.(type) {
	case json.Number:
		if i, err := strconv.Atoi(t.String()); err == nil {
			return &i
		}
	case int:
		return &t
	case float64:
		if t == float64(int(t)) {
			i := int(t)
			return &i
		}
	}
	imp.issue(CodeInvalidKeywordValue, path, "value must be an integer")
	return nil
}

func (imp *importer) floatValue(v any, path []string) *float64 {
	switch t := v.(type) {
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return &f
		}
	case int:
		f := float64(t)
		return &f
	case float64:
		return &t
	}
	imp.issue(CodeInvalidKeywordValue, path, "value must be a number")
	return nil
}

// plainValue strips the ordered wrappers for verbatim keywords (default,
// const, enum, examples) whose values are not schemas.
func plainValue(v any) any {
	switch t := v.(type) {
	case *docObject:
		m := make(map[string]any, len(t.entries))
		for _, e := range t.entries {
			m[e.key] = plainValue(e.val)
		}
		return m
	case []any:
		return plainSlice(t)
	default:
		return v
	}
}

func plainSlice(arr []any) []any {
	out := make([]any, len(arr))
	for i, e := range arr {
		out[i] = plainValue(e)
	}
	return out
}

func (o *docObject) get(key string) (any, bool) {
	for _, e := range o.entries {
		if e.key == key {
			return e.val, true
		}
	}
	return nil, false
}
