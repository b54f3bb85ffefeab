package fluentschema

import (
	json "github.com/goccy/go-json"

	"github.com/reoring/fluentschema/i18n"
	js "github.com/reoring/fluentschema/jsonschema"
)

// Build serializes the accumulated state into the canonical draft-07
// document. It is a pure projection: the builder is left untouched and
// remains chainable, and repeated calls yield byte-identical output.
// Build fails only with the Issues recorded by earlier fluent calls.
func (b *Builder) Build() (*js.Schema, error) {
	if len(b.iss) > 0 {
		return nil, b.iss
	}
	out := compileNode(b.root, nil, true)
	out.Version = SchemaVersion
	out.ID = b.rootID
	return out, nil
}

// MustBuild is Build, panicking on recorded Issues.
func (b *Builder) MustBuild() *js.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// ToJSON returns the canonical byte encoding of the document.
func (b *Builder) ToJSON() ([]byte, error) {
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// ValueOf returns the document as a plain JSON-compatible map, decoded from
// the canonical encoding. Key order within the returned map is Go map
// order; use ToJSON when byte-level determinism matters.
func (b *Builder) ValueOf() (map[string]any, error) {
	raw, err := b.ToJSON()
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: err.Error()}}
	}
	return doc, nil
}

// compileNode walks a schemaNode into its serialized form. chain is the
// property/definition ancestry used for $id stamping; stamp turns stamping
// off for subtrees reached through non-structural edges (items, contains,
// combinators, additional/pattern properties), whose nodes carry no $id.
func compileNode(n *schemaNode, chain []pathSegment, stamp bool) *js.Schema {
	if n.ref != "" {
		// pure ref leaf: no $id, no other keywords
		return &js.Schema{Ref: n.ref}
	}

	s := &js.Schema{
		Title:            n.title,
		Description:      n.description,
		Default:          n.defaultVal,
		Examples:         n.examples,
		ReadOnly:         n.readOnly,
		WriteOnly:        n.writeOnly,
		Type:             string(n.typ),
		Enum:             n.enum,
		Const:            n.constVal,
		Format:           string(n.format),
		MinLength:        n.minLength,
		MaxLength:        n.maxLength,
		Pattern:          n.pattern,
		ContentEncoding:  n.contentEncoding,
		ContentMediaType: n.contentMediaType,
		MultipleOf:       n.multipleOf,
		Minimum:          n.minimum,
		Maximum:          n.maximum,
		ExclusiveMinimum: n.exclusiveMinimum,
		ExclusiveMaximum: n.exclusiveMaximum,
		MinItems:         n.minItems,
		MaxItems:         n.maxItems,
		UniqueItems:      n.uniqueItems,
		MinProperties:    n.minProperties,
		MaxProperties:    n.maxProperties,
	}
	if stamp {
		s.ID = fragmentID(chain)
	}

	if len(n.defs) > 0 {
		defs := js.NewMap()
		for _, d := range n.defs {
			defs.Set(d.name, compileNode(d.node, appendSegment(chain, segDefinition, d.name), stamp))
		}
		s.Definitions = defs
	}

	if len(n.items) > 0 {
		if n.itemsTuple {
			tuple := make([]*js.Schema, 0, len(n.items))
			for _, it := range n.items {
				tuple = append(tuple, compileNode(it, nil, false))
			}
			s.Items = js.TupleItems(tuple...)
		} else {
			s.Items = js.SingleItems(compileNode(n.items[0], nil, false))
		}
	}
	switch ai := n.additionalItems.(type) {
	case bool:
		s.AdditionalItems = ai
	case *schemaNode:
		s.AdditionalItems = compileNode(ai, nil, false)
	}
	if n.contains != nil {
		s.Contains = compileNode(n.contains, nil, false)
	}

	if n.propertyNames != nil {
		s.PropertyNames = compileNode(n.propertyNames, nil, false)
	}
	if len(n.patternProps) > 0 {
		pp := js.NewMap()
		for _, p := range n.patternProps {
			pp.Set(p.pattern, compileNode(p.node, nil, false))
		}
		s.PatternProperties = pp
	}
	if len(n.dependencies) > 0 {
		deps := js.NewDependencies()
		for _, d := range n.dependencies {
			if d.schema != nil {
				deps.SetSchema(d.name, compileNode(d.schema, nil, false))
			} else {
				deps.SetRequired(d.name, d.required)
			}
		}
		s.Dependencies = deps
	}
	switch ap := n.additionalProperties.(type) {
	case bool:
		s.AdditionalProperties = ap
	case *schemaNode:
		s.AdditionalProperties = compileNode(ap, nil, false)
	}

	for _, c := range n.allOf {
		s.AllOf = append(s.AllOf, compileNode(c, nil, false))
	}
	for _, c := range n.anyOf {
		s.AnyOf = append(s.AnyOf, compileNode(c, nil, false))
	}
	for _, c := range n.oneOf {
		s.OneOf = append(s.OneOf, compileNode(c, nil, false))
	}
	if n.not != nil {
		s.Not = compileNode(n.not, nil, false)
	}
	if n.ifCond != nil {
		s.If = compileNode(n.ifCond, nil, false)
	}
	if n.thenSub != nil {
		s.Then = compileNode(n.thenSub, nil, false)
	}
	if n.elseSub != nil {
		s.Else = compileNode(n.elseSub, nil, false)
	}

	if len(n.required) > 0 {
		s.Required = append([]string(nil), n.required...)
	}
	if len(n.props) > 0 {
		props := js.NewMap()
		for _, p := range n.props {
			props.Set(p.name, compileNode(p.node, appendSegment(chain, segProperty, p.name), stamp))
		}
		s.Properties = props
	}
	return s
}

// appendSegment copies the chain before extending it so sibling walks never
// alias the same backing array.
func appendSegment(chain []pathSegment, kind segmentKind, name string) []pathSegment {
	next := make([]pathSegment, len(chain), len(chain)+1)
	copy(next, chain)
	return append(next, pathSegment{kind: kind, name: name})
}
