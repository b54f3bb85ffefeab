package fluentschema

// schemaNode is one fragment of the schema tree: a typed node with its
// validation keywords, an enum/const leaf, a pure $ref leaf, or a
// combinator holder. Fields are only ever written through Builder, which
// enforces the cursor and shape rules; serialization reads them without
// further checks.
type schemaNode struct {
	typ TypeTag // zero until narrowed by As*

	// ref marks a pure $ref leaf. A ref node carries no other keywords and
	// is emitted as {"$ref": ...} with no $id.
	ref string

	// metadata, valid on any non-ref node
	title       string
	description string
	defaultVal  *any
	examples    []any
	readOnly    bool
	writeOnly   bool

	enum     []any
	constVal *any

	// string
	minLength        *int
	maxLength        *int
	pattern          string
	format           Format
	contentEncoding  string
	contentMediaType string

	// numeric
	multipleOf       *float64
	minimum          *float64
	maximum          *float64
	exclusiveMinimum *float64
	exclusiveMaximum *float64

	// array
	items           []*schemaNode
	itemsTuple      bool // single-schema vs positional tuple form
	additionalItems any  // bool or *schemaNode
	contains        *schemaNode
	minItems        *int
	maxItems        *int
	uniqueItems     bool

	// object
	props                []property // insertion-ordered, names unique
	required             []string   // first-required-first, membership idempotent
	minProperties        *int
	maxProperties        *int
	propertyNames        *schemaNode
	patternProps         []patternProperty
	dependencies         []dependency
	additionalProperties any // bool or *schemaNode

	// combinators
	allOf   []*schemaNode
	anyOf   []*schemaNode
	oneOf   []*schemaNode
	not     *schemaNode
	ifCond  *schemaNode
	thenSub *schemaNode
	elseSub *schemaNode

	// named definitions owned by this node. Populated on the document root
	// by Definition; a subtree attached via Prop keeps any definitions it
	// was built with and emits them at its own level.
	defs []definition
}

type property struct {
	name string
	node *schemaNode
}

type patternProperty struct {
	pattern string
	node    *schemaNode
}

// dependency is either a property dependency (required non-nil) or a schema
// dependency (schema non-nil), never both.
type dependency struct {
	name     string
	required []string
	schema   *schemaNode
}

type definition struct {
	name string
	node *schemaNode
}

func (n *schemaNode) propIndex(name string) int {
	for i, p := range n.props {
		if p.name == name {
			return i
		}
	}
	return -1
}

// setProp appends the property or, when the name exists, replaces the node
// in place so the original position is kept.
func (n *schemaNode) setProp(name string, child *schemaNode) {
	if i := n.propIndex(name); i >= 0 {
		n.props[i].node = child
		return
	}
	n.props = append(n.props, property{name: name, node: child})
}

// markRequired records name once, preserving first-required-first order.
func (n *schemaNode) markRequired(name string) {
	for _, r := range n.required {
		if r == name {
			return
		}
	}
	n.required = append(n.required, name)
}

func (n *schemaNode) defIndex(name string) int {
	for i, d := range n.defs {
		if d.name == name {
			return i
		}
	}
	return -1
}

func (n *schemaNode) setPatternProp(pattern string, child *schemaNode) {
	for i, pp := range n.patternProps {
		if pp.pattern == pattern {
			n.patternProps[i].node = child
			return
		}
	}
	n.patternProps = append(n.patternProps, patternProperty{pattern: pattern, node: child})
}

func (n *schemaNode) setDependency(d dependency) {
	for i, old := range n.dependencies {
		if old.name == d.name {
			n.dependencies[i] = d
			return
		}
	}
	n.dependencies = append(n.dependencies, d)
}
