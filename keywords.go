package fluentschema

import "fmt"

// Keyword setters validate the argument's basic shape and the cursor's type
// compatibility, then store the value on the current node. Cross-keyword
// consistency (minimum > maximum, minLength > maxLength, ...) is not
// checked here; such documents pass through for the external validator to
// reject.

// keywordNode returns the cursor node when it can accept a keyword of the
// given type family ("" matches any). A mismatch records an invalid-cursor
// issue and returns nil.
func (b *Builder) keywordNode(want TypeTag, keyword string) *schemaNode {
	n := b.cursor
	if n.ref != "" {
		b.report(CodeInvalidCursor, fmt.Sprintf("%s cannot apply to a $ref node", keyword), nil)
		return nil
	}
	if want == "" || n.typ == "" || n.typ == want {
		return n
	}
	// number keywords also apply to integer nodes
	if want == TypeNumber && n.typ == TypeInteger {
		return n
	}
	b.report(CodeInvalidCursor, fmt.Sprintf("%s cannot apply to a %s node", keyword, n.typ),
		map[string]any{"keyword": keyword, "type": string(n.typ)})
	return nil
}

func (b *Builder) nonNegative(keyword string, v int) (int, bool) {
	if v < 0 {
		b.report(CodeInvalidKeywordValue, fmt.Sprintf("%s must be a non-negative integer", keyword),
			map[string]any{"keyword": keyword, "got": v})
		return 0, false
	}
	return v, true
}

// ---- string keywords ----

// MinLength sets the minimum string length; n must be non-negative.
func (b *Builder) MinLength(n int) *Builder {
	if v, ok := b.nonNegative("minLength", n); ok {
		if nd := b.keywordNode(TypeString, "minLength"); nd != nil {
			nd.minLength = &v
		}
	}
	return b
}

// MaxLength sets the maximum string length; n must be non-negative.
func (b *Builder) MaxLength(n int) *Builder {
	if v, ok := b.nonNegative("maxLength", n); ok {
		if nd := b.keywordNode(TypeString, "maxLength"); nd != nil {
			nd.maxLength = &v
		}
	}
	return b
}

// Pattern sets the ECMA-262 regular expression the string must match. The
// pattern is stored verbatim; whether it compiles is the validator's
// concern.
func (b *Builder) Pattern(pattern string) *Builder {
	if pattern == "" {
		return b.report(CodeInvalidKeywordValue, "pattern must be non-empty", nil)
	}
	if nd := b.keywordNode(TypeString, "pattern"); nd != nil {
		nd.pattern = pattern
	}
	return b
}

// Format sets the semantic format. Only the draft-07 formats enumerated by
// the Format constants are accepted.
func (b *Builder) Format(f Format) *Builder {
	if !validFormat(f) {
		return b.report(CodeInvalidKeywordValue, fmt.Sprintf("unknown format %q", string(f)),
			map[string]any{"format": string(f)})
	}
	if nd := b.keywordNode(TypeString, "format"); nd != nil {
		nd.format = f
	}
	return b
}

// ContentEncoding sets the contentEncoding keyword (e.g. "base64").
func (b *Builder) ContentEncoding(enc string) *Builder {
	if enc == "" {
		return b.report(CodeInvalidKeywordValue, "contentEncoding must be non-empty", nil)
	}
	if nd := b.keywordNode(TypeString, "contentEncoding"); nd != nil {
		nd.contentEncoding = enc
	}
	return b
}

// ContentMediaType sets the contentMediaType keyword (e.g. "application/json").
func (b *Builder) ContentMediaType(mt string) *Builder {
	if mt == "" {
		return b.report(CodeInvalidKeywordValue, "contentMediaType must be non-empty", nil)
	}
	if nd := b.keywordNode(TypeString, "contentMediaType"); nd != nil {
		nd.contentMediaType = mt
	}
	return b
}

// ---- numeric keywords ----

// Minimum sets the inclusive lower bound.
func (b *Builder) Minimum(v float64) *Builder {
	if nd := b.keywordNode(TypeNumber, "minimum"); nd != nil {
		nd.minimum = &v
	}
	return b
}

// Maximum sets the inclusive upper bound.
func (b *Builder) Maximum(v float64) *Builder {
	if nd := b.keywordNode(TypeNumber, "maximum"); nd != nil {
		nd.maximum = &v
	}
	return b
}

// ExclusiveMinimum sets the exclusive lower bound.
func (b *Builder) ExclusiveMinimum(v float64) *Builder {
	if nd := b.keywordNode(TypeNumber, "exclusiveMinimum"); nd != nil {
		nd.exclusiveMinimum = &v
	}
	return b
}

// ExclusiveMaximum sets the exclusive upper bound.
func (b *Builder) ExclusiveMaximum(v float64) *Builder {
	if nd := b.keywordNode(TypeNumber, "exclusiveMaximum"); nd != nil {
		nd.exclusiveMaximum = &v
	}
	return b
}

// MultipleOf requires the number to be a multiple of v; v must be positive.
func (b *Builder) MultipleOf(v float64) *Builder {
	if v <= 0 {
		return b.report(CodeInvalidKeywordValue, "multipleOf must be positive",
			map[string]any{"got": v})
	}
	if nd := b.keywordNode(TypeNumber, "multipleOf"); nd != nil {
		nd.multipleOf = &v
	}
	return b
}

// ---- array keywords ----

// Items sets the single-schema items form: every element validates against
// sub.
func (b *Builder) Items(sub *Builder) *Builder {
	if !b.absorb(sub) {
		return b
	}
	if nd := b.keywordNode(TypeArray, "items"); nd != nil {
		nd.items = []*schemaNode{sub.root}
		nd.itemsTuple = false
	}
	return b
}

// TupleItems sets the tuple items form: element i validates against subs[i].
func (b *Builder) TupleItems(subs ...*Builder) *Builder {
	if len(subs) == 0 {
		return b.report(CodeInvalidKeywordValue, "tuple items require at least one schema", nil)
	}
	nodes := make([]*schemaNode, 0, len(subs))
	for _, s := range subs {
		if !b.absorb(s) {
			return b
		}
		nodes = append(nodes, s.root)
	}
	if nd := b.keywordNode(TypeArray, "items"); nd != nil {
		nd.items = nodes
		nd.itemsTuple = true
	}
	return b
}

// AdditionalItems allows or forbids elements beyond the tuple items.
func (b *Builder) AdditionalItems(allowed bool) *Builder {
	if nd := b.keywordNode(TypeArray, "additionalItems"); nd != nil {
		nd.additionalItems = allowed
	}
	return b
}

// AdditionalItemsSchema validates elements beyond the tuple items against
// sub.
func (b *Builder) AdditionalItemsSchema(sub *Builder) *Builder {
	if !b.absorb(sub) {
		return b
	}
	if nd := b.keywordNode(TypeArray, "additionalItems"); nd != nil {
		nd.additionalItems = sub.root
	}
	return b
}

// Contains requires at least one element to validate against sub.
func (b *Builder) Contains(sub *Builder) *Builder {
	if !b.absorb(sub) {
		return b
	}
	if nd := b.keywordNode(TypeArray, "contains"); nd != nil {
		nd.contains = sub.root
	}
	return b
}

// MinItems sets the minimum element count; n must be non-negative.
func (b *Builder) MinItems(n int) *Builder {
	if v, ok := b.nonNegative("minItems", n); ok {
		if nd := b.keywordNode(TypeArray, "minItems"); nd != nil {
			nd.minItems = &v
		}
	}
	return b
}

// MaxItems sets the maximum element count; n must be non-negative.
func (b *Builder) MaxItems(n int) *Builder {
	if v, ok := b.nonNegative("maxItems", n); ok {
		if nd := b.keywordNode(TypeArray, "maxItems"); nd != nil {
			nd.maxItems = &v
		}
	}
	return b
}

// UniqueItems requires elements to be unique when v is true.
func (b *Builder) UniqueItems(v bool) *Builder {
	if nd := b.keywordNode(TypeArray, "uniqueItems"); nd != nil {
		nd.uniqueItems = v
	}
	return b
}

// ---- object keywords ----

// MinProperties sets the minimum property count; n must be non-negative.
func (b *Builder) MinProperties(n int) *Builder {
	if v, ok := b.nonNegative("minProperties", n); ok {
		if nd := b.keywordNode(TypeObject, "minProperties"); nd != nil {
			nd.minProperties = &v
		}
	}
	return b
}

// MaxProperties sets the maximum property count; n must be non-negative.
func (b *Builder) MaxProperties(n int) *Builder {
	if v, ok := b.nonNegative("maxProperties", n); ok {
		if nd := b.keywordNode(TypeObject, "maxProperties"); nd != nil {
			nd.maxProperties = &v
		}
	}
	return b
}

// PatternProperties maps a property-name pattern to sub. Repeated calls
// accumulate entries in call order; re-using a pattern replaces its schema
// in place.
func (b *Builder) PatternProperties(pattern string, sub *Builder) *Builder {
	if pattern == "" {
		return b.report(CodeInvalidKeywordValue, "patternProperties pattern must be non-empty", nil)
	}
	if !b.absorb(sub) {
		return b
	}
	if nd := b.keywordNode(TypeObject, "patternProperties"); nd != nil {
		nd.setPatternProp(pattern, sub.root)
	}
	return b
}

// AdditionalProperties allows or forbids properties beyond those declared.
func (b *Builder) AdditionalProperties(allowed bool) *Builder {
	if nd := b.keywordNode(TypeObject, "additionalProperties"); nd != nil {
		nd.additionalProperties = allowed
	}
	return b
}

// AdditionalPropertiesSchema validates undeclared properties against sub.
func (b *Builder) AdditionalPropertiesSchema(sub *Builder) *Builder {
	if !b.absorb(sub) {
		return b
	}
	if nd := b.keywordNode(TypeObject, "additionalProperties"); nd != nil {
		nd.additionalProperties = sub.root
	}
	return b
}

// DependsOn records a property dependency: when name is present, props must
// be present as well.
func (b *Builder) DependsOn(name string, props ...string) *Builder {
	if name == "" || len(props) == 0 {
		return b.report(CodeInvalidKeywordValue, "dependency requires a name and at least one property", nil)
	}
	if nd := b.keywordNode(TypeObject, "dependencies"); nd != nil {
		nd.setDependency(dependency{name: name, required: append([]string(nil), props...)})
	}
	return b
}

// DependentSchema records a schema dependency: when name is present, the
// instance must also validate against sub.
func (b *Builder) DependentSchema(name string, sub *Builder) *Builder {
	if name == "" {
		return b.report(CodeInvalidKeywordValue, "dependency name must be non-empty", nil)
	}
	if !b.absorb(sub) {
		return b
	}
	if nd := b.keywordNode(TypeObject, "dependencies"); nd != nil {
		nd.setDependency(dependency{name: name, schema: sub.root})
	}
	return b
}

// PropertyNames requires every property name to validate against sub.
func (b *Builder) PropertyNames(sub *Builder) *Builder {
	if !b.absorb(sub) {
		return b
	}
	if nd := b.keywordNode(TypeObject, "propertyNames"); nd != nil {
		nd.propertyNames = sub.root
	}
	return b
}
