package fluentschema

// Combinator entry points. Each child is an independent builder, possibly
// partially built; its subtree is attached as-is and serialized in the
// order given. Combinator keywords may coexist with a type on the same
// node, as draft-07 allows.

func (b *Builder) combinatorNode(keyword string) *schemaNode {
	if b.cursor.ref != "" {
		b.report(CodeInvalidCursor, keyword+" cannot apply to a $ref node", nil)
		return nil
	}
	return b.cursor
}

func (b *Builder) childNodes(keyword string, subs []*Builder) ([]*schemaNode, bool) {
	if len(subs) == 0 {
		b.report(CodeInvalidKeywordValue, keyword+" requires at least one schema", nil)
		return nil, false
	}
	nodes := make([]*schemaNode, 0, len(subs))
	for _, s := range subs {
		if !b.absorb(s) {
			return nil, false
		}
		nodes = append(nodes, s.root)
	}
	return nodes, true
}

// AllOf requires the instance to validate against every sub-schema.
func (b *Builder) AllOf(subs ...*Builder) *Builder {
	if nodes, ok := b.childNodes("allOf", subs); ok {
		if nd := b.combinatorNode("allOf"); nd != nil {
			nd.allOf = nodes
		}
	}
	return b
}

// AnyOf requires the instance to validate against at least one sub-schema.
func (b *Builder) AnyOf(subs ...*Builder) *Builder {
	if nodes, ok := b.childNodes("anyOf", subs); ok {
		if nd := b.combinatorNode("anyOf"); nd != nil {
			nd.anyOf = nodes
		}
	}
	return b
}

// OneOf requires the instance to validate against exactly one sub-schema.
func (b *Builder) OneOf(subs ...*Builder) *Builder {
	if nodes, ok := b.childNodes("oneOf", subs); ok {
		if nd := b.combinatorNode("oneOf"); nd != nil {
			nd.oneOf = nodes
		}
	}
	return b
}

// Not requires the instance to fail validation against sub.
func (b *Builder) Not(sub *Builder) *Builder {
	if !b.absorb(sub) {
		return b
	}
	if nd := b.combinatorNode("not"); nd != nil {
		nd.not = sub.root
	}
	return b
}

// IfThen applies then when the instance validates against cond.
func (b *Builder) IfThen(cond, then *Builder) *Builder {
	if !b.absorb(cond) || !b.absorb(then) {
		return b
	}
	if nd := b.combinatorNode("if"); nd != nil {
		nd.ifCond = cond.root
		nd.thenSub = then.root
	}
	return b
}

// IfThenElse applies then when the instance validates against cond, els
// otherwise.
func (b *Builder) IfThenElse(cond, then, els *Builder) *Builder {
	if !b.absorb(cond) || !b.absorb(then) || !b.absorb(els) {
		return b
	}
	if nd := b.combinatorNode("if"); nd != nil {
		nd.ifCond = cond.root
		nd.thenSub = then.root
		nd.elseSub = els.root
	}
	return b
}
