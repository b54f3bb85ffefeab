package fluentschema

import (
	stdjson "encoding/json"
	"fmt"

	"github.com/reoring/fluentschema/i18n"
)

// Builder assembles a draft-07 schema document through chained calls. Every
// method mutates the builder in place and returns the receiver, so a chain
// observes all prior calls. A Builder must not be driven from multiple
// goroutines without external synchronization (single writer).
//
// Offending calls never panic and never poison the chain: the call records
// an Issue and leaves the builder in its last valid state. Err exposes the
// recorded Issues at any point; Build, ValueOf and ToJSON return them.
type Builder struct {
	root   *schemaNode
	rootID string

	// cursor is the node the next keyword call targets: the root itself, or
	// one of its properties (cursorName non-empty). Exactly one cursor is
	// active at a time.
	cursor     *schemaNode
	cursorName string

	iss Issues
}

// New returns a builder whose root node is still untyped. The first Prop
// call narrows it to an object.
func New() *Builder {
	n := &schemaNode{}
	return &Builder{root: n, cursor: n}
}

// Err returns the Issues recorded so far, or nil.
func (b *Builder) Err() error {
	if len(b.iss) == 0 {
		return nil
	}
	return b.iss
}

func (b *Builder) cursorPointer() string {
	if b.cursorName == "" {
		return "/"
	}
	return pointerOf("properties", b.cursorName)
}

func (b *Builder) report(code, hint string, params map[string]any) *Builder {
	b.iss = AppendIssues(b.iss, Issue{
		Path:    b.cursorPointer(),
		Code:    code,
		Message: i18n.T(code, nil),
		Hint:    hint,
		Params:  params,
	})
	return b
}

// absorb merges a sub-builder's issues into b and reports whether sub is
// usable as a child schema.
func (b *Builder) absorb(sub *Builder) bool {
	if sub == nil {
		b.report(CodeInvalidKeywordValue, "nil sub-schema", nil)
		return false
	}
	b.iss = AppendIssues(b.iss, sub.iss...)
	return true
}

// ID sets the document root $id, emitted verbatim. All other $id values are
// derived from structural position and never user-supplied.
func (b *Builder) ID(id string) *Builder {
	if id == "" {
		return b.report(CodeInvalidKeywordValue, "$id must be non-empty", nil)
	}
	b.rootID = id
	return b
}

// Prop declares a property on the root object and moves the cursor to it.
// Re-declaring an existing name replaces the previous node at its original
// position (last write wins). An optional sub-builder attaches a fully
// built subtree instead of opening a fresh node; the cursor still moves so
// Required and metadata calls apply to the attached property.
//
// Prop narrows an untyped root to an object; on a root already narrowed to
// another type it records an invalid-cursor issue.
func (b *Builder) Prop(name string, sub ...*Builder) *Builder {
	if name == "" {
		return b.report(CodeInvalidKeywordValue, "property name must be non-empty", nil)
	}
	if b.root.ref != "" {
		return b.report(CodeInvalidCursor, "cannot add properties to a $ref node", nil)
	}
	if b.root.typ != "" && b.root.typ != TypeObject {
		return b.report(CodeInvalidCursor, fmt.Sprintf("cannot add properties to a %s node", b.root.typ), nil)
	}
	b.root.typ = TypeObject

	var child *schemaNode
	if len(sub) > 0 {
		if !b.absorb(sub[0]) {
			return b
		}
		child = sub[0].root
	} else {
		child = &schemaNode{}
	}
	b.root.setProp(name, child)
	b.cursor = child
	b.cursorName = name
	return b
}

// Required marks the property at the cursor as required on its parent
// object. Calling it repeatedly is a no-op; the property appears in the
// emitted required array exactly once, in first-required-first order.
func (b *Builder) Required() *Builder {
	if b.cursorName == "" {
		return b.report(CodeInvalidCursor, "Required applies to a property, not the root", nil)
	}
	b.root.markRequired(b.cursorName)
	return b
}

// Definition registers sub's root node under name and assigns it a
// structural $id of "#definitions/<name>". The cursor does not move.
// A duplicate name records a duplicate-definition issue; the first
// registration wins.
func (b *Builder) Definition(name string, sub *Builder) *Builder {
	if name == "" {
		return b.report(CodeInvalidKeywordValue, "definition name must be non-empty", nil)
	}
	if !b.absorb(sub) {
		return b
	}
	if b.root.defIndex(name) >= 0 {
		b.iss = AppendIssues(b.iss, Issue{
			Path:    pointerOf("definitions", name),
			Code:    CodeDuplicateDefinition,
			Message: i18n.T(CodeDuplicateDefinition, nil),
		})
		return b
	}
	b.root.defs = append(b.root.defs, definition{name: name, node: sub.root})
	return b
}

// Ref turns the node at the cursor into a pure $ref leaf pointing at path.
// The path is stored opaquely and never checked against the definitions
// registered so far: forward and dangling references flow through to the
// external validator.
func (b *Builder) Ref(path string) *Builder {
	if path == "" {
		return b.report(CodeInvalidKeywordValue, "$ref path must be non-empty", nil)
	}
	b.cursor.ref = path
	return b
}

// ---- type narrowing ----

func (b *Builder) narrow(t TypeTag) *Builder {
	n := b.cursor
	if n.ref != "" {
		return b.report(CodeInvalidCursor, "a $ref node cannot be typed", nil)
	}
	if n.typ != "" && n.typ != t {
		return b.report(CodeTypeAlreadySet, fmt.Sprintf("node is %s, cannot become %s", n.typ, t),
			map[string]any{"current": string(n.typ), "requested": string(t)})
	}
	n.typ = t
	return b
}

// AsString narrows the node at the cursor to type string.
func (b *Builder) AsString() *Builder { return b.narrow(TypeString) }

// AsNumber narrows the node at the cursor to type number.
func (b *Builder) AsNumber() *Builder { return b.narrow(TypeNumber) }

// AsInteger narrows the node at the cursor to type integer.
func (b *Builder) AsInteger() *Builder { return b.narrow(TypeInteger) }

// AsBoolean narrows the node at the cursor to type boolean.
func (b *Builder) AsBoolean() *Builder { return b.narrow(TypeBoolean) }

// AsObject narrows the node at the cursor to type object.
func (b *Builder) AsObject() *Builder { return b.narrow(TypeObject) }

// AsArray narrows the node at the cursor to type array.
func (b *Builder) AsArray() *Builder { return b.narrow(TypeArray) }

// AsNull narrows the node at the cursor to type null.
func (b *Builder) AsNull() *Builder { return b.narrow(TypeNull) }

// ---- enum / const ----

// Enum sets the enumerated values for the node at the cursor. Values must
// be a non-empty sequence of JSON scalars; duplicates are preserved as
// given. Without a prior As* call the node stays untyped and the document
// carries the enum keyword alone.
func (b *Builder) Enum(values ...any) *Builder {
	if b.cursor.ref != "" {
		return b.report(CodeInvalidCursor, "a $ref node cannot carry enum", nil)
	}
	if len(values) == 0 {
		return b.report(CodeInvalidKeywordValue, "enum requires at least one value", nil)
	}
	for i, v := range values {
		if !isJSONScalar(v) {
			return b.report(CodeInvalidKeywordValue, fmt.Sprintf("enum value %d is not a JSON scalar", i),
				map[string]any{"index": i})
		}
	}
	b.cursor.enum = append([]any(nil), values...)
	return b
}

// Const sets the node at the cursor to a constant value, replacing any type
// or enum previously set.
func (b *Builder) Const(v any) *Builder {
	if b.cursor.ref != "" {
		return b.report(CodeInvalidCursor, "a $ref node cannot carry const", nil)
	}
	b.cursor.constVal = &v
	b.cursor.typ = ""
	b.cursor.enum = nil
	return b
}

// ---- metadata, valid on any non-ref node ----

func (b *Builder) metaNode() *schemaNode {
	if b.cursor.ref != "" {
		b.report(CodeInvalidCursor, "a $ref node cannot carry metadata", nil)
		return nil
	}
	return b.cursor
}

// Title sets the title annotation on the node at the cursor.
func (b *Builder) Title(text string) *Builder {
	if n := b.metaNode(); n != nil {
		n.title = text
	}
	return b
}

// Description sets the description annotation on the node at the cursor.
func (b *Builder) Description(text string) *Builder {
	if n := b.metaNode(); n != nil {
		n.description = text
	}
	return b
}

// Default sets the default value for the node at the cursor. Zero values
// (null, false, 0, "") are kept in the output.
func (b *Builder) Default(v any) *Builder {
	if n := b.metaNode(); n != nil {
		n.defaultVal = &v
	}
	return b
}

// Examples sets example values for the node at the cursor.
func (b *Builder) Examples(values ...any) *Builder {
	if len(values) == 0 {
		return b.report(CodeInvalidKeywordValue, "examples requires at least one value", nil)
	}
	if n := b.metaNode(); n != nil {
		n.examples = append([]any(nil), values...)
	}
	return b
}

// ReadOnly marks the node as readOnly.
func (b *Builder) ReadOnly() *Builder {
	if n := b.metaNode(); n != nil {
		n.readOnly = true
	}
	return b
}

// WriteOnly marks the node as writeOnly.
func (b *Builder) WriteOnly() *Builder {
	if n := b.metaNode(); n != nil {
		n.writeOnly = true
	}
	return b
}

// isJSONScalar reports whether v is representable as a JSON scalar.
func isJSONScalar(v any) bool {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		stdjson.Number:
		return true
	}
	return false
}
