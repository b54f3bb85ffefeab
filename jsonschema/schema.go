package jsonschema

// Schema is the serialized form of a draft-07 schema document. Field order
// is the canonical key order of the emitted JSON: meta keywords first, then
// type/$id, per-type validation keywords, combinators, and finally
// required/properties. Marshaling the same Schema twice yields identical
// bytes.
type Schema struct {
	// Core
	Version     string `json:"$schema,omitempty"`
	Ref         string `json:"$ref,omitempty"`
	Definitions *Map   `json:"definitions,omitempty"`

	// Metadata
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Default     *any   `json:"default,omitempty"`
	Examples    []any  `json:"examples,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty"`
	WriteOnly   bool   `json:"writeOnly,omitempty"`

	Type string `json:"type,omitempty"`
	ID   string `json:"$id,omitempty"`

	Enum  []any `json:"enum,omitempty"`
	Const *any  `json:"const,omitempty"`

	// String
	Format           string `json:"format,omitempty"`
	MinLength        *int   `json:"minLength,omitempty"`
	MaxLength        *int   `json:"maxLength,omitempty"`
	Pattern          string `json:"pattern,omitempty"`
	ContentEncoding  string `json:"contentEncoding,omitempty"`
	ContentMediaType string `json:"contentMediaType,omitempty"`

	// Numeric
	MultipleOf       *float64 `json:"multipleOf,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`

	// Array
	Items           *Items  `json:"items,omitempty"`
	AdditionalItems any     `json:"additionalItems,omitempty"`
	Contains        *Schema `json:"contains,omitempty"`
	MinItems        *int    `json:"minItems,omitempty"`
	MaxItems        *int    `json:"maxItems,omitempty"`
	UniqueItems     bool    `json:"uniqueItems,omitempty"`

	// Object
	MinProperties        *int          `json:"minProperties,omitempty"`
	MaxProperties        *int          `json:"maxProperties,omitempty"`
	PropertyNames        *Schema       `json:"propertyNames,omitempty"`
	PatternProperties    *Map          `json:"patternProperties,omitempty"`
	Dependencies         *Dependencies `json:"dependencies,omitempty"`
	AdditionalProperties any           `json:"additionalProperties,omitempty"`

	// Combinators
	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`
	If    *Schema   `json:"if,omitempty"`
	Then  *Schema   `json:"then,omitempty"`
	Else  *Schema   `json:"else,omitempty"`

	Required   []string `json:"required,omitempty"`
	Properties *Map     `json:"properties,omitempty"`
}

// Ptr wraps a value for the pointer-typed keywords (Default, Const) whose
// zero values (null, false, 0) are meaningful and must survive omitempty.
func Ptr(v any) *any { return &v }

// Int returns a pointer for the integer-valued keywords.
func Int(n int) *int { return &n }

// Float returns a pointer for the number-valued keywords.
func Float(f float64) *float64 { return &f }
