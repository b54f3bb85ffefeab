package fluentschema

// SchemaVersion is the meta-schema URI stamped into every root document.
// Only draft-07 is supported.
const SchemaVersion = "http://json-schema.org/draft-07/schema#"

// TypeTag identifies the primitive type of a schema node. The zero value
// means the node has not been narrowed yet; narrowing happens through the
// As* methods on Builder.
type TypeTag string

const (
	TypeObject  TypeTag = "object"
	TypeArray   TypeTag = "array"
	TypeString  TypeTag = "string"
	TypeNumber  TypeTag = "number"
	TypeInteger TypeTag = "integer"
	TypeBoolean TypeTag = "boolean"
	TypeNull    TypeTag = "null"
)

// Format enumerates the semantic string formats defined by draft-07.
// Modeled as a closed enumeration rather than free-form strings so that a
// typo is caught at the Format call, not by the downstream validator.
type Format string

const (
	FormatDateTime            Format = "date-time"
	FormatTime                Format = "time"
	FormatDate                Format = "date"
	FormatEmail               Format = "email"
	FormatIDNEmail            Format = "idn-email"
	FormatHostname            Format = "hostname"
	FormatIDNHostname         Format = "idn-hostname"
	FormatIPv4                Format = "ipv4"
	FormatIPv6                Format = "ipv6"
	FormatURI                 Format = "uri"
	FormatURIReference        Format = "uri-reference"
	FormatIRI                 Format = "iri"
	FormatIRIReference        Format = "iri-reference"
	FormatURITemplate         Format = "uri-template"
	FormatJSONPointer         Format = "json-pointer"
	FormatRelativeJSONPointer Format = "relative-json-pointer"
	FormatRegex               Format = "regex"
)

var knownFormats = map[Format]struct{}{
	FormatDateTime:            {},
	FormatTime:                {},
	FormatDate:                {},
	FormatEmail:               {},
	FormatIDNEmail:            {},
	FormatHostname:            {},
	FormatIDNHostname:         {},
	FormatIPv4:                {},
	FormatIPv6:                {},
	FormatURI:                 {},
	FormatURIReference:        {},
	FormatIRI:                 {},
	FormatIRIReference:        {},
	FormatURITemplate:         {},
	FormatJSONPointer:         {},
	FormatRelativeJSONPointer: {},
	FormatRegex:               {},
}

func validFormat(f Format) bool {
	_, ok := knownFormats[f]
	return ok
}
