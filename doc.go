package fluentschema

// Package fluentschema provides:
//
// - A fluent, chainable builder for JSON Schema draft-07 documents (Prop/AsString/Required/...)
// - Deterministic serialization with canonical key order and structural $id stamping
// - A stable error model via Issues (JSON Pointer, code, message) recorded at the offending call
// - Import of existing draft-07 documents from JSON or YAML back into a builder
//
// Design policy:
// - Keep the whole public builder API in the root package; put the output
//   document model under jsonschema/ and the CLI under cmd/fluentschema.
// - The builder assembles structure only. Instance validation, dangling
//   $ref detection and cross-keyword consistency (minimum > maximum, ...)
//   are left to an external draft-07 validator consuming the output.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := fluentschema.New().
//		Prop("email").AsString().Format(fluentschema.FormatEmail).Required().
//		Build()
//
//	raw, err := fluentschema.New().
//		Prop("email").AsString().
//		ToJSON()
