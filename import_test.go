package fluentschema_test

import (
	"bytes"
	"reflect"
	"testing"

	fs "github.com/reoring/fluentschema"
)

func TestFromJSON_RoundTripsCanonicalBytes(t *testing.T) {
	canonical, err := fs.New().
		Definition("address", fs.New().Prop("city").AsString().Required()).
		Prop("name").AsString().MinLength(1).Required().
		Prop("home").Ref("#definitions/address").
		ToJSON()
	if err != nil {
		t.Fatalf("ToJSON err: %v", err)
	}

	imported, err := fs.FromJSON(canonical)
	if err != nil {
		t.Fatalf("FromJSON err: %v", err)
	}
	again, err := imported.ToJSON()
	if err != nil {
		t.Fatalf("re-serialize err: %v", err)
	}
	if !bytes.Equal(canonical, again) {
		t.Fatalf("round trip changed bytes\n in=%s\nout=%s", canonical, again)
	}
}

func TestFromJSON_PreservesMemberOrder(t *testing.T) {
	in := []byte(`{"type":"object","properties":{"z":{"type":"string"},"a":{"type":"number"}}}`)
	b, err := fs.FromJSON(in)
	if err != nil {
		t.Fatalf("FromJSON err: %v", err)
	}
	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build err: %v", err)
	}
	if got := doc.Properties.Keys(); !reflect.DeepEqual(got, []string{"z", "a"}) {
		t.Fatalf("property order: %v", got)
	}
}

func TestFromJSON_ImportedBuilderStaysChainable(t *testing.T) {
	b, err := fs.FromJSON([]byte(`{"type":"object","properties":{"a":{"type":"string"}}}`))
	if err != nil {
		t.Fatalf("FromJSON err: %v", err)
	}
	doc, err := b.Prop("b").AsBoolean().Required().Build()
	if err != nil {
		t.Fatalf("Build err: %v", err)
	}
	if got := doc.Properties.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("properties: %v", got)
	}
	if !reflect.DeepEqual(doc.Required, []string{"b"}) {
		t.Fatalf("required: %v", doc.Required)
	}
}

func TestFromJSON_UnknownKeyword(t *testing.T) {
	_, err := fs.FromJSON([]byte(`{"type":"object","x-vendor":true}`))
	iss, ok := fs.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Code != fs.CodeUnsupportedKeyword || iss[0].Path != "/x-vendor" {
		t.Fatalf("issue: %+v", iss[0])
	}
}

func TestFromJSON_WrongDraft(t *testing.T) {
	_, err := fs.FromJSON([]byte(`{"$schema":"https://json-schema.org/draft/2020-12/schema"}`))
	iss, ok := fs.AsIssues(err)
	if !ok || iss[0].Code != fs.CodeUnsupportedKeyword {
		t.Fatalf("expected unsupported_keyword, got %v", err)
	}
}

func TestFromJSON_MalformedInput(t *testing.T) {
	for _, in := range []string{`{`, `[]`, `"scalar"`} {
		_, err := fs.FromJSON([]byte(in))
		if iss, ok := fs.AsIssues(err); !ok || iss[0].Code != fs.CodeParseError {
			t.Errorf("input %q: expected parse_error, got %v", in, err)
		}
	}
}

func TestFromYAML_PreservesMappingOrder(t *testing.T) {
	in := []byte(`
type: object
required: [version]
properties:
  version:
    type: string
    pattern: "^v[0-9]+$"
  replicas:
    type: integer
    minimum: 1
`)
	b, err := fs.FromYAML(in)
	if err != nil {
		t.Fatalf("FromYAML err: %v", err)
	}
	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build err: %v", err)
	}
	if got := doc.Properties.Keys(); !reflect.DeepEqual(got, []string{"version", "replicas"}) {
		t.Fatalf("property order: %v", got)
	}
	replicas, _ := doc.Properties.Get("replicas")
	if replicas.Type != "integer" || replicas.Minimum == nil || *replicas.Minimum != 1 {
		t.Fatalf("replicas: %+v", replicas)
	}
	if !reflect.DeepEqual(doc.Required, []string{"version"}) {
		t.Fatalf("required: %v", doc.Required)
	}
}

func TestFromYAML_EquivalentToFromJSON(t *testing.T) {
	yamlDoc := []byte("type: object\nproperties:\n  id:\n    type: string\n    format: uuid\n")
	jsonDoc := []byte(`{"type":"object","properties":{"id":{"type":"string","format":"uuid"}}}`)

	fromYAML, err := fs.FromYAML(yamlDoc)
	if err != nil {
		t.Fatalf("FromYAML err: %v", err)
	}
	fromJSON, err := fs.FromJSON(jsonDoc)
	if err != nil {
		t.Fatalf("FromJSON err: %v", err)
	}
	a, err := fromYAML.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON err: %v", err)
	}
	b, err := fromJSON.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON err: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("YAML and JSON imports disagree\nyaml=%s\njson=%s", a, b)
	}
}

func TestImport_MapIsDeterministic(t *testing.T) {
	doc := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"b": map[string]any{"type": "string"},
			"a": map[string]any{"type": "number"},
		},
	}
	first, err := fs.Import(doc)
	if err != nil {
		t.Fatalf("Import err: %v", err)
	}
	second, err := fs.Import(doc)
	if err != nil {
		t.Fatalf("Import err: %v", err)
	}
	raw1, _ := first.ToJSON()
	raw2, _ := second.ToJSON()
	if !bytes.Equal(raw1, raw2) {
		t.Fatalf("map import not deterministic\n a=%s\n b=%s", raw1, raw2)
	}
	b, err := first.Build()
	if err != nil {
		t.Fatalf("Build err: %v", err)
	}
	// sorted key order, since map order is unspecified
	if got := b.Properties.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("property order: %v", got)
	}
}
