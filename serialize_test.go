package fluentschema_test

import (
	"bytes"
	"testing"

	fs "github.com/reoring/fluentschema"
)

func TestToJSON_CanonicalBytes(t *testing.T) {
	raw, err := fs.New().
		Prop("email").AsString().Format(fs.FormatEmail).Required().
		ToJSON()
	if err != nil {
		t.Fatalf("ToJSON err: %v", err)
	}
	want := `{"$schema":"http://json-schema.org/draft-07/schema#","type":"object","required":["email"],"properties":{"email":{"type":"string","$id":"#properties/email","format":"email"}}}`
	if string(raw) != want {
		t.Fatalf("canonical bytes mismatch\n got=%s\nwant=%s", raw, want)
	}
}

func TestToJSON_DefinitionsBeforeType(t *testing.T) {
	raw, err := fs.New().
		Definition("address", fs.New().Prop("city").Required()).
		Prop("address").Ref("#definitions/address").
		ToJSON()
	if err != nil {
		t.Fatalf("ToJSON err: %v", err)
	}
	want := `{"$schema":"http://json-schema.org/draft-07/schema#",` +
		`"definitions":{"address":{"type":"object","$id":"#definitions/address",` +
		`"required":["city"],"properties":{"city":{"$id":"#definitions/address/properties/city"}}}},` +
		`"type":"object","properties":{"address":{"$ref":"#definitions/address"}}}`
	if string(raw) != want {
		t.Fatalf("canonical bytes mismatch\n got=%s\nwant=%s", raw, want)
	}
}

func TestSerialize_Idempotent(t *testing.T) {
	b := fs.New().
		Definition("id", fs.New().AsString().Pattern("^[0-9a-f]+$")).
		Prop("id").Ref("#definitions/id").Required().
		Prop("score").AsNumber().Minimum(0).Maximum(100)

	first, err := b.ToJSON()
	if err != nil {
		t.Fatalf("first ToJSON err: %v", err)
	}
	second, err := b.ToJSON()
	if err != nil {
		t.Fatalf("second ToJSON err: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("serialization not idempotent\nfirst=%s\nsecond=%s", first, second)
	}
}

func TestSerialize_PureProjectionKeepsChaining(t *testing.T) {
	b := fs.New().Prop("a").AsString()
	before, err := b.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON err: %v", err)
	}

	// serialization must not consume or alter state; the chain continues
	after, err := b.Prop("b").AsNumber().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON after chaining err: %v", err)
	}
	if bytes.Equal(before, after) {
		t.Fatalf("chained call after serialization had no effect")
	}
	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build err: %v", err)
	}
	if doc.Properties.Len() != 2 {
		t.Fatalf("expected both properties, got %v", doc.Properties.Keys())
	}
}

func TestSerialize_DeterministicAcrossEquivalentChains(t *testing.T) {
	build := func() *fs.Builder {
		return fs.New().
			Definition("addr", fs.New().Prop("city").AsString().Required()).
			Prop("name").AsString().MinLength(1).Required().
			Prop("home").Ref("#definitions/addr").
			Prop("tags").AsArray().Items(fs.New().AsString()).UniqueItems(true)
	}
	a, err := build().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON err: %v", err)
	}
	b, err := build().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON err: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("equivalent chains produced different bytes\n a=%s\n b=%s", a, b)
	}
}

func TestSerialize_EmptyBuilder(t *testing.T) {
	raw, err := fs.New().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON err: %v", err)
	}
	want := `{"$schema":"http://json-schema.org/draft-07/schema#"}`
	if string(raw) != want {
		t.Fatalf("empty document mismatch: %s", raw)
	}
}
