package fluentschema

import "testing"

func TestFragmentID(t *testing.T) {
	cases := []struct {
		name  string
		chain []pathSegment
		want  string
	}{
		{"root", nil, ""},
		{"property", []pathSegment{{segProperty, "email"}}, "#properties/email"},
		{"definition", []pathSegment{{segDefinition, "address"}}, "#definitions/address"},
		{
			"nested",
			[]pathSegment{{segDefinition, "address"}, {segProperty, "line1"}},
			"#definitions/address/properties/line1",
		},
		{
			"deep",
			[]pathSegment{{segProperty, "a"}, {segProperty, "b"}, {segProperty, "c"}},
			"#properties/a/properties/b/properties/c",
		},
	}
	for _, tc := range cases {
		if got := fragmentID(tc.chain); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestFragmentID_Deterministic(t *testing.T) {
	chain := []pathSegment{{segDefinition, "x"}, {segProperty, "y"}}
	if fragmentID(chain) != fragmentID(chain) {
		t.Fatalf("fragmentID must be pure")
	}
}

func TestPointerOf(t *testing.T) {
	if got := pointerOf(); got != "/" {
		t.Errorf("empty: %q", got)
	}
	if got := pointerOf("properties", "email"); got != "/properties/email" {
		t.Errorf("simple: %q", got)
	}
	// RFC 6901 escaping
	if got := pointerOf("properties", "a/b~c"); got != "/properties/a~1b~0c" {
		t.Errorf("escaped: %q", got)
	}
}
