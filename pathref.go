package fluentschema

import (
	"strings"
)

// Structural $id fragments and issue paths are both derived from the chain
// of property/definition segments between the document root and a node.
// The computation is pure: the same chain always renders the same strings.

type segmentKind int

const (
	segProperty segmentKind = iota
	segDefinition
)

type pathSegment struct {
	kind segmentKind
	name string
}

// fragmentID renders the canonical $id for a node, e.g.
// "#properties/email" or "#definitions/address/properties/line1".
// An empty chain is the document root, whose id is user-supplied.
func fragmentID(chain []pathSegment) string {
	if len(chain) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('#')
	for i, seg := range chain {
		if i > 0 {
			sb.WriteByte('/')
		}
		switch seg.kind {
		case segProperty:
			sb.WriteString("properties/")
		case segDefinition:
			sb.WriteString("definitions/")
		}
		sb.WriteString(seg.name)
	}
	return sb.String()
}

// pointerOf renders a JSON Pointer from path parts, escaping '~' -> '~0'
// and '/' -> '~1' per RFC 6901. Used for Issue paths.
func pointerOf(parts ...string) string {
	if len(parts) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteByte('/')
		sb.WriteString(escapePointer(p))
	}
	return sb.String()
}

func escapePointer(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
