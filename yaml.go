package fluentschema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/reoring/fluentschema/i18n"
)

// FromYAML reconstructs a builder from a draft-07 document written in
// YAML. The document is walked through yaml.Node rather than a plain map
// so mapping order survives into the canonical JSON output.
func FromYAML(data []byte) (*Builder, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: err.Error()}}
	}
	v, err := yamlToDoc(&root)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: err.Error()}}
	}
	obj, ok := v.(*docObject)
	if !ok {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: "document root must be a mapping"}}
	}
	return importDocument(obj)
}

func yamlToDoc(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, fmt.Errorf("empty document")
		}
		return yamlToDoc(n.Content[0])
	case yaml.MappingNode:
		obj := &docObject{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			val, err := yamlToDoc(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.entries = append(obj.entries, docEntry{key: key, val: val})
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlToDoc(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case yaml.AliasNode:
		return yamlToDoc(n.Alias)
	}
	return nil, fmt.Errorf("unsupported YAML node kind %d", n.Kind)
}
