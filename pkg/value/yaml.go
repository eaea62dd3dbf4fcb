package value

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML 解析 YAML 文档（JSON 也是合法的 YAML）
func ParseYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return FromYAML(&root)
}

// FromYAML 包装 yaml.v3 节点树
// 标量类型由节点的 tag 决定
func FromYAML(n *yaml.Node) (Value, error) {
	if n == nil {
		return nil, fmt.Errorf("nil yaml node")
	}
	return fromYAML(n, 0)
}

// 别名可以构成环，限制展开深度
const maxAliasDepth = 64

func fromYAML(n *yaml.Node, aliases int) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, fmt.Errorf("empty document")
		}
		return fromYAML(n.Content[0], aliases)

	case yaml.AliasNode:
		if aliases >= maxAliasDepth {
			return nil, fmt.Errorf("alias nesting too deep at line %d", n.Line)
		}
		return fromYAML(n.Alias, aliases+1)

	case yaml.MappingNode:
		// MappingNode 的 Content 是 [key1, value1, key2, value2, ...]
		obj := newObject(len(n.Content) / 2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := fromYAML(n.Content[i+1], aliases)
			if err != nil {
				return nil, err
			}
			obj.set(n.Content[i].Value, child)
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := newArray(len(n.Content))
		for _, elem := range n.Content {
			child, err := fromYAML(elem, aliases)
			if err != nil {
				return nil, err
			}
			arr.push(child)
		}
		return arr, nil

	case yaml.ScalarNode:
		return scalar(scalarKind(n.ShortTag()), n.Value), nil

	default:
		return nil, fmt.Errorf("unknown yaml node kind %v at line %d", n.Kind, n.Line)
	}
}

func scalarKind(tag string) Kind {
	switch tag {
	case "!!null":
		return KindNull
	case "!!bool":
		return KindBoolean
	case "!!int", "!!float":
		return KindNumber
	default:
		// !!str、!!timestamp、!!binary 等都按字符串处理
		return KindString
	}
}
