package path

import (
	"errors"
	"fmt"

	"jsoncmp/pkg/value"
)

// ErrNotFound 路径在文档中不存在
var ErrNotFound = errors.New("not found")

// Navigator 负责在 JSON 树中按路径查找节点
type Navigator struct{}

// Find 根据路径查找节点，空路径返回 root 本身
func (n *Navigator) Find(root value.Value, p Path) (value.Value, error) {
	if root == nil {
		return nil, fmt.Errorf("nil root")
	}
	return n.findRecursive(root, p.segments, 0)
}

// findRecursive 递归查找
func (n *Navigator) findRecursive(node value.Value, segments []Segment, segmentIdx int) (value.Value, error) {
	// 到达路径末尾
	if segmentIdx >= len(segments) {
		return node, nil
	}

	segment := segments[segmentIdx]

	switch segment.Type {
	case SegmentTypeKey:
		return n.findField(node, segments, segmentIdx)
	case SegmentTypeIndex:
		return n.findIndex(node, segments, segmentIdx)
	default:
		return nil, fmt.Errorf("unknown segment type")
	}
}

// findField 查找对象属性
func (n *Navigator) findField(node value.Value, segments []Segment, segmentIdx int) (value.Value, error) {
	segment := segments[segmentIdx]
	at := describe(segments[:segmentIdx])

	if node.Kind() != value.KindObject {
		return nil, fmt.Errorf("%s: expected object, got %s", at, node.Kind())
	}

	child, ok := node.Field(segment.Key)
	if !ok {
		return nil, fmt.Errorf("%s: field '%s' %w", at, segment.Key, ErrNotFound)
	}

	return n.findRecursive(child, segments, segmentIdx+1)
}

// findIndex 查找数组元素
func (n *Navigator) findIndex(node value.Value, segments []Segment, segmentIdx int) (value.Value, error) {
	segment := segments[segmentIdx]
	at := describe(segments[:segmentIdx])

	if node.Kind() != value.KindArray {
		return nil, fmt.Errorf("%s: expected array, got %s", at, node.Kind())
	}

	if segment.Index < 0 || segment.Index >= node.Len() {
		return nil, fmt.Errorf("%s: index %d out of range: %w", at, segment.Index, ErrNotFound)
	}

	return n.findRecursive(node.Index(segment.Index), segments, segmentIdx+1)
}

// describe 渲染出错位置，根节点显示为 <root>
func describe(segments []Segment) string {
	if len(segments) == 0 {
		return "<root>"
	}
	return Path{segments: segments}.String()
}
