package path

import (
	"strconv"
	"strings"
)

// Segment 表示路径的一个片段
type Segment struct {
	Type  SegmentType
	Key   string // 属性名，如 "user"
	Index int    // 数组下标，仅 SegmentTypeIndex 有效
}

type SegmentType int

const (
	SegmentTypeKey   SegmentType = iota // 对象属性
	SegmentTypeIndex                    // 数组下标
)

func (t SegmentType) String() string {
	switch t {
	case SegmentTypeKey:
		return "key"
	case SegmentTypeIndex:
		return "index"
	default:
		return "unknown"
	}
}

// KeySegment 创建对象属性片段
func KeySegment(key string) Segment {
	return Segment{Type: SegmentTypeKey, Key: key}
}

// IndexSegment 创建数组下标片段
func IndexSegment(i int) Segment {
	return Segment{Type: SegmentTypeIndex, Index: i}
}

// Value 返回片段的字符串形式（属性名或下标）
func (s Segment) Value() string {
	if s.Type == SegmentTypeIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Key
}

// Path 表示从根到某个节点的完整路径，创建后不可修改
// 零值为空路径，即根节点本身
type Path struct {
	segments []Segment
}

// New 由片段列表创建路径
func New(segments ...Segment) Path {
	if len(segments) == 0 {
		return Path{}
	}
	s := make([]Segment, len(segments))
	copy(s, segments)
	return Path{segments: s}
}

// Append 返回追加了 seg 的新路径，接收者不变
func (p Path) Append(seg Segment) Path {
	s := make([]Segment, len(p.segments), len(p.segments)+1)
	copy(s, p.segments)
	return Path{segments: append(s, seg)}
}

// Key 追加对象属性
func (p Path) Key(key string) Path {
	return p.Append(KeySegment(key))
}

// Index 追加数组下标
func (p Path) Index(i int) Path {
	return p.Append(IndexSegment(i))
}

func (p Path) Len() int {
	return len(p.segments)
}

func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// Segments 返回片段副本
func (p Path) Segments() []Segment {
	s := make([]Segment, len(p.segments))
	copy(s, p.segments)
	return s
}

// String 渲染路径，如 a.b[2].c
// 属性片段除首个片段外前面加 "."，下标片段渲染为 [i]
func (p Path) String() string {
	var sb strings.Builder
	for i, seg := range p.segments {
		switch seg.Type {
		case SegmentTypeKey:
			if i != 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(seg.Key)
		case SegmentTypeIndex:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(seg.Index))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}
