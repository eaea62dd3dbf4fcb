package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse 解析路径字符串，是 Path.String 的逆操作
// 支持语法：
//   - data.user.name
//   - items[0]
//   - items[2].tags[0]
//   - [1].name （根为数组）
//
// 空字符串返回空路径（根节点）
func Parse(pathStr string) (Path, error) {
	if pathStr == "" {
		return Path{}, nil
	}

	var segments []Segment
	parts := splitPath(pathStr)

	for _, part := range parts {
		segs, err := parsePart(part)
		if err != nil {
			return Path{}, fmt.Errorf("invalid segment '%s': %w", part, err)
		}
		segments = append(segments, segs...)
	}

	return Path{segments: segments}, nil
}

// MustParse 同 Parse，出错时 panic，用于常量路径
func MustParse(pathStr string) Path {
	p, err := Parse(pathStr)
	if err != nil {
		panic(err)
	}
	return p
}

// splitPath 按 "." 分割路径，[] 内的 "." 不分割
// 例如: "data.items[0].name" -> ["data", "items[0]", "name"]
func splitPath(pathStr string) []string {
	var parts []string
	var current strings.Builder
	inBracket := false

	for _, ch := range pathStr {
		switch ch {
		case '[':
			inBracket = true
			current.WriteRune(ch)
		case ']':
			inBracket = false
			current.WriteRune(ch)
		case '.':
			if inBracket {
				current.WriteRune(ch)
			} else {
				// 连续的 "." 或首尾的 "." 会产生空属性名
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(ch)
		}
	}

	parts = append(parts, current.String())

	return parts
}

// parsePart 解析单个片段，如 "items[0][1]"，返回属性片段和随后的下标片段
func parsePart(part string) ([]Segment, error) {
	if part == "" {
		return nil, fmt.Errorf("empty key")
	}

	bracketStart := strings.Index(part, "[")
	if bracketStart == -1 {
		if strings.Contains(part, "]") {
			return nil, fmt.Errorf("unexpected ']'")
		}
		return []Segment{KeySegment(part)}, nil
	}

	var segments []Segment
	if bracketStart > 0 {
		segments = append(segments, KeySegment(part[:bracketStart]))
	}

	rest := part[bracketStart:]
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("unexpected %q after ']'", rest)
		}
		bracketEnd := strings.Index(rest, "]")
		if bracketEnd == -1 {
			return nil, fmt.Errorf("no closing bracket")
		}

		idx, err := parseIndex(rest[1:bracketEnd])
		if err != nil {
			return nil, err
		}
		segments = append(segments, IndexSegment(idx))
		rest = rest[bracketEnd+1:]
	}

	return segments, nil
}

// parseIndex 解析下标，必须为非负整数
func parseIndex(s string) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	if idx < 0 {
		return 0, fmt.Errorf("negative index %d", idx)
	}
	return idx, nil
}
