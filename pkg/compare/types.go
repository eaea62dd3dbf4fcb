package compare

import (
	"fmt"

	"jsoncmp/pkg/path"
)

// Reason 定义不一致的类型
type Reason int

const (
	ReasonNone            Reason = iota
	ReasonMissingProperty        // 被检验对象少了属性
	ReasonExtraProperty          // 被检验对象多了属性
	ReasonPropertyCount          // 属性数量不一致，无法定位到具体属性
	ReasonTypeMismatch           // 类型不一致
	ReasonBlankString            // 被检验字符串为空
	ReasonArrayLength            // 数组长度不一致
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonMissingProperty:
		return "missing_property"
	case ReasonExtraProperty:
		return "extra_property"
	case ReasonPropertyCount:
		return "property_count"
	case ReasonTypeMismatch:
		return "type_mismatch"
	case ReasonBlankString:
		return "blank_string"
	case ReasonArrayLength:
		return "array_length"
	default:
		return "unknown"
	}
}

// 消息连接词：<路径>对象中<原因>，应为：<期望值>
const (
	sepWhere    = "对象中"
	sepExpected = "，应为："
)

// Outcome 表示一次比较的结果，创建后不可修改
// 相等时 Detail、Path、Expected 都为空
type Outcome struct {
	equal    bool
	reason   Reason
	detail   string
	path     path.Path
	expected string
	hasExp   bool
}

func equalOutcome() Outcome {
	return Outcome{equal: true}
}

func failure(reason Reason, detail string, at path.Path) Outcome {
	return Outcome{reason: reason, detail: detail, path: at}
}

func failureExpecting(reason Reason, detail string, at path.Path, expected string) Outcome {
	return Outcome{reason: reason, detail: detail, path: at, expected: expected, hasExp: true}
}

func (o Outcome) Equal() bool {
	return o.equal
}

func (o Outcome) Reason() Reason {
	return o.reason
}

// Detail 返回不一致的原因描述
func (o Outcome) Detail() string {
	return o.detail
}

// Path 返回不一致所在的路径，相等时为空路径
func (o Outcome) Path() path.Path {
	return o.path
}

// Expected 返回期望值（如期望的数量或类型名）
func (o Outcome) Expected() (string, bool) {
	return o.expected, o.hasExp
}

// Message 渲染完整的提示信息，相等时为空字符串
func (o Outcome) Message() string {
	if o.equal {
		return ""
	}
	msg := o.path.String() + sepWhere + o.detail
	if o.hasExp {
		msg += sepExpected + o.expected
	}
	return msg
}

func (o Outcome) String() string {
	if o.equal {
		return "Outcome{equal}"
	}
	return fmt.Sprintf("Outcome{%s at '%s': %s}", o.reason, o.path, o.Message())
}
