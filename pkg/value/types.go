package value

// Kind 表示 JSON 值的运行时类型
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value 是比较器读取的只读 JSON 树节点
//
// 实现必须保证：Keys 在同一个值上多次调用顺序一致；
// Len 对对象返回属性数，对数组返回元素数，其余为 0；
// Field/Index/Text 只在对应的 Kind 上有意义。
type Value interface {
	Kind() Kind
	Len() int
	// Keys 返回对象的属性名，按文档顺序
	Keys() []string
	// Field 返回对象属性值
	Field(key string) (Value, bool)
	// Index 返回数组第 i 个元素
	Index(i int) Value
	// Text 返回字符串内容
	Text() string
}
