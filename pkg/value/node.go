package value

// node 是所有适配器共用的物化节点
// 构造完成后只读，可被多个比较并发访问
type node struct {
	kind   Kind
	text   string
	items  []Value
	keys   []string
	fields map[string]Value
}

func (n *node) Kind() Kind {
	return n.kind
}

func (n *node) Len() int {
	switch n.kind {
	case KindObject:
		return len(n.keys)
	case KindArray:
		return len(n.items)
	default:
		return 0
	}
}

func (n *node) Keys() []string {
	return n.keys
}

func (n *node) Field(key string) (Value, bool) {
	v, ok := n.fields[key]
	return v, ok
}

func (n *node) Index(i int) Value {
	if i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i]
}

func (n *node) Text() string {
	return n.text
}

func scalar(kind Kind, text string) *node {
	return &node{kind: kind, text: text}
}

func newObject(capacity int) *node {
	return &node{
		kind:   KindObject,
		keys:   make([]string, 0, capacity),
		fields: make(map[string]Value, capacity),
	}
}

func newArray(capacity int) *node {
	return &node{kind: KindArray, items: make([]Value, 0, capacity)}
}

// set 添加属性，重复的属性名保留第一次出现的值
func (n *node) set(key string, v Value) {
	if _, ok := n.fields[key]; ok {
		return
	}
	n.keys = append(n.keys, key)
	n.fields[key] = v
}

func (n *node) push(v Value) {
	n.items = append(n.items, v)
}
