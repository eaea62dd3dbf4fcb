package value

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/valyala/fastjson"
)

// ParseJSON 解析 JSON 文本，属性按文档顺序保存
func ParseJSON(data []byte) (Value, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return fromFast(v)
}

// FromFastJSON 包装已解析的 fastjson 值
// fastjson 的值只在其 Parser 下一次解析前有效，这里会立即复制
func FromFastJSON(v *fastjson.Value) (Value, error) {
	if v == nil {
		return nil, fmt.Errorf("nil fastjson value")
	}
	return fromFast(v)
}

func fromFast(v *fastjson.Value) (Value, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return scalar(KindNull, "null"), nil
	case fastjson.TypeTrue:
		return scalar(KindBoolean, "true"), nil
	case fastjson.TypeFalse:
		return scalar(KindBoolean, "false"), nil
	case fastjson.TypeNumber:
		return scalar(KindNumber, v.String()), nil
	case fastjson.TypeString:
		b, err := v.StringBytes()
		if err != nil {
			return nil, err
		}
		return scalar(KindString, string(b)), nil
	case fastjson.TypeArray:
		arr, err := v.Array()
		if err != nil {
			return nil, err
		}
		n := newArray(len(arr))
		for _, elem := range arr {
			child, err := fromFast(elem)
			if err != nil {
				return nil, err
			}
			n.push(child)
		}
		return n, nil
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return nil, err
		}
		n := newObject(obj.Len())
		var visitErr error
		obj.Visit(func(key []byte, fv *fastjson.Value) {
			if visitErr != nil {
				return
			}
			child, err := fromFast(fv)
			if err != nil {
				visitErr = err
				return
			}
			n.set(string(key), child)
		})
		if visitErr != nil {
			return nil, visitErr
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unknown fastjson type %v", v.Type())
	}
}

// FromGJSON 包装 gjson 查询结果
// 结果不存在时返回 nil
func FromGJSON(r gjson.Result) Value {
	if !r.Exists() {
		return nil
	}
	return fromGJSON(r)
}

func fromGJSON(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return scalar(KindNull, "null")
	case gjson.True, gjson.False:
		return scalar(KindBoolean, r.Raw)
	case gjson.Number:
		return scalar(KindNumber, r.Raw)
	case gjson.String:
		return scalar(KindString, r.Str)
	}

	if r.IsArray() {
		n := newArray(0)
		r.ForEach(func(_, v gjson.Result) bool {
			n.push(fromGJSON(v))
			return true
		})
		return n
	}

	n := newObject(0)
	r.ForEach(func(k, v gjson.Result) bool {
		n.set(k.String(), fromGJSON(v))
		return true
	})
	return n
}
