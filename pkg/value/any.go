package value

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// FromAny 包装 encoding/json 风格的 Go 值：
// map[string]any、[]any、string、bool、数字、json.Number 和 nil
//
// Go 的 map 没有顺序，属性名按字典序排列，保证多次比较结果一致
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return scalar(KindNull, "null"), nil
	case bool:
		return scalar(KindBoolean, strconv.FormatBool(t)), nil
	case string:
		return scalar(KindString, t), nil
	case json.Number:
		return scalar(KindNumber, t.String()), nil
	case float64:
		return scalar(KindNumber, strconv.FormatFloat(t, 'g', -1, 64)), nil
	case float32:
		return scalar(KindNumber, strconv.FormatFloat(float64(t), 'g', -1, 32)), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return scalar(KindNumber, fmt.Sprint(t)), nil
	case []any:
		arr := newArray(len(t))
		for i, elem := range t {
			child, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr.push(child)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		obj := newObject(len(t))
		for _, k := range keys {
			child, err := FromAny(t[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			obj.set(k, child)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported type %T", v)
	}
}

// MustFromAny 同 FromAny，出错时 panic
func MustFromAny(v any) Value {
	res, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return res
}
