package compare

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"jsoncmp/pkg/path"
	"jsoncmp/pkg/value"
)

func parse(t *testing.T, doc string) value.Value {
	t.Helper()
	v, err := value.ParseJSON([]byte(doc))
	require.NoError(t, err)
	return v
}

func objects(t *testing.T, initiative, passive string) Outcome {
	t.Helper()
	res, err := Objects(parse(t, initiative), parse(t, passive))
	require.NoError(t, err)
	return res
}

func TestObjects_Equal(t *testing.T) {
	docs := []string{
		`{}`,
		`{"a":1}`,
		`{"a":1,"b":"x","c":true,"d":null}`,
		`{"p":{"q":[1,2,{"r":"x"}]}}`,
		`{"list":[],"nested":{"deep":{"deeper":[[1],[2,3]]}}}`,
	}

	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			// 分别解析，避免同一个实例
			res := objects(t, doc, doc)
			assert.True(t, res.Equal())
			assert.Equal(t, ReasonNone, res.Reason())
			assert.Empty(t, res.Message())
			assert.Empty(t, res.Detail())
			assert.True(t, res.Path().IsRoot())
			_, ok := res.Expected()
			assert.False(t, ok)
		})
	}
}

func TestObjects_ScalarValuesNotCompared(t *testing.T) {
	res := objects(t,
		`{"n":1,"b":true,"s":"a","z":null}`,
		`{"n":2.5,"b":false,"s":"b","z":null}`,
	)
	assert.True(t, res.Equal())
}

func TestObjects_Mismatch(t *testing.T) {
	tests := []struct {
		name       string
		initiative string
		passive    string
		reason     Reason
		path       string
		message    string
	}{
		{
			name:       "passive has fewer keys",
			initiative: `{"x":1,"y":2}`,
			passive:    `{"x":1}`,
			reason:     ReasonMissingProperty,
			path:       "",
			message:    "对象中少了 y 属性",
		},
		{
			name:       "passive has more keys",
			initiative: `{"x":1}`,
			passive:    `{"x":1,"y":2}`,
			reason:     ReasonExtraProperty,
			path:       "",
			message:    "对象中多了 y 属性",
		},
		{
			name:       "same size different key",
			initiative: `{"x":1,"y":2}`,
			passive:    `{"x":1,"z":2}`,
			reason:     ReasonMissingProperty,
			path:       "",
			message:    "对象中少了y属性",
		},
		{
			name:       "missing key reported on parent path",
			initiative: `{"o":{"x":1}}`,
			passive:    `{"o":{"z":1}}`,
			reason:     ReasonMissingProperty,
			path:       "o",
			message:    "o对象中少了x属性",
		},
		{
			name:       "type mismatch",
			initiative: `{"k":1}`,
			passive:    `{"k":"1"}`,
			reason:     ReasonTypeMismatch,
			path:       "k",
			message:    "k对象中类型不一致，应为：number",
		},
		{
			name:       "null against object",
			initiative: `{"k":null}`,
			passive:    `{"k":{}}`,
			reason:     ReasonTypeMismatch,
			path:       "k",
			message:    "k对象中类型不一致，应为：null",
		},
		{
			name:       "blank passive string",
			initiative: `{"k":"v"}`,
			passive:    `{"k":""}`,
			reason:     ReasonBlankString,
			path:       "k",
			message:    "k对象中属性类型不能为空",
		},
		{
			name:       "whitespace passive string",
			initiative: `{"k":"v"}`,
			passive:    `{"k":" \t\n"}`,
			reason:     ReasonBlankString,
			path:       "k",
			message:    "k对象中属性类型不能为空",
		},
		{
			name:       "nested array length",
			initiative: `{"a":{"list":[1,2,3]}}`,
			passive:    `{"a":{"list":[1]}}`,
			reason:     ReasonArrayLength,
			path:       "a.list",
			message:    "a.list对象中数量大小不一致，应为：3",
		},
		{
			name:       "nested size mismatch",
			initiative: `{"a":[{"x":1}]}`,
			passive:    `{"a":[{"x":1,"extra":true}]}`,
			reason:     ReasonExtraProperty,
			path:       "a[0]",
			message:    "a[0]对象中多了 extra 属性",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := objects(t, tt.initiative, tt.passive)
			require.False(t, res.Equal())
			assert.Equal(t, tt.reason, res.Reason())
			assert.Equal(t, tt.path, res.Path().String())
			assert.Equal(t, tt.message, res.Message())
		})
	}
}

func TestObjects_BlankStringOnlyCheckedOnPassive(t *testing.T) {
	res := objects(t, `{"k":""}`, `{"k":"v"}`)
	assert.True(t, res.Equal())

	res = objects(t, `{"k":"v"}`, `{"k":""}`)
	require.False(t, res.Equal())
	assert.Equal(t, ReasonBlankString, res.Reason())
	assert.Equal(t, "k", res.Path().String())
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		s     string
		blank bool
	}{
		{"", true},
		{" \t\n\r\v\f", true},
		{"\u001c\u001d\u001e\u001f", true},
		{"\u3000\u2028\u2029", true},
		{"\u0085", false},
		{"\u00a0", false},
		{"\u2007", false},
		{"\u202f", false},
		{" x ", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.s), func(t *testing.T) {
			assert.Equal(t, tt.blank, isBlank(tt.s))

			passive, err := sjson.Set(`{"k":"v"}`, "k", tt.s)
			require.NoError(t, err)
			res := objects(t, `{"k":"v"}`, passive)
			assert.Equal(t, !tt.blank, res.Equal())
		})
	}
}

func TestObjects_FirstDivergenceOnly(t *testing.T) {
	// x 只比较类型，第一个不一致在 y
	res := objects(t, `{"x":1,"y":"bad"}`, `{"x":2,"y":""}`)
	require.False(t, res.Equal())
	assert.Equal(t, ReasonBlankString, res.Reason())
	assert.Equal(t, "y", res.Path().String())

	// x 先出现，y 的问题不会报告
	res = objects(t, `{"x":1,"y":"bad"}`, `{"x":"1","y":""}`)
	require.False(t, res.Equal())
	assert.Equal(t, ReasonTypeMismatch, res.Reason())
	assert.Equal(t, "x", res.Path().String())
}

func TestObjects_KeyOrderFollowsInitiative(t *testing.T) {
	res := objects(t, `{"b":1,"a":1}`, `{"a":"x","b":"x"}`)
	require.False(t, res.Equal())
	assert.Equal(t, "b", res.Path().String())
}

func TestObjects_PathRendering(t *testing.T) {
	initiative := `{"p":{"q":[1,2,{"r":"x"}]}}`
	passive, err := sjson.Set(initiative, "p.q.2.r", "")
	require.NoError(t, err)

	res := objects(t, initiative, passive)
	require.False(t, res.Equal())
	assert.Equal(t, "p.q[2].r", res.Path().String())
	assert.Equal(t, "p.q[2].r对象中属性类型不能为空", res.Message())
}

func TestObjects_SizeHeuristicNamesOnlyManySide(t *testing.T) {
	// 两侧都有对方没有的属性，只会报告属性多的一侧的第一个
	res := objects(t, `{"x":1,"y":2}`, `{"z":1}`)
	require.False(t, res.Equal())
	assert.Equal(t, ReasonMissingProperty, res.Reason())
	assert.Equal(t, "对象中少了 x 属性", res.Message())

	res = objects(t, `{"z":1}`, `{"x":1,"y":2}`)
	require.False(t, res.Equal())
	assert.Equal(t, ReasonExtraProperty, res.Reason())
	assert.Equal(t, "对象中多了 x 属性", res.Message())
}

// inflated 报告的属性数量比实际的属性名多
type inflated struct {
	value.Value
	extra int
}

func (v inflated) Len() int {
	return v.Value.Len() + v.extra
}

func TestObjects_SizeFallbackToCount(t *testing.T) {
	res, err := Objects(inflated{Value: parse(t, `{"x":1}`), extra: 1}, parse(t, `{"x":1}`))
	require.NoError(t, err)
	require.False(t, res.Equal())
	assert.Equal(t, ReasonPropertyCount, res.Reason())
	assert.Equal(t, "对象中属性数量大小不一致", res.Message())
}

func TestArrays(t *testing.T) {
	tests := []struct {
		name       string
		initiative string
		passive    string
		equal      bool
		reason     Reason
		path       string
		expected   string
		message    string
	}{
		{name: "empty", initiative: `[]`, passive: `[]`, equal: true},
		{name: "scalars", initiative: `[1,"a",true,null]`, passive: `[2,"b",false,null]`, equal: true},
		{
			name:       "length",
			initiative: `[1,2,3]`,
			passive:    `[1,2]`,
			reason:     ReasonArrayLength,
			expected:   "3",
			message:    "对象中数量大小不一致，应为：3",
		},
		{
			name:       "element type",
			initiative: `[1,2]`,
			passive:    `[1,"2"]`,
			reason:     ReasonTypeMismatch,
			path:       "[1]",
			expected:   "number",
			message:    "[1]对象中类型不一致，应为：number",
		},
		{
			name:       "object in array",
			initiative: `[{"a":"x"}]`,
			passive:    `[{"a":1}]`,
			reason:     ReasonTypeMismatch,
			path:       "[0].a",
			expected:   "string",
			message:    "[0].a对象中类型不一致，应为：string",
		},
		{
			name:       "nested arrays",
			initiative: `[[1],[1,2]]`,
			passive:    `[[1],[1]]`,
			reason:     ReasonArrayLength,
			path:       "[1]",
			expected:   "2",
			message:    "[1]对象中数量大小不一致，应为：2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Arrays(parse(t, tt.initiative), parse(t, tt.passive))
			require.NoError(t, err)
			require.Equal(t, tt.equal, res.Equal())
			if tt.equal {
				return
			}
			assert.Equal(t, tt.reason, res.Reason())
			assert.Equal(t, tt.path, res.Path().String())
			exp, ok := res.Expected()
			assert.True(t, ok)
			assert.Equal(t, tt.expected, exp)
			assert.Equal(t, tt.message, res.Message())
		})
	}
}

func TestObjectsAt_Prefix(t *testing.T) {
	res, err := ObjectsAt(
		parse(t, `{"name":"x","tags":["a"]}`),
		parse(t, `{"name":"x","tags":[""]}`),
		path.MustParse("data.user"),
	)
	require.NoError(t, err)
	require.False(t, res.Equal())
	assert.Equal(t, "data.user.tags[0]", res.Path().String())
}

func TestArraysAt_Prefix(t *testing.T) {
	res, err := ArraysAt(parse(t, `[1,2]`), parse(t, `[1]`), path.MustParse("items"))
	require.NoError(t, err)
	assert.Equal(t, "items对象中数量大小不一致，应为：2", res.Message())
}

func TestValues(t *testing.T) {
	res, err := Values(parse(t, `{}`), parse(t, `[]`), path.Path{})
	require.NoError(t, err)
	require.False(t, res.Equal())
	assert.Equal(t, ReasonTypeMismatch, res.Reason())
	assert.Equal(t, "对象中类型不一致，应为：object", res.Message())

	res, err = Values(parse(t, `[{"a":1}]`), parse(t, `[{"a":2}]`), path.Path{})
	require.NoError(t, err)
	assert.True(t, res.Equal())
}

func TestInvalidInput(t *testing.T) {
	obj := parse(t, `{}`)
	arr := parse(t, `[]`)

	_, err := Objects(nil, obj)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Objects(obj, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Objects(arr, obj)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Arrays(arr, obj)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Values(nil, nil, path.Path{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestObjects_GJSON(t *testing.T) {
	initiative := `{"user":{"name":"x","roles":["admin"]}}`
	passive, err := sjson.Set(initiative, "user.roles.1", "guest")
	require.NoError(t, err)

	res, err := Objects(value.FromGJSON(gjson.Parse(initiative)), value.FromGJSON(gjson.Parse(passive)))
	require.NoError(t, err)
	require.False(t, res.Equal())
	assert.Equal(t, "user.roles对象中数量大小不一致，应为：1", res.Message())
}

func TestObjects_Idempotent(t *testing.T) {
	a := parse(t, `{"a":{"b":[1,{"c":"x"}]},"d":"y"}`)
	b := parse(t, `{"a":{"b":[1,{"c":1}]},"d":"y"}`)

	first, err := Objects(a, b)
	require.NoError(t, err)
	second, err := Objects(a, b)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "a.b[1].c", first.Path().String())
}

func TestObjects_Concurrent(t *testing.T) {
	a := parse(t, `{"a":{"b":[1,{"c":"x"}]},"d":"y"}`)
	b := parse(t, `{"a":{"b":[1,{"c":" "}]},"d":"y"}`)

	want, err := Objects(a, b)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Outcome, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Objects(a, b)
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		assert.Equal(t, want, res)
	}
}
