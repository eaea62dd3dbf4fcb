package compare

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"jsoncmp/pkg/path"
	"jsoncmp/pkg/value"
)

// ErrInvalidInput 根节点为空或类型不符合入口要求
var ErrInvalidInput = errors.New("invalid input")

// Objects 判断两个对象结构一致
// initiative 为检验对象（期望结构），passive 为被检验对象
func Objects(initiative, passive value.Value) (Outcome, error) {
	return ObjectsAt(initiative, passive, path.Path{})
}

// Arrays 判断两个数组结构一致
func Arrays(initiative, passive value.Value) (Outcome, error) {
	return ArraysAt(initiative, passive, path.Path{})
}

// ObjectsAt 同 Objects，prefix 为两个对象在各自文档中的路径
func ObjectsAt(initiative, passive value.Value, prefix path.Path) (Outcome, error) {
	if err := checkRoots(initiative, passive, value.KindObject); err != nil {
		return Outcome{}, err
	}
	return compareObjects(initiative, passive, prefix), nil
}

// ArraysAt 同 Arrays，prefix 为两个数组在各自文档中的路径
func ArraysAt(initiative, passive value.Value, prefix path.Path) (Outcome, error) {
	if err := checkRoots(initiative, passive, value.KindArray); err != nil {
		return Outcome{}, err
	}
	return compareArrays(initiative, passive, prefix), nil
}

// Values 比较任意两个值，根节点类型不同时报告类型不一致
func Values(initiative, passive value.Value, prefix path.Path) (Outcome, error) {
	if initiative == nil || passive == nil {
		return Outcome{}, fmt.Errorf("%w: nil root", ErrInvalidInput)
	}
	return compareValue(initiative, passive, prefix), nil
}

func checkRoots(initiative, passive value.Value, want value.Kind) error {
	if initiative == nil || passive == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidInput)
	}
	if k := initiative.Kind(); k != want {
		return fmt.Errorf("%w: initiative is %s, want %s", ErrInvalidInput, k, want)
	}
	if k := passive.Kind(); k != want {
		return fmt.Errorf("%w: passive is %s, want %s", ErrInvalidInput, k, want)
	}
	return nil
}

// compareObjects 先比较属性数量，再逐个属性递归比较，遇到第一个不一致立即返回
func compareObjects(initiative, passive value.Value, at path.Path) Outcome {
	if initiative.Len() != passive.Len() {
		return sizeError(initiative, passive, at)
	}

	for _, key := range initiative.Keys() {
		pv, ok := passive.Field(key)
		if !ok {
			// 缺失属性报告在父级路径上
			return failure(ReasonMissingProperty, "少了"+key+"属性", at)
		}

		iv, _ := initiative.Field(key)
		if res := compareValue(iv, pv, at.Key(key)); !res.Equal() {
			return res
		}
	}

	return equalOutcome()
}

// compareArrays 先比较长度，再按下标逐个递归比较
func compareArrays(initiative, passive value.Value, at path.Path) Outcome {
	if initiative.Len() != passive.Len() {
		return failureExpecting(ReasonArrayLength, "数量大小不一致", at, strconv.Itoa(initiative.Len()))
	}

	for i, n := 0, initiative.Len(); i < n; i++ {
		if res := compareValue(initiative.Index(i), passive.Index(i), at.Index(i)); !res.Equal() {
			return res
		}
	}

	return equalOutcome()
}

// compareValue 比较同一位置上的两个值，at 已包含当前属性名或下标
//
// 只校验类型，不比较数字、布尔和非空字符串的值；
// 字符串只检查被检验的一侧是否为空
func compareValue(initiative, passive value.Value, at path.Path) Outcome {
	ik, pk := initiative.Kind(), passive.Kind()
	if ik != pk {
		return failureExpecting(ReasonTypeMismatch, "类型不一致", at, ik.String())
	}

	switch ik {
	case value.KindObject:
		return compareObjects(initiative, passive, at)
	case value.KindArray:
		return compareArrays(initiative, passive, at)
	case value.KindString:
		if isBlank(passive.Text()) {
			return failure(ReasonBlankString, "属性类型不能为空", at)
		}
	}

	return equalOutcome()
}

// sizeError 属性数量不一致时，在属性多的一侧找出另一侧没有的属性
// 两侧都有对方没有的属性时，可能找不到并退回到数量不一致
func sizeError(initiative, passive value.Value, at path.Path) Outcome {
	// 被检验对象的属性多
	isMany := initiative.Len() < passive.Len()

	many, less := initiative, passive
	if isMany {
		many, less = passive, initiative
	}

	for _, key := range many.Keys() {
		if _, ok := less.Field(key); ok {
			continue
		}
		if isMany {
			return failure(ReasonExtraProperty, "多了 "+key+" 属性", at)
		}
		return failure(ReasonMissingProperty, "少了 "+key+" 属性", at)
	}

	return failure(ReasonPropertyCount, "属性数量大小不一致", at)
}

// isBlank 空字符串或只包含空白字符
func isBlank(s string) bool {
	for _, r := range s {
		if !isWhitespace(r) {
			return false
		}
	}
	return true
}

// isWhitespace 空白字符的范围：Unicode 空格、行、段落分隔符（不含不换行空格），
// 以及 \t \n \v \f \r 和 U+001C 到 U+001F
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u001c', '\u001d', '\u001e', '\u001f':
		return true
	case '\u00a0', '\u2007', '\u202f':
		return false
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}
