package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GoalValue 目标值，可以是数字也可以是任意文本（例如用户尚未填写时的空串）。
// 数字形式序列化为 JSON number，其余序列化为 JSON string。
type GoalValue string

// NumberValue 由数字构造 GoalValue
func NumberValue(f float64) GoalValue {
	return GoalValue(strconv.FormatFloat(f, 'f', -1, 64))
}

// Float 解析为数字，空串或无法解析时 ok 为 false
func (v GoalValue) Float() (float64, bool) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Number 无法解析时按 0 处理
func (v GoalValue) Number() float64 {
	f, _ := v.Float()
	return f
}

func (v GoalValue) MarshalJSON() ([]byte, error) {
	// 只有规范数字文本才写成 number，保证读写往返后值不变
	if f, ok := v.Float(); ok && NumberValue(f) == v {
		return []byte(string(v)), nil
	}
	return json.Marshal(string(v))
}

func (v *GoalValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = GoalValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("goal value must be a number or a string: %w", err)
	}
	f, err := n.Float64()
	if err != nil {
		return err
	}
	*v = NumberValue(f)
	return nil
}
