package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration 是可以从 YAML 字符串（如 "400ms"、"20s"）解析的时间长度
type Duration time.Duration

// Std 返回标准库 time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Seconds 返回以秒为单位的浮点值（调度器使用秒作为时间单位）
func (d Duration) Seconds() float64 {
	return time.Duration(d).Seconds()
}

// UnmarshalYAML 实现 yaml.Unmarshaler
// 支持两种写法：Go duration 字符串（"500ms"）或纯数字（按毫秒解释）
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration must be a scalar, got kind %d at line %d", value.Kind, value.Line)
	}

	var ms int64
	if err := value.Decode(&ms); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q at line %d: %w", value.Value, value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
