package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 1 - 0.125 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestClamp 测试区间限制
func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected float64
	}{
		{"区间内", 0.5, 0.5},
		{"低于下限", -1, 0},
		{"高于上限", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, 0, 1); got != tt.expected {
				t.Errorf("Clamp(%v, 0, 1) = %v, 期望 %v", tt.v, got, tt.expected)
			}
		})
	}
}

// TestApproachThreshold 测试带阈值的逐帧插值
func TestApproachThreshold(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		target    float64
		expected  float64
		wantReach bool
	}{
		{"远离目标时按比例移动", 0, 10, 1, false},
		{"负方向移动", 10, 0, 9, false},
		{"阈值内直接对齐", 9.9995, 10, 10, true},
		{"已在目标", 10, 10, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reached := ApproachThreshold(tt.current, tt.target, 0.1, 0.001)
			if math.Abs(got-tt.expected) > 1e-9 || reached != tt.wantReach {
				t.Errorf("ApproachThreshold(%v, %v) = (%v, %v), 期望 (%v, %v)",
					tt.current, tt.target, got, reached, tt.expected, tt.wantReach)
			}
		})
	}

	t.Run("有限帧内收敛", func(t *testing.T) {
		v := 0.0
		for frame := 0; frame < 1000; frame++ {
			var reached bool
			if v, reached = ApproachThreshold(v, 5, 0.06, 0.001); reached {
				return
			}
		}
		t.Errorf("1000 帧后仍未到达目标，当前值 %v", v)
	})
}

// TestDecay 测试指数衰减的单调性
func TestDecay(t *testing.T) {
	v := 1.5
	for frame := 0; frame < 500; frame++ {
		next := Decay(v, 0.9)
		if math.Abs(next) > math.Abs(v) {
			t.Fatalf("第 %d 帧幅度增大: %v -> %v", frame, v, next)
		}
		v = next
	}
	if v != 0 {
		t.Errorf("500 帧后应衰减到 0，实际 %v", v)
	}

	if got := Decay(-0.5, 0.5); got != -0.25 {
		t.Errorf("Decay(-0.5, 0.5) = %v, 期望 -0.25", got)
	}
}
