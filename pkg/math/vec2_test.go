package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	got := Vec2{3, 4}.Length()
	if got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	n := Zero.Normalize()
	if n != Zero {
		t.Errorf("Zero.Normalize() = %v, want zero vector", n)
	}
	if math.IsNaN(float64(n.X)) || math.IsNaN(float64(n.Y)) {
		t.Error("Zero.Normalize() produced NaN")
	}
}

func TestVec2NormalizeDiagonal(t *testing.T) {
	n := Vec2{1, 1}.Normalize()
	want := Vec2{0.7071, 0.7071}
	if !n.ApproxEqual(want, 0.001) {
		t.Errorf("Vec2{1,1}.Normalize() = %v, want ~%v", n, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, want float32
	}{
		{-2, -1},
		{-0.5, -0.5},
		{0, 0},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, -1, 1); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
