package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		min, max int
	}{
		{"smaller first", 1, 2, 1, 2},
		{"smaller second", 5, 3, 3, 5},
		{"equal", 4, 4, 4, 4},
		{"negative", -5, -2, -5, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.min, Min(tt.x, tt.y))
			assert.Equal(t, tt.max, Max(tt.x, tt.y))
		})
	}

	assert.Equal(t, float32(1.5), Min(float32(1.5), float32(2.5)))
	assert.Equal(t, uint8(5), Max(uint8(5), uint8(3)))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"below", 10, 20, 40, 20},
		{"inside", 30, 20, 40, 30},
		{"above", 90, 20, 40, 40},
		{"on bound", 40, 20, 40, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}
