package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", NewVec3(1, 2, 3).Add(NewVec3(0.5, -2, 1)), NewVec3(1.5, 0, 4)},
		{"Subtract", NewVec3(1, 2, 3).Subtract(NewVec3(1, 1, 1)), NewVec3(0, 1, 2)},
		{"Multiply", NewVec3(1, -2, 0.5).Multiply(4), NewVec3(4, -8, 2)},
		{"Lerp halfway", NewVec3(0, 10, 2).Add(NewVec3(4, 0, 2).Subtract(NewVec3(0, 10, 2)).Multiply(0.5)), NewVec3(2, 5, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_ColorHelpers(t *testing.T) {
	c := NewVec3(0.2, 1.5, -0.3)

	assert.Equal(t, NewVec3(0.2, 1, 0), c.Clamp(0, 1))
	assert.Equal(t, [3]float32{0.2, 1.5, -0.3}, c.Float32())
}
