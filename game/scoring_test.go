package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		finishTime *float64
		want       int
	}{
		{"dnf scores zero", nil, 0},
		{"instant finish", ptr(0), 100},
		{"fractional seconds floor", ptr(23.4), 77},
		{"just under a second", ptr(0.999), 100},
		{"exactly at the cap", ptr(100), 0},
		{"slower than the cap", ptr(250.7), 0},
		{"negative time clamps to max", ptr(-3), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.finishTime))
		})
	}
}

func TestScoreBoundsAndMonotonicity(t *testing.T) {
	prev := Score(ptr(0))
	for tenths := 0; tenths <= 1200; tenths++ {
		s := Score(ptr(float64(tenths) / 10))
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
		assert.LessOrEqual(t, s, prev, "score must not increase with finish time")
		prev = s
	}
}
