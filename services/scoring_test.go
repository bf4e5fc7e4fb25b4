package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 { return &v }

func TestCalculateScoreBaseOnly(t *testing.T) {
	tests := []struct {
		name     string
		cost     float64
		estimate float64
		want     float64
	}{
		{"positive base", 20, 80, 60.0},
		{"zero base", 50, 50, 0.0},
		{"negative base", 80, 20, -60.0},
		{"best possible", 0, 100, 100.0},
		{"worst possible", 100, 0, -100.0},
		{"fractional", 10.3, 55.8, 45.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateScore(tt.cost, tt.estimate, nil, nil, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateScoreWithConditions(t *testing.T) {
	// conditions*0.6 + base*0.4, any subset of sub-scores
	tests := []struct {
		name              string
		cost, estimate    float64
		swell, wind, tide *float64
		want              float64
	}{
		{"all three", 20, 80, fp(10), fp(20), fp(30), 36.0},  // mean 20 -> 12 + 24
		{"swell only", 20, 80, fp(50), nil, nil, 54.0},       // 30 + 24
		{"wind only", 20, 80, nil, fp(50), nil, 54.0},
		{"tide only", 20, 80, nil, nil, fp(50), 54.0},
		{"swell and tide", 20, 80, fp(40), nil, fp(60), 54.0}, // mean 50
		{"perfect day", 0, 100, fp(100), fp(100), fp(100), 100.0},
		{"zero sub-score still counts", 20, 80, fp(0), nil, nil, 24.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateScore(tt.cost, tt.estimate, tt.swell, tt.wind, tt.tide)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Rounding is half away from zero: 7.25 rounds to 7.3, not to the even
// 7.2. Stored scores depend on this, so it is pinned here.
func TestCalculateScoreRoundingHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 7.3, CalculateScore(0, 7.25, nil, nil, nil))
	assert.Equal(t, -7.3, CalculateScore(7.25, 0, nil, nil, nil))
	assert.Equal(t, 7.8, CalculateScore(0, 7.75, nil, nil, nil))
}

func TestCalculateScoreIsPure(t *testing.T) {
	first := CalculateScore(12.5, 77.5, fp(3), nil, fp(7))
	second := CalculateScore(12.5, 77.5, fp(3), nil, fp(7))
	assert.Equal(t, first, second)
}
