package textmatch_test

import (
	"math"
	"testing"

	"github.com/shashiranjanraj/freshbasket/pkg/textmatch"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRatioKnownValues(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "tomatoes", "tomatoes", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "milk", "", 0.0},
		{"no overlap", "abc", "xyz", 0.0},
		// longest common blocks of "abcd"/"bcde" cover "bcd": 2*3/8.
		{"shifted", "abcd", "bcde", 0.75},
		// "tomatoes" inside "fresh tomatoes": 2*8/22.
		{"substring", "tomatoes", "fresh tomatoes", 16.0 / 22.0},
		{"single char runs", "aXbXc", "abc", 6.0 / 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textmatch.Ratio(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatioBounds(t *testing.T) {
	pairs := [][2]string{
		{"full cream milk", "milk"},
		{"banana", "bandana"},
		{"", "x"},
		{"greek yogurt 500g", "yogurt"},
	}

	for _, p := range pairs {
		r := textmatch.Ratio(p[0], p[1])
		if r < 0 || r > 1 {
			t.Errorf("Ratio(%q, %q) = %v out of [0,1]", p[0], p[1], r)
		}
	}
}

func TestRatioSymmetricForEqualLengths(t *testing.T) {
	// The matched character count is symmetric, so for equal-length inputs
	// the ratio must be too.
	a, b := "basmati", "bastmai"
	if textmatch.Ratio(a, b) != textmatch.Ratio(b, a) {
		t.Errorf("ratio not symmetric for %q / %q", a, b)
	}
}

func TestRatioDeterministic(t *testing.T) {
	a, b := "fresh red tomatoes", "tomato paste"
	first := textmatch.Ratio(a, b)
	for i := 0; i < 100; i++ {
		if got := textmatch.Ratio(a, b); got != first {
			t.Fatalf("ratio changed between calls: %v vs %v", got, first)
		}
	}
}
