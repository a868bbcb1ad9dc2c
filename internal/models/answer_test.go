package models

import "testing"

func TestPercentTrue(t *testing.T) {
	cases := []struct {
		name             string
		trueCount, total int
		want             int
	}{
		{"no answers", 0, 0, 0},
		{"all yes", 1, 1, 100},
		{"all no", 0, 5, 0},
		{"three of four", 3, 4, 75},
		{"one of three", 1, 3, 33},
		{"two of three", 2, 3, 67},
		{"half rounds up", 1, 8, 13},
		{"negative total", 1, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PercentTrue(tc.trueCount, tc.total); got != tc.want {
				t.Fatalf("PercentTrue(%d, %d) = %d; want %d", tc.trueCount, tc.total, got, tc.want)
			}
		})
	}
}
