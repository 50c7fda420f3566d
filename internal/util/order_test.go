package util

import (
	"reflect"
	"testing"
)

func TestSpliceMove(t *testing.T) {
	base := []string{"a", "b", "c", "d"}

	cases := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"backward", 3, 0, []string{"d", "a", "b", "c"}},
		{"adjacent", 1, 2, []string{"a", "c", "b", "d"}},
		{"same index", 2, 2, []string{"a", "b", "c", "d"}},
		{"from out of range", 9, 1, []string{"a", "b", "c", "d"}},
		{"to out of range", 1, 9, []string{"a", "b", "c", "d"}},
		{"negative", -1, 2, []string{"a", "b", "c", "d"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SpliceMove(base, tc.from, tc.to)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SpliceMove(%v, %d, %d) = %v, want %v", base, tc.from, tc.to, got, tc.want)
			}
		})
	}

	// The input slice is never mutated.
	SpliceMove(base, 0, 3)
	if !reflect.DeepEqual(base, []string{"a", "b", "c", "d"}) {
		t.Fatalf("input mutated: %v", base)
	}
}
