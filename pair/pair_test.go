package pair

import (
	"strings"
	"testing"
)

func TestOrdering(t *testing.T) {
	for _, tc := range []struct {
		a, b Pair[string, int]
		cmp  int
	}{
		{Make("a", 1), Make("a", 1), 0},
		{Make("a", 1), Make("a", 2), -1},
		{Make("a", 9), Make("b", 0), -1},
		{Make("b", 0), Make("a", 9), 1},
	} {
		if c := Compare(tc.a, tc.b); c != tc.cmp {
			t.Errorf("Compare(%v, %v) = %d, expected %d", tc.a, tc.b, c, tc.cmp)
		}
		if Less(tc.a, tc.b) != (tc.cmp < 0) {
			t.Errorf("Less(%v, %v) disagrees with Compare", tc.a, tc.b)
		}
		if Equal(tc.a, tc.b) != (tc.cmp == 0) {
			t.Errorf("Equal(%v, %v) disagrees with Compare", tc.a, tc.b)
		}
	}
}

func TestCompareFunc(t *testing.T) {
	fold := func(x, y string) int { return strings.Compare(strings.ToLower(x), strings.ToLower(y)) }
	rev := func(x, y int) int { return y - x }
	if c := CompareFunc(Make("A", 1), Make("a", 2), fold, rev); c <= 0 {
		t.Errorf("expected (A, 1) > (a, 2) with reversed second order, have %d", c)
	}
	p := Make("k", 3.5)
	if k, v := p.Values(); k != "k" || v != 3.5 || p.String() != "(k, 3.5)" {
		t.Errorf("unexpected components or format %s", p)
	}
}
