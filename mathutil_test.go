package brokeh

import (
	"math"
	"testing"
)

func TestLerpNormalizeInverse(t *testing.T) {
	tests := []struct {
		v, min, max float64
	}{
		{0, 0, 1},
		{0.25, 0, 1},
		{5, -10, 10},
		{-3.5, -4, 100},
		{199, 50, 200},
		{0.0001, 0.0001, 0.001},
	}
	for _, tt := range tests {
		got := Lerp(Normalize(tt.v, tt.min, tt.max), tt.min, tt.max)
		if math.Abs(got-tt.v) > 1e-9 {
			t.Errorf("Lerp(Normalize(%v, %v, %v)) = %v", tt.v, tt.min, tt.max, got)
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	if got := Lerp(0, 0.1, 1); got != 0.1 {
		t.Errorf("Lerp(0) = %v, want 0.1", got)
	}
	if got := Lerp(1, 0.1, 1); got != 1 {
		t.Errorf("Lerp(1) = %v, want 1", got)
	}
	if got := Normalize(0, -1, 1); got != 0.5 {
		t.Errorf("Normalize(0, -1, 1) = %v, want 0.5", got)
	}
}

func TestFillSquares(t *testing.T) {
	got := Fill(5, func(i int) int { return i * i })
	want := []int{0, 1, 4, 9, 16}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFillZeroNeverCalls(t *testing.T) {
	called := false
	got := Fill(0, func(int) int { called = true; return 0 })
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if called {
		t.Error("fn should not be called for n = 0")
	}
	if got := Fill(-3, func(int) int { called = true; return 0 }); len(got) != 0 || called {
		t.Error("negative n should produce an empty slice without calling fn")
	}
}

func TestRandomUnitBounds(t *testing.T) {
	for i := 0; i < 10000; i++ {
		v := RandomUnit()
		if v < 0 || v >= 1 {
			t.Fatalf("RandomUnit() = %v, want [0, 1)", v)
		}
	}
}

func TestRandomRangeBoundsAndUniformity(t *testing.T) {
	const (
		n    = 20000
		bins = 10
		lo   = 200.0
		hi   = 250.0
	)
	var hist [bins]int
	for i := 0; i < n; i++ {
		v := RandomRange(lo, hi)
		if v < lo || v >= hi {
			t.Fatalf("RandomRange(%v, %v) = %v out of bounds", lo, hi, v)
		}
		hist[int((v-lo)/(hi-lo)*bins)]++
	}
	want := n / bins
	for i, c := range hist {
		// Generous margin: ±20% of the expected bin count.
		if c < want*8/10 || c > want*12/10 {
			t.Errorf("bin %d count = %d, want ~%d", i, c, want)
		}
	}
}

func TestRandomRangeInverted(t *testing.T) {
	for i := 0; i < 10000; i++ {
		v := RandomRange(100, 80)
		if v <= 80 || v > 100 {
			t.Fatalf("RandomRange(100, 80) = %v, want (80, 100]", v)
		}
	}
}

func TestRandomRangeDegenerate(t *testing.T) {
	if got := RandomRange(42, 42); got != 42 {
		t.Errorf("RandomRange(42, 42) = %v, want 42", got)
	}
	if got := (Range{Min: 7, Max: 7}).Random(); got != 7 {
		t.Errorf("Range{7,7}.Random() = %v, want 7", got)
	}
}

func TestRandomChoiceMembershipAndFrequency(t *testing.T) {
	const n = 30000
	set := []string{"a", "b", "c", "d", "e", "f"}
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		v, ok := RandomChoice(set)
		if !ok {
			t.Fatal("RandomChoice reported false for non-empty set")
		}
		counts[v]++
	}
	if len(counts) != len(set) {
		t.Errorf("picked %d distinct values, want %d", len(counts), len(set))
	}
	want := float64(n) / float64(len(set))
	for _, s := range set {
		if dev := math.Abs(float64(counts[s])-want) / want; dev > 0.15 {
			t.Errorf("%q picked %d times, want ~%.0f", s, counts[s], want)
		}
	}
}

func TestRandomChoiceEmpty(t *testing.T) {
	v, ok := RandomChoice([]int(nil))
	if ok {
		t.Error("RandomChoice(nil) should report false")
	}
	if v != 0 {
		t.Errorf("RandomChoice(nil) = %d, want zero value", v)
	}
}

func TestPalettePickIsMember(t *testing.T) {
	for i := 0; i < 1000; i++ {
		hex := DefaultPalette.Pick()
		found := false
		for _, c := range DefaultPalette {
			if c == hex {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Pick() = %q, not in palette", hex)
		}
	}
	if got := (Palette{}).Pick(); got != "#FFFFFF" {
		t.Errorf("empty Pick() = %q, want #FFFFFF", got)
	}
}
