package fixp

import "testing"

func TestSineRange(t *testing.T) {
	for ph := uint64(0); ph < 1<<32; ph += 9973 {
		v := Sine(uint32(ph))
		if v < -2048 || v > 2047 {
			t.Fatalf("Sine(%#x) = %d out of Q12 range", ph, v)
		}
	}
}

func TestSineAntisymmetry(t *testing.T) {
	for ph := uint64(0); ph < 1<<32; ph += 65537 {
		a := Sine(uint32(ph))
		b := Sine(uint32(ph) + HalfCycle)
		if d := a + b; d < -2 || d > 2 {
			t.Fatalf("Sine(%#x)=%d, Sine(+half)=%d: sum %d beyond rounding", ph, a, b, d)
		}
	}
}

func TestSineWrapContinuity(t *testing.T) {
	a := Sine(0xFFFFFFFF)
	b := Sine(0)
	if d := a - b; d < -2 || d > 2 {
		t.Fatalf("discontinuity at wrap: Sine(max)=%d Sine(0)=%d", a, b)
	}
}

func TestSineQuadraturePoints(t *testing.T) {
	cases := []struct {
		ph   uint32
		want int32
	}{
		{0, 0},
		{QuarterCycle, 2000},
		{HalfCycle, 0},
		{HalfCycle + QuarterCycle, -2000},
	}
	for _, tc := range cases {
		if got := Sine(tc.ph); got != tc.want {
			t.Errorf("Sine(%#x) = %d, want %d", tc.ph, got, tc.want)
		}
	}
}

func TestCosineIsShiftedSine(t *testing.T) {
	for ph := uint64(0); ph < 1<<32; ph += 1<<24 + 12345 {
		if got, want := Cosine(uint32(ph)), Sine(uint32(ph)+QuarterCycle); got != want {
			t.Fatalf("Cosine(%#x) = %d, want %d", ph, got, want)
		}
	}
}

func TestSaw(t *testing.T) {
	cases := []struct {
		ph   uint32
		want int32
	}{
		{0, 0},
		{0x7FFFFFFF, 2047},
		{HalfCycle, -2048},
		{0xFFFFFFFF, -1},
	}
	for _, tc := range cases {
		if got := Saw(tc.ph); got != tc.want {
			t.Errorf("Saw(%#x) = %d, want %d", tc.ph, got, tc.want)
		}
	}
}

func TestTri(t *testing.T) {
	cases := []struct {
		ph   uint32
		want int32
	}{
		{0, -2048},
		{QuarterCycle, 0},
		{0x7FFFFFFF, 2046},
		{HalfCycle + QuarterCycle, 0},
	}
	for _, tc := range cases {
		if got := Tri(tc.ph); got != tc.want {
			t.Errorf("Tri(%#x) = %d, want %d", tc.ph, got, tc.want)
		}
	}
}

func TestSqr(t *testing.T) {
	if got := Sqr(0); got != -2048 {
		t.Errorf("Sqr(0) = %d, want -2048", got)
	}
	if got := Sqr(HalfCycle); got != 2047 {
		t.Errorf("Sqr(half) = %d, want 2047", got)
	}
	if got := Sqr(HalfCycle - 1); got != -2048 {
		t.Errorf("Sqr(half-1) = %d, want -2048", got)
	}
}

func TestLookupMatchesSine(t *testing.T) {
	for ph := uint64(0); ph < 1<<32; ph += 777773 {
		if got, want := Lookup(uint32(ph), sineTable[:]), Sine(uint32(ph)); got != want {
			t.Fatalf("Lookup(%#x, sine) = %d, Sine = %d", ph, got, want)
		}
	}
}

func TestLookup1024Endpoints(t *testing.T) {
	var table [1024]int16
	for i := range table {
		table[i] = int16(i - 512)
	}
	// Exactly on an entry the blend weight is zero.
	for _, i := range []uint32{0, 1, 511, 1023} {
		want := int32(table[i]) * 65536 >> 20
		if got := Lookup(i<<22, table[:]); got != want {
			t.Errorf("Lookup at entry %d = %d, want %d", i, got, want)
		}
	}
	// The last entry interpolates toward entry 0, not out of bounds.
	last := uint32(1023) << 22
	mid := Lookup(last|1<<21, table[:])
	lo := int32(table[1023]) * 65536 >> 20
	hi := int32(table[0]) * 65536 >> 20
	if (mid < hi && mid < lo) || (mid > hi && mid > lo) {
		t.Errorf("wrap interpolation %d not between %d and %d", mid, lo, hi)
	}
}
