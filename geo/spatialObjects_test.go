package geo

import (
	"math"
	"testing"
)

func rect(loLat, loLong, hiLat, hiLong int32) Rect {
	r, err := NewRect([Dims]Coord{loLat, loLong}, [Dims]Coord{hiLat, hiLong})
	if err != nil {
		panic(err)
	}
	return r
}

func TestNewRect(t *testing.T) {
	cases := []struct {
		lo, hi      [Dims]Coord
		expectedErr bool
	}{
		{[Dims]Coord{0, 0}, [Dims]Coord{0, 0}, false},
		{[Dims]Coord{-90, -180}, [Dims]Coord{90, 180}, false},
		{[Dims]Coord{0, 0}, [Dims]Coord{-1, 0}, true},
		{[Dims]Coord{0, 0}, [Dims]Coord{0, -1}, true},
	}
	for _, c := range cases {
		_, err := NewRect(c.lo, c.hi)
		if (err != nil) != c.expectedErr {
			t.Log("ERROR: case", c, "got err", err)
			t.Fail()
		}
	}
}

func TestOverlap(t *testing.T) {
	cases := []struct {
		a, b     Rect
		expected bool
	}{
		{rect(0, 0, 0, 0), rect(0, 0, 0, 0), true},               // two points, same
		{rect(-5, -5, 5, 5), rect(10, -5, 20, 5), false},          // disjoint
		{rect(0, 0, 1, 1), rect(1, 0, 2, 1), true},                // touch at an edge
		{rect(0, 0, 1, 5), rect(-1, 2, 1, 3), true},               // cross
		{rect(-2, -2, 0, 0), rect(-1, -1, 1, 1), true},            // overlap
		{rect(0, 0, 1, 1), rect(2, 0, 3, 1), false},               // above
	}
	for _, c := range cases {
		if got := Overlap(c.a, c.b); got != c.expected {
			t.Log("ERROR: Overlap(", c.a, c.b, ") =", got, "want", c.expected)
			t.Fail()
		}
		if got := Overlap(c.b, c.a); got != c.expected {
			t.Log("ERROR: Overlap is not symmetric for", c.a, c.b)
			t.Fail()
		}
	}
}

func TestWithin(t *testing.T) {
	outer := rect(-10, -10, 10, 10)
	cases := []struct {
		r        Rect
		expected bool
	}{
		{rect(0, 0, 0, 0), true},
		{rect(-10, -10, 10, 10), true},
		{rect(-11, 0, 0, 0), false},
		{rect(0, 0, 11, 0), false},
	}
	for _, c := range cases {
		if got := Within(c.r, outer); got != c.expected {
			t.Log("ERROR: Within(", c.r, outer, ") =", got, "want", c.expected)
			t.Fail()
		}
	}
}

func TestVolume(t *testing.T) {
	cases := []struct {
		r        Rect
		expected float64
	}{
		{rect(0, 0, 0, 0), 1},       // point: (0+1)*(0+1)
		{rect(0, 0, 1, 1), 4},       // (1+1)*(1+1)
		{rect(0, 0, 9, 0), 10},      // line: (9+1)*(0+1)
		{rect(-5, -5, 5, 5), 121},   // (10+1)*(10+1)
	}
	for _, c := range cases {
		got, err := Volume(c.r)
		if err != nil {
			t.Log("ERROR: unexpected error", err)
			t.Fail()
			continue
		}
		if got != c.expected {
			t.Log("ERROR: Volume(", c.r, ") =", got, "want", c.expected)
			t.Fail()
		}
	}
}

func TestVolumeOverflow(t *testing.T) {
	huge := rect(math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32)
	if _, err := safeMultiply(math.MaxFloat64, math.MaxFloat64); err != ErrOverflow {
		t.Log("ERROR: expected safeMultiply to report overflow")
		t.Fail()
	}
	// A rectangle spanning the whole int32 range in both dimensions has a
	// volume of about 1.8e19, far inside float64's range, so Volume must
	// not report overflow for it.
	if _, err := Volume(huge); err != nil {
		t.Log("ERROR: unexpected overflow for a merely very large rectangle:", err)
		t.Fail()
	}
}

func TestMBR(t *testing.T) {
	cases := []struct {
		rects    []Rect
		expected Rect
	}{
		{[]Rect{rect(0, 0, 1, 1), rect(1, 0, 2, 1)}, rect(0, 0, 2, 1)},
		{[]Rect{rect(0, 0, 0, 0)}, rect(0, 0, 0, 0)},
	}
	for _, c := range cases {
		if got := MBR(c.rects...); got != c.expected {
			t.Log("ERROR: MBR(", c.rects, ") =", got, "want", c.expected)
			t.Fail()
		}
	}
}

func TestEnlargement(t *testing.T) {
	base := rect(0, 0, 1, 1)
	same, err := Enlargement(base, base)
	if err != nil || same != 0 {
		t.Log("ERROR: enlarging by an identical rect should be 0, got", same, err)
		t.Fail()
	}
	bigger, err := Enlargement(base, rect(0, 0, 2, 1))
	if err != nil {
		t.Log("ERROR:", err)
		t.Fail()
	}
	if bigger <= 0 {
		t.Log("ERROR: expected positive enlargement, got", bigger)
		t.Fail()
	}
}
