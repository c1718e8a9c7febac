package mandel

import (
	"context"
	"errors"
	"math/cmplx"
	"slices"
	"testing"
)

func TestEscapeTimeOutsideRadiusIsZero(t *testing.T) {
	for _, c := range []complex128{3 + 3i, -2.5, 2.0001i, 100 - 100i, complex(-1.5, 1.5)} {
		if cmplx.Abs(c) <= 2 {
			t.Fatalf("bad fixture %v", c)
		}
		for _, limit := range []int{1, 2, 20, 1000} {
			if got := EscapeTime(c, limit); got != 0 {
				t.Fatalf("EscapeTime(%v, %d): want 0 got %d", c, limit, got)
			}
		}
	}
}

func TestEscapeTimeOriginNeverEscapes(t *testing.T) {
	for _, limit := range []int{1, 2, 5, 20, 500} {
		if got := EscapeTime(0, limit); got != limit-1 {
			t.Fatalf("EscapeTime(0, %d): want %d got %d", limit, limit-1, got)
		}
	}
}

func TestEscapeTimeKnownOrbits(t *testing.T) {
	tests := []struct {
		c     complex128
		limit int
		want  int
	}{
		{-0.5, 20, 19},
		{-1, 20, 19}, // period-2 cycle 0,-1
		{-2, 20, 19}, // tip of the real axis, |z| stays 2
		{1, 20, 1},   // 1, 2, 5: |5| > 2 on the second update
		{0.5, 20, 3}, // 0.5, 0.75, 1.0625, 1.6289, 3.153
		{3 + 3i, 20, 0},
	}
	for _, tt := range tests {
		if got := EscapeTime(tt.c, tt.limit); got != tt.want {
			t.Fatalf("EscapeTime(%v, %d): want %d got %d", tt.c, tt.limit, tt.want, got)
		}
	}
}

func TestEscapeTimesRejectsNonPositiveLimit(t *testing.T) {
	for _, limit := range []int{0, -1, -20} {
		_, err := EscapeTimes([]complex128{0, 1}, limit)
		if !errors.Is(err, ErrInvalidLimit) {
			t.Fatalf("limit %d: want ErrInvalidLimit got %v", limit, err)
		}
	}
}

func TestEscapeTimesContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := EscapeTimesContext(ctx, []complex128{0, 1}, 1<<30); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled got %v", err)
	}
	got, err := EscapeTimesContext(context.Background(), []complex128{0, 3}, 10)
	if err != nil || !slices.Equal(got, []int{9, 0}) {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestEscapeTimesShapeAndPurity(t *testing.T) {
	g, err := NewGrid(RegionAround(0, 0, 4, 4), 17, 13)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	C := g.Points()
	orig := slices.Clone(C)

	first, err := EscapeTimes(C, 30)
	if err != nil {
		t.Fatalf("EscapeTimes: %v", err)
	}
	if len(first) != len(C) {
		t.Fatalf("length: want %d got %d", len(C), len(first))
	}
	if !slices.Equal(C, orig) {
		t.Fatalf("input grid was modified")
	}

	second, err := EscapeTimes(slices.Clone(orig), 30)
	if err != nil {
		t.Fatalf("EscapeTimes: %v", err)
	}
	if !slices.Equal(first, second) {
		t.Fatalf("results differ between calls")
	}
	for i, v := range first {
		if v < 0 || v > 29 {
			t.Fatalf("value %d at %d outside [0, limit-1]", v, i)
		}
	}

	empty, err := EscapeTimes(nil, 5)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty input: got %v, %v", empty, err)
	}
}

func TestEscapeTimesMonotonicInLimit(t *testing.T) {
	g, err := NewGrid(RegionAround(-0.5, 0, 3, 3), 40, 40)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	C := g.Points()
	small, _ := EscapeTimes(C, 10)
	large, _ := EscapeTimes(C, 50)
	for i := range C {
		if small[i] < 9 {
			// escaped under the smaller budget: unchanged
			if large[i] != small[i] {
				t.Fatalf("%v: escaped at %d, larger limit gave %d", C[i], small[i], large[i])
			}
			continue
		}
		if large[i] < small[i] {
			t.Fatalf("%v: escape time decreased from %d to %d", C[i], small[i], large[i])
		}
	}
}
