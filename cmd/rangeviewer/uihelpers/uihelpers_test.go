package uihelpers

import (
	"math"
	"testing"
)

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		in    int
		wantW int
	}{
		{100, 700},
		{699, 700},
		{700, 700},
		{1400, 1400},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.in)
		if w != c.wantW {
			t.Fatalf("input %d => width %d want %d", c.in, w, c.wantW)
		}
		if h < 260 || h > 480 {
			t.Fatalf("height clamp violated for input %d => h=%d", c.in, h)
		}
	}
}

func TestBuildNumericTicksSpansDomain(t *testing.T) {
	ticks := BuildNumericTicks(0, 93, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected >=2 ticks, got %d", len(ticks))
	}
	if ticks[0] > 0 {
		t.Fatalf("first tick should not exceed domain min: %v", ticks[0])
	}
	if ticks[len(ticks)-1] < 93 {
		t.Fatalf("last tick should cover domain max: %v", ticks[len(ticks)-1])
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] <= ticks[i-1] {
			t.Fatalf("ticks not ascending: %v", ticks)
		}
	}
}

func TestBuildNumericTicksDegenerate(t *testing.T) {
	ticks := BuildNumericTicks(5, 5, 6)
	if len(ticks) < 2 {
		t.Fatalf("degenerate domain should still yield ticks, got %v", ticks)
	}
	if BuildNumericTicks(0, 10, 1) != nil {
		t.Fatalf("n<2 should yield nil")
	}
	if BuildNumericTicks(math.NaN(), 10, 5) != nil {
		t.Fatalf("NaN bounds should yield nil")
	}
}

func TestFormatTick(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1000, "1000"},
		{150, "150"},
		{12.34, "12.3"},
		{1.234, "1.23"},
	}
	for _, c := range cases {
		if got := FormatTick(c.in); got != c.want {
			t.Fatalf("FormatTick(%v) = %q want %q", c.in, got, c.want)
		}
	}
}
