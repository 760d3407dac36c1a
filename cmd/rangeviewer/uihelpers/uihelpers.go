package uihelpers

import (
	"fmt"
	"math"
)

// ComputeChartDimensions applies the width/height clamp rules used for the
// stacked charts. Input: desired raw width (e.g. window canvas width).
// Returns clamped width and height for one chart panel.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 700 {
		w = 700
	}
	h := int(float32(w) * 0.38)
	if h < 260 {
		h = 260
	}
	if h > 480 {
		h = 480
	}
	return w, h
}

// BuildNumericTicks generates up to n tick positions spanning [min,max] using
// a 1, 2, 2.5, 5 step pattern scaled by powers of ten. Label formatting is
// left to the caller.
func BuildNumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := pow10Floor(span / float64(n-1))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for v := start; v <= end+bestStep/2; v += bestStep {
		out = append(out, round6(v))
		if len(out) > n+2 {
			break
		}
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

// FormatTick renders a tick value with precision scaled to its magnitude.
func FormatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// pow10Floor returns 10^floor(log10(x)) safeguarding tiny values.
func pow10Floor(x float64) float64 {
	if x <= 0 {
		return 1
	}
	e := math.Floor(math.Log10(x))
	return math.Pow(10, e)
}

// round6 rounds to 6 decimal places to stabilize labels and comparisons.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }
