package shape

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Single-cycle stereo wavetable assets for the morph oscillators. The
// hardware builds ship these as precomputed constants resampled from
// recorded source material; here the same frames are synthesized once at
// startup, normalized to the full int16 range exactly like the asset
// pipeline does.

const wavetableSize = 1024

var (
	yinTable      StereoTable
	yangTable     StereoTable
	ribbonATable  StereoTable
	ribbonBTable  StereoTable
	outlineATable StereoTable
	outlineBTable StereoTable
)

func init() {
	fillStereoTable(&yinTable, func(t float64) (float64, float64) {
		// brush stroke spiraling into the upper half
		env := 0.5 + 0.5*math.Sin(math.Pi*t)
		return math.Sin(2 * math.Pi * t) * env, math.Cos(2*math.Pi*t) * env
	})
	fillStereoTable(&yangTable, func(t float64) (float64, float64) {
		env := 0.5 + 0.5*math.Cos(math.Pi*t)
		return -math.Sin(2*math.Pi*t) * env, -math.Cos(2*math.Pi*t) * env
	})
	fillStereoTable(&ribbonATable, func(t float64) (float64, float64) {
		return math.Sin(2 * math.Pi * t), math.Sin(4 * math.Pi * t)
	})
	fillStereoTable(&ribbonBTable, func(t float64) (float64, float64) {
		return math.Sin(2 * math.Pi * t), math.Sin(6*math.Pi*t + math.Pi/2)
	})
	fillStereoTable(&outlineATable, func(t float64) (float64, float64) {
		// rounded square: overdriven circle, soft-limited
		return softClip(1.6 * math.Sin(2*math.Pi*t)), softClip(1.6 * math.Cos(2*math.Pi*t))
	})
	fillStereoTable(&outlineBTable, func(t float64) (float64, float64) {
		return math.Sin(2 * math.Pi * t), math.Cos(2 * math.Pi * t)
	})
}

func softClip(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return 1.5*x - 0.5*x*x*x
}

// fillStereoTable samples f over one cycle and quantizes both channels to
// the full int16 range.
func fillStereoTable(dst *StereoTable, f func(t float64) (l, r float64)) {
	left := make([]float64, wavetableSize)
	right := make([]float64, wavetableSize)
	for i := range left {
		left[i], right[i] = f(float64(i) / wavetableSize)
	}
	quantize(dst.Left[:], left)
	quantize(dst.Right[:], right)
}

// quantize normalizes src to a 32767 peak and rounds into dst.
func quantize(dst []int16, src []float64) {
	maxAbs := 0.0
	for _, v := range src {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	scaled := make([]float64, len(src))
	vecmath.ScaleBlock(scaled, src, 32767/maxAbs)
	for i, v := range scaled {
		dst[i] = int16(math.Round(v))
	}
}
