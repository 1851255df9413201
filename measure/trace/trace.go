package trace

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"

	"github.com/cwbudde/algo-osc/osc/shape"
)

// Render steps o through one full phase cycle in n equal increments with
// fixed modulation values and returns both channels scaled to [-1, 1].
func Render(o shape.Oscillator, n int, mod1, mod2 int32) (left, right []float64, err error) {
	if o == nil {
		return nil, nil, fmt.Errorf("trace: oscillator must not be nil")
	}
	if n <= 0 {
		return nil, nil, fmt.Errorf("trace: sample count must be > 0: %d", n)
	}

	left = make([]float64, n)
	right = make([]float64, n)

	step := uint32(uint64(1<<32) / uint64(n))
	ph := uint32(0)
	for i := 0; i < n; i++ {
		l, r := o.Compute(ph, mod1, mod2)
		left[i] = float64(l) / 2048
		right[i] = float64(r) / 2048
		ph += step
	}
	return left, right, nil
}

// Result summarizes one rendered channel.
type Result struct {
	Peak             float64
	DCOffset         float64
	FundamentalBin   int
	FundamentalLevel float64
}

// Analyze applies a Hann window, transforms the signal and reports the
// peak, the DC offset and the strongest non-DC spectral bin.
func Analyze(x []float64) (Result, error) {
	if len(x) == 0 {
		return Result{}, fmt.Errorf("trace: input must not be empty")
	}

	var res Result
	sum := 0.0
	for _, v := range x {
		sum += v
		if a := math.Abs(v); a > res.Peak {
			res.Peak = a
		}
	}
	res.DCOffset = sum / float64(len(x))

	fftSize := nextPowerOf2(len(x))
	coeffs := window.Generate(window.TypeHann, len(x))

	in := make([]complex128, fftSize)
	for i := range x {
		in[i] = complex(x[i]*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("trace: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("trace: fft: %w", err)
	}

	mags := spectrum.Magnitude(out[:fftSize/2+1])
	for bin := 1; bin < len(mags); bin++ {
		if mags[bin] > res.FundamentalLevel {
			res.FundamentalLevel = mags[bin]
			res.FundamentalBin = bin
		}
	}
	return res, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
