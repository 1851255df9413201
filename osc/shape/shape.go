// Package shape implements the oscillator variants of the multi-shape
// voltage-controlled oscillator core.
//
// Every variant satisfies [Oscillator]: given the primary phase and two
// modulation values it produces one stereo Q12 sample pair per call, in
// bounded constant time without allocating. mod1 is a grow/zoom control
// clamped to [0, 4096] before use; mod2 drives rotation or morphing and may
// take any value. Variants that rotate keep a private rotation phase that
// accumulates across calls and wraps like any other phase.
package shape

// Oscillator is the capability shared by all shape variants.
type Oscillator interface {
	// Compute produces the stereo sample pair for one tick. ph is the
	// primary phase; mod1 and mod2 are the resolved modulation values.
	Compute(ph uint32, mod1, mod2 int32) (left, right int32)
}

const (
	growMax   = 4096
	modCenter = 2048
)

// growScale clamps a grow control to [0, growMax] and widens it to a 32-bit
// phase scale factor. The ceiling saturates to full scale; shifting 4096 up
// by 20 would wrap to zero.
func growScale(mod int32) uint32 {
	if mod < 0 {
		mod = 0
	}
	if mod >= growMax {
		return 0xFFFFFFFF
	}
	return uint32(mod) << 20
}

// rescalePhase multiplies a phase by a 32-bit scale through a 64-bit
// intermediate, keeping the top word.
func rescalePhase(ph, scale uint32) uint32 {
	return uint32((uint64(ph) * uint64(scale)) >> 32)
}

// clampSample folds a rotated coordinate back into the Q12 sample range.
func clampSample(v int32) int32 {
	if v > 2047 {
		return 2047
	}
	if v < -2048 {
		return -2048
	}
	return v
}
