package shape

import "github.com/cwbudde/algo-osc/osc/fixp"

// YinYang traces a yin-yang glyph outline from sine arc pairs. The scaled
// cycle is split into a three-arc body over the first three quadrants and a
// quarter-amplitude eye in the last; the top bit of the unscaled phase
// mirrors the figure to draw both halves.
type YinYang struct {
	phRot uint32
}

// NewYinYang returns a yin-yang oscillator with zero rotation.
func NewYinYang() *YinYang {
	return &YinYang{}
}

// Compute renders one sample of the glyph. mod1 grows the figure, mod2 sets
// the rotation rate around the center of its range.
func (o *YinYang) Compute(ph uint32, mod1, mod2 int32) (int32, int32) {
	o.phRot += uint32(mod2-modCenter) << 11

	grow := growScale(mod1)

	sign := int32(1)
	if ph>>31 != 0 {
		sign = -1
	}
	phAll := rescalePhase(ph*2, grow)

	var x0, y0 int32
	if phAll>>30 == 3 {
		// eye, last quarter of the scaled cycle
		phEye := phAll << 2
		x0 = fixp.Sine(phEye*2) >> 2
		y0 = -(fixp.Sine(phEye*2+fixp.QuarterCycle) >> 2) + 1024
	} else {
		// body, three arcs spread over the remaining quarters via a
		// fixed-point divide by three
		phBody := uint32((uint64(phAll) * 0x55555556) >> 30)
		switch phBody >> 30 {
		case 0:
			x0 = fixp.Sine(phBody*2) >> 1
			y0 = -(fixp.Sine(phBody*2+fixp.QuarterCycle) >> 1) + 1024
		case 1, 2:
			x0 = -fixp.Sine(phBody - fixp.QuarterCycle)
			y0 = fixp.Sine(phBody)
		case 3:
			x0 = fixp.Sine(phBody*2) >> 1
			y0 = (fixp.Sine(phBody*2+fixp.QuarterCycle) >> 1) - 1024
		}
	}

	x := int64(sign) * int64(x0)
	y := int64(sign) * int64(y0+8)

	s := int64(fixp.Sine(o.phRot))
	c := int64(fixp.Cosine(o.phRot))

	return clampSample(int32((x*s + y*c) >> 11)),
		clampSample(int32((x*c - y*s) >> 11))
}
