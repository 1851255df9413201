package shape

import "github.com/cwbudde/algo-osc/osc/fixp"

// StereoTable is a single-cycle stereo wavetable frame.
type StereoTable struct {
	Left, Right [wavetableSize]int16
}

// Morph cross-fades between two stereo wavetables. mod1 grows the figure,
// mod2 blends from table A (0) to table B (4096). The blend runs at 6/8
// gain so morphed intermediates stay inside the output range.
type Morph struct {
	a, b *StereoTable
}

// NewCalligraphy returns the brush-drawn yin/yang morph pair.
func NewCalligraphy() *Morph {
	return &Morph{a: &yinTable, b: &yangTable}
}

// NewRibbon returns the lissajous ribbon morph pair.
func NewRibbon() *Morph {
	return &Morph{a: &ribbonATable, b: &ribbonBTable}
}

// NewOutline returns the rounded-outline morph pair.
func NewOutline() *Morph {
	return &Morph{a: &outlineATable, b: &outlineBTable}
}

// Compute renders one cross-faded stereo sample.
func (o *Morph) Compute(ph uint32, mod1, mod2 int32) (int32, int32) {
	ph = rescalePhase(ph, growScale(mod1))

	if mod2 < 0 {
		mod2 = 0
	}
	if mod2 > growMax {
		mod2 = growMax
	}
	w := mod2 << 4

	al := fixp.Lookup(ph, o.a.Left[:])
	ar := fixp.Lookup(ph, o.a.Right[:])
	bl := fixp.Lookup(ph, o.b.Left[:])
	br := fixp.Lookup(ph, o.b.Right[:])

	left := (al*(65536-w) + bl*w) * 6 >> 19
	right := -((ar*(65536-w) + br*w) * 6 >> 19)
	return left, right
}
