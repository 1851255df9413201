package engine

import (
	"fmt"

	"github.com/cwbudde/algo-osc/osc/shape"
)

// Inputs carries one tick's control values from the hardware driver. Pitch
// and the raw/alternate modulation pairs are 12-bit control readings; the
// alternate values are centered, reading 2048 at rest. Trigger fields are
// level signals sampled for rising edges inside Tick.
type Inputs struct {
	Pitch int32

	Mod1, Alt1 int32
	Mod2, Alt2 int32
	AltMode    bool

	Cycle        bool
	BankAdvance  bool
	IndexAdvance bool
}

// Outputs carries one tick's results: the filtered stereo pair and six
// two-state indicator signals, bank one-hot in [0:3] and index one-hot in
// [3:6].
type Outputs struct {
	Left, Right int32
	Indicators  [6]bool
}

// Engine owns all per-voice state: the phase accumulator, the modulation
// channels, the oscillator banks with their selection, and the output
// filters.
type Engine struct {
	phase uint32

	mod1, mod2 modChannel

	sel   selection
	banks [bankCount][]shape.Oscillator

	filterL, filterR onePole
	coeff            int32

	incTable []uint32

	prevCycle, prevBank, prevIndex bool
}

// Option configures an Engine.
type Option func(*Engine) error

// WithFilterCoefficient overrides the Q16 output filter coefficient.
// Range: (0, 65536].
func WithFilterCoefficient(coeff int32) Option {
	return func(e *Engine) error {
		if coeff <= 0 || coeff > 65536 {
			return fmt.Errorf("engine: filter coefficient must be in (0, 65536]: %d", coeff)
		}
		e.coeff = coeff
		return nil
	}
}

// WithIncrementTable replaces the pitch-to-phase-increment table. The pitch
// control is clamped to the table domain before lookup.
func WithIncrementTable(table []uint32) Option {
	return func(e *Engine) error {
		if len(table) == 0 {
			return fmt.Errorf("engine: increment table must not be empty")
		}
		e.incTable = table
		return nil
	}
}

// New returns an engine at bank 0, index 0 with zeroed accumulators.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		coeff:    defaultFilterCoeff,
		incTable: defaultIncTable[:],
	}
	e.banks[BankFunc] = []shape.Oscillator{shape.NewYinYang()}
	e.banks[BankMesh] = []shape.Oscillator{shape.NewCube(), shape.NewCone(), shape.NewIcosphere()}
	e.banks[BankWT] = []shape.Oscillator{shape.NewCalligraphy(), shape.NewRibbon(), shape.NewOutline()}
	for b := range e.banks {
		e.sel.sizes[b] = len(e.banks[b])
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Selection reports the current bank and index.
func (e *Engine) Selection() (Bank, int) {
	return e.sel.bank, e.sel.index
}

// Select jumps directly to a bank and index.
func (e *Engine) Select(bank Bank, index int) error {
	if bank < 0 || bank >= bankCount {
		return fmt.Errorf("engine: bank out of range: %d", bank)
	}
	if index < 0 || index >= e.sel.sizes[bank] {
		return fmt.Errorf("engine: index out of range for bank %d: %d", bank, index)
	}
	e.sel.bank = bank
	e.sel.index = index
	return nil
}

// Tick computes one sample period: front-end, selection, the active
// oscillator, then output conditioning.
func (e *Engine) Tick(in Inputs) Outputs {
	pitch := in.Pitch
	if pitch < 0 {
		pitch = 0
	}
	if int(pitch) >= len(e.incTable) {
		pitch = int32(len(e.incTable) - 1)
	}
	e.phase += e.incTable[pitch]

	m1 := e.mod1.resolve(in.Mod1, in.Alt1, in.AltMode)
	m2 := e.mod2.resolve(in.Mod2, in.Alt2, in.AltMode)

	if in.Cycle && !e.prevCycle {
		e.sel.cycle()
	}
	if in.BankAdvance && !e.prevBank {
		e.sel.advanceBank()
	}
	if in.IndexAdvance && !e.prevIndex {
		e.sel.advanceIndex()
	}
	e.prevCycle, e.prevBank, e.prevIndex = in.Cycle, in.BankAdvance, in.IndexAdvance

	l, r := e.banks[e.sel.bank][e.sel.index].Compute(e.phase, m1, m2)

	var out Outputs
	out.Left = e.filterL.process(l, e.coeff)
	out.Right = e.filterR.process(r, e.coeff)
	out.Indicators[e.sel.bank] = true
	out.Indicators[3+e.sel.index] = true
	return out
}
