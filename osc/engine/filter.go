package engine

// defaultFilterCoeff is the Q16 one-pole coefficient, tuned to sit just
// under the Nyquist corner at a 48 kHz sample rate.
const defaultFilterCoeff = 0xE000

// onePole is a one-pole low-pass smoothing the DAC output. State persists
// for the life of the engine; it starts at zero and is never reset.
type onePole struct {
	state int32
}

func (f *onePole) process(sample, coeff int32) int32 {
	f.state += ((sample - f.state) * coeff) >> 16
	return f.state
}
