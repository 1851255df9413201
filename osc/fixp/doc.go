// Package fixp provides the fixed-point waveform primitives used by the
// oscillator shapes.
//
// All functions take a 32-bit phase accumulator whose full range [0, 2^32)
// represents exactly one cycle, and return a signed Q12 sample in
// [-2048, 2047]. Phase wrap-around is plain two's-complement overflow; it is
// the cycle boundary, not an error. The call path is integer-only and
// allocation-free; the shared sine table is built once at startup.
package fixp
