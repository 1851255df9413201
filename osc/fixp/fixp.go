package fixp

import (
	"math"
	"math/bits"
)

// Phase offsets for common waveform relationships.
const (
	QuarterCycle uint32 = 0x40000000
	HalfCycle    uint32 = 0x80000000
)

const (
	sineTableSize = 512
	sineTableMask = sineTableSize - 1
	sineAmplitude = 32000
)

var sineTable [sineTableSize]int16

func init() {
	for i := range sineTable {
		sineTable[i] = int16(sineAmplitude * math.Sin(2*math.Pi*float64(i)/sineTableSize))
	}
}

// Sine returns one sine period over the full phase range, linearly
// interpolated from the 512-entry table. The top 9 phase bits select the
// table index, the next 16 bits weight the blend with the neighboring entry.
func Sine(ph uint32) int32 {
	index := ph >> 23
	r := int32((ph & 0x7FFFFF) >> 7)
	s1 := int32(sineTable[index])
	s2 := int32(sineTable[(index+1)&sineTableMask])
	return (s2*r + s1*(65536-r)) >> 20
}

// Cosine is Sine advanced by a quarter cycle.
func Cosine(ph uint32) int32 {
	return Sine(ph + QuarterCycle)
}

// Saw returns a linear ramp across [-2048, 2047).
func Saw(ph uint32) int32 {
	return int32(ph) >> 20
}

// Tri returns a symmetric triangle derived from the saw ramp.
func Tri(ph uint32) int32 {
	v := int32(ph) >> 20
	if v < 0 {
		v = -v
	}
	return (v - 1024) << 1
}

// Sqr returns one of two fixed levels selected by the top phase bit.
func Sqr(ph uint32) int32 {
	if ph&HalfCycle != 0 {
		return 2047
	}
	return -2048
}

// Lookup interpolates a power-of-two sized int16 table by phase, using the
// same index/fraction discipline as Sine generalized to the table length.
// The table length must be a power of two in [4, 65536]; both indices are
// masked, so any phase value is safe.
func Lookup(ph uint32, table []int16) int32 {
	mask := uint32(len(table)) - 1
	shift := uint(32 - bits.TrailingZeros32(uint32(len(table))))
	index := ph >> shift
	r := int32((ph & (1<<shift - 1)) >> (shift - 16))
	s1 := int32(table[index&mask])
	s2 := int32(table[(index+1)&mask])
	return (s2*r + s1*(65536-r)) >> 20
}
