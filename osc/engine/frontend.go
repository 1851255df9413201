package engine

// defaultIncTable maps a clamped 12-bit pitch control to a phase increment
// with the quadratic curve of the hardware front panel.
var defaultIncTable [4096]uint32

func init() {
	for k := range defaultIncTable {
		defaultIncTable[k] = uint32(k*k) << 3
	}
}

const (
	modCenter = 2048
	attenMax  = 4096

	// pickupThreshold is how far the raw control must move after a mode
	// flip before the channel follows it again.
	pickupThreshold = 64
)

// modChannel resolves a raw control and its alternate companion into one
// modulation value. In normal mode the alternate value is a centered offset
// added to the raw control; in alternate mode it attenuates the raw control
// in Q12. A change guard latches the resolved value when the mode flag
// flips so the output cannot jump until the raw control is picked up again.
type modChannel struct {
	altMode  bool
	guard    bool
	guardRef int32
	held     int32
}

func (m *modChannel) resolve(raw, alt int32, altMode bool) int32 {
	if altMode != m.altMode {
		m.altMode = altMode
		m.guard = true
		m.guardRef = raw
	}

	if m.guard {
		d := raw - m.guardRef
		if d < 0 {
			d = -d
		}
		if d < pickupThreshold {
			return m.held
		}
		m.guard = false
	}

	v := raw
	if altMode {
		a := alt
		if a < 0 {
			a = 0
		}
		if a > attenMax {
			a = attenMax
		}
		v = int32((int64(raw) * int64(a)) >> 12)
	} else {
		v = raw + alt - modCenter
	}

	m.held = v
	return v
}
