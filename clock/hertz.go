package clock

import "lpc11u-go/x/conv"

// Hertz is a frequency in cycles per second.
type Hertz uint32

const (
	Hz  Hertz = 1
	KHz       = 1000 * Hz
	MHz       = 1000 * KHz
)

// IRCFrequency is the nominal internal RC oscillator frequency.
const IRCFrequency = 12 * MHz

// Mul scales f by an integer factor (PLL multiply).
func (f Hertz) Mul(n uint32) Hertz { return f * Hertz(n) }

// Div divides f by an integer divider. A zero divider yields 0, matching a
// gated divider register.
func (f Hertz) Div(n uint32) Hertz {
	if n == 0 {
		return 0
	}
	return f / Hertz(n)
}

// String renders f as MHz or kHz with the trailing zeros of the fraction
// kept to three places, e.g. "48MHz", "1.050MHz", "262.500kHz".
func (f Hertz) String() string {
	var buf [24]byte
	switch {
	case f >= MHz && f%MHz == 0:
		return string(conv.Utoa(buf[:], uint64(f/MHz))) + "MHz"
	case f >= MHz:
		return string(conv.Fixed(buf[:], uint64(f/KHz), 3)) + "MHz"
	case f >= KHz && f%KHz == 0:
		return string(conv.Utoa(buf[:], uint64(f/KHz))) + "kHz"
	case f >= KHz:
		return string(conv.Fixed(buf[:], uint64(f), 3)) + "kHz"
	}
	return string(conv.Utoa(buf[:], uint64(f))) + "Hz"
}

func itoa(n uint32) string {
	var buf [10]byte
	return string(conv.Utoa(buf[:], uint64(n)))
}
