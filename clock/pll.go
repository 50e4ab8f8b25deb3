package clock

import (
	"lpc11u-go/errcode"
	"lpc11u-go/x/mathx"
)

// PLL current-controlled oscillator window (UM10462 3.11.4.1). The post
// divider keeps FCCO inside [156 MHz, 320 MHz) whatever the output.
const (
	FCCOMin Hertz = 156 * MHz
	FCCOMax Hertz = 320 * MHz

	maxMSEL = 31
	maxPSEL = 3
)

// PLLParams is a resolved PLL: its reference and the MSEL/PSEL register fields.
type PLLParams struct {
	Input PLLInput
	M     uint8 // MSEL; feedback multiplier is M+1
	P     uint8 // PSEL; post divider is 2^P
}

// Multiplier returns M+1.
func (p PLLParams) Multiplier() uint32 { return uint32(p.M) + 1 }

// PostDivider returns 2^P.
func (p PLLParams) PostDivider() uint32 { return 1 << p.P }

// Output returns the PLL output for the given reference frequency.
func (p PLLParams) Output(ref Hertz) Hertz { return ref.Mul(p.Multiplier()) }

// FCCO returns the oscillator frequency, 2 * 2^P * output.
func FCCO(out Hertz, p uint8) Hertz { return out.Mul(2 << p) }

// SolvePLL computes MSEL and PSEL so that input*(M+1) == target and FCCO is
// in range, preferring the smallest post divider (least power).
func SolvePLL(target, input Hertz) (m, p uint8, err error) {
	return solvePLL("pll", target, input)
}

func solvePLL(op string, target, input Hertz) (uint8, uint8, error) {
	if target == 0 || input == 0 {
		return 0, 0, errcode.New(errcode.ZeroFrequency, op, uint32(target))
	}
	multiple, exact := mathx.ExactDiv(uint32(target), uint32(input))
	if !exact {
		return 0, 0, errcode.New(errcode.NotIntegerMultiple, op, uint32(target))
	}
	if multiple-1 > maxMSEL {
		return 0, 0, errcode.New(errcode.MultiplierOutOfRange, op, multiple)
	}
	for p := uint8(0); p <= maxPSEL; p++ {
		// 64-bit so that very high targets cannot wrap into the window.
		fcco := uint64(target) << (p + 1)
		if mathx.InRange(fcco, uint64(FCCOMin), uint64(FCCOMax)) {
			return uint8(multiple - 1), p, nil
		}
	}
	return 0, 0, errcode.New(errcode.NoValidPostDivider, op, uint32(target))
}
