package clock

import (
	"lpc11u-go/errcode"
)

// FlashTiming is the FLASHCFG FLASHTIM encoding: flash access time in
// system clocks, minus one.
type FlashTiming uint8

const (
	Flash1Cycle  FlashTiming = 0 // up to 20 MHz
	Flash2Cycles FlashTiming = 1 // up to 40 MHz
	Flash3Cycles FlashTiming = 2 // up to 50 MHz
)

// Cycles returns the number of system clocks per flash access.
func (t FlashTiming) Cycles() int { return int(t) + 1 }

// flashLimits[t] is the exclusive upper system clock bound for timing t.
var flashLimits = [...]Hertz{
	Flash1Cycle:  20 * MHz,
	Flash2Cycles: 40 * MHz,
	Flash3Cycles: 50 * MHz,
}

// FlashTimingFor selects the fewest flash wait cycles rated for sys.
func FlashTimingFor(sys Hertz) (FlashTiming, error) {
	for t, limit := range flashLimits {
		if sys < limit {
			return FlashTiming(t), nil
		}
	}
	return 0, errcode.New(errcode.FrequencyExceedsFlashRating, "flash", uint32(sys))
}
