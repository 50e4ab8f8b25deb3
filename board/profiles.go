package board

import "golang.org/x/exp/slices"

// -----------------------------------------------------------------------------
// Embedded profiles
//
// Key: board ID (selected at build time by the firmware entry point)
// Val: raw YAML for that board
// -----------------------------------------------------------------------------

// IRC through the PLL at 48 MHz, system clock 24 MHz (2 flash clocks),
// USART at 12 MHz, USB PLL from the IRC.
const profLPCXpresso11U68 = `
main_source: pll_output
pll:
  input: irc
  target_hz: 48000000
system_clock_hz: 24000000
peripherals:
  usart_hz: 12000000
  usb_hz: 48000000
`

// 12 MHz crystal through the PLL at 36 MHz.
const profCrystal12PLL36 = `
main_source: pll_output
crystal_hz: 12000000
pll:
  input: crystal
  target_hz: 36000000
peripherals:
  usart_hz: 36000000
  ssp0_hz: 18000000
`

// Reset configuration, made explicit.
const profIRC12 = `
main_source: irc
peripherals:
  usart_hz: 12000000
`

// Low-power: watchdog oscillator band 1.05 MHz / 4 = 262.5 kHz.
const profWDTOsc = `
main_source: wdtosc
wdtosc_hz: 1000000
`

var embeddedProfiles = map[string][]byte{
	"lpcxpresso11u68": []byte(profLPCXpresso11U68),
	"crystal12-pll36": []byte(profCrystal12PLL36),
	"irc12":           []byte(profIRC12),
	"wdtosc":          []byte(profWDTOsc),
}

// IDs lists the embedded board IDs in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(embeddedProfiles))
	for id := range embeddedProfiles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
