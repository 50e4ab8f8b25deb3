package clock

import (
	"lpc11u-go/errcode"

	"golang.org/x/exp/slices"
)

// WatchdogBand is the watchdog oscillator analog output band. Values are
// WDTOSCCTRL FREQSEL encodings; 0 is illegal.
type WatchdogBand uint8

const (
	WDTBand0_60 WatchdogBand = iota + 1
	WDTBand1_05
	WDTBand1_40
	WDTBand1_75
	WDTBand2_10
	WDTBand2_40
	WDTBand2_70
	WDTBand3_00
	WDTBand3_25
	WDTBand3_50
	WDTBand3_75
	WDTBand4_00
	WDTBand4_20
	WDTBand4_40
	WDTBand4_60
)

// Nominal band frequencies indexed by FREQSEL.
var watchdogBandRate = [...]Hertz{
	0, // illegal
	600 * KHz,
	1050 * KHz,
	1400 * KHz,
	1750 * KHz,
	2100 * KHz,
	2400 * KHz,
	2700 * KHz,
	3000 * KHz,
	3250 * KHz,
	3500 * KHz,
	3750 * KHz,
	4000 * KHz,
	4200 * KHz,
	4400 * KHz,
	4600 * KHz,
}

// Frequency returns the nominal band frequency, 0 for an illegal band.
func (b WatchdogBand) Frequency() Hertz {
	if int(b) >= len(watchdogBandRate) {
		return 0
	}
	return watchdogBandRate[b]
}

// WatchdogConfig is a resolved watchdog oscillator setting.
type WatchdogConfig struct {
	Band WatchdogBand
	Div  uint8 // DIVSEL; output divider is 2*(1+Div)
}

// Output returns band / (2 * (1 + Div)).
func (w WatchdogConfig) Output() Hertz {
	return w.Band.Frequency().Div(2 * (1 + uint32(w.Div)))
}

// watchdogDivsel is fixed; the quantizer only picks a band.
const watchdogDivsel = 1

// QuantizeWatchdog picks the first band whose nominal frequency is at least
// req. The divider stays at 1, so the oscillator output is band/4; no attempt
// is made to minimise the error against req.
func QuantizeWatchdog(req Hertz) (WatchdogConfig, error) {
	if req == 0 {
		return WatchdogConfig{}, errcode.New(errcode.ZeroFrequency, "wdtosc", 0)
	}
	i := slices.IndexFunc(watchdogBandRate[1:], func(f Hertz) bool { return f >= req })
	if i < 0 {
		return WatchdogConfig{}, errcode.New(errcode.FrequencyTooHigh, "wdtosc", uint32(req))
	}
	return WatchdogConfig{Band: WatchdogBand(i + 1), Div: watchdogDivsel}, nil
}
