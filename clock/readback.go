package clock

import "lpc11u-go/syscon"

// MainClockRate reconstructs the main clock frequency from live register
// state. A powered-down PLL or watchdog oscillator counts as unconfigured.
// crystal is the fitted crystal frequency, 0 if none.
func MainClockRate(sys syscon.Block, crystal Hertz) (Hertz, error) {
	pd := sys.Get(syscon.PDRUNCFG)

	var pll *PLLParams
	if pd&syscon.PDSYSPLL == 0 {
		ctrl := sys.Get(syscon.SYSPLLCTRL)
		pll = &PLLParams{
			Input: PLLInput(sys.Get(syscon.SYSPLLCLKSEL) & syscon.PLLClkSelMask),
			M:     uint8(syscon.Field(ctrl, syscon.PLLCTRLMselMask, syscon.PLLCTRLMselPos)),
			P:     uint8(syscon.Field(ctrl, syscon.PLLCTRLPselMask, syscon.PLLCTRLPselPos)),
		}
	}

	var wdt *WatchdogConfig
	if pd&syscon.PDWDTOSC == 0 {
		ctrl := sys.Get(syscon.WDTOSCCTRL)
		band := WatchdogBand(syscon.Field(ctrl, syscon.WDTOSCFreqselMask, syscon.WDTOSCFreqselPos))
		if band != 0 {
			wdt = &WatchdogConfig{
				Band: band,
				Div:  uint8(syscon.Field(ctrl, syscon.WDTOSCDivselMask, syscon.WDTOSCDivselPos)),
			}
		}
	}

	src := MainSource(sys.Get(syscon.MAINCLKSEL) & syscon.MainClkSelMask)
	return MainClockFreq(src, pll, wdt, crystal)
}
