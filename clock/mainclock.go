package clock

import "lpc11u-go/errcode"

// MainClockFreq resolves the main clock frequency for a mux selection and the
// state of the subsystems behind it. pll and wdt are nil when the subsystem is
// not configured; crystal is 0 when no external crystal frequency is known.
func MainClockFreq(src MainSource, pll *PLLParams, wdt *WatchdogConfig, crystal Hertz) (Hertz, error) {
	switch src {
	case SourceIRC:
		return IRCFrequency, nil
	case SourcePLLInput, SourcePLLOutput:
		if pll == nil {
			return 0, errcode.New(errcode.PLLNotConfigured, "mainclk", uint32(src))
		}
		ref, err := pllReference(pll.Input, crystal)
		if err != nil {
			return 0, err
		}
		if src == SourcePLLInput {
			return ref, nil
		}
		return pll.Output(ref), nil
	case SourceWatchdog:
		if wdt == nil {
			return 0, errcode.New(errcode.WatchdogNotConfigured, "mainclk", uint32(src))
		}
		return wdt.Output(), nil
	}
	return 0, &errcode.E{C: errcode.InvalidConfig, Op: "mainclk", Value: uint32(src), Msg: "unknown main clock source"}
}

// pllReference returns the frequency feeding a PLL.
func pllReference(in PLLInput, crystal Hertz) (Hertz, error) {
	switch in {
	case PLLInputIRC:
		return IRCFrequency, nil
	case PLLInputCrystal:
		if crystal == 0 {
			return 0, errcode.New(errcode.MissingCrystalFrequency, "pll", 0)
		}
		return crystal, nil
	}
	return 0, &errcode.E{C: errcode.InvalidConfig, Op: "pll", Value: uint32(in), Msg: "unknown PLL input"}
}
