package clock

import "lpc11u-go/syscon"

// MainSource selects the main clock mux input. Values are MAINCLKSEL encodings.
type MainSource uint8

const (
	SourceIRC       MainSource = syscon.MainClkSelIRC
	SourcePLLInput  MainSource = syscon.MainClkSelPLLInput
	SourceWatchdog  MainSource = syscon.MainClkSelWDTOSC
	SourcePLLOutput MainSource = syscon.MainClkSelPLLOutput
)

func (s MainSource) String() string {
	switch s {
	case SourceIRC:
		return "irc"
	case SourcePLLInput:
		return "pll_input"
	case SourceWatchdog:
		return "wdtosc"
	case SourcePLLOutput:
		return "pll_output"
	}
	return "unknown"
}

// needsPLL reports whether the source taps the system PLL.
func (s MainSource) needsPLL() bool { return s == SourcePLLInput || s == SourcePLLOutput }

// PLLInput selects the PLL reference. Values are SYSPLLCLKSEL encodings.
type PLLInput uint8

const (
	PLLInputIRC     PLLInput = syscon.PLLClkSelIRC
	PLLInputCrystal PLLInput = syscon.PLLClkSelSYSOSC
)

func (p PLLInput) String() string {
	switch p {
	case PLLInputIRC:
		return "irc"
	case PLLInputCrystal:
		return "crystal"
	}
	return "unknown"
}

// ParseMainSource maps a configuration name onto a MainSource.
func ParseMainSource(name string) (MainSource, bool) {
	for _, s := range [...]MainSource{SourceIRC, SourcePLLInput, SourceWatchdog, SourcePLLOutput} {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// ParsePLLInput maps a configuration name onto a PLLInput.
func ParsePLLInput(name string) (PLLInput, bool) {
	switch name {
	case "irc":
		return PLLInputIRC, true
	case "crystal", "sysosc":
		return PLLInputCrystal, true
	}
	return 0, false
}
