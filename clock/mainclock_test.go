package clock

import (
	"testing"

	"lpc11u-go/errcode"
)

func TestMainClockFreq(t *testing.T) {
	irc48 := &PLLParams{Input: PLLInputIRC, M: 3, P: 1}
	xtal36 := &PLLParams{Input: PLLInputCrystal, M: 2, P: 2}
	wdt := &WatchdogConfig{Band: WDTBand1_05, Div: 1}

	cases := []struct {
		name    string
		src     MainSource
		pll     *PLLParams
		wdt     *WatchdogConfig
		crystal Hertz
		want    Hertz
		code    errcode.Code
	}{
		{"irc", SourceIRC, nil, nil, 0, 12 * MHz, errcode.OK},
		{"irc ignores pll", SourceIRC, irc48, wdt, 16 * MHz, 12 * MHz, errcode.OK},
		{"pll input irc", SourcePLLInput, irc48, nil, 0, 12 * MHz, errcode.OK},
		{"pll input crystal", SourcePLLInput, xtal36, nil, 16 * MHz, 16 * MHz, errcode.OK},
		{"pll output irc", SourcePLLOutput, irc48, nil, 0, 48 * MHz, errcode.OK},
		{"pll output crystal", SourcePLLOutput, xtal36, nil, 12 * MHz, 36 * MHz, errcode.OK},
		{"watchdog", SourceWatchdog, nil, wdt, 0, 262500, errcode.OK},
		{"pll input unconfigured", SourcePLLInput, nil, wdt, 12 * MHz, 0, errcode.PLLNotConfigured},
		{"pll output unconfigured", SourcePLLOutput, nil, nil, 0, 0, errcode.PLLNotConfigured},
		{"watchdog unconfigured", SourceWatchdog, irc48, nil, 0, 0, errcode.WatchdogNotConfigured},
		{"crystal missing", SourcePLLOutput, xtal36, nil, 0, 0, errcode.MissingCrystalFrequency},
		{"crystal missing input", SourcePLLInput, xtal36, nil, 0, 0, errcode.MissingCrystalFrequency},
		{"unknown source", MainSource(7), nil, nil, 0, 0, errcode.InvalidConfig},
	}
	for _, c := range cases {
		got, err := MainClockFreq(c.src, c.pll, c.wdt, c.crystal)
		if errcode.Of(err) != c.code {
			t.Fatalf("%s: err = %v, want %s", c.name, err, c.code)
		}
		if got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}
