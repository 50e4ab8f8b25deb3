package clock

import (
	"lpc11u-go/errcode"
	"lpc11u-go/x/mathx"
)

// Builder accumulates a declarative clock request. Every setter returns an
// updated copy, so a base Builder can be specialised several ways.
//
//	plan, err := clock.NewBuilder(0).
//		SystemPLL(clock.PLLInputIRC, 48*clock.MHz).
//		MainClock(clock.SourcePLLOutput).
//		SystemClock(24 * clock.MHz).
//		Validate()
//
// A setter that was never called leaves its subsystem absent. Calling one
// with a zero frequency is a request for 0 Hz and fails validation.
type Builder struct {
	main      MainSource
	pllInput  PLLInput
	pllTarget Hertz
	hasPLL    bool
	sysclk    Hertz
	hasSys    bool  // unset = divider 1
	crystal   Hertz // 0 = unknown
	wdtosc    Hertz
	hasWDT    bool
}

// NewBuilder starts a request with IRC as main clock source. crystal is the
// external crystal frequency, or 0 when no crystal is fitted.
func NewBuilder(crystal Hertz) Builder {
	return Builder{main: SourceIRC, crystal: crystal}
}

// MainClock selects the main clock mux input.
func (b Builder) MainClock(src MainSource) Builder {
	b.main = src
	return b
}

// SystemPLL requests the system PLL running from in at output freq.
func (b Builder) SystemPLL(in PLLInput, freq Hertz) Builder {
	b.pllInput = in
	b.pllTarget = freq
	b.hasPLL = true
	return b
}

// SystemClock requests a system (AHB) clock frequency. Without it the
// system clock equals the main clock.
func (b Builder) SystemClock(freq Hertz) Builder {
	b.sysclk = freq
	b.hasSys = true
	return b
}

// WatchdogOscillator requests the watchdog oscillator near freq.
func (b Builder) WatchdogOscillator(freq Hertz) Builder {
	b.wdtosc = freq
	b.hasWDT = true
	return b
}

// Crystal sets the external crystal frequency.
func (b Builder) Crystal(freq Hertz) Builder {
	b.crystal = freq
	return b
}

// Validate resolves the whole tree. It has no side effects: calling it twice
// on the same Builder yields identical Plans.
func (b Builder) Validate() (Plan, error) {
	// A mux input whose subsystem was never requested is the most basic
	// inconsistency; report it ahead of any numeric failure.
	if b.main.needsPLL() && !b.hasPLL {
		return Plan{}, errcode.New(errcode.PLLNotConfigured, "mainclk", uint32(b.main))
	}
	if b.main == SourceWatchdog && !b.hasWDT {
		return Plan{}, errcode.New(errcode.WatchdogNotConfigured, "mainclk", uint32(b.main))
	}

	p := Plan{main: b.main, crystal: b.crystal, sysDiv: 1}

	if b.hasPLL {
		if b.pllTarget == 0 {
			return Plan{}, errcode.New(errcode.ZeroFrequency, "pll", 0)
		}
		ref, err := pllReference(b.pllInput, b.crystal)
		if err != nil {
			return Plan{}, err
		}
		m, psel, err := SolvePLL(b.pllTarget, ref)
		if err != nil {
			return Plan{}, err
		}
		p.pll = PLLParams{Input: b.pllInput, M: m, P: psel}
		p.hasPLL = true
	}

	if b.hasWDT {
		w, err := QuantizeWatchdog(b.wdtosc)
		if err != nil {
			return Plan{}, err
		}
		p.wdt = w
		p.hasWDT = true
	}

	main, err := MainClockFreq(p.main, p.pllPtr(), p.wdtPtr(), p.crystal)
	if err != nil {
		return Plan{}, err
	}
	p.mainClock = main

	if b.hasSys {
		if b.sysclk == 0 {
			return Plan{}, errcode.New(errcode.ZeroFrequency, "sysclk", 0)
		}
		div, exact := mathx.ExactDiv(uint32(main), uint32(b.sysclk))
		if !exact {
			return Plan{}, errcode.New(errcode.NotIntegerDivisible, "sysclk", uint32(b.sysclk))
		}
		if div > 0xFF {
			return Plan{}, errcode.New(errcode.DividerOutOfRange, "sysclk", div)
		}
		p.sysDiv = uint8(div)
	}

	if p.flash, err = FlashTimingFor(p.SystemClock()); err != nil {
		return Plan{}, err
	}
	p.valid = true
	return p, nil
}

// Plan is a fully resolved clock tree. It is produced only by
// Builder.Validate and is comparable: equal requests give == Plans.
type Plan struct {
	main      MainSource
	pll       PLLParams
	hasPLL    bool
	wdt       WatchdogConfig
	hasWDT    bool
	sysDiv    uint8
	flash     FlashTiming
	crystal   Hertz
	mainClock Hertz
	valid     bool
}

func (p Plan) MainSource() MainSource           { return p.main }
func (p Plan) PLL() (PLLParams, bool)           { return p.pll, p.hasPLL }
func (p Plan) Watchdog() (WatchdogConfig, bool) { return p.wdt, p.hasWDT }
func (p Plan) SystemDivider() uint8             { return p.sysDiv }
func (p Plan) FlashTiming() FlashTiming         { return p.flash }
func (p Plan) Crystal() Hertz                   { return p.crystal }
func (p Plan) MainClock() Hertz                 { return p.mainClock }
func (p Plan) SystemClock() Hertz               { return p.mainClock.Div(uint32(p.sysDiv)) }

func (p *Plan) pllPtr() *PLLParams {
	if !p.hasPLL {
		return nil
	}
	return &p.pll
}

func (p *Plan) wdtPtr() *WatchdogConfig {
	if !p.hasWDT {
		return nil
	}
	return &p.wdt
}

// String summarises the plan on one line.
func (p Plan) String() string {
	if !p.valid {
		return "clock plan: invalid"
	}
	s := "main=" + p.main.String() + " " + p.mainClock.String()
	if p.hasPLL {
		s += " pll=" + p.pll.Input.String() +
			" m=" + itoa(uint32(p.pll.M)) + " p=" + itoa(uint32(p.pll.P))
	}
	if p.hasWDT {
		s += " wdtosc=" + p.wdt.Band.Frequency().String() + "/" + itoa(2*(1+uint32(p.wdt.Div)))
	}
	s += " sysclk=" + p.SystemClock().String() +
		" div=" + itoa(uint32(p.sysDiv)) +
		" flash=" + itoa(uint32(p.flash.Cycles())) + "clk"
	return s
}
