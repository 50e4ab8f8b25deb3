package clock

import (
	"time"

	"lpc11u-go/errcode"
	"lpc11u-go/syscon"
)

// State is a step of the one-way bring-up sequence.
type State uint8

const (
	StateIdle State = iota
	StatePLLInputPowering
	StatePLLDividerSet
	StatePLLLocking
	StatePLLLocked // entered even when the plan has no PLL
	StateMainSourceSelecting
	StateDividersWritten
	StateFrozen
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePLLInputPowering:
		return "pll_input_powering"
	case StatePLLDividerSet:
		return "pll_divider_set"
	case StatePLLLocking:
		return "pll_locking"
	case StatePLLLocked:
		return "pll_locked"
	case StateMainSourceSelecting:
		return "main_source_selecting"
	case StateDividersWritten:
		return "dividers_written"
	case StateFrozen:
		return "frozen"
	}
	return "unknown"
}

// DefaultCrystalSettle is the minimum system oscillator start-up time
// before it may be used as a PLL reference.
const DefaultCrystalSettle = 200 * time.Microsecond

// Options tunes the sequencer. The zero value is usable.
type Options struct {
	// CrystalSettle is the minimum time between powering the system
	// oscillator and selecting it. 0 means DefaultCrystalSettle.
	CrystalSettle time.Duration
	// Wait blocks for at least d. nil spins on the monotonic clock.
	Wait func(d time.Duration)
	// OnStep is called on entry to every state.
	OnStep func(State)
}

func (o Options) settle() time.Duration {
	if o.CrystalSettle <= 0 {
		return DefaultCrystalSettle
	}
	return o.CrystalSettle
}

func (o Options) wait(d time.Duration) {
	if o.Wait != nil {
		o.Wait(d)
		return
	}
	start := time.Now()
	for time.Since(start) < d {
	}
}

// Sequencer owns the SYSCON and FLASHCTRL register blocks for the duration of
// the bring-up sequence and runs it at most once.
type Sequencer struct {
	sys   syscon.Block
	flash syscon.Block
	opts  Options
	state State
}

// NewSequencer takes exclusive ownership of the two register blocks.
func NewSequencer(sys, flash syscon.Block, opts Options) *Sequencer {
	return &Sequencer{sys: sys, flash: flash, opts: opts}
}

// State returns the current sequencer state.
func (s *Sequencer) State() State { return s.state }

func (s *Sequencer) enter(st State) {
	s.state = st
	if s.opts.OnStep != nil {
		s.opts.OnStep(st)
	}
}

// Apply drives the hardware to plan and freezes it. No divider or mux write
// reaches the hardware before the block it depends on is powered and, for
// the PLL, locked. The main clock mux is still on the IRC, as after reset.
// A PLL that never locks hangs here forever.
func (s *Sequencer) Apply(plan Plan) (*Clocks, PeriphClocks, error) {
	if s.state != StateIdle {
		return nil, PeriphClocks{}, &errcode.E{C: errcode.AlreadyApplied, Op: "apply", Msg: "clocks already " + s.state.String()}
	}
	if !plan.valid {
		return nil, PeriphClocks{}, &errcode.E{C: errcode.InvalidConfig, Op: "apply", Msg: "plan was not produced by Validate"}
	}
	sys := s.sys

	if pll, ok := plan.PLL(); ok {
		s.enter(StatePLLInputPowering)
		s.powerReference(pll.Input, plan.crystal)
		syscon.ReplaceBits(sys, syscon.SYSPLLCLKSEL, uint32(pll.Input), syscon.PLLClkSelMask, 0)
		syscon.LatchMux(sys, syscon.SYSPLLCLKUEN)

		// The ratio must only change while the PLL is powered down.
		s.enter(StatePLLDividerSet)
		syscon.PowerDown(sys, syscon.PDSYSPLL)
		sys.Set(syscon.SYSPLLCTRL, pllCtrl(pll.M, pll.P))
		syscon.PowerUp(sys, syscon.PDSYSPLL)

		s.enter(StatePLLLocking)
		waitLock(sys, syscon.SYSPLLSTAT)
	}
	s.enter(StatePLLLocked)

	s.enter(StateMainSourceSelecting)
	if w, ok := plan.Watchdog(); ok {
		sys.Set(syscon.WDTOSCCTRL, wdtCtrl(w))
		syscon.PowerUp(sys, syscon.PDWDTOSC)
	}
	if plan.main == SourceIRC {
		syscon.PowerUp(sys, syscon.PDIRCOUT|syscon.PDIRC)
	}
	// The divider and flash timing go in while the core still runs from the
	// reset IRC: 12 MHz over any divider is inside every flash timing, and
	// the new main clock is never seen undivided or with too few wait states.
	sys.Set(syscon.SYSAHBCLKDIV, uint32(plan.sysDiv))
	syscon.ReplaceBits(s.flash, syscon.FLASHCFG, uint32(plan.flash), syscon.FlashTimMask, syscon.FlashTimPos)
	syscon.ReplaceBits(sys, syscon.MAINCLKSEL, uint32(plan.main), syscon.MainClkSelMask, 0)
	syscon.LatchMux(sys, syscon.MAINCLKUEN)

	s.enter(StateDividersWritten)
	// IOCON is needed for any pin configuration afterwards.
	syscon.SetBits(sys, syscon.SYSAHBCLKCTRL, syscon.AHBIOCON)

	clks := &Clocks{
		main:    plan.mainClock,
		system:  plan.SystemClock(),
		crystal: plan.crystal,
		frozen:  true,
	}
	bus := &periphBus{sys: sys, opts: s.opts, sysoscOn: syscon.Powered(sys, syscon.PDSYSOSC)}
	s.enter(StateFrozen)
	return clks, newPeriphClocks(bus), nil
}

// powerReference powers a PLL reference oscillator, holding the crystal
// for its start-up time.
func (s *Sequencer) powerReference(in PLLInput, crystal Hertz) {
	switch in {
	case PLLInputIRC:
		syscon.PowerUp(s.sys, syscon.PDIRCOUT|syscon.PDIRC)
	case PLLInputCrystal:
		s.sys.Set(syscon.SYSOSCCTRL, sysoscCtrl(crystal))
		syscon.PowerUp(s.sys, syscon.PDSYSOSC)
		s.opts.wait(s.opts.settle())
	}
}

func pllCtrl(m, p uint8) uint32 {
	return uint32(m)<<syscon.PLLCTRLMselPos&syscon.PLLCTRLMselMask |
		uint32(p)<<syscon.PLLCTRLPselPos&syscon.PLLCTRLPselMask
}

func wdtCtrl(w WatchdogConfig) uint32 {
	return uint32(w.Div)<<syscon.WDTOSCDivselPos&syscon.WDTOSCDivselMask |
		uint32(w.Band)<<syscon.WDTOSCFreqselPos&syscon.WDTOSCFreqselMask
}

// sysoscCtrl selects the oscillator drive range: FREQRANGE=1 above 20 MHz.
func sysoscCtrl(crystal Hertz) uint32 {
	if crystal > 20*MHz {
		return 1 << 1
	}
	return 0
}

// waitLock spins until the PLL status register reports lock. No timeout.
func waitLock(sys syscon.Block, stat syscon.Reg) {
	for sys.Get(stat)&syscon.PLLSTATLock == 0 {
	}
}
