package clock

import "lpc11u-go/errcode"

// noCopy flags accidental copies of Clocks under go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Clocks is proof that the top-level clocks are configured and frozen. Only
// Sequencer.Apply creates a usable one, and nothing can reconfigure or
// disable these clocks once it exists:
//
//   - IRC
//   - System oscillator
//   - Watchdog oscillator
//   - System PLL
//   - Main clock
//   - System clock
//   - IOCON clock
//
// Share it by pointer with every peripheral that needs a trustworthy
// frequency.
type Clocks struct {
	noCopy noCopy

	main    Hertz
	system  Hertz
	crystal Hertz
	frozen  bool
}

// MainClockFreq returns the frozen main clock frequency.
func (c *Clocks) MainClockFreq() Hertz { return c.main }

// SystemClockFreq returns the frozen system (AHB) clock frequency.
func (c *Clocks) SystemClockFreq() Hertz { return c.system }

// CrystalFreq returns the external crystal frequency, if one was declared.
func (c *Clocks) CrystalFreq() (Hertz, bool) { return c.crystal, c.crystal != 0 }

func (c *Clocks) check(op string) error {
	if c == nil || !c.frozen {
		return &errcode.E{C: errcode.NotFrozen, Op: op, Msg: "clocks not frozen by Sequencer.Apply"}
	}
	return nil
}
