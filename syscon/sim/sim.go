// Package sim models the LPC11Uxx SYSCON and FLASHCTRL register blocks on
// the host. It records every write in order, asserts PLL lock some reads after
// the PLL is powered, and flags sequencing mistakes that are undefined on
// real silicon (changing a PLL ratio while it runs, latching a mux onto an
// unpowered or unlocked source, skipping the update-enable handshake).
package sim

import (
	"lpc11u-go/syscon"
	"lpc11u-go/x/conv"
)

// Event is one register write.
type Event struct {
	Block string // "syscon" or "flash"
	Reg   syscon.Reg
	Value uint32
}

// Trace collects writes from several blocks in global order.
type Trace struct {
	Events []Event
}

// Index returns the position of the first write to r in block, or -1.
func (t *Trace) Index(block string, r syscon.Reg) int {
	for i, e := range t.Events {
		if e.Block == block && e.Reg == r {
			return i
		}
	}
	return -1
}

// Block is a plain register file.
type Block struct {
	name  string
	regs  map[syscon.Reg]uint32
	trace *Trace
	onSet func()
}

func newBlock(name string, t *Trace, reset map[syscon.Reg]uint32) *Block {
	b := &Block{name: name, regs: make(map[syscon.Reg]uint32, len(reset)), trace: t}
	for r, v := range reset {
		b.regs[r] = v
	}
	return b
}

// NewFLASHCTRL returns a flash controller block at its reset state.
func NewFLASHCTRL(t *Trace) *Block {
	return newBlock("flash", t, map[syscon.Reg]uint32{
		// Reserved upper bits read back as set on some parts; keep one to
		// prove writers preserve them.
		syscon.FLASHCFG: 0x80000000 | syscon.ResetFLASHCFG,
	})
}

func (b *Block) Get(r syscon.Reg) uint32 { return b.regs[r] }

func (b *Block) Set(r syscon.Reg, v uint32) {
	b.regs[r] = v
	if b.trace != nil {
		b.trace.Events = append(b.trace.Events, Event{Block: b.name, Reg: r, Value: v})
	}
	if b.onSet != nil {
		b.onSet()
	}
}

// Peek reads without side effects.
func (b *Block) Peek(r syscon.Reg) uint32 { return b.regs[r] }

// SYSCON adds PLL lock and mux latch modelling on top of Block.
type SYSCON struct {
	*Block

	// LockDelay is the number of status reads that report "not locked"
	// after a PLL is powered up.
	LockDelay int

	// Violations lists sequencing errors in the order they happened.
	Violations []string

	// StatReads counts SYSPLLSTAT and USBPLLSTAT reads.
	StatReads int

	// Crystal is the system oscillator frequency in Hz, used to rate a
	// crystal-fed main clock. 0 leaves such clocks unchecked.
	Crystal uint32

	sysReads, usbReads int
	sysLocked          bool
	usbLocked          bool
	noChange           map[syscon.Reg]bool
	latchedMain        uint32
	latchedPLLIn       uint32
	latchedUSBClk      uint32
	flash              *Block
}

// NewSYSCON returns a SYSCON block at its reset state: IRC running and
// selected, every other oscillator and PLL powered down.
func NewSYSCON(t *Trace) *SYSCON {
	return &SYSCON{
		Block: newBlock("syscon", t, map[syscon.Reg]uint32{
			syscon.PDRUNCFG:      syscon.ResetPDRUNCFG,
			syscon.SYSAHBCLKCTRL: syscon.ResetSYSAHBCLKCTRL,
			syscon.SYSAHBCLKDIV:  syscon.ResetSYSAHBCLKDIV,
			syscon.WDTOSCCTRL:    syscon.ResetWDTOSCCTRL,
			syscon.USBCLKSEL:     syscon.ResetUSBCLKSEL,
		}),
		noChange: make(map[syscon.Reg]bool),
	}
}

// AttachFlash lets the block check the system clock against the flash
// timing in f. Without it FLASHCFG is assumed to be at its reset value.
func (s *SYSCON) AttachFlash(f *Block) {
	s.flash = f
	f.onSet = s.checkFlash
}

// LatchedMain returns the MAINCLKSEL value most recently latched by the
// update handshake.
func (s *SYSCON) LatchedMain() uint32 { return s.latchedMain }

// LatchedPLLInput returns the latched SYSPLLCLKSEL value.
func (s *SYSCON) LatchedPLLInput() uint32 { return s.latchedPLLIn }

// LatchedUSBClock returns the latched USBCLKSEL value.
func (s *SYSCON) LatchedUSBClock() uint32 { return s.latchedUSBClk }

// USBLocked reports the modelled USBPLL lock state.
func (s *SYSCON) USBLocked() bool { return s.usbLocked }

// Locked reports the modelled SYSPLL lock state.
func (s *SYSCON) Locked() bool { return s.sysLocked }

func (s *SYSCON) Get(r syscon.Reg) uint32 {
	switch r {
	case syscon.SYSPLLSTAT:
		s.StatReads++
		if s.powered(syscon.PDSYSPLL) && !s.sysLocked {
			s.sysReads++
			if s.sysReads > s.LockDelay {
				s.sysLocked = true
			}
		}
		if s.sysLocked {
			return syscon.PLLSTATLock
		}
		return 0
	case syscon.USBPLLSTAT:
		s.StatReads++
		if s.powered(syscon.PDUSBPLL) && !s.usbLocked {
			s.usbReads++
			if s.usbReads > s.LockDelay {
				s.usbLocked = true
			}
		}
		if s.usbLocked {
			return syscon.PLLSTATLock
		}
		return 0
	}
	return s.Block.Get(r)
}

func (s *SYSCON) Set(r syscon.Reg, v uint32) {
	switch r {
	case syscon.SYSPLLCTRL:
		if s.powered(syscon.PDSYSPLL) {
			s.violate("SYSPLLCTRL written while SYSPLL is powered")
		}
	case syscon.USBPLLCTRL:
		if s.powered(syscon.PDUSBPLL) {
			s.violate("USBPLLCTRL written while USBPLL is powered")
		}
	case syscon.PDRUNCFG:
		old := s.Block.Get(syscon.PDRUNCFG)
		if v&syscon.PDSYSPLL != 0 {
			s.sysLocked, s.sysReads = false, 0
		} else if old&syscon.PDSYSPLL != 0 {
			s.sysReads = 0
		}
		if v&syscon.PDUSBPLL != 0 {
			s.usbLocked, s.usbReads = false, 0
		} else if old&syscon.PDUSBPLL != 0 {
			s.usbReads = 0
		}
	case syscon.MAINCLKUEN, syscon.SYSPLLCLKUEN, syscon.USBPLLCLKUEN, syscon.USBCLKUEN:
		s.handshake(r, v)
	}
	s.Block.Set(r, v)
	if r == syscon.SYSAHBCLKDIV {
		s.checkFlash()
	}
}

func (s *SYSCON) handshake(uen syscon.Reg, v uint32) {
	if v&syscon.UENUpdate == 0 {
		s.noChange[uen] = true
		return
	}
	if !s.noChange[uen] {
		s.violate("update without preceding no-change write: " + regName(uen))
	}
	s.noChange[uen] = false
	switch uen {
	case syscon.MAINCLKUEN:
		sel := s.Block.Get(syscon.MAINCLKSEL) & syscon.MainClkSelMask
		if !s.mainSourceReady(sel) {
			s.violate("MAINCLKSEL latched onto a source that is not ready")
		}
		s.latchedMain = sel
		s.checkFlash()
	case syscon.SYSPLLCLKUEN:
		s.latchedPLLIn = s.Block.Get(syscon.SYSPLLCLKSEL) & syscon.PLLClkSelMask
		if !s.sourcePowered(s.latchedPLLIn) {
			s.violate("SYSPLLCLKSEL latched onto an unpowered oscillator")
		}
	case syscon.USBPLLCLKUEN:
		if !s.sourcePowered(s.Block.Get(syscon.USBPLLCLKSEL) & syscon.PLLClkSelMask) {
			s.violate("USBPLLCLKSEL latched onto an unpowered oscillator")
		}
	case syscon.USBCLKUEN:
		s.latchedUSBClk = s.Block.Get(syscon.USBCLKSEL) & 0x3
	}
}

// flashLimit is the exclusive system clock bound per FLASHTIM encoding.
var flashLimit = [...]uint64{20_000_000, 40_000_000, 50_000_000, 50_000_000}

// checkFlash flags a system clock at or above the rating of the current
// flash timing. Watchdog-fed clocks are below every rating.
func (s *SYSCON) checkFlash() {
	div := uint64(s.Block.Get(syscon.SYSAHBCLKDIV) & 0xFF)
	if div == 0 {
		return
	}
	cfg := uint32(syscon.ResetFLASHCFG)
	if s.flash != nil {
		cfg = s.flash.Get(syscon.FLASHCFG)
	}
	limit := flashLimit[syscon.Field(cfg, syscon.FlashTimMask, syscon.FlashTimPos)]
	main := s.mainRate()
	if main/div >= limit {
		var buf [20]byte
		s.violate("system clock " + string(conv.Utoa(buf[:], main/div)) + " Hz exceeds flash rating")
	}
}

// mainRate is the frequency of the latched main clock, 0 when unknown.
func (s *SYSCON) mainRate() uint64 {
	switch s.latchedMain {
	case syscon.MainClkSelIRC:
		return ircHz
	case syscon.MainClkSelPLLInput:
		return s.pllRef()
	case syscon.MainClkSelPLLOutput:
		m := syscon.Field(s.Block.Get(syscon.SYSPLLCTRL), syscon.PLLCTRLMselMask, syscon.PLLCTRLMselPos)
		return s.pllRef() * uint64(m+1)
	}
	return 0
}

func (s *SYSCON) pllRef() uint64 {
	if s.latchedPLLIn == syscon.PLLClkSelSYSOSC {
		return uint64(s.Crystal)
	}
	return ircHz
}

const ircHz = 12_000_000

func (s *SYSCON) mainSourceReady(sel uint32) bool {
	switch sel {
	case syscon.MainClkSelIRC:
		return s.powered(syscon.PDIRC | syscon.PDIRCOUT)
	case syscon.MainClkSelPLLInput:
		return s.sourcePowered(s.latchedPLLIn)
	case syscon.MainClkSelWDTOSC:
		return s.powered(syscon.PDWDTOSC)
	case syscon.MainClkSelPLLOutput:
		return s.powered(syscon.PDSYSPLL) && s.sysLocked
	}
	return false
}

// sourcePowered checks a PLL input selection (IRC or system oscillator).
func (s *SYSCON) sourcePowered(sel uint32) bool {
	if sel == syscon.PLLClkSelSYSOSC {
		return s.powered(syscon.PDSYSOSC)
	}
	return s.powered(syscon.PDIRC | syscon.PDIRCOUT)
}

func (s *SYSCON) powered(mask uint32) bool {
	return s.Block.Get(syscon.PDRUNCFG)&mask == 0
}

func (s *SYSCON) violate(msg string) { s.Violations = append(s.Violations, msg) }

func regName(r syscon.Reg) string {
	switch r {
	case syscon.MAINCLKUEN:
		return "MAINCLKUEN"
	case syscon.SYSPLLCLKUEN:
		return "SYSPLLCLKUEN"
	case syscon.USBPLLCLKUEN:
		return "USBPLLCLKUEN"
	case syscon.USBCLKUEN:
		return "USBCLKUEN"
	}
	var buf [8]byte
	return "reg 0x" + string(conv.U32Hex(buf[:], uint32(r)))
}
