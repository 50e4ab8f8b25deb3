package clock

import (
	"lpc11u-go/errcode"
	"lpc11u-go/syscon"
	"lpc11u-go/x/mathx"
)

// periphBus is the SYSCON access shared by the peripheral clock tokens once
// the top-level clocks are frozen. Fields shared with other tokens
// (PDRUNCFG, SYSAHBCLKCTRL) are only touched through modify.
type periphBus struct {
	sys      syscon.Block
	opts     Options
	sysoscOn bool
}

// modify is a read-modify-write of a shared register with interrupts masked.
func (b *periphBus) modify(r syscon.Reg, set, clear uint32) {
	st := disableInterrupts()
	b.sys.Set(r, (b.sys.Get(r)|set)&^clear)
	restoreInterrupts(st)
}

// PeriphClocks holds one capability per dependent clock. Apply hands out the
// only set; each token drives its own divider.
type PeriphClocks struct {
	USART  *USARTClock
	USB    *USBClock
	SSP0   *SSPClock
	SSP1   *SSPClock
	Syscon *Syscon
}

func newPeriphClocks(b *periphBus) PeriphClocks {
	return PeriphClocks{
		USART:  &USARTClock{divClock{bus: b, op: "usart", div: syscon.UARTCLKDIV, gate: syscon.AHBUSART}},
		USB:    &USBClock{bus: b},
		SSP0:   &SSPClock{divClock{bus: b, op: "ssp0", div: syscon.SSP0CLKDIV, gate: syscon.AHBSSP0}},
		SSP1:   &SSPClock{divClock{bus: b, op: "ssp1", div: syscon.SSP1CLKDIV, gate: syscon.AHBSSP1}},
		Syscon: &Syscon{bus: b},
	}
}

// divClock is a peripheral clock fed by the main clock through an 8-bit
// divider, behind an AHB clock gate.
type divClock struct {
	bus  *periphBus
	op   string
	div  syscon.Reg
	gate uint32
	freq Hertz
}

func (d *divClock) configure(clks *Clocks, freq Hertz) error {
	if err := clks.check(d.op); err != nil {
		return err
	}
	if freq == 0 {
		return errcode.New(errcode.ZeroFrequency, d.op, 0)
	}
	div := uint32(clks.MainClockFreq() / freq)
	if div == 0 || div > 0xFF {
		return errcode.New(errcode.DividerOutOfRange, d.op, div)
	}
	d.bus.modify(syscon.SYSAHBCLKCTRL, d.gate, 0)
	d.bus.sys.Set(d.div, div)
	d.freq = clks.MainClockFreq().Div(div)
	return nil
}

func (d *divClock) disable() {
	st := disableInterrupts()
	d.bus.sys.Set(d.div, 0)
	d.bus.sys.Set(syscon.SYSAHBCLKCTRL, d.bus.sys.Get(syscon.SYSAHBCLKCTRL)&^d.gate)
	restoreInterrupts(st)
	d.freq = 0
}

// USARTClock drives UART_PCLK.
type USARTClock struct{ divClock }

// Configure sets UART_PCLK to main/floor(main/freq) and ungates the USART.
func (u *USARTClock) Configure(clks *Clocks, freq Hertz) error { return u.configure(clks, freq) }

// Disable stops UART_PCLK and gates the USART register clock.
func (u *USARTClock) Disable() { u.disable() }

// Frequency returns the configured UART_PCLK, 0 while disabled.
func (u *USARTClock) Frequency() Hertz { return u.freq }

// BaudDivisor returns the 16x oversampling divisor latch value
// UART_PCLK/(16*baud), rounded to the nearest integer, for the configured
// clock.
func (u *USARTClock) BaudDivisor(baud uint32) (uint16, error) {
	if u.freq == 0 {
		return 0, &errcode.E{C: errcode.InvalidConfig, Op: "usart", Msg: "clock not configured"}
	}
	if baud == 0 {
		return 0, errcode.New(errcode.ZeroFrequency, "usart", 0)
	}
	div := mathx.RoundDiv(uint64(u.freq), uint64(baud)*16)
	if div == 0 || div >= 1<<16 {
		return 0, errcode.New(errcode.DividerOutOfRange, "usart", baud)
	}
	return uint16(div), nil
}

// SSPClock drives SSPn_PCLK.
type SSPClock struct{ divClock }

// Configure sets SSPn_PCLK to main/floor(main/freq) and ungates the SSP.
func (s *SSPClock) Configure(clks *Clocks, freq Hertz) error { return s.configure(clks, freq) }

// Disable stops SSPn_PCLK and gates the SSP register clock.
func (s *SSPClock) Disable() { s.disable() }

// Frequency returns the configured SSPn_PCLK, 0 while disabled.
func (s *SSPClock) Frequency() Hertz { return s.freq }

// USBClock drives the USB controller from the dedicated USB PLL.
type USBClock struct {
	bus  *periphBus
	freq Hertz
}

// Configure brings the USB PLL up at freq (normally 48 MHz) from the crystal
// when the frozen clocks know one, else from the IRC, and routes it to the
// USB controller undivided.
func (u *USBClock) Configure(clks *Clocks, freq Hertz) error {
	if err := clks.check("usb"); err != nil {
		return err
	}
	in, ref := PLLInputIRC, IRCFrequency
	if x, ok := clks.CrystalFreq(); ok {
		in, ref = PLLInputCrystal, x
	}
	m, p, err := solvePLL("usbpll", freq, ref)
	if err != nil {
		return err
	}

	b := u.bus
	if in == PLLInputCrystal && !b.sysoscOn {
		b.sys.Set(syscon.SYSOSCCTRL, sysoscCtrl(ref))
		b.modify(syscon.PDRUNCFG, 0, syscon.PDSYSOSC)
		b.opts.wait(b.opts.settle())
		b.sysoscOn = true
	}
	b.sys.Set(syscon.USBPLLCLKSEL, uint32(in))
	syscon.LatchMux(b.sys, syscon.USBPLLCLKUEN)

	b.modify(syscon.PDRUNCFG, syscon.PDUSBPLL, 0)
	b.sys.Set(syscon.USBPLLCTRL, pllCtrl(m, p))
	b.modify(syscon.PDRUNCFG, 0, syscon.PDUSBPLL|syscon.PDUSBPAD)
	waitLock(b.sys, syscon.USBPLLSTAT)

	b.sys.Set(syscon.USBCLKSEL, syscon.USBClkSelUSBPLL)
	syscon.LatchMux(b.sys, syscon.USBCLKUEN)
	b.sys.Set(syscon.USBCLKDIV, 1)
	b.modify(syscon.SYSAHBCLKCTRL, syscon.AHBUSB, 0)
	u.freq = freq
	return nil
}

// Disable gates the USB clock and powers the USB PLL and pads down.
func (u *USBClock) Disable() {
	b := u.bus
	b.sys.Set(syscon.USBCLKDIV, 0)
	b.modify(syscon.SYSAHBCLKCTRL, 0, syscon.AHBUSB)
	b.modify(syscon.PDRUNCFG, syscon.PDUSBPLL|syscon.PDUSBPAD, 0)
	u.freq = 0
}

// Frequency returns the configured USB clock, 0 while disabled.
func (u *USBClock) Frequency() Hertz { return u.freq }

// Syscon gates the AHB clocks that have no divider of their own.
type Syscon struct {
	bus *periphBus
}

// EnableGPIO ungates the GPIO register clock.
func (s *Syscon) EnableGPIO() { s.bus.modify(syscon.SYSAHBCLKCTRL, syscon.AHBGPIO, 0) }

// DisableGPIO gates the GPIO register clock.
func (s *Syscon) DisableGPIO() { s.bus.modify(syscon.SYSAHBCLKCTRL, 0, syscon.AHBGPIO) }
