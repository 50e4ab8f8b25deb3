package sim

import (
	"testing"

	"lpc11u-go/syscon"
)

func TestResetState(t *testing.T) {
	s := NewSYSCON(nil)
	if !syscon.Powered(s, syscon.PDIRC|syscon.PDIRCOUT) {
		t.Fatal("IRC must run out of reset")
	}
	if syscon.Powered(s, syscon.PDSYSPLL) || syscon.Powered(s, syscon.PDSYSOSC) || syscon.Powered(s, syscon.PDWDTOSC) {
		t.Fatal("oscillators and PLLs must be off out of reset")
	}
	if s.LatchedMain() != syscon.MainClkSelIRC {
		t.Fatalf("latched main = %d", s.LatchedMain())
	}
}

func TestPLLLocksAfterDelay(t *testing.T) {
	s := NewSYSCON(nil)
	s.LockDelay = 3
	if s.Get(syscon.SYSPLLSTAT)&syscon.PLLSTATLock != 0 {
		t.Fatal("an unpowered PLL must not lock")
	}
	syscon.PowerUp(s, syscon.PDSYSPLL)
	reads := 0
	for s.Get(syscon.SYSPLLSTAT)&syscon.PLLSTATLock == 0 {
		reads++
		if reads > 10 {
			t.Fatal("PLL never locked")
		}
	}
	if reads != 3 || !s.Locked() {
		t.Fatalf("locked after %d polls", reads)
	}
	syscon.PowerDown(s, syscon.PDSYSPLL)
	if s.Locked() {
		t.Fatal("powering down must drop lock")
	}
}

func TestViolations(t *testing.T) {
	cases := []struct {
		name string
		run  func(s *SYSCON)
	}{
		{"pll ratio while running", func(s *SYSCON) {
			syscon.PowerUp(s, syscon.PDSYSPLL)
			s.Set(syscon.SYSPLLCTRL, 0x23)
		}},
		{"update without no-change", func(s *SYSCON) {
			s.Set(syscon.MAINCLKUEN, syscon.UENUpdate)
		}},
		{"main onto unlocked pll", func(s *SYSCON) {
			s.Set(syscon.MAINCLKSEL, syscon.MainClkSelPLLOutput)
			syscon.LatchMux(s, syscon.MAINCLKUEN)
		}},
		{"main onto stopped watchdog", func(s *SYSCON) {
			s.Set(syscon.MAINCLKSEL, syscon.MainClkSelWDTOSC)
			syscon.LatchMux(s, syscon.MAINCLKUEN)
		}},
		{"pll input onto stopped crystal", func(s *SYSCON) {
			s.Set(syscon.SYSPLLCLKSEL, syscon.PLLClkSelSYSOSC)
			syscon.LatchMux(s, syscon.SYSPLLCLKUEN)
		}},
	}
	for _, c := range cases {
		s := NewSYSCON(nil)
		c.run(s)
		if len(s.Violations) != 1 {
			t.Fatalf("%s: violations = %v", c.name, s.Violations)
		}
	}
}

func TestCleanSwitchToPLL(t *testing.T) {
	tr := &Trace{}
	s := NewSYSCON(tr)
	s.Set(syscon.SYSPLLCTRL, 0x23)
	syscon.PowerUp(s, syscon.PDSYSPLL)
	for s.Get(syscon.SYSPLLSTAT)&syscon.PLLSTATLock == 0 {
	}
	s.Set(syscon.MAINCLKSEL, syscon.MainClkSelPLLOutput)
	syscon.LatchMux(s, syscon.MAINCLKUEN)

	if len(s.Violations) != 0 {
		t.Fatalf("violations = %v", s.Violations)
	}
	if s.LatchedMain() != syscon.MainClkSelPLLOutput {
		t.Fatalf("latched main = %d", s.LatchedMain())
	}
	if tr.Index("syscon", syscon.SYSPLLCTRL) != 0 || tr.Index("syscon", syscon.MAINCLKUEN) != len(tr.Events)-2 {
		t.Fatalf("unexpected trace %v", tr.Events)
	}
	if tr.Index("flash", syscon.FLASHCFG) != -1 {
		t.Fatal("no flash writes expected")
	}
}

func runPLL96(s *SYSCON) {
	s.Set(syscon.SYSPLLCTRL, 7) // 12 MHz * 8, P=0: FCCO 192 MHz
	syscon.PowerUp(s, syscon.PDSYSPLL)
	for s.Get(syscon.SYSPLLSTAT)&syscon.PLLSTATLock == 0 {
	}
}

func TestFlashRatingChecked(t *testing.T) {
	// Switching to 96 MHz before dividing runs the core past the flash rating.
	s := NewSYSCON(nil)
	f := NewFLASHCTRL(nil)
	s.AttachFlash(f)
	runPLL96(s)
	s.Set(syscon.MAINCLKSEL, syscon.MainClkSelPLLOutput)
	syscon.LatchMux(s, syscon.MAINCLKUEN)
	if len(s.Violations) != 1 {
		t.Fatalf("violations = %v", s.Violations)
	}

	// Divider first: clean.
	s = NewSYSCON(nil)
	f = NewFLASHCTRL(nil)
	s.AttachFlash(f)
	runPLL96(s)
	s.Set(syscon.SYSAHBCLKDIV, 2)
	s.Set(syscon.MAINCLKSEL, syscon.MainClkSelPLLOutput)
	syscon.LatchMux(s, syscon.MAINCLKUEN)
	if len(s.Violations) != 0 {
		t.Fatalf("violations = %v", s.Violations)
	}

	// Dropping to one wait state at 48 MHz is caught on the flash write.
	syscon.ReplaceBits(f, syscon.FLASHCFG, 0, syscon.FlashTimMask, syscon.FlashTimPos)
	if len(s.Violations) != 1 {
		t.Fatalf("violations = %v", s.Violations)
	}
}

func TestCrystalFedClockRated(t *testing.T) {
	s := NewSYSCON(nil)
	s.Crystal = 25_000_000
	syscon.PowerUp(s, syscon.PDSYSOSC)
	s.Set(syscon.SYSPLLCLKSEL, syscon.PLLClkSelSYSOSC)
	syscon.LatchMux(s, syscon.SYSPLLCLKUEN)
	s.Set(syscon.SYSPLLCTRL, 1) // 50 MHz
	syscon.PowerUp(s, syscon.PDSYSPLL)
	for s.Get(syscon.SYSPLLSTAT)&syscon.PLLSTATLock == 0 {
	}
	s.Set(syscon.MAINCLKSEL, syscon.MainClkSelPLLOutput)
	syscon.LatchMux(s, syscon.MAINCLKUEN)
	if len(s.Violations) != 1 {
		t.Fatalf("violations = %v", s.Violations)
	}
}

func TestFlashResetKeepsReservedBit(t *testing.T) {
	f := NewFLASHCTRL(nil)
	if f.Peek(syscon.FLASHCFG) != 0x80000002 {
		t.Fatalf("FLASHCFG = %#x", f.Peek(syscon.FLASHCFG))
	}
}
