package clock

import (
	"testing"

	"lpc11u-go/errcode"
)

func TestQuantizeWatchdog(t *testing.T) {
	cases := []struct {
		req  Hertz
		band WatchdogBand
	}{
		{1, WDTBand0_60},
		{600 * KHz, WDTBand0_60},
		{600*KHz + 1, WDTBand1_05},
		{1 * MHz, WDTBand1_05},
		{3 * MHz, WDTBand3_00},
		{4600 * KHz, WDTBand4_60},
	}
	for _, c := range cases {
		w, err := QuantizeWatchdog(c.req)
		if err != nil {
			t.Fatalf("QuantizeWatchdog(%v): %v", c.req, err)
		}
		if w.Band != c.band || w.Div != 1 {
			t.Fatalf("QuantizeWatchdog(%v) = %+v, want band %d div 1", c.req, w, c.band)
		}
		if w.Band.Frequency() < c.req {
			t.Fatalf("band %v below request %v", w.Band.Frequency(), c.req)
		}
	}
}

func TestQuantizeWatchdogErrors(t *testing.T) {
	if _, err := QuantizeWatchdog(4600*KHz + 1); errcode.Of(err) != errcode.FrequencyTooHigh {
		t.Fatalf("err = %v, want frequency_too_high", err)
	}
	if _, err := QuantizeWatchdog(0); errcode.Of(err) != errcode.ZeroFrequency {
		t.Fatalf("err = %v, want zero_frequency", err)
	}
}

func TestWatchdogOutput(t *testing.T) {
	w := WatchdogConfig{Band: WDTBand1_05, Div: 1}
	if w.Output() != 262500 {
		t.Fatalf("Output = %v", w.Output())
	}
	if (WatchdogConfig{Band: WDTBand4_60, Div: 0}).Output() != 2300*KHz {
		t.Fatal("Div 0 must halve the band")
	}
	if WatchdogBand(0).Frequency() != 0 || WatchdogBand(16).Frequency() != 0 {
		t.Fatal("illegal bands must report 0")
	}
}
