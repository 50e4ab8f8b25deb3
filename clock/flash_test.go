package clock

import (
	"testing"

	"lpc11u-go/errcode"
)

func TestFlashTimingFor(t *testing.T) {
	cases := []struct {
		sys  Hertz
		want FlashTiming
	}{
		{262500, Flash1Cycle},
		{12 * MHz, Flash1Cycle},
		{19 * MHz, Flash1Cycle},
		{20 * MHz, Flash2Cycles},
		{30 * MHz, Flash2Cycles},
		{40 * MHz, Flash3Cycles},
		{49 * MHz, Flash3Cycles},
	}
	for _, c := range cases {
		got, err := FlashTimingFor(c.sys)
		if err != nil || got != c.want {
			t.Fatalf("FlashTimingFor(%v) = %d,%v; want %d", c.sys, got, err, c.want)
		}
	}
	for _, sys := range []Hertz{50 * MHz, 51 * MHz, 72 * MHz} {
		if _, err := FlashTimingFor(sys); errcode.Of(err) != errcode.FrequencyExceedsFlashRating {
			t.Fatalf("FlashTimingFor(%v) err = %v", sys, err)
		}
	}
	if Flash3Cycles.Cycles() != 3 {
		t.Fatal("Cycles broken")
	}
}
