package clock

import "testing"

func TestHertzString(t *testing.T) {
	cases := []struct {
		f    Hertz
		want string
	}{
		{48 * MHz, "48MHz"},
		{1050 * KHz, "1.050MHz"},
		{262500, "262.500kHz"},
		{12 * KHz, "12kHz"},
		{500, "500Hz"},
		{0, "0Hz"},
	}
	for _, c := range cases {
		if got := c.f.String(); got != c.want {
			t.Fatalf("Hertz(%d).String() = %q, want %q", uint32(c.f), got, c.want)
		}
	}
}

func TestHertzArithmetic(t *testing.T) {
	if IRCFrequency.Mul(4) != 48*MHz {
		t.Fatal("Mul failed")
	}
	if (48 * MHz).Div(2) != 24*MHz {
		t.Fatal("Div failed")
	}
	if (48 * MHz).Div(0) != 0 {
		t.Fatal("a zero divider must yield 0")
	}
}
