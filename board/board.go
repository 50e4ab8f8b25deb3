// Package board holds the clock profiles of supported boards and maps them
// onto clock.Builder requests.
package board

import (
	"bytes"
	"errors"
	"io"

	"lpc11u-go/clock"
	"lpc11u-go/errcode"

	"gopkg.in/yaml.v3"
)

// EmbeddedProfileLookup allows overriding how profiles are resolved.
var EmbeddedProfileLookup = func(id string) ([]byte, bool) {
	b, ok := embeddedProfiles[id]
	return b, ok
}

// Profile is the declarative clock description of one board.
type Profile struct {
	MainSource    string      `yaml:"main_source"`
	CrystalHz     uint32      `yaml:"crystal_hz,omitempty"`
	PLL           *PLLProfile `yaml:"pll,omitempty"`
	SystemClockHz uint32      `yaml:"system_clock_hz,omitempty"`
	WatchdogHz    uint32      `yaml:"wdtosc_hz,omitempty"`
	Peripherals   Peripherals `yaml:"peripherals,omitempty"`
}

// PLLProfile requests the system PLL.
type PLLProfile struct {
	Input    string `yaml:"input"`
	TargetHz uint32 `yaml:"target_hz"`
}

// Peripherals lists dependent clocks to start once the tree is frozen.
// Zero leaves a clock untouched.
type Peripherals struct {
	USARTHz uint32 `yaml:"usart_hz,omitempty"`
	USBHz   uint32 `yaml:"usb_hz,omitempty"`
	SSP0Hz  uint32 `yaml:"ssp0_hz,omitempty"`
	SSP1Hz  uint32 `yaml:"ssp1_hz,omitempty"`
}

// Parse decodes a YAML profile. Unknown keys are rejected.
func Parse(raw []byte) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Profile{}, &errcode.E{C: errcode.InvalidConfig, Op: "board", Msg: "empty profile"}
		}
		return Profile{}, &errcode.E{C: errcode.InvalidConfig, Op: "board", Err: err}
	}
	return p, nil
}

// Load parses the embedded profile for a board ID.
func Load(id string) (Profile, error) {
	raw, ok := EmbeddedProfileLookup(id)
	if !ok || len(raw) == 0 {
		return Profile{}, &errcode.E{C: errcode.UnknownBoard, Op: "board", Msg: id}
	}
	return Parse(raw)
}

// Builder maps the profile onto a clock request.
func (p Profile) Builder() (clock.Builder, error) {
	b := clock.NewBuilder(clock.Hertz(p.CrystalHz))

	name := p.MainSource
	if name == "" {
		name = "irc"
	}
	src, ok := clock.ParseMainSource(name)
	if !ok {
		return clock.Builder{}, &errcode.E{C: errcode.InvalidConfig, Op: "board", Msg: "unknown main_source " + name}
	}
	b = b.MainClock(src)

	if p.PLL != nil {
		in, ok := clock.ParsePLLInput(p.PLL.Input)
		if !ok {
			return clock.Builder{}, &errcode.E{C: errcode.InvalidConfig, Op: "board", Msg: "unknown pll input " + p.PLL.Input}
		}
		b = b.SystemPLL(in, clock.Hertz(p.PLL.TargetHz))
	}
	if p.SystemClockHz != 0 {
		b = b.SystemClock(clock.Hertz(p.SystemClockHz))
	}
	if p.WatchdogHz != 0 {
		b = b.WatchdogOscillator(clock.Hertz(p.WatchdogHz))
	}
	return b, nil
}

// Plan builds and validates the profile's clock request.
func (p Profile) Plan() (clock.Plan, error) {
	b, err := p.Builder()
	if err != nil {
		return clock.Plan{}, err
	}
	return b.Validate()
}

// Start configures the peripheral clocks the profile asks for.
func (p Profile) Start(clks *clock.Clocks, pc clock.PeriphClocks) error {
	per := p.Peripherals
	if per.USARTHz != 0 {
		if err := pc.USART.Configure(clks, clock.Hertz(per.USARTHz)); err != nil {
			return err
		}
	}
	if per.SSP0Hz != 0 {
		if err := pc.SSP0.Configure(clks, clock.Hertz(per.SSP0Hz)); err != nil {
			return err
		}
	}
	if per.SSP1Hz != 0 {
		if err := pc.SSP1.Configure(clks, clock.Hertz(per.SSP1Hz)); err != nil {
			return err
		}
	}
	if per.USBHz != 0 {
		if err := pc.USB.Configure(clks, clock.Hertz(per.USBHz)); err != nil {
			return err
		}
	}
	return nil
}
