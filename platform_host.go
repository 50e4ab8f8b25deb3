//go:build !(tinygo && lpc11uxx)

package main

import (
	"errors"

	"lpc11u-go/syscon"
	"lpc11u-go/syscon/sim"
)

var errNoBlocks = errors.New("no register blocks")

// registerBlocks runs the sequence against simulated registers on the host.
func registerBlocks() (sys, flash syscon.Block, ok bool) {
	var t sim.Trace
	s, f := sim.NewSYSCON(&t), sim.NewFLASHCTRL(&t)
	s.AttachFlash(f)
	return s, f, true
}
