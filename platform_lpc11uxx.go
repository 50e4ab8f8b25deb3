//go:build tinygo && lpc11uxx

package main

import (
	"errors"

	"lpc11u-go/syscon"
	"lpc11u-go/syscon/mmio"
)

var errNoBlocks = errors.New("SYSCON already owned")

func registerBlocks() (sys, flash syscon.Block, ok bool) { return mmio.Take() }
