//go:build tinygo && lpc11uxx

// Package mmio exposes the memory-mapped SYSCON and FLASHCTRL blocks.
package mmio

import (
	"runtime/volatile"
	"unsafe"

	"lpc11u-go/syscon"
)

// Block is a memory-mapped register block.
type Block struct {
	base uintptr
}

func (b Block) reg(r syscon.Reg) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(b.base + uintptr(r)))
}

func (b Block) Get(r syscon.Reg) uint32    { return b.reg(r).Get() }
func (b Block) Set(r syscon.Reg, v uint32) { b.reg(r).Set(v) }

var (
	sysconBlock = Block{base: syscon.BaseSYSCON}
	flashBlock  = Block{base: syscon.BaseFLASHCTRL}
	taken       bool
)

// Take hands out the SYSCON and FLASHCTRL blocks. Only the first call
// succeeds; later calls report false so that a second owner cannot exist.
func Take() (sys, flash syscon.Block, ok bool) {
	if taken {
		return nil, nil, false
	}
	taken = true
	return sysconBlock, flashBlock, true
}
