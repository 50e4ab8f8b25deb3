//go:build !tinygo

package clock

// Host builds have no interrupts to mask; the capability tests run here.
type irqState struct{}

func disableInterrupts() irqState { return irqState{} }

func restoreInterrupts(irqState) {}
