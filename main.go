package main

import (
	"time"

	"lpc11u-go/board"
	"lpc11u-go/clock"
)

// boardID selects the embedded clock profile.
const boardID = "lpcxpresso11u68"

func main() {
	prof, err := board.Load(boardID)
	if err != nil {
		fatal("profile", err)
	}
	plan, err := prof.Plan()
	if err != nil {
		fatal("validate", err)
	}

	sys, flash, ok := registerBlocks()
	if !ok {
		fatal("apply", errNoBlocks)
	}
	seq := clock.NewSequencer(sys, flash, clock.Options{
		OnStep: func(s clock.State) { println("clock:", s.String()) },
	})
	clks, periph, err := seq.Apply(plan)
	if err != nil {
		fatal("apply", err)
	}
	if err := prof.Start(clks, periph); err != nil {
		fatal("peripherals", err)
	}

	println("boot", boardID, plan.String())

	// Periodic heartbeat with the frozen main clock.
	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	for t := range tick.C {
		println(t.Format("15:04:05"), "Heartbeat main", clks.MainClockFreq().String())
	}
}

func fatal(stage string, err error) {
	println("clock", stage, "failed:", err.Error())
	for {
		time.Sleep(time.Hour)
	}
}
