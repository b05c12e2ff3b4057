package io

import (
	"fmt"
	"iter"
	"maps"
)

var _jiffy_defines = map[string]string{
	"JIFFY_CLOCK": fmt.Sprintf("$%02x", REG_JIFFY_CLOCK),
}

// Jiffy counts emulator ticks.
type Jiffy struct {
	Count uint64 // Ticks since the last rewind.
}

var _ Register = (*Jiffy)(nil)

// Defines returns the jiffy clock register symbol.
func (jc *Jiffy) Defines() iter.Seq2[string, string] {
	return maps.All(_jiffy_defines)
}

// Tick advances the clock by one jiffy.
func (jc *Jiffy) Tick() {
	jc.Count++
}

// Peek returns the low byte of the jiffy count.
func (jc *Jiffy) Peek() uint8 {
	return uint8(jc.Count)
}

// Rewind resets the clock.
func (jc *Jiffy) Rewind() {
	jc.Count = 0
}
