// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"io/fs"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/m6502/internal"
)

// Predefined system symbols
var sysSymbol = map[string]string{
	":string_ptr": "$fb",
}

// Assembler is a six stage assembler for the 6502.
//
// Source lines pass, in order, through the linker, the macro expander,
// the symbol resolver, the parser, the memory allocator and the label
// resolver. Each stage reads the whole output of the one before it.
type Assembler struct {
	Verbose bool                 // If set, verbosely logs the assembler actions.
	FS      fs.FS                // File system for #INCLUDE files.
	Macro   map[string]MacroFunc // Macro registry. If nil, the default macros are used.

	Symbol map[string]string // Map of symbols to values, from the last Parse.
	Label  map[string]uint16 // Map of labels to addresses, from the last Parse.

	predefine map[string]string // Predefines
}

// NewAssembler returns an assembler with the default macros, reading
// included files from fsys.
func NewAssembler(fsys fs.FS) (asm *Assembler) {
	asm = &Assembler{
		FS:    fsys,
		Macro: DefaultMacros(),
	}
	return
}

// Predefine defines a symbol before assembly. The leading ':' of the name
// is optional. Source definitions override predefined symbols.
func (asm *Assembler) Predefine(name string, value string) {
	if !strings.HasPrefix(name, ":") {
		name = ":" + name
	}

	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

func (asm *Assembler) logf(format string, args ...any) {
	log.Printf("asm: "+format, args...)
}

// Parse assembles source into object code.
func (asm *Assembler) Parse(name string, input io.Reader) (obj *Object, err error) {
	lines, err := readSource(name, input)
	if err != nil {
		return
	}

	stages := []struct {
		name string
		run  func([]Source) ([]Source, error)
	}{
		{"link", asm.link},
		{"expand", asm.expand},
		{"symbol", asm.resolveSymbols},
	}

	for _, stage := range stages {
		lines, err = stage.run(lines)
		if err != nil {
			return
		}
		if asm.Verbose {
			asm.logf("%v: %v: %d lines", name, stage.name, len(lines))
		}
	}

	stmts, err := asm.parse(lines)
	if err != nil {
		return
	}

	records, err := asm.allocate(stmts)
	if err != nil {
		return
	}

	records, err = asm.resolveLabels(records)
	if err != nil {
		return
	}

	err = asm.validate(records)
	if err != nil {
		return
	}

	if asm.Verbose {
		for label, addr := range internal.Sorted2(asm.Label) {
			asm.logf("%v: %v = $%04x", name, label, addr)
		}
	}

	obj = &Object{
		Records: records,
		Labels:  maps.Clone(asm.Label),
		Symbols: maps.Clone(asm.Symbol),
	}

	return
}
