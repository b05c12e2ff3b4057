package asm

import (
	"fmt"
)

// resolveLabels replaces the labels in instruction operands with their
// addresses, longest label first.
func (asm *Assembler) resolveLabels(records []Record) (resolved []Record, err error) {
	names := longestFirst(asm.Label)

	resolved = make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.Kind == RECORD_INSTRUCTION && len(rec.Operand) > 0 {
			operand := rec.Operand
			for _, name := range names {
				operand = replaceToken(operand, name, fmt.Sprintf("$%04x", asm.Label[name]))
			}
			rec.Operand = ToHex(operand)
		}
		resolved = append(resolved, rec)
	}

	return
}

// validate encodes every instruction.
func (asm *Assembler) validate(records []Record) (err error) {
	for _, rec := range records {
		_, err = rec.Bytes()
		if err != nil {
			err = syntaxError(rec.Source, err)
			return
		}
	}

	return
}
