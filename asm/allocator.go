package asm

import (
	"slices"
)

// allocate assigns addresses to the statements and records the label
// addresses.
func (asm *Assembler) allocate(stmts []Statement) (records []Record, err error) {
	asm.Label = map[string]uint16{}

	var pc uint16
	for _, stmt := range stmts {
		if len(stmt.Label) > 0 {
			if _, ok := asm.Label[stmt.Label]; ok {
				err = syntaxError(stmt.Source, ErrLabelDuplicate)
				return
			}
			asm.Label[stmt.Label] = pc
		}

		switch stmt.Kind {
		case STATEMENT_ORIGIN:
			pc = stmt.Address
		case STATEMENT_INSTRUCTION:
			records = append(records, Record{
				Source:   stmt.Source,
				Kind:     RECORD_INSTRUCTION,
				Address:  pc,
				Mnemonic: stmt.Opcode,
				Operand:  stmt.Operand,
				Comment:  stmt.Comment,
			})
			pc += uint16(OperandLength(stmt.Opcode, stmt.Operand))
		case STATEMENT_DIRECTIVE:
			for chunk := range slices.Chunk(stmt.Data, MAX_DATA) {
				records = append(records, Record{
					Source:  stmt.Source,
					Kind:    RECORD_DATA,
					Address: pc,
					Data:    chunk,
				})
				pc += uint16(len(chunk))
			}
		case STATEMENT_RAW:
			var rec Record
			rec, err = ParseRecord(stmt.Source)
			if err != nil {
				err = syntaxError(stmt.Source, err)
				return
			}
			records = append(records, rec)
		}
	}

	return
}
