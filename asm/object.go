package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RecordKind is the kind of an object code record.
type RecordKind int

//go:generate go tool stringer -linecomment -type=RecordKind

const (
	RECORD_RAW         = RecordKind(iota) // raw
	RECORD_INSTRUCTION                    // instruction
	RECORD_DATA                           // data
)

// MAX_DATA is the most bytes a data record holds.
const MAX_DATA = 8

// Record is a single line of object code.
type Record struct {
	Source             // Line the record was generated from.
	Kind     RecordKind // Kind of record.
	Address  uint16     // Address of the instruction or data.
	Mnemonic string     // Instruction mnemonic.
	Operand  string     // Instruction operand.
	Data     []uint8    // Data bytes.
	Comment  string     // Trailing comment.
}

// String returns the object code line of the record. Raw records return
// their text unchanged.
func (rec Record) String() (text string) {
	switch rec.Kind {
	case RECORD_INSTRUCTION:
		text = fmt.Sprintf(". %04x %s", rec.Address, rec.Mnemonic)
		if len(rec.Operand) > 0 {
			text += " " + rec.Operand
		}
	case RECORD_DATA:
		text = fmt.Sprintf("> %04x", rec.Address)
		for _, data := range rec.Data {
			text += fmt.Sprintf(" %02X", data)
		}
	default:
		return rec.Text
	}

	if len(rec.Comment) > 0 {
		text += " ; " + rec.Comment
	}

	return
}

// Bytes returns the bytes the record places in memory.
func (rec Record) Bytes() (data []uint8, err error) {
	switch rec.Kind {
	case RECORD_INSTRUCTION:
		data, err = Encode(rec.Address, rec.Mnemonic, rec.Operand)
	case RECORD_DATA:
		data = rec.Data
	}

	return
}

// Len returns the number of bytes the record occupies.
func (rec Record) Len() int {
	switch rec.Kind {
	case RECORD_INSTRUCTION:
		return OperandLength(rec.Mnemonic, rec.Operand)
	case RECORD_DATA:
		return len(rec.Data)
	}

	return 0
}

// parseHex parses a hex word, with or without a leading '$'.
func parseHex(text string, bits int) (value uint64, err error) {
	value, err = strconv.ParseUint(strings.TrimPrefix(text, "$"), 16, bits)
	if err != nil {
		err = ErrParseNumber(text)
	}
	return
}

// ParseRecord parses a single line of object code. Blank and ';' lines
// are raw records.
func ParseRecord(src Source) (rec Record, err error) {
	rec = Record{Source: src}

	code, comment := splitComment(src.Text)
	fields := strings.Fields(code)
	if len(fields) == 0 {
		return
	}

	rec.Comment = comment

	switch fields[0] {
	case ".":
		if len(fields) < 3 || len(fields) > 4 {
			err = ErrRecordSyntax
			return
		}
		rec.Kind = RECORD_INSTRUCTION
		rec.Mnemonic = strings.ToLower(fields[2])
		if len(fields) == 4 {
			rec.Operand = fields[3]
		}
	case ">":
		if len(fields) < 2 || len(fields) > 2+MAX_DATA {
			err = ErrRecordSyntax
			return
		}
		rec.Kind = RECORD_DATA
		for _, word := range fields[2:] {
			var value uint64
			value, err = parseHex(word, 8)
			if err != nil {
				return
			}
			rec.Data = append(rec.Data, uint8(value))
		}
	default:
		err = ErrRecordSyntax
		return
	}

	addr, err := parseHex(fields[1], 16)
	if err != nil {
		return
	}
	rec.Address = uint16(addr)

	return
}

// Object is assembled object code.
type Object struct {
	Records []Record          // Object code records, in source order.
	Labels  map[string]uint16 // Label addresses.
	Symbols map[string]string // Symbol values.
}

// ParseObject reads object code.
func ParseObject(name string, input io.Reader) (obj *Object, err error) {
	lines, err := readSource(name, input)
	if err != nil {
		return
	}

	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		rec, err := ParseRecord(line)
		if err != nil {
			return nil, syntaxError(line, err)
		}
		records = append(records, rec)
	}

	obj = &Object{Records: records}
	return
}

// WriteTo writes the object code, one record per line.
func (obj *Object) WriteTo(w io.Writer) (n int64, err error) {
	for _, rec := range obj.Records {
		var count int
		count, err = fmt.Fprintln(w, rec.String())
		n += int64(count)
		if err != nil {
			return
		}
	}

	return
}

// String returns the object code as text.
func (obj *Object) String() string {
	var sb strings.Builder
	_, _ = obj.WriteTo(&sb)
	return sb.String()
}

// Debug returns the record that placed the byte at addr.
func (obj *Object) Debug(addr uint16) (rec Record, ok bool) {
	for _, rec := range obj.Records {
		if addr >= rec.Address && int(addr) < int(rec.Address)+rec.Len() {
			return rec, true
		}
	}

	return
}
