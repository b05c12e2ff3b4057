package asm

import (
	"regexp"
	"strings"
)

// StatementKind is the kind of a parsed source line.
type StatementKind int

//go:generate go tool stringer -linecomment -type=StatementKind

const (
	STATEMENT_RAW         = StatementKind(iota) // raw
	STATEMENT_ORIGIN                            // origin
	STATEMENT_LABEL                             // label
	STATEMENT_INSTRUCTION                       // instruction
	STATEMENT_DIRECTIVE                         // directive
)

// Statement is a parsed source line.
type Statement struct {
	Source
	Kind    StatementKind
	Label   string  // Label defined by the line.
	Opcode  string  // Mnemonic, or directive name.
	Operand string  // Instruction operand.
	Comment string  // Trailing comment.
	Address uint16  // Origin address.
	Data    []uint8 // Directive data.
}

// DELIMITER quotes the text of the !str and !chr directives.
const DELIMITER = "`"

var (
	reLabel = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	// Register names can not be labels.
	reserved = []string{"a", "x", "y"}
)

// parseDirective parses a '!' directive into its data.
func parseDirective(text string) (name string, data []uint8, err error) {
	name, rest := text, ""
	if n := strings.IndexAny(text, " \t"); n >= 0 {
		name, rest = text[:n], strings.TrimSpace(text[n:])
	}
	name = strings.ToLower(name)

	switch name {
	case "!str", "!chr":
		start := strings.Index(rest, DELIMITER)
		if start != 0 {
			err = ErrDirectiveSyntax
			return
		}
		end := strings.Index(rest[1:], DELIMITER)
		if end < 0 {
			err = ErrDirectiveSyntax
			return
		}
		trailer, _ := splitComment(rest[end+2:])
		if len(strings.TrimSpace(trailer)) > 0 {
			err = ErrOperandExtra
			return
		}
		data = []uint8(rest[1 : end+1])
		if name == "!str" {
			data = append(data, 0)
		}
	case "!res":
		code, _ := splitComment(rest)
		var count uint64
		count, err = parseHex(strings.TrimSpace(code), 16)
		if err != nil {
			return
		}
		data = make([]uint8, count)
	default:
		err = ErrDirectiveUnknown
	}

	return
}

// parseLine parses a single source line.
func parseLine(line Source) (stmt Statement, err error) {
	stmt = Statement{Source: line}

	text := line.Text
	if len(strings.TrimSpace(text)) == 0 {
		return
	}

	switch c := text[0]; {
	case c == ';' || c == '>' || c == '.':
		return
	case c == '*':
		code, comment := splitComment(text[1:])
		code = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(code), "="))
		stmt.Kind = STATEMENT_ORIGIN
		stmt.Comment = comment
		stmt.Address, err = parseNumber(strings.TrimSpace(code))
		if err != nil {
			err = ErrOriginSyntax
		}
		return
	case c == ' ' || c == '\t' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
	default:
		err = ErrLineInvalid
		return
	}

	label, rest := splitLabel(text)
	if len(label) > 0 {
		if !reLabel.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		for _, name := range reserved {
			if strings.EqualFold(label, name) {
				err = ErrLabelReserved
				return
			}
		}
		stmt.Label = label
		stmt.Kind = STATEMENT_LABEL
	}

	if strings.HasPrefix(rest, "!") {
		stmt.Kind = STATEMENT_DIRECTIVE
		stmt.Opcode, stmt.Data, err = parseDirective(rest)
		return
	}

	code, comment := splitComment(rest)
	stmt.Comment = comment
	fields := strings.Fields(code)
	switch len(fields) {
	case 0:
		return
	case 1, 2:
		stmt.Kind = STATEMENT_INSTRUCTION
		stmt.Opcode = strings.ToLower(fields[0])
		if len(fields) == 2 {
			stmt.Operand = fields[1]
		}
	default:
		err = ErrOperandExtra
	}

	return
}

// parse splits the source lines into statements.
func (asm *Assembler) parse(lines []Source) (stmts []Statement, err error) {
	stmts = make([]Statement, 0, len(lines))
	for _, line := range lines {
		var stmt Statement
		stmt, err = parseLine(line)
		if err != nil {
			err = syntaxError(line, err)
			return
		}
		stmts = append(stmts, stmt)
	}

	return
}
