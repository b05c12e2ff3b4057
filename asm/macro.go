package asm

import (
	"fmt"
	"maps"
	"regexp"
	"strings"
	"unicode"
)

// MacroFunc expands a macro invocation into source lines. The label, if
// any, belongs on the first line.
type MacroFunc func(label string, args []string) (lines []string, err error)

var defaultMacros = map[string]MacroFunc{
	"set_irq":    macroSetIrq,
	"set_nmi":    macroVector("NMI", 0xfffa),
	"set_reset":  macroVector("RESET", 0xfffc),
	"set_string": macroSetString,
	"write_word": macroWriteWord,
}

// DefaultMacros returns a new copy of the built in macro registry.
func DefaultMacros() map[string]MacroFunc {
	return maps.Clone(defaultMacros)
}

var reAddress = regexp.MustCompile(`^\$([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// MacroName converts a macro token to its registry name:
// '@SetIRQ' is 'set_irq', and '@writeWord' is 'write_word'.
func MacroName(token string) string {
	runes := []rune(strings.TrimPrefix(token, "@"))

	var sb strings.Builder
	for n, r := range runes {
		if n > 0 && unicode.IsUpper(r) {
			prev := runes[n-1]
			nextLower := n+1 < len(runes) && unicode.IsLower(runes[n+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteRune('_')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

func wantArgs(args []string, count int) (err error) {
	if len(args) != count {
		err = fmt.Errorf("%w: want %d, have %d", ErrMacroArgs, count, len(args))
	}
	return
}

// macroSetIrq points the IRQ vector at an address.
func macroSetIrq(label string, args []string) (lines []string, err error) {
	err = wantArgs(args, 1)
	if err != nil {
		return
	}

	addr := args[0]
	lines = []string{
		label + " sei",
		" lda #<" + addr,
		" sta $fffe",
		" lda #>" + addr,
		" sta $ffff",
		" cli",
	}
	return
}

// macroVector fills a vector with a literal address.
func macroVector(name string, vector uint16) MacroFunc {
	return func(label string, args []string) (lines []string, err error) {
		err = wantArgs(args, 1)
		if err != nil {
			return
		}

		match := reAddress.FindStringSubmatch(args[0])
		if match == nil {
			err = ErrMacroLiteral
			return
		}

		if len(label) > 0 {
			lines = append(lines, label)
		}
		lines = append(lines, fmt.Sprintf("> %04x %s %s ; %s vector",
			vector, strings.ToUpper(match[2]), strings.ToUpper(match[1]), name))
		return
	}
}

// macroSetString loads the string pointer with an address.
func macroSetString(label string, args []string) (lines []string, err error) {
	err = wantArgs(args, 1)
	if err != nil {
		return
	}

	return macroWriteWord(label, []string{args[0], ":string_ptr"})
}

// macroWriteWord stores a word, low byte first.
func macroWriteWord(label string, args []string) (lines []string, err error) {
	err = wantArgs(args, 2)
	if err != nil {
		return
	}

	word, dest := args[0], args[1]
	lines = []string{
		label + " lda #<" + word,
		" sta " + dest,
		" lda #>" + word,
		" sta " + dest + "+1",
	}
	return
}

// macroCall splits a macro invocation line.
func macroCall(text string) (label string, name string, args []string, ok bool) {
	code, _ := splitComment(text)
	fields := strings.Fields(code)

	switch {
	case len(fields) > 0 && strings.HasPrefix(fields[0], "@"):
		name, fields = fields[0], fields[1:]
	case len(fields) > 1 && strings.HasPrefix(fields[1], "@") && !strings.HasPrefix(text, " ") && !strings.HasPrefix(text, "\t"):
		label, name, fields = fields[0], fields[1], fields[2:]
	default:
		return
	}

	if joined := strings.Join(fields, ""); len(joined) > 0 {
		args = strings.Split(joined, ",")
	}

	ok = true
	return
}

// expand replaces macro invocations with their expansion. An invocation
// of a name that is not in the registry becomes an ordinary instruction.
func (asm *Assembler) expand(lines []Source) (expanded []Source, err error) {
	registry := asm.Macro
	if registry == nil {
		registry = defaultMacros
	}

	for _, line := range lines {
		label, name, args, ok := macroCall(line.Text)
		if !ok {
			expanded = append(expanded, line)
			continue
		}

		macro, ok := registry[MacroName(name)]
		if !ok {
			if asm.Verbose {
				asm.logf("%v:%d: %v not a macro", line.File, line.LineNo, name)
			}
			_, comment := splitComment(line.Text)
			text := joinLine(label, strings.TrimPrefix(name, "@"), strings.Join(args, ","), comment)
			expanded = append(expanded, line.with(text))
			continue
		}

		var body []string
		body, err = macro(label, args)
		if err != nil {
			err = syntaxError(line, &ErrMacro{Macro: name, Err: err})
			return
		}

		for _, text := range body {
			expanded = append(expanded, line.with(text))
		}
	}

	return
}
