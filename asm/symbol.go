// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"maps"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/m6502/internal"
)

var reSymbol = regexp.MustCompile(`^:[A-Za-z_][A-Za-z0-9_]*$`)

// parseSymbol parses a ':name value' or ':name = value' line.
func parseSymbol(text string) (name string, value string, err error) {
	code, _ := splitComment(text)
	fields := strings.Fields(code)

	switch {
	case len(fields) == 2:
		name, value = fields[0], fields[1]
	case len(fields) == 3 && fields[1] == "=":
		name, value = fields[0], fields[2]
	default:
		err = ErrSymbolSyntax
		return
	}

	if !reSymbol.MatchString(name) {
		err = ErrSymbolSyntax
	}

	return
}

// evaluate evaluates a '$(expr)' expression with the current symbols.
func (asm *Assembler) evaluate(expr string) (value uint16, err error) {
	thread := starlark.Thread{Name: "asm"}
	thread.SetMaxExecutionSteps(1 << 16)
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Symbol {
		number, err := parseNumber(str)
		if err != nil {
			// Symbols that are not numbers can not be used in
			// an expression.
			continue
		}
		pred[strings.TrimPrefix(key, ":")] = starlark.MakeInt(int(number))
	}

	prog := "rc=" + strings.ReplaceAll(expr, ":", "") + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xffff {
		err = ErrParseExpression(expr)
		return
	}

	value = uint16(st_int64)
	return
}

// expressions replaces every '$(expr)' in text with its value.
func (asm *Assembler) expressions(text string) (out string, err error) {
	for {
		start := strings.Index(text, "$(")
		if start < 0 {
			out += text
			return
		}

		depth := 0
		end := -1
		for n := start + 1; n < len(text) && end < 0; n++ {
			switch text[n] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					end = n
				}
			}
		}
		if end < 0 {
			err = ErrParseExpression(text[start+2:])
			return
		}

		var value uint16
		value, err = asm.evaluate(text[start+2 : end])
		if err != nil {
			return
		}

		out += text[:start]
		if value <= 0xff {
			out += fmt.Sprintf("$%02x", value)
		} else {
			out += fmt.Sprintf("$%04x", value)
		}
		text = text[end+1:]
	}
}

// substitute evaluates the expressions in text, then replaces the
// symbols, longest name first.
func (asm *Assembler) substitute(text string, names []string) (out string, err error) {
	out, err = asm.expressions(text)
	if err != nil {
		return
	}

	for _, name := range names {
		out = replaceToken(out, name, asm.Symbol[name])
	}

	return
}

// resolveSymbols collects the ':name' symbol definitions, then replaces
// symbols and expressions in the operands and origins of the remaining
// lines.
func (asm *Assembler) resolveSymbols(lines []Source) (resolved []Source, err error) {
	asm.Symbol = maps.Clone(asm.predefine)
	if asm.Symbol == nil {
		asm.Symbol = map[string]string{}
	}
	for key, value := range sysSymbol {
		if _, ok := asm.Symbol[key]; !ok {
			asm.Symbol[key] = value
		}
	}

	defined := map[string]bool{}
	for _, line := range lines {
		if !strings.HasPrefix(line.Text, ":") {
			continue
		}

		name, value, err := parseSymbol(line.Text)
		if err != nil {
			return nil, syntaxError(line, err)
		}
		if defined[name] {
			return nil, syntaxError(line, ErrSymbolDuplicate)
		}
		defined[name] = true
		asm.Symbol[name] = value
	}

	names := longestFirst(asm.Symbol)

	for _, line := range lines {
		text := line.Text

		switch {
		case strings.HasPrefix(text, ":"):
			continue
		case strings.HasPrefix(text, "*"):
			text, err = asm.substitute(text, names)
		case len(strings.TrimSpace(text)) == 0:
		case strings.ContainsRune(";.>", rune(text[0])):
		default:
			label, rest := splitLabel(text)
			if strings.HasPrefix(rest, "!") {
				break
			}
			code, comment := splitComment(rest)
			code, err = asm.expressions(code)
			if err != nil {
				break
			}
			fields := strings.Fields(code)
			switch len(fields) {
			case 1:
				text = joinLine(label, fields[0], "", comment)
			case 2:
				var operand string
				operand, err = asm.substitute(fields[1], names)
				text = joinLine(label, fields[0], ToHex(operand), comment)
			}
		}
		if err != nil {
			err = syntaxError(line, err)
			return
		}

		resolved = append(resolved, line.with(text))
	}

	if asm.Verbose {
		for name, value := range internal.Sorted2(asm.Symbol) {
			asm.logf("symbol %v = %v", name, value)
		}
	}

	return
}
