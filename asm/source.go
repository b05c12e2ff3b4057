package asm

import (
	"bufio"
	"cmp"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Source is a single line of assembler source.
type Source struct {
	File   string // Name of the file the line was read from.
	LineNo int    // Line number in the file, starting at 1.
	Text   string // Text of the line.
}

// with returns a copy of the source location holding new text.
func (src Source) with(text string) Source {
	src.Text = text
	return src
}

// readSource splits input into source lines.
func readSource(name string, input io.Reader) (lines []Source, err error) {
	scanner := bufio.NewScanner(input)
	for lineno := 1; scanner.Scan(); lineno++ {
		lines = append(lines, Source{
			File:   name,
			LineNo: lineno,
			Text:   strings.TrimRight(scanner.Text(), "\r"),
		})
	}
	err = scanner.Err()

	return
}

// splitComment splits text at its first ';'.
func splitComment(text string) (code string, comment string) {
	code, comment, _ = strings.Cut(text, ";")
	comment = strings.TrimSpace(comment)
	return
}

// splitLabel splits a labelled or unlabelled line into its label and the
// remaining text. A line starting with white space has no label.
func splitLabel(text string) (label string, rest string) {
	if len(text) == 0 || text[0] == ' ' || text[0] == '\t' {
		rest = strings.TrimSpace(text)
		return
	}

	n := strings.IndexAny(text, " \t")
	if n < 0 {
		label = text
		return
	}

	label = text[:n]
	rest = strings.TrimSpace(text[n:])
	return
}

// joinLine rebuilds a source line from its parts.
func joinLine(label, opcode, operand, comment string) (text string) {
	text = label + " " + opcode
	if len(operand) > 0 {
		text += " " + operand
	}
	if len(comment) > 0 {
		text += " ; " + comment
	}
	return
}

// isWordByte is true for characters that can continue an identifier.
func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// replaceToken replaces whole token occurrences of name in text. A match
// must not be preceded by an identifier character, a '$' or a ':', and
// must not be followed by an identifier character.
func replaceToken(text string, name string, value string) string {
	if len(name) == 0 {
		return text
	}

	var sb strings.Builder
	for {
		n := strings.Index(text, name)
		if n < 0 {
			sb.WriteString(text)
			break
		}
		end := n + len(name)

		before := n == 0 || !(isWordByte(text[n-1]) || text[n-1] == '$' || text[n-1] == ':')
		after := end == len(text) || !isWordByte(text[end])
		if before && after {
			sb.WriteString(text[:n])
			sb.WriteString(value)
		} else {
			sb.WriteString(text[:end])
		}
		text = text[end:]
	}

	return sb.String()
}

// longestFirst returns the keys of a map, longest first. Keys of the same
// length are sorted.
func longestFirst[V any](m map[string]V) []string {
	return slices.SortedFunc(maps.Keys(m), func(a, b string) int {
		if n := cmp.Compare(len(b), len(a)); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})
}

// parseNumber parses a '$' hex, '%' binary or decimal number.
func parseNumber(text string) (value uint16, err error) {
	var v uint64
	switch {
	case strings.HasPrefix(text, "$"):
		v, err = strconv.ParseUint(text[1:], 16, 16)
	case strings.HasPrefix(text, "%"):
		v, err = strconv.ParseUint(strings.ReplaceAll(text[1:], "_", ""), 2, 16)
	default:
		v, err = strconv.ParseUint(text, 10, 16)
	}
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	value = uint16(v)
	return
}
