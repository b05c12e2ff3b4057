package asm

import (
	"bytes"
	"io/fs"
	"path"
	"strings"
)

const (
	INCLUDE    = "#INCLUDE" // Include directive.
	SOURCE_EXT = ".src"     // Default source file extension.
)

// isInclude is true for an #INCLUDE line, in any case.
func isInclude(text string) bool {
	return len(text) >= len(INCLUDE) && strings.EqualFold(text[:len(INCLUDE)], INCLUDE)
}

// link replaces every #INCLUDE line with the lines of the named file.
// Included files can not include other files.
func (asm *Assembler) link(lines []Source) (linked []Source, err error) {
	for _, line := range lines {
		if !isInclude(line.Text) {
			linked = append(linked, line)
			continue
		}

		code, _ := splitComment(line.Text[len(INCLUDE):])
		name := strings.TrimSpace(code)
		if len(name) == 0 || asm.FS == nil {
			err = syntaxError(line, ErrIncludeMissing(name))
			return
		}
		if path.Ext(name) != SOURCE_EXT {
			name += SOURCE_EXT
		}

		var data []byte
		data, err = fs.ReadFile(asm.FS, name)
		if err != nil {
			if asm.Verbose {
				asm.logf("%v: %v", name, err)
			}
			err = syntaxError(line, ErrIncludeMissing(name))
			return
		}

		var included []Source
		included, err = readSource(name, bytes.NewReader(data))
		if err != nil {
			err = syntaxError(line, err)
			return
		}

		for _, inc := range included {
			if isInclude(inc.Text) {
				err = syntaxError(inc, ErrIncludeNested)
				return
			}
		}

		if asm.Verbose {
			asm.logf("%v: %d lines", name, len(included))
		}
		linked = append(linked, included...)
	}

	return
}
