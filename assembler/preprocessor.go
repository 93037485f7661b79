package main

import (
	"strings"
)

const commentMarker = "//"

// Preprocess strips everything from the raw source that carries no meaning for
// the assembler: // comments, whether they fill a line or trail an instruction,
// and surrounding whitespace. Lines are kept in place rather than dropped, a
// comment only line simply turns into an empty one, so the line numbers the
// assembler reports in errors still point into the original file. The passes
// skip the empties.
func Preprocess(source string) string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		if index := strings.Index(line, commentMarker); index != -1 {
			line = line[:index]
		}
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
